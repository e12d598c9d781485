package memory

import (
	"bytes"
	"testing"
)

func TestMemory_Load(t *testing.T) {
	tests := []struct {
		name    string
		offset  int
		size    int
		wantErr bool
	}{
		{"at zero", 0, 16, false},
		{"basic", 0x1000, 8192, false},
		{"up to the top", Size - 4, 4, false},
		{"whole memory", 0, Size, false},
		{"empty at top", Size, 0, false},
		{"one past the top", Size - 3, 4, true},
		{"offset past the top", Size + 1, 0, true},
		{"negative offset", -1, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			data := make([]byte, tt.size)
			for i := range data {
				data[i] = byte(i*7 + 3)
			}

			err := m.Load(tt.offset, data)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !bytes.Equal(m.Bytes(), make([]byte, Size)) {
					t.Error("rejected load modified memory")
				}
				return
			}
			if got := m.Bytes()[tt.offset : tt.offset+tt.size]; !bytes.Equal(got, data) {
				t.Error("loaded bytes differ from the image")
			}
		})
	}
}

func TestMemory_LoadIsAdditive(t *testing.T) {
	m := New()
	if err := m.Load(0x10, []byte{1, 2, 3, 4}); err != nil {
		t.Fatal(err)
	}
	if err := m.Load(0x12, []byte{9}); err != nil {
		t.Fatal(err)
	}
	want := []byte{1, 2, 9, 4}
	if got := m.Bytes()[0x10:0x14]; !bytes.Equal(got, want) {
		t.Errorf("memory = %v, want %v", got, want)
	}
}

func TestMemory_GetSet(t *testing.T) {
	m := New()
	m.Set(0xFFFF, 0x76)
	if m.Get(0xFFFF) != 0x76 {
		t.Errorf("Get(0xFFFF) = %#02x", m.Get(0xFFFF))
	}
	if m.Bytes()[0xFFFF] != 0x76 {
		t.Error("Bytes() is not the live buffer")
	}
}

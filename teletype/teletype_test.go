package teletype

import (
	"bufio"
	"bytes"
	"errors"
	"testing"
)

func TestFold(t *testing.T) {
	tests := []struct {
		name string
		in   byte
		want byte
	}{
		{"line feed", '\n', '\r'},
		{"carriage return", '\r', '\r'},
		{"lower a", 'a', 'A'},
		{"lower z", 'z', 'Z'},
		{"upper", 'Q', 'Q'},
		{"digit", '7', '7'},
		{"backtick", '`', '`'},
		{"brace", '{', '{'},
		{"escape", 0x1B, 0x1B},
		{"high bit", 0xE1, 0xE1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Fold(tt.in); got != tt.want {
				t.Errorf("Fold(%#02x) = %#02x, want %#02x", tt.in, got, tt.want)
			}
		})
	}
}

func TestPrintable(t *testing.T) {
	for i := 0; i < 256; i++ {
		b := byte(i)
		c := b & 0x7F
		wantOK := (c >= 32 && c <= 125) || c == '\n'

		got, ok := Printable(b)
		if ok != wantOK {
			t.Errorf("Printable(%#02x) ok = %v, want %v", b, ok, wantOK)
		}
		if got != c {
			t.Errorf("Printable(%#02x) = %#02x, want %#02x", b, got, c)
		}
	}
}

func TestEmit(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"letters", []byte("HELLO"), "HELLO"},
		{"parity stripped", []byte{'O' | 0x80, 'K' | 0x80}, "OK"},
		{"newline kept", []byte("A\nB"), "A\nB"},
		{"carriage return dropped", []byte("A\r\nB"), "A\nB"},
		{"tilde and del dropped", []byte{'~', 0x7F, 'x'}, "x"},
		{"bell dropped", []byte{0x07}, ""},
		{"masked collision", []byte{0x8A}, "\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			for _, b := range tt.in {
				if err := emit(&buf, b); err != nil {
					t.Fatal(err)
				}
			}
			if buf.String() != tt.want {
				t.Errorf("emitted %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestEmit_Flushes(t *testing.T) {
	var buf bytes.Buffer
	w := bufio.NewWriter(&buf)

	if err := emit(w, 'A'); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "A" {
		t.Errorf("buffered output not flushed: %q", buf.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("broken")
}

func TestEmit_WriteError(t *testing.T) {
	if err := emit(failingWriter{}, 'A'); err == nil {
		t.Error("expected write error")
	}
	if err := emit(failingWriter{}, 0x07); err != nil {
		t.Errorf("dropped character must not write: %v", err)
	}
}

package cpu

import (
	"testing"

	"altair/memory"
)

type portAccess struct {
	port, value uint8
}

func newEngine(t *testing.T, program ...byte) *Engine {
	t.Helper()
	e := New(memory.New())
	if err := e.Load(0, program); err != nil {
		t.Fatal(err)
	}
	return e
}

func TestEngine_InOut(t *testing.T) {
	e := newEngine(t,
		0xDB, 0x00, // IN 00h
		0xD3, 0x01, // OUT 01h
		0x3E, 'H', // MVI A,'H'
		0xD3, 0x01, // OUT 01h
	)

	var reads []uint8
	var writes []portAccess
	e.Attach(
		func(port uint8) uint8 {
			reads = append(reads, port)
			return 'X'
		},
		func(port, value uint8) {
			writes = append(writes, portAccess{port, value})
		})

	for i := 0; i < 4; i++ {
		e.Step()
	}

	if len(reads) != 1 || reads[0] != 0 {
		t.Errorf("reads = %v, want [0]", reads)
	}
	want := []portAccess{{1, 'X'}, {1, 'H'}}
	if len(writes) != len(want) {
		t.Fatalf("writes = %v, want %v", writes, want)
	}
	for i := range want {
		if writes[i] != want[i] {
			t.Errorf("write %d = %v, want %v", i, writes[i], want[i])
		}
	}
	if e.Cycles() != 10+10+7+10 {
		t.Errorf("Cycles() = %d, want 37", e.Cycles())
	}
	if e.PC() != 8 {
		t.Errorf("PC() = %#04x, want 8", e.PC())
	}
}

func TestEngine_ConditionalReturnTiming(t *testing.T) {
	tests := []struct {
		name       string
		ret        byte
		wantCycles uint64
		wantPC     uint16
	}{
		{"RZ taken", 0xC8, 10 + 4 + 11, 0x2000},
		{"RNZ not taken", 0xC0, 10 + 4 + 5, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEngine(t,
				0x31, 0x00, 0x10, // LXI SP,1000h
				0xAF,   // XRA A (sets Z)
				tt.ret, // RZ / RNZ
			)
			if err := e.Load(0x1000, []byte{0x00, 0x20}); err != nil {
				t.Fatal(err)
			}
			for i := 0; i < 3; i++ {
				e.Step()
			}
			if e.Cycles() != tt.wantCycles {
				t.Errorf("Cycles() = %d, want %d", e.Cycles(), tt.wantCycles)
			}
			if e.PC() != tt.wantPC {
				t.Errorf("PC() = %#04x, want %#04x", e.PC(), tt.wantPC)
			}
		})
	}
}

func TestEngine_ResetCycles(t *testing.T) {
	e := newEngine(t, 0x00, 0x00) // NOP NOP
	e.Step()
	e.ResetCycles()
	e.Step()
	if e.Cycles() != 4 {
		t.Errorf("Cycles() = %d, want 4", e.Cycles())
	}
}

func TestEngine_ResetKeepsMemory(t *testing.T) {
	e := newEngine(t, 0x00, 0x00, 0x00)
	e.Step()
	e.Step()
	e.Reset()

	if e.PC() != 0 || e.Cycles() != 0 {
		t.Errorf("after Reset PC = %#04x, cycles = %d", e.PC(), e.Cycles())
	}
	if err := e.Load(0x100, []byte{0xAA}); err != nil {
		t.Fatal(err)
	}
	e.Reset()
	if e.Memory()[0x100] != 0xAA {
		t.Error("Reset cleared memory")
	}
}

func TestEngine_UnattachedPorts(t *testing.T) {
	e := newEngine(t, 0xDB, 0x07, 0xD3, 0x07) // IN 07h, OUT 07h
	e.Attach(nil, nil)
	e.Step()
	e.Step()
	if e.PC() != 4 {
		t.Errorf("PC() = %#04x, want 4", e.PC())
	}
}

func TestTiming(t *testing.T) {
	tests := []struct {
		name          string
		op            uint8
		before, after uint16
		want          uint64
	}{
		{"nop", 0x00, 0, 1, 4},
		{"jmp", 0xC3, 0, 0x1234, 10},
		{"call", 0xCD, 0, 0x1234, 17},
		{"cnz taken", 0xC4, 0, 0x1234, 17},
		{"cnz not taken", 0xC4, 0x10, 0x13, 11},
		{"ret", 0xC9, 0, 0x50, 10},
		{"rc taken", 0xD8, 0, 0x50, 11},
		{"rc not taken", 0xD8, 0x40, 0x41, 5},
		{"xthl", 0xE3, 0, 1, 18},
		{"hlt", 0x76, 0, 1, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := timing(tt.op, tt.before, tt.after); got != tt.want {
				t.Errorf("timing(%#02x) = %d, want %d", tt.op, got, tt.want)
			}
		})
	}
}

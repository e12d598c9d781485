// Package cpu binds the execution engine to the Altair.
//
// Decoding and executing instructions is left to a Z80 core
// (github.com/koron-go/z80), which runs documented 8080 code unchanged.
// This package adds what the front end relies on: the 64K memory image,
// an 8080 cycle counter and the two i/o callback slots.
package cpu

import (
	"altair/memory"

	"github.com/koron-go/z80"
)

// Engine - the emulated processor
type Engine struct {
	z      z80.CPU
	mem    *memory.Memory
	cycles uint64

	// callback slots, invoked from within Step by IN and OUT
	input  func(port uint8) uint8
	output func(port uint8, value uint8)
}

// New returns a processor executing from mem, in reset state.
func New(mem *memory.Memory) *Engine {
	e := &Engine{mem: mem}
	e.Attach(nil, nil)
	e.z.Memory = mem
	e.z.IO = ioPorts{e}
	e.Reset()
	return e
}

// Attach fills the callback slots. A nil input reads 0, a nil output discards.
func (e *Engine) Attach(input func(port uint8) uint8, output func(port uint8, value uint8)) {
	if input == nil {
		input = func(uint8) uint8 { return 0 }
	}
	if output == nil {
		output = func(uint8, uint8) {}
	}
	e.input, e.output = input, output
}

// Reset puts registers into their power-on state (PC=0).
// Memory is left as it is.
func (e *Engine) Reset() {
	e.z.States = z80.States{}
	e.cycles = 0
}

// Step executes one instruction and accounts its cycles.
func (e *Engine) Step() {
	pc := e.z.PC
	op := e.mem.Get(pc)
	e.z.Step()
	e.cycles += timing(op, pc, e.z.PC)
}

// Cycles returns the cycles executed since the last ResetCycles.
func (e *Engine) Cycles() uint64 {
	return e.cycles
}

// ResetCycles zeroes the cycle counter
func (e *Engine) ResetCycles() {
	e.cycles = 0
}

// Load copies data into memory at offset.
func (e *Engine) Load(offset int, data []byte) error {
	return e.mem.Load(offset, data)
}

// Memory returns the live memory buffer
func (e *Engine) Memory() []byte {
	return e.mem.Bytes()
}

// PC returns the program counter
func (e *Engine) PC() uint16 {
	return e.z.PC
}

// ioPorts routes the core's port accesses to the callback slots
type ioPorts struct {
	e *Engine
}

func (p ioPorts) In(addr uint8) uint8 {
	return p.e.input(addr)
}

func (p ioPorts) Out(addr uint8, value uint8) {
	p.e.output(addr, value)
}

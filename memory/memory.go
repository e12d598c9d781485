package memory

import "fmt"

// Size of the Altair address space
const Size = 0x10000

// Memory - flat 64K of RAM as seen by the processor.
type Memory struct {
	buf [Size]byte
}

// New returns zeroed memory
func New() *Memory {
	return new(Memory)
}

// Get returns the byte at addr
func (m *Memory) Get(addr uint16) uint8 {
	return m.buf[addr]
}

// Set writes value at addr
func (m *Memory) Set(addr uint16, value uint8) {
	m.buf[addr] = value
}

// Load copies data into memory starting at offset.
// A load that doesn't fit is rejected as a whole.
func (m *Memory) Load(offset int, data []byte) error {
	if offset < 0 || offset > Size || len(data) > Size-offset {
		return fmt.Errorf("load of %d bytes at %#04x exceeds %d bytes of memory", len(data), offset, Size)
	}
	copy(m.buf[offset:], data)
	return nil
}

// Bytes returns the memory buffer itself, not a copy.
func (m *Memory) Bytes() []byte {
	return m.buf[:]
}

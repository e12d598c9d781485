// Package card emulates the Altair serial interface cards answering the
// processor's IN and OUT instructions: the single port 88-SIO and the
// dual port 88-2SIO. Both translate the readiness of a teletype into
// status register bits, with different polarity.
package card

import (
	"fmt"
	"io"
	"log"

	"altair/fault"
	"altair/teletype"
)

// Variant selects which card is plugged in.
type Variant int

const (
	// SIO : 88-SIO, status reads 1 while there is nothing to read
	SIO Variant = iota

	// SIO2 : 88-2SIO, status bit 0 (receive data register full)
	// and bit 1 (transmit data register empty)
	SIO2
)

// SenseSwitches is the front panel switch register, BASIC probes it at startup.
const SenseSwitches = 0xFF

// 88-2SIO status register bits
const (
	rdrf = 1 << 0 // receive data register full
	tdre = 1 << 1 // transmit data register empty
)

func (v Variant) String() string {
	switch v {
	case SIO:
		return "88-SIO"
	case SIO2:
		return "88-2SIO"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// ParseVariant accepts the settings file names "sio" and "2sio".
func ParseVariant(s string) (Variant, error) {
	switch s {
	case "sio":
		return SIO, nil
	case "2sio":
		return SIO2, nil
	default:
		return 0, fmt.Errorf("unknown card %q, want sio or 2sio", s)
	}
}

// Ports - device numbers the card answers to. Fixed before the processor starts.
type Ports struct {
	Data    int
	Control int
}

// DefaultPorts are the jumper settings Altair BASIC expects.
var DefaultPorts = Ports{Data: 1, Control: 0}

// Card answers the processor's i/o instructions
type Card interface {
	In(port uint8) uint8
	Out(port uint8, value uint8)
}

// New returns the card for variant v talking to terminal t.
func New(v Variant, p Ports, t teletype.Terminal, logger *log.Logger) Card {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	b := bus{ports: p, term: t, log: logger}
	if v == SIO2 {
		return &dualCard{b}
	}
	return &singleCard{b}
}

// bus - what both cards share: the jumpered ports and the teletype
type bus struct {
	ports Ports
	term  teletype.Terminal
	log   *log.Logger
}

func (b *bus) ready() bool {
	ready, err := b.term.InputReady()
	if err != nil {
		panic(fault.Wrap(fault.Environment, err, "terminal poll"))
	}
	return ready
}

// key returns the pending keystroke, 0 when there is none.
func (b *bus) key() uint8 {
	if !b.ready() {
		return 0
	}
	k, err := b.term.ReadKey()
	if err != nil {
		panic(fault.Wrap(fault.Environment, err, "terminal read"))
	}
	return k
}

// Out : only the data port is wired to the printer.
func (b *bus) Out(port uint8, value uint8) {
	if int(port) != b.ports.Data {
		return
	}
	if err := b.term.WriteByte(value & 0x7F); err != nil {
		panic(fault.Wrap(fault.Environment, err, "terminal write"))
	}
}

type singleCard struct {
	bus
}

func (c *singleCard) In(port uint8) uint8 {
	switch int(port) {
	case c.ports.Data:
		return c.key()
	case c.ports.Control:
		if c.ready() {
			return 0
		}
		return 1
	case SenseSwitches:
		return 0
	default:
		c.log.Printf("88-SIO: read from unmapped device %d", port)
		return 0
	}
}

type dualCard struct {
	bus
}

func (c *dualCard) In(port uint8) uint8 {
	switch int(port) {
	case c.ports.Data:
		return c.key()
	case c.ports.Control:
		if c.ready() {
			return tdre | rdrf
		}
		return tdre
	case SenseSwitches:
		return 0
	default:
		panic(fault.Protocolf("unknown device %d", port))
	}
}

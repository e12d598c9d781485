package teletype

import (
	"fmt"
	"io"
	"time"
)

// Terminal is the keyboard/printer side of an emulated serial card.
// InputReady must never block for longer than a few microseconds;
// ReadKey is only called after InputReady reported a pending byte.
type Terminal interface {
	InputReady() (bool, error)
	ReadKey() (byte, error)
	WriteByte(b byte) error
}

// PollTimeout bounds the raw terminal readiness check.
const PollTimeout = 10 * time.Microsecond

// ASCII characters the teletype treats specially
const (
	LF = '\n'
	CR = '\r'

	// lowest and highest character the printer accepts
	firstPrintable = 32
	lastPrintable  = 125
)

// Fold maps a keystroke to what the card hands the processor:
// line feed becomes carriage return, lower case letters become upper case.
func Fold(b byte) byte {
	switch {
	case b == LF:
		return CR
	case b >= 'a' && b <= 'z':
		return b - ('a' - 'A')
	default:
		return b
	}
}

// Printable strips the parity bit and reports whether the printer
// would emit the resulting character.
func Printable(b byte) (byte, bool) {
	b &= 0x7F
	if (b >= firstPrintable && b <= lastPrintable) || b == LF {
		return b, true
	}
	return b, false
}

type flusher interface {
	Flush() error
}

// emit prints b on w if the printer accepts it. Buffered writers are
// flushed on every call, output must appear as the program produces it.
func emit(w io.Writer, b byte) error {
	if c, ok := Printable(b); ok {
		if _, err := w.Write([]byte{c}); err != nil {
			return fmt.Errorf("write %#02x: %w", c, err)
		}
	}
	if f, ok := w.(flusher); ok {
		return f.Flush()
	}
	return nil
}

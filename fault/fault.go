package fault

/**
 * Separate package exists mainly in order to avoid cyclic imports:
 * the card raises faults from inside engine callbacks, the system loop
 * catches them, main reports them.
 */

import (
	"errors"
	"fmt"
)

// Kind classifies a fatal condition.
type Kind int

const (
	// Config : bad command line or settings file
	Config Kind = iota + 1

	// Protocol : the emulated program addressed a device the card does not know
	Protocol

	// Environment : terminal, poll or sleep primitive failed
	Environment
)

func (k Kind) String() string {
	switch k {
	case Config:
		return "configuration error"
	case Protocol:
		return "protocol error"
	case Environment:
		return "environment error"
	default:
		return fmt.Sprintf("fault(%d)", int(k))
	}
}

// Fault - fatal condition, always terminates the emulator.
// Raised with panic() where the caller can't return an error
// (engine i/o callbacks) and recovered by the run loop.
type Fault struct {
	Kind Kind
	Msg  string
	Err  error
}

func (f *Fault) Error() string {
	switch {
	case f.Msg != "" && f.Err != nil:
		return fmt.Sprintf("%s: %v", f.Msg, f.Err)
	case f.Err != nil:
		return f.Err.Error()
	default:
		return f.Msg
	}
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// Configf returns a configuration fault
func Configf(format string, args ...any) *Fault {
	return newf(Config, format, args...)
}

// Protocolf returns a protocol fault
func Protocolf(format string, args ...any) *Fault {
	return newf(Protocol, format, args...)
}

// Environmentf returns an environment fault
func Environmentf(format string, args ...any) *Fault {
	return newf(Environment, format, args...)
}

// Wrap attaches kind and message to err. nil stays nil.
func Wrap(kind Kind, err error, msg string) *Fault {
	if err == nil {
		return nil
	}
	return &Fault{Kind: kind, Msg: msg, Err: err}
}

// As returns the fault in err's chain, if there is one.
func As(err error) (*Fault, bool) {
	var f *Fault
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

func newf(kind Kind, format string, args ...any) *Fault {
	return &Fault{Kind: kind, Err: fmt.Errorf(format, args...)}
}

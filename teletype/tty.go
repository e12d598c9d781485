package teletype

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Mode - terminal attributes captured by EnterRawMode.
// The original attributes are kept for reference only, they are never
// restored: the terminal stays raw for the life of the process.
type Mode struct {
	Original *term.State
	Raw      unix.Termios
}

// TTY - the controlling terminal, read directly from its file descriptor.
type TTY struct {
	in   *os.File
	out  io.Writer
	fd   int
	key  [1]byte
	mode *Mode
}

// NewTTY returns a teletype reading keystrokes from in and printing to out
func NewTTY(in *os.File, out io.Writer) *TTY {
	return &TTY{
		in:  in,
		out: out,
		fd:  int(in.Fd()),
	}
}

// EnterRawMode switches off line buffering and echo on the input terminal.
// Signal generation stays on, so ^C still interrupts the emulator.
func (t *TTY) EnterRawMode() (*Mode, error) {
	if !term.IsTerminal(t.fd) {
		return nil, fmt.Errorf("%s is not a terminal", t.in.Name())
	}
	original, err := term.GetState(t.fd)
	if err != nil {
		return nil, fmt.Errorf("tcgetattr: %w", err)
	}

	attrs, err := unix.IoctlGetTermios(t.fd, ioctlGetTermios)
	if err != nil {
		return nil, fmt.Errorf("tcgetattr: %w", err)
	}
	attrs.Lflag &^= unix.ECHO | unix.ICANON
	attrs.Cc[unix.VMIN] = 1
	attrs.Cc[unix.VTIME] = 0
	if err := unix.IoctlSetTermios(t.fd, ioctlSetTermiosFlush, attrs); err != nil {
		return nil, fmt.Errorf("tcsetattr: %w", err)
	}

	t.mode = &Mode{Original: original, Raw: *attrs}
	return t.mode, nil
}

// Mode returns the attributes set by EnterRawMode, nil before that.
func (t *TTY) Mode() *Mode {
	return t.mode
}

// InputReady polls the input descriptor for at most PollTimeout.
func (t *TTY) InputReady() (bool, error) {
	for {
		var fds unix.FdSet
		fds.Zero()
		fds.Set(t.fd)
		timeout := unix.NsecToTimeval(PollTimeout.Nanoseconds())

		n, err := unix.Select(t.fd+1, &fds, nil, nil, &timeout)
		if errors.Is(err, unix.EINTR) {
			// the go runtime preempts with signals, just poll again
			continue
		}
		if err != nil {
			return false, fmt.Errorf("select: %w", err)
		}
		return n > 0 && fds.IsSet(t.fd), nil
	}
}

// ReadKey consumes one keystroke.
func (t *TTY) ReadKey() (byte, error) {
	n, err := t.in.Read(t.key[:])
	if n == 1 {
		return Fold(t.key[0]), nil
	}
	if err == nil {
		err = io.EOF
	}
	return 0, fmt.Errorf("read %s: %w", t.in.Name(), err)
}

// WriteByte prints a character.
func (t *TTY) WriteByte(b byte) error {
	return emit(t.out, b)
}

package teletype

import (
	"fmt"
	"io"

	"github.com/tarm/serial"
)

const lineBuffer = 256

// Line bridges the card to a host serial port, so a real terminal
// (or another machine) can talk to the emulated program.
type Line struct {
	port  io.ReadWriteCloser
	queue *keyQueue
}

// OpenLine opens a host serial device, 8N1 at the given baud rate.
func OpenLine(device string, baud int) (*Line, error) {
	port, err := serial.OpenPort(&serial.Config{Name: device, Baud: baud})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", device, err)
	}
	return NewLine(port), nil
}

// NewLine starts receiving from port.
func NewLine(port io.ReadWriteCloser) *Line {
	l := &Line{
		port:  port,
		queue: newKeyQueue(lineBuffer),
	}
	go l.receive()
	return l
}

func (l *Line) receive() {
	buf := make([]byte, 64)
	for {
		n, err := l.port.Read(buf)
		for _, b := range buf[:n] {
			l.queue.put(b)
		}
		if err != nil {
			l.queue.fail(fmt.Errorf("serial receive: %w", err))
			return
		}
	}
}

// InputReady reports whether a received character is waiting.
func (l *Line) InputReady() (bool, error) {
	return l.queue.ready()
}

// ReadKey returns the next received character.
func (l *Line) ReadKey() (byte, error) {
	b, err := l.queue.take()
	if err != nil {
		return 0, err
	}
	return Fold(b), nil
}

// WriteByte transmits a character.
// The port is hidden behind a plain writer: serial.Port.Flush discards
// untransmitted data instead of pushing it out.
func (l *Line) WriteByte(b byte) error {
	return emit(struct{ io.Writer }{l.port}, b)
}

// Close closes the port, the receiver stops with the next read error.
func (l *Line) Close() error {
	return l.port.Close()
}

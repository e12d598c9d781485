package console

import (
	"io"
	"sync"
)

// Simple console type definition
type Simple struct {
	mu  sync.Mutex
	out io.Writer
}

// NewSimple returns a console writing to out (normally os.Stderr)
func NewSimple(out io.Writer) *Simple {
	return &Simple{out: out}
}

// WriteConsole displays a string on the console
func (c *Simple) WriteConsole(msg string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, line := range lines(msg) {
		if _, err := io.WriteString(c.out, line+"\n"); err != nil {
			return err
		}
	}
	return nil
}

package console

import (
	"sync"

	"github.com/jroimartin/gocui"
)

// ViewWriter appends to a gocui view from any goroutine.
// gocui runs Update callbacks in no particular order, so writes are
// collected here and drained, in order, by a single pending update.
type ViewWriter struct {
	g *gocui.Gui
	v *gocui.View

	mu     sync.Mutex
	buf    []byte
	queued bool
}

// NewViewWriter returns a writer for gocui view v
func NewViewWriter(g *gocui.Gui, v *gocui.View) *ViewWriter {
	return &ViewWriter{g: g, v: v}
}

func (w *ViewWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	w.buf = append(w.buf, p...)
	schedule := !w.queued
	w.queued = true
	w.mu.Unlock()

	if schedule {
		w.g.Update(w.drain)
	}
	return len(p), nil
}

func (w *ViewWriter) drain(g *gocui.Gui) error {
	w.mu.Lock()
	buf := w.buf
	w.buf = nil
	w.queued = false
	w.mu.Unlock()

	_, err := w.v.Write(buf)
	return err
}

// Gui type definition
type Gui struct {
	w *ViewWriter
}

// NewGui returns a console printing to the gocui status view
func NewGui(g *gocui.Gui, v *gocui.View) *Gui {
	return &Gui{w: NewViewWriter(g, v)}
}

// WriteConsole displays a string on the console
func (c *Gui) WriteConsole(msg string) error {
	for _, line := range lines(msg) {
		if _, err := c.w.Write([]byte(line + "\n")); err != nil {
			return err
		}
	}
	return nil
}

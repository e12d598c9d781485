package teletype

import (
	"io"

	"altair/console"

	"github.com/jroimartin/gocui"
)

const panelBuffer = 1024

// Panel - teletype living in a gocui view instead of the raw terminal.
// Keystrokes arrive through the view editor on the gocui goroutine,
// output is handed back to it through a view writer.
type Panel struct {
	out   io.Writer
	queue *keyQueue
}

// NewPanel takes over view v: it becomes editable and its editor feeds
// the keyboard queue.
func NewPanel(g *gocui.Gui, v *gocui.View) *Panel {
	p := &Panel{
		out:   console.NewViewWriter(g, v),
		queue: newKeyQueue(panelBuffer),
	}
	v.Editable = true
	v.Editor = gocui.EditorFunc(p.edit)
	return p
}

func (p *Panel) edit(v *gocui.View, key gocui.Key, ch rune, mod gocui.Modifier) {
	if b, ok := keyByte(key, ch); ok {
		p.queue.offer(b)
	}
}

// keyByte translates a gocui key event into the byte a terminal would send.
// Enter sends a line feed, like the tty with ICRNL set.
func keyByte(key gocui.Key, ch rune) (byte, bool) {
	switch {
	case ch != 0:
		if ch > 0x7F {
			return 0, false
		}
		return byte(ch), true
	case key == gocui.KeyEnter:
		return LF, true
	case key < 0x80:
		// control keys, space, backspace
		return byte(key), true
	default:
		// arrows, function keys
		return 0, false
	}
}

// InputReady reports whether a key was typed into the view.
func (p *Panel) InputReady() (bool, error) {
	return p.queue.ready()
}

// ReadKey returns the next typed key.
func (p *Panel) ReadKey() (byte, error) {
	b, err := p.queue.take()
	if err != nil {
		return 0, err
	}
	return Fold(b), nil
}

// WriteByte prints a character in the view.
func (p *Panel) WriteByte(b byte) error {
	return emit(p.out, b)
}

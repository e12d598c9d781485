package teletype

import (
	"bytes"
	"errors"
	"io"
	"os"
	"testing"
)

func newPipeTTY(t *testing.T) (*TTY, *os.File, *bytes.Buffer) {
	t.Helper()
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		r.Close()
		w.Close()
	})
	var out bytes.Buffer
	return NewTTY(r, &out), w, &out
}

func TestTTY_InputReady(t *testing.T) {
	tty, w, _ := newPipeTTY(t)

	ready, err := tty.InputReady()
	if err != nil {
		t.Fatal(err)
	}
	if ready {
		t.Fatal("empty input reported ready")
	}

	if _, err := w.Write([]byte("a\n")); err != nil {
		t.Fatal(err)
	}

	for _, want := range []byte{'A', '\r'} {
		ready, err := tty.InputReady()
		if err != nil {
			t.Fatal(err)
		}
		if !ready {
			t.Fatalf("pending %q not reported", want)
		}
		got, err := tty.ReadKey()
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("ReadKey() = %#02x, want %#02x", got, want)
		}
	}

	ready, err = tty.InputReady()
	if err != nil {
		t.Fatal(err)
	}
	if ready {
		t.Error("drained input reported ready")
	}
}

func TestTTY_ReadKeyEOF(t *testing.T) {
	tty, w, _ := newPipeTTY(t)
	w.Close()

	ready, err := tty.InputReady()
	if err != nil {
		t.Fatal(err)
	}
	if !ready {
		t.Fatal("end of input should poll readable")
	}
	if _, err := tty.ReadKey(); !errors.Is(err, io.EOF) {
		t.Errorf("ReadKey() error = %v, want EOF", err)
	}
}

func TestTTY_WriteByte(t *testing.T) {
	tty, _, out := newPipeTTY(t)
	for _, b := range []byte("OK\r\n\x07") {
		if err := tty.WriteByte(b); err != nil {
			t.Fatal(err)
		}
	}
	if out.String() != "OK\n" {
		t.Errorf("output = %q, want %q", out.String(), "OK\n")
	}
}

func TestTTY_EnterRawModeNotATerminal(t *testing.T) {
	tty, _, _ := newPipeTTY(t)
	if _, err := tty.EnterRawMode(); err == nil {
		t.Error("raw mode on a pipe should fail")
	}
	if tty.Mode() != nil {
		t.Error("mode recorded after failure")
	}
}

package logger

import (
	"fmt"
	"io"
	"log"
	"os"
)

// New returns the diagnostic logger. Without a path nothing is logged:
// stdout and stderr belong to the emulated terminal.
func New(path string) (*log.Logger, error) {
	if len(path) == 0 {
		return log.New(io.Discard, "", 0), nil
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0666)
	if err != nil {
		return nil, fmt.Errorf("open log: %w", err)
	}
	l := log.New(f, "ALTAIR ", log.Ldate|log.Ltime|log.Lshortfile)
	l.Printf("Initializing %s", path)
	return l, nil
}

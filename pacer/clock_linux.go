//go:build linux

package pacer

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

// Sleep suspends the calling thread for d. An interrupted sleep resumes
// with the time that was left.
func (SystemClock) Sleep(d time.Duration) error {
	ts := unix.NsecToTimespec(d.Nanoseconds())
	for {
		var left unix.Timespec
		err := unix.Nanosleep(&ts, &left)
		if err == nil {
			return nil
		}
		if !errors.Is(err, unix.EINTR) {
			return fmt.Errorf("nanosleep: %w", err)
		}
		ts = left
	}
}

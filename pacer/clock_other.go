//go:build !linux

package pacer

import "time"

// Sleep suspends the calling goroutine for d.
func (SystemClock) Sleep(d time.Duration) error {
	time.Sleep(d)
	return nil
}

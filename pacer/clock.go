package pacer

import "time"

// Clock - time source and timed wait of the pacer
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration) error
}

// SystemClock is the host's monotonic clock.
type SystemClock struct{}

// Now returns the current time, with a monotonic reading.
func (SystemClock) Now() time.Time {
	return time.Now()
}

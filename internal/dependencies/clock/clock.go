package clock

import "time"

// Clock provides time operations that can be mocked for testing.
// After is what the quiz phase loop waits on between broadcasts.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

// RealClock implements Clock using the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// After waits for the duration to elapse and then delivers the current time
func (c *RealClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

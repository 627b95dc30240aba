package clock

import "time"

// Clocker abstracts the time source so tests can pin "now".
type Clocker interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// New returns a SystemClock backed by time.Now.
func New() *SystemClock {
	return &SystemClock{}
}

// Now returns the current system time.
func (*SystemClock) Now() time.Time {
	return time.Now()
}

// Fixed is a Clocker pinned to a single instant, for tests.
type Fixed struct {
	At time.Time
}

// Now returns the pinned instant.
func (f Fixed) Now() time.Time {
	return f.At
}

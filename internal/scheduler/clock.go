package scheduler

import "time"

// Clock supplies the current wall-clock instant once per tick.
type Clock interface {
	Now() time.Time
}

// systemClock reads the real wall clock.
type systemClock struct{}

// Now returns the current local time.
func (systemClock) Now() time.Time {
	return time.Now()
}

// SystemClock returns a Clock backed by the system wall clock.
//
//nolint:ireturn,nolintlint // Callers depend on the Clock interface.
func SystemClock() Clock {
	return systemClock{}
}

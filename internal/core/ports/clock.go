package ports

import "time"

// Clock supplies the current instant. The cutoff engine derives the business
// day from it, so tests and manual runs can pin time instead of reading the
// system clock.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock reading the system time.
type SystemClock struct{}

// Now returns the current system time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

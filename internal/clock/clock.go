// Package clock abstracts "now" so classification stays deterministic
// under test. Engine functions take explicit time.Time values; callers
// obtain them from a Clock.
package clock

import "time"

// Clock supplies the current instant. Implementations are safe for
// concurrent use and always return a value, never a live reference.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// System returns a Clock backed by the wall clock.
func System() Clock {
	return systemClock{}
}

type fixedClock struct {
	at time.Time
}

func (c fixedClock) Now() time.Time {
	return c.at
}

// Fixed returns a Clock pinned to at, for tests and replay.
func Fixed(at time.Time) Clock {
	return fixedClock{at: at}
}

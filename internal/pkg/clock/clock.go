package clock

import "time"

type Clock interface {
	Now() time.Time
	// Today is Now truncated to a UTC calendar date. Reservation ranges are
	// whole days, so most callers want this rather than Now.
	Today() time.Time
}

type realClock struct{}

func NewRealClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) Today() time.Time {
	return Midnight(time.Now().UTC())
}

func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FrozenClock reports a fixed instant. Tests mutate it directly.
type FrozenClock struct {
	Current time.Time
}

func NewFrozenClock(t time.Time) *FrozenClock {
	return &FrozenClock{Current: t}
}

func (c *FrozenClock) Now() time.Time   { return c.Current }
func (c *FrozenClock) Today() time.Time { return Midnight(c.Current.UTC()) }

func (c *FrozenClock) Advance(d time.Duration) {
	c.Current = c.Current.Add(d)
}

package utils

import (
	"sync"
	"time"
)

// TimestampResolution is the precision kept for persisted timestamps.
// PostgreSQL stores microseconds, so anything finer would not survive a round trip.
const TimestampResolution = time.Microsecond

type Clock interface {
	Now() time.Time
}

// MonotonicClock hands out UTC timestamps truncated to TimestampResolution that
// strictly increase across calls, even when the wall clock stalls or steps back.
type MonotonicClock struct {
	mu   sync.Mutex
	last time.Time
	now  func() time.Time
}

func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{now: time.Now}
}

// NewMonotonicClockFrom is used by tests to drive the clock from a fixed source.
func NewMonotonicClockFrom(now func() time.Time) *MonotonicClock {
	return &MonotonicClock{now: now}
}

func (c *MonotonicClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := c.now().UTC().Truncate(TimestampResolution)
	if !t.After(c.last) {
		t = c.last.Add(TimestampResolution)
	}
	c.last = t
	return t
}

// NextAfter returns candidate, or the smallest representable instant after previous
// when candidate does not move past it.
func NextAfter(candidate, previous time.Time) time.Time {
	candidate = candidate.UTC().Truncate(TimestampResolution)
	if candidate.After(previous) {
		return candidate
	}
	return previous.UTC().Truncate(TimestampResolution).Add(TimestampResolution)
}

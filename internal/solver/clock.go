package solver

import "sync/atomic"

// Clock is a monotonic logical clock stamping trace events.
//
// Trace ordering uses sequence numbers, never wall-clock timestamps, so
// event order is stable across replays of the same seeded run.
type Clock struct {
	seq atomic.Int64
}

// NewClock creates a clock starting at 0; the first Next returns 1.
func NewClock() *Clock {
	return &Clock{}
}

// Next returns the next sequence number.
// Each call returns a unique, strictly increasing value.
func (c *Clock) Next() int64 {
	return c.seq.Add(1)
}

// Current returns the latest issued sequence number without incrementing.
func (c *Clock) Current() int64 {
	return c.seq.Load()
}

package engine

import "sync/atomic"

// Clock is a monotonic logical clock for journal ordering.
//
// Every journal event is stamped with a strictly increasing seq number from
// this clock. Wall-clock timestamps are recorded for display but never used
// for ordering, so replaying a journal yields the same order every time.
//
// Thread-safety: Clock is safe for concurrent use (atomic operations),
// though the engine's single-writer discipline means one goroutine
// typically calls Next().
type Clock struct {
	seq atomic.Int64
}

// NewClock creates a new clock starting at 0.
func NewClock() *Clock {
	return &Clock{}
}

// NewClockAt creates a new clock starting at a specific sequence number.
// Used on load to resume from the journal's last known position.
func NewClockAt(start int64) *Clock {
	c := &Clock{}
	c.seq.Store(start)
	return c
}

// Next returns the next sequence number and increments the clock.
func (c *Clock) Next() int64 {
	return c.seq.Add(1)
}

// Current returns the current sequence number without incrementing.
func (c *Clock) Current() int64 {
	return c.seq.Load()
}

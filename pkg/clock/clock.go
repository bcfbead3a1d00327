package clock

import "time"

// DefaultMaxDelta bounds a single integration step after a stall.
const DefaultMaxDelta = 0.05

// FrameClock turns a stream of frame timestamps into per-frame delta times.
type FrameClock struct {
	MaxDelta float64 // seconds

	last    time.Duration
	started bool
}

// NewFrameClock creates a clock clamping deltas to maxDelta seconds.
func NewFrameClock(maxDelta float64) *FrameClock {
	if maxDelta <= 0 {
		maxDelta = DefaultMaxDelta
	}
	return &FrameClock{MaxDelta: maxDelta}
}

// Tick records ts and returns the seconds elapsed since the previous tick,
// clamped to [0, MaxDelta]. The first tick after a reset returns 0.
func (c *FrameClock) Tick(ts time.Duration) float64 {
	if !c.started {
		c.started = true
		c.last = ts
		return 0
	}

	dt := (ts - c.last).Seconds()
	c.last = ts

	if dt < 0 {
		return 0
	}
	if dt > c.MaxDelta {
		return c.MaxDelta
	}
	return dt
}

// Reset forgets the previous timestamp.
func (c *FrameClock) Reset() {
	c.started = false
	c.last = 0
}

// Started reports whether a timestamp has been recorded since the last reset.
func (c *FrameClock) Started() bool {
	return c.started
}

package core

import "time"

// DefaultMaxFrameDelta caps the simulated time of a single frame. Longer
// hitches lose time instead of being replayed.
const DefaultMaxFrameDelta = 33 * time.Millisecond

// FrameClock converts frame timestamps into clamped simulation deltas.
type FrameClock struct {
	last     time.Time
	maxDelta time.Duration
}

// NewFrameClock creates a clock with the given cap. A non-positive cap uses
// DefaultMaxFrameDelta.
func NewFrameClock(maxDelta time.Duration) *FrameClock {
	if maxDelta <= 0 {
		maxDelta = DefaultMaxFrameDelta
	}
	return &FrameClock{maxDelta: maxDelta}
}

// Tick records a frame at now and returns the elapsed seconds since the
// previous frame, clamped to [0, maxDelta]. The first tick returns 0.
func (c *FrameClock) Tick(now time.Time) float64 {
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	elapsed := now.Sub(c.last)
	c.last = now
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > c.maxDelta {
		elapsed = c.maxDelta
	}
	return elapsed.Seconds()
}

// Reset forgets the previous frame so the next tick starts from zero.
func (c *FrameClock) Reset() {
	c.last = time.Time{}
}

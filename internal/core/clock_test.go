package core

import (
	"math"
	"testing"
	"time"
)

func TestFrameClockFirstTickIsZero(t *testing.T) {
	c := NewFrameClock(0)
	if dt := c.Tick(time.Unix(100, 0)); dt != 0 {
		t.Errorf("first Tick() = %f, expected 0", dt)
	}
	// Non-positive caps fall back to the default
	if dt := c.Tick(time.Unix(101, 0)); dt != DefaultMaxFrameDelta.Seconds() {
		t.Errorf("Tick() after 1s = %f, expected default cap %f", dt, DefaultMaxFrameDelta.Seconds())
	}
}

func TestFrameClockClampsHitches(t *testing.T) {
	start := time.Unix(100, 0)

	tests := []struct {
		name     string
		elapsed  time.Duration
		expected float64
	}{
		{"regular 60fps frame", 16 * time.Millisecond, 0.016},
		{"exactly at cap", 33 * time.Millisecond, 0.033},
		{"hitch is clamped", 250 * time.Millisecond, 0.033},
		{"clock going backwards", -5 * time.Millisecond, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewFrameClock(33 * time.Millisecond)
			c.Tick(start)
			dt := c.Tick(start.Add(tc.elapsed))
			if math.Abs(dt-tc.expected) > 1e-9 {
				t.Errorf("Tick() = %f, expected %f", dt, tc.expected)
			}
		})
	}
}

func TestFrameClockReset(t *testing.T) {
	c := NewFrameClock(33 * time.Millisecond)
	start := time.Unix(100, 0)
	c.Tick(start)
	c.Reset()

	// After a reset the long gap since the last frame is not simulated
	if dt := c.Tick(start.Add(10 * time.Second)); dt != 0 {
		t.Errorf("Tick() after Reset = %f, expected 0", dt)
	}
}

package physics

import "time"

// FrameClock turns wall-clock frame timestamps into a clamped delta.
type FrameClock struct {
	MaxDelta float64

	last    time.Time
	started bool
	delta   float64
}

func NewFrameClock(maxDelta float64) *FrameClock {
	return &FrameClock{MaxDelta: maxDelta}
}

// Tick records now and returns the seconds elapsed since the previous
// tick, clamped to [0, MaxDelta]. The first tick returns 0.
func (c *FrameClock) Tick(now time.Time) float64 {
	if !c.started {
		c.started = true
		c.last = now
		c.delta = 0
		return 0
	}
	d := now.Sub(c.last).Seconds()
	if d > 0 {
		c.last = now
	}
	c.delta = clampDelta(d, c.MaxDelta)
	return c.delta
}

// Delta returns the value of the last Tick.
func (c *FrameClock) Delta() float64 {
	return c.delta
}

// Now returns the timestamp of the last accepted tick.
func (c *FrameClock) Now() time.Time {
	return c.last
}

func clampDelta(d, maxDelta float64) float64 {
	if d <= 0 {
		return 0
	}
	if maxDelta > 0 && d > maxDelta {
		return maxDelta
	}
	return d
}

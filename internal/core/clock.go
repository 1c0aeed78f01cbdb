package core

import "time"

// Clock turns wall-clock tick times into clamped delta seconds.
// A suspended process (laptop lid, SIGSTOP, debugger) resumes with a bounded
// step instead of one huge jump that would skip gameplay.
type Clock struct {
	nominal  float64
	maxDelta float64
	last     time.Time
	started  bool
}

// NewClock creates a clock for the given tick rate. maxDelta <= 0 defaults
// to 1/15 s.
func NewClock(tickRate int, maxDelta float64) *Clock {
	if tickRate <= 0 {
		tickRate = 60
	}
	if maxDelta <= 0 {
		maxDelta = 1.0 / 15.0
	}
	return &Clock{
		nominal:  1.0 / float64(tickRate),
		maxDelta: maxDelta,
	}
}

// Tick records a tick at now and returns the delta since the previous tick.
// The first tick returns the nominal tick interval.
func (c *Clock) Tick(now time.Time) float64 {
	if !c.started {
		c.started = true
		c.last = now
		return min(c.nominal, c.maxDelta)
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return ClampF(dt, 0, c.maxDelta)
}

// MaxDelta returns the clamp bound in seconds.
func (c *Clock) MaxDelta() float64 {
	return c.maxDelta
}

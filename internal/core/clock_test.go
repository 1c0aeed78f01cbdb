package core

import (
	"testing"
	"time"
)

func TestClockFirstTickIsNominal(t *testing.T) {
	c := NewClock(60, 1.0/15.0)
	dt := c.Tick(time.Unix(100, 0))

	if dt != 1.0/60.0 {
		t.Errorf("first Tick() = %f, expected %f", dt, 1.0/60.0)
	}
}

func TestClockDelta(t *testing.T) {
	c := NewClock(60, 1.0/15.0)
	base := time.Unix(100, 0)
	c.Tick(base)

	dt := c.Tick(base.Add(20 * time.Millisecond))
	if dt < 0.0199 || dt > 0.0201 {
		t.Errorf("Tick() = %f, expected ~0.02", dt)
	}
}

func TestClockClampsSuspension(t *testing.T) {
	c := NewClock(60, 1.0/15.0)
	base := time.Unix(100, 0)
	c.Tick(base)

	// Process suspended for a minute
	dt := c.Tick(base.Add(time.Minute))
	if dt != 1.0/15.0 {
		t.Errorf("Tick() after suspension = %f, expected clamp %f", dt, 1.0/15.0)
	}
}

func TestClockNeverNegative(t *testing.T) {
	c := NewClock(60, 0)
	base := time.Unix(100, 0)
	c.Tick(base)

	if dt := c.Tick(base.Add(-time.Second)); dt != 0 {
		t.Errorf("Tick() backwards = %f, expected 0", dt)
	}
	if c.MaxDelta() != 1.0/15.0 {
		t.Errorf("MaxDelta() default = %f", c.MaxDelta())
	}
}

package utils

import "time"

// FrameGate lets the driver loop run an update at most once per interval
// without blocking. The caller polls Ready every iteration.
type FrameGate struct {
	interval time.Duration
	last     time.Time
}

// NewFrameGate targets the given number of steps per second. Non-positive
// rates fall back to 20.
func NewFrameGate(perSecond int) *FrameGate {
	if perSecond <= 0 {
		perSecond = 20
	}
	return &FrameGate{interval: time.Second / time.Duration(perSecond)}
}

// Interval returns the minimum time between two steps
func (g *FrameGate) Interval() time.Duration {
	return g.interval
}

// Ready reports whether a full interval has passed since the last step. When
// it returns true, now becomes the reference for the next step.
func (g *FrameGate) Ready(now time.Time) bool {
	if g.last.IsZero() {
		g.last = now
		return true
	}
	if now.Sub(g.last) < g.interval {
		return false
	}
	g.last = now
	return true
}

// Remaining returns how long until the gate opens, zero if it already is
func (g *FrameGate) Remaining(now time.Time) time.Duration {
	if g.last.IsZero() {
		return 0
	}
	return max(g.interval-now.Sub(g.last), 0)
}

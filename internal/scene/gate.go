package scene

import (
	"github.com/vovakirdan/consulting-chaos/internal/core"
)

// gate is the "not started" gate every stage opens with: the first
// Enter/Space starts the stage stopwatch.
type gate struct {
	watch core.Stopwatch
}

// reset closes the gate again.
func (g *gate) reset() { g.watch.Reset() }

// started reports whether the stage is running.
func (g *gate) started() bool { return g.watch.Started() }

// open starts the stopwatch if ev is a start key. It reports whether the
// event was consumed by the gate.
func (g *gate) open(ctx *RunContext, ev core.KeyEvent) bool {
	if g.watch.Started() {
		return false
	}
	if ev.IsStart() {
		g.watch.Start(ctx.Now())
	}
	return true
}

// elapsed returns the stage time so far.
func (g *gate) elapsed(ctx *RunContext) float64 {
	return g.watch.Elapsed(ctx.Now())
}

// stop freezes the stopwatch and returns the final time.
func (g *gate) stop(ctx *RunContext) float64 {
	now := ctx.Now()
	g.watch.Stop(now)
	return g.watch.Elapsed(now)
}

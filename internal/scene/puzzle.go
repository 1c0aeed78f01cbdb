package scene

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/consulting-chaos/internal/core"
	"github.com/vovakirdan/consulting-chaos/internal/games/calendar"
	"github.com/vovakirdan/consulting-chaos/internal/score"
	"github.com/vovakirdan/consulting-chaos/internal/sfx"
)

// PuzzleGameName is the result name of the placement stage.
const PuzzleGameName = "Calendar Tetris"

// PuzzleGame is the calendar placement stage.
type PuzzleGame struct {
	base
	gate
	engine *calendar.Engine
	queue  []calendar.Shape // fixed queue; nil draws one on Enter
	done   bool
}

// NewPuzzleGame creates the placement stage. The queue is drawn on Enter.
func NewPuzzleGame() *PuzzleGame { return &PuzzleGame{} }

func (*PuzzleGame) Kind() Kind    { return KindPuzzleGame }
func (*PuzzleGame) ID() string    { return "calendar" }
func (*PuzzleGame) Title() string { return PuzzleGameName }

func (s *PuzzleGame) Enter(ctx *RunContext) {
	cfg := ctx.Config.Calendar
	s.gate.reset()
	s.done = false
	queue := s.queue
	if queue == nil {
		queue = calendar.DrawQueue(ctx.Rand, cfg.QueueLength)
	}
	s.engine = calendar.NewEngine(cfg.GridW, cfg.GridH, queue)
}

func (s *PuzzleGame) HandleKey(ctx *RunContext, ev core.KeyEvent) Transition {
	if ev.Key == core.KeyEscape {
		return Quit()
	}
	if s.done || s.gate.open(ctx, ev) {
		return None()
	}

	if dx, dy, ok := ev.Direction(); ok {
		s.engine.Move(dx, dy)
		return None()
	}

	switch {
	case ev.Key == core.KeyRune && (ev.Char == 'z' || ev.Char == 'Z'):
		s.engine.Rotate(calendar.CounterClockwise)
	case ev.Key == core.KeyRune && (ev.Char == 'x' || ev.Char == 'X'):
		s.engine.Rotate(calendar.Clockwise)
	case ev.Key == core.KeySpace:
		return s.place(ctx)
	case ev.Key == core.KeyEnter:
		return s.finish(ctx)
	}
	return None()
}

func (s *PuzzleGame) place(ctx *RunContext) Transition {
	finished, err := s.engine.Place()
	switch {
	case errors.Is(err, calendar.ErrDoesNotFit):
		ctx.Notify("Doesn't fit here")
		ctx.Cue(sfx.CueMiss)
		return None()
	case err != nil:
		return s.finish(ctx)
	}
	ctx.Cue(sfx.CuePlace)
	if finished {
		return s.finish(ctx)
	}
	return None()
}

func (s *PuzzleGame) finish(ctx *RunContext) Transition {
	s.done = true
	cfg := ctx.Config.Calendar
	elapsed := s.gate.stop(ctx)
	unused := s.engine.Unused()
	res := score.NewResult(PuzzleGameName, elapsed,
		calendar.Penalty(elapsed, unused, cfg),
		map[string]any{
			"over_seconds":   calendar.OverSeconds(elapsed, cfg),
			"unused_pieces":  unused,
			"unused_penalty": float64(unused) * cfg.UnusedPiecePenalty,
			"filled":         s.engine.FilledCount(),
		},
	)
	ctx.record(res)
	ctx.Cue(sfx.CueFinish)
	return To(NewInterludeAfter(res, NewFridayEscape()))
}

// PuzzleSnapshot is the render state of the placement stage.
type PuzzleSnapshot struct {
	Started  bool
	Elapsed  float64
	Current  string // empty when the queue is exhausted
	Upcoming []string
	Anchor   core.Coord
	Active   []core.Coord
	Fits     bool
	Unused   int
	Filled   int
}

// Snapshot returns the current render state.
func (s *PuzzleGame) Snapshot(ctx *RunContext) PuzzleSnapshot {
	snap := PuzzleSnapshot{
		Started: s.gate.started(),
		Elapsed: s.gate.elapsed(ctx),
		Anchor:  s.engine.Anchor(),
		Active:  s.engine.Active(),
		Fits:    s.engine.Fits(),
		Unused:  s.engine.Unused(),
		Filled:  s.engine.FilledCount(),
	}
	if p, ok := s.engine.Current(); ok {
		snap.Current = p.Shape.Name
	}
	for _, p := range s.engine.Upcoming(3) {
		snap.Upcoming = append(snap.Upcoming, p.Shape.Name)
	}
	return snap
}

var puzzleBriefing = []string{
	"STRATEGIC PLANNING SCENARIO:",
	"Optimize the executive calendar by scheduling",
	"critical meetings without conflicts.",
	"",
	"Arrows move · Z/X rotate · Space places",
	"Enter finishes early (10s penalty per unscheduled meeting)",
}

func (s *PuzzleGame) Render(ctx *RunContext, dst *core.Screen) {
	snap := s.Snapshot(ctx)
	cfg := ctx.Config.Calendar
	hint := ""
	if snap.Started {
		hint = "Arrows: move · Z/X: rotate · Space: place · Enter: finish"
	}
	drawHeader(dst, PuzzleGameName, snap.Elapsed, hint)
	timerColor := core.ColorMuted
	if snap.Elapsed > cfg.TargetSeconds {
		timerColor = core.ColorWarn
	}
	drawRight(dst, 1, fmt.Sprintf("Target: %.0fs", cfg.TargetSeconds), timerColor)

	// Each cell is two columns wide so the grid looks square.
	gw, gh := s.engine.Width(), s.engine.Height()
	frame := core.NewRect(4, 3, gw*2+2, gh+2)
	dst.DrawBox(frame, core.ColorWall)
	for y := 0; y < gh; y++ {
		for x := 0; x < gw; x++ {
			sx, sy := frame.X+1+x*2, frame.Y+1+y
			if p := s.engine.At(x, y); p != nil {
				dst.SetColored(sx, sy, '█', p.Shape.Color)
				dst.SetColored(sx+1, sy, '█', p.Shape.Color)
			} else {
				dst.SetColored(sx, sy, '·', core.ColorMuted)
			}
		}
	}

	if snap.Current != "" {
		c := core.ColorAccent
		if !snap.Fits {
			c = core.ColorBad
		}
		for _, off := range snap.Active {
			p := snap.Anchor.Plus(off)
			if p.X < 0 || p.X >= gw || p.Y < 0 || p.Y >= gh {
				continue
			}
			sx, sy := frame.X+1+p.X*2, frame.Y+1+p.Y
			dst.SetColored(sx, sy, '▒', c)
			dst.SetColored(sx+1, sy, '▒', c)
		}
	}

	px := frame.Right() + 3
	y := frame.Y
	if snap.Current != "" {
		dst.DrawTextColored(px, y, "Current: "+snap.Current, core.ColorAccent)
	} else {
		dst.DrawTextColored(px, y, "All meetings scheduled", core.ColorGood)
	}
	y += 2
	dst.DrawTextColored(px, y, "Up next:", core.ColorMuted)
	for i, name := range snap.Upcoming {
		dst.DrawTextColored(px+2, y+1+i, name, core.ColorDefault)
	}
	y += 5
	if snap.Unused > 0 {
		dst.DrawTextColored(px, y, fmt.Sprintf("Unused: %d (%.0fs each)", snap.Unused, cfg.UnusedPiecePenalty), core.ColorWarn)
	}
	dst.DrawTextColored(px, y+1, fmt.Sprintf("Filled: %d/%d", snap.Filled, gw*gh), core.ColorGood)

	if !snap.Started {
		drawBriefing(dst, "CALENDAR OPTIMIZATION ASSESSMENT", puzzleBriefing)
	}
}

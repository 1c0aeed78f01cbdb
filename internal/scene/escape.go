package scene

import (
	"fmt"

	"github.com/vovakirdan/consulting-chaos/internal/core"
	"github.com/vovakirdan/consulting-chaos/internal/games/escape"
	"github.com/vovakirdan/consulting-chaos/internal/score"
	"github.com/vovakirdan/consulting-chaos/internal/sfx"
)

// FridayEscapeName is the result name of the chase stage.
const FridayEscapeName = "Friday Escape"

// agentGlyphs are the cosmetic partner variants.
var agentGlyphs = []rune{'P', 'M', 'D'}

// FridayEscape is the maze chase stage.
type FridayEscape struct {
	base
	gate
	maze  *escape.Maze
	state *escape.State
	done  bool
}

// NewFridayEscape creates the chase stage on the office maze.
func NewFridayEscape() *FridayEscape {
	return &FridayEscape{maze: escape.DefaultMaze()}
}

func (*FridayEscape) Kind() Kind    { return KindFridayEscape }
func (*FridayEscape) ID() string    { return "escape" }
func (*FridayEscape) Title() string { return FridayEscapeName }

func (s *FridayEscape) Enter(ctx *RunContext) {
	s.gate.reset()
	s.done = false
	s.state = escape.NewState(s.maze, ctx.Rand, ctx.Config.Escape)
}

func (s *FridayEscape) Update(ctx *RunContext, dt float64) Transition {
	if s.done || !s.gate.started() {
		return None()
	}

	switch s.state.Update(dt) {
	case escape.EventTagged:
		quote := escape.PartnerQuotes[ctx.Rand.Intn(len(escape.PartnerQuotes))]
		ctx.Notify(fmt.Sprintf("Partner: %q +%.1fs", quote, ctx.Config.Escape.TagPenalty))
		ctx.Cue(sfx.CueTag)
		ctx.Logger.Debug("tagged", "tags", s.state.Tags(), "decisions", s.state.Decisions())
	case escape.EventEscaped:
		ctx.Notify("You escaped! Enjoy your weekend... for now.")
		return s.finish(ctx)
	}
	return None()
}

func (s *FridayEscape) HandleKey(ctx *RunContext, ev core.KeyEvent) Transition {
	if ev.Key == core.KeyEscape {
		return Quit()
	}
	if s.done || s.gate.open(ctx, ev) {
		return None()
	}
	if dx, dy, ok := ev.Direction(); ok {
		s.state.Move(dx, dy)
	}
	return None()
}

func (s *FridayEscape) finish(ctx *RunContext) Transition {
	s.done = true
	elapsed := s.gate.stop(ctx)
	res := score.NewResult(FridayEscapeName, elapsed,
		escape.Penalty(s.state.Tags(), ctx.Config.Escape.TagPenalty),
		map[string]any{"tags": s.state.Tags()},
	)
	ctx.record(res)
	ctx.Cue(sfx.CueFinish)
	return To(NewResults())
}

// EscapeSnapshot is the render state of the chase stage.
type EscapeSnapshot struct {
	Started       bool
	Elapsed       float64
	Player        core.Coord
	Agents        []core.Coord
	Tags          int
	Invulnerable  float64
	PlayerVisible bool
}

// Snapshot returns the current render state.
func (s *FridayEscape) Snapshot(ctx *RunContext) EscapeSnapshot {
	return EscapeSnapshot{
		Started:       s.gate.started(),
		Elapsed:       s.gate.elapsed(ctx),
		Player:        s.state.Player(),
		Agents:        s.state.Agents(),
		Tags:          s.state.Tags(),
		Invulnerable:  s.state.Invulnerable(),
		PlayerVisible: s.state.PlayerVisible(),
	}
}

var escapeBriefing = []string{
	"It's Friday 4:59 PM. Escape the office before",
	"the Partners and MDs catch you leaving early!",
	"",
	"Reach the EXIT without getting tagged.",
	"Arrows move. A tag costs time and sends you back.",
}

func (s *FridayEscape) Render(ctx *RunContext, dst *core.Screen) {
	snap := s.Snapshot(ctx)
	hint := ""
	if snap.Started {
		hint = "Arrows: move · Avoid partners · Reach EXIT"
	}
	drawHeader(dst, FridayEscapeName, snap.Elapsed, hint)
	tagColor := core.ColorWarn
	if snap.Invulnerable > 0 {
		tagColor = core.ColorBad
	}
	drawRight(dst, 1, fmt.Sprintf("Tags: %d x %.1fs", snap.Tags, ctx.Config.Escape.TagPenalty), tagColor)

	m := s.maze
	ox := max(0, (dst.Width()-m.Width()*2)/2)
	oy := 3
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			sx := ox + x*2
			if m.IsWall(core.C(x, y)) {
				dst.SetColored(sx, oy+y, '█', core.ColorWall)
				dst.SetColored(sx+1, oy+y, '█', core.ColorWall)
			}
		}
	}

	exit := m.Exit()
	dst.DrawTextColored(ox+exit.X*2, oy+exit.Y, "EX", core.ColorExit)
	start := m.Start()
	dst.SetColored(ox+start.X*2+1, oy+start.Y, '·', core.ColorMuted)

	for _, a := range snap.Agents {
		glyph := agentGlyphs[escape.AgentIcon(a, len(agentGlyphs))]
		dst.SetColored(ox+a.X*2, oy+a.Y, glyph, core.ColorBad)
	}
	if snap.PlayerVisible {
		dst.SetColored(ox+snap.Player.X*2, oy+snap.Player.Y, '@', core.ColorPlayer)
	}

	if !snap.Started {
		drawBriefing(dst, "OFFICE POLITICS NAVIGATION ASSESSMENT", escapeBriefing)
	}
}

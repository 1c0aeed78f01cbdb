package scene

import (
	"fmt"

	"github.com/vovakirdan/consulting-chaos/internal/core"
	"github.com/vovakirdan/consulting-chaos/internal/games/email"
	"github.com/vovakirdan/consulting-chaos/internal/score"
	"github.com/vovakirdan/consulting-chaos/internal/sfx"
)

// EmailBlastName is the result name of the typing stage.
const EmailBlastName = "Email Blast"

// EmailBlast is the typing stage.
type EmailBlast struct {
	base
	gate
	drill  *email.Drill
	target string // fixed sentence; empty draws one on Enter
	done   bool
}

// NewEmailBlast creates the typing stage. The target is drawn on Enter.
func NewEmailBlast() *EmailBlast { return &EmailBlast{} }

func (*EmailBlast) Kind() Kind    { return KindEmailBlast }
func (*EmailBlast) ID() string    { return "email" }
func (*EmailBlast) Title() string { return EmailBlastName }

func (s *EmailBlast) Enter(ctx *RunContext) {
	s.gate.reset()
	s.done = false
	target := s.target
	if target == "" {
		target = email.GenerateTarget(ctx.Rand, ctx.Config.Email)
	}
	s.drill = email.NewDrill(target)
}

func (s *EmailBlast) HandleKey(ctx *RunContext, ev core.KeyEvent) Transition {
	if ev.Key == core.KeyEscape {
		return Quit()
	}
	if s.done || s.gate.open(ctx, ev) {
		return None()
	}

	switch {
	case ev.Key == core.KeyBackspace:
		s.drill.Backspace()
	case ev.Key == core.KeyEnter:
		if s.drill.Matches() {
			return s.finish(ctx)
		}
		ctx.Notify("Not matching yet")
	case ev.Printable():
		if s.drill.Type(ev.Char) {
			ctx.Notify(fmt.Sprintf("Mismatch +%.1fs", ctx.Config.Email.PenaltyPerMiss))
			ctx.Cue(sfx.CueMiss)
		}
		if s.drill.Matches() {
			return s.finish(ctx)
		}
	}
	return None()
}

func (s *EmailBlast) finish(ctx *RunContext) Transition {
	s.done = true
	elapsed := s.gate.stop(ctx)
	res := score.NewResult(EmailBlastName, elapsed,
		email.Penalty(s.drill.Misses(), ctx.Config.Email.PenaltyPerMiss),
		map[string]any{"misses": s.drill.Misses(), "target": s.drill.Target()},
	)
	ctx.record(res)
	ctx.Cue(sfx.CueFinish)
	return To(NewInterludeAfter(res, NewExcelFireDrill()))
}

// EmailSnapshot is the render state of the typing stage.
type EmailSnapshot struct {
	Started       bool
	Elapsed       float64
	Target        string
	Typed         string
	Misses        int
	CorrectPrefix int
}

// Snapshot returns the current render state.
func (s *EmailBlast) Snapshot(ctx *RunContext) EmailSnapshot {
	return EmailSnapshot{
		Started:       s.gate.started(),
		Elapsed:       s.gate.elapsed(ctx),
		Target:        s.drill.Target(),
		Typed:         s.drill.Typed(),
		Misses:        s.drill.Misses(),
		CorrectPrefix: s.drill.CorrectPrefix(),
	}
}

var emailBriefing = []string{
	"CLIENT CRISIS SCENARIO:",
	"Your Fortune 500 client needs 47 critical emails",
	"sent to stakeholders by 5:00 PM EST.",
	"",
	"Type the sentence exactly as displayed.",
	"Backspace corrects mistakes; each mistake still costs time.",
}

func (s *EmailBlast) Render(ctx *RunContext, dst *core.Screen) {
	snap := s.Snapshot(ctx)
	hint := ""
	if snap.Started {
		hint = "Type text · Backspace fixes · Enter submits"
	}
	drawHeader(dst, EmailBlastName, snap.Elapsed, hint)
	drawRight(dst, 1, fmt.Sprintf("Pen: %d x %.1fs", snap.Misses, ctx.Config.Email.PenaltyPerMiss), core.ColorWarn)

	width := max(10, dst.Width()-8)
	target := wrapRunes([]rune(snap.Target), width)
	typed := wrapRunes([]rune(snap.Typed), width)

	frame := core.NewRect(2, 3, dst.Width()-4, 2*len(target)+5)
	dst.DrawBox(frame, core.ColorWall)
	dst.DrawTextColored(4, 3, " New Email ", core.ColorAccent)
	dst.DrawTextColored(4, 4, "To: client@fortune500.com   Subject: Urgent: Q4 Strategy Update", core.ColorMuted)

	y := 6
	for _, line := range target {
		dst.DrawTextColored(4, y, string(line), core.ColorDefault)
		y++
	}
	dst.DrawHLine(3, y, frame.W-2, '─', core.ColorWall)
	y++

	if snap.Typed == "" {
		dst.DrawTextColored(4, y, "Type your response here...", core.ColorMuted)
	}
	idx := 0
	for _, line := range typed {
		for x, r := range line {
			c := core.ColorGood
			if idx >= snap.CorrectPrefix {
				c = core.ColorBad
			}
			dst.SetColored(4+x, y, r, c)
			idx++
		}
		y++
	}

	if !snap.Started {
		drawBriefing(dst, "STRATEGIC COMMUNICATION ASSESSMENT", emailBriefing)
	}
}

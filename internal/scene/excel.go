package scene

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/consulting-chaos/internal/core"
	"github.com/vovakirdan/consulting-chaos/internal/games/excel"
	"github.com/vovakirdan/consulting-chaos/internal/score"
	"github.com/vovakirdan/consulting-chaos/internal/sfx"
)

// ExcelFireDrillName is the result name of the arithmetic stage.
const ExcelFireDrillName = "Excel Fire Drill"

// ExcelFireDrill is the arithmetic stage.
type ExcelFireDrill struct {
	base
	gate
	drill    *excel.Drill
	problems func() excel.Problem // nil draws random problems
	done     bool
}

// NewExcelFireDrill creates the arithmetic stage.
func NewExcelFireDrill() *ExcelFireDrill { return &ExcelFireDrill{} }

func (*ExcelFireDrill) Kind() Kind    { return KindExcelFireDrill }
func (*ExcelFireDrill) ID() string    { return "excel" }
func (*ExcelFireDrill) Title() string { return ExcelFireDrillName }

func (s *ExcelFireDrill) Enter(ctx *RunContext) {
	s.gate.reset()
	s.done = false
	next := s.problems
	if next == nil {
		next = excel.Generator(ctx.Rand, ctx.Config.Excel)
	}
	s.drill = excel.NewDrill(ctx.Config.Excel, next)
}

func (s *ExcelFireDrill) HandleKey(ctx *RunContext, ev core.KeyEvent) Transition {
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
		return s.submit(ctx)
	case ev.Printable():
		s.drill.Type(ev.Char)
	}
	return None()
}

func (s *ExcelFireDrill) submit(ctx *RunContext) Transition {
	out, err := s.drill.Submit()
	if errors.Is(err, excel.ErrNotANumber) {
		ctx.Notify("Not a number")
		return None()
	}

	switch out {
	case excel.OutcomeWrong:
		ctx.Notify(fmt.Sprintf("#REF! +%.1fs", ctx.Config.Excel.WrongPenalty))
		ctx.Cue(sfx.CueMiss)
	case excel.OutcomeCorrect:
		ctx.Notify("Correct!")
		ctx.Cue(sfx.CueCorrect)
	case excel.OutcomeFinished:
		return s.finish(ctx)
	}
	return None()
}

func (s *ExcelFireDrill) finish(ctx *RunContext) Transition {
	s.done = true
	elapsed := s.gate.stop(ctx)
	res := score.NewResult(ExcelFireDrillName, elapsed,
		excel.Penalty(s.drill.Wrong(), ctx.Config.Excel.WrongPenalty),
		map[string]any{"wrong": s.drill.Wrong(), "count": s.drill.Required()},
	)
	ctx.record(res)
	ctx.Cue(sfx.CueFinish)
	return To(NewInterludeAfter(res, NewPuzzleGame()))
}

// ExcelSnapshot is the render state of the arithmetic stage.
type ExcelSnapshot struct {
	Started  bool
	Elapsed  float64
	Prompt   string
	Input    string
	Correct  int
	Required int
	Wrong    int
}

// Snapshot returns the current render state.
func (s *ExcelFireDrill) Snapshot(ctx *RunContext) ExcelSnapshot {
	return ExcelSnapshot{
		Started:  s.gate.started(),
		Elapsed:  s.gate.elapsed(ctx),
		Prompt:   s.drill.Problem().Prompt(),
		Input:    s.drill.Input(),
		Correct:  s.drill.Correct(),
		Required: s.drill.Required(),
		Wrong:    s.drill.Wrong(),
	}
}

var excelBriefing = []string{
	"FINANCIAL CRISIS SCENARIO:",
	"The client's model broke an hour before the board meeting.",
	"Recalculate the key cells by hand.",
	"",
	"Type the answer and press Enter.",
	"Each #REF! costs you time.",
}

func (s *ExcelFireDrill) Render(ctx *RunContext, dst *core.Screen) {
	snap := s.Snapshot(ctx)
	hint := ""
	if snap.Started {
		hint = "Digits and '-' · Backspace fixes · Enter submits"
	}
	drawHeader(dst, ExcelFireDrillName, snap.Elapsed, hint)
	drawRight(dst, 1, fmt.Sprintf("Wrong: %d x %.1fs", snap.Wrong, ctx.Config.Excel.WrongPenalty), core.ColorWarn)

	sheet := core.NewRect(2, 3, min(dst.Width()-4, 60), 12)
	dst.DrawBox(sheet, core.ColorWall)
	dst.DrawTextColored(4, 3, " Financial Model - Q4 Forecast ", core.ColorAccent)
	dst.DrawTextColored(4, 4, "     A            B              C", core.ColorMuted)

	rows := []struct {
		label, value string
		c            core.Color
	}{
		{"Revenue", "#REF!", core.ColorBad},
		{"Costs", "#REF!", core.ColorBad},
		{"Formula", snap.Prompt, core.ColorDefault},
		{"Answer", "[" + snap.Input + "_]", core.ColorAccent},
	}
	for i, r := range rows {
		y := 6 + i*2
		dst.DrawTextColored(4, y, fmt.Sprintf("%d", i+1), core.ColorMuted)
		dst.DrawTextColored(9, y, r.label, core.ColorDefault)
		dst.DrawTextColored(22, y, r.value, r.c)
	}

	progress := fmt.Sprintf("Solved %d/%d", snap.Correct, snap.Required)
	dst.DrawTextColored(sheet.Right()+2, 5, progress, core.ColorGood)
	bar := min(snap.Correct, snap.Required)
	for i := 0; i < snap.Required; i++ {
		r, c := '░', core.ColorMuted
		if i < bar {
			r, c = '█', core.ColorGood
		}
		dst.SetColored(sheet.Right()+2+i, 6, r, c)
	}

	if !snap.Started {
		drawBriefing(dst, "FINANCIAL MODELING ASSESSMENT", excelBriefing)
	}
}

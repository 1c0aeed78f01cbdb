package scene

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/consulting-chaos/internal/core"
	"github.com/vovakirdan/consulting-chaos/internal/score"
)

// maxNameLen caps typed leaderboard names and titles.
const maxNameLen = 24

type resultsPhase int

const (
	phaseName resultsPhase = iota
	phaseTitle
	phaseSummary
)

// Results shows the run summary. On a new personal best it first asks for
// a name and a title for the leaderboard.
type Results struct {
	base
	results    []score.Result
	total      float64
	individual map[string]float64
	isBest     bool
	phase      resultsPhase
	name       []rune
	title      []rune
	position   int // -1 when not on the board or not entered
}

// NewResults creates the results screen. The run is read on Enter.
func NewResults() *Results { return &Results{position: -1} }

func (*Results) Kind() Kind { return KindResults }

func (s *Results) Enter(ctx *RunContext) {
	s.results = ctx.Run.Results()
	s.total = ctx.Run.Total()
	s.individual = ctx.Run.Individual()
	s.phase = phaseSummary
	s.position = -1

	if ctx.Practice {
		ctx.Logger.Info("practice run finished", "run", ctx.RunID, "total", s.total)
		return
	}
	s.isBest = ctx.Scores.SubmitRun(s.total, s.individual)
	if s.isBest {
		s.phase = phaseName
	}
	ctx.Logger.Info("run finished", "run", ctx.RunID, "total", s.total, "best", s.isBest)
}

// IsBest reports whether the run set a new personal best.
func (s *Results) IsBest() bool { return s.isBest }

// Position returns the 0-based leaderboard position, or -1.
func (s *Results) Position() int { return s.position }

// Total returns the run total.
func (s *Results) Total() float64 { return s.total }

func (s *Results) HandleKey(ctx *RunContext, ev core.KeyEvent) Transition {
	if ev.Key == core.KeyEscape {
		return Quit()
	}

	switch s.phase {
	case phaseName:
		s.name = editField(s.name, ev)
		if ev.Key == core.KeyEnter && strings.TrimSpace(string(s.name)) != "" {
			s.phase = phaseTitle
		}
	case phaseTitle:
		s.title = editField(s.title, ev)
		if ev.Key == core.KeyEnter && strings.TrimSpace(string(s.title)) != "" {
			s.position = ctx.Scores.AddEntry(
				strings.TrimSpace(string(s.name)),
				strings.TrimSpace(string(s.title)),
				s.total, s.individual,
			)
			s.phase = phaseSummary
		}
	case phaseSummary:
		if ev.IsStart() {
			ctx.ResetRun()
			return To(NewMainMenu())
		}
	}
	return None()
}

// editField applies a typing key to a text field.
func editField(field []rune, ev core.KeyEvent) []rune {
	switch {
	case ev.Key == core.KeyBackspace:
		if len(field) > 0 {
			field = field[:len(field)-1]
		}
	case ev.Printable() && len(field) < maxNameLen:
		field = append(field, ev.Char)
	}
	return field
}

func (s *Results) Render(ctx *RunContext, dst *core.Screen) {
	if s.phase != phaseSummary {
		s.renderEntry(dst)
		return
	}
	s.renderSummary(ctx, dst)
}

func (s *Results) renderEntry(dst *core.Screen) {
	dst.DrawTextCentered(1, "NEW PERSONAL BEST!", core.ColorGood)
	dst.DrawTextCentered(3, "Total Time: "+seconds(s.total), core.ColorAccent)

	y := 5
	dst.DrawTextCentered(y, "Individual Times:", core.ColorMuted)
	for _, r := range s.results {
		y++
		dst.DrawTextCentered(y, fmt.Sprintf("%s: %s", r.Name(), seconds(r.Total())), core.ColorDefault)
	}

	y += 2
	prompt, value := "Enter your name:", s.name
	if s.phase == phaseTitle {
		prompt, value = "Enter your title:", s.title
	}
	dst.DrawTextCentered(y, prompt, core.ColorDefault)
	dst.DrawTextCentered(y+1, string(value)+"_", core.ColorAccent)
	dst.DrawTextCentered(dst.Height()-1, "[Enter] Continue    [Backspace] Edit", core.ColorMuted)
}

// rankColors maps rank levels to display roles.
var rankColors = []core.Color{core.ColorAccent, core.ColorGood, core.ColorWarn, core.ColorBad, core.ColorBad}

func (s *Results) renderSummary(ctx *RunContext, dst *core.Screen) {
	dst.DrawTextCentered(1, "RESULTS", core.ColorAccent)

	y := 3
	for _, r := range s.results {
		line := fmt.Sprintf("%-18s %8s + %7s = %8s", r.Name(), seconds(r.Elapsed()), seconds(r.Penalty()), seconds(r.Total()))
		dst.DrawTextCentered(y, line, core.ColorDefault)
		y++
	}
	y++
	dst.DrawTextCentered(y, "TOTAL: "+seconds(s.total), core.ColorAccent)
	y += 2

	rank := score.RankFor(s.total)
	dst.DrawTextCentered(y, "PERFORMANCE EVALUATION", core.ColorMuted)
	dst.DrawTextCentered(y+1, rank.Title, rankColors[rank.Level])
	dst.DrawTextCentered(y+2, rank.Tagline, core.ColorDefault)
	y += 4

	switch {
	case ctx.Practice:
		dst.DrawTextCentered(y, "Practice run: not eligible for the leaderboard", core.ColorMuted)
	case s.position >= 0:
		dst.DrawTextCentered(y, fmt.Sprintf("Leaderboard Position: #%d", s.position+1), core.ColorGood)
	}

	dst.DrawTextCentered(dst.Height()-1, "[Enter] Play Again    [Esc] Quit", core.ColorMuted)
}

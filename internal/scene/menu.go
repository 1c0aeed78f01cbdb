package scene

import (
	"github.com/vovakirdan/consulting-chaos/internal/core"
)

// MainMenu is the title screen. Entering it resets the run.
type MainMenu struct {
	base
	blink float64
}

// NewMainMenu creates the title screen.
func NewMainMenu() *MainMenu { return &MainMenu{} }

func (*MainMenu) Kind() Kind { return KindMainMenu }

func (m *MainMenu) Enter(ctx *RunContext) {
	m.blink = 0
	ctx.ResetRun()
}

func (m *MainMenu) Update(_ *RunContext, dt float64) Transition {
	m.blink += dt
	return None()
}

func (m *MainMenu) HandleKey(ctx *RunContext, ev core.KeyEvent) Transition {
	switch {
	case ev.Key == core.KeyEscape:
		return Quit()
	case ev.IsStart():
		ctx.Notify("Let's go!")
		ctx.ResetRun()
		return To(NewInterlude(NewEmailBlast()))
	}
	return None()
}

var menuLines = []string{
	"You are a consultant racing against client deadlines.",
	"Complete the four assessments as fast as you can.",
	"",
	"Email Blast       client communication under pressure",
	"Excel Fire Drill  financial modeling crisis",
	"Calendar Tetris   meeting optimization strategy",
	"Friday Escape     office politics navigation",
	"",
	"Arrows, letters; Enter/Space continue; Esc quits at any time",
}

func (m *MainMenu) Render(ctx *RunContext, dst *core.Screen) {
	dst.DrawTextCentered(1, "STRATEGY & CO.", core.ColorMuted)
	dst.DrawTextCentered(3, "C O N S U L T I N G   C H A O S", core.ColorAccent)
	dst.DrawTextCentered(4, "Strategic Excellence Under Pressure", core.ColorGood)

	for i, l := range menuLines {
		dst.DrawTextCentered(6+i, l, core.ColorDefault)
	}

	if int(m.blink*2)%2 == 0 {
		dst.DrawTextCentered(7+len(menuLines), "Press Enter to begin the assessment", core.ColorGood)
	}

	if best, ok := ctx.Scores.BestTotal(); ok {
		dst.DrawTextCentered(9+len(menuLines), "PERSONAL BEST", core.ColorMuted)
		dst.DrawTextCentered(10+len(menuLines), "Total Time: "+seconds(best), core.ColorAccent)
	}
}

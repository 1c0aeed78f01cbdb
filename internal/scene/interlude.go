package scene

import (
	"fmt"

	"github.com/vovakirdan/consulting-chaos/internal/core"
	"github.com/vovakirdan/consulting-chaos/internal/score"
)

// Interlude sits between stages and shows the result of the last one.
type Interlude struct {
	base
	next    Scene
	last    score.Result
	hasLast bool
}

// NewInterlude leads into next without a previous result.
func NewInterlude(next Scene) *Interlude {
	return &Interlude{next: next}
}

// NewInterludeAfter shows last and then leads into next.
func NewInterludeAfter(last score.Result, next Scene) *Interlude {
	return &Interlude{next: next, last: last, hasLast: true}
}

func (*Interlude) Kind() Kind { return KindInterlude }

// Next returns the scene the interlude leads into.
func (i *Interlude) Next() Scene { return i.next }

// Last returns the result shown, if any.
func (i *Interlude) Last() (score.Result, bool) { return i.last, i.hasLast }

func (i *Interlude) HandleKey(_ *RunContext, ev core.KeyEvent) Transition {
	switch {
	case ev.Key == core.KeyEscape:
		return Quit()
	case ev.IsStart():
		return To(i.next)
	}
	return None()
}

func (i *Interlude) Render(ctx *RunContext, dst *core.Screen) {
	y := dst.Height()/2 - 3
	dst.DrawTextCentered(y, "Interlude", core.ColorAccent)
	y += 2

	if i.hasLast {
		line := fmt.Sprintf("%s: time %s + penalty %s = %s",
			i.last.Name(), seconds(i.last.Elapsed()), seconds(i.last.Penalty()), seconds(i.last.Total()))
		dst.DrawTextCentered(y, line, core.ColorDefault)
		y++
		dst.DrawTextCentered(y, "Run so far: "+seconds(ctx.Run.Total()), core.ColorMuted)
		y++
	}

	if t, ok := i.next.(interface{ Title() string }); ok {
		dst.DrawTextCentered(y+1, "Next up: "+t.Title(), core.ColorGood)
	}
	dst.DrawTextCentered(y+3, "Press Enter to continue", core.ColorMuted)
}

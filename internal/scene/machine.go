package scene

import (
	"fmt"

	"github.com/vovakirdan/consulting-chaos/internal/core"
)

// Machine holds the single active scene and applies transitions
// synchronously: a requested transition completes (exit, swap, enter)
// before Update or HandleKey returns.
type Machine struct {
	ctx      *RunContext
	current  Scene
	quitting bool
}

// NewMachine creates a machine with no active scene.
func NewMachine(ctx *RunContext) *Machine {
	return &Machine{ctx: ctx}
}

// Context returns the run context shared by all scenes.
func (m *Machine) Context() *RunContext { return m.ctx }

// Current returns the active scene, or nil before the first Switch.
func (m *Machine) Current() Scene { return m.current }

// Quitting reports whether a scene asked to end the program.
func (m *Machine) Quitting() bool { return m.quitting }

// Switch exits the active scene, then activates and enters next.
// next must be non-nil and one of the package's scene kinds.
func (m *Machine) Switch(next Scene) {
	if next == nil {
		panic("scene: switch to nil scene")
	}
	switch k := next.Kind(); k {
	case KindMainMenu, KindInterlude, KindEmailBlast, KindExcelFireDrill,
		KindPuzzleGame, KindFridayEscape, KindResults:
	default:
		panic(fmt.Sprintf("scene: switch to unknown scene kind %d", int(k)))
	}

	from := "none"
	if m.current != nil {
		from = m.current.Kind().String()
		m.current.Exit(m.ctx)
	}
	m.current = next
	m.ctx.Logger.Debug("scene switch", "from", from, "to", next.Kind())
	next.Enter(m.ctx)
}

// Update ages notices and advances the active scene by dt seconds.
func (m *Machine) Update(dt float64) {
	m.ctx.Notices.Update(dt)
	if m.current == nil || m.quitting {
		return
	}
	m.apply(m.current.Update(m.ctx, dt))
}

// HandleKey dispatches a key press to the active scene.
func (m *Machine) HandleKey(ev core.KeyEvent) {
	if m.current == nil || m.quitting {
		return
	}
	m.apply(m.current.HandleKey(m.ctx, ev))
}

// Render draws the active scene and the visible notices into dst.
func (m *Machine) Render(dst *core.Screen) {
	dst.Clear()
	if m.current != nil {
		m.current.Render(m.ctx, dst)
	}
	drawNotices(dst, m.ctx.Notices.Visible())
}

func (m *Machine) apply(t Transition) {
	switch {
	case t.quit:
		m.quitting = true
		m.ctx.Logger.Debug("quit requested", "scene", m.current.Kind())
	case t.next != nil:
		m.Switch(t.next)
	}
}

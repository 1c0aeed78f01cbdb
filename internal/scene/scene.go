// Package scene drives Consulting Chaos: a finite-state machine with exactly
// one active scene (menu, interlude, one of the four stages, or results).
//
// Scene is a closed set. Every implementation lives in this package and is
// tagged with a Kind, so the machine can check transitions exhaustively.
package scene

import (
	"github.com/vovakirdan/consulting-chaos/internal/core"
)

// Kind tags each scene variant.
type Kind int

const (
	KindMainMenu Kind = iota
	KindInterlude
	KindEmailBlast
	KindExcelFireDrill
	KindPuzzleGame
	KindFridayEscape
	KindResults
)

func (k Kind) String() string {
	switch k {
	case KindMainMenu:
		return "MainMenu"
	case KindInterlude:
		return "Interlude"
	case KindEmailBlast:
		return "EmailBlast"
	case KindExcelFireDrill:
		return "ExcelFireDrill"
	case KindPuzzleGame:
		return "PuzzleGame"
	case KindFridayEscape:
		return "FridayEscape"
	case KindResults:
		return "Results"
	default:
		return "Unknown"
	}
}

// Scene is one state of the machine. A scene is constructed on transition,
// initialized by Enter, driven by Update and HandleKey while active, and
// given Exit before it is replaced.
type Scene interface {
	Kind() Kind
	Enter(ctx *RunContext)
	Exit(ctx *RunContext)
	// Update advances the scene by dt seconds.
	Update(ctx *RunContext, dt float64) Transition
	// HandleKey dispatches one key press. Unhandled keys are no-ops.
	HandleKey(ctx *RunContext, ev core.KeyEvent) Transition
	// Render draws into dst. The screen is cleared beforehand.
	Render(ctx *RunContext, dst *core.Screen)

	sealed()
}

// Transition is what a scene asks the machine to do after an Update or
// HandleKey call. The zero value means stay.
type Transition struct {
	next Scene
	quit bool
}

// None keeps the current scene.
func None() Transition { return Transition{} }

// To replaces the current scene with next.
func To(next Scene) Transition { return Transition{next: next} }

// Quit ends the program.
func Quit() Transition { return Transition{quit: true} }

// Next returns the requested scene, if any.
func (t Transition) Next() Scene { return t.next }

// IsQuit reports whether the transition ends the program.
func (t Transition) IsQuit() bool { return t.quit }

// base supplies the sealed marker and no-op hooks.
type base struct{}

func (base) sealed()                                {}
func (base) Enter(*RunContext)                      {}
func (base) Exit(*RunContext)                       {}
func (base) Update(*RunContext, float64) Transition { return None() }

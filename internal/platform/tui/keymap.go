package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/consulting-chaos/internal/core"
)

// KeyMap holds the bindings the scenes understand. Printable characters are
// not bound; they pass through as core.KeyRune events.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Enter     key.Binding
	Space     key.Binding
	Backspace key.Binding
	Rotate    key.Binding
	Escape    key.Binding
	Interrupt key.Binding
	Snapshot  key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "right"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "start/submit"),
		),
		Space: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "start/place"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace", "ctrl+h"),
			key.WithHelp("bksp", "fix"),
		),
		// Rotation keys are plain runes; the binding exists for the help footer.
		Rotate: key.NewBinding(
			key.WithKeys("z", "x"),
			key.WithHelp("z/x", "rotate"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit"),
		),
		Interrupt: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Snapshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Enter, k.Space, k.Rotate, k.Escape}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Enter, k.Space, k.Backspace, k.Rotate},
		{k.Escape, k.Interrupt, k.Snapshot},
	}
}

// Translate maps a Bubble Tea key message to a scene key event. It returns
// false for keys no scene understands.
func (k KeyMap) Translate(msg tea.KeyMsg) (core.KeyEvent, bool) {
	switch {
	case key.Matches(msg, k.Up):
		return core.Press(core.KeyUp), true
	case key.Matches(msg, k.Down):
		return core.Press(core.KeyDown), true
	case key.Matches(msg, k.Left):
		return core.Press(core.KeyLeft), true
	case key.Matches(msg, k.Right):
		return core.Press(core.KeyRight), true
	case key.Matches(msg, k.Enter):
		return core.Press(core.KeyEnter), true
	case key.Matches(msg, k.Space):
		return core.Press(core.KeySpace), true
	case key.Matches(msg, k.Backspace):
		return core.Press(core.KeyBackspace), true
	case key.Matches(msg, k.Escape):
		return core.Press(core.KeyEscape), true
	}

	// Pasted text arrives as one message; only single characters are keys.
	if msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && !msg.Alt {
		return core.Rune(msg.Runes[0]), true
	}
	return core.KeyEvent{}, false
}

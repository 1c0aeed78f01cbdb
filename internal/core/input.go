package core

// Key is a symbolic key identifier, abstracted from the terminal's key names.
type Key int

const (
	KeyNone Key = iota
	KeyRune       // a printable character, see KeyEvent.Char
	KeyEnter      // commit / submit / continue
	KeySpace      // start gate, place piece
	KeyBackspace  // delete last typed character
	KeyEscape     // quit
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "None"
	case KeyRune:
		return "Rune"
	case KeyEnter:
		return "Enter"
	case KeySpace:
		return "Space"
	case KeyBackspace:
		return "Backspace"
	case KeyEscape:
		return "Escape"
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// KeyEvent is one discrete key press delivered to the active scene.
// Char carries the printable character for KeyRune and KeySpace, zero otherwise.
type KeyEvent struct {
	Key  Key
	Char rune
}

// Press builds a key event for a non-printable key.
func Press(k Key) KeyEvent {
	if k == KeySpace {
		return KeyEvent{Key: KeySpace, Char: ' '}
	}
	return KeyEvent{Key: k}
}

// Rune builds a key event for a printable character. A space maps to KeySpace.
func Rune(r rune) KeyEvent {
	if r == ' ' {
		return KeyEvent{Key: KeySpace, Char: ' '}
	}
	return KeyEvent{Key: KeyRune, Char: r}
}

// Printable reports whether the event carries a character that can be typed.
func (e KeyEvent) Printable() bool {
	return e.Char != 0 && (e.Key == KeyRune || e.Key == KeySpace)
}

// IsStart reports whether the event opens a stage's "not started" gate
// or confirms a menu.
func (e KeyEvent) IsStart() bool {
	return e.Key == KeyEnter || e.Key == KeySpace
}

// Direction returns the unit step for arrow keys, and false for any other key.
func (e KeyEvent) Direction() (dx, dy int, ok bool) {
	switch e.Key {
	case KeyUp:
		return 0, -1, true
	case KeyDown:
		return 0, 1, true
	case KeyLeft:
		return -1, 0, true
	case KeyRight:
		return 1, 0, true
	}
	return 0, 0, false
}

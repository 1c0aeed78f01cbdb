package core

import "testing"

func TestRuneSpaceMapsToSpaceKey(t *testing.T) {
	ev := Rune(' ')
	if ev.Key != KeySpace || ev.Char != ' ' {
		t.Errorf("Rune(' ') = %+v, expected KeySpace", ev)
	}
	if !ev.Printable() {
		t.Error("space should be printable")
	}
	if !ev.IsStart() {
		t.Error("space should open the start gate")
	}
}

func TestKeyEventDirection(t *testing.T) {
	tests := []struct {
		key    Key
		dx, dy int
		ok     bool
	}{
		{KeyUp, 0, -1, true},
		{KeyDown, 0, 1, true},
		{KeyLeft, -1, 0, true},
		{KeyRight, 1, 0, true},
		{KeyEnter, 0, 0, false},
	}

	for _, tc := range tests {
		dx, dy, ok := Press(tc.key).Direction()
		if dx != tc.dx || dy != tc.dy || ok != tc.ok {
			t.Errorf("%v.Direction() = (%d,%d,%v), expected (%d,%d,%v)", tc.key, dx, dy, ok, tc.dx, tc.dy, tc.ok)
		}
	}
}

func TestPressHasNoChar(t *testing.T) {
	if Press(KeyBackspace).Printable() {
		t.Error("Backspace should not be printable")
	}
	if Press(KeyEnter).Char != 0 {
		t.Error("Enter should carry no character")
	}
}

package core

import "testing"

func TestCoordManhattan(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Coord
		expected int
	}{
		{"same cell", C(3, 3), C(3, 3), 0},
		{"horizontal", C(1, 5), C(7, 5), 6},
		{"vertical", C(7, 3), C(7, 7), 4},
		{"diagonal", C(0, 0), C(3, 4), 7},
		{"negative offsets", C(-2, 1), C(2, -1), 6},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Manhattan(tc.b); got != tc.expected {
				t.Errorf("Manhattan() = %d, expected %d", got, tc.expected)
			}
			if got := tc.b.Manhattan(tc.a); got != tc.expected {
				t.Errorf("Manhattan() (reversed) = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestCoordAdd(t *testing.T) {
	c := C(6, 6)
	if got := c.Add(1, -1); got != C(7, 5) {
		t.Errorf("Add(1, -1) = %v, expected (7,5)", got)
	}
	if got := c.Plus(C(-6, 2)); got != C(0, 8) {
		t.Errorf("Plus() = %v, expected (0,8)", got)
	}
	if c.String() != "(6,6)" {
		t.Errorf("String() = %q", c.String())
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 7, 5},
		{-1, 0, 7, 0},
		{8, 0, 7, 7},
		{0, 0, 7, 0},
		{7, 0, 7, 7},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{0.01, 0.0, 0.5, 0.01},
		{-0.2, 0.0, 0.5, 0.0},
		{3.0, 0.0, 0.5, 0.5},
	}

	for _, tc := range tests {
		if got := ClampF(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

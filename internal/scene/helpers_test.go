package scene

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/consulting-chaos/internal/config"
	"github.com/vovakirdan/consulting-chaos/internal/core"
	"github.com/vovakirdan/consulting-chaos/internal/games/escape"
	"github.com/vovakirdan/consulting-chaos/internal/games/excel"
	"github.com/vovakirdan/consulting-chaos/internal/sfx"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(sec float64) {
	c.t = c.t.Add(time.Duration(sec * float64(time.Second)))
}

func newTestContext(t *testing.T) (*RunContext, *fakeClock, *sfx.Recorder) {
	t.Helper()
	ctx := NewRunContext(config.DefaultConfig(), nil, 1)
	clk := &fakeClock{t: time.Date(2026, 3, 2, 16, 59, 0, 0, time.UTC)}
	rec := &sfx.Recorder{}
	ctx.Now = clk.now
	ctx.Sound = rec
	return ctx, clk, rec
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func typeText(m *Machine, text string) {
	for _, r := range text {
		m.HandleKey(core.Rune(r))
	}
}

func press(m *Machine, k core.Key, times int) {
	for i := 0; i < times; i++ {
		m.HandleKey(core.Press(k))
	}
}

func hasNotice(ctx *RunContext, text string) bool {
	for _, n := range ctx.Notices.Visible() {
		if n == text {
			return true
		}
	}
	return false
}

func onScreen(s *core.Screen, text string) bool {
	return strings.Contains(s.String(), text)
}

// problems yields ps in order and then repeats the last one.
func problems(ps ...excel.Problem) func() excel.Problem {
	i := 0
	return func() excel.Problem {
		p := ps[min(i, len(ps)-1)]
		i++
		return p
	}
}

// escapeOn is the chase stage on a custom maze.
func escapeOn(maze *escape.Maze) *FridayEscape {
	return &FridayEscape{maze: maze}
}

func mustMaze(t *testing.T, l escape.Layout) *escape.Maze {
	t.Helper()
	m, err := escape.NewMaze(l)
	if err != nil {
		t.Fatalf("NewMaze() error: %v", err)
	}
	return m
}

// openLayout is a w×h grid with no walls.
func openLayout(w, h int) escape.Layout {
	rows := make([]string, h)
	for y := range rows {
		b := make([]byte, w)
		for x := range b {
			b[x] = '.'
		}
		rows[y] = string(b)
	}
	return escape.Layout{Name: "open", Rows: rows, Start: core.C(0, 0), Exit: core.C(w-1, h-1)}
}

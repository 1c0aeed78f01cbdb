package calendar

import (
	"errors"
	"math"
	"slices"

	"github.com/vovakirdan/consulting-chaos/internal/config"
	"github.com/vovakirdan/consulting-chaos/internal/core"
)

var (
	// ErrDoesNotFit is returned by Place when the active piece would leave
	// the grid or overlap a placed piece. The grid is left untouched.
	ErrDoesNotFit = errors.New("doesn't fit here")
	// ErrQueueExhausted is returned by Place once every piece is placed.
	ErrQueueExhausted = errors.New("no pieces left")
)

// Piece is one queued meeting block. Placed grid cells point at their piece.
type Piece struct {
	Seq   int // position in the queue
	Shape Shape
}

// Engine holds the grid, the piece queue and the active candidate.
type Engine struct {
	w, h   int
	grid   []*Piece // row-major, nil means empty
	queue  []*Piece
	cursor int
	active []core.Coord
	anchor core.Coord
}

// NewEngine creates an empty w×h grid with the given queue.
func NewEngine(w, h int, queue []Shape) *Engine {
	e := &Engine{
		w:     w,
		h:     h,
		grid:  make([]*Piece, w*h),
		queue: make([]*Piece, len(queue)),
	}
	for i, s := range queue {
		e.queue[i] = &Piece{Seq: i, Shape: s}
	}
	e.load()
	return e
}

// load resets the candidate to the current piece, unrotated, at the origin.
func (e *Engine) load() {
	e.anchor = core.C(0, 0)
	if e.cursor < len(e.queue) {
		e.active = slices.Clone(e.queue[e.cursor].Shape.Cells)
	} else {
		e.active = nil
	}
}

func (e *Engine) Width() int  { return e.w }
func (e *Engine) Height() int { return e.h }

// Anchor returns the candidate position.
func (e *Engine) Anchor() core.Coord { return e.anchor }

// Active returns a copy of the candidate's current (possibly rotated) offsets.
func (e *Engine) Active() []core.Coord { return slices.Clone(e.active) }

// Current returns the piece being positioned, or false when the queue is done.
func (e *Engine) Current() (*Piece, bool) {
	if e.cursor >= len(e.queue) {
		return nil, false
	}
	return e.queue[e.cursor], true
}

// Upcoming returns up to n pieces after the current one. The slice is a
// copy; writing to it leaves the queue alone.
func (e *Engine) Upcoming(n int) []*Piece {
	start := min(e.cursor+1, len(e.queue))
	end := min(start+n, len(e.queue))
	return slices.Clone(e.queue[start:end])
}

// At returns the piece occupying (x, y), or nil.
func (e *Engine) At(x, y int) *Piece {
	if !e.inBounds(x, y) {
		return nil
	}
	return e.grid[y*e.w+x]
}

// Rotate turns the candidate a quarter turn. It never validates placement.
func (e *Engine) Rotate(dir Rotation) {
	if dir == Clockwise {
		e.active = RotateCW(e.active)
	} else {
		e.active = RotateCCW(e.active)
	}
}

// Move shifts the anchor, clamped to the grid regardless of placeability.
func (e *Engine) Move(dx, dy int) {
	e.anchor = core.C(
		core.Clamp(e.anchor.X+dx, 0, e.w-1),
		core.Clamp(e.anchor.Y+dy, 0, e.h-1),
	)
}

// CanPlace reports whether every anchor+offset cell is in bounds and empty.
func (e *Engine) CanPlace(anchor core.Coord, offsets []core.Coord) bool {
	for _, off := range offsets {
		p := anchor.Plus(off)
		if !e.inBounds(p.X, p.Y) || e.grid[p.Y*e.w+p.X] != nil {
			return false
		}
	}
	return true
}

// Fits reports whether the candidate can be placed where it is.
func (e *Engine) Fits() bool {
	return e.cursor < len(e.queue) && e.CanPlace(e.anchor, e.active)
}

// Place commits the candidate and advances to the next piece. finished is
// true when that was the last piece.
func (e *Engine) Place() (finished bool, err error) {
	if e.cursor >= len(e.queue) {
		return true, ErrQueueExhausted
	}
	if !e.CanPlace(e.anchor, e.active) {
		return false, ErrDoesNotFit
	}

	piece := e.queue[e.cursor]
	for _, off := range e.active {
		p := e.anchor.Plus(off)
		e.grid[p.Y*e.w+p.X] = piece
	}
	e.cursor++
	e.load()
	return e.cursor >= len(e.queue), nil
}

// Placed returns the number of committed pieces.
func (e *Engine) Placed() int { return e.cursor }

// Unused returns the number of queued pieces not yet placed.
func (e *Engine) Unused() int { return len(e.queue) - e.cursor }

// Finished reports whether the queue is exhausted.
func (e *Engine) Finished() bool { return e.cursor >= len(e.queue) }

// FilledCount returns the number of occupied cells.
func (e *Engine) FilledCount() int {
	n := 0
	for _, p := range e.grid {
		if p != nil {
			n++
		}
	}
	return n
}

func (e *Engine) inBounds(x, y int) bool {
	return x >= 0 && x < e.w && y >= 0 && y < e.h
}

// Penalty charges OverPenaltyPer10s for every full 10 s beyond the target and
// UnusedPiecePenalty for each unplaced piece.
func Penalty(elapsed float64, unused int, cfg config.CalendarConfig) float64 {
	over := max(0, elapsed-cfg.TargetSeconds)
	return math.Floor(over/10)*cfg.OverPenaltyPer10s + float64(unused)*cfg.UnusedPiecePenalty
}

// OverSeconds is the time spent past the target.
func OverSeconds(elapsed float64, cfg config.CalendarConfig) float64 {
	return max(0, elapsed-cfg.TargetSeconds)
}

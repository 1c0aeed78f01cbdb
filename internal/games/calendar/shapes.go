// Package calendar implements the Calendar Tetris placement engine: meeting
// blocks (polyominoes) are rotated and dropped onto a fixed calendar grid
// without overlapping or leaving its bounds.
package calendar

import (
	"math/rand"

	"github.com/vovakirdan/consulting-chaos/internal/core"
)

// Shape is a named polyomino: cell offsets relative to its anchor.
type Shape struct {
	Name  string
	Cells []core.Coord
	Color core.Color
}

// Palette is the set of meeting blocks a queue is drawn from.
var Palette = []Shape{
	{Name: "Team Standup", Cells: cells(0, 0, 1, 0, 0, 1, 1, 1), Color: core.ColorPieceBlue},
	{Name: "All Hands", Cells: cells(0, 0, 1, 0, 2, 0, 3, 0), Color: core.ColorPieceGreen},
	{Name: "Client Call", Cells: cells(0, 0, 1, 0, 2, 0, 1, 1), Color: core.ColorPieceOrange},
	{Name: "Workshop", Cells: cells(0, 0, 1, 0, 1, 1, 2, 1), Color: core.ColorPieceMagenta},
	{Name: "Review", Cells: cells(0, 0, 1, 0, 2, 0, 0, 1), Color: core.ColorPieceLime},
	{Name: "Planning", Cells: cells(0, 0, 1, 0, 2, 0, 2, 1), Color: core.ColorPieceCyan},
	{Name: "1:1", Cells: cells(0, 0, 1, 0, 1, 1), Color: core.ColorPieceRed},
	{Name: "Sync", Cells: cells(0, 0, 1, 0, 0, 1), Color: core.ColorPiecePurple},
}

// ShapeByName looks up a palette shape.
func ShapeByName(name string) (Shape, bool) {
	for _, s := range Palette {
		if s.Name == name {
			return s, true
		}
	}
	return Shape{}, false
}

func cells(xy ...int) []core.Coord {
	out := make([]core.Coord, 0, len(xy)/2)
	for i := 0; i+1 < len(xy); i += 2 {
		out = append(out, core.C(xy[i], xy[i+1]))
	}
	return out
}

// DrawQueue picks n shapes from the palette with repetition.
func DrawQueue(rng *rand.Rand, n int) []Shape {
	queue := make([]Shape, n)
	for i := range queue {
		queue[i] = Palette[rng.Intn(len(Palette))]
	}
	return queue
}

// Rotation is a quarter-turn direction.
type Rotation int

const (
	Clockwise Rotation = iota
	CounterClockwise
)

// RotateCW maps every offset (x, y) to (y, -x).
func RotateCW(in []core.Coord) []core.Coord {
	out := make([]core.Coord, len(in))
	for i, c := range in {
		out[i] = core.C(c.Y, -c.X)
	}
	return out
}

// RotateCCW maps every offset (x, y) to (-y, x).
func RotateCCW(in []core.Coord) []core.Coord {
	out := make([]core.Coord, len(in))
	for i, c := range in {
		out[i] = core.C(-c.Y, c.X)
	}
	return out
}

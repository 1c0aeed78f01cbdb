// Package escape implements Friday Escape: reach the exit of a fixed office
// maze while partners close in on a fixed decision cadence.
package escape

import (
	"fmt"

	"github.com/vovakirdan/consulting-chaos/internal/core"
)

// Layout describes a maze: '#' is wall, anything else is floor.
type Layout struct {
	Name   string
	Rows   []string
	Start  core.Coord
	Exit   core.Coord
	Agents []core.Coord // spawn cells, in agent order
}

// Office is the 15×11 Friday afternoon floor plan.
var Office = Layout{
	Name: "office",
	Rows: []string{
		"###############",
		"#......#......#",
		"#.##.#.#.#.##.#",
		"#.............#",
		"#.#.#######.#.#",
		"#.............#",
		"#.#.#######.#.#",
		"#.............#",
		"#.##.#.#.#.##.#",
		"#......#......#",
		"###############",
	},
	Start:  core.C(1, 1),
	Exit:   core.C(13, 9),
	Agents: []core.Coord{core.C(7, 3), core.C(7, 7), core.C(3, 5), core.C(11, 5)},
}

// Maze is an immutable wall grid with its start, exit and agent spawns.
type Maze struct {
	w, h   int
	walls  []bool
	start  core.Coord
	exit   core.Coord
	spawns []core.Coord
}

// NewMaze validates a layout: rows must be rectangular and the start, exit and
// every spawn must be floor cells.
func NewMaze(l Layout) (*Maze, error) {
	if len(l.Rows) == 0 {
		return nil, fmt.Errorf("maze %q: no rows", l.Name)
	}
	w := len(l.Rows[0])
	m := &Maze{
		w:      w,
		h:      len(l.Rows),
		walls:  make([]bool, w*len(l.Rows)),
		start:  l.Start,
		exit:   l.Exit,
		spawns: append([]core.Coord(nil), l.Agents...),
	}
	for y, row := range l.Rows {
		if len(row) != w {
			return nil, fmt.Errorf("maze %q: row %d has width %d, want %d", l.Name, y, len(row), w)
		}
		for x := 0; x < w; x++ {
			m.walls[y*w+x] = row[x] == '#'
		}
	}

	if m.IsWall(l.Start) {
		return nil, fmt.Errorf("maze %q: start %v is not floor", l.Name, l.Start)
	}
	if m.IsWall(l.Exit) {
		return nil, fmt.Errorf("maze %q: exit %v is not floor", l.Name, l.Exit)
	}
	for _, a := range l.Agents {
		if m.IsWall(a) {
			return nil, fmt.Errorf("maze %q: agent spawn %v is not floor", l.Name, a)
		}
	}
	return m, nil
}

// DefaultMaze returns the office maze.
func DefaultMaze() *Maze {
	m, err := NewMaze(Office)
	if err != nil {
		panic(err)
	}
	return m
}

func (m *Maze) Width() int           { return m.w }
func (m *Maze) Height() int          { return m.h }
func (m *Maze) Start() core.Coord    { return m.start }
func (m *Maze) Exit() core.Coord     { return m.exit }
func (m *Maze) Spawns() []core.Coord { return append([]core.Coord(nil), m.spawns...) }

// IsWall reports whether c is a wall. Cells off the grid count as walls.
func (m *Maze) IsWall(c core.Coord) bool {
	if c.X < 0 || c.X >= m.w || c.Y < 0 || c.Y >= m.h {
		return true
	}
	return m.walls[c.Y*m.w+c.X]
}

// neighborOrder is right, left, down, up. Greedy ties resolve in this order.
var neighborOrder = [4]core.Coord{{X: 1, Y: 0}, {X: -1, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: -1}}

// Neighbors4 returns the orthogonal floor neighbors of c in right, left,
// down, up order.
func (m *Maze) Neighbors4(c core.Coord) []core.Coord {
	out := make([]core.Coord, 0, 4)
	for _, d := range neighborOrder {
		n := c.Plus(d)
		if !m.IsWall(n) {
			out = append(out, n)
		}
	}
	return out
}

package escape

import (
	"math/rand"

	"github.com/vovakirdan/consulting-chaos/internal/core"
)

// Pursuer decides agent moves: greedy Manhattan descent toward the target,
// with a jitter chance of a uniformly random neighbor instead.
type Pursuer struct {
	maze   *Maze
	rng    *rand.Rand
	jitter float64
}

// NewPursuer creates a pursuer on maze. jitter is a probability in [0, 1].
func NewPursuer(maze *Maze, rng *rand.Rand, jitter float64) *Pursuer {
	return &Pursuer{maze: maze, rng: rng, jitter: jitter}
}

// Step returns the next cell for an agent at pos chasing target.
// An agent with no floor neighbors stays put, and so does a greedy agent
// already on the target. Jitter moves happen regardless.
func (p *Pursuer) Step(pos, target core.Coord) core.Coord {
	options := p.maze.Neighbors4(pos)
	if len(options) == 0 {
		return pos
	}

	if p.rng.Float64() < p.jitter {
		return options[p.rng.Intn(len(options))]
	}
	if pos == target {
		return pos
	}

	best := options[0]
	bestDist := best.Manhattan(target)
	for _, o := range options[1:] {
		if d := o.Manhattan(target); d < bestDist {
			best, bestDist = o, d
		}
	}
	return best
}

// StepAll advances every agent against the same target snapshot. No agent
// sees another agent's new position.
func (p *Pursuer) StepAll(agents []core.Coord, target core.Coord) []core.Coord {
	out := make([]core.Coord, len(agents))
	for i, a := range agents {
		out[i] = p.Step(a, target)
	}
	return out
}

package escape

import (
	"math/rand"
	"slices"

	"github.com/vovakirdan/consulting-chaos/internal/config"
	"github.com/vovakirdan/consulting-chaos/internal/core"
)

// Event is what happened during one Update.
type Event int

const (
	EventNone Event = iota
	EventTagged
	EventEscaped
)

// State is the play state of one Friday Escape attempt.
type State struct {
	cfg      config.EscapeConfig
	maze     *Maze
	pursuer  *Pursuer
	player   core.Coord
	agents   []core.Coord
	tags     int
	invuln   float64
	decision float64 // accumulator toward the next agent decision
	steps    int     // decisions taken
}

// NewState puts the player on the start cell and agents on their spawns.
func NewState(maze *Maze, rng *rand.Rand, cfg config.EscapeConfig) *State {
	return &State{
		cfg:     cfg,
		maze:    maze,
		pursuer: NewPursuer(maze, rng, cfg.Jitter),
		player:  maze.Start(),
		agents:  maze.Spawns(),
	}
}

func (s *State) Maze() *Maze           { return s.maze }
func (s *State) Player() core.Coord    { return s.player }
func (s *State) Agents() []core.Coord  { return slices.Clone(s.agents) }
func (s *State) Tags() int             { return s.tags }
func (s *State) Invulnerable() float64 { return s.invuln }
func (s *State) Decisions() int        { return s.steps }

// PlayerVisible implements the blink while invulnerable.
func (s *State) PlayerVisible() bool {
	return s.invuln <= 0 || int(s.invuln*10)%2 == 0
}

// Move steps the player one cell unless the target is a wall.
func (s *State) Move(dx, dy int) bool {
	next := s.player.Add(dx, dy)
	if s.maze.IsWall(next) {
		return false
	}
	s.player = next
	return true
}

// Update advances the chase by dt seconds: invulnerability countdown, agent
// decision when the cadence fires, tag check, then the exit check.
func (s *State) Update(dt float64) Event {
	if s.invuln > 0 {
		s.invuln = max(0, s.invuln-dt)
	}

	s.decision += dt
	if s.decision >= s.cfg.DecisionInterval {
		s.decision = 0
		s.agents = s.pursuer.StepAll(s.agents, s.player)
		s.steps++
	}

	event := EventNone
	if s.invuln <= 0 && slices.Contains(s.agents, s.player) {
		s.tags++
		s.player = s.maze.Start()
		s.invuln = s.cfg.Invulnerability
		event = EventTagged
	}

	if s.player == s.maze.Exit() {
		return EventEscaped
	}
	return event
}

// Penalty is tags times the per-tag cost.
func Penalty(tags int, perTag float64) float64 {
	return float64(tags) * perTag
}

// AgentIcon picks a stable cosmetic variant for an agent drawn at c.
func AgentIcon(c core.Coord, variants int) int {
	if variants <= 0 {
		return 0
	}
	h := uint32(c.X)*73856093 ^ uint32(c.Y)*19349663
	return int(h % uint32(variants))
}

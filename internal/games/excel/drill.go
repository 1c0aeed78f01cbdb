package excel

import (
	"errors"
	"math/rand"
	"strconv"

	"github.com/vovakirdan/consulting-chaos/internal/config"
)

// ErrNotANumber is returned by Submit when the input buffer is not an integer.
var ErrNotANumber = errors.New("not a number")

// Outcome is the result of submitting an answer.
type Outcome int

const (
	OutcomeWrong    Outcome = iota // same problem stays, input cleared
	OutcomeCorrect                 // new problem generated
	OutcomeFinished                // required number of correct answers reached
)

// Drill is the state of one Excel Fire Drill attempt.
type Drill struct {
	cfg     config.ExcelConfig
	next    func() Problem
	problem Problem
	input   []rune
	correct int
	wrong   int
}

// Generator draws random problems from rng.
func Generator(rng *rand.Rand, cfg config.ExcelConfig) func() Problem {
	return func() Problem { return Generate(rng, cfg) }
}

// NewDrill starts a drill. next supplies every problem, the first included.
func NewDrill(cfg config.ExcelConfig, next func() Problem) *Drill {
	return &Drill{cfg: cfg, next: next, problem: next()}
}

func (d *Drill) Problem() Problem { return d.problem }
func (d *Drill) Input() string    { return string(d.input) }
func (d *Drill) Correct() int     { return d.correct }
func (d *Drill) Wrong() int       { return d.wrong }
func (d *Drill) Required() int    { return d.cfg.Count }

// Type appends r if it can be part of an integer answer: a digit, or a
// minus sign as the first character. Returns whether r was accepted.
func (d *Drill) Type(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
	case r == '-' && len(d.input) == 0:
	default:
		return false
	}
	d.input = append(d.input, r)
	return true
}

// Backspace removes the last input character.
func (d *Drill) Backspace() {
	if len(d.input) > 0 {
		d.input = d.input[:len(d.input)-1]
	}
}

// Submit checks the input against the current answer. A non-integer input
// returns ErrNotANumber and leaves all counters and the input untouched.
func (d *Drill) Submit() (Outcome, error) {
	val, err := strconv.Atoi(string(d.input))
	if err != nil {
		return OutcomeWrong, ErrNotANumber
	}

	if val != d.problem.Answer {
		d.wrong++
		d.input = d.input[:0]
		return OutcomeWrong, nil
	}

	d.correct++
	if d.correct >= d.cfg.Count {
		return OutcomeFinished, nil
	}
	d.problem = d.next()
	d.input = d.input[:0]
	return OutcomeCorrect, nil
}

// Penalty is wrong answers times the per-answer cost.
func Penalty(wrong int, perWrong float64) float64 {
	return float64(wrong) * perWrong
}

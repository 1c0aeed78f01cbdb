// Package email implements the Email Blast typing drill: reproduce a target
// sentence exactly, with every wrong keystroke counted as a miss.
package email

import (
	"math/rand"
	"strings"

	"github.com/vovakirdan/consulting-chaos/internal/config"
)

// Drill is the typing state of one Email Blast attempt.
type Drill struct {
	target []rune
	typed  []rune
	misses int
}

// NewDrill starts a drill for target.
func NewDrill(target string) *Drill {
	return &Drill{target: []rune(target)}
}

// Target returns the sentence to reproduce.
func (d *Drill) Target() string { return string(d.target) }

// Typed returns what has been typed so far.
func (d *Drill) Typed() string { return string(d.typed) }

// Misses returns the number of wrong keystrokes, including ones later erased.
func (d *Drill) Misses() int { return d.misses }

// Type appends r and reports whether it was a miss: a character that differs
// from the expected one at its position, or any character past the end.
func (d *Drill) Type(r rune) bool {
	idx := len(d.typed)
	miss := idx >= len(d.target) || d.target[idx] != r
	if miss {
		d.misses++
	}
	d.typed = append(d.typed, r)
	return miss
}

// Backspace removes the last typed character. Misses are not refunded.
func (d *Drill) Backspace() bool {
	if len(d.typed) == 0 {
		return false
	}
	d.typed = d.typed[:len(d.typed)-1]
	return true
}

// Matches reports whether the typed text equals the target.
func (d *Drill) Matches() bool {
	return string(d.typed) == string(d.target)
}

// CorrectPrefix returns how many leading typed characters match the target.
func (d *Drill) CorrectPrefix() int {
	n := 0
	for i, r := range d.typed {
		if i >= len(d.target) || d.target[i] != r {
			break
		}
		n++
	}
	return n
}

// Penalty is misses times the per-miss cost.
func Penalty(misses int, perMiss float64) float64 {
	return float64(misses) * perMiss
}

// GenerateTarget builds a target sentence of roughly MinLength..MaxLength
// characters from distinct stock phrases.
func GenerateTarget(rng *rand.Rand, cfg config.EmailConfig) string {
	phrases := cfg.Phrases
	if len(phrases) == 0 {
		phrases = config.DefaultPhrases
	}
	length := cfg.MinLength
	if cfg.MaxLength > cfg.MinLength {
		length += rng.Intn(cfg.MaxLength - cfg.MinLength + 1)
	}

	order := rng.Perm(len(phrases))
	seed := min(cfg.SeedPhrases, len(order))
	parts := make([]string, 0, len(order))
	for _, i := range order[:seed] {
		parts = append(parts, phrases[i])
	}
	text := strings.Join(parts, " ")

	if len(text) < length-20 {
		for _, i := range order[seed:] {
			if len(text) >= length-10 {
				break
			}
			text += " " + phrases[i]
		}
	}
	return text
}

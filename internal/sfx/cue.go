// Package sfx synthesizes the short sound cues that accompany gameplay
// events. Nothing is loaded from disk: every cue is built from oscillators.
package sfx

// Cue identifies a gameplay sound.
type Cue int

const (
	CueMiss    Cue = iota // wrong keystroke, wrong answer, piece that doesn't fit
	CueCorrect            // correct answer
	CuePlace              // piece committed to the calendar
	CueTag                // caught by a partner
	CueFinish             // stage complete
)

func (c Cue) String() string {
	switch c {
	case CueMiss:
		return "miss"
	case CueCorrect:
		return "correct"
	case CuePlace:
		return "place"
	case CueTag:
		return "tag"
	case CueFinish:
		return "finish"
	default:
		return "unknown"
	}
}

// Player plays cues. Implementations must not block the game loop.
type Player interface {
	Play(Cue)
}

// Nop discards every cue.
type Nop struct{}

func (Nop) Play(Cue) {}

// Recorder remembers played cues. Used by tests and headless runs.
type Recorder struct {
	Cues []Cue
}

func (r *Recorder) Play(c Cue) { r.Cues = append(r.Cues, c) }

// Count returns how many times c was played.
func (r *Recorder) Count(c Cue) int {
	n := 0
	for _, got := range r.Cues {
		if got == c {
			n++
		}
	}
	return n
}

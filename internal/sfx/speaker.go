package sfx

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/consulting-chaos/internal/config"
)

// Speaker plays cues on the system audio device.
type Speaker struct {
	mu     sync.Mutex
	rate   beep.SampleRate
	volume float64
	open   bool
}

// NewSpeaker initializes the audio device. Callers fall back to Nop on error.
func NewSpeaker(cfg config.SoundConfig) (*Speaker, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("sfx: cannot open audio device: %w", err)
	}
	return &Speaker{rate: rate, volume: cfg.MasterVolume, open: true}, nil
}

// Play starts cue without waiting for it to finish.
func (s *Speaker) Play(cue Cue) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return
	}
	if st := Build(cue, s.rate, s.volume); st != nil {
		speaker.Play(st)
	}
}

// Close silences any playing cue. Later Play calls are dropped.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.open {
		return
	}
	speaker.Clear()
	s.open = false
}

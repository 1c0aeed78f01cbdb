package core

import "time"

// Stopwatch measures a stage's wall-clock play time.
// The zero value is a stopwatch that has not been started.
type Stopwatch struct {
	start   time.Time
	end     time.Time
	started bool
	stopped bool
}

// Start begins timing at now. Calling Start on a running stopwatch is a no-op.
func (s *Stopwatch) Start(now time.Time) {
	if s.started {
		return
	}
	s.start = now
	s.started = true
}

// Stop freezes the elapsed time at now.
func (s *Stopwatch) Stop(now time.Time) {
	if !s.started || s.stopped {
		return
	}
	s.end = now
	s.stopped = true
}

// Reset returns the stopwatch to its not-started state.
func (s *Stopwatch) Reset() {
	*s = Stopwatch{}
}

// Started reports whether Start has been called.
func (s *Stopwatch) Started() bool {
	return s.started
}

// Elapsed returns seconds since Start, frozen once stopped.
// An unstarted stopwatch reports zero.
func (s *Stopwatch) Elapsed(now time.Time) float64 {
	if !s.started {
		return 0
	}
	end := now
	if s.stopped {
		end = s.end
	}
	return max(0, end.Sub(s.start).Seconds())
}

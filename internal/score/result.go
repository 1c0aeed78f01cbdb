// Package score holds the per-stage outcome model and the run-level totals
// derived from it.
package score

import (
	"fmt"
	"maps"
)

// Result is the immutable outcome of one stage: wall-clock time plus the
// penalty earned from mistakes. The total is always derived, never stored.
type Result struct {
	name    string
	elapsed float64
	penalty float64
	detail  map[string]any
}

// NewResult creates a stage result. Negative durations are clamped to zero.
// Detail values must be numbers or strings; anything else panics. The map
// is copied.
func NewResult(name string, elapsed, penalty float64, detail map[string]any) Result {
	for k, v := range detail {
		if !isFact(v) {
			panic(fmt.Sprintf("score: detail %q of %s has unsupported type %T", k, name, v))
		}
	}
	return Result{
		name:    name,
		elapsed: max(0, elapsed),
		penalty: max(0, penalty),
		detail:  maps.Clone(detail),
	}
}

func isFact(v any) bool {
	switch v.(type) {
	case string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return true
	}
	return false
}

// Name returns the stage name the result belongs to.
func (r Result) Name() string { return r.name }

// Elapsed returns the measured play time in seconds.
func (r Result) Elapsed() float64 { return r.elapsed }

// Penalty returns the seconds added for mistakes.
func (r Result) Penalty() float64 { return r.penalty }

// Total returns elapsed plus penalty.
func (r Result) Total() float64 { return r.elapsed + r.penalty }

// Detail returns a copy of the stage-specific facts (misses, wrong answers...).
func (r Result) Detail() map[string]any {
	return maps.Clone(r.detail)
}

// Fact returns one detail value.
func (r Result) Fact(key string) (any, bool) {
	v, ok := r.detail[key]
	return v, ok
}

// Package highscore keeps the durable best times and the leaderboard.
// The rules (what counts as a personal best, how the board is ordered and
// capped) live here; persistence is delegated to a Persister.
package highscore

import (
	"maps"
	"sort"
	"time"

	"github.com/google/uuid"
)

// LeaderboardSize caps the number of kept entries.
const LeaderboardSize = 10

// Entry is one leaderboard line.
type Entry struct {
	ID         uuid.UUID
	Name       string
	Title      string
	Total      float64
	Individual map[string]float64 // stage name -> stage total
	Date       time.Time
}

// Record is the persisted score state.
type Record struct {
	BestTotal   *float64           // nil until a run has been completed
	BestStage   map[string]float64 // stage name -> best stage total
	Leaderboard []Entry            // ascending by Total, at most LeaderboardSize
}

// Empty returns a record with no runs.
func Empty() Record {
	return Record{BestStage: make(map[string]float64)}
}

// Clone returns a deep copy.
func (r Record) Clone() Record {
	out := Record{
		BestStage:   maps.Clone(r.BestStage),
		Leaderboard: make([]Entry, len(r.Leaderboard)),
	}
	if out.BestStage == nil {
		out.BestStage = make(map[string]float64)
	}
	if r.BestTotal != nil {
		v := *r.BestTotal
		out.BestTotal = &v
	}
	for i, e := range r.Leaderboard {
		e.Individual = maps.Clone(e.Individual)
		out.Leaderboard[i] = e
	}
	return out
}

// Observe folds a finished run into the record. Stage bests are always
// updated; the return value reports whether total is a new personal best.
// changed reports whether anything in the record moved.
func (r *Record) Observe(total float64, individual map[string]float64) (isBest, changed bool) {
	if r.BestStage == nil {
		r.BestStage = make(map[string]float64)
	}
	for name, t := range individual {
		if best, ok := r.BestStage[name]; !ok || t < best {
			r.BestStage[name] = t
			changed = true
		}
	}

	if r.BestTotal != nil && total >= *r.BestTotal {
		return false, changed
	}
	v := total
	r.BestTotal = &v
	return true, true
}

// Insert adds an entry, keeps the board sorted ascending by total and caps it
// at LeaderboardSize. Entries tied on total keep insertion order. Returns the
// 0-based position of the new entry, or -1 if it did not make the board.
func (r *Record) Insert(e Entry) int {
	r.Leaderboard = append(r.Leaderboard, e)
	sort.SliceStable(r.Leaderboard, func(i, j int) bool {
		return r.Leaderboard[i].Total < r.Leaderboard[j].Total
	})
	if len(r.Leaderboard) > LeaderboardSize {
		r.Leaderboard = r.Leaderboard[:LeaderboardSize]
	}
	for i, got := range r.Leaderboard {
		if got.ID == e.ID {
			return i
		}
	}
	return -1
}

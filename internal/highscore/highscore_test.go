package highscore

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

type memStore struct {
	rec     Record
	loadErr error
	saveErr error
	saves   int
}

func (m *memStore) LoadRecord() (Record, error) {
	if m.loadErr != nil {
		return Record{}, m.loadErr
	}
	return m.rec.Clone(), nil
}

func (m *memStore) SaveRecord(r Record) error {
	m.saves++
	if m.saveErr != nil {
		return m.saveErr
	}
	m.rec = r
	return nil
}

func TestObserveBestTotal(t *testing.T) {
	r := Empty()

	isBest, _ := r.Observe(120, map[string]float64{"Email": 30})
	if !isBest {
		t.Fatalf("first run must be a best")
	}
	if r.BestTotal == nil || *r.BestTotal != 120 {
		t.Fatalf("BestTotal = %v, want 120", r.BestTotal)
	}

	isBest, _ = r.Observe(130, map[string]float64{"Email": 25})
	if isBest {
		t.Fatalf("worse total must not be a best")
	}
	if *r.BestTotal != 120 {
		t.Fatalf("BestTotal changed to %v", *r.BestTotal)
	}
	if r.BestStage["Email"] != 25 {
		t.Fatalf("stage best = %v, want 25", r.BestStage["Email"])
	}

	isBest, _ = r.Observe(120, nil)
	if isBest {
		t.Fatalf("equal total must not be a best")
	}
}

func TestObserveUnchanged(t *testing.T) {
	r := Empty()
	r.Observe(100, map[string]float64{"Excel": 10})
	isBest, changed := r.Observe(150, map[string]float64{"Excel": 11})
	if isBest || changed {
		t.Fatalf("isBest=%v changed=%v, want false false", isBest, changed)
	}
}

func TestInsertOrderingAndCap(t *testing.T) {
	r := Empty()
	for i := 0; i < LeaderboardSize; i++ {
		pos := r.Insert(Entry{ID: uuid.New(), Total: float64(100 + i*10)})
		if pos != i {
			t.Fatalf("insert %d: pos = %d, want %d", i, pos, i)
		}
	}

	if pos := r.Insert(Entry{ID: uuid.New(), Total: 105}); pos != 1 {
		t.Fatalf("pos = %d, want 1", pos)
	}
	if len(r.Leaderboard) != LeaderboardSize {
		t.Fatalf("len = %d, want %d", len(r.Leaderboard), LeaderboardSize)
	}
	if last := r.Leaderboard[LeaderboardSize-1].Total; last != 180 {
		t.Fatalf("slowest kept = %v, want 180", last)
	}

	if pos := r.Insert(Entry{ID: uuid.New(), Total: 999}); pos != -1 {
		t.Fatalf("pos = %d, want -1", pos)
	}
	for i := 1; i < len(r.Leaderboard); i++ {
		if r.Leaderboard[i-1].Total > r.Leaderboard[i].Total {
			t.Fatalf("board not ascending at %d", i)
		}
	}
}

func TestInsertTieKeepsEarlierFirst(t *testing.T) {
	r := Empty()
	first := uuid.New()
	r.Insert(Entry{ID: first, Total: 100})
	if pos := r.Insert(Entry{ID: uuid.New(), Total: 100}); pos != 1 {
		t.Fatalf("pos = %d, want 1", pos)
	}
	if r.Leaderboard[0].ID != first {
		t.Fatalf("earlier entry moved")
	}
}

func TestCloneIsDeep(t *testing.T) {
	r := Empty()
	r.Observe(100, map[string]float64{"Email": 20})
	r.Insert(Entry{ID: uuid.New(), Total: 100, Individual: map[string]float64{"Email": 20}})

	c := r.Clone()
	*c.BestTotal = 1
	c.BestStage["Email"] = 1
	c.Leaderboard[0].Individual["Email"] = 1

	if *r.BestTotal != 100 || r.BestStage["Email"] != 20 || r.Leaderboard[0].Individual["Email"] != 20 {
		t.Fatalf("clone shares state with original")
	}
}

func TestBookPersists(t *testing.T) {
	store := &memStore{rec: Empty()}
	b := Open(store, nil)

	if _, ok := b.BestTotal(); ok {
		t.Fatalf("fresh book has a best total")
	}
	if !b.SubmitRun(140, map[string]float64{"Email": 40}) {
		t.Fatalf("first run must be a best")
	}
	if pos := b.AddEntry("Ada", "Manager", 140, map[string]float64{"Email": 40}); pos != 0 {
		t.Fatalf("pos = %d, want 0", pos)
	}

	reopened := Open(store, nil)
	best, ok := reopened.BestTotal()
	if !ok || best != 140 {
		t.Fatalf("reopened best = %v %v, want 140 true", best, ok)
	}
	rec := reopened.Record()
	if len(rec.Leaderboard) != 1 || rec.Leaderboard[0].Name != "Ada" {
		t.Fatalf("leaderboard = %+v", rec.Leaderboard)
	}
	if rec.Leaderboard[0].Date.IsZero() {
		t.Fatalf("entry has no date")
	}
}

func TestBookLoadFailureStartsEmpty(t *testing.T) {
	b := Open(&memStore{loadErr: errors.New("corrupt")}, nil)
	if _, ok := b.BestTotal(); ok {
		t.Fatalf("expected empty record after failed load")
	}
	if !b.SubmitRun(100, nil) {
		t.Fatalf("run must still count after failed load")
	}
}

func TestBookSaveFailureIsSwallowed(t *testing.T) {
	store := &memStore{rec: Empty(), saveErr: errors.New("disk full")}
	b := Open(store, nil)
	if !b.SubmitRun(100, nil) {
		t.Fatalf("expected best")
	}
	if store.saves != 1 {
		t.Fatalf("saves = %d, want 1", store.saves)
	}
	if best, _ := b.BestTotal(); best != 100 {
		t.Fatalf("in-memory best lost after failed save")
	}
}

func TestBookWithoutStore(t *testing.T) {
	b := Open(nil, nil)
	b.SubmitRun(90, nil)
	if pos := b.AddEntry("x", "y", 90, nil); pos != 0 {
		t.Fatalf("pos = %d, want 0", pos)
	}
}

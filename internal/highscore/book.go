package highscore

import (
	"io"
	"maps"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// Persister loads and stores a Record. Implemented by the sqlite store.
type Persister interface {
	LoadRecord() (Record, error)
	SaveRecord(Record) error
}

// Book is the in-memory high-score state of the process, backed by an
// optional Persister. Persistence failures are logged and never surface to
// gameplay: a failed load yields an empty record, a failed save is skipped.
type Book struct {
	rec    Record
	store  Persister
	logger *log.Logger
	now    func() time.Time
}

// Open loads the record from store. store may be nil, in which case scores
// live only for the lifetime of the process.
func Open(store Persister, logger *log.Logger) *Book {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	b := &Book{
		rec:    Empty(),
		store:  store,
		logger: logger,
		now:    time.Now,
	}
	if store == nil {
		return b
	}

	rec, err := store.LoadRecord()
	if err != nil {
		logger.Warn("could not load high scores, starting empty", "error", err)
		return b
	}
	if rec.BestStage == nil {
		rec.BestStage = make(map[string]float64)
	}
	b.rec = rec
	return b
}

// Record returns a copy of the current record.
func (b *Book) Record() Record {
	return b.rec.Clone()
}

// BestTotal returns the best run total, if any run has been recorded.
func (b *Book) BestTotal() (float64, bool) {
	if b.rec.BestTotal == nil {
		return 0, false
	}
	return *b.rec.BestTotal, true
}

// SubmitRun records a finished run and reports whether it is a new personal best.
func (b *Book) SubmitRun(total float64, individual map[string]float64) bool {
	isBest, changed := b.rec.Observe(total, individual)
	if changed {
		b.save()
	}
	if isBest {
		b.logger.Info("new personal best", "total", total)
	}
	return isBest
}

// AddEntry puts a named run on the leaderboard and returns its 0-based
// position, or -1 if it fell off the board.
func (b *Book) AddEntry(name, title string, total float64, individual map[string]float64) int {
	entry := Entry{
		ID:         uuid.New(),
		Name:       name,
		Title:      title,
		Total:      total,
		Individual: maps.Clone(individual),
		Date:       b.now(),
	}
	pos := b.rec.Insert(entry)
	b.save()
	b.logger.Info("leaderboard entry", "name", name, "title", title, "total", total, "position", pos)
	return pos
}

func (b *Book) save() {
	if b.store == nil {
		return
	}
	if err := b.store.SaveRecord(b.rec.Clone()); err != nil {
		b.logger.Warn("could not save high scores", "error", err)
	}
}

// Package storage provides SQLite-based persistence for high scores.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/consulting-chaos/internal/highscore"
)

// Store manages the SQLite database connection for score persistence.
// It implements highscore.Persister.
type Store struct {
	db *sql.DB
}

var _ highscore.Persister = (*Store)(nil)

const timeLayout = time.RFC3339Nano

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS best_total (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			total REAL NOT NULL
		);

		CREATE TABLE IF NOT EXISTS stage_bests (
			stage TEXT PRIMARY KEY,
			total REAL NOT NULL
		);

		CREATE TABLE IF NOT EXISTS leaderboard (
			id TEXT PRIMARY KEY,
			seq INTEGER NOT NULL,
			name TEXT NOT NULL,
			title TEXT NOT NULL,
			total REAL NOT NULL,
			played_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_leaderboard_order ON leaderboard(seq);

		CREATE TABLE IF NOT EXISTS leaderboard_stages (
			entry_id TEXT NOT NULL REFERENCES leaderboard(id) ON DELETE CASCADE,
			stage TEXT NOT NULL,
			total REAL NOT NULL,
			PRIMARY KEY (entry_id, stage)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// LoadRecord reads the whole high-score record.
func (s *Store) LoadRecord() (highscore.Record, error) {
	rec := highscore.Empty()

	var best sql.NullFloat64
	err := s.db.QueryRow("SELECT total FROM best_total WHERE id = 1").Scan(&best)
	if err != nil && err != sql.ErrNoRows {
		return rec, fmt.Errorf("storage: cannot query best total: %w", err)
	}
	if best.Valid {
		v := best.Float64
		rec.BestTotal = &v
	}

	rows, err := s.db.Query("SELECT stage, total FROM stage_bests")
	if err != nil {
		return rec, fmt.Errorf("storage: cannot query stage bests: %w", err)
	}
	for rows.Next() {
		var stage string
		var total float64
		if err := rows.Scan(&stage, &total); err != nil {
			rows.Close()
			return rec, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rec.BestStage[stage] = total
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return rec, fmt.Errorf("storage: row iteration error: %w", err)
	}

	entries, err := s.Leaderboard()
	if err != nil {
		return rec, err
	}
	rec.Leaderboard = entries
	return rec, nil
}

// Leaderboard returns the stored leaderboard in board order.
func (s *Store) Leaderboard() ([]highscore.Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, name, title, total, played_at
		 FROM leaderboard
		 ORDER BY seq ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []highscore.Entry
	for rows.Next() {
		var e highscore.Entry
		var id string
		var playedAt any
		if err := rows.Scan(&id, &e.Name, &e.Title, &e.Total, &playedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("storage: bad entry id %q: %w", id, err)
		}
		e.Date = parseTime(playedAt)
		e.Individual = make(map[string]float64)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	for i := range entries {
		if err := s.loadStages(&entries[i]); err != nil {
			return nil, err
		}
	}
	return entries, nil
}

func (s *Store) loadStages(e *highscore.Entry) error {
	rows, err := s.db.Query(
		"SELECT stage, total FROM leaderboard_stages WHERE entry_id = ?",
		e.ID.String(),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot query entry stages: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var stage string
		var total float64
		if err := rows.Scan(&stage, &total); err != nil {
			return fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.Individual[stage] = total
	}
	return rows.Err()
}

// SaveRecord replaces the stored record with rec in one transaction.
func (s *Store) SaveRecord(rec highscore.Record) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, stmt := range []string{
		"DELETE FROM best_total",
		"DELETE FROM stage_bests",
		"DELETE FROM leaderboard_stages",
		"DELETE FROM leaderboard",
	} {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("storage: cannot clear record: %w", err)
		}
	}

	if rec.BestTotal != nil {
		if _, err := tx.Exec("INSERT INTO best_total (id, total) VALUES (1, ?)", *rec.BestTotal); err != nil {
			return fmt.Errorf("storage: cannot save best total: %w", err)
		}
	}

	for stage, total := range rec.BestStage {
		if _, err := tx.Exec("INSERT INTO stage_bests (stage, total) VALUES (?, ?)", stage, total); err != nil {
			return fmt.Errorf("storage: cannot save stage best: %w", err)
		}
	}

	for seq, e := range rec.Leaderboard {
		_, err := tx.Exec(
			`INSERT INTO leaderboard (id, seq, name, title, total, played_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			e.ID.String(), seq, e.Name, e.Title, e.Total, e.Date.UTC().Format(timeLayout),
		)
		if err != nil {
			return fmt.Errorf("storage: cannot save leaderboard entry: %w", err)
		}
		for stage, total := range e.Individual {
			_, err := tx.Exec(
				"INSERT INTO leaderboard_stages (entry_id, stage, total) VALUES (?, ?, ?)",
				e.ID.String(), stage, total,
			)
			if err != nil {
				return fmt.Errorf("storage: cannot save entry stage: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit record: %w", err)
	}
	return nil
}

// Clear deletes every stored score.
func (s *Store) Clear() error {
	return s.SaveRecord(highscore.Empty())
}

// parseTime handles both time.Time and string values from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse(timeLayout, v); err == nil {
			return parsed
		}
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

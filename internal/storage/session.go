// Package storage keeps the results of the runs played in this process.
// Results live in an in-memory SQLite database (pure-Go modernc.org/sqlite
// driver); nothing is written to disk and everything is gone at exit.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the in-memory session database.
type Store struct {
	db *sql.DB
}

// RunResult is the outcome of one finished run.
type RunResult struct {
	ID         int64
	GameID     string
	Score      int
	Duration   time.Duration // Simulated play time until game over
	Seed       int64
	Difficulty string // Preset name, empty for the configured default
	CreatedAt  time.Time
}

// Summary aggregates the runs of one game.
type Summary struct {
	Runs     int
	Best     int
	Average  float64
	PlayTime time.Duration
}

// OpenSession creates an empty in-memory store.
func OpenSession() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

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

// migrate creates the schema.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			seed INTEGER NOT NULL DEFAULT 0,
			difficulty TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(game_id, score DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close releases the database. All results are lost.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run and returns its ID.
func (s *Store) SaveRun(r RunResult) (int64, error) {
	res, err := s.db.Exec(
		"INSERT INTO runs (game_id, score, duration_ms, seed, difficulty) VALUES (?, ?, ?, ?, ?)",
		r.GameID, r.Score, r.Duration.Milliseconds(), r.Seed, r.Difficulty,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopRuns returns the best runs of a game, highest score first. Ties are
// broken by the longer run.
func (s *Store) TopRuns(gameID string, limit int) ([]RunResult, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, duration_ms, seed, difficulty, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY score DESC, duration_ms DESC, id ASC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunResult
	for rows.Next() {
		var r RunResult
		var durationMS int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.GameID, &r.Score, &durationMS, &r.Seed, &r.Difficulty, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Duration = time.Duration(durationMS) * time.Millisecond

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			r.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				r.CreatedAt = parsed
			}
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// Summarize aggregates every run of a game. A game with no runs yields a
// zero Summary.
func (s *Store) Summarize(gameID string) (Summary, error) {
	var (
		sum        Summary
		best       sql.NullInt64
		avg        sql.NullFloat64
		durationMS sql.NullInt64
	)
	err := s.db.QueryRow(
		"SELECT COUNT(*), MAX(score), AVG(score), SUM(duration_ms) FROM runs WHERE game_id = ?",
		gameID,
	).Scan(&sum.Runs, &best, &avg, &durationMS)
	if err != nil {
		return Summary{}, fmt.Errorf("storage: cannot summarize runs: %w", err)
	}

	if best.Valid {
		sum.Best = int(best.Int64)
	}
	if avg.Valid {
		sum.Average = avg.Float64
	}
	if durationMS.Valid {
		sum.PlayTime = time.Duration(durationMS.Int64) * time.Millisecond
	}
	return sum, nil
}

// Package store handles SQLite persistence.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/codetype/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// timeLayout is fixed-width so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store wraps SQLite access for practice history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS rounds (
			id INTEGER PRIMARY KEY,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			path TEXT NOT NULL,
			ext TEXT NOT NULL,
			practice_chars INTEGER NOT NULL,
			typed_chars INTEGER NOT NULL,
			correct INTEGER NOT NULL,
			incorrect INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_rounds_ended_at ON rounds(ended_at);`,
		`CREATE INDEX IF NOT EXISTS idx_rounds_ext ON rounds(ext);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertRound stores a finished practice round.
func (s *Store) InsertRound(ctx context.Context, round model.RoundStats) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO rounds (started_at, ended_at, path, ext, practice_chars, typed_chars, correct, incorrect, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		round.StartedAt.UTC().Format(timeLayout),
		round.EndedAt.UTC().Format(timeLayout),
		round.Path,
		round.Ext,
		round.PracticeChars,
		round.TypedChars,
		round.Correct,
		round.Incorrect,
		round.DurationMs,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListRounds returns round aggregates filtered by history config, oldest first.
func (s *Store) ListRounds(ctx context.Context, cfg model.HistoryConfig) ([]model.RoundAggregate, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Ext != "" {
		clauses = append(clauses, "ext = ?")
		args = append(args, cfg.Ext)
	}
	if cfg.Since != nil {
		clauses = append(clauses, "ended_at >= ?")
		args = append(args, cfg.Since.UTC().Format(timeLayout))
	}
	query := fmt.Sprintf(`SELECT id, ended_at, path, typed_chars, correct, incorrect, duration_ms
		FROM rounds
		WHERE %s
		ORDER BY ended_at ASC`, strings.Join(clauses, " AND "))
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var rounds []model.RoundAggregate
	for rows.Next() {
		var agg model.RoundAggregate
		var endedAt string
		if err := rows.Scan(&agg.RoundID, &endedAt, &agg.Path, &agg.TypedChars, &agg.Correct, &agg.Incorrect, &agg.DurationMs); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(timeLayout, endedAt)
		if err != nil {
			return nil, err
		}
		agg.EndedAt = parsed
		rounds = append(rounds, agg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if cfg.Last > 0 && len(rounds) > cfg.Last {
		rounds = rounds[len(rounds)-cfg.Last:]
	}
	return rounds, nil
}

// CountByPath returns how often each path was practiced.
func (s *Store) CountByPath(ctx context.Context, cfg model.HistoryConfig) (map[string]int, error) {
	query := `SELECT path, COUNT(*) FROM rounds WHERE (? = '' OR ext = ?) GROUP BY path`
	rows, err := s.db.QueryContext(ctx, query, cfg.Ext, cfg.Ext)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	counts := map[string]int{}
	for rows.Next() {
		var p string
		var n int
		if err := rows.Scan(&p, &n); err != nil {
			return nil, err
		}
		counts[p] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}

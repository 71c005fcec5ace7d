// Package storage persists finished snake runs in SQLite through the
// pure-Go modernc.org/sqlite driver.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// sqliteTimeLayout is the format CURRENT_TIMESTAMP produces.
const sqliteTimeLayout = "2006-01-02 15:04:05"

// Store manages the SQLite database connection for run persistence.
type Store struct {
	db *sql.DB
}

// Run is one finished game.
type Run struct {
	ID        int64
	Variant   string
	Score     int
	Length    int
	Ticks     uint64
	Cause     string // "wall" or "self"
	CreatedAt time.Time
}

// migrations are applied in order; PRAGMA user_version records how many ran.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id         INTEGER PRIMARY KEY AUTOINCREMENT,
		variant    TEXT    NOT NULL,
		score      INTEGER NOT NULL,
		length     INTEGER NOT NULL DEFAULT 2,
		ticks      INTEGER NOT NULL DEFAULT 0,
		cause      TEXT    NOT NULL DEFAULT '',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_runs_variant ON runs(variant)`,
	`CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(variant, score DESC)`,
}

// SchemaVersion is the user_version of a fully migrated database.
var SchemaVersion = len(migrations)

// Open opens (creating if needed) the database at dbPath and migrates it.
// A leading ~ is expanded to the home directory; parent directories are created.
func Open(dbPath string) (*Store, error) {
	dbPath, err := expandHome(dbPath)
	if err != nil {
		return nil, err
	}
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// sqlite has a single writer; sessions share one connection.
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

func expandHome(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}

// migrate runs the migrations the database has not seen yet in one transaction.
func (s *Store) migrate() error {
	version, err := s.Version()
	if err != nil {
		return err
	}
	if version >= len(migrations) {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for i, stmt := range migrations[version:] {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("step %d: %w", version+i+1, err)
		}
	}
	// PRAGMA does not take bind parameters.
	if _, err := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", len(migrations))); err != nil {
		return err
	}
	return tx.Commit()
}

// Version returns the schema version stored in the database.
func (s *Store) Version() (int, error) {
	var v int
	if err := s.db.QueryRow("PRAGMA user_version").Scan(&v); err != nil {
		return 0, fmt.Errorf("storage: cannot read schema version: %w", err)
	}
	return v, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r Run) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (variant, score, length, ticks, cause) VALUES (?, ?, ?, ?, ?)",
		r.Variant, r.Score, r.Length, int64(r.Ticks), r.Cause,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N runs for the given variant.
// Results are ordered by score descending, earlier runs first on ties.
func (s *Store) TopScores(variant string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, variant, score, length, ticks, cause, created_at
		 FROM runs
		 WHERE variant = ?
		 ORDER BY score DESC, id ASC
		 LIMIT ?`,
		variant, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanRuns(rows)
}

// AllScores retrieves all runs for the given variant (no limit).
func (s *Store) AllScores(variant string) ([]Run, error) {
	rows, err := s.db.Query(
		`SELECT id, variant, score, length, ticks, cause, created_at
		 FROM runs
		 WHERE variant = ?
		 ORDER BY score DESC, id ASC`,
		variant,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	return scanRuns(rows)
}

// scanRuns reads every row from a runs query and closes it.
func scanRuns(rows *sql.Rows) ([]Run, error) {
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var ticks int64
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Variant, &r.Score, &r.Length, &ticks, &r.Cause, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Ticks = uint64(ticks)
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse(sqliteTimeLayout, t); err == nil {
			return parsed
		}
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// HighScore returns the highest score for the given variant.
// Returns 0 if no runs exist.
func (s *Store) HighScore(variant string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE variant = ?",
		variant,
	).Scan(&score)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}

	return int(score.Int64), nil
}

// ClearScores deletes all runs for the given variant.
func (s *Store) ClearScores(variant string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE variant = ?", variant)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// VariantStats contains aggregated statistics for a variant.
type VariantStats struct {
	Variant    string
	RunsCount  int
	HighScore  int
	AvgScore   float64
	LongestRun int // Longest snake reached
	TotalTicks int64
	WallDeaths int
	SelfDeaths int
	LastPlayed time.Time
}

// GetVariantStats retrieves aggregated statistics for a specific variant.
func (s *Store) GetVariantStats(variant string) (*VariantStats, error) {
	stats := &VariantStats{Variant: variant}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0),
		        COALESCE(MAX(length), 0), COALESCE(SUM(ticks), 0),
		        COALESCE(SUM(cause = 'wall'), 0), COALESCE(SUM(cause = 'self'), 0)
		 FROM runs WHERE variant = ?`,
		variant,
	).Scan(&stats.RunsCount, &stats.HighScore, &stats.AvgScore,
		&stats.LongestRun, &stats.TotalTicks, &stats.WallDeaths, &stats.SelfDeaths)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get variant stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE variant = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		variant,
	).Scan(&lastPlayed)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTime(lastPlayed)
	}

	return stats, nil
}

// GetAllVariantStats retrieves statistics for every variant that has been played.
func (s *Store) GetAllVariantStats() (map[string]*VariantStats, error) {
	rows, err := s.db.Query(
		`SELECT variant, COUNT(*), MAX(score), AVG(score), MAX(length), SUM(ticks),
		        SUM(cause = 'wall'), SUM(cause = 'self'), MAX(created_at)
		 FROM runs
		 GROUP BY variant`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all variant stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*VariantStats)
	for rows.Next() {
		var v VariantStats
		var lastPlayed any
		if err := rows.Scan(&v.Variant, &v.RunsCount, &v.HighScore, &v.AvgScore, &v.LongestRun,
			&v.TotalTicks, &v.WallDeaths, &v.SelfDeaths, &lastPlayed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		v.LastPlayed = parseTime(lastPlayed)
		stats[v.Variant] = &v
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}

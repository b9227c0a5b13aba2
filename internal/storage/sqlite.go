// Package storage provides SQLite-based persistence for memory session results.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tile-memory/internal/score"
)

// Store manages the SQLite database connection for result persistence.
type Store struct {
	db *sql.DB
}

// ResultEntry is a stored session result.
type ResultEntry struct {
	ID        int64
	CreatedAt time.Time
	score.Result
}

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

	// Create parent directories
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
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			tileset TEXT NOT NULL,
			board_columns INTEGER NOT NULL,
			board_rows INTEGER NOT NULL,
			seed0 INTEGER NOT NULL DEFAULT 0,
			seed1 INTEGER NOT NULL DEFAULT 0,
			moves INTEGER NOT NULL DEFAULT 0,
			matches INTEGER NOT NULL DEFAULT 0,
			mismatches INTEGER NOT NULL DEFAULT 0,
			score INTEGER NOT NULL,
			completed INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_tileset ON results(tileset);
		CREATE INDEX IF NOT EXISTS idx_results_top ON results(tileset, score DESC);
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

// SaveResult records a session result.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r score.Result) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO results
		 (tileset, board_columns, board_rows, seed0, seed1, moves, matches, mismatches, score, completed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.TileSet,
		r.Columns,
		r.Rows,
		int64(r.Seed0),
		int64(r.Seed1),
		r.Moves,
		r.Matches,
		r.Mismatches,
		r.Score,
		r.Completed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// SaveGameResult implements score.ResultSaver.
func (s *Store) SaveGameResult(r score.Result) error {
	_, err := s.SaveResult(r)
	return err
}

// Ensure Store implements ResultSaver
var _ score.ResultSaver = (*Store)(nil)

// TopResults retrieves the best N results for a tile set.
// Results are ordered by score descending, then by fewer moves.
func (s *Store) TopResults(tileSet string, limit int) ([]ResultEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, tileset, board_columns, board_rows, seed0, seed1, moves, matches, mismatches, score, completed, created_at
		 FROM results
		 WHERE tileset = ?
		 ORDER BY score DESC, moves ASC
		 LIMIT ?`,
		tileSet, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var entries []ResultEntry
	for rows.Next() {
		e, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// ResultByID retrieves a single result. Returns nil if it doesn't exist.
func (s *Store) ResultByID(id int64) (*ResultEntry, error) {
	row := s.db.QueryRow(
		`SELECT id, tileset, board_columns, board_rows, seed0, seed1, moves, matches, mismatches, score, completed, created_at
		 FROM results
		 WHERE id = ?`,
		id,
	)

	e, err := scanResult(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanResult(sc scanner) (ResultEntry, error) {
	var e ResultEntry
	var seed0, seed1 int64
	var createdAt any

	err := sc.Scan(
		&e.ID,
		&e.TileSet,
		&e.Columns,
		&e.Rows,
		&seed0,
		&seed1,
		&e.Moves,
		&e.Matches,
		&e.Mismatches,
		&e.Score,
		&e.Completed,
		&createdAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return e, err
	}
	if err != nil {
		return e, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	e.Seed0 = uint64(seed0)
	e.Seed1 = uint64(seed1)
	e.CreatedAt = parseTime(createdAt)
	return e, nil
}

// parseTime handles both time.Time and string datetimes.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

// HighScore returns the highest score for the tile set.
// Returns 0 if no results exist.
func (s *Store) HighScore(tileSet string) (int, error) {
	var best sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM results WHERE tileset = ?",
		tileSet,
	).Scan(&best)

	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !best.Valid {
		return 0, nil
	}

	return int(best.Int64), nil
}

// ClearResults deletes all results for the tile set.
func (s *Store) ClearResults(tileSet string) error {
	_, err := s.db.Exec("DELETE FROM results WHERE tileset = ?", tileSet)
	if err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// Stats contains aggregated statistics for a tile set.
type Stats struct {
	TileSet    string
	Games      int
	Completed  int
	HighScore  int
	AvgScore   float64
	AvgMoves   float64
	LastPlayed time.Time
}

// GetStats retrieves aggregated statistics for a tile set.
func (s *Store) GetStats(tileSet string) (*Stats, error) {
	stats := &Stats{TileSet: tileSet}

	var lastPlayed any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(completed), 0), COALESCE(MAX(score), 0),
		        COALESCE(AVG(score), 0), COALESCE(AVG(moves), 0), MAX(created_at)
		 FROM results WHERE tileset = ?`,
		tileSet,
	).Scan(&stats.Games, &stats.Completed, &stats.HighScore, &stats.AvgScore, &stats.AvgMoves, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

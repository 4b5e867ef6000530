// Package storage provides SQLite-based persistence for finished
// matches. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Result is the recorded outcome of a match.
type Result string

const (
	ResultBlackWin Result = "black"
	ResultWhiteWin Result = "white"
	ResultDraw     Result = "draw"
)

// MatchRecord represents one finished match.
type MatchRecord struct {
	ID        int64
	Black     string // Provider name that played Black
	White     string // Provider name that played White
	Winner    Result
	Moves     int // Total pieces placed
	Duration  int // Wall-clock duration in seconds
	CreatedAt time.Time
}

// Stats contains aggregated match statistics.
type Stats struct {
	Matches   int
	BlackWins int
	WhiteWins int
	Draws     int
	AvgMoves  float64
}

// Store manages the SQLite database connection for match persistence.
type Store struct {
	db *sql.DB
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
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			black TEXT NOT NULL,
			white TEXT NOT NULL,
			winner TEXT NOT NULL,
			moves INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_created ON matches(created_at DESC);
		CREATE INDEX IF NOT EXISTS idx_matches_winner ON matches(winner);
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

// SaveMatch records a finished match.
// Returns the ID of the inserted record.
func (s *Store) SaveMatch(rec MatchRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO matches (black, white, winner, moves, duration_secs)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.Black, rec.White, string(rec.Winner), rec.Moves, rec.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentMatches retrieves the most recent matches, newest first.
func (s *Store) RecentMatches(limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, black, white, winner, moves, duration_secs, created_at
		 FROM matches
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		var rec MatchRecord
		var winner string
		var createdAt any
		if err := rows.Scan(&rec.ID, &rec.Black, &rec.White, &winner, &rec.Moves, &rec.Duration, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		rec.Winner = Result(winner)
		rec.CreatedAt = parseTime(createdAt)
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// MatchStats returns aggregated statistics over all recorded matches.
func (s *Store) MatchStats() (Stats, error) {
	var stats Stats
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN winner = 'black' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN winner = 'white' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN winner = 'draw' THEN 1 ELSE 0 END), 0),
		        COALESCE(AVG(moves), 0)
		 FROM matches`,
	).Scan(&stats.Matches, &stats.BlackWins, &stats.WhiteWins, &stats.Draws, &stats.AvgMoves)
	if err != nil {
		return stats, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	return stats, nil
}

// ProviderStats returns win/loss/draw counts for a provider name,
// counting both sides it may have played.
func (s *Store) ProviderStats(name string) (wins, losses, draws int, err error) {
	err = s.db.QueryRow(
		`SELECT
		   COALESCE(SUM(CASE WHEN (black = ? AND winner = 'black') OR (white = ? AND winner = 'white') THEN 1 ELSE 0 END), 0),
		   COALESCE(SUM(CASE WHEN (black = ? AND winner = 'white') OR (white = ? AND winner = 'black') THEN 1 ELSE 0 END), 0),
		   COALESCE(SUM(CASE WHEN (black = ? OR white = ?) AND winner = 'draw' THEN 1 ELSE 0 END), 0)
		 FROM matches`,
		name, name, name, name, name, name,
	).Scan(&wins, &losses, &draws)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("storage: cannot query provider stats: %w", err)
	}
	return wins, losses, draws, nil
}

// ClearMatches deletes all recorded matches.
func (s *Store) ClearMatches() error {
	_, err := s.db.Exec("DELETE FROM matches")
	if err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}

// parseTime handles the driver returning either time.Time or a string.
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

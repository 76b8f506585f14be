package game

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Result is a finished session, as persisted for the leaderboard.
type Result struct {
	ID          int64     `json:"id"`
	Score       int       `json:"score"`
	SnakeLength int       `json:"snakeLength"`
	Difficulty  string    `json:"difficulty"`
	AIEnabled   bool      `json:"aiEnabled"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Store persists session results in a SQLite database.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if needed) the results database at path.
func OpenStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create data directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	const schema = `CREATE TABLE IF NOT EXISTS results (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		score INTEGER NOT NULL,
		snake_length INTEGER NOT NULL,
		difficulty TEXT NOT NULL,
		ai_enabled INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create results table: %w", err)
	}

	return &Store{db: db}, nil
}

// SaveResult inserts a finished session.
func (s *Store) SaveResult(res Result) error {
	_, err := s.db.Exec(
		`INSERT INTO results (score, snake_length, difficulty, ai_enabled) VALUES (?, ?, ?, ?)`,
		res.Score, res.SnakeLength, res.Difficulty, res.AIEnabled,
	)
	if err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}
	return nil
}

// TopResults returns the best n results by score, newest first among
// ties.
func (s *Store) TopResults(n int) ([]Result, error) {
	rows, err := s.db.Query(
		`SELECT id, score, snake_length, difficulty, ai_enabled, created_at
		 FROM results ORDER BY score DESC, created_at DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.ID, &r.Score, &r.SnakeLength, &r.Difficulty, &r.AIEnabled, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

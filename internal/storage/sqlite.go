// Package storage keeps the rally log of a play session in an in-memory
// SQLite database. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies. Nothing is written to disk; the log ends with the session.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Scorer values stored in the log.
const (
	ScorerPlayer = "player"
	ScorerCPU    = "cpu"
)

// Store manages the in-memory SQLite connection for the rally log.
type Store struct {
	db *sql.DB
}

// Point is one finished point.
type Point struct {
	ID          int64
	Scorer      string
	Hits        int
	TopSpeed    float64
	Duration    float64 // seconds of ball movement
	PlayerScore int     // tally after the point
	CPUScore    int
	Difficulty  string
	CreatedAt   time.Time
}

// Summary aggregates the points logged so far.
type Summary struct {
	Points       int
	PlayerPoints int
	CPUPoints    int
	LongestRally int
	TopSpeed     float64
	AvgHits      float64
}

// Open creates an empty in-memory log.
func Open() (*Store, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	// Test connection
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
		CREATE TABLE IF NOT EXISTS points (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			scorer TEXT NOT NULL CHECK (scorer IN ('player', 'cpu')),
			hits INTEGER NOT NULL DEFAULT 0,
			top_speed REAL NOT NULL DEFAULT 0,
			duration_secs REAL NOT NULL DEFAULT 0,
			player_score INTEGER NOT NULL,
			cpu_score INTEGER NOT NULL,
			difficulty TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_points_scorer ON points(scorer);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection and drops the log.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// RecordPoint appends a finished point and returns its ID.
func (s *Store) RecordPoint(p Point) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO points
		 (scorer, hits, top_speed, duration_secs, player_score, cpu_score, difficulty)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.Scorer, p.Hits, p.TopSpeed, p.Duration, p.PlayerScore, p.CPUScore, p.Difficulty,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record point: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentPoints returns up to limit points, newest first.
func (s *Store) RecentPoints(limit int) ([]Point, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, scorer, hits, top_speed, duration_secs, player_score, cpu_score, difficulty, created_at
		 FROM points
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query points: %w", err)
	}
	defer rows.Close()

	var points []Point
	for rows.Next() {
		var p Point
		var createdAt any
		if err := rows.Scan(
			&p.ID,
			&p.Scorer,
			&p.Hits,
			&p.TopSpeed,
			&p.Duration,
			&p.PlayerScore,
			&p.CPUScore,
			&p.Difficulty,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		p.CreatedAt = parseTime(createdAt)
		points = append(points, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return points, nil
}

// Summary aggregates every logged point.
func (s *Store) Summary() (Summary, error) {
	var sum Summary
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(scorer = 'player'), 0),
		        COALESCE(SUM(scorer = 'cpu'), 0),
		        COALESCE(MAX(hits), 0),
		        COALESCE(MAX(top_speed), 0),
		        COALESCE(AVG(hits), 0)
		 FROM points`,
	).Scan(&sum.Points, &sum.PlayerPoints, &sum.CPUPoints, &sum.LongestRally, &sum.TopSpeed, &sum.AvgHits)
	if err != nil {
		return Summary{}, fmt.Errorf("storage: cannot summarize points: %w", err)
	}
	return sum, nil
}

// Clear drops every logged point.
func (s *Store) Clear() error {
	_, err := s.db.Exec("DELETE FROM points")
	if err != nil {
		return fmt.Errorf("storage: cannot clear points: %w", err)
	}
	return nil
}

// parseTime handles both time.Time and string datetimes from the driver.
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

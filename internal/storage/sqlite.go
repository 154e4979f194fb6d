// Package storage persists high scores and the per-board run log in
// SQLite, through the pure-Go modernc.org/sqlite driver so builds stay
// CGO-free.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store wraps the database handle.
type Store struct {
	db *sql.DB
}

// ScoreEntry is one saved high score.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// RunEntry is one finished attempt at a board.
type RunEntry struct {
	ID            int64
	GameID        string
	LevelName     string
	Outcome       string // "escaped", "caught", "fell"
	DurationTicks int
	CreatedAt     time.Time
}

// expandHome resolves a leading ~ against the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}

// sqliteTime converts a scanned created_at column. Depending on how a row
// was written the driver hands back either a time.Time or the raw TEXT
// form.
func sqliteTime(v any) time.Time {
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

// Open opens (or creates) the database at path, making parent directories
// as needed, and brings the schema up to date.
func Open(path string) (*Store, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", filepath.Dir(path), err)
	}

	db, err := sql.Open("sqlite", path)
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

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_scores_game_id ON scores(game_id);
		CREATE INDEX IF NOT EXISTS idx_scores_top ON scores(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			level_name TEXT NOT NULL,
			outcome TEXT NOT NULL,
			duration_ticks INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_game_id ON runs(game_id);
		CREATE INDEX IF NOT EXISTS idx_runs_level ON runs(game_id, level_name);
	`)
	return err
}

// Close releases the database handle.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func (s *Store) insert(query string, args ...any) (int64, error) {
	res, err := s.db.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// SaveScore records a score for a game and returns the new row id.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	id, err := s.insert("INSERT INTO scores (game_id, score) VALUES (?, ?)", gameID, score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}
	return id, nil
}

// TopScores returns the best scores for a game, highest first. A zero or
// negative limit falls back to ten rows.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, created_at
		 FROM scores
		 WHERE game_id = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var out []ScoreEntry
	for rows.Next() {
		var (
			e  ScoreEntry
			at any
		)
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &at); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = sqliteTime(at)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// HighScore returns the best score for a game, 0 when none is recorded.
func (s *Store) HighScore(gameID string) (int, error) {
	var best sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM scores WHERE game_id = ?", gameID).Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	if !best.Valid {
		return 0, nil
	}
	return int(best.Int64), nil
}

// ClearScores deletes every score for a game.
func (s *Store) ClearScores(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM scores WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// RecordRun logs one finished board attempt and returns the new row id.
func (s *Store) RecordRun(gameID, levelName, outcome string, durationTicks int) (int64, error) {
	id, err := s.insert(
		"INSERT INTO runs (game_id, level_name, outcome, duration_ticks) VALUES (?, ?, ?, ?)",
		gameID, levelName, outcome, durationTicks,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record run: %w", err)
	}
	return id, nil
}

// RecentRuns returns the latest attempts for a game, newest first. Rows
// written within the same second keep insert order via the id tiebreak.
func (s *Store) RecentRuns(gameID string, limit int) ([]RunEntry, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, level_name, outcome, duration_ticks, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var out []RunEntry
	for rows.Next() {
		var (
			e  RunEntry
			at any
		)
		if err := rows.Scan(&e.ID, &e.GameID, &e.LevelName, &e.Outcome, &e.DurationTicks, &at); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = sqliteTime(at)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return out, nil
}

// LevelStats aggregates the run log for one board.
type LevelStats struct {
	LevelName string
	Attempts  int
	Escapes   int
	Catches   int
	Falls     int
	BestTicks int // Fastest escape; 0 if the board was never cleared
}

// GetLevelStats returns per-board run statistics for a game, ordered by
// board name.
func (s *Store) GetLevelStats(gameID string) ([]LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level_name,
		        COUNT(*),
		        SUM(CASE WHEN outcome = 'escaped' THEN 1 ELSE 0 END),
		        SUM(CASE WHEN outcome = 'caught' THEN 1 ELSE 0 END),
		        SUM(CASE WHEN outcome = 'fell' THEN 1 ELSE 0 END),
		        COALESCE(MIN(CASE WHEN outcome = 'escaped' THEN duration_ticks END), 0)
		 FROM runs
		 WHERE game_id = ?
		 GROUP BY level_name
		 ORDER BY level_name`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query level stats: %w", err)
	}
	defer rows.Close()

	var stats []LevelStats
	for rows.Next() {
		var ls LevelStats
		if err := rows.Scan(&ls.LevelName, &ls.Attempts, &ls.Escapes, &ls.Catches, &ls.Falls, &ls.BestTicks); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		stats = append(stats, ls)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// ClearRuns deletes every logged run for a game.
func (s *Store) ClearRuns(gameID string) error {
	if _, err := s.db.Exec("DELETE FROM runs WHERE game_id = ?", gameID); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// GameStats aggregates the score table for one game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// GetGameStats returns aggregate score statistics for one game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0)
		 FROM scores WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	var at any
	err = s.db.QueryRow(
		"SELECT created_at FROM scores WHERE game_id = ? ORDER BY created_at DESC LIMIT 1",
		gameID,
	).Scan(&at)
	switch {
	case err == sql.ErrNoRows:
		// Never played; LastPlayed stays zero
	case err != nil:
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	default:
		stats.LastPlayed = sqliteTime(at)
	}

	return stats, nil
}

// GetAllGamesStats returns aggregate statistics for every game with at
// least one recorded score, keyed by game id.
func (s *Store) GetAllGamesStats() (map[string]*GameStats, error) {
	rows, err := s.db.Query(
		`SELECT game_id, COUNT(*), MAX(score), AVG(score), SUM(score), MAX(created_at)
		 FROM scores
		 GROUP BY game_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get all games stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var (
			g  GameStats
			at any
		)
		if err := rows.Scan(&g.GameID, &g.GamesCount, &g.HighScore, &g.AvgScore, &g.TotalScore, &at); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		g.LastPlayed = sqliteTime(at)
		stats[g.GameID] = &g
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}

// Package storage provides SQLite-based persistence for the leaderboard and
// finished-game history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/connect4/internal/games/connect4"
	"github.com/vovakirdan/connect4/internal/players"
)

// ErrEmptyName is returned when a leaderboard call names no player.
var ErrEmptyName = errors.New("storage: empty player name")

// ComputerName is stored as the winner when the computer wins.
const ComputerName = players.ComputerName

// Store manages the SQLite database connection for the leaderboard.
type Store struct {
	db *sql.DB
}

var _ connect4.Recorder = (*Store)(nil)

// GameRecord is one row of the finished-game history.
type GameRecord struct {
	ID        int64     `json:"-"`
	GameID    string    `json:"game_id"`
	Mode      string    `json:"mode"`
	Player1   string    `json:"player1"`
	Player2   string    `json:"player2"`
	Outcome   string    `json:"outcome"`          // "win" or "tie"
	Winner    string    `json:"winner,omitempty"` // player name, ComputerName, or empty on a tie
	Moves     int       `json:"moves"`
	Duration  int       `json:"duration_secs"`
	CreatedAt time.Time `json:"created_at"`
}

// PlayerStats is a player's record plus what the history table knows.
type PlayerStats struct {
	Player     *players.Player
	Ties       int
	LastPlayed time.Time
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

	// One writer at a time; SSH sessions share the store.
	db.SetMaxOpenConns(1)

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
		CREATE TABLE IF NOT EXISTS players (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE COLLATE NOCASE,
			games_won INTEGER NOT NULL DEFAULT 0,
			games_lost INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_players_rank ON players(games_won DESC, games_lost ASC);

		CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL UNIQUE,
			mode TEXT NOT NULL,
			player1 TEXT NOT NULL,
			player2 TEXT NOT NULL,
			outcome TEXT NOT NULL,
			winner TEXT NOT NULL DEFAULT '',
			moves INTEGER NOT NULL DEFAULT 0,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_games_player1 ON games(player1 COLLATE NOCASE);
		CREATE INDEX IF NOT EXISTS idx_games_player2 ON games(player2 COLLATE NOCASE);
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

// FindPlayer looks a player up by name, ignoring case.
// Returns nil and no error when the player does not exist.
func (s *Store) FindPlayer(name string) (*players.Player, error) {
	var p players.Player
	var createdAt, updatedAt any
	err := s.db.QueryRow(
		`SELECT id, name, games_won, games_lost, created_at, updated_at
		 FROM players WHERE name = ?`,
		name,
	).Scan(&p.ID, &p.Name, &p.GamesWon, &p.GamesLost, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot find player %q: %w", name, err)
	}
	p.CreatedAt = parseTime(createdAt)
	p.UpdatedAt = parseTime(updatedAt)
	return &p, nil
}

// FindOrCreatePlayer returns the player's record, adding an empty one first
// if the name is new.
func (s *Store) FindOrCreatePlayer(name string) (*players.Player, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrEmptyName
	}
	if _, err := s.db.Exec(`INSERT OR IGNORE INTO players (name) VALUES (?)`, name); err != nil {
		return nil, fmt.Errorf("storage: cannot add player %q: %w", name, err)
	}
	p, err := s.FindPlayer(name)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, fmt.Errorf("storage: player %q missing after insert", name)
	}
	return p, nil
}

// RecordOutcome adds one win or one loss to the player's tally, creating
// the player if needed. It implements connect4.Recorder.
func (s *Store) RecordOutcome(name string, won bool) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}

	wins, losses := 0, 1
	if won {
		wins, losses = 1, 0
	}

	_, err := s.db.Exec(
		`INSERT INTO players (name, games_won, games_lost) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
			games_won = games_won + excluded.games_won,
			games_lost = games_lost + excluded.games_lost,
			updated_at = CURRENT_TIMESTAMP`,
		name, wins, losses,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record outcome for %q: %w", name, err)
	}
	return nil
}

// HallOfFame returns the best players: most wins first, then fewest losses,
// then by name. Players without a decided game are left out.
func (s *Store) HallOfFame(limit int) ([]players.Player, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, name, games_won, games_lost, created_at, updated_at
		 FROM players
		 WHERE games_won + games_lost > 0
		 ORDER BY games_won DESC, games_lost ASC, name COLLATE NOCASE ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query hall of fame: %w", err)
	}
	defer rows.Close()

	var list []players.Player
	for rows.Next() {
		var p players.Player
		var createdAt, updatedAt any
		if err := rows.Scan(&p.ID, &p.Name, &p.GamesWon, &p.GamesLost, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		p.CreatedAt = parseTime(createdAt)
		p.UpdatedAt = parseTime(updatedAt)
		list = append(list, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return list, nil
}

// SaveGame appends a finished game to the history.
// A missing GameID is filled with a fresh UUID; a malformed one is rejected.
// Returns the ID of the inserted record.
func (s *Store) SaveGame(rec GameRecord) (int64, error) {
	if rec.GameID == "" {
		rec.GameID = uuid.NewString()
	} else if _, err := uuid.Parse(rec.GameID); err != nil {
		return 0, fmt.Errorf("storage: invalid game id %q: %w", rec.GameID, err)
	}

	result, err := s.db.Exec(
		`INSERT INTO games (game_id, mode, player1, player2, outcome, winner, moves, duration_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.GameID, rec.Mode, rec.Player1, rec.Player2, rec.Outcome, rec.Winner, rec.Moves, rec.Duration,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save game: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentGames returns the latest finished games, newest first.
func (s *Store) RecentGames(limit int) ([]GameRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, mode, player1, player2, outcome, winner, moves, duration_secs, created_at
		 FROM games
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query games: %w", err)
	}
	defer rows.Close()

	var games []GameRecord
	for rows.Next() {
		var g GameRecord
		var createdAt any
		if err := rows.Scan(&g.ID, &g.GameID, &g.Mode, &g.Player1, &g.Player2,
			&g.Outcome, &g.Winner, &g.Moves, &g.Duration, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		g.CreatedAt = parseTime(createdAt)
		games = append(games, g)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return games, nil
}

// PlayerStats returns a player's record with tie count and last game time.
// Returns nil and no error for an unknown player.
func (s *Store) PlayerStats(name string) (*PlayerStats, error) {
	p, err := s.FindPlayer(name)
	if err != nil || p == nil {
		return nil, err
	}

	stats := &PlayerStats{Player: p}
	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT COALESCE(SUM(CASE WHEN outcome = 'tie' THEN 1 ELSE 0 END), 0), MAX(created_at)
		 FROM games
		 WHERE player1 = ? COLLATE NOCASE OR player2 = ? COLLATE NOCASE`,
		name, name,
	).Scan(&stats.Ties, &lastPlayed)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get player stats: %w", err)
	}
	stats.LastPlayed = parseTime(lastPlayed)

	return stats, nil
}

// parseTime handles both time.Time and the string forms SQLite hands back.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		for _, layout := range []string{"2006-01-02 15:04:05", time.RFC3339Nano} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed
			}
		}
	}
	return time.Time{}
}

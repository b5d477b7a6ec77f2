// Package config provides YAML-based configuration loading for the
// Connect Four terminal game.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/connect4/internal/core"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Connect4Config contains all configuration for the game.
type Connect4Config struct {
	Computer   ComputerConfig   `yaml:"computer"`
	Players    PlayersConfig    `yaml:"players"`
	Pieces     PiecesConfig     `yaml:"pieces"`
	HallOfFame HallOfFameConfig `yaml:"hall_of_fame"`
	Storage    StorageConfig    `yaml:"storage"`
}

// ComputerConfig tunes the computer opponent's presentation.
type ComputerConfig struct {
	ThinkDelayMS int    `yaml:"think_delay_ms"`
	Pace         string `yaml:"pace"` // "instant", "normal", "slow" or empty to use think_delay_ms
}

// PlayersConfig holds names offered in the name prompt.
type PlayersConfig struct {
	DefaultP1 string `yaml:"default_p1"`
	DefaultP2 string `yaml:"default_p2"`
}

// PiecesConfig defines how each piece is drawn.
type PiecesConfig struct {
	Player   PieceStyle `yaml:"player"`
	Opponent PieceStyle `yaml:"opponent"`
	Computer PieceStyle `yaml:"computer"`
}

// PieceStyle is a glyph and a color name (see core.ParseColor).
type PieceStyle struct {
	Glyph string `yaml:"glyph"`
	Color string `yaml:"color"`
}

// HallOfFameConfig controls the leaderboard listing.
type HallOfFameConfig struct {
	Limit int `yaml:"limit"`
}

// StorageConfig locates the leaderboard database.
type StorageConfig struct {
	DBPath string `yaml:"db_path"`
}

// ThinkDelay returns the computer's pause before moving.
func (c Connect4Config) ThinkDelay() time.Duration {
	return time.Duration(c.Computer.ThinkDelayMS) * time.Millisecond
}

// Validate reports the first problem found in the configuration.
func (c Connect4Config) Validate() error {
	if c.Computer.ThinkDelayMS < 0 {
		return fmt.Errorf("%w: computer.think_delay_ms must not be negative, got %d", ErrInvalidConfig, c.Computer.ThinkDelayMS)
	}
	if c.Computer.Pace != "" {
		if _, err := ParsePace(c.Computer.Pace); err != nil {
			return fmt.Errorf("%w: computer.pace: %w", ErrInvalidConfig, err)
		}
	}
	if c.HallOfFame.Limit <= 0 {
		return fmt.Errorf("%w: hall_of_fame.limit must be positive, got %d", ErrInvalidConfig, c.HallOfFame.Limit)
	}

	styles := []struct {
		key   string
		style PieceStyle
	}{
		{"pieces.player", c.Pieces.Player},
		{"pieces.opponent", c.Pieces.Opponent},
		{"pieces.computer", c.Pieces.Computer},
	}
	glyphs := make(map[string]string, len(styles))
	for _, s := range styles {
		if utf8.RuneCountInString(s.style.Glyph) != 1 {
			return fmt.Errorf("%w: %s.glyph must be a single character, got %q", ErrInvalidConfig, s.key, s.style.Glyph)
		}
		if _, err := core.ParseColor(s.style.Color); err != nil {
			return fmt.Errorf("%w: %s.color: %w", ErrInvalidConfig, s.key, err)
		}
		if other, dup := glyphs[s.style.Glyph]; dup {
			return fmt.Errorf("%w: %s.glyph %q is already used by %s", ErrInvalidConfig, s.key, s.style.Glyph, other)
		}
		glyphs[s.style.Glyph] = s.key
	}
	return nil
}

package config

import (
	_ "embed"
)

//go:embed defaults/connect4.yaml
var defaultConnect4YAML []byte

// DefaultConnect4Config returns the built-in configuration.
func DefaultConnect4Config() Connect4Config {
	return Connect4Config{
		Computer: ComputerConfig{
			ThinkDelayMS: 600,
		},
		Players: PlayersConfig{
			DefaultP1: "",
			DefaultP2: "",
		},
		Pieces: PiecesConfig{
			Player:   PieceStyle{Glyph: "●", Color: "bright-red"},
			Opponent: PieceStyle{Glyph: "◆", Color: "bright-blue"},
			Computer: PieceStyle{Glyph: "○", Color: "bright-yellow"},
		},
		HallOfFame: HallOfFameConfig{
			Limit: 10,
		},
		Storage: StorageConfig{
			DBPath: "~/.connect4/connect4.db",
		},
	}
}

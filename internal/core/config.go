package core

import "time"

// RuntimeConfig contains configuration passed to a game at start.
// The platform uses it to size the screen and to make games reproducible.
type RuntimeConfig struct {
	ScreenW    int           // Screen width in characters
	ScreenH    int           // Screen height in characters
	Seed       int64         // RNG seed for the computer player, 0 for time-based
	ThinkDelay time.Duration // Pause before the computer drops its piece
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		Seed:       0,
		ThinkDelay: 600 * time.Millisecond,
	}
}

package tui

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/connect4/internal/config"
	"github.com/vovakirdan/connect4/internal/core"
	"github.com/vovakirdan/connect4/internal/games/connect4"
	"github.com/vovakirdan/connect4/internal/players"
	"github.com/vovakirdan/connect4/internal/storage"
)

// Leaderboard is what the screens need from the score store.
// *storage.Store implements it.
type Leaderboard interface {
	connect4.Recorder
	FindOrCreatePlayer(name string) (*players.Player, error)
	HallOfFame(limit int) ([]players.Player, error)
	SaveGame(rec storage.GameRecord) (int64, error)
}

var _ Leaderboard = (*storage.Store)(nil)

// Options carries everything the screens share.
type Options struct {
	Board   Leaderboard // nil plays without a leaderboard
	Logger  *log.Logger
	Config  config.Connect4Config
	Runtime core.RuntimeConfig
	Theme   Theme
}

// NewOptions builds screen options. A nil store is kept as a nil
// Leaderboard so the screens can tell it apart from a working one.
func NewOptions(store *storage.Store, logger *log.Logger, cfg config.Connect4Config, rt core.RuntimeConfig) Options {
	opts := Options{
		Logger:  logger,
		Config:  cfg,
		Runtime: rt,
		Theme:   NewTheme(cfg.Pieces),
	}
	if store != nil {
		opts.Board = store
	}
	return opts.withDefaults()
}

func (o Options) withDefaults() Options {
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Theme.Pieces == nil {
		o.Theme = NewTheme(o.Config.Pieces)
	}
	if o.Config.HallOfFame.Limit <= 0 {
		o.Config.HallOfFame.Limit = config.DefaultConnect4Config().HallOfFame.Limit
	}
	return o
}

// newSelector returns the computer player for a game. A fixed seed gives
// every game of a run its own reproducible sequence.
func (o Options) newSelector(mode connect4.Mode, game int) *connect4.MoveSelector {
	if o.Runtime.Seed == 0 {
		return connect4.NewMoveSelector(mode, nil)
	}
	return connect4.NewMoveSelector(mode, rand.New(rand.NewSource(o.Runtime.Seed+int64(game))))
}

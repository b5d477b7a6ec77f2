package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/connect4/internal/config"
	"github.com/vovakirdan/connect4/internal/core"
	"github.com/vovakirdan/connect4/internal/platform/tui"
	"github.com/vovakirdan/connect4/internal/storage"
)

// env is what every command sets up before it runs.
type env struct {
	cfg      config.Connect4Config
	runtime  core.RuntimeConfig
	store    *storage.Store
	logger   *log.Logger
	closeLog func()
}

// loadConfig reads the config file and applies the global flag overrides.
func loadConfig() (config.Connect4Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagPace != "" {
		if err := config.ApplyPace(&cfg, flagPace); err != nil {
			return cfg, err
		}
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	return cfg, nil
}

// setup loads config, opens logging and, when requireStore is false,
// tolerates a leaderboard that cannot be opened.
func setup(requireStore, logToStderr bool) (*env, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger, closeLog, err := newLogger(logToStderr)
	if err != nil {
		return nil, err
	}

	rt := core.DefaultConfig()
	rt.Seed = flagSeed
	rt.ThinkDelay = cfg.ThinkDelay()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	store, err := storage.Open(cfg.Storage.DBPath)
	if err != nil {
		if requireStore {
			closeLog()
			return nil, fmt.Errorf("cannot open leaderboard: %w", err)
		}
		// Continue without storage - the game still works
		logger.Warn("could not open leaderboard", "path", cfg.Storage.DBPath, "error", err)
		fmt.Fprintf(os.Stderr, "Warning: could not open leaderboard database: %v\n", err)
		store = nil
	}

	logger.Debug("environment ready",
		"db", cfg.Storage.DBPath,
		"think_delay", rt.ThinkDelay,
		"seed", rt.Seed,
	)

	return &env{
		cfg:      cfg,
		runtime:  rt,
		store:    store,
		logger:   logger,
		closeLog: closeLog,
	}, nil
}

// options returns the screen options for this environment.
func (e *env) options() tui.Options {
	return tui.NewOptions(e.store, e.logger, e.cfg, e.runtime)
}

// Close releases the store and the log file.
func (e *env) Close() {
	if e.store != nil {
		if err := e.store.Close(); err != nil {
			e.logger.Warn("could not close leaderboard", "error", err)
		}
	}
	e.closeLog()
}

// mustSetup is setup for commands that exit on failure.
func mustSetup(requireStore, logToStderr bool) *env {
	e, err := setup(requireStore, logToStderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return e
}

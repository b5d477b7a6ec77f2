package main

import (
	"errors"
	"testing"

	"github.com/vovakirdan/connect4/internal/config"
	"github.com/vovakirdan/connect4/internal/games/connect4"
	"github.com/vovakirdan/connect4/internal/players"
)

func TestPlaySetup(t *testing.T) {
	cfg := config.DefaultConnect4Config()
	cfg.Players.DefaultP1 = "Alice"
	cfg.Players.DefaultP2 = "Bob"
	e := &env{cfg: cfg}

	tests := []struct {
		name    string
		mode    connect4.Mode
		p1, p2  string
		wantP1  string
		wantP2  string
		wantErr error
	}{
		{name: "config defaults vs computer", mode: connect4.ModeVsComputer, wantP1: "Alice"},
		{name: "flag overrides default", mode: connect4.ModeVsComputer, p1: "  Ann   Lee ", wantP1: "Ann Lee"},
		{name: "two players", mode: connect4.ModeVsHuman, p2: "Cara", wantP1: "Alice", wantP2: "Cara"},
		{name: "same names", mode: connect4.ModeVsHuman, p1: "bob", wantErr: players.ErrSameName},
		{name: "short name", mode: connect4.ModeVsComputer, p1: "Al", wantErr: players.ErrNameLength},
		{name: "computer name", mode: connect4.ModeVsComputer, p1: "computer", wantErr: players.ErrReservedName},
		{name: "computer name as player 2", mode: connect4.ModeVsHuman, p2: "Computer", wantErr: players.ErrReservedName},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			flagP1, flagP2 = tc.p1, tc.p2
			t.Cleanup(func() { flagP1, flagP2 = "", "" })

			got, err := playSetup(tc.mode, e)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Errorf("playSetup() error = %v, expected %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("playSetup() failed: %v", err)
			}
			if got.P1 != tc.wantP1 || got.P2 != tc.wantP2 || got.Mode != tc.mode {
				t.Errorf("playSetup() = %+v, expected %s/%s", got, tc.wantP1, tc.wantP2)
			}
		})
	}
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	flagPace, flagDBPath = "slow", "/tmp/other.db"
	t.Cleanup(func() { flagPace, flagDBPath = "", "" })

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}
	if cfg.Computer.ThinkDelayMS != 1500 {
		t.Errorf("ThinkDelayMS = %d, expected 1500", cfg.Computer.ThinkDelayMS)
	}
	if cfg.Storage.DBPath != "/tmp/other.db" {
		t.Errorf("DBPath = %q, expected the flag value", cfg.Storage.DBPath)
	}

	flagPace = "warp"
	if _, err := loadConfig(); err == nil {
		t.Error("loadConfig() should reject an unknown pace")
	}
}

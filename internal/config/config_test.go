package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "connect4.yaml")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefaultsAreValid(t *testing.T) {
	if err := DefaultConnect4Config().Validate(); err != nil {
		t.Errorf("DefaultConnect4Config().Validate() = %v", err)
	}
}

func TestLoadEmbeddedDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != DefaultConnect4Config() {
		t.Errorf("embedded defaults differ from DefaultConnect4Config():\n%+v\n%+v", cfg, DefaultConnect4Config())
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
computer:
  think_delay_ms: 50
pieces:
  player:
    glyph: "X"
    color: green
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Computer.ThinkDelayMS != 50 {
		t.Errorf("ThinkDelayMS = %d, expected 50", cfg.Computer.ThinkDelayMS)
	}
	if cfg.Pieces.Player != (PieceStyle{Glyph: "X", Color: "green"}) {
		t.Errorf("Pieces.Player = %+v", cfg.Pieces.Player)
	}
	if cfg.Pieces.Computer != DefaultConnect4Config().Pieces.Computer {
		t.Errorf("unset keys should keep defaults, got %+v", cfg.Pieces.Computer)
	}
	if cfg.HallOfFame.Limit != 10 {
		t.Errorf("HallOfFame.Limit = %d, expected 10", cfg.HallOfFame.Limit)
	}
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	if err := os.MkdirAll(filepath.Join(work, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	writeConfig(t, filepath.Join(work, "configs"), "hall_of_fame:\n  limit: 3\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.HallOfFame.Limit != 3 {
		t.Errorf("local config not used, limit = %d", cfg.HallOfFame.Limit)
	}

	userDir := filepath.Join(home, ".connect4", "configs")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	writeConfig(t, userDir, "hall_of_fame:\n  limit: 7\n")

	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.HallOfFame.Limit != 7 {
		t.Errorf("user config should win over local, limit = %d", cfg.HallOfFame.Limit)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load() of a missing custom path should fail")
	}

	bad := writeConfig(t, dir, "computer: [not, a, map]\n")
	if _, err := Load(bad); err == nil {
		t.Error("Load() of malformed YAML should fail")
	}

	invalid := writeConfig(t, dir, "hall_of_fame:\n  limit: 0\n")
	if _, err := Load(invalid); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load() error = %v, expected ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Connect4Config)
	}{
		{"negative delay", func(c *Connect4Config) { c.Computer.ThinkDelayMS = -1 }},
		{"zero limit", func(c *Connect4Config) { c.HallOfFame.Limit = 0 }},
		{"empty glyph", func(c *Connect4Config) { c.Pieces.Player.Glyph = "" }},
		{"long glyph", func(c *Connect4Config) { c.Pieces.Computer.Glyph = "CPU" }},
		{"unknown color", func(c *Connect4Config) { c.Pieces.Opponent.Color = "plaid" }},
		{"duplicate glyph", func(c *Connect4Config) { c.Pieces.Computer.Glyph = c.Pieces.Player.Glyph }},
		{"unknown pace", func(c *Connect4Config) { c.Computer.Pace = "glacial" }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConnect4Config()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestPace(t *testing.T) {
	cfg := DefaultConnect4Config()

	if err := ApplyPace(&cfg, "Slow"); err != nil {
		t.Fatalf("ApplyPace() failed: %v", err)
	}
	if cfg.Computer.ThinkDelayMS != 1500 || cfg.Computer.Pace != "slow" {
		t.Errorf("after ApplyPace(slow), computer = %+v", cfg.Computer)
	}
	if cfg.ThinkDelay().Milliseconds() != 1500 {
		t.Errorf("ThinkDelay() = %v, expected 1.5s", cfg.ThinkDelay())
	}

	if err := ApplyPace(&cfg, "warp"); err == nil {
		t.Error("ApplyPace(warp) should fail")
	}
	if cfg.Computer.ThinkDelayMS != 1500 {
		t.Error("a rejected pace should leave the config unchanged")
	}

	path := writeConfig(t, t.TempDir(), "computer:\n  think_delay_ms: 900\n  pace: instant\n")
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded.Computer.ThinkDelayMS != 0 {
		t.Errorf("pace in the file should override think_delay_ms, got %d", loaded.Computer.ThinkDelayMS)
	}
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFile = "connect4.yaml"

// Load loads the game configuration.
// Search order: customPath -> ~/.connect4/configs/connect4.yaml -> ./configs/connect4.yaml -> embedded default
//
// Files only need to set the keys they change; the rest keep their defaults.
// A custom path that cannot be read or parsed is an error, while broken files
// in the other locations are skipped.
func Load(customPath string) (Connect4Config, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return cfg, err
		}
		return finish(cfg, customPath)
	}

	candidates := []string{userConfigPath(configFile), filepath.Join("configs", configFile)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, err := loadFile(path); err == nil {
			return finish(cfg, path)
		}
	}

	// Use embedded default YAML
	cfg := DefaultConnect4Config()
	if err := yaml.Unmarshal(defaultConnect4YAML, &cfg); err != nil {
		return DefaultConnect4Config(), nil // Fallback to hardcoded if embed fails
	}
	return finish(cfg, "embedded defaults")
}

func loadFile(path string) (Connect4Config, error) {
	cfg := DefaultConnect4Config()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// finish applies the pace preset and validates the result.
func finish(cfg Connect4Config, source string) (Connect4Config, error) {
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("%s: %w", source, err)
	}
	if cfg.Computer.Pace != "" {
		//nolint:errcheck // pace was checked by Validate
		ApplyPace(&cfg, cfg.Computer.Pace)
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".connect4", "configs", filename)
}

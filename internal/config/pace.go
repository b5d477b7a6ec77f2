package config

import (
	"fmt"
	"strings"
)

// Pace is a named computer think-delay preset.
type Pace string

const (
	PaceInstant Pace = "instant"
	PaceNormal  Pace = "normal"
	PaceSlow    Pace = "slow"
)

// ParsePace validates a preset name.
func ParsePace(s string) (Pace, error) {
	switch p := Pace(strings.ToLower(strings.TrimSpace(s))); p {
	case PaceInstant, PaceNormal, PaceSlow:
		return p, nil
	default:
		return "", fmt.Errorf("unknown pace %q (want instant, normal or slow)", s)
	}
}

// DelayMSForPace returns the think delay for a preset.
func DelayMSForPace(p Pace) int {
	switch p {
	case PaceInstant:
		return 0
	case PaceSlow:
		return 1500
	default:
		return 600
	}
}

// ApplyPace overrides the think delay with a preset. Unknown names are
// rejected and leave cfg unchanged.
func ApplyPace(cfg *Connect4Config, name string) error {
	p, err := ParsePace(name)
	if err != nil {
		return err
	}
	cfg.Computer.Pace = string(p)
	cfg.Computer.ThinkDelayMS = DelayMSForPace(p)
	return nil
}

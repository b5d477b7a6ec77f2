package players

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	MinNameLen = 3
	MaxNameLen = 20
)

// ComputerName is the name the computer opponent plays under. Humans
// cannot take it.
const ComputerName = "Computer"

// Name validation errors.
var (
	ErrInvalidName  = errors.New("invalid name")
	ErrNameLength   = fmt.Errorf("%w: must be %d-%d characters", ErrInvalidName, MinNameLen, MaxNameLen)
	ErrNameChars    = fmt.Errorf("%w: letters, numbers, and spaces only", ErrInvalidName)
	ErrNameNoAlpha  = fmt.Errorf("%w: at least one letter required", ErrInvalidName)
	ErrSameName     = fmt.Errorf("%w: both players have the same name", ErrInvalidName)
	ErrReservedName = fmt.Errorf("%w: %q is reserved for the computer", ErrInvalidName, ComputerName)
)

// NameRules is the hint shown next to the name prompt.
const NameRules = "3-20 characters, letters, numbers, and spaces only; at least one letter required"

// NormalizeName trims surrounding whitespace and collapses inner runs of
// spaces so "Ann  Lee" and "Ann Lee" are the same player.
func NormalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

// ValidateName checks a normalized name against the naming rules.
func ValidateName(name string) error {
	if n := utf8.RuneCountInString(name); n < MinNameLen || n > MaxNameLen {
		return ErrNameLength
	}

	hasLetter := false
	for _, r := range name {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r), r == ' ':
		default:
			return ErrNameChars
		}
	}
	if !hasLetter {
		return ErrNameNoAlpha
	}
	if strings.EqualFold(name, ComputerName) {
		return ErrReservedName
	}
	return nil
}

// ValidatePair validates both names of a two-player game. Names are compared
// without regard to case, matching how the leaderboard stores them.
func ValidatePair(p1, p2 string) error {
	if err := ValidateName(p1); err != nil {
		return fmt.Errorf("player 1: %w", err)
	}
	if err := ValidateName(p2); err != nil {
		return fmt.Errorf("player 2: %w", err)
	}
	if strings.EqualFold(p1, p2) {
		return ErrSameName
	}
	return nil
}

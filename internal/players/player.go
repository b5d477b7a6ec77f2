// Package players holds the leaderboard record for a named player.
package players

import (
	"fmt"
	"time"
)

// Player is a named human with a running win/loss tally.
type Player struct {
	ID        int64
	Name      string
	GamesWon  int
	GamesLost int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// New returns a player with no games recorded.
func New(name string) *Player {
	return &Player{Name: name}
}

// RecordWin increments the win count.
func (p *Player) RecordWin() {
	p.GamesWon++
}

// RecordLoss increments the loss count.
func (p *Player) RecordLoss() {
	p.GamesLost++
}

// Record applies a single finished game.
func (p *Player) Record(won bool) {
	if won {
		p.RecordWin()
	} else {
		p.RecordLoss()
	}
}

// GamesPlayed returns the number of decided games.
func (p *Player) GamesPlayed() int {
	return p.GamesWon + p.GamesLost
}

// WinRate returns the share of decided games won, 0 when none were played.
func (p *Player) WinRate() float64 {
	if p.GamesPlayed() == 0 {
		return 0
	}
	return float64(p.GamesWon) / float64(p.GamesPlayed())
}

// IsNew reports whether the player has no recorded games.
func (p *Player) IsNew() bool {
	return p.GamesPlayed() == 0
}

// Greeting is the welcome shown after the name prompt. A nil player is
// greeted as a newcomer.
func Greeting(name string, p *Player) []string {
	if p == nil || p.IsNew() {
		return []string{fmt.Sprintf("Welcome, %s! Good luck on your first game!", name)}
	}
	return []string{
		fmt.Sprintf("Welcome back, %s!", p.Name),
		fmt.Sprintf("Won Games: %d", p.GamesWon),
		fmt.Sprintf("Lost Games: %d", p.GamesLost),
	}
}

// Summary is the one-line record shown after an update.
func (p *Player) Summary() string {
	return fmt.Sprintf("Updated record for %s: Wins - %d, Losses - %d", p.Name, p.GamesWon, p.GamesLost)
}

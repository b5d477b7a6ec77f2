// Package tui provides the Bubble Tea screens for Connect Four.
// It handles the terminal UI loop, input mapping, and the menu/game flow,
// both for a local terminal and for SSH sessions.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// computerMoveMsg fires when the computer has finished "thinking".
// Game is the game number it was scheduled for, so a tick from a game
// that was abandoned or restarted is ignored.
type computerMoveMsg struct {
	Game int
}

// thinkCmd schedules the computer's move after the configured delay.
func thinkCmd(delay time.Duration, game int) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return computerMoveMsg{Game: game}
	})
}

package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/connect4/internal/games/connect4"
)

// InstructionsModel shows the rules until the player returns to the menu.
type InstructionsModel struct {
	theme     Theme
	width     int
	height    int
	goingBack bool
	quitting  bool
}

// NewInstructionsModel creates the rules screen.
func NewInstructionsModel(opts Options, width, height int) InstructionsModel {
	opts = opts.withDefaults()
	return InstructionsModel{
		theme:  opts.Theme,
		width:  width,
		height: height,
	}
}

// Init initializes the instructions model.
func (m InstructionsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the instructions screen.
func (m InstructionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "enter", "esc", "b", " ":
			m.goingBack = true
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// Rules returns the rules text with the configured piece glyphs.
func (m InstructionsModel) Rules() string {
	glyph := func(p connect4.Piece) string {
		look := m.theme.Look(p)
		return colorStyles[look.Color].Render(string(look.Glyph))
	}

	return fmt.Sprintf(`Connect Four is a two-player connection game where players
take turns dropping discs from the top into a seven-column,
six-row vertically suspended grid.

In the two-player mode, one player is represented by the
symbol %s and the other player by the symbol %s.

In the single-player mode, the player is displayed as %s on the
game board when they place a piece and the computer is
represented by a %s.

Each player alternates turns, dropping one of their discs
into the grid each turn.

The goal of the game is to connect four discs vertically,
horizontally, or diagonally before your opponent.`,
		glyph(connect4.PlayerPiece),
		glyph(connect4.OpponentPiece),
		glyph(connect4.PlayerPiece),
		glyph(connect4.ComputerPiece),
	)
}

// View renders the instructions screen.
func (m InstructionsModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	rule := mutedStyle.Render(strings.Repeat("-", 67))
	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Game Instructions"),
		rule,
		"",
		m.Rules(),
		"",
		rule,
		"",
		noticeStyle.Render("Press Enter to return to Main Menu!"),
	)

	if m.width <= 0 || m.height <= 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// IsGoingBack returns true if user wants to go back to menu.
func (m InstructionsModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m InstructionsModel) IsQuitting() bool {
	return m.quitting
}

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/connect4/internal/config"
	"github.com/vovakirdan/connect4/internal/core"
	"github.com/vovakirdan/connect4/internal/games/connect4"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// Shared text styles.
var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	greetStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
)

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// PieceLook is how one piece is drawn on the board.
type PieceLook struct {
	Glyph rune
	Color core.Color
}

// Theme holds the looks of every piece.
type Theme struct {
	Pieces map[connect4.Piece]PieceLook
	Frame  core.Color
	Label  core.Color
	Win    core.Color
}

// NewTheme builds a theme from configured piece styles.
// Values are expected to have passed config validation; anything
// unparseable falls back to the piece's default glyph.
func NewTheme(pieces config.PiecesConfig) Theme {
	look := func(p connect4.Piece, s config.PieceStyle) PieceLook {
		l := PieceLook{Glyph: p.Glyph(), Color: core.ColorDefault}
		if r := []rune(s.Glyph); len(r) == 1 {
			l.Glyph = r[0]
		}
		if c, err := core.ParseColor(s.Color); err == nil {
			l.Color = c
		}
		return l
	}

	return Theme{
		Pieces: map[connect4.Piece]PieceLook{
			connect4.Empty:         {Glyph: ' ', Color: core.ColorDefault},
			connect4.PlayerPiece:   look(connect4.PlayerPiece, pieces.Player),
			connect4.OpponentPiece: look(connect4.OpponentPiece, pieces.Opponent),
			connect4.ComputerPiece: look(connect4.ComputerPiece, pieces.Computer),
		},
		Frame: core.ColorBlue,
		Label: core.ColorGray,
		Win:   core.ColorBrightWhite,
	}
}

// DefaultTheme uses the built-in piece styles.
func DefaultTheme() Theme {
	return NewTheme(config.DefaultConnect4Config().Pieces)
}

// Look returns the look for a piece.
func (t Theme) Look(p connect4.Piece) PieceLook {
	if l, ok := t.Pieces[p]; ok {
		return l
	}
	return PieceLook{Glyph: p.Glyph(), Color: core.ColorDefault}
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

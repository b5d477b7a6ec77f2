package tui

import (
	"strconv"

	"github.com/vovakirdan/connect4/internal/core"
	"github.com/vovakirdan/connect4/internal/games/connect4"
)

// Board layout: every cell is cellW characters wide, with a marker row on
// top and the column numbers underneath.
const (
	cellW = 4
)

// boardSize returns the drawn size of a board.
func boardSize(b *connect4.Board) (w, h int) {
	return b.Cols()*cellW + 1, b.Rows() + 4
}

// boardView describes one frame of the board.
type boardView struct {
	Board  *connect4.Board
	Cursor int             // column under the drop marker, or core.NoColumn to hide it
	Marker connect4.Piece  // piece shown above the cursor
	Line   []connect4.Cell // winning run to highlight
	Last   *connect4.Cell  // most recent move
}

// DrawBoard renders the board into s with its top-left corner at (x, y).
func DrawBoard(s *core.Screen, x, y int, v boardView, theme Theme) {
	b := v.Board
	w, _ := boardSize(b)

	highlight := make(map[connect4.Cell]bool, len(v.Line))
	for _, c := range v.Line {
		highlight[c] = true
	}

	// Drop marker
	if v.Cursor >= 0 && v.Cursor < b.Cols() {
		look := theme.Look(v.Marker)
		s.SetCell(x+2+v.Cursor*cellW, y, '▼', look.Color)
	}

	// Frame
	top, bottom := y+1, y+b.Rows()+2
	s.DrawBox(core.NewRect(x, top, w, b.Rows()+2), theme.Frame)
	for c := 1; c < b.Cols(); c++ {
		s.SetCell(x+c*cellW, top, '┬', theme.Frame)
		s.SetCell(x+c*cellW, bottom, '┴', theme.Frame)
	}

	// Cells
	for r := 0; r < b.Rows(); r++ {
		row := top + 1 + r
		for c := 0; c <= b.Cols(); c++ {
			s.SetCell(x+c*cellW, row, '│', theme.Frame)
		}
		for c := 0; c < b.Cols(); c++ {
			look := theme.Look(b.At(r, c))
			cx := x + c*cellW + 2
			s.SetCell(cx, row, look.Glyph, look.Color)

			cell := connect4.Cell{Row: r, Col: c}
			switch {
			case highlight[cell]:
				s.SetCell(cx-1, row, '[', theme.Win)
				s.SetCell(cx+1, row, ']', theme.Win)
			case v.Last != nil && *v.Last == cell:
				s.SetCell(cx+1, row, '\'', theme.Label)
			}
		}
	}

	// Column numbers
	for c := 0; c < b.Cols(); c++ {
		s.DrawTextColored(x+c*cellW+2, bottom+1, strconv.Itoa(c+1), theme.Label)
	}
}

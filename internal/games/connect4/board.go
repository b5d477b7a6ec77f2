// Package connect4 implements the Connect Four engine: board state, move
// legality, win detection, the computer opponent and the turn state machine.
// It performs no I/O; the platform layer renders boards and collects input.
package connect4

import (
	"fmt"
	"strings"
)

// Standard board dimensions and run length.
const (
	Rows     = 6
	Cols     = 7
	ConnectN = 4
)

// NoRow is returned by NextOpenRow for a full or out-of-range column.
const NoRow = -1

// Cell is a board coordinate. Row 0 is the top row.
type Cell struct {
	Row int
	Col int
}

// Board is a gravity grid of pieces indexed [row][col].
// Occupied cells in each column are contiguous from the bottom row up.
type Board struct {
	rows int
	cols int
	grid [][]Piece
}

// NewBoard creates an empty board. Dimensions must be positive.
func NewBoard(rows, cols int) *Board {
	if rows <= 0 || cols <= 0 {
		violate("NewBoard", "non-positive dimensions %dx%d", rows, cols)
	}

	grid := make([][]Piece, rows)
	for r := range grid {
		grid[r] = make([]Piece, cols)
	}
	return &Board{rows: rows, cols: cols, grid: grid}
}

// NewStandardBoard creates an empty 6x7 board.
func NewStandardBoard() *Board {
	return NewBoard(Rows, Cols)
}

// Rows returns the number of rows.
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the number of columns.
func (b *Board) Cols() int {
	return b.cols
}

// InBounds reports whether (row, col) is on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.rows && col >= 0 && col < b.cols
}

// At returns the piece at (row, col), or Empty when out of bounds.
func (b *Board) At(row, col int) Piece {
	if !b.InBounds(row, col) {
		return Empty
	}
	return b.grid[row][col]
}

// IsValidColumn reports whether a piece can be dropped into col.
// A column is full exactly when its top cell is occupied.
func (b *Board) IsValidColumn(col int) bool {
	if col < 0 || col >= b.cols {
		return false
	}
	return b.grid[0][col] == Empty
}

// NextOpenRow returns the lowest empty row in col, or NoRow.
func (b *Board) NextOpenRow(col int) int {
	if col < 0 || col >= b.cols {
		return NoRow
	}
	for r := b.rows - 1; r >= 0; r-- {
		if b.grid[r][col] == Empty {
			return r
		}
	}
	return NoRow
}

// Place writes piece at (row, col) without any gravity checks.
// Callers obtain row from NextOpenRow after validating the column.
func (b *Board) Place(row, col int, piece Piece) error {
	if !b.InBounds(row, col) {
		return fmt.Errorf("place (%d,%d) on %dx%d board: %w", row, col, b.rows, b.cols, ErrOutOfBounds)
	}
	b.grid[row][col] = piece
	return nil
}

// Drop validates col, places piece in its open row and returns that row.
func (b *Board) Drop(col int, piece Piece) (int, error) {
	if col < 0 || col >= b.cols {
		return NoRow, fmt.Errorf("column %d: %w", col+1, ErrColumnOutOfRange)
	}
	if !b.IsValidColumn(col) {
		return NoRow, fmt.Errorf("column %d: %w", col+1, ErrColumnFull)
	}

	row := b.NextOpenRow(col)
	if row == NoRow {
		violate("Drop", "column %d accepted but has no open row", col)
	}
	b.grid[row][col] = piece
	return row, nil
}

// IsFull reports whether every cell is occupied.
func (b *Board) IsFull() bool {
	for r := range b.grid {
		for c := range b.grid[r] {
			if b.grid[r][c] == Empty {
				return false
			}
		}
	}
	return true
}

// ValidColumns lists every column that accepts a piece, ascending.
func (b *Board) ValidColumns() []int {
	cols := make([]int, 0, b.cols)
	for c := 0; c < b.cols; c++ {
		if b.IsValidColumn(c) {
			cols = append(cols, c)
		}
	}
	return cols
}

// Count returns the number of occupied cells.
func (b *Board) Count() int {
	n := 0
	for r := range b.grid {
		for c := range b.grid[r] {
			if b.grid[r][c] != Empty {
				n++
			}
		}
	}
	return n
}

// Grid returns a copy of the cells for renderers.
func (b *Board) Grid() [][]Piece {
	out := make([][]Piece, b.rows)
	for r := range b.grid {
		out[r] = make([]Piece, b.cols)
		copy(out[r], b.grid[r])
	}
	return out
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	return &Board{rows: b.rows, cols: b.cols, grid: b.Grid()}
}

// Equal reports whether both boards have the same shape and cells.
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.rows != other.rows || b.cols != other.cols {
		return false
	}
	for r := range b.grid {
		for c := range b.grid[r] {
			if b.grid[r][c] != other.grid[r][c] {
				return false
			}
		}
	}
	return true
}

// String draws the board as plain text with 1-based column numbers.
func (b *Board) String() string {
	var sb strings.Builder
	rule := strings.Repeat("-", b.cols*2+1)

	for c := 0; c < b.cols; c++ {
		fmt.Fprintf(&sb, " %d", (c+1)%10)
	}
	sb.WriteString("\n")
	sb.WriteString(rule)
	sb.WriteString("\n")
	for r := range b.grid {
		sb.WriteRune('|')
		for c := range b.grid[r] {
			sb.WriteRune(b.grid[r][c].Glyph())
			sb.WriteRune('|')
		}
		sb.WriteString("\n")
	}
	sb.WriteString(rule)
	return sb.String()
}

// withProbe places piece at (row, col), runs fn, and restores the cell on
// every exit path.
func (b *Board) withProbe(row, col int, piece Piece, fn func() bool) bool {
	prev := b.grid[row][col]
	b.grid[row][col] = piece
	defer func() { b.grid[row][col] = prev }()
	return fn()
}

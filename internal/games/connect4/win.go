package connect4

// direction is a unit step between consecutive cells of a window.
type direction struct {
	dr, dc int
}

// Scan directions: horizontal, vertical, descending left-to-right,
// descending right-to-left.
var directions = [...]direction{
	{0, 1},
	{1, 0},
	{1, 1},
	{1, -1},
}

// forEachWindow calls fn with every in-bounds run of ConnectN cells.
// Iteration stops early when fn returns false.
func forEachWindow(b *Board, fn func(window [ConnectN]Cell) bool) {
	for _, d := range directions {
		for r := 0; r < b.rows; r++ {
			for c := 0; c < b.cols; c++ {
				if !b.InBounds(r+d.dr*(ConnectN-1), c+d.dc*(ConnectN-1)) {
					continue
				}

				var window [ConnectN]Cell
				for i := range window {
					window[i] = Cell{Row: r + d.dr*i, Col: c + d.dc*i}
				}
				if !fn(window) {
					return
				}
			}
		}
	}
}

// WinningLine returns the first run of ConnectN cells holding piece.
func WinningLine(b *Board, piece Piece) ([]Cell, bool) {
	if piece == Empty {
		return nil, false
	}

	var line []Cell
	forEachWindow(b, func(window [ConnectN]Cell) bool {
		for _, cell := range window {
			if b.grid[cell.Row][cell.Col] != piece {
				return true
			}
		}
		line = window[:]
		return false
	})
	return line, line != nil
}

// HasWin reports whether piece has ConnectN in a row anywhere on the board.
func HasWin(b *Board, piece Piece) bool {
	_, ok := WinningLine(b, piece)
	return ok
}

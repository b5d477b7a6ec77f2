package connect4

import (
	"math/rand"
	"testing"
)

// tieRows is a full board with no four in a row for either piece.
var tieRows = []string{
	"PPCCPPC",
	"CCPPCCP",
	"PPCCPPC",
	"CCPPCCP",
	"PPCCPPC",
	"CCPPCCP",
}

// bruteForceWin checks every cell in all eight directions.
func bruteForceWin(b *Board, piece Piece) bool {
	if piece == Empty {
		return false
	}
	steps := [][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}, {1, 1}, {-1, -1}, {1, -1}, {-1, 1}}
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			for _, s := range steps {
				n := 0
				for i := 0; i < ConnectN; i++ {
					rr, cc := r+s[0]*i, c+s[1]*i
					if !b.InBounds(rr, cc) || b.At(rr, cc) != piece {
						break
					}
					n++
				}
				if n == ConnectN {
					return true
				}
			}
		}
	}
	return false
}

func TestWindowCount(t *testing.T) {
	counts := map[direction]int{}
	b := NewStandardBoard()

	forEachWindow(b, func(window [ConnectN]Cell) bool {
		d := direction{window[1].Row - window[0].Row, window[1].Col - window[0].Col}
		counts[d]++
		for _, cell := range window {
			if !b.InBounds(cell.Row, cell.Col) {
				t.Fatalf("window %v leaves the board", window)
			}
		}
		return true
	})

	expected := map[direction]int{
		{0, 1}:  6 * 4,
		{1, 0}:  3 * 7,
		{1, 1}:  3 * 4,
		{1, -1}: 3 * 4,
	}
	for d, want := range expected {
		if counts[d] != want {
			t.Errorf("windows in direction %v = %d, expected %d", d, counts[d], want)
		}
	}
}

func TestHasWinScenarios(t *testing.T) {
	tests := []struct {
		name  string
		rows  []string
		piece Piece
		want  bool
	}{
		{
			name: "horizontal bottom row",
			rows: []string{
				".......",
				".......",
				".......",
				".......",
				".......",
				"PPPP...",
			},
			piece: PlayerPiece,
			want:  true,
		},
		{
			name: "vertical column 3",
			rows: []string{
				".......",
				".......",
				"...C...",
				"...C...",
				"...C...",
				"...C...",
			},
			piece: ComputerPiece,
			want:  true,
		},
		{
			name: "vertical column 3 checked for player",
			rows: []string{
				".......",
				".......",
				"...C...",
				"...C...",
				"...C...",
				"...C...",
			},
			piece: PlayerPiece,
			want:  false,
		},
		{
			name: "rising diagonal from bottom left",
			rows: []string{
				".......",
				".......",
				"...P...",
				"..PC...",
				".PCC...",
				"PCCC...",
			},
			piece: PlayerPiece,
			want:  true,
		},
		{
			name: "diagonal descending left to right",
			rows: []string{
				".......",
				".......",
				"...O...",
				"...PO..",
				"...PPO.",
				"...PPPO",
			},
			piece: OpponentPiece,
			want:  true,
		},
		{
			name: "three in a row",
			rows: []string{
				".......",
				".......",
				".......",
				".......",
				".......",
				"PPP.PPP",
			},
			piece: PlayerPiece,
			want:  false,
		},
		{
			name: "run broken by another piece",
			rows: []string{
				".......",
				".......",
				".......",
				".......",
				".......",
				"PPCPP..",
			},
			piece: PlayerPiece,
			want:  false,
		},
		{
			name: "top row horizontal on the right edge",
			rows: []string{
				"...CCCC",
				"...PPPC",
				"...CCCP",
				"...PPPC",
				"...CCCP",
				"...PPPC",
			},
			piece: ComputerPiece,
			want:  true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := boardFrom(t, tc.rows...)
			if got := HasWin(b, tc.piece); got != tc.want {
				t.Errorf("HasWin(%v) = %v, expected %v\n%s", tc.piece, got, tc.want, b)
			}
		})
	}
}

func TestHasWinEmpty(t *testing.T) {
	b := NewStandardBoard()
	for _, p := range []Piece{Empty, PlayerPiece, OpponentPiece, ComputerPiece} {
		if HasWin(b, p) {
			t.Errorf("HasWin(%v) on empty board = true", p)
		}
	}

	// A run of empty cells never counts, even on a board with pieces.
	b = boardFrom(t, tieRows...)
	//nolint:errcheck // in bounds
	b.Place(0, 0, Empty)
	if HasWin(b, Empty) {
		t.Error("HasWin(Empty) should always be false")
	}
}

func TestFullBoardTie(t *testing.T) {
	b := boardFrom(t, tieRows...)

	if !b.IsFull() {
		t.Fatal("tie board should be full")
	}
	if b.Count() != 42 {
		t.Errorf("Count() = %d, expected 42", b.Count())
	}
	if HasWin(b, PlayerPiece) {
		t.Error("HasWin(Player) on tie board = true")
	}
	if HasWin(b, ComputerPiece) {
		t.Error("HasWin(Computer) on tie board = true")
	}
}

func TestWinningLine(t *testing.T) {
	b := boardFrom(t,
		".......",
		".......",
		".......",
		".......",
		".......",
		"..CCCC.",
	)

	line, ok := WinningLine(b, ComputerPiece)
	if !ok {
		t.Fatal("WinningLine() found no run")
	}
	if len(line) != ConnectN {
		t.Fatalf("len(line) = %d, expected %d", len(line), ConnectN)
	}
	for i, cell := range line {
		if cell.Row != 5 || cell.Col != 2+i {
			t.Errorf("line[%d] = %v, expected {5 %d}", i, cell, 2+i)
		}
	}

	if _, ok := WinningLine(b, PlayerPiece); ok {
		t.Error("WinningLine(Player) should find nothing")
	}
}

func TestHasWinMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	pieces := []Piece{Empty, PlayerPiece, ComputerPiece}

	for i := 0; i < 2000; i++ {
		// Arbitrary cells, gravity ignored: the detector must not care.
		b := NewStandardBoard()
		for r := 0; r < Rows; r++ {
			for c := 0; c < Cols; c++ {
				b.grid[r][c] = pieces[rng.Intn(len(pieces))]
			}
		}

		for _, p := range []Piece{PlayerPiece, ComputerPiece} {
			if got, want := HasWin(b, p), bruteForceWin(b, p); got != want {
				t.Fatalf("HasWin(%v) = %v, brute force = %v\n%s", p, got, want, b)
			}
		}
	}
}

func TestHasWinOtherDimensions(t *testing.T) {
	b := NewBoard(4, 4)
	for i := 0; i < 4; i++ {
		//nolint:errcheck // in bounds
		b.Place(3-i, i, OpponentPiece)
	}
	if !HasWin(b, OpponentPiece) {
		t.Errorf("expected anti-diagonal win on 4x4 board\n%s", b)
	}

	small := NewBoard(3, 3)
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			//nolint:errcheck // in bounds
			small.Place(r, c, PlayerPiece)
		}
	}
	if HasWin(small, PlayerPiece) {
		t.Error("a 3x3 board cannot hold four in a row")
	}
}

package connect4

import (
	"math/rand"
	"time"
)

// MoveSelector is the computer opponent. It blocks an opponent's immediate
// win when one exists and otherwise picks a legal column at random.
// It never searches beyond one move and never looks for its own win.
type MoveSelector struct {
	mode Mode
	rng  *rand.Rand
}

// NewMoveSelector creates a selector for games of the given mode.
// A nil rng is replaced by a time-seeded source.
func NewMoveSelector(mode Mode, rng *rand.Rand) *MoveSelector {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &MoveSelector{mode: mode, rng: rng}
}

// ChooseMove returns the column to play for own.
// The board is unchanged when ChooseMove returns.
func (s *MoveSelector) ChooseMove(b *Board, own Piece) (int, error) {
	if col, ok := s.BlockingMove(b, own); ok {
		return col, nil
	}

	valid := b.ValidColumns()
	if len(valid) == 0 {
		return NoRow, ErrNoLegalMove
	}
	return valid[s.rng.Intn(len(valid))], nil
}

// BlockingMove finds the first column, scanning left to right, where the
// opponent of own would complete a run with their next piece. A board the
// opponent has already won has nothing left to block.
func (s *MoveSelector) BlockingMove(b *Board, own Piece) (int, bool) {
	opp := Opponent(own, s.mode)
	if opp == Empty || HasWin(b, opp) {
		return NoRow, false
	}

	for col := 0; col < b.cols; col++ {
		if !b.IsValidColumn(col) {
			continue
		}
		row := b.NextOpenRow(col)
		if row == NoRow {
			continue
		}

		wins := b.withProbe(row, col, opp, func() bool {
			return HasWin(b, opp)
		})
		if wins {
			return col, true
		}
	}
	return NoRow, false
}

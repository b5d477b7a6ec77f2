package storage

import (
	"time"

	"github.com/google/uuid"

	"github.com/vovakirdan/connect4/internal/games/connect4"
)

// NewGameRecord describes a finished session for the history table.
// It reports false for sessions that did not end in a win or a tie.
func NewGameRecord(s *connect4.Session, p1, p2 string, started time.Time) (GameRecord, bool) {
	out := s.Outcome()
	if out.Kind != connect4.OutcomeWin && out.Kind != connect4.OutcomeTie {
		return GameRecord{}, false
	}

	if s.Mode() == connect4.ModeVsComputer {
		p2 = ComputerName
	}

	rec := GameRecord{
		GameID:   uuid.NewString(),
		Mode:     s.Mode().String(),
		Player1:  p1,
		Player2:  p2,
		Outcome:  out.Kind.String(),
		Moves:    s.Moves(),
		Duration: int(time.Since(started).Seconds()),
	}
	if out.Kind == connect4.OutcomeWin {
		if out.Winner == connect4.PlayerPiece {
			rec.Winner = p1
		} else {
			rec.Winner = p2
		}
	}
	return rec, true
}

package connect4

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"
)

// tieMoves fills the board into the tieRows pattern without any
// intermediate four in a row.
var tieMoves = []int{
	2, 0, 0, 2, 2, 0, 0, 2, 2, 0, 0, 2,
	3, 1, 1, 3, 3, 1, 1, 3, 3, 1, 1, 3,
	6, 4, 4, 5, 5, 6, 6, 4, 4, 5, 5, 6, 6, 4, 4, 5, 5, 6,
}

func playAll(t *testing.T, s *Session, cols ...int) MoveResult {
	t.Helper()
	var res MoveResult
	for i, col := range cols {
		var err error
		res, err = s.Play(col)
		if err != nil {
			t.Fatalf("move %d: Play(%d) failed: %v\n%s", i+1, col, err, s.Board())
		}
	}
	return res
}

func TestNewSession(t *testing.T) {
	s := NewSession(ModeVsComputer, nil)

	if s.State() != AwaitingMoveP1 {
		t.Errorf("State() = %v, expected AwaitingMoveP1", s.State())
	}
	if s.CurrentPiece() != PlayerPiece {
		t.Errorf("CurrentPiece() = %v, expected Player", s.CurrentPiece())
	}
	if s.Board().Count() != 0 {
		t.Errorf("new board has %d pieces", s.Board().Count())
	}
	if s.Outcome().Kind != OutcomeNone {
		t.Errorf("Outcome() = %v, expected none", s.Outcome().Kind)
	}
	if _, ok := s.LastMove(); ok {
		t.Error("LastMove() should be unset before the first move")
	}
	if s.selector == nil {
		t.Error("vs-computer session should get a default selector")
	}
}

func TestTurnsAlternate(t *testing.T) {
	tests := []struct {
		mode   Mode
		second Piece
	}{
		{ModeVsHuman, OpponentPiece},
		{ModeVsComputer, ComputerPiece},
	}

	for _, tc := range tests {
		t.Run(tc.mode.String(), func(t *testing.T) {
			s := NewSession(tc.mode, NewMoveSelector(tc.mode, rand.New(rand.NewSource(1))))

			res, err := s.Play(3)
			if err != nil {
				t.Fatalf("Play(3) failed: %v", err)
			}
			if res.Piece != PlayerPiece || res.Row != 5 || res.Col != 3 {
				t.Errorf("first move = %+v, expected Player at (5,3)", res)
			}
			if s.State() != AwaitingMoveP2OrComputer {
				t.Fatalf("State() = %v, expected AwaitingMoveP2OrComputer", s.State())
			}
			if s.CurrentPiece() != tc.second {
				t.Errorf("CurrentPiece() = %v, expected %v", s.CurrentPiece(), tc.second)
			}
			if got := s.IsComputerTurn(); got != (tc.mode == ModeVsComputer) {
				t.Errorf("IsComputerTurn() = %v", got)
			}

			if tc.mode == ModeVsComputer {
				res, err = s.PlayComputer()
			} else {
				res, err = s.Play(3)
			}
			if err != nil {
				t.Fatalf("second move failed: %v", err)
			}
			if res.Piece != tc.second {
				t.Errorf("second move piece = %v, expected %v", res.Piece, tc.second)
			}
			if s.State() != AwaitingMoveP1 {
				t.Errorf("State() = %v, expected AwaitingMoveP1", s.State())
			}
			if s.Moves() != 2 {
				t.Errorf("Moves() = %d, expected 2", s.Moves())
			}
		})
	}
}

func TestInvalidMoveKeepsState(t *testing.T) {
	s := NewSession(ModeVsHuman, nil)
	playAll(t, s, 0, 0, 0, 0, 0, 0)
	before := s.Board().Clone()

	for _, col := range []int{-1, 7, 0} {
		if _, err := s.Play(col); !errors.Is(err, ErrInvalidMove) {
			t.Errorf("Play(%d) error = %v, expected ErrInvalidMove", col, err)
		}
		if s.State() != AwaitingMoveP1 {
			t.Errorf("State() after Play(%d) = %v, expected AwaitingMoveP1", col, s.State())
		}
	}

	if !s.Board().Equal(before) {
		t.Errorf("invalid moves changed the board\n%s", s.Board())
	}
	if s.Moves() != 6 {
		t.Errorf("Moves() = %d, expected 6", s.Moves())
	}
}

func TestSessionWin(t *testing.T) {
	s := NewSession(ModeVsHuman, nil)
	res := playAll(t, s, 0, 0, 1, 1, 2, 2, 3)

	if res.State != Won || s.State() != Won {
		t.Fatalf("State() = %v, expected Won", s.State())
	}
	if s.Outcome() != (Outcome{Kind: OutcomeWin, Winner: PlayerPiece}) {
		t.Errorf("Outcome() = %+v", s.Outcome())
	}

	expected := []Cell{{5, 0}, {5, 1}, {5, 2}, {5, 3}}
	if !reflect.DeepEqual(s.WinningLine(), expected) {
		t.Errorf("WinningLine() = %v, expected %v", s.WinningLine(), expected)
	}
	if last, _ := s.LastMove(); last != (Cell{5, 3}) {
		t.Errorf("LastMove() = %v, expected {5 3}", last)
	}

	if _, err := s.Play(4); !errors.Is(err, ErrGameOver) {
		t.Errorf("Play() after win error = %v, expected ErrGameOver", err)
	}
	if err := s.Quit(); !errors.Is(err, ErrGameOver) {
		t.Errorf("Quit() after win error = %v, expected ErrGameOver", err)
	}
	if s.State() != Won {
		t.Errorf("State() changed to %v after the game ended", s.State())
	}
}

func TestSessionVerticalWinForSecondPlayer(t *testing.T) {
	s := NewSession(ModeVsHuman, nil)
	playAll(t, s, 0, 6, 1, 6, 0, 6, 1, 6)

	if s.State() != Won {
		t.Fatalf("State() = %v, expected Won", s.State())
	}
	if s.Outcome().Winner != OpponentPiece {
		t.Errorf("Winner = %v, expected Opponent", s.Outcome().Winner)
	}
}

func TestSessionTie(t *testing.T) {
	s := NewSession(ModeVsHuman, nil)

	for i, col := range tieMoves[:len(tieMoves)-1] {
		if _, err := s.Play(col); err != nil {
			t.Fatalf("move %d: Play(%d) failed: %v", i+1, col, err)
		}
		if s.State().IsTerminal() {
			t.Fatalf("game ended early after move %d in state %v\n%s", i+1, s.State(), s.Board())
		}
	}

	res, err := s.Play(tieMoves[len(tieMoves)-1])
	if err != nil {
		t.Fatalf("last move failed: %v", err)
	}
	if res.State != Tied {
		t.Fatalf("State = %v, expected Tied\n%s", res.State, s.Board())
	}
	if s.Outcome().Kind != OutcomeTie {
		t.Errorf("Outcome().Kind = %v, expected tie", s.Outcome().Kind)
	}
	if !s.Board().IsFull() {
		t.Error("board should be full")
	}
	if s.Results("ann", "bob") != nil {
		t.Error("a tie should produce no leaderboard results")
	}
}

func TestSessionQuit(t *testing.T) {
	s := NewSession(ModeVsComputer, nil)
	playAll(t, s, 3)

	if err := s.Quit(); err != nil {
		t.Fatalf("Quit() failed: %v", err)
	}
	if s.State() != Quit {
		t.Errorf("State() = %v, expected Quit", s.State())
	}
	if s.Outcome().Kind != OutcomeQuit {
		t.Errorf("Outcome().Kind = %v, expected quit", s.Outcome().Kind)
	}
	if s.CurrentPiece() != Empty {
		t.Errorf("CurrentPiece() = %v, expected Empty", s.CurrentPiece())
	}
	if _, err := s.PlayComputer(); !errors.Is(err, ErrGameOver) {
		t.Errorf("PlayComputer() after quit error = %v, expected ErrGameOver", err)
	}
	if err := s.Quit(); !errors.Is(err, ErrGameOver) {
		t.Errorf("second Quit() error = %v, expected ErrGameOver", err)
	}
	if s.Results("ann", "") != nil {
		t.Error("a quit game should produce no leaderboard results")
	}
}

func TestTurnOwnership(t *testing.T) {
	s := NewSession(ModeVsComputer, NewMoveSelector(ModeVsComputer, rand.New(rand.NewSource(2))))

	if _, err := s.PlayComputer(); !errors.Is(err, ErrNotComputerTurn) {
		t.Errorf("PlayComputer() on player turn error = %v, expected ErrNotComputerTurn", err)
	}

	playAll(t, s, 0)
	if _, err := s.Play(1); !errors.Is(err, ErrComputerTurn) {
		t.Errorf("Play() on computer turn error = %v, expected ErrComputerTurn", err)
	}
	if s.Moves() != 1 {
		t.Errorf("Moves() = %d, expected 1", s.Moves())
	}

	res, err := s.PlayComputer()
	if err != nil {
		t.Fatalf("PlayComputer() failed: %v", err)
	}
	if res.Piece != ComputerPiece {
		t.Errorf("PlayComputer() piece = %v, expected Computer", res.Piece)
	}

	human := NewSession(ModeVsHuman, nil)
	playAll(t, human, 0)
	if _, err := human.PlayComputer(); !errors.Is(err, ErrNotComputerTurn) {
		t.Errorf("PlayComputer() in vs-human mode error = %v, expected ErrNotComputerTurn", err)
	}
}

func TestComputerBlocksInSession(t *testing.T) {
	s := &Session{
		mode: ModeVsComputer,
		board: boardFrom(t,
			".......",
			".......",
			".......",
			".......",
			"CC.....",
			"PPP....",
		),
		selector: NewMoveSelector(ModeVsComputer, rand.New(rand.NewSource(8))),
		state:    AwaitingMoveP2OrComputer,
	}

	res, err := s.PlayComputer()
	if err != nil {
		t.Fatalf("PlayComputer() failed: %v", err)
	}
	if res.Col != 3 || res.Row != 5 {
		t.Errorf("computer played (%d,%d), expected the block at (5,3)", res.Row, res.Col)
	}
	if s.State() != AwaitingMoveP1 {
		t.Errorf("State() = %v, expected AwaitingMoveP1", s.State())
	}

	// The player's next move cannot complete the bottom row anymore.
	if _, err := s.Play(3); err != nil {
		t.Fatalf("Play(3) failed: %v", err)
	}
	if HasWin(s.Board(), PlayerPiece) {
		t.Errorf("player should not have a win\n%s", s.Board())
	}
}

func TestComputerWinsOnlyByChance(t *testing.T) {
	// With no threat to block, the computer's move is random even when a
	// winning column is available.
	rows := []string{
		".......",
		".......",
		".......",
		"C......",
		"C......",
		"C.PP..P",
	}

	seen := map[int]bool{}
	for seed := int64(0); seed < 200; seed++ {
		s := &Session{
			mode:     ModeVsComputer,
			board:    boardFrom(t, rows...),
			selector: NewMoveSelector(ModeVsComputer, rand.New(rand.NewSource(seed))),
			state:    AwaitingMoveP2OrComputer,
		}
		res, err := s.PlayComputer()
		if err != nil {
			t.Fatalf("PlayComputer() failed: %v", err)
		}
		seen[res.Col] = true
	}

	if len(seen) < 2 {
		t.Errorf("computer always chose %v; expected random choices", seen)
	}
}

func TestResults(t *testing.T) {
	tests := []struct {
		name     string
		mode     Mode
		outcome  Outcome
		expected []PlayerResult
	}{
		{
			name:     "player beats computer",
			mode:     ModeVsComputer,
			outcome:  Outcome{Kind: OutcomeWin, Winner: PlayerPiece},
			expected: []PlayerResult{{Name: "ann", Won: true}},
		},
		{
			name:     "computer beats player",
			mode:     ModeVsComputer,
			outcome:  Outcome{Kind: OutcomeWin, Winner: ComputerPiece},
			expected: []PlayerResult{{Name: "ann", Won: false}},
		},
		{
			name:     "player one beats player two",
			mode:     ModeVsHuman,
			outcome:  Outcome{Kind: OutcomeWin, Winner: PlayerPiece},
			expected: []PlayerResult{{Name: "ann", Won: true}, {Name: "bob", Won: false}},
		},
		{
			name:     "player two beats player one",
			mode:     ModeVsHuman,
			outcome:  Outcome{Kind: OutcomeWin, Winner: OpponentPiece},
			expected: []PlayerResult{{Name: "ann", Won: false}, {Name: "bob", Won: true}},
		},
		{
			name:    "tie",
			mode:    ModeVsHuman,
			outcome: Outcome{Kind: OutcomeTie},
		},
		{
			name:    "quit",
			mode:    ModeVsComputer,
			outcome: Outcome{Kind: OutcomeQuit},
		},
		{
			name: "in progress",
			mode: ModeVsComputer,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := &Session{mode: tc.mode, outcome: tc.outcome}
			got := s.Results("ann", "bob")
			if !reflect.DeepEqual(got, tc.expected) {
				t.Errorf("Results() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

type fakeRecorder struct {
	calls []PlayerResult
	fail  map[string]error
}

func (f *fakeRecorder) RecordOutcome(name string, won bool) error {
	f.calls = append(f.calls, PlayerResult{Name: name, Won: won})
	return f.fail[name]
}

func TestRecordResults(t *testing.T) {
	results := []PlayerResult{{Name: "ann", Won: true}, {Name: "bob", Won: false}}

	t.Run("records everyone", func(t *testing.T) {
		rec := &fakeRecorder{}
		if err := RecordResults(rec, results); err != nil {
			t.Fatalf("RecordResults() failed: %v", err)
		}
		if !reflect.DeepEqual(rec.calls, results) {
			t.Errorf("calls = %v, expected %v", rec.calls, results)
		}
	})

	t.Run("keeps going after a failure", func(t *testing.T) {
		errDisk := errors.New("disk full")
		rec := &fakeRecorder{fail: map[string]error{"ann": errDisk}}

		err := RecordResults(rec, results)
		if !errors.Is(err, errDisk) {
			t.Errorf("RecordResults() error = %v, expected it to wrap %v", err, errDisk)
		}
		if len(rec.calls) != 2 {
			t.Errorf("recorder saw %d calls, expected 2", len(rec.calls))
		}
	})

	t.Run("nil recorder", func(t *testing.T) {
		if err := RecordResults(nil, results); err != nil {
			t.Errorf("RecordResults(nil) = %v, expected nil", err)
		}
	})
}

package connect4

import "fmt"

// State is a position in the turn state machine.
type State int

const (
	AwaitingMoveP1 State = iota
	AwaitingMoveP2OrComputer
	Won
	Tied
	Quit
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case AwaitingMoveP1:
		return "AwaitingMoveP1"
	case AwaitingMoveP2OrComputer:
		return "AwaitingMoveP2OrComputer"
	case Won:
		return "Won"
	case Tied:
		return "Tied"
	case Quit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsTerminal reports whether no further moves are accepted.
func (s State) IsTerminal() bool {
	return s == Won || s == Tied || s == Quit
}

// OutcomeKind classifies how a game ended.
type OutcomeKind int

const (
	OutcomeNone OutcomeKind = iota
	OutcomeWin
	OutcomeTie
	OutcomeQuit
)

// String returns the storage spelling of the outcome kind.
func (k OutcomeKind) String() string {
	switch k {
	case OutcomeWin:
		return "win"
	case OutcomeTie:
		return "tie"
	case OutcomeQuit:
		return "quit"
	default:
		return "none"
	}
}

// Outcome is the result of a game. Winner is set only for OutcomeWin.
type Outcome struct {
	Kind   OutcomeKind
	Winner Piece
}

// MoveResult describes a move the session accepted.
type MoveResult struct {
	Piece Piece
	Row   int
	Col   int
	State State  // state after the move
	Line  []Cell // winning run when State is Won
}

// PlayerResult is one leaderboard update owed after a finished game.
type PlayerResult struct {
	Name string
	Won  bool
}

// Session drives a single game from the first move to a terminal state.
// It owns its board exclusively and is not safe for concurrent use.
type Session struct {
	mode     Mode
	board    *Board
	selector *MoveSelector
	state    State
	outcome  Outcome
	moves    int
	last     Cell
	hasLast  bool
	line     []Cell
}

// NewSession starts a game on an empty standard board.
// A nil selector gets a time-seeded one when the mode needs it.
func NewSession(mode Mode, selector *MoveSelector) *Session {
	if selector == nil && mode == ModeVsComputer {
		selector = NewMoveSelector(mode, nil)
	}
	return &Session{
		mode:     mode,
		board:    NewStandardBoard(),
		selector: selector,
		state:    AwaitingMoveP1,
	}
}

// Mode returns the session's mode.
func (s *Session) Mode() Mode {
	return s.mode
}

// Board returns the live board. Callers must treat it as read-only.
func (s *Session) Board() *Board {
	return s.board
}

// State returns the current state.
func (s *Session) State() State {
	return s.state
}

// Outcome returns how the game ended, or OutcomeNone while it is running.
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// Moves returns the number of pieces placed so far.
func (s *Session) Moves() int {
	return s.moves
}

// LastMove returns the most recently filled cell.
func (s *Session) LastMove() (Cell, bool) {
	return s.last, s.hasLast
}

// WinningLine returns the completed run after a win.
func (s *Session) WinningLine() []Cell {
	return s.line
}

// CurrentPiece returns the piece to move, or Empty in a terminal state.
func (s *Session) CurrentPiece() Piece {
	switch s.state {
	case AwaitingMoveP1:
		return PlayerPiece
	case AwaitingMoveP2OrComputer:
		return s.mode.SecondPiece()
	default:
		return Empty
	}
}

// IsComputerTurn reports whether the next move belongs to the computer.
func (s *Session) IsComputerTurn() bool {
	return s.mode == ModeVsComputer && s.state == AwaitingMoveP2OrComputer
}

// Play applies a human move in col. Invalid columns return an error
// matching ErrInvalidMove and leave the state unchanged.
func (s *Session) Play(col int) (MoveResult, error) {
	if s.state.IsTerminal() {
		return MoveResult{}, ErrGameOver
	}
	if s.IsComputerTurn() {
		return MoveResult{}, ErrComputerTurn
	}
	return s.apply(col)
}

// PlayComputer asks the selector for a column and applies it.
func (s *Session) PlayComputer() (MoveResult, error) {
	if s.state.IsTerminal() {
		return MoveResult{}, ErrGameOver
	}
	if !s.IsComputerTurn() {
		return MoveResult{}, ErrNotComputerTurn
	}

	col, err := s.selector.ChooseMove(s.board, ComputerPiece)
	if err != nil {
		return MoveResult{}, fmt.Errorf("computer move: %w", err)
	}
	res, err := s.apply(col)
	if err != nil {
		violate("PlayComputer", "selector chose rejected column %d: %v", col, err)
	}
	return res, nil
}

// Quit ends the game without a winner.
func (s *Session) Quit() error {
	if s.state.IsTerminal() {
		return ErrGameOver
	}
	s.state = Quit
	s.outcome = Outcome{Kind: OutcomeQuit}
	return nil
}

// apply places the current piece and advances the state machine.
func (s *Session) apply(col int) (MoveResult, error) {
	piece := s.CurrentPiece()
	row, err := s.board.Drop(col, piece)
	if err != nil {
		return MoveResult{}, err
	}

	s.moves++
	s.last = Cell{Row: row, Col: col}
	s.hasLast = true

	switch line, won := WinningLine(s.board, piece); {
	case won:
		s.state = Won
		s.outcome = Outcome{Kind: OutcomeWin, Winner: piece}
		s.line = line
	case s.board.IsFull():
		s.state = Tied
		s.outcome = Outcome{Kind: OutcomeTie}
	case s.state == AwaitingMoveP1:
		s.state = AwaitingMoveP2OrComputer
	default:
		s.state = AwaitingMoveP1
	}

	return MoveResult{
		Piece: piece,
		Row:   row,
		Col:   col,
		State: s.state,
		Line:  s.line,
	}, nil
}

// Results lists the leaderboard updates for a finished game: one per human
// on a win, none on a tie or quit. The computer is never recorded.
func (s *Session) Results(p1, p2 string) []PlayerResult {
	if s.outcome.Kind != OutcomeWin {
		return nil
	}

	p1Won := s.outcome.Winner == PlayerPiece
	results := []PlayerResult{{Name: p1, Won: p1Won}}
	if s.mode == ModeVsHuman {
		results = append(results, PlayerResult{Name: p2, Won: !p1Won})
	}
	return results
}

package connect4

import "fmt"

// Piece identifies what occupies a board cell.
type Piece uint8

const (
	Empty Piece = iota
	PlayerPiece
	OpponentPiece // second human in a two-player game
	ComputerPiece
)

// String returns a human-readable name for the piece.
func (p Piece) String() string {
	switch p {
	case Empty:
		return "Empty"
	case PlayerPiece:
		return "Player"
	case OpponentPiece:
		return "Opponent"
	case ComputerPiece:
		return "Computer"
	default:
		return "Unknown"
	}
}

// Glyph returns the single-character board symbol for the piece.
func (p Piece) Glyph() rune {
	switch p {
	case PlayerPiece:
		return 'P'
	case OpponentPiece:
		return 'O'
	case ComputerPiece:
		return 'C'
	default:
		return ' '
	}
}

// Mode selects who takes the second seat.
type Mode int

const (
	ModeVsComputer Mode = iota
	ModeVsHuman
)

// String returns the CLI spelling of the mode.
func (m Mode) String() string {
	switch m {
	case ModeVsComputer:
		return "computer"
	case ModeVsHuman:
		return "human"
	default:
		return "unknown"
	}
}

// ParseMode accepts the spellings used on the command line and in storage.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "computer", "cpu", "ai":
		return ModeVsComputer, nil
	case "human", "pvp", "player":
		return ModeVsHuman, nil
	default:
		return ModeVsComputer, fmt.Errorf("unknown mode %q", s)
	}
}

// SecondPiece is the piece that moves after PlayerPiece in this mode.
func (m Mode) SecondPiece() Piece {
	if m == ModeVsHuman {
		return OpponentPiece
	}
	return ComputerPiece
}

// Opponent returns the piece facing p in a game of the given mode.
// Empty has no opponent.
func Opponent(p Piece, m Mode) Piece {
	switch p {
	case PlayerPiece:
		return m.SecondPiece()
	case OpponentPiece, ComputerPiece:
		return PlayerPiece
	default:
		return Empty
	}
}

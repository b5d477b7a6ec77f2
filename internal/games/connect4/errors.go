package connect4

import (
	"errors"
	"fmt"
)

// Recoverable errors. A rejected move leaves the session in the same state,
// so callers re-prompt on anything that matches ErrInvalidMove.
var (
	ErrInvalidMove      = errors.New("invalid move")
	ErrColumnOutOfRange = fmt.Errorf("%w: column out of range", ErrInvalidMove)
	ErrColumnFull       = fmt.Errorf("%w: column is full", ErrInvalidMove)

	ErrGameOver        = errors.New("game is over")
	ErrNotComputerTurn = errors.New("not the computer's turn")
	ErrComputerTurn    = errors.New("waiting for the computer to move")
	ErrNoLegalMove     = errors.New("no legal move")
	ErrOutOfBounds     = errors.New("cell out of bounds")
)

// InvariantViolation is the panic value used when the engine detects a state
// that cannot be reached through the public contract.
type InvariantViolation struct {
	Op     string
	Detail string
}

func (e *InvariantViolation) Error() string {
	return fmt.Sprintf("connect4: invariant violated in %s: %s", e.Op, e.Detail)
}

func violate(op, format string, args ...any) {
	panic(&InvariantViolation{Op: op, Detail: fmt.Sprintf(format, args...)})
}

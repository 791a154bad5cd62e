package engine

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCell  = errors.New("cell is out of range")
	ErrCellOccupied = errors.New("cell is already occupied")
	ErrGameFinished = errors.New("game is already finished")
)

// State is a full game position: the board, whose turn it is and the
// current outcome. It is a value type; MakeMove returns the successor
// state and never mutates the receiver, so callers can keep histories
// or probe candidate moves without copying by hand.
type State struct {
	Board   Board
	Turn    Mark
	Outcome Outcome
}

// NewState - returns the initial position: empty board, X to move.
func NewState() State {
	return State{Turn: MarkX}
}

// MakeMove - places the current player's mark into the given cell and
// returns the resulting state. The move is rejected, with the receiver
// returned unchanged, when the cell is out of range, already occupied,
// or the game is over. The turn flips only while the game stays in
// progress, so a finished state still records who moved last.
func (that State) MakeMove(cell int) (State, error) {
	if cell < 0 || cell >= len(that.Board) {
		return that, fmt.Errorf("%w: %d", ErrInvalidCell, cell)
	}

	if that.Board[cell] != MarkEmpty {
		return that, ErrCellOccupied
	}

	if !that.Outcome.InProgress() {
		return that, ErrGameFinished
	}

	next := that
	next.Board[cell] = next.Turn
	next.Outcome = Evaluate(next.Board)

	if next.Outcome.InProgress() {
		next.Turn = next.Turn.Opponent()
	}

	return next, nil
}

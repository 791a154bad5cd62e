// Package engine holds the pure tic-tac-toe core: board representation,
// move transitions, outcome evaluation and the bot move policies. It does
// no I/O and keeps no global state; sessions own their State values.
package engine

// Mark is a player token. The empty mark doubles as the empty cell value,
// so a board serializes the same way the wire format expects: "" until
// a player occupies the cell.
type Mark string

const (
	MarkEmpty Mark = ""
	MarkX     Mark = "X"
	MarkO     Mark = "O"
)

// Opponent - returns the other player's mark.
func (that Mark) Opponent() Mark {
	if that == MarkX {
		return MarkO
	}
	return MarkX
}

// Board is the 3x3 grid in row-major order, cells indexed 0..8.
type Board [9]Mark

// Line is a triple of cell indices that wins the game when uniformly occupied.
type Line [3]int

// WinLines - the 8 winning lines: 3 rows, 3 columns, 2 diagonals.
// Evaluate scans them in this order and reports the first completed one,
// so the order is part of the contract.
var WinLines = [8]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// IsFull - reports whether no free cell is left.
func (that Board) IsFull() bool {
	for _, mark := range that {
		if mark == MarkEmpty {
			return false
		}
	}
	return true
}

// FreeCells - returns the indices of all empty cells in ascending order.
func (that Board) FreeCells() []int {
	cells := make([]int, 0, len(that))
	for i, mark := range that {
		if mark == MarkEmpty {
			cells = append(cells, i)
		}
	}
	return cells
}

package engine

import (
	"math/rand"
)

// Difficulty selects the bot move policy for a session.
type Difficulty string

const (
	EasyDifficulty Difficulty = "easy"
	HardDifficulty Difficulty = "hard"
)

const centerCell = 4

var (
	cornerCells = [4]int{0, 2, 6, 8}
	sideCells   = [4]int{1, 3, 5, 7}
)

// SelectMove - picks a cell for self on a board where self plays against
// opponent. The policy is a fixed priority list:
//
//  1. complete an own line and win now,
//  2. occupy the cell the opponent needs to win,
//  3. take the center,
//  4. take a random free corner,
//  5. take a random free side.
//
// Ties inside a priority level are broken by rng, which is the only
// source of randomness; a seeded rng makes the selection reproducible.
// The second result is false only when the board has no free cell.
func SelectMove(rng *rand.Rand, board Board, self, opponent Mark) (int, bool) {
	if cell, ok := winningCell(board, self); ok {
		return cell, true
	}

	if cell, ok := winningCell(board, opponent); ok {
		return cell, true
	}

	if board[centerCell] == MarkEmpty {
		return centerCell, true
	}

	if cell, ok := randomFreeCell(rng, board, cornerCells); ok {
		return cell, true
	}

	return randomFreeCell(rng, board, sideCells)
}

// RandomMove - picks a uniformly random free cell. It is the easy bot
// policy. The second result is false only when the board is full.
func RandomMove(rng *rand.Rand, board Board) (int, bool) {
	free := board.FreeCells()
	if len(free) == 0 {
		return -1, false
	}

	return free[rng.Intn(len(free))], true
}

// winningCell - finds the lowest free cell that completes a line for the
// given mark by probing every candidate move against Evaluate.
func winningCell(board Board, mark Mark) (int, bool) {
	for cell, current := range board {
		if current != MarkEmpty {
			continue
		}

		probe := board
		probe[cell] = mark

		if Evaluate(probe).Winner == mark {
			return cell, true
		}
	}

	return -1, false
}

func randomFreeCell(rng *rand.Rand, board Board, cells [4]int) (int, bool) {
	free := make([]int, 0, len(cells))
	for _, cell := range cells {
		if board[cell] == MarkEmpty {
			free = append(free, cell)
		}
	}

	if len(free) == 0 {
		return -1, false
	}

	return free[rng.Intn(len(free))], true
}

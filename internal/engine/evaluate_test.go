package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate(t *testing.T) {
	t.Run("Returns X as winner for a completed row", func(t *testing.T) {
		// Given: a board where X occupies the top row
		board := Board{
			MarkX, MarkX, MarkX,
			MarkO, MarkO, MarkEmpty,
			MarkEmpty, MarkEmpty, MarkEmpty,
		}

		// When: evaluating the board
		outcome := Evaluate(board)

		// Then: X wins on the top row
		assert.Equal(t, MarkX, outcome.Winner)
		assert.Equal(t, Line{0, 1, 2}, outcome.Line)
		assert.False(t, outcome.Draw)
		assert.True(t, outcome.Won())
		assert.False(t, outcome.InProgress())
	})

	t.Run("Returns O as winner for a completed column", func(t *testing.T) {
		// Given: a board where O occupies the left column
		board := Board{
			MarkO, MarkX, MarkX,
			MarkO, MarkX, MarkEmpty,
			MarkO, MarkEmpty, MarkEmpty,
		}

		// When: evaluating the board
		outcome := Evaluate(board)

		// Then: O wins on the left column
		assert.Equal(t, MarkO, outcome.Winner)
		assert.Equal(t, Line{0, 3, 6}, outcome.Line)
	})

	t.Run("Returns the winner for the main diagonal", func(t *testing.T) {
		// Given: a board where X occupies the main diagonal
		board := Board{
			MarkX, MarkO, MarkEmpty,
			MarkO, MarkX, MarkEmpty,
			MarkEmpty, MarkEmpty, MarkX,
		}

		// When: evaluating the board
		outcome := Evaluate(board)

		// Then: X wins on the main diagonal
		assert.Equal(t, MarkX, outcome.Winner)
		assert.Equal(t, Line{0, 4, 8}, outcome.Line)
	})

	t.Run("Returns the winner for the anti diagonal", func(t *testing.T) {
		// Given: a board where O occupies the anti diagonal
		board := Board{
			MarkX, MarkX, MarkO,
			MarkX, MarkO, MarkEmpty,
			MarkO, MarkEmpty, MarkEmpty,
		}

		// When: evaluating the board
		outcome := Evaluate(board)

		// Then: O wins on the anti diagonal
		assert.Equal(t, MarkO, outcome.Winner)
		assert.Equal(t, Line{2, 4, 6}, outcome.Line)
	})

	t.Run("Returns a draw for a full board without a winner", func(t *testing.T) {
		// Given: a full board where no line is completed
		board := Board{
			MarkX, MarkO, MarkX,
			MarkX, MarkO, MarkO,
			MarkO, MarkX, MarkX,
		}

		// When: evaluating the board
		outcome := Evaluate(board)

		// Then: the game is a draw
		assert.True(t, outcome.Draw)
		assert.Equal(t, MarkEmpty, outcome.Winner)
		assert.False(t, outcome.Won())
		assert.False(t, outcome.InProgress())
	})

	t.Run("Returns in progress for an empty board", func(t *testing.T) {
		// Given: an empty board
		board := Board{}

		// When: evaluating the board
		outcome := Evaluate(board)

		// Then: the game is still in progress
		assert.True(t, outcome.InProgress())
		assert.Equal(t, Outcome{}, outcome)
	})

	t.Run("Returns in progress while free cells and no winner remain", func(t *testing.T) {
		// Given: a half played board without a completed line
		board := Board{
			MarkX, MarkO, MarkEmpty,
			MarkEmpty, MarkX, MarkEmpty,
			MarkEmpty, MarkEmpty, MarkO,
		}

		// When: evaluating the board
		outcome := Evaluate(board)

		// Then: the game is still in progress
		assert.True(t, outcome.InProgress())
	})

	t.Run("Reports the first completed line in scan order", func(t *testing.T) {
		// Given: a board where X completed both the top row and the left column
		board := Board{
			MarkX, MarkX, MarkX,
			MarkX, MarkEmpty, MarkEmpty,
			MarkX, MarkEmpty, MarkEmpty,
		}

		// When: evaluating the board
		outcome := Evaluate(board)

		// Then: the top row is reported because rows are scanned before columns
		assert.Equal(t, MarkX, outcome.Winner)
		assert.Equal(t, Line{0, 1, 2}, outcome.Line)
	})
}

func TestEvaluate_MarkSwapSymmetry(t *testing.T) {
	t.Run("Swapping the marks swaps the winner and nothing else", func(t *testing.T) {
		// Given: a deterministic stream of random boards
		rng := rand.New(rand.NewSource(7))

		for i := 0; i < 500; i++ {
			board := randomBoard(rng)

			// When: evaluating the board and its mark-swapped mirror
			outcome := Evaluate(board)
			mirrored := Evaluate(swapMarks(board))

			// Then: the verdicts match up to the swapped winner
			if outcome.Won() {
				require.Equal(t, outcome.Winner.Opponent(), mirrored.Winner, "board %v", board)
				require.Equal(t, outcome.Line, mirrored.Line, "board %v", board)
			} else {
				require.Equal(t, outcome, mirrored, "board %v", board)
			}
		}
	})
}

func TestBoard_FreeCells(t *testing.T) {
	t.Run("Returns all cells for an empty board", func(t *testing.T) {
		// Given: an empty board
		board := Board{}

		// When: listing the free cells
		free := board.FreeCells()

		// Then: every cell is free, in ascending order
		assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8}, free)
		assert.False(t, board.IsFull())
	})

	t.Run("Returns nothing for a full board", func(t *testing.T) {
		// Given: a full board
		board := Board{
			MarkX, MarkO, MarkX,
			MarkX, MarkO, MarkO,
			MarkO, MarkX, MarkX,
		}

		// When: listing the free cells
		free := board.FreeCells()

		// Then: no cell is free
		assert.Empty(t, free)
		assert.True(t, board.IsFull())
	})

	t.Run("Skips occupied cells", func(t *testing.T) {
		// Given: a board with two occupied cells
		board := Board{}
		board[1] = MarkX
		board[4] = MarkO

		// When: listing the free cells
		free := board.FreeCells()

		// Then: only the empty cells are listed
		assert.Equal(t, []int{0, 2, 3, 5, 6, 7, 8}, free)
	})
}

func TestMark_Opponent(t *testing.T) {
	t.Run("X and O are each other's opponent", func(t *testing.T) {
		assert.Equal(t, MarkO, MarkX.Opponent())
		assert.Equal(t, MarkX, MarkO.Opponent())
	})
}

// randomBoard fills every cell independently with empty, X or O. The
// positions are not always reachable in play, which is fine: Evaluate
// has to hold for any board.
func randomBoard(rng *rand.Rand) Board {
	var board Board
	marks := [3]Mark{MarkEmpty, MarkX, MarkO}

	for i := range board {
		board[i] = marks[rng.Intn(len(marks))]
	}

	return board
}

func swapMarks(board Board) Board {
	swapped := board
	for i, mark := range swapped {
		if mark != MarkEmpty {
			swapped[i] = mark.Opponent()
		}
	}

	return swapped
}

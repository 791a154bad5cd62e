package engine

// Outcome is the verdict for a board position. The zero value means the
// game is still in progress.
type Outcome struct {
	Winner Mark
	Line   Line
	Draw   bool
}

// Won - reports whether some player completed a line.
func (that Outcome) Won() bool {
	return that.Winner != MarkEmpty
}

// InProgress - reports whether the game is neither won nor drawn.
func (that Outcome) InProgress() bool {
	return !that.Won() && !that.Draw
}

// Evaluate - computes the outcome of a board position. It checks the 8
// win lines in WinLines order and returns the winner together with the
// completed line; a full board without a winner is a draw.
func Evaluate(board Board) Outcome {
	for _, line := range WinLines {
		first := board[line[0]]
		if first == MarkEmpty {
			continue
		}

		if board[line[1]] == first && board[line[2]] == first {
			return Outcome{Winner: first, Line: line}
		}
	}

	if board.IsFull() {
		return Outcome{Draw: true}
	}

	return Outcome{}
}

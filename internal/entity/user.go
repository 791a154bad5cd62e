package entity

import "github.com/oxogame/tictactoe-backend/internal/engine"

// User is an authenticated account. Games are anonymous by themselves;
// a user only accumulates totals when a finished game is recorded
// against their account.
type User struct {
	Email  string `json:"email"`
	Name   string `json:"name,omitempty"`
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	Draws  int    `json:"draws"`
}

// RecordResult - folds a finished game into the user's totals, given
// the mark the user played.
func (that *User) RecordResult(winner, own engine.Mark) {
	switch winner {
	case PlayerTie:
		that.Draws++
	case own:
		that.Wins++
	default:
		that.Losses++
	}
}

package entity

import (
	"strings"

	"github.com/oxogame/tictactoe-backend/internal/engine"
)

const botIDPrefix = "bot:"

// Player is a seat at a board. Email is set only for sessions that
// presented a valid auth token; finished games are recorded against
// that account.
type Player struct {
	ID     string      `json:"id"`
	Mark   engine.Mark `json:"mark,omitempty"`
	GameID string      `json:"game_id,omitempty"`
	Email  string      `json:"email,omitempty"`
}

// NewBotPlayer - seats a bot in the given game. Bot players live only
// inside the game they were created for, so the ID is derived from the
// game ID instead of a session cookie.
func NewBotPlayer(gameID string, mark engine.Mark) *Player {
	return &Player{
		ID:     botIDPrefix + gameID,
		Mark:   mark,
		GameID: gameID,
	}
}

func (that *Player) IsBot() bool {
	return strings.HasPrefix(that.ID, botIDPrefix)
}

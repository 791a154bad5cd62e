package entity

import (
	"errors"
	"fmt"

	"github.com/oxogame/tictactoe-backend/internal/apperror"
	"github.com/oxogame/tictactoe-backend/internal/engine"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"

	// PlayerTie marks a drawn game in the winner field of the wire format.
	PlayerTie engine.Mark = "-"
)

const (
	PublicType  = "public"
	PrivateType = "private"
	WithBotType = "bot"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is the wire and storage model of a session. Board, Turn and the
// outcome fields mirror an engine.State; EngineState and ApplyState
// convert between the two so all move logic stays in the engine package.
type Game struct {
	ID         string            `json:"id"`
	Board      engine.Board      `json:"board"`
	Winner     engine.Mark       `json:"winner"`
	WinLine    *engine.Line      `json:"win_line,omitempty"`
	Status     string            `json:"status"`
	Turn       engine.Mark       `json:"player_turn"`
	Players    []*Player         `json:"players,omitempty"`
	Type       string            `json:"type,omitempty"`
	Difficulty engine.Difficulty `json:"difficulty,omitempty"`
}

func NewGame(id, gameType string) *Game {
	return &Game{
		ID:     id,
		Turn:   engine.MarkX,
		Status: StatusWaiting,
		Type:   gameType,
	}
}

// EngineState - reconstructs the pure game state from the wire fields.
// The outcome is recomputed from the board, so a game loaded from
// storage cannot disagree with its own position.
func (that *Game) EngineState() engine.State {
	return engine.State{
		Board:   that.Board,
		Turn:    that.Turn,
		Outcome: engine.Evaluate(that.Board),
	}
}

// ApplyState - copies a game state back into the wire fields. A won game
// records the winner and the completed line, a draw records PlayerTie;
// both clear the turn because nobody moves anymore.
func (that *Game) ApplyState(state engine.State) {
	that.Board = state.Board

	switch {
	case state.Outcome.Won():
		line := state.Outcome.Line
		that.Winner = state.Outcome.Winner
		that.WinLine = &line
		that.Status = StatusFinished
		that.Turn = engine.MarkEmpty
	case state.Outcome.Draw:
		that.Winner = PlayerTie
		that.WinLine = nil
		that.Status = StatusFinished
		that.Turn = engine.MarkEmpty
	default:
		that.Winner = engine.MarkEmpty
		that.WinLine = nil
		that.Status = StatusOngoing
		that.Turn = state.Turn
	}
}

// MakeTurn - plays playerMark into the given cell. The turn ownership
// check lives here; range, occupation and finished-game checks live in
// the engine. On any rejection the game is left untouched.
func (that *Game) MakeTurn(playerMark engine.Mark, cell int) error {
	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	next, err := that.EngineState().MakeMove(cell)
	if err != nil {
		return err
	}

	that.ApplyState(next)

	return nil
}

// Restart - brings the game back to the initial position and keeps the
// players seated. Public and private games return to ongoing; a bot
// game was never waiting, so it restarts as ongoing too.
func (that *Game) Restart() {
	that.ApplyState(engine.NewState())
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return engine.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

func (that *Game) IsPublic() bool {
	return that.Type == PublicType
}

func (that *Game) IsWithBot() bool {
	return that.Type == WithBotType
}

// BotPlayer - returns the bot seated in this game, if any.
func (that *Game) BotPlayer() (*Player, bool) {
	for _, player := range that.Players {
		if player.IsBot() {
			return player, true
		}
	}

	return nil, false
}

// PlayerByMark - returns the seated player holding the given mark.
func (that *Game) PlayerByMark(mark engine.Mark) (*Player, bool) {
	for _, player := range that.Players {
		if player.Mark == mark {
			return player, true
		}
	}

	return nil, false
}

package service

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"

	"github.com/oxogame/tictactoe-backend/internal/engine"
	"github.com/oxogame/tictactoe-backend/internal/entity"
)

var (
	ErrBotNotFound      = errors.New("bot player not found")
	ErrNoAvailableMoves = errors.New("no available moves")
)

type BotService interface {
	MakeTurn(game *entity.Game) error
	RandomMarks() (engine.Mark, engine.Mark)
}

// botService picks bot moves. All randomness flows through the injected
// rng, so a seeded source makes whole games reproducible. The mutex
// guards the rng, which is not safe for concurrent use.
type botService struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewBotService(rng *rand.Rand) BotService {
	return &botService{
		rng: rng,
	}
}

// MakeTurn - plays the bot's move in the given game. The easy bot picks
// a uniformly random free cell; any other difficulty plays the full
// win, block, center, corner, side policy.
func (that *botService) MakeTurn(game *entity.Game) error {
	botPlayer, ok := game.BotPlayer()
	if !ok {
		return ErrBotNotFound
	}

	board := game.EngineState().Board

	that.mu.Lock()
	var cell int
	var found bool
	switch game.Difficulty {
	case engine.EasyDifficulty:
		cell, found = engine.RandomMove(that.rng, board)
	default:
		cell, found = engine.SelectMove(that.rng, board, botPlayer.Mark, botPlayer.Mark.Opponent())
	}
	that.mu.Unlock()

	if !found {
		return ErrNoAvailableMoves
	}

	if err := game.MakeTurn(botPlayer.Mark, cell); err != nil {
		return fmt.Errorf("bot failed to make turn: %w", err)
	}

	return nil
}

// RandomMarks - deals the marks for a bot game: the first mark goes to
// the human, the second to the bot.
func (that *botService) RandomMarks() (engine.Mark, engine.Mark) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.rng.Intn(2) == 0 {
		return engine.MarkX, engine.MarkO
	}

	return engine.MarkO, engine.MarkX
}

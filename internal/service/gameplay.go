package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/oxogame/tictactoe-backend/internal/apperror"
	"github.com/oxogame/tictactoe-backend/internal/engine"
	"github.com/oxogame/tictactoe-backend/internal/entity"
	"github.com/oxogame/tictactoe-backend/internal/repository"
)

// GamePlayService drives whole sessions: opening and joining games,
// playing turns with the bot's reply, restarting finished boards and
// tearing sessions down. It is the only writer of game state; per-game
// locks keep concurrent turns on one board serialized.
type GamePlayService interface {
	GetOrCreateGame(ctx context.Context, player *entity.Player, gameType string, difficulty engine.Difficulty) (*entity.Game, error)
	JoinGameByID(ctx context.Context, gameID, playerID string) (*entity.Game, error)
	CreateOrJoinPublicGame(ctx context.Context, playerID string) (*entity.Game, error)

	MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error)
	RestartGame(ctx context.Context, playerID string) (*entity.Game, error)

	GetGameByPlayerID(ctx context.Context, playerID string) (*entity.Game, error)
	CleanupGame(ctx context.Context, game *entity.Game)
}

type gamePlayService struct {
	logger *slog.Logger

	playerService PlayerService
	gameService   GameService
	botService    BotService
	userService   UserService

	locks *gameLocks
}

func NewGamePlayService(logger *slog.Logger, playerService PlayerService, gameService GameService, botService BotService, userService UserService) GamePlayService {
	return &gamePlayService{
		logger:        logger,
		playerService: playerService,
		gameService:   gameService,
		botService:    botService,
		userService:   userService,
		locks:         newGameLocks(),
	}
}

// MakeTurn - plays the given player's move. In bot games the bot
// answers within the same call, so the returned game carries both
// moves. Rejected moves surface their sentinel and leave the stored
// game untouched; a finishing move is persisted and recorded against
// the accounts of all authenticated players.
func (that *gamePlayService) MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error) {
	player, err := that.playerService.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID == "" {
		return nil, apperror.ErrNoActiveGames
	}

	unlock := that.locks.lock(player.GameID)
	defer unlock()

	game, err := that.gameService.GetGameByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if err = game.ConfirmOngoingState(); err != nil {
		return game, err
	}

	if err = game.MakeTurn(player.Mark, cell); err != nil {
		return game, fmt.Errorf("failed to make turn: %w", err)
	}

	if game.IsOngoing() && game.IsWithBot() {
		if err = that.botService.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if game.IsFinished() {
		that.recordResults(ctx, game)
	}

	return game, nil
}

// RestartGame - resets the player's game to the initial position with
// everyone keeping their seat and mark. A finished game can always be
// restarted; an unfinished one only against the bot, so one player
// cannot wipe a live board under a human opponent. When the bot holds
// X it opens the fresh board immediately.
func (that *gamePlayService) RestartGame(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.playerService.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID == "" {
		return nil, apperror.ErrNoActiveGames
	}

	unlock := that.locks.lock(player.GameID)
	defer unlock()

	game, err := that.gameService.GetGameByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if !game.IsFinished() && !game.IsWithBot() {
		return game, apperror.ErrGameNotFinished
	}

	game.Restart()

	if bot, ok := game.BotPlayer(); ok && bot.Mark == engine.MarkX {
		if err = that.botService.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make first turn: %w", err)
		}
	}

	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

func (that *gamePlayService) JoinGameByID(ctx context.Context, gameID, playerID string) (*entity.Game, error) {
	unlock := that.locks.lock(gameID)
	defer unlock()

	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	player, err := that.playerService.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID == game.ID {
		return game, nil
	}

	if len(game.Players) >= 2 {
		return nil, fmt.Errorf("%w: game id %s", apperror.ErrGameAlreadyExists, gameID)
	}

	player.GameID = game.ID
	player.Mark = engine.MarkO
	if err = that.playerService.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	game.Status = entity.StatusOngoing
	game.Players = append(game.Players, player)
	if err = that.gameService.UpdateGame(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	return game, nil
}

// CreateOrJoinPublicGame - seats the player in some waiting public
// game, or opens a fresh one when nobody is waiting.
func (that *gamePlayService) CreateOrJoinPublicGame(ctx context.Context, playerID string) (*entity.Game, error) {
	game, err := that.gameService.GetWaitingPublicGame(ctx)

	if errors.Is(err, repository.ErrGameNotFound) {
		player, playerErr := that.playerService.GetByID(ctx, playerID)
		if playerErr != nil {
			return nil, fmt.Errorf("failed to get player by id: %w", playerErr)
		}

		game, err = that.createGame(ctx, player, entity.PublicType, "")
		if err != nil {
			return nil, fmt.Errorf("failed to create public game: %w", err)
		}

		return game, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get waiting public game: %w", err)
	}

	return that.JoinGameByID(ctx, game.ID, playerID)
}

func (that *gamePlayService) GetOrCreateGame(ctx context.Context, player *entity.Player, gameType string, difficulty engine.Difficulty) (*entity.Game, error) {
	if player.GameID == "" {
		game, err := that.createGame(ctx, player, gameType, difficulty)
		if err != nil {
			return nil, fmt.Errorf("failed to create new game: %w", err)
		}

		return game, nil
	}

	game, err := that.gameService.GetGameByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

func (that *gamePlayService) GetGameByPlayerID(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.playerService.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID == "" {
		return nil, apperror.ErrNoActiveGames
	}

	game, err := that.gameService.GetGameByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return game, nil
}

func (that *gamePlayService) createGame(ctx context.Context, player *entity.Player, gameType string, difficulty engine.Difficulty) (*entity.Game, error) {
	game, updatedPlayer, err := that.gameService.CreateGame(ctx, player, gameType, difficulty)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	if err = that.playerService.CreateOrUpdate(ctx, updatedPlayer); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	if game.IsWithBot() {
		if err = that.addBotToGame(ctx, game); err != nil {
			return nil, fmt.Errorf("failed to add bot to game: %w", err)
		}
	}

	return game, nil
}

// addBotToGame - seats the bot, deals the marks at random and lets the
// bot open the game when it drew X.
func (that *gamePlayService) addBotToGame(ctx context.Context, game *entity.Game) error {
	playerMark, botMark := that.botService.RandomMarks()

	botPlayer := entity.NewBotPlayer(game.ID, botMark)

	game.Players = append(game.Players, botPlayer)
	game.Status = entity.StatusOngoing

	for _, player := range game.Players {
		if player.IsBot() {
			continue
		}

		player.Mark = playerMark
		if err := that.playerService.CreateOrUpdate(ctx, player); err != nil {
			return fmt.Errorf("failed to update player: %w", err)
		}
	}

	if err := that.playerService.CreateOrUpdate(ctx, botPlayer); err != nil {
		return fmt.Errorf("failed to update bot player: %w", err)
	}

	if botMark == engine.MarkX {
		if err := that.botService.MakeTurn(game); err != nil {
			return fmt.Errorf("bot failed to make first turn: %w", err)
		}
	}

	if err := that.gameService.UpdateGame(ctx, game); err != nil {
		return fmt.Errorf("failed to update game with bot: %w", err)
	}

	return nil
}

// CleanupGame - deletes the game and unseats its players. The marks are
// kept on the in-memory players so the caller can still broadcast who
// was who in the goodbye payload.
func (that *gamePlayService) CleanupGame(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "cleanupGame", "gameID", game.ID)

	if err := that.gameService.DeleteGame(ctx, game.ID); err != nil {
		log.Error("failed to delete game", "error", err)
	}

	for _, player := range game.Players {
		oldMark := player.Mark
		player.GameID = ""
		player.Mark = ""
		if err := that.playerService.CreateOrUpdate(ctx, player); err != nil {
			log.Error("failed to update", "player", player.ID, "error", err)
		}
		player.Mark = oldMark
	}

	that.locks.forget(game.ID)
}

// recordResults - writes a finished game into the totals of every
// authenticated player at the board.
func (that *gamePlayService) recordResults(ctx context.Context, game *entity.Game) {
	log := that.logger.With("method", "recordResults", "gameID", game.ID)

	for _, player := range game.Players {
		if player.Email == "" {
			continue
		}

		if err := that.userService.RecordGameResult(ctx, player.Email, game.Winner, player.Mark); err != nil {
			log.Error("failed to record game result", "player", player.ID, "error", err)
		}
	}
}

// gameLocks hands out one mutex per game ID so turns on the same board
// are serialized while different boards never contend.
type gameLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newGameLocks() *gameLocks {
	return &gameLocks{
		locks: make(map[string]*sync.Mutex),
	}
}

func (that *gameLocks) lock(gameID string) func() {
	that.mu.Lock()
	gameMutex, ok := that.locks[gameID]
	if !ok {
		gameMutex = &sync.Mutex{}
		that.locks[gameID] = gameMutex
	}
	that.mu.Unlock()

	gameMutex.Lock()

	return gameMutex.Unlock
}

func (that *gameLocks) forget(gameID string) {
	that.mu.Lock()
	delete(that.locks, gameID)
	that.mu.Unlock()
}

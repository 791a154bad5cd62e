package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/oxogame/tictactoe-backend/internal/apperror"
	"github.com/oxogame/tictactoe-backend/internal/engine"
	"github.com/oxogame/tictactoe-backend/internal/entity"
	"github.com/oxogame/tictactoe-backend/internal/repository"
	mockedService "github.com/oxogame/tictactoe-backend/mocks/service"
)

var (
	errPlayerGone  = errors.New("player gone")
	errGameGone    = errors.New("game gone")
	errStorageDown = errors.New("storage down")
)

type gamePlayMocks struct {
	player *mockedService.MockPlayerService
	game   *mockedService.MockGameService
	bot    *mockedService.MockBotService
	user   *mockedService.MockUserService
}

func newGamePlayService(t *testing.T) (GamePlayService, gamePlayMocks) {
	t.Helper()

	mocks := gamePlayMocks{
		player: mockedService.NewMockPlayerService(t),
		game:   mockedService.NewMockGameService(t),
		bot:    mockedService.NewMockBotService(t),
		user:   mockedService.NewMockUserService(t),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	gamePlay := NewGamePlayService(logger, mocks.player, mocks.game, mocks.bot, mocks.user)

	return gamePlay, mocks
}

func TestGamePlayService_MakeTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("Error if player cannot be loaded", func(t *testing.T) {
		// Given: A player repository that fails to load the player
		gamePlay, mocks := newGamePlayService(t)

		mocks.player.EXPECT().
			GetByID(ctx, "p1").
			Return((*entity.Player)(nil), errPlayerGone).
			Once()

		// When: The player tries to make a turn
		game, err := gamePlay.MakeTurn(ctx, "p1", 0)

		// Then: The error surfaces and no game is returned
		require.ErrorIs(t, err, errPlayerGone)
		assert.Nil(t, game)
	})

	t.Run("Error if player has no active game", func(t *testing.T) {
		// Given: A player who is not seated in any game
		gamePlay, mocks := newGamePlayService(t)

		mocks.player.EXPECT().
			GetByID(ctx, "p1").
			Return(&entity.Player{ID: "p1"}, nil).
			Once()

		// When: The player tries to make a turn
		game, err := gamePlay.MakeTurn(ctx, "p1", 0)

		// Then: The call is rejected with no active games
		require.ErrorIs(t, err, apperror.ErrNoActiveGames)
		assert.Nil(t, game)
	})

	t.Run("Error if game cannot be loaded", func(t *testing.T) {
		// Given: A seated player whose game is missing from storage
		gamePlay, mocks := newGamePlayService(t)

		mocks.player.EXPECT().
			GetByID(ctx, "p1").
			Return(&entity.Player{ID: "p1", GameID: "g1"}, nil).
			Once()

		mocks.game.EXPECT().
			GetGameByID(ctx, "g1").
			Return((*entity.Game)(nil), errGameGone).
			Once()

		// When: The player tries to make a turn
		game, err := gamePlay.MakeTurn(ctx, "p1", 0)

		// Then: The error surfaces and no game is returned
		require.ErrorIs(t, err, errGameGone)
		assert.Nil(t, game)
	})

	t.Run("Error if game has not started yet", func(t *testing.T) {
		// Given: A game still waiting for the second player
		gamePlay, mocks := newGamePlayService(t)

		waitingGame := entity.NewGame("g1", entity.PublicType)

		mocks.player.EXPECT().
			GetByID(ctx, "p1").
			Return(&entity.Player{ID: "p1", GameID: "g1", Mark: engine.MarkX}, nil).
			Once()

		mocks.game.EXPECT().
			GetGameByID(ctx, "g1").
			Return(waitingGame, nil).
			Once()

		// When: The seated player tries to move anyway
		game, err := gamePlay.MakeTurn(ctx, "p1", 0)

		// Then: The move is rejected and the waiting game is returned
		require.ErrorIs(t, err, apperror.ErrGameIsNotStarted)
		assert.Equal(t, waitingGame, game)
	})

	t.Run("Error if game is already finished", func(t *testing.T) {
		// Given: A finished game
		gamePlay, mocks := newGamePlayService(t)

		finishedGame := &entity.Game{
			ID:     "g1",
			Status: entity.StatusFinished,
			Winner: engine.MarkX,
		}

		mocks.player.EXPECT().
			GetByID(ctx, "p1").
			Return(&entity.Player{ID: "p1", GameID: "g1", Mark: engine.MarkO}, nil).
			Once()

		mocks.game.EXPECT().
			GetGameByID(ctx, "g1").
			Return(finishedGame, nil).
			Once()

		// When: The loser tries to squeeze in one more move
		game, err := gamePlay.MakeTurn(ctx, "p1", 5)

		// Then: The move is rejected and the finished game is returned
		require.ErrorIs(t, err, engine.ErrGameFinished)
		assert.Equal(t, finishedGame, game)
	})

	t.Run("Error if it is not the player's turn", func(t *testing.T) {
		// Given: An ongoing game where X is to move
		gamePlay, mocks := newGamePlayService(t)

		ongoingGame := &entity.Game{
			ID:     "g1",
			Status: entity.StatusOngoing,
			Turn:   engine.MarkX,
			Type:   entity.PrivateType,
		}

		mocks.player.EXPECT().
			GetByID(ctx, "p2").
			Return(&entity.Player{ID: "p2", GameID: "g1", Mark: engine.MarkO}, nil).
			Once()

		mocks.game.EXPECT().
			GetGameByID(ctx, "g1").
			Return(ongoingGame, nil).
			Once()

		// When: The O player moves out of turn
		game, err := gamePlay.MakeTurn(ctx, "p2", 4)

		// Then: The move is rejected and the board stays empty
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, engine.MarkEmpty, game.Board[4])
		assert.Equal(t, engine.MarkX, game.Turn)
	})

	t.Run("Error if the cell is already occupied", func(t *testing.T) {
		// Given: An ongoing game with the center already taken
		gamePlay, mocks := newGamePlayService(t)

		ongoingGame := &entity.Game{
			ID:     "g1",
			Status: entity.StatusOngoing,
			Board:  engine.Board{engine.MarkX, "", "", "", engine.MarkO, "", "", "", ""},
			Turn:   engine.MarkX,
			Type:   entity.PrivateType,
		}

		mocks.player.EXPECT().
			GetByID(ctx, "p1").
			Return(&entity.Player{ID: "p1", GameID: "g1", Mark: engine.MarkX}, nil).
			Once()

		mocks.game.EXPECT().
			GetGameByID(ctx, "g1").
			Return(ongoingGame, nil).
			Once()

		// When: X plays into the occupied center
		game, err := gamePlay.MakeTurn(ctx, "p1", 4)

		// Then: The move is rejected and the center still belongs to O
		require.ErrorIs(t, err, engine.ErrCellOccupied)
		assert.Equal(t, engine.MarkO, game.Board[4])
		assert.Equal(t, engine.MarkX, game.Turn)
	})

	t.Run("Successful turn in a two player game", func(t *testing.T) {
		// Given: A fresh ongoing game between two humans
		gamePlay, mocks := newGamePlayService(t)

		ongoingGame := &entity.Game{
			ID:     "g1",
			Status: entity.StatusOngoing,
			Turn:   engine.MarkX,
			Type:   entity.PrivateType,
		}

		mocks.player.EXPECT().
			GetByID(ctx, "p1").
			Return(&entity.Player{ID: "p1", GameID: "g1", Mark: engine.MarkX}, nil).
			Once()

		mocks.game.EXPECT().
			GetGameByID(ctx, "g1").
			Return(ongoingGame, nil).
			Once()

		mocks.game.EXPECT().
			UpdateGame(ctx, ongoingGame).
			Return(nil).
			Once()

		// When: X takes the center
		game, err := gamePlay.MakeTurn(ctx, "p1", 4)

		// Then: The board is updated and the turn passes to O
		require.NoError(t, err)
		assert.Equal(t, engine.MarkX, game.Board[4])
		assert.Equal(t, engine.MarkO, game.Turn)
		assert.Equal(t, entity.StatusOngoing, game.Status)
	})

	t.Run("Bot answers within the same turn", func(t *testing.T) {
		// Given: An ongoing bot game where the human holds X
		gamePlay, mocks := newGamePlayService(t)

		human := &entity.Player{ID: "p1", GameID: "g1", Mark: engine.MarkX}
		bot := entity.NewBotPlayer("g1", engine.MarkO)
		botGame := &entity.Game{
			ID:      "g1",
			Status:  entity.StatusOngoing,
			Turn:    engine.MarkX,
			Players: []*entity.Player{human, bot},
			Type:    entity.WithBotType,
		}

		mocks.player.EXPECT().
			GetByID(ctx, "p1").
			Return(human, nil).
			Once()

		mocks.game.EXPECT().
			GetGameByID(ctx, "g1").
			Return(botGame, nil).
			Once()

		mocks.bot.EXPECT().
			MakeTurn(botGame).
			RunAndReturn(func(game *entity.Game) error {
				return game.MakeTurn(engine.MarkO, 4)
			}).
			Once()

		mocks.game.EXPECT().
			UpdateGame(ctx, botGame).
			Return(nil).
			Once()

		// When: The human plays the corner
		game, err := gamePlay.MakeTurn(ctx, "p1", 0)

		// Then: Both moves land on the board and it is X to move again
		require.NoError(t, err)
		assert.Equal(t, engine.MarkX, game.Board[0])
		assert.Equal(t, engine.MarkO, game.Board[4])
		assert.Equal(t, engine.MarkX, game.Turn)
	})

	t.Run("Finishing move is recorded for signed in players", func(t *testing.T) {
		// Given: A game one move away from an X win, both humans signed in
		gamePlay, mocks := newGamePlayService(t)

		playerX := &entity.Player{ID: "p1", GameID: "g1", Mark: engine.MarkX, Email: "alice@example.com"}
		playerO := &entity.Player{ID: "p2", GameID: "g1", Mark: engine.MarkO, Email: "bob@example.com"}
		almostWon := &entity.Game{
			ID:     "g1",
			Status: entity.StatusOngoing,
			Board: engine.Board{
				engine.MarkX, engine.MarkX, "",
				engine.MarkO, engine.MarkO, "",
				"", "", "",
			},
			Turn:    engine.MarkX,
			Players: []*entity.Player{playerX, playerO},
			Type:    entity.PrivateType,
		}

		mocks.player.EXPECT().
			GetByID(ctx, "p1").
			Return(playerX, nil).
			Once()

		mocks.game.EXPECT().
			GetGameByID(ctx, "g1").
			Return(almostWon, nil).
			Once()

		mocks.game.EXPECT().
			UpdateGame(ctx, almostWon).
			Return(nil).
			Once()

		mocks.user.EXPECT().
			RecordGameResult(ctx, "alice@example.com", engine.MarkX, engine.MarkX).
			Return(nil).
			Once()

		mocks.user.EXPECT().
			RecordGameResult(ctx, "bob@example.com", engine.MarkX, engine.MarkO).
			Return(nil).
			Once()

		// When: X completes the top row
		game, err := gamePlay.MakeTurn(ctx, "p1", 2)

		// Then: The game is finished with X as the winner
		require.NoError(t, err)
		assert.True(t, game.IsFinished())
		assert.Equal(t, engine.MarkX, game.Winner)
		require.NotNil(t, game.WinLine)
		assert.Equal(t, engine.Line{0, 1, 2}, *game.WinLine)
	})

	t.Run("Anonymous players are skipped when recording", func(t *testing.T) {
		// Given: The same winning position, but only O is signed in
		gamePlay, mocks := newGamePlayService(t)

		playerX := &entity.Player{ID: "p1", GameID: "g1", Mark: engine.MarkX}
		playerO := &entity.Player{ID: "p2", GameID: "g1", Mark: engine.MarkO, Email: "bob@example.com"}
		almostWon := &entity.Game{
			ID:     "g1",
			Status: entity.StatusOngoing,
			Board: engine.Board{
				engine.MarkX, engine.MarkX, "",
				engine.MarkO, engine.MarkO, "",
				"", "", "",
			},
			Turn:    engine.MarkX,
			Players: []*entity.Player{playerX, playerO},
			Type:    entity.PrivateType,
		}

		mocks.player.EXPECT().
			GetByID(ctx, "p1").
			Return(playerX, nil).
			Once()

		mocks.game.EXPECT().
			GetGameByID(ctx, "g1").
			Return(almostWon, nil).
			Once()

		mocks.game.EXPECT().
			UpdateGame(ctx, almostWon).
			Return(nil).
			Once()

		mocks.user.EXPECT().
			RecordGameResult(ctx, "bob@example.com", engine.MarkX, engine.MarkO).
			Return(nil).
			Once()

		// When: X completes the top row
		game, err := gamePlay.MakeTurn(ctx, "p1", 2)

		// Then: Only the signed in player gets a result recorded
		require.NoError(t, err)
		assert.True(t, game.IsFinished())
	})

	t.Run("Storage failures on update are surfaced", func(t *testing.T) {
		// Given: A valid move but a storage that refuses the update
		gamePlay, mocks := newGamePlayService(t)

		ongoingGame := &entity.Game{
			ID:     "g1",
			Status: entity.StatusOngoing,
			Turn:   engine.MarkX,
			Type:   entity.PrivateType,
		}

		mocks.player.EXPECT().
			GetByID(ctx, "p1").
			Return(&entity.Player{ID: "p1", GameID: "g1", Mark: engine.MarkX}, nil).
			Once()

		mocks.game.EXPECT().
			GetGameByID(ctx, "g1").
			Return(ongoingGame, nil).
			Once()

		mocks.game.EXPECT().
			UpdateGame(ctx, ongoingGame).
			Return(errStorageDown).
			Once()

		// When: X makes an otherwise fine move
		game, err := gamePlay.MakeTurn(ctx, "p1", 4)

		// Then: The storage error surfaces
		require.ErrorIs(t, err, errStorageDown)
		assert.Nil(t, game)
	})
}

func TestGamePlayService_RestartGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Error if a live two player game is restarted", func(t *testing.T) {
		// Given: An ongoing game between two humans
		gamePlay, mocks := newGamePlayService(t)

		ongoingGame := &entity.Game{
			ID:     "g1",
			Status: entity.StatusOngoing,
			Turn:   engine.MarkO,
			Type:   entity.PrivateType,
		}

		mocks.player.EXPECT().
			GetByID(ctx, "p1").
			Return(&entity.Player{ID: "p1", GameID: "g1", Mark: engine.MarkX}, nil).
			Once()

		mocks.game.EXPECT().
			GetGameByID(ctx, "g1").
			Return(ongoingGame, nil).
			Once()

		// When: One player tries to wipe the live board
		game, err := gamePlay.RestartGame(ctx, "p1")

		// Then: The restart is rejected and the board survives
		require.ErrorIs(t, err, apperror.ErrGameNotFinished)
		assert.Equal(t, ongoingGame, game)
	})

	t.Run("Restarts a finished game keeping the seats", func(t *testing.T) {
		// Given: A finished game with a recorded winner
		gamePlay, mocks := newGamePlayService(t)

		playerX := &entity.Player{ID: "p1", GameID: "g1", Mark: engine.MarkX}
		playerO := &entity.Player{ID: "p2", GameID: "g1", Mark: engine.MarkO}
		winLine := engine.Line{0, 1, 2}
		finishedGame := &entity.Game{
			ID:     "g1",
			Status: entity.StatusFinished,
			Board: engine.Board{
				engine.MarkX, engine.MarkX, engine.MarkX,
				engine.MarkO, engine.MarkO, "",
				"", "", "",
			},
			Winner:  engine.MarkX,
			WinLine: &winLine,
			Players: []*entity.Player{playerX, playerO},
			Type:    entity.PrivateType,
		}

		mocks.player.EXPECT().
			GetByID(ctx, "p1").
			Return(playerX, nil).
			Once()

		mocks.game.EXPECT().
			GetGameByID(ctx, "g1").
			Return(finishedGame, nil).
			Once()

		mocks.game.EXPECT().
			UpdateGame(ctx, finishedGame).
			Return(nil).
			Once()

		// When: The loser asks for a rematch
		game, err := gamePlay.RestartGame(ctx, "p1")

		// Then: The board is fresh, X opens, and both seats survive
		require.NoError(t, err)
		assert.Equal(t, engine.Board{}, game.Board)
		assert.Equal(t, engine.MarkX, game.Turn)
		assert.Equal(t, entity.StatusOngoing, game.Status)
		assert.Equal(t, engine.MarkEmpty, game.Winner)
		assert.Nil(t, game.WinLine)
		assert.Equal(t, []*entity.Player{playerX, playerO}, game.Players)
	})

	t.Run("Bot game restarts mid game and the bot opens when it holds X", func(t *testing.T) {
		// Given: An ongoing bot game where the bot holds X
		gamePlay, mocks := newGamePlayService(t)

		human := &entity.Player{ID: "p1", GameID: "g1", Mark: engine.MarkO}
		bot := entity.NewBotPlayer("g1", engine.MarkX)
		botGame := &entity.Game{
			ID:     "g1",
			Status: entity.StatusOngoing,
			Board: engine.Board{
				engine.MarkX, "", "",
				"", engine.MarkO, "",
				"", "", "",
			},
			Turn:    engine.MarkX,
			Players: []*entity.Player{human, bot},
			Type:    entity.WithBotType,
		}

		mocks.player.EXPECT().
			GetByID(ctx, "p1").
			Return(human, nil).
			Once()

		mocks.game.EXPECT().
			GetGameByID(ctx, "g1").
			Return(botGame, nil).
			Once()

		mocks.bot.EXPECT().
			MakeTurn(botGame).
			RunAndReturn(func(game *entity.Game) error {
				return game.MakeTurn(engine.MarkX, 4)
			}).
			Once()

		mocks.game.EXPECT().
			UpdateGame(ctx, botGame).
			Return(nil).
			Once()

		// When: The human gives up the lost position
		game, err := gamePlay.RestartGame(ctx, "p1")

		// Then: The fresh board already carries the bot's opening move
		require.NoError(t, err)
		assert.Equal(t, engine.MarkX, game.Board[4])
		assert.Equal(t, engine.MarkO, game.Turn)
		assert.Equal(t, entity.StatusOngoing, game.Status)
	})
}

func TestGamePlayService_JoinGameByID(t *testing.T) {
	ctx := context.Background()

	t.Run("Error if the game is already full", func(t *testing.T) {
		// Given: A private game with both seats taken
		gamePlay, mocks := newGamePlayService(t)

		fullGame := &entity.Game{
			ID:     "g1",
			Status: entity.StatusOngoing,
			Players: []*entity.Player{
				{ID: "p1", GameID: "g1", Mark: engine.MarkX},
				{ID: "p2", GameID: "g1", Mark: engine.MarkO},
			},
			Type: entity.PrivateType,
		}

		mocks.game.EXPECT().
			GetGameByID(ctx, "g1").
			Return(fullGame, nil).
			Once()

		mocks.player.EXPECT().
			GetByID(ctx, "p3").
			Return(&entity.Player{ID: "p3"}, nil).
			Once()

		// When: A third player tries to join
		game, err := gamePlay.JoinGameByID(ctx, "g1", "p3")

		// Then: The join is rejected
		require.ErrorIs(t, err, apperror.ErrGameAlreadyExists)
		assert.Nil(t, game)
	})

	t.Run("Joins a waiting game as O", func(t *testing.T) {
		// Given: A waiting game with one seated player
		gamePlay, mocks := newGamePlayService(t)

		host := &entity.Player{ID: "p1", GameID: "g1", Mark: engine.MarkX}
		joiner := &entity.Player{ID: "p2"}
		waitingGame := &entity.Game{
			ID:      "g1",
			Status:  entity.StatusWaiting,
			Turn:    engine.MarkX,
			Players: []*entity.Player{host},
			Type:    entity.PrivateType,
		}

		mocks.game.EXPECT().
			GetGameByID(ctx, "g1").
			Return(waitingGame, nil).
			Once()

		mocks.player.EXPECT().
			GetByID(ctx, "p2").
			Return(joiner, nil).
			Once()

		mocks.player.EXPECT().
			CreateOrUpdate(ctx, joiner).
			Return(nil).
			Once()

		mocks.game.EXPECT().
			UpdateGame(ctx, waitingGame).
			Return(nil).
			Once()

		// When: The second player joins by game ID
		game, err := gamePlay.JoinGameByID(ctx, "g1", "p2")

		// Then: The joiner holds O and the game is on
		require.NoError(t, err)
		assert.Equal(t, engine.MarkO, joiner.Mark)
		assert.Equal(t, "g1", joiner.GameID)
		assert.Equal(t, entity.StatusOngoing, game.Status)
		assert.Len(t, game.Players, 2)
	})

	t.Run("Rejoining your own game returns it unchanged", func(t *testing.T) {
		// Given: A player already seated in the game
		gamePlay, mocks := newGamePlayService(t)

		host := &entity.Player{ID: "p1", GameID: "g1", Mark: engine.MarkX}
		waitingGame := &entity.Game{
			ID:      "g1",
			Status:  entity.StatusWaiting,
			Players: []*entity.Player{host},
			Type:    entity.PrivateType,
		}

		mocks.game.EXPECT().
			GetGameByID(ctx, "g1").
			Return(waitingGame, nil).
			Once()

		mocks.player.EXPECT().
			GetByID(ctx, "p1").
			Return(host, nil).
			Once()

		// When: The host joins their own game again
		game, err := gamePlay.JoinGameByID(ctx, "g1", "p1")

		// Then: Nothing changes
		require.NoError(t, err)
		assert.Equal(t, waitingGame, game)
		assert.Equal(t, entity.StatusWaiting, game.Status)
		assert.Len(t, game.Players, 1)
	})
}

func TestGamePlayService_CreateOrJoinPublicGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates a game when nobody is waiting", func(t *testing.T) {
		// Given: No waiting public games in storage
		gamePlay, mocks := newGamePlayService(t)

		player := &entity.Player{ID: "p1"}
		createdGame := &entity.Game{
			ID:      "100001",
			Status:  entity.StatusWaiting,
			Turn:    engine.MarkX,
			Players: []*entity.Player{player},
			Type:    entity.PublicType,
		}

		mocks.game.EXPECT().
			GetWaitingPublicGame(ctx).
			Return((*entity.Game)(nil), repository.ErrGameNotFound).
			Once()

		mocks.player.EXPECT().
			GetByID(ctx, "p1").
			Return(player, nil).
			Once()

		mocks.game.EXPECT().
			CreateGame(ctx, player, entity.PublicType, engine.Difficulty("")).
			Return(createdGame, player, nil).
			Once()

		mocks.player.EXPECT().
			CreateOrUpdate(ctx, player).
			Return(nil).
			Once()

		// When: The player looks for a public game
		game, err := gamePlay.CreateOrJoinPublicGame(ctx, "p1")

		// Then: A fresh waiting game is opened for them
		require.NoError(t, err)
		assert.Equal(t, createdGame, game)
		assert.Equal(t, entity.StatusWaiting, game.Status)
	})

	t.Run("Joins the waiting game when there is one", func(t *testing.T) {
		// Given: A public game already waiting for an opponent
		gamePlay, mocks := newGamePlayService(t)

		host := &entity.Player{ID: "p1", GameID: "g1", Mark: engine.MarkX}
		joiner := &entity.Player{ID: "p2"}
		waitingGame := &entity.Game{
			ID:      "g1",
			Status:  entity.StatusWaiting,
			Turn:    engine.MarkX,
			Players: []*entity.Player{host},
			Type:    entity.PublicType,
		}

		mocks.game.EXPECT().
			GetWaitingPublicGame(ctx).
			Return(waitingGame, nil).
			Once()

		mocks.game.EXPECT().
			GetGameByID(ctx, "g1").
			Return(waitingGame, nil).
			Once()

		mocks.player.EXPECT().
			GetByID(ctx, "p2").
			Return(joiner, nil).
			Once()

		mocks.player.EXPECT().
			CreateOrUpdate(ctx, joiner).
			Return(nil).
			Once()

		mocks.game.EXPECT().
			UpdateGame(ctx, waitingGame).
			Return(nil).
			Once()

		// When: A second player looks for a public game
		game, err := gamePlay.CreateOrJoinPublicGame(ctx, "p2")

		// Then: They are seated as O in the waiting game
		require.NoError(t, err)
		assert.Equal(t, engine.MarkO, joiner.Mark)
		assert.Equal(t, entity.StatusOngoing, game.Status)
	})
}

func TestGamePlayService_GetOrCreateGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the player's current game", func(t *testing.T) {
		// Given: A player already seated in an ongoing game
		gamePlay, mocks := newGamePlayService(t)

		player := &entity.Player{ID: "p1", GameID: "g5", Mark: engine.MarkX}
		existingGame := &entity.Game{ID: "g5", Status: entity.StatusOngoing}

		mocks.game.EXPECT().
			GetGameByID(ctx, "g5").
			Return(existingGame, nil).
			Once()

		// When: The player asks for their game
		game, err := gamePlay.GetOrCreateGame(ctx, player, entity.PrivateType, "")

		// Then: Their existing game comes back
		require.NoError(t, err)
		assert.Equal(t, existingGame, game)
	})

	t.Run("Creates a private game for a free player", func(t *testing.T) {
		// Given: A player not seated anywhere
		gamePlay, mocks := newGamePlayService(t)

		player := &entity.Player{ID: "p1"}
		createdGame := &entity.Game{
			ID:      "100002",
			Status:  entity.StatusWaiting,
			Turn:    engine.MarkX,
			Players: []*entity.Player{player},
			Type:    entity.PrivateType,
		}

		mocks.game.EXPECT().
			CreateGame(ctx, player, entity.PrivateType, engine.Difficulty("")).
			Return(createdGame, player, nil).
			Once()

		mocks.player.EXPECT().
			CreateOrUpdate(ctx, player).
			Return(nil).
			Once()

		// When: The player opens a private game
		game, err := gamePlay.GetOrCreateGame(ctx, player, entity.PrivateType, "")

		// Then: A waiting game is created without a bot
		require.NoError(t, err)
		assert.Equal(t, createdGame, game)
		assert.Len(t, game.Players, 1)
	})

	t.Run("Seats a bot in a bot game", func(t *testing.T) {
		// Given: A free player opening a hard bot game, human drawing X
		gamePlay, mocks := newGamePlayService(t)

		player := &entity.Player{ID: "p1"}
		createdGame := &entity.Game{
			ID:         "100003",
			Status:     entity.StatusWaiting,
			Turn:       engine.MarkX,
			Players:    []*entity.Player{player},
			Type:       entity.WithBotType,
			Difficulty: engine.HardDifficulty,
		}

		mocks.game.EXPECT().
			CreateGame(ctx, player, entity.WithBotType, engine.HardDifficulty).
			Return(createdGame, player, nil).
			Once()

		mocks.bot.EXPECT().
			RandomMarks().
			Return(engine.MarkX, engine.MarkO).
			Once()

		mocks.player.EXPECT().
			CreateOrUpdate(ctx, player).
			Return(nil).
			Twice()

		mocks.player.EXPECT().
			CreateOrUpdate(ctx, mock.MatchedBy(func(p *entity.Player) bool {
				return p.IsBot() && p.Mark == engine.MarkO
			})).
			Return(nil).
			Once()

		mocks.game.EXPECT().
			UpdateGame(ctx, createdGame).
			Return(nil).
			Once()

		// When: The player opens the bot game
		game, err := gamePlay.GetOrCreateGame(ctx, player, entity.WithBotType, engine.HardDifficulty)

		// Then: The bot is seated, the game is on, and X is the human
		require.NoError(t, err)
		assert.Equal(t, entity.StatusOngoing, game.Status)
		require.Len(t, game.Players, 2)
		assert.Equal(t, engine.MarkX, player.Mark)

		botPlayer, ok := game.BotPlayer()
		require.True(t, ok)
		assert.Equal(t, engine.MarkO, botPlayer.Mark)
	})

	t.Run("Bot opens the game when it draws X", func(t *testing.T) {
		// Given: A free player opening a bot game, bot drawing X
		gamePlay, mocks := newGamePlayService(t)

		player := &entity.Player{ID: "p1"}
		createdGame := &entity.Game{
			ID:         "100004",
			Status:     entity.StatusWaiting,
			Turn:       engine.MarkX,
			Players:    []*entity.Player{player},
			Type:       entity.WithBotType,
			Difficulty: engine.HardDifficulty,
		}

		mocks.game.EXPECT().
			CreateGame(ctx, player, entity.WithBotType, engine.HardDifficulty).
			Return(createdGame, player, nil).
			Once()

		mocks.bot.EXPECT().
			RandomMarks().
			Return(engine.MarkO, engine.MarkX).
			Once()

		mocks.player.EXPECT().
			CreateOrUpdate(ctx, player).
			Return(nil).
			Twice()

		mocks.player.EXPECT().
			CreateOrUpdate(ctx, mock.MatchedBy(func(p *entity.Player) bool {
				return p.IsBot() && p.Mark == engine.MarkX
			})).
			Return(nil).
			Once()

		mocks.bot.EXPECT().
			MakeTurn(createdGame).
			RunAndReturn(func(game *entity.Game) error {
				return game.MakeTurn(engine.MarkX, 4)
			}).
			Once()

		mocks.game.EXPECT().
			UpdateGame(ctx, createdGame).
			Return(nil).
			Once()

		// When: The player opens the bot game
		game, err := gamePlay.GetOrCreateGame(ctx, player, entity.WithBotType, engine.HardDifficulty)

		// Then: The bot already made the opening move and O is the human
		require.NoError(t, err)
		assert.Equal(t, engine.MarkX, game.Board[4])
		assert.Equal(t, engine.MarkO, game.Turn)
		assert.Equal(t, engine.MarkO, player.Mark)
	})
}

func TestGamePlayService_GetGameByPlayerID(t *testing.T) {
	ctx := context.Background()

	t.Run("Error when the player sits in no game", func(t *testing.T) {
		// Given: A player without a game
		gamePlay, mocks := newGamePlayService(t)

		mocks.player.EXPECT().
			GetByID(ctx, "p1").
			Return(&entity.Player{ID: "p1"}, nil).
			Once()

		// When: Asking for their game
		game, err := gamePlay.GetGameByPlayerID(ctx, "p1")

		// Then: There is nothing to return
		require.ErrorIs(t, err, apperror.ErrNoActiveGames)
		assert.Nil(t, game)
	})

	t.Run("Returns the game the player sits in", func(t *testing.T) {
		// Given: A seated player
		gamePlay, mocks := newGamePlayService(t)

		existingGame := &entity.Game{ID: "g1", Status: entity.StatusOngoing}

		mocks.player.EXPECT().
			GetByID(ctx, "p1").
			Return(&entity.Player{ID: "p1", GameID: "g1"}, nil).
			Once()

		mocks.game.EXPECT().
			GetGameByID(ctx, "g1").
			Return(existingGame, nil).
			Once()

		// When: Asking for their game
		game, err := gamePlay.GetGameByPlayerID(ctx, "p1")

		// Then: The game comes back
		require.NoError(t, err)
		assert.Equal(t, existingGame, game)
	})
}

func TestGamePlayService_CleanupGame(t *testing.T) {
	ctx := context.Background()

	t.Run("Deletes the game and frees the seats", func(t *testing.T) {
		// Given: A finished game with two seated players
		gamePlay, mocks := newGamePlayService(t)

		playerX := &entity.Player{ID: "p1", GameID: "g1", Mark: engine.MarkX}
		playerO := &entity.Player{ID: "p2", GameID: "g1", Mark: engine.MarkO}
		finishedGame := &entity.Game{
			ID:      "g1",
			Status:  entity.StatusFinished,
			Players: []*entity.Player{playerX, playerO},
		}

		mocks.game.EXPECT().
			DeleteGame(ctx, "g1").
			Return(nil).
			Once()

		mocks.player.EXPECT().
			CreateOrUpdate(ctx, mock.MatchedBy(func(p *entity.Player) bool {
				return p.GameID == "" && p.Mark == engine.MarkEmpty
			})).
			Return(nil).
			Times(2)

		// When: The game is cleaned up
		gamePlay.CleanupGame(ctx, finishedGame)

		// Then: The in-memory players keep their marks for the goodbye payload
		assert.Equal(t, engine.MarkX, playerX.Mark)
		assert.Equal(t, engine.MarkO, playerO.Mark)
		assert.Empty(t, playerX.GameID)
		assert.Empty(t, playerO.GameID)
	})

	t.Run("Keeps freeing seats when the delete fails", func(t *testing.T) {
		// Given: A game whose delete fails in storage
		gamePlay, mocks := newGamePlayService(t)

		player := &entity.Player{ID: "p1", GameID: "g1", Mark: engine.MarkX}
		brokenGame := &entity.Game{
			ID:      "g1",
			Status:  entity.StatusFinished,
			Players: []*entity.Player{player},
		}

		mocks.game.EXPECT().
			DeleteGame(ctx, "g1").
			Return(errStorageDown).
			Once()

		mocks.player.EXPECT().
			CreateOrUpdate(ctx, mock.MatchedBy(func(p *entity.Player) bool {
				return p.GameID == "" && p.Mark == engine.MarkEmpty
			})).
			Return(nil).
			Once()

		// When: The game is cleaned up anyway
		gamePlay.CleanupGame(ctx, brokenGame)

		// Then: The player is still unseated
		assert.Empty(t, player.GameID)
	})
}

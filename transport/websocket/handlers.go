package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/oxogame/tictactoe-backend/internal/apperror"
	"github.com/oxogame/tictactoe-backend/internal/engine"
	"github.com/oxogame/tictactoe-backend/internal/entity"
)

const (
	gameStatusOpponentOut  = "opponent_out"
	gameStatusLeave        = "leave"
	payloadActionGameLeave = "game:leave"
)

func (that *Server) handleConnect(ctx context.Context, msg *Message, cl *client) error {
	log := that.logger.With("method", "handleConnect")

	var payloadReq Payload

	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payloadReq.Player == nil {
		log.Error("Player is missing in payload")
		return that.sendErrorResponse(cl, msg.Action, "Player is required")
	}

	player, err := that.players.GetOrCreate(ctx, payloadReq.Player.ID)
	if err != nil {
		log.Error("failed to create or get player", "error", err)

		return that.sendErrorResponse(cl, msg.Action, "failed to create a new player")
	}

	// The auth cookie outranks whatever account the stored player was
	// linked to before.
	if cl.email != "" && player.Email != cl.email {
		player.Email = cl.email
		if err = that.players.CreateOrUpdate(ctx, player); err != nil {
			log.Error("failed to link player to account", "error", err)
		}
	}

	that.registerConnection(player.ID, cl)

	if player.GameID != "" {
		return that.handleExistingGame(ctx, msg, cl, player)
	}

	payloadResp := Payload{
		Player: player,
	}

	if err = that.sendMessage(cl, msg.Action, payloadResp); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("successfully connected player", "playerID", player.ID)

	return nil
}

// handleExistingGame - reconnects a player straight into their running
// game.
func (that *Server) handleExistingGame(ctx context.Context, msg *Message, cl *client, player *entity.Player) error {
	log := that.logger.With("method", "handleExistingGame")

	game, err := that.gamePlay.GetGameByPlayerID(ctx, player.ID)
	if err != nil {
		log.Error("failed to get game", "gameID", player.GameID, "error", err)
		return that.sendErrorResponse(cl, msg.Action, "failed to get the game")
	}

	payload := Payload{
		Player: player,
		Game:   maskGameDetails(game),
	}

	return that.sendMessage(cl, msg.Action, payload)
}

func (that *Server) handleNewGame(ctx context.Context, msg *Message, cl *client) error {
	log := that.logger.With("method", "handleNewGame")

	var payloadReq Payload

	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payloadReq.Player == nil {
		log.Error("Player is missing in payload")
		return that.sendErrorResponse(cl, msg.Action, "Player is required")
	}

	if payloadReq.Game == nil {
		log.Error("Game is missing in payload")
		return that.sendErrorResponse(cl, msg.Action, "Game is required")
	}

	player, err := that.players.GetOrCreate(ctx, payloadReq.Player.ID)
	if err != nil {
		log.Error("failed to create or get player", "error", err)

		return that.sendErrorResponse(cl, msg.Action, "failed to create a new player")
	}

	that.registerConnection(player.ID, cl)

	var game *entity.Game

	if payloadReq.Game.IsPublic() {
		game, err = that.gamePlay.CreateOrJoinPublicGame(ctx, player.ID)
		if err != nil {
			log.Error("failed to create or join to public game", "error", err)
			return that.sendErrorResponse(cl, msg.Action, "failed to create or join to public game")
		}
	} else {
		game, err = that.gamePlay.GetOrCreateGame(ctx, player, payloadReq.Game.Type, payloadReq.Game.Difficulty)
		if err != nil {
			log.Error("failed to create or get game", "error", err)
			return that.sendErrorResponse(cl, msg.Action, "failed to create a new game")
		}
	}

	that.broadcastGame(msg.Action, game)

	log.Info("player is in game", "playerID", player.ID, "gameID", game.ID)

	return nil
}

func (that *Server) handleJoinGame(ctx context.Context, msg *Message, cl *client) error {
	log := that.logger.With("method", "handleJoinGame")

	var payloadReq Payload

	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payloadReq.Player == nil {
		log.Error("Player is missing in payload")
		return that.sendErrorResponse(cl, msg.Action, "Player is required")
	}

	if payloadReq.Game == nil {
		log.Error("Game is missing in payload")
		return that.sendErrorResponse(cl, msg.Action, "Game is required")
	}

	player, err := that.players.GetOrCreate(ctx, payloadReq.Player.ID)
	if err != nil {
		log.Error("failed to create or get player", "error", err)

		return that.sendErrorResponse(cl, msg.Action, "failed to create a new player")
	}

	that.registerConnection(player.ID, cl)

	log = log.With("playerID", player.ID)

	game, err := that.gamePlay.JoinGameByID(ctx, payloadReq.Game.ID, player.ID)
	if err != nil {
		log.Error("failed to join game", "error", err)
		return that.sendErrorResponse(cl, msg.Action, fmt.Sprintf("game %s: %v", payloadReq.Game.ID, err))
	}

	that.broadcastGame(msg.Action, game)

	log.Info("player joined game", "gameID", game.ID)

	return nil
}

func (that *Server) handleGameTurn(ctx context.Context, msg *Message, cl *client) error {
	log := that.logger.With("method", "handleGameTurn")

	var payloadReq Payload

	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payloadReq.Player == nil {
		log.Error("Player is missing in payload")
		return that.sendErrorResponse(cl, msg.Action, "Player is required")
	}

	if payloadReq.Cell == nil {
		log.Error("Cell is missing in payload")
		return that.sendErrorResponse(cl, msg.Action, "Cell is required")
	}

	that.registerConnection(payloadReq.Player.ID, cl)

	log = log.With("playerID", payloadReq.Player.ID)

	game, err := that.gamePlay.MakeTurn(ctx, payloadReq.Player.ID, *payloadReq.Cell)

	switch {
	case errors.Is(err, apperror.ErrNoActiveGames):
		return that.sendErrorResponse(cl, msg.Action, err.Error())
	case errors.Is(err, apperror.ErrGameIsNotStarted),
		errors.Is(err, engine.ErrGameFinished),
		errors.Is(err, apperror.ErrNotYourTurn),
		errors.Is(err, engine.ErrInvalidCell),
		errors.Is(err, engine.ErrCellOccupied):
		return that.sendErrorResponse(cl, msg.Action, fmt.Sprintf("game %s: %v", game.ID, err))
	case err != nil:
		log.Error("failed to make turn", "error", err)
		return that.sendErrorResponse(cl, msg.Action, "failed to make turn")
	}

	that.broadcastGame(msg.Action, game)

	log.Info("player made a turn", "gameID", game.ID, "cell", *payloadReq.Cell)

	return nil
}

func (that *Server) handleGameRestart(ctx context.Context, msg *Message, cl *client) error {
	log := that.logger.With("method", "handleGameRestart")

	var payloadReq Payload

	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payloadReq.Player == nil {
		log.Error("Player is missing in payload")
		return that.sendErrorResponse(cl, msg.Action, "Player is required")
	}

	that.registerConnection(payloadReq.Player.ID, cl)

	log = log.With("playerID", payloadReq.Player.ID)

	game, err := that.gamePlay.RestartGame(ctx, payloadReq.Player.ID)

	switch {
	case errors.Is(err, apperror.ErrNoActiveGames):
		return that.sendErrorResponse(cl, msg.Action, err.Error())
	case errors.Is(err, apperror.ErrGameNotFinished):
		return that.sendErrorResponse(cl, msg.Action, fmt.Sprintf("game %s: %v", game.ID, err))
	case err != nil:
		log.Error("failed to restart game", "error", err)
		return that.sendErrorResponse(cl, msg.Action, "failed to restart game")
	}

	that.broadcastGame(msg.Action, game)

	log.Info("game restarted", "gameID", game.ID)

	return nil
}

func (that *Server) handleGameLeave(ctx context.Context, msg *Message, cl *client) error {
	log := that.logger.With("method", "handleGameLeave")

	var payloadReq Payload

	if err := json.Unmarshal(msg.Payload, &payloadReq); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payloadReq.Player == nil {
		log.Error("Player is missing in payload")
		return that.sendErrorResponse(cl, msg.Action, "Player is required")
	}

	that.registerConnection(payloadReq.Player.ID, cl)

	game, err := that.gamePlay.GetGameByPlayerID(ctx, payloadReq.Player.ID)
	if err != nil {
		log.Error("failed to find game", "error", err)
		return that.sendErrorResponse(cl, msg.Action, "game doesn't exist")
	}

	that.gamePlay.CleanupGame(ctx, game)

	for _, player := range game.Players {
		if player.IsBot() {
			continue
		}

		conn, ok := that.connection(player.ID)
		if !ok {
			log.Info("failed to find connection", "playerID", player.ID)
			continue
		}

		payloadResp := Payload{
			Player: player,
			Game:   maskGameDetails(game),
		}
		payloadResp.Game.Status = gameStatusLeave

		if err = that.sendMessage(conn, payloadActionGameLeave, payloadResp); err != nil {
			log.Error("failed to send game update", "error", err)
		}
	}

	log.Info("player left the game", "playerID", payloadReq.Player.ID, "gameID", game.ID)

	return nil
}

// handleOpponentOut - tears down the game of a player who never came
// back and tells the remaining players the opponent is gone.
func (that *Server) handleOpponentOut(ctx context.Context, playerID string) {
	log := that.logger.With("method", "handleOpponentOut", "playerID", playerID)

	game, err := that.gamePlay.GetGameByPlayerID(ctx, playerID)
	if errors.Is(err, apperror.ErrNoActiveGames) {
		return
	}
	if err != nil {
		log.Error("failed to get game by player ID", "error", err)
		return
	}

	that.gamePlay.CleanupGame(ctx, game)

	for _, player := range game.Players {
		if player.ID == playerID || player.IsBot() {
			continue
		}

		opponentConn, ok := that.connection(player.ID)
		if !ok {
			log.Warn("opponent connection not found", "playerID", player.ID)
			continue
		}

		payloadResp := Payload{
			Player: player,
			Game:   maskGameDetails(game),
		}
		payloadResp.Game.Status = gameStatusOpponentOut

		if err = that.sendMessage(opponentConn, payloadActionGameLeave, payloadResp); err != nil {
			log.Error("failed to send game:leave message", "playerID", player.ID, "error", err)
		}
	}

	log.Info("handled opponent out", "gameID", game.ID)
}

// broadcastGame - sends the masked game to every connected human at the
// board, each packaged with their own player.
func (that *Server) broadcastGame(action string, game *entity.Game) {
	log := that.logger.With("method", "broadcastGame", "gameID", game.ID)

	for _, player := range game.Players {
		if player.IsBot() {
			continue
		}

		conn, ok := that.connection(player.ID)
		if !ok {
			log.Warn("connection not found for player", "playerID", player.ID)
			continue
		}

		payloadResp := Payload{
			Player: player,
			Game:   maskGameDetails(game),
		}

		if err := that.sendMessage(conn, action, payloadResp); err != nil {
			log.Error("failed to send game update", "error", err)
		}
	}
}

// maskGameDetails - hides the seating details from the game payload. It
// works on a copy so the stored game is left intact.
func maskGameDetails(game *entity.Game) *entity.Game {
	masked := *game
	masked.Players = nil
	masked.Type = ""

	return &masked
}

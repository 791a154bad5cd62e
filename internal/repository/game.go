package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/oxogame/tictactoe-backend/internal/entity"
)

var ErrGameNotFound = errors.New("game not found")

const gameKeyPrefix = "game:"

type GameRepository interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	GetWaitingPublicGame(ctx context.Context) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbGame struct {
	client *redis.Client
}

func NewGameRepository(client *redis.Client) GameRepository {
	return &dbGame{
		client: client,
	}
}

func (that *dbGame) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	gameKey := gameKeyPrefix + game.ID
	err = that.client.Set(ctx, gameKey, gameJSON, 0).Err()
	if err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	gameKey := gameKeyPrefix + id

	response, err := that.client.Get(ctx, gameKey).Result()

	if errors.Is(err, redis.Nil) {
		return &entity.Game{}, ErrGameNotFound
	}

	if err != nil {
		return &entity.Game{}, fmt.Errorf("failed to get game by ID: %w", err)
	}

	var existingGame entity.Game
	if err = json.Unmarshal([]byte(response), &existingGame); err != nil {
		return &entity.Game{}, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &existingGame, nil
}

// GetWaitingPublicGame - scans the stored games for a public one that
// still waits for an opponent. ErrGameNotFound means the caller should
// open a new public game instead.
func (that *dbGame) GetWaitingPublicGame(ctx context.Context) (*entity.Game, error) {
	iter := that.client.Scan(ctx, 0, gameKeyPrefix+"*", 0).Iterator()

	for iter.Next(ctx) {
		response, err := that.client.Get(ctx, iter.Val()).Result()
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			return &entity.Game{}, fmt.Errorf("failed to get game by key: %w", err)
		}

		var game entity.Game
		if err = json.Unmarshal([]byte(response), &game); err != nil {
			return &entity.Game{}, fmt.Errorf("failed to unmarshal game: %w", err)
		}

		if game.IsPublic() && game.IsWaiting() {
			return &game, nil
		}
	}

	if err := iter.Err(); err != nil {
		return &entity.Game{}, fmt.Errorf("failed to scan games: %w", err)
	}

	return &entity.Game{}, ErrGameNotFound
}

func (that *dbGame) DeleteByID(ctx context.Context, id string) error {
	gameKey := gameKeyPrefix + id

	deleted, err := that.client.Del(ctx, gameKey).Result()
	if err != nil {
		return fmt.Errorf("failed to delete game by ID: %w", err)
	}

	if deleted == 0 {
		return ErrGameNotFound
	}

	return nil
}

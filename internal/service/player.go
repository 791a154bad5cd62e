package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/oxogame/tictactoe-backend/internal/entity"
	"github.com/oxogame/tictactoe-backend/internal/pkg"
	"github.com/oxogame/tictactoe-backend/internal/repository"
)

type PlayerService interface {
	GetOrCreate(ctx context.Context, id string) (*entity.Player, error)
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
}

type playerRepo interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
}

type playerService struct {
	playerRepo playerRepo
}

func NewPlayerService(playerRepo playerRepo) PlayerService {
	return &playerService{
		playerRepo: playerRepo,
	}
}

// GetOrCreate - returns the player stored under the given ID. An empty
// or unknown ID yields a brand new player with a fresh session ID.
func (that *playerService) GetOrCreate(ctx context.Context, id string) (*entity.Player, error) {
	if id == "" {
		id = pkg.GenerateNewSessionID()
	}

	existingPlayer, err := that.playerRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrPlayerNotFound) {
		player := &entity.Player{ID: id}
		if err = that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
			return nil, fmt.Errorf("create player %w", err)
		}

		return player, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get player by id %w", err)
	}

	return existingPlayer, nil
}

func (that *playerService) CreateOrUpdate(ctx context.Context, player *entity.Player) error {
	if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return fmt.Errorf("create player %w", err)
	}

	return nil
}

func (that *playerService) GetByID(ctx context.Context, id string) (*entity.Player, error) {
	existingPlayer, err := that.playerRepo.GetByID(ctx, id)
	if err != nil {
		return &entity.Player{}, fmt.Errorf("get player by id %w", err)
	}

	return existingPlayer, nil
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/oxogame/tictactoe-backend/internal/apperror"
	"github.com/oxogame/tictactoe-backend/internal/engine"
	"github.com/oxogame/tictactoe-backend/internal/entity"
)

type UserService interface {
	Update(ctx context.Context, user *entity.User) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	RecordGameResult(ctx context.Context, email string, winner, own engine.Mark) error
}

type userRepo interface {
	Save(ctx context.Context, user *entity.User) error
	Find(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}

type userService struct {
	userRepo userRepo
}

func NewUserService(userRepo userRepo) UserService {
	return &userService{
		userRepo: userRepo,
	}
}

// Update - upserts the account as reported by the identity provider and
// returns the stored user with its totals.
func (that *userService) Update(ctx context.Context, user *entity.User) (*entity.User, error) {
	if err := that.userRepo.Save(ctx, user); err != nil {
		return nil, fmt.Errorf("could not save user: %w", err)
	}

	stored, err := that.userRepo.Find(ctx, user.Email)
	if err != nil {
		return nil, fmt.Errorf("could not reload user: %w", err)
	}

	return stored, nil
}

func (that *userService) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	user, err := that.userRepo.Find(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("could not get user by email: %w", err)
	}

	return user, nil
}

// RecordGameResult - folds one finished game into the account's totals.
// Unknown accounts are skipped silently: anonymous players simply have
// nothing to record against.
func (that *userService) RecordGameResult(ctx context.Context, email string, winner, own engine.Mark) error {
	user, err := that.userRepo.Find(ctx, email)
	if errors.Is(err, apperror.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not get user by email: %w", err)
	}

	user.RecordResult(winner, own)

	if err = that.userRepo.Update(ctx, user); err != nil {
		return fmt.Errorf("could not update user totals: %w", err)
	}

	return nil
}

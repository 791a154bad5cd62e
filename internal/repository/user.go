package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/oxogame/tictactoe-backend/internal/apperror"
	"github.com/oxogame/tictactoe-backend/internal/entity"
)

type UserRepository interface {
	Save(ctx context.Context, user *entity.User) error
	Find(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
}

type userRepository struct {
	conn *sql.DB
}

func NewUserRepository(conn *sql.DB) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (that *userRepository) Save(ctx context.Context, user *entity.User) error {
	query := `INSERT INTO users (email, name) VALUES (?, ?)
		ON CONFLICT(email) DO UPDATE SET name = excluded.name`

	_, err := that.conn.ExecContext(ctx, query, user.Email, user.Name)
	if err != nil {
		return fmt.Errorf("can't save user: %w", err)
	}

	return nil
}

func (that *userRepository) Find(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT email, name, wins, losses, draws FROM users WHERE email = ?`

	var user entity.User

	err := that.conn.QueryRowContext(ctx, query, email).
		Scan(&user.Email, &user.Name, &user.Wins, &user.Losses, &user.Draws)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("can't find user: %w", err)
	}

	return &user, nil
}

func (that *userRepository) Update(ctx context.Context, user *entity.User) error {
	query := `UPDATE users SET name = ?, wins = ?, losses = ?, draws = ? WHERE email = ?`

	result, err := that.conn.ExecContext(ctx, query, user.Name, user.Wins, user.Losses, user.Draws, user.Email)
	if err != nil {
		return fmt.Errorf("can't update user: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("can't check updated rows: %w", err)
	}

	if affected == 0 {
		return apperror.ErrNotFound
	}

	return nil
}

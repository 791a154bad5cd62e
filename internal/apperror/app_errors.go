package apperror

import "errors"

var (
	ErrGameIsNotStarted  = errors.New("game is not started")
	ErrGameNotFinished   = errors.New("game is not finished yet")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrNoActiveGames     = errors.New("no active games")
	ErrGameAlreadyExists = errors.New("game already exists")
	ErrNotFound          = errors.New("not found")
	ErrNotSavedUser      = errors.New("user is not saved")
)

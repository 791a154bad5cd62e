package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/oxogame/tictactoe-backend/internal/apperror"
)

const bearerPrefix = "Bearer "

type ProfileHandler interface {
	Profile(ctx echo.Context) error
}

type profileHandler struct {
	logger *slog.Logger

	auth authService
	user userService
}

func NewProfile(logger *slog.Logger, auth authService, user userService) ProfileHandler {
	return &profileHandler{
		logger: logger,
		auth:   auth,
		user:   user,
	}
}

// Profile - returns the account and its game totals for the token the
// request carries, either as the auth cookie or as a bearer token.
func (that *profileHandler) Profile(ctx echo.Context) error {
	log := that.logger.With("method", "Profile")

	tokenString := tokenFromRequest(ctx)
	if tokenString == "" {
		return ctx.String(http.StatusUnauthorized, "Missing auth token")
	}

	email, err := that.auth.ParseJWTToken(tokenString)
	if err != nil {
		log.Warn("rejected auth token", "error", err)
		return ctx.String(http.StatusUnauthorized, "Invalid auth token")
	}

	user, err := that.user.GetUserByEmail(ctx.Request().Context(), email)
	if errors.Is(err, apperror.ErrNotFound) {
		return ctx.String(http.StatusNotFound, "User not found")
	}
	if err != nil {
		log.Error("failed to get user", "error", err)
		return ctx.String(http.StatusInternalServerError, "Internal Server Error")
	}

	return ctx.JSON(http.StatusOK, user)
}

func tokenFromRequest(ctx echo.Context) string {
	if cookie, err := ctx.Cookie(authCookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	authHeader := ctx.Request().Header.Get(echo.HeaderAuthorization)
	if strings.HasPrefix(authHeader, bearerPrefix) {
		return strings.TrimPrefix(authHeader, bearerPrefix)
	}

	return ""
}

package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/oxogame/tictactoe-backend/internal/config"
)

// Server is the HTTP side of the backend: health check, Google OAuth
// and the profile endpoint. Gameplay itself never passes through here.
type Server struct {
	logger *slog.Logger
	echo   *echo.Echo
}

func New(logger *slog.Logger, conf *config.Config, auth AuthHandler, profile ProfileHandler) *Server {
	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	// the OAuth state nonce lives in this session between login and
	// callback.
	router.Use(session.Middleware(sessions.NewCookieStore([]byte(conf.SessionSecretKey))))

	router.GET("/ping", pingHandler)

	router.GET("/auth/google/login", auth.GoogleLogin)
	router.GET("/auth/google/callback", auth.GoogleCallback)

	router.GET("/profile", profile.Profile)

	return &Server{
		logger: logger,
		echo:   router,
	}
}

// Start - starts the HTTP server and blocks until it stops.
func (that *Server) Start(port string) error {
	if err := that.echo.Start(":" + port); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown - drains in-flight requests and closes the listener.
func (that *Server) Shutdown(ctx context.Context) error {
	if err := that.echo.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}

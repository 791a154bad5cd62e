package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oxogame/tictactoe-backend/internal/config"
	"github.com/oxogame/tictactoe-backend/internal/repository"
	"github.com/oxogame/tictactoe-backend/internal/repository/storage"
	"github.com/oxogame/tictactoe-backend/internal/service"
	"github.com/oxogame/tictactoe-backend/transport/rest"
	"github.com/oxogame/tictactoe-backend/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

const shutdownTimeout = 5 * time.Second

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if closeErr := redisStorage.Close(); closeErr != nil {
			log.Error("could not close redis storage", "error", closeErr)
		}
	}()

	sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
	if err != nil {
		return fmt.Errorf("could not open sqlite storage: %w", err)
	}

	defer func() {
		if closeErr := sqliteStorage.Close(); closeErr != nil {
			log.Error("could not close sqlite storage", "error", closeErr)
		}
	}()

	if err = sqliteStorage.Init(ctx); err != nil {
		return fmt.Errorf("could not init sqlite storage: %w", err)
	}

	playerRepo := repository.NewPlayerRepository(redisStorage.Connection)
	gameRepo := repository.NewGameRepository(redisStorage.Connection)
	userRepo := repository.NewUserRepository(sqliteStorage.Connection)

	playerService := service.NewPlayerService(playerRepo)
	gameService := service.NewGameService(gameRepo)
	userService := service.NewUserService(userRepo)
	authService := service.NewAuthService(conf.JWTSecretKey)
	botService := service.NewBotService(newBotRand(conf.Bot.Seed))
	gamePlayService := service.NewGamePlayService(logger, playerService, gameService, botService, userService)

	restServer := rest.New(logger, conf,
		rest.NewAuth(logger, conf, authService, userService),
		rest.NewProfile(logger, authService, userService),
	)

	wsServer := websocket.New(logger, gamePlayService, playerService, authService)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := restServer.Start(conf.HTTPPort); httpErr != nil {
			httpErrCh <- httpErr
		}
	}()

	// run WebSocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		shutdown(log, restServer, wsServer)

		return nil
	}
}

func shutdown(log *slog.Logger, restServer *rest.Server, wsServer *websocket.Server) {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := restServer.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown HTTP server", "error", err)
	}

	if err := wsServer.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown WebSocket server", "error", err)
	}
}

// newBotRand - builds the bot's randomness source. A zero seed means
// every start is different; a fixed seed replays the same games.
func newBotRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return rand.New(rand.NewSource(seed))
}

package websocket

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/oxogame/tictactoe-backend/internal/engine"
	"github.com/oxogame/tictactoe-backend/internal/entity"
	"github.com/oxogame/tictactoe-backend/internal/pkg"
)

const (
	sessionCookieName = "user_session"
	authCookieName    = "auth_token"

	// disconnectGrace is how long a player may stay offline before their
	// game is torn down and the opponent is told they are gone.
	disconnectGrace  = 30 * time.Second
	disconnectSweep  = 5 * time.Second
	readHeaderWindow = 10 * time.Second
)

type gamePlayService interface {
	GetOrCreateGame(ctx context.Context, player *entity.Player, gameType string, difficulty engine.Difficulty) (*entity.Game, error)
	JoinGameByID(ctx context.Context, gameID, playerID string) (*entity.Game, error)
	CreateOrJoinPublicGame(ctx context.Context, playerID string) (*entity.Game, error)

	MakeTurn(ctx context.Context, playerID string, cell int) (*entity.Game, error)
	RestartGame(ctx context.Context, playerID string) (*entity.Game, error)

	GetGameByPlayerID(ctx context.Context, playerID string) (*entity.Game, error)
	CleanupGame(ctx context.Context, game *entity.Game)
}

type playerService interface {
	GetOrCreate(ctx context.Context, id string) (*entity.Player, error)
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
}

type authService interface {
	ParseJWTToken(tokenString string) (string, error)
}

// client is one upgraded connection. Writes go through the mutex because
// a broadcast and a direct reply may race for the same socket.
type client struct {
	conn *websocket.Conn

	mu sync.Mutex

	playerID string
	email    string
}

func (that *client) send(message *Message) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.conn.WriteJSON(message); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

type Server struct {
	logger *slog.Logger

	gamePlay gamePlayService
	players  playerService
	auth     authService

	upgrader websocket.Upgrader

	connectionsMutex sync.RWMutex
	connections      map[string]*client

	disconnectedMutex   sync.Mutex
	disconnectedPlayers map[string]time.Time

	handlers map[string]func(ctx context.Context, message *Message, cl *client) error

	httpServer *http.Server
}

func New(logger *slog.Logger, gamePlay gamePlayService, players playerService, auth authService) *Server {
	server := &Server{
		logger: logger,

		gamePlay: gamePlay,
		players:  players,
		auth:     auth,

		upgrader: websocket.Upgrader{
			CheckOrigin: func(_ *http.Request) bool { return true },
		},

		connections:         make(map[string]*client),
		disconnectedPlayers: make(map[string]time.Time),

		handlers: make(map[string]func(context.Context, *Message, *client) error),
	}

	server.handlers["connect"] = server.handleConnect
	server.handlers["game:new"] = server.handleNewGame
	server.handlers["game:join"] = server.handleJoinGame
	server.handlers["game:turn"] = server.handleGameTurn
	server.handlers["game:restart"] = server.handleGameRestart
	server.handlers["game:leave"] = server.handleGameLeave

	return server
}

// Start - starts the WebSocket server and blocks until it stops.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", func(writer http.ResponseWriter, req *http.Request) {
		that.upgradeToWebSocket(ctx, writer, req)
	})

	that.httpServer = &http.Server{
		Addr:              ":" + port,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderWindow,
	}

	go that.monitorDisconnectedPlayers(ctx)

	if err := that.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown - stops accepting upgrades and closes the listener.
func (that *Server) Shutdown(ctx context.Context) error {
	if that.httpServer == nil {
		return nil
	}

	if err := that.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}

// upgradeToWebSocket - upgrades the connection and serves its messages.
// The auth cookie, when present and valid, pins the player to their
// account for stats recording.
func (that *Server) upgradeToWebSocket(ctx context.Context, writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeToWebSocket")

	responseHeader := that.sessionCookieHeader(req)

	conn, err := that.upgrader.Upgrade(writer, req, responseHeader)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()

	cl := &client{conn: conn}

	if cookie, cookieErr := req.Cookie(authCookieName); cookieErr == nil {
		email, parseErr := that.auth.ParseJWTToken(cookie.Value)
		if parseErr != nil {
			log.Warn("ignoring invalid auth token", "error", parseErr)
		} else {
			cl.email = email
		}
	}

	log.Info("WebSocket connection established")

	that.handleMessages(ctx, cl)
}

// handleMessages - processes messages from the client until it hangs up.
func (that *Server) handleMessages(ctx context.Context, cl *client) {
	log := that.logger.With("method", "handleMessages")

	for {
		_, reqBody, err := cl.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				log.Error("error reading message", "error", err)
			}

			that.handleDisconnect(cl)

			return
		}

		var message Message
		if err = json.Unmarshal(reqBody, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Error("unknown action", "action", message.Action)

			if err = that.sendErrorResponse(cl, message.Action, "unknown action"); err != nil {
				log.Error("failed to send error response", "error", err)
			}

			continue
		}

		if err = handler(ctx, &message, cl); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}

// sessionCookieHeader - hands browser clients a session cookie with the
// upgrade response when they do not carry one yet.
func (that *Server) sessionCookieHeader(req *http.Request) http.Header {
	log := that.logger.With("method", "sessionCookieHeader")

	if cookie, err := req.Cookie(sessionCookieName); err == nil {
		log.Info("session cookie found", "cookie", cookie.Value)
		return nil
	}

	cookie := &http.Cookie{
		Name:    sessionCookieName,
		Value:   pkg.GenerateNewSessionID(),
		Expires: time.Now().Add(24 * time.Hour),
		Path:    "/ws",
	}

	log.Info("session cookie not found, new one created", "cookie", cookie.Value)

	return http.Header{"Set-Cookie": []string{cookie.String()}}
}

// registerConnection - binds the player ID to this connection, replacing
// any previous connection of the same player.
func (that *Server) registerConnection(playerID string, cl *client) {
	that.connectionsMutex.Lock()
	cl.playerID = playerID
	that.connections[playerID] = cl
	that.connectionsMutex.Unlock()

	that.playerReconnected(playerID)
}

func (that *Server) connection(playerID string) (*client, bool) {
	that.connectionsMutex.RLock()
	defer that.connectionsMutex.RUnlock()

	cl, ok := that.connections[playerID]

	return cl, ok
}

func (that *Server) handleDisconnect(cl *client) {
	log := that.logger.With("method", "handleDisconnect")

	that.connectionsMutex.Lock()
	playerID := cl.playerID
	if playerID == "" {
		that.connectionsMutex.Unlock()
		return
	}

	// A reconnect may already have replaced this connection.
	if current, ok := that.connections[playerID]; ok && current == cl {
		delete(that.connections, playerID)
	}
	that.connectionsMutex.Unlock()

	log.Info("player disconnected", "playerID", playerID)

	that.disconnectedMutex.Lock()
	that.disconnectedPlayers[playerID] = time.Now()
	that.disconnectedMutex.Unlock()
}

func (that *Server) playerReconnected(playerID string) {
	that.disconnectedMutex.Lock()
	defer that.disconnectedMutex.Unlock()
	delete(that.disconnectedPlayers, playerID)
}

// monitorDisconnectedPlayers - sweeps for players who never came back
// and tears their games down once the grace period runs out.
func (that *Server) monitorDisconnectedPlayers(ctx context.Context) {
	ticker := time.NewTicker(disconnectSweep)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			var overdue []string

			that.disconnectedMutex.Lock()
			for playerID, since := range that.disconnectedPlayers {
				if time.Since(since) > disconnectGrace {
					overdue = append(overdue, playerID)
					delete(that.disconnectedPlayers, playerID)
				}
			}
			that.disconnectedMutex.Unlock()

			for _, playerID := range overdue {
				that.handleOpponentOut(ctx, playerID)
			}
		}
	}
}

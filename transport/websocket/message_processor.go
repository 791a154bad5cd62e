package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/oxogame/tictactoe-backend/internal/entity"
)

// Message is the envelope of everything crossing the socket, in both
// directions: an action name plus an action-specific payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload carries the action arguments and responses. Cell is a pointer
// so a turn on cell 0 survives the presence check.
type Payload struct {
	Player *entity.Player `json:"player,omitempty"`
	Game   *entity.Game   `json:"game,omitempty"`
	Cell   *int           `json:"cell,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func (that *Server) sendMessage(cl *client, action string, payload Payload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err = cl.send(&Message{Action: action, Payload: raw}); err != nil {
		return fmt.Errorf("failed to send message: %w", err)
	}

	return nil
}

func (that *Server) sendErrorResponse(cl *client, action, errorMsg string) error {
	payload := Payload{Error: errorMsg}
	if err := that.sendMessage(cl, action, payload); err != nil {
		return fmt.Errorf("failed to send error response: %w", err)
	}

	return nil
}

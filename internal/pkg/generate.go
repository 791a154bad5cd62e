package pkg

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

const gameIDSpan = 900000

// GenerateGameID - returns a short numeric code players can share to
// invite an opponent into their game.
func GenerateGameID() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(gameIDSpan))
	if err != nil {
		return "", fmt.Errorf("failed to generate game id: %w", err)
	}

	return fmt.Sprintf("%d", n.Int64()+100000), nil
}

// GenerateNewSessionID - generates a new unique sessionID.
func GenerateNewSessionID() string {
	return uuid.NewString()
}

// GenerateStateToken - generates an opaque nonce for the OAuth state
// round trip.
func GenerateStateToken() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "error-generating-state-token"
	}

	return base64.RawURLEncoding.EncodeToString(b)
}

package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/oxogame/tictactoe-backend/internal/pkg"
)

var ErrInvalidToken = errors.New("invalid auth token")

const tokenTTL = 24 * time.Hour

type AuthService interface {
	GenerateJWTToken(email string) (string, error)
	ParseJWTToken(tokenString string) (string, error)
	GenerateStateOauthSession(ctx echo.Context) (string, error)
}

type authService struct {
	secretKey string
}

func NewAuthService(secretKey string) AuthService {
	return &authService{
		secretKey: secretKey,
	}
}

func (that *authService) GenerateJWTToken(email string) (string, error) {
	claims := jwt.MapClaims{}
	claims["email"] = email
	claims["exp"] = time.Now().Add(tokenTTL).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	tokenString, err := token.SignedString([]byte(that.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, nil
}

// ParseJWTToken - validates a token and returns the email it was issued
// for.
func (that *authService) ParseJWTToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("%w: unexpected signing method %v", ErrInvalidToken, token.Header["alg"])
		}

		return []byte(that.secretKey), nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return "", ErrInvalidToken
	}

	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", ErrInvalidToken
	}

	return email, nil
}

// GenerateStateOauthSession - puts a fresh OAuth state nonce into the
// caller's session and returns it for the redirect URL.
func (that *authService) GenerateStateOauthSession(ctx echo.Context) (string, error) {
	userSession, err := session.Get("session", ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get session: %w", err)
	}

	state := pkg.GenerateStateToken()

	userSession.Values["state"] = state
	userSession.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   int(tokenTTL.Seconds()),
		HttpOnly: true,
	}

	if err = userSession.Save(ctx.Request(), ctx.Response()); err != nil {
		return "", fmt.Errorf("failed to save session: %w", err)
	}

	return state, nil
}

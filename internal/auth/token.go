package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/redmonkez12/go-auth-api/internal/config"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrExpiredToken  = errors.New("token has expired")
	ErrMissingSecret = errors.New("token signing secret is not configured")
)

// TokenClaims are the identity claims carried by an access token.
type TokenClaims struct {
	UserID    string    `json:"sub"`
	Email     string    `json:"email"`
	IssuedAt  time.Time `json:"iat"`
	ExpiresAt time.Time `json:"exp"`
}

// NewTokenService builds the TokenService selected by cfg.TokenFormat.
func NewTokenService(cfg config.AuthConfig) (TokenService, error) {
	switch cfg.TokenFormat {
	case config.TokenFormatJWT, "":
		return NewJWTService([]byte(cfg.JWTSecret)), nil
	case config.TokenFormatPaseto:
		svc, err := NewPasetoService([]byte(cfg.JWTSecret))
		if err != nil {
			return nil, fmt.Errorf("failed to initialize PASETO service: %w", err)
		}
		return svc, nil
	default:
		return nil, fmt.Errorf("unsupported token format %q", cfg.TokenFormat)
	}
}

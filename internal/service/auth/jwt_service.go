package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JWTService issues and validates the two token kinds the API uses:
// short-lived access tokens for request authentication and longer-lived
// refresh tokens for obtaining new token pairs.
type JWTService interface {
	// GenerateToken signs an access token for the given user.
	GenerateToken(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateToken parses and verifies an access token, returning its
	// claims. Failures map to the sentinel errors in this package
	// (ErrExpiredToken, ErrInvalidToken, ErrWrongTokenType).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)

	// GenerateRefreshToken signs a refresh token for the given user.
	GenerateRefreshToken(ctx context.Context, userID uuid.UUID) (string, error)

	// ValidateRefreshToken parses and verifies a refresh token,
	// returning its claims. An access token presented here fails with
	// ErrWrongTokenType.
	ValidateRefreshToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the decoded content of a token issued by this service.
type Claims struct {
	// UserID identifies the user the token was issued for.
	UserID uuid.UUID `json:"uid,omitempty"`

	// TokenType is "access" or "refresh". Validation rejects a token
	// presented to the wrong endpoint kind.
	TokenType string `json:"type,omitempty"`

	// Registered JWT claims carried through from the signed token.
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}

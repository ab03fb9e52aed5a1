package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the identity assertion carried by an access token.
type Claims struct {
	UserID uuid.UUID `json:"userId"`
	Email  string    `json:"email"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed access tokens.
type TokenService interface {
	// Issue mints a token for the user that expires after the configured TTL.
	Issue(userID uuid.UUID, email string) (token string, expiresAt time.Time, err error)

	// Verify returns the claims of a valid token, or domainerrors.ErrTokenExpired /
	// domainerrors.ErrTokenInvalid.
	Verify(token string) (*Claims, error)

	// TTL returns the lifetime of issued tokens.
	TTL() time.Duration
}

// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"moodify/config"
	domainerrors "moodify/internal/domain/errors"
	"moodify/internal/domain/service"
	"moodify/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const defaultAccessTTL = 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
// An empty secret is a startup error; there is no default key.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg == nil || cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return newJWTService([]byte(cfg.JWT.Secret), cfg.JWT.TTL, time.Now), nil
}

func newJWTService(secret []byte, ttl time.Duration, now func() time.Time) *jwtService {
	if ttl <= 0 {
		ttl = defaultAccessTTL
	}

	return &jwtService{
		secret: secret,
		ttl:    ttl,
		now:    now,
	}
}

// Issue signs a token carrying the user's id and email.
func (s *jwtService) Issue(userID uuid.UUID, email string) (string, time.Time, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)

	claims := service.Claims{
		UserID: userID,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign access token")
	}

	return token, expiresAt, nil
}

// Verify parses the token, accepting only HMAC signatures made with our secret.
func (s *jwtService) Verify(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}

			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domainerrors.ErrTokenExpired.WithCause(err)
		}

		return nil, domainerrors.ErrTokenInvalid.WithCause(err)
	}

	if !token.Valid || claims.UserID == uuid.Nil {
		return nil, domainerrors.ErrTokenInvalid.WrapMessage("token carries no user id")
	}

	return claims, nil
}

// TTL returns the configured access token lifetime.
func (s *jwtService) TTL() time.Duration {
	return s.ttl
}

package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/user/taskflow-go/apperror"
	"github.com/user/taskflow-go/config"
)

// Claims is the payload of an identity token.
// The user id travels in the `id` claim; `exp` is always set.
type Claims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// TokenVerifier is what the Gate needs from a token service.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// TokenService issues and verifies signed identity tokens.
// It holds no per-token state; the secret and TTL are fixed at construction.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewTokenService creates a TokenService from the auth configuration.
// An empty secret or non-positive TTL is a configuration error.
func NewTokenService(cfg *config.AuthConfig) (*TokenService, error) {
	if cfg == nil || cfg.JWTSecret == "" {
		return nil, apperror.NewConfigError("JWT secret must not be empty", nil)
	}
	if cfg.TokenTTL <= 0 {
		return nil, apperror.NewConfigError("JWT token TTL must be positive", nil)
	}
	return &TokenService{
		secret: []byte(cfg.JWTSecret),
		ttl:    cfg.TokenTTL,
		now:    time.Now,
	}, nil
}

// Issue signs a token for userID that expires after the configured TTL.
func (s *TokenService) Issue(userID string) (string, error) {
	now := s.now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify checks the token's signature and expiry and returns the user id it carries.
// The error is always one of ErrTokenInvalid, ErrTokenExpired or ErrSignatureMismatch.
func (s *TokenService) Verify(tokenString string) (string, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims,
		func(token *jwt.Token) (interface{}, error) {
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return "", ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return "", ErrSignatureMismatch
		default:
			return "", ErrTokenInvalid
		}
	}

	if claims.UserID == "" {
		return "", ErrTokenInvalid
	}
	return claims.UserID, nil
}

package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/skisyula/jobify-be/internal/apperr"
)

// Claims defines the JWT claims structure.
type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// TokenService issues and verifies signed, time-limited identity tokens.
// Tokens are self-contained: verification is a signature and expiry check,
// no database lookup. The flip side is that issued tokens cannot be
// revoked before they expire.
type TokenService struct {
	secret   []byte
	lifetime time.Duration
}

// NewTokenService creates a TokenService with the given signing secret and
// token lifetime.
func NewTokenService(secret string, lifetime time.Duration) *TokenService {
	return &TokenService{secret: []byte(secret), lifetime: lifetime}
}

// Issue creates a signed token for the given user ID, expiring after the
// configured lifetime.
func (ts *TokenService) Issue(userID string) (string, error) {
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ts.lifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(ts.secret)
}

// Verify parses and validates a token string and returns the embedded user
// ID. Malformed, tampered and expired tokens all fail the same way.
func (ts *TokenService) Verify(tokenStr string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return ts.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return "", apperr.Auth("Authentication Invalid")
	}
	if !token.Valid {
		return "", apperr.Auth("Authentication Invalid")
	}
	return claims.UserID, nil
}

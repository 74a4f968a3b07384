package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"overlysocial/internal/model"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// TokenService signs and validates session handles. A token only carries a
// session ID so stateless HTTP requests can rebind to their Redis session;
// there are no user accounts behind it.
type TokenService struct {
	secret []byte
}

// NewTokenService creates a new token service.
func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// IssueSessionToken signs a token for a session ID.
func (s *TokenService) IssueSessionToken(sessionID string) (string, error) {
	claims := &model.SessionClaims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
			// No expiry: the Redis TTL bounds the session's lifetime.
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateSessionToken validates a session token and returns its claims.
func (s *TokenService) ValidateSessionToken(tokenString string) (*model.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.SessionClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"storefront/internal/domain/service"
)

// tokenInspector is a concrete implementation of the TokenInspector interface
// for JWT-shaped bearer tokens. The client never holds signing secrets, so it
// only reads claims and leaves signature verification to the backend.
type tokenInspector struct {
	parser *jwt.Parser
	now    func() time.Time
}

// NewTokenInspector is the constructor for tokenInspector.
func NewTokenInspector() service.TokenInspector {
	return &tokenInspector{
		parser: jwt.NewParser(),
		now:    time.Now,
	}
}

// Expired reports whether the token carries an exp claim in the past. Tokens
// that are not JWTs, or carry no exp claim, are never reported as expired;
// the backend decides their fate on the first authenticated request.
func (s *tokenInspector) Expired(tokenString string) bool {
	token, _, err := s.parser.ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return false
	}

	expiry, err := token.Claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return false
	}

	return expiry.Before(s.now())
}

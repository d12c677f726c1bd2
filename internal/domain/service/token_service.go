package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims defines the custom claims carried by session tokens.
type SessionClaims struct {
	UserUID string
	Email   string
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateSessionToken creates a new session token for a verified identity.
	GenerateSessionToken(userUID, email string) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*SessionClaims, error)

	// GetSessionDuration returns the configured lifetime of session tokens.
	GetSessionDuration() time.Duration
}

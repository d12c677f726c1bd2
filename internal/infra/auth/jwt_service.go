// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"loja/config"
	"loja/internal/domain/service"
)

const tokenTypeSession = "session"

// Default session lifetime when none is configured.
const defaultSessionTTL = 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret string        // Secret key for signing session tokens.
	sessionTTL   time.Duration // Time-to-live for session tokens.
}

// sessionTokenClaims is the wire form of the claims carried by session tokens.
type sessionTokenClaims struct {
	Email string `json:"email,omitempty"`
	Type  string `json:"type"`
	jwt.RegisteredClaims
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	ttl := cfg.SecretKey.SessionDuration
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}

	return &jwtService{
		accessSecret: cfg.SecretKey.Access,
		sessionTTL:   ttl,
	}, nil
}

// GenerateSessionToken creates a new session token for a verified identity.
func (s *jwtService) GenerateSessionToken(userUID, email string) (string, error) {
	now := time.Now()
	claims := sessionTokenClaims{
		Email: email,
		Type:  tokenTypeSession,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userUID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.accessSecret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// ValidateToken checks the validity of a token string.
func (s *jwtService) ValidateToken(tokenString string) (*service.SessionClaims, error) {
	claims := new(sessionTokenClaims)
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.accessSecret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token structure")
	}
	if !token.Valid {
		return nil, errors.New("token is not valid")
	}
	if claims.Type != tokenTypeSession {
		return nil, errors.Errorf("unexpected token type: %s", claims.Type)
	}

	return &service.SessionClaims{
		UserUID:          claims.Subject,
		Email:            claims.Email,
		RegisteredClaims: claims.RegisteredClaims,
	}, nil
}

// GetSessionDuration returns the configured lifetime of session tokens.
func (s *jwtService) GetSessionDuration() time.Duration {
	return s.sessionTTL
}

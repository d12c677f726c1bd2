// Package usecase defines the application's use case interfaces and their
// input/output types.
package usecase

import "context"

// Session is the result of exchanging a provider ID token for an API session.
type Session struct {
	Token       string `json:"token"`
	ExpiresIn   int64  `json:"expires_in"` // Lifetime in seconds.
	UID         string `json:"uid"`
	Email       string `json:"email,omitempty"`
	DisplayName string `json:"display_name,omitempty"`
}

// AuthUsecase defines the interface for session management use cases
type AuthUsecase interface {
	// CreateSession verifies a provider-issued ID token and issues an API
	// session token for the asserted identity.
	CreateSession(ctx context.Context, idToken string) (*Session, error)
}

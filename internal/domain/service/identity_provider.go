package service

import "context"

// Identity holds the verified identity of an authenticated user.
type Identity struct {
	UID         string
	Email       string
	DisplayName string
}

// IdentityProvider verifies identity tokens issued by the external
// authentication provider.
type IdentityProvider interface {
	// VerifyIDToken validates the provider-issued ID token and returns
	// the identity it asserts.
	VerifyIDToken(ctx context.Context, idToken string) (*Identity, error)
}

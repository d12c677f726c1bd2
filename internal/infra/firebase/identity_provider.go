package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"

	"loja/internal/domain/service"
)

// identityProvider implements the IdentityProvider interface on top of
// Firebase Authentication ID tokens.
type identityProvider struct {
	client *auth.Client
}

// NewIdentityProvider is the constructor for identityProvider.
func NewIdentityProvider(client *auth.Client) service.IdentityProvider {
	return &identityProvider{client: client}
}

// VerifyIDToken validates the Firebase-issued ID token and returns the
// identity it asserts.
func (p *identityProvider) VerifyIDToken(ctx context.Context, idToken string) (*service.Identity, error) {
	token, err := p.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify ID token")
	}

	identity := &service.Identity{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		identity.Email = email
	}
	if name, ok := token.Claims["name"].(string); ok {
		identity.DisplayName = name
	}

	return identity, nil
}

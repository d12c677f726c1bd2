package impl

import (
	"context"

	domainerrors "loja/internal/domain/errors"
	"loja/internal/domain/service"
	"loja/internal/usecase"
)

type authService struct {
	identity service.IdentityProvider
	tokens   service.TokenService
}

// NewAuthService creates a new auth service instance
func NewAuthService(identity service.IdentityProvider, tokens service.TokenService) usecase.AuthUsecase {
	return &authService{
		identity: identity,
		tokens:   tokens,
	}
}

// CreateSession verifies a provider-issued ID token and issues an API session
// token for the asserted identity.
func (s *authService) CreateSession(ctx context.Context, idToken string) (*usecase.Session, error) {
	identity, err := s.identity.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, domainerrors.ErrIdentityTokenInvalid
	}

	token, err := s.tokens.GenerateSessionToken(identity.UID, identity.Email)
	if err != nil {
		return nil, domainerrors.ErrInternalError.WrapMessage("failed to issue session token")
	}

	return &usecase.Session{
		Token:       token,
		ExpiresIn:   int64(s.tokens.GetSessionDuration().Seconds()),
		UID:         identity.UID,
		Email:       identity.Email,
		DisplayName: identity.DisplayName,
	}, nil
}

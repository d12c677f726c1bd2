package middleware

import (
	"strings"

	domainerrors "loja/internal/domain/errors"
	"loja/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// ContextKeyUserUID is the echo context key holding the authenticated owner UID.
const ContextKeyUserUID = "userUID"

// AuthMiddleware validates session tokens and scopes requests to their owner.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer session token and sets the owner UID on
// the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrSessionTokenInvalid.WithDetails("authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrSessionTokenInvalid.WithDetails("authorization header must carry a bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return domainerrors.ErrSessionTokenInvalid
		}

		if claims.UserUID == "" {
			return domainerrors.ErrSessionTokenInvalid.WithDetails("token carries no subject")
		}

		c.Set(ContextKeyUserUID, claims.UserUID)

		return next(c)
	}
}

package handler

import (
	"log/slog"
	"net/http"

	"loja/internal/delivery/http/response"
	"loja/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for session handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{uc: uc, logger: logger}
}

type createSessionInput struct {
	IDToken string `json:"idToken" validate:"required"`
}

// CreateSession exchanges a provider-issued ID token for an API session token.
func (h *AuthHandler) CreateSession(c echo.Context) error {
	var input createSessionInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid session input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	session, err := h.uc.CreateSession(c.Request().Context(), input.IDToken)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, session, "Session created successfully")
}

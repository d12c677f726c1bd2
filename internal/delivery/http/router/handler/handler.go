// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"loja/internal/delivery/http/middleware"
	"loja/internal/delivery/http/response"
	domainerrors "loja/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// passphraseInput carries the admin passphrase confirming a sensitive action.
type passphraseInput struct {
	Passphrase string `json:"senha"`
}

// ownerUID extracts the authenticated owner UID set by the auth middleware.
func ownerUID(c echo.Context) (string, error) {
	uid, ok := c.Get(middleware.ContextKeyUserUID).(string)
	if !ok || uid == "" {
		return "", domainerrors.ErrSessionTokenInvalid
	}

	return uid, nil
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}

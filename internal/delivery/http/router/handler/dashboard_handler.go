package handler

import (
	"log/slog"
	"net/http"

	"loja/internal/delivery/http/response"
	"loja/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// DashboardHandler holds dependencies for the live dashboard handler.
type DashboardHandler struct {
	uc     usecase.DashboardUsecase
	logger *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler, injected by Fx.
func NewDashboardHandler(uc usecase.DashboardUsecase, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, logger: logger}
}

// Summary returns the owner's aggregated dashboard.
func (h *DashboardHandler) Summary(c echo.Context) error {
	uid, err := ownerUID(c)
	if err != nil {
		return err
	}

	summary, err := h.uc.Summary(c.Request().Context(), uid)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, summary, "Dashboard summary retrieved successfully")
}

package handler

import (
	"log/slog"
	"net/http"

	"loja/internal/delivery/http/response"
	"loja/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StockReportHandler holds dependencies for the stock movement report handlers.
type StockReportHandler struct {
	uc     usecase.StockReportUsecase
	logger *slog.Logger
}

// NewStockReportHandler is the constructor for StockReportHandler, injected by Fx.
func NewStockReportHandler(uc usecase.StockReportUsecase, logger *slog.Logger) *StockReportHandler {
	return &StockReportHandler{uc: uc, logger: logger}
}

// EstimateStock projects a SKU's quantity after a hypothetical movement.
func (h *StockReportHandler) EstimateStock(c echo.Context) error {
	uid, err := ownerUID(c)
	if err != nil {
		return err
	}

	var input usecase.StockEstimateInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid estimate input")
	}

	estimate, err := h.uc.EstimateStock(c.Request().Context(), uid, c.Param("skuId"), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, estimate, "Stock estimate computed successfully")
}

// RegisterMovement records a counted stock movement for a SKU.
func (h *StockReportHandler) RegisterMovement(c echo.Context) error {
	uid, err := ownerUID(c)
	if err != nil {
		return err
	}

	var input usecase.RegisterMovementInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid movement input")
	}

	movement, err := h.uc.RegisterMovement(c.Request().Context(), uid, c.Param("skuId"), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, movement, "Stock movement registered successfully")
}

// ListMovements returns a SKU's movement log, newest first.
func (h *StockReportHandler) ListMovements(c echo.Context) error {
	uid, err := ownerUID(c)
	if err != nil {
		return err
	}

	movements, err := h.uc.ListMovements(c.Request().Context(), uid, c.Param("skuId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, movements, "Stock movements retrieved successfully")
}

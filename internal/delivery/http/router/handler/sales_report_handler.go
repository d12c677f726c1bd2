package handler

import (
	"log/slog"
	"net/http"

	"loja/internal/delivery/http/response"
	"loja/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SalesReportHandler holds dependencies for the margin report handlers.
type SalesReportHandler struct {
	uc     usecase.SalesReportUsecase
	logger *slog.Logger
}

// NewSalesReportHandler is the constructor for SalesReportHandler, injected by Fx.
func NewSalesReportHandler(uc usecase.SalesReportUsecase, logger *slog.Logger) *SalesReportHandler {
	return &SalesReportHandler{uc: uc, logger: logger}
}

// AnalyzeMargin computes a margin simulation for a SKU without saving it.
func (h *SalesReportHandler) AnalyzeMargin(c echo.Context) error {
	uid, err := ownerUID(c)
	if err != nil {
		return err
	}

	var input usecase.MarginAnalysisInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid analysis input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	breakdown, err := h.uc.AnalyzeMargin(c.Request().Context(), uid, c.Param("skuId"), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, breakdown, "Margin analysis computed successfully")
}

// SaveAnalysis computes a margin simulation and appends it to the SKU's log.
func (h *SalesReportHandler) SaveAnalysis(c echo.Context) error {
	uid, err := ownerUID(c)
	if err != nil {
		return err
	}

	var input usecase.MarginAnalysisInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid analysis input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	entry, err := h.uc.SaveAnalysis(c.Request().Context(), uid, c.Param("skuId"), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, entry, "Margin analysis saved successfully")
}

// ListAnalyses returns a SKU's analysis log, newest first.
func (h *SalesReportHandler) ListAnalyses(c echo.Context) error {
	uid, err := ownerUID(c)
	if err != nil {
		return err
	}

	entries, err := h.uc.ListAnalyses(c.Request().Context(), uid, c.Param("skuId"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, entries, "Margin analyses retrieved successfully")
}

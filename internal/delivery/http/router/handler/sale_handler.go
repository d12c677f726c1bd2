package handler

import (
	"log/slog"
	"net/http"

	"loja/internal/delivery/http/response"
	"loja/internal/domain/entity"
	"loja/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SaleHandler holds dependencies for sales order handlers.
type SaleHandler struct {
	uc     usecase.SalesUsecase
	logger *slog.Logger
}

// NewSaleHandler is the constructor for SaleHandler, injected by Fx.
func NewSaleHandler(uc usecase.SalesUsecase, logger *slog.Logger) *SaleHandler {
	return &SaleHandler{uc: uc, logger: logger}
}

// changeStatusInput carries a requested status transition and its passphrase.
type changeStatusInput struct {
	Status     entity.SaleStatus `json:"status" validate:"required"`
	Passphrase string            `json:"senha"`
}

// ListSales returns every order of the authenticated owner, newest first.
func (h *SaleHandler) ListSales(c echo.Context) error {
	uid, err := ownerUID(c)
	if err != nil {
		return err
	}

	sales, err := h.uc.ListSales(c.Request().Context(), uid)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sales, "Sales retrieved successfully")
}

// GetSale returns a single order.
func (h *SaleHandler) GetSale(c echo.Context) error {
	uid, err := ownerUID(c)
	if err != nil {
		return err
	}

	sale, err := h.uc.GetSale(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sale, "Sale retrieved successfully")
}

// CreateSale registers a new order in the pending state.
func (h *SaleHandler) CreateSale(c echo.Context) error {
	uid, err := ownerUID(c)
	if err != nil {
		return err
	}

	var input usecase.CreateSaleInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sale input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	sale, err := h.uc.CreateSale(c.Request().Context(), uid, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, sale, "Sale created successfully")
}

// UpdateSale edits an existing order without touching its status.
func (h *SaleHandler) UpdateSale(c echo.Context) error {
	uid, err := ownerUID(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateSaleInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid sale input")
	}

	sale, err := h.uc.UpdateSale(c.Request().Context(), uid, c.Param("id"), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sale, "Sale updated successfully")
}

// ChangeStatus moves an order through the state machine.
func (h *SaleHandler) ChangeStatus(c echo.Context) error {
	uid, err := ownerUID(c)
	if err != nil {
		return err
	}

	var input changeStatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	sale, err := h.uc.ChangeStatus(c.Request().Context(), uid, c.Param("id"), input.Status, input.Passphrase)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sale, "Sale status updated successfully")
}

// DeleteSale removes an order after checking the admin passphrase.
func (h *SaleHandler) DeleteSale(c echo.Context) error {
	uid, err := ownerUID(c)
	if err != nil {
		return err
	}

	var input passphraseInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delete input")
	}

	if err := h.uc.DeleteSale(c.Request().Context(), uid, c.Param("id"), input.Passphrase); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Sale deleted successfully")
}

// TrackingQR streams the PNG tracking QR code of an order.
func (h *SaleHandler) TrackingQR(c echo.Context) error {
	uid, err := ownerUID(c)
	if err != nil {
		return err
	}

	png, err := h.uc.TrackingQR(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

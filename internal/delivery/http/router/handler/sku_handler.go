package handler

import (
	"log/slog"
	"net/http"

	"loja/internal/delivery/http/response"
	"loja/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SKUHandler holds dependencies for inventory handlers.
type SKUHandler struct {
	uc     usecase.InventoryUsecase
	logger *slog.Logger
}

// NewSKUHandler is the constructor for SKUHandler, injected by Fx.
func NewSKUHandler(uc usecase.InventoryUsecase, logger *slog.Logger) *SKUHandler {
	return &SKUHandler{uc: uc, logger: logger}
}

// ListSKUs returns every inventory SKU of the authenticated owner.
func (h *SKUHandler) ListSKUs(c echo.Context) error {
	uid, err := ownerUID(c)
	if err != nil {
		return err
	}

	skus, err := h.uc.ListSKUs(c.Request().Context(), uid)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, skus, "SKUs retrieved successfully")
}

// GetSKU returns a single SKU.
func (h *SKUHandler) GetSKU(c echo.Context) error {
	uid, err := ownerUID(c)
	if err != nil {
		return err
	}

	sku, err := h.uc.GetSKU(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sku, "SKU retrieved successfully")
}

// CreateSKU registers a new inventory SKU.
func (h *SKUHandler) CreateSKU(c echo.Context) error {
	uid, err := ownerUID(c)
	if err != nil {
		return err
	}

	var input usecase.CreateSKUInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid SKU input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	sku, err := h.uc.CreateSKU(c.Request().Context(), uid, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, sku, "SKU created successfully")
}

// UpdateSKU edits an existing SKU.
func (h *SKUHandler) UpdateSKU(c echo.Context) error {
	uid, err := ownerUID(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateSKUInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid SKU input")
	}

	sku, err := h.uc.UpdateSKU(c.Request().Context(), uid, c.Param("id"), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, sku, "SKU updated successfully")
}

// DeleteSKU removes a SKU after checking the admin passphrase.
func (h *SKUHandler) DeleteSKU(c echo.Context) error {
	uid, err := ownerUID(c)
	if err != nil {
		return err
	}

	var input passphraseInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delete input")
	}

	if err := h.uc.DeleteSKU(c.Request().Context(), uid, c.Param("id"), input.Passphrase); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "SKU deleted successfully")
}

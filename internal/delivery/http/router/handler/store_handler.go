package handler

import (
	"log/slog"
	"net/http"

	"loja/internal/delivery/http/response"
	"loja/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// StoreHandler holds dependencies for store management handlers.
type StoreHandler struct {
	uc     usecase.StoreUsecase
	logger *slog.Logger
}

// NewStoreHandler is the constructor for StoreHandler, injected by Fx.
func NewStoreHandler(uc usecase.StoreUsecase, logger *slog.Logger) *StoreHandler {
	return &StoreHandler{uc: uc, logger: logger}
}

// ListStores returns every store of the authenticated owner.
func (h *StoreHandler) ListStores(c echo.Context) error {
	uid, err := ownerUID(c)
	if err != nil {
		return err
	}

	stores, err := h.uc.ListStores(c.Request().Context(), uid)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stores, "Stores retrieved successfully")
}

// GetStore returns a single store.
func (h *StoreHandler) GetStore(c echo.Context) error {
	uid, err := ownerUID(c)
	if err != nil {
		return err
	}

	store, err := h.uc.GetStore(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, store, "Store retrieved successfully")
}

// CreateStore registers a new store.
func (h *StoreHandler) CreateStore(c echo.Context) error {
	uid, err := ownerUID(c)
	if err != nil {
		return err
	}

	var input usecase.CreateStoreInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	store, err := h.uc.CreateStore(c.Request().Context(), uid, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, store, "Store created successfully")
}

// UpdateStore edits an existing store.
func (h *StoreHandler) UpdateStore(c echo.Context) error {
	uid, err := ownerUID(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateStoreInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid store input")
	}

	store, err := h.uc.UpdateStore(c.Request().Context(), uid, c.Param("id"), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, store, "Store updated successfully")
}

// DeleteStore removes a store after checking the admin passphrase.
func (h *StoreHandler) DeleteStore(c echo.Context) error {
	uid, err := ownerUID(c)
	if err != nil {
		return err
	}

	var input passphraseInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delete input")
	}

	if err := h.uc.DeleteStore(c.Request().Context(), uid, c.Param("id"), input.Passphrase); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Store deleted successfully")
}

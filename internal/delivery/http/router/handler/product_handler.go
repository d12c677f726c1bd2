package handler

import (
	"log/slog"
	"net/http"

	"loja/internal/delivery/http/response"
	"loja/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for catalog handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, logger: logger}
}

// ListProducts returns every catalog product of the authenticated owner.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	uid, err := ownerUID(c)
	if err != nil {
		return err
	}

	products, err := h.uc.ListProducts(c.Request().Context(), uid)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, products, "Products retrieved successfully")
}

// GetProduct returns a single product.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	uid, err := ownerUID(c)
	if err != nil {
		return err
	}

	product, err := h.uc.GetProduct(c.Request().Context(), uid, c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product retrieved successfully")
}

// CreateProduct registers a new catalog product.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	uid, err := ownerUID(c)
	if err != nil {
		return err
	}

	var input usecase.CreateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), uid, &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// UpdateProduct edits an existing product.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	uid, err := ownerUID(c)
	if err != nil {
		return err
	}

	var input usecase.UpdateProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), uid, c.Param("id"), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product updated successfully")
}

// DeleteProduct removes a product after checking the admin passphrase.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	uid, err := ownerUID(c)
	if err != nil {
		return err
	}

	var input passphraseInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delete input")
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), uid, c.Param("id"), input.Passphrase); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

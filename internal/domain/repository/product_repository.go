package repository

import (
	"context"

	"loja/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrProductNotFound is returned when a product record is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository defines the interface for product catalog operations.
type ProductRepository interface {
	// ListProducts retrieves every catalog product owned by the user.
	ListProducts(ctx context.Context, ownerUID string) ([]*entity.Product, error)

	// FindProductByID retrieves a product by its record key.
	FindProductByID(ctx context.Context, ownerUID, id string) (*entity.Product, error)

	// CreateProduct persists a new product and returns its generated record key.
	CreateProduct(ctx context.Context, ownerUID string, product *entity.Product) (string, error)

	// UpdateProduct merges the given fields into an existing product record.
	UpdateProduct(ctx context.Context, ownerUID, id string, fields map[string]any) error

	// DeleteProduct removes a product record.
	DeleteProduct(ctx context.Context, ownerUID, id string) error
}

package repository

import (
	"context"

	"loja/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrSKUNotFound is returned when an inventory SKU record is not found.
var ErrSKUNotFound = errors.New("sku not found")

// SKURepository defines the interface for inventory SKU operations.
type SKURepository interface {
	// ListSKUs retrieves every inventory SKU owned by the user.
	ListSKUs(ctx context.Context, ownerUID string) ([]*entity.SKU, error)

	// FindSKUByID retrieves a SKU by its record key.
	FindSKUByID(ctx context.Context, ownerUID, id string) (*entity.SKU, error)

	// CreateSKU persists a new SKU and returns its generated record key.
	CreateSKU(ctx context.Context, ownerUID string, sku *entity.SKU) (string, error)

	// UpdateSKU merges the given fields into an existing SKU record.
	UpdateSKU(ctx context.Context, ownerUID, id string, fields map[string]any) error

	// DeleteSKU removes a SKU record.
	DeleteSKU(ctx context.Context, ownerUID, id string) error
}

package repository

import (
	"context"

	"loja/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrSaleNotFound is returned when a sales order record is not found.
var ErrSaleNotFound = errors.New("sale not found")

// SaleRepository defines the interface for sales order operations.
type SaleRepository interface {
	// ListSales retrieves every sales order owned by the user, newest first.
	ListSales(ctx context.Context, ownerUID string) ([]*entity.Sale, error)

	// FindSaleByID retrieves a sales order by its record key.
	FindSaleByID(ctx context.Context, ownerUID, id string) (*entity.Sale, error)

	// CreateSale persists a new sales order and returns its generated record key.
	CreateSale(ctx context.Context, ownerUID string, sale *entity.Sale) (string, error)

	// UpdateSale merges the given fields into an existing sales order record.
	UpdateSale(ctx context.Context, ownerUID, id string, fields map[string]any) error

	// DeleteSale removes a sales order record.
	DeleteSale(ctx context.Context, ownerUID, id string) error
}

package repository

import (
	"context"

	"loja/internal/domain/entity"
)

// StockMovementRepository defines the interface for the per-SKU stock
// movement log. Entries are append-only.
type StockMovementRepository interface {
	// AppendMovement appends a movement entry to the SKU's log and returns
	// its generated record key.
	AppendMovement(ctx context.Context, ownerUID, skuID string, movement *entity.StockMovement) (string, error)

	// ListMovements retrieves the SKU's movement log, newest first.
	ListMovements(ctx context.Context, ownerUID, skuID string) ([]*entity.StockMovement, error)
}

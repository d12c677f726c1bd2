package usecase

import (
	"context"

	"loja/internal/domain/analysis"
	"loja/internal/domain/entity"
)

// StockEstimateInput carries the quantities of a movement simulation.
type StockEstimateInput struct {
	Sold     int `json:"quantidadeVendida" validate:"gte=0"`
	Received int `json:"quantidadeRecebida" validate:"gte=0"`
}

// RegisterMovementInput carries a manually counted new stock total. The
// movement is derived from the difference against the current quantity.
type RegisterMovementInput struct {
	NewTotal int    `json:"novoTotal" validate:"gte=0"`
	Notes    string `json:"observacoes"`
}

// StockReportUsecase defines the interface for the stock movement report use cases
type StockReportUsecase interface {
	// EstimateStock projects the SKU's quantity after a hypothetical movement.
	// It never writes anything.
	EstimateStock(ctx context.Context, ownerUID, skuID string, input *StockEstimateInput) (*analysis.StockEstimate, error)

	// RegisterMovement appends a movement entry derived from the new total and
	// updates the SKU's quantity. A zero movement with no notes is rejected.
	RegisterMovement(ctx context.Context, ownerUID, skuID string, input *RegisterMovementInput) (*entity.StockMovement, error)

	// ListMovements retrieves the SKU's movement log, newest first.
	ListMovements(ctx context.Context, ownerUID, skuID string) ([]*entity.StockMovement, error)
}

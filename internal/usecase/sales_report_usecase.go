package usecase

import (
	"context"

	"loja/internal/domain/analysis"
	"loja/internal/domain/entity"
)

// MarginAnalysisInput carries the parameters of a margin simulation.
type MarginAnalysisInput struct {
	SalePrice float64 `json:"precoVenda" validate:"required,gt=0"`
	UnitCost  float64 `json:"custoUnitario" validate:"required,gt=0"`
	UnitsSold int     `json:"unidadesVendidas" validate:"required,gt=0"`
	Notes     string  `json:"observacoes"`
}

// SalesReportUsecase defines the interface for the margin report use cases
type SalesReportUsecase interface {
	// AnalyzeMargin computes the margin breakdown for a SKU without saving it.
	AnalyzeMargin(ctx context.Context, ownerUID, skuID string, input *MarginAnalysisInput) (*analysis.MarginBreakdown, error)

	// SaveAnalysis computes the margin breakdown and appends it to the SKU's
	// analysis log. The SKU itself is never mutated.
	SaveAnalysis(ctx context.Context, ownerUID, skuID string, input *MarginAnalysisInput) (*entity.SalesAnalysis, error)

	// ListAnalyses retrieves the SKU's analysis log, newest first.
	ListAnalyses(ctx context.Context, ownerUID, skuID string) ([]*entity.SalesAnalysis, error)
}

package repository

import (
	"context"

	"loja/internal/domain/entity"
)

// SalesAnalysisRepository defines the interface for the per-SKU margin
// analysis log. Entries are append-only.
type SalesAnalysisRepository interface {
	// AppendAnalysis appends an analysis entry to the SKU's log and returns
	// its generated record key.
	AppendAnalysis(ctx context.Context, ownerUID, skuID string, analysis *entity.SalesAnalysis) (string, error)

	// ListAnalyses retrieves the SKU's analysis log, newest first.
	ListAnalyses(ctx context.Context, ownerUID, skuID string) ([]*entity.SalesAnalysis, error)
}

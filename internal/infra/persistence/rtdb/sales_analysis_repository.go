package rtdb

import (
	"context"
	"sort"

	"loja/internal/domain/constants"
	"loja/internal/domain/entity"
	domainerrors "loja/internal/domain/errors"
	"loja/internal/domain/repository"

	"firebase.google.com/go/v4/db"
)

// salesAnalysisRepository implements the repository.SalesAnalysisRepository interface.
type salesAnalysisRepository struct {
	client *db.Client
}

// NewSalesAnalysisRepository is the constructor for salesAnalysisRepository.
func NewSalesAnalysisRepository(client *db.Client) repository.SalesAnalysisRepository {
	return &salesAnalysisRepository{
		client: client,
	}
}

// AppendAnalysis appends an analysis entry to the SKU's log and returns its
// generated record key.
func (repo *salesAnalysisRepository) AppendAnalysis(ctx context.Context, ownerUID, skuID string, analysis *entity.SalesAnalysis) (string, error) {
	record := *analysis
	record.ID = ""

	ref := logRef(repo.client, ownerUID, constants.CollectionSalesReports, skuID)
	childRef, err := ref.Push(ctx, &record)
	if err != nil {
		return "", domainerrors.NewRecordStoreError(err, "failed to append sales analysis")
	}

	analysis.ID = childRef.Key

	return childRef.Key, nil
}

// ListAnalyses retrieves the SKU's analysis log, newest first.
func (repo *salesAnalysisRepository) ListAnalyses(ctx context.Context, ownerUID, skuID string) ([]*entity.SalesAnalysis, error) {
	var records map[string]*entity.SalesAnalysis
	ref := logRef(repo.client, ownerUID, constants.CollectionSalesReports, skuID)
	if err := ref.Get(ctx, &records); err != nil {
		return nil, domainerrors.NewRecordStoreError(err, "failed to list sales analyses")
	}

	analyses := make([]*entity.SalesAnalysis, 0, len(records))
	for key, analysis := range records {
		if analysis == nil {
			continue
		}
		analysis.ID = key
		analyses = append(analyses, analysis)
	}

	sort.Slice(analyses, func(i, j int) bool {
		if !analyses[i].Date.Equal(analyses[j].Date) {
			return analyses[i].Date.After(analyses[j].Date)
		}

		return analyses[i].ID < analyses[j].ID
	})

	return analyses, nil
}

package impl

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"loja/internal/domain/analysis"
	"loja/internal/domain/constants"
	"loja/internal/domain/entity"
	domainerrors "loja/internal/domain/errors"
	"loja/internal/domain/repository"
	"loja/internal/domain/service"
	"loja/internal/usecase"
)

type salesReportService struct {
	logger       *slog.Logger
	skuRepo      repository.SKURepository
	analysisRepo repository.SalesAnalysisRepository
	publisher    service.EventPublisher
}

// NewSalesReportService creates a new sales report service instance
func NewSalesReportService(
	logger *slog.Logger,
	skuRepo repository.SKURepository,
	analysisRepo repository.SalesAnalysisRepository,
	publisher service.EventPublisher,
) usecase.SalesReportUsecase {
	return &salesReportService{
		logger:       logger,
		skuRepo:      skuRepo,
		analysisRepo: analysisRepo,
		publisher:    publisher,
	}
}

// AnalyzeMargin computes the margin breakdown for a SKU without saving it.
func (s *salesReportService) AnalyzeMargin(ctx context.Context, ownerUID, skuID string, input *usecase.MarginAnalysisInput) (*analysis.MarginBreakdown, error) {
	if _, err := s.findSKU(ctx, ownerUID, skuID); err != nil {
		return nil, err
	}

	return s.compute(input)
}

// SaveAnalysis computes the margin breakdown and appends it to the SKU's
// analysis log. The SKU itself is never mutated.
func (s *salesReportService) SaveAnalysis(ctx context.Context, ownerUID, skuID string, input *usecase.MarginAnalysisInput) (*entity.SalesAnalysis, error) {
	sku, err := s.findSKU(ctx, ownerUID, skuID)
	if err != nil {
		return nil, err
	}

	breakdown, err := s.compute(input)
	if err != nil {
		return nil, err
	}

	entry := &entity.SalesAnalysis{
		Date:        time.Now(),
		SKUID:       sku.ID,
		ProductName: sku.ProductName,
		SalePrice:   breakdown.SalePrice,
		UnitCost:    breakdown.UnitCost,
		GrossMargin: breakdown.GrossMargin,
		MarginRate:  breakdown.MarginRate,
		UnitsSold:   breakdown.UnitsSold,
		Notes:       input.Notes,
	}

	key, err := s.analysisRepo.AppendAnalysis(ctx, ownerUID, skuID, entry)
	if err != nil {
		return nil, err
	}

	publishRecordEvent(ctx, s.publisher, s.logger, ownerUID, constants.CollectionSalesReports, key, constants.RecordActionCreated)

	return entry, nil
}

// ListAnalyses retrieves the SKU's analysis log, newest first.
func (s *salesReportService) ListAnalyses(ctx context.Context, ownerUID, skuID string) ([]*entity.SalesAnalysis, error) {
	if _, err := s.findSKU(ctx, ownerUID, skuID); err != nil {
		return nil, err
	}

	return s.analysisRepo.ListAnalyses(ctx, ownerUID, skuID)
}

func (s *salesReportService) compute(input *usecase.MarginAnalysisInput) (*analysis.MarginBreakdown, error) {
	breakdown, err := analysis.ComputeMargin(input.SalePrice, input.UnitCost, input.UnitsSold)
	if err != nil {
		switch {
		case errors.Is(err, analysis.ErrCostExceedsPrice):
			return nil, domainerrors.ErrCostExceedsPrice
		case errors.Is(err, analysis.ErrInvalidUnits):
			return nil, domainerrors.ErrInvalidUnits
		default:
			return nil, err
		}
	}

	return &breakdown, nil
}

func (s *salesReportService) findSKU(ctx context.Context, ownerUID, skuID string) (*entity.SKU, error) {
	sku, err := s.skuRepo.FindSKUByID(ctx, ownerUID, skuID)
	if err != nil {
		if errors.Is(err, repository.ErrSKUNotFound) {
			return nil, domainerrors.ErrSKUNotFound
		}

		return nil, err
	}

	return sku, nil
}

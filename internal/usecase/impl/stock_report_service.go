package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"loja/internal/domain/analysis"
	"loja/internal/domain/constants"
	"loja/internal/domain/entity"
	domainerrors "loja/internal/domain/errors"
	"loja/internal/domain/repository"
	"loja/internal/domain/service"
	"loja/internal/usecase"
)

type stockReportService struct {
	logger       *slog.Logger
	skuRepo      repository.SKURepository
	movementRepo repository.StockMovementRepository
	publisher    service.EventPublisher
}

// NewStockReportService creates a new stock report service instance
func NewStockReportService(
	logger *slog.Logger,
	skuRepo repository.SKURepository,
	movementRepo repository.StockMovementRepository,
	publisher service.EventPublisher,
) usecase.StockReportUsecase {
	return &stockReportService{
		logger:       logger,
		skuRepo:      skuRepo,
		movementRepo: movementRepo,
		publisher:    publisher,
	}
}

// EstimateStock projects the SKU's quantity after a hypothetical movement.
// It never writes anything.
func (s *stockReportService) EstimateStock(ctx context.Context, ownerUID, skuID string, input *usecase.StockEstimateInput) (*analysis.StockEstimate, error) {
	if input.Sold < 0 || input.Received < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantidades devem ser maiores ou iguais a zero")
	}

	sku, err := s.findSKU(ctx, ownerUID, skuID)
	if err != nil {
		return nil, err
	}

	estimate := analysis.EstimateStock(sku.Quantity, input.Sold, input.Received)

	return &estimate, nil
}

// RegisterMovement appends a movement entry derived from the new total and
// updates the SKU's quantity. A zero movement with no notes is rejected.
func (s *stockReportService) RegisterMovement(ctx context.Context, ownerUID, skuID string, input *usecase.RegisterMovementInput) (*entity.StockMovement, error) {
	if input.NewTotal < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("novo total deve ser maior ou igual a zero")
	}

	sku, err := s.findSKU(ctx, ownerUID, skuID)
	if err != nil {
		return nil, err
	}

	delta := input.NewTotal - sku.Quantity
	if delta == 0 && strings.TrimSpace(input.Notes) == "" {
		return nil, domainerrors.ErrEmptyMovement
	}

	received, sold := 0, 0
	if delta > 0 {
		received = delta
	} else {
		sold = -delta
	}

	movement := &entity.StockMovement{
		Date:         time.Now(),
		SKUID:        sku.ID,
		SKUName:      skuLabel(sku),
		QtyReceived:  received,
		QtySold:      sold,
		ResultingQty: input.NewTotal,
		Notes:        input.Notes,
	}

	key, err := s.movementRepo.AppendMovement(ctx, ownerUID, skuID, movement)
	if err != nil {
		return nil, err
	}

	publishRecordEvent(ctx, s.publisher, s.logger, ownerUID, constants.CollectionStockReports, key, constants.RecordActionCreated)

	// The SKU quantity follows the log entry. There is no rollback: a failure
	// here leaves the appended entry in place and surfaces the error.
	fields := map[string]any{
		"quantidade": input.NewTotal,
		"status":     entity.DeriveSKUStatus(input.NewTotal, sku.Status),
		"updatedAt":  time.Now(),
	}
	if err := s.skuRepo.UpdateSKU(ctx, ownerUID, skuID, fields); err != nil {
		return nil, err
	}

	publishRecordEvent(ctx, s.publisher, s.logger, ownerUID, constants.CollectionSKUs, skuID, constants.RecordActionUpdated)

	return movement, nil
}

// ListMovements retrieves the SKU's movement log, newest first.
func (s *stockReportService) ListMovements(ctx context.Context, ownerUID, skuID string) ([]*entity.StockMovement, error) {
	if _, err := s.findSKU(ctx, ownerUID, skuID); err != nil {
		return nil, err
	}

	return s.movementRepo.ListMovements(ctx, ownerUID, skuID)
}

func (s *stockReportService) findSKU(ctx context.Context, ownerUID, skuID string) (*entity.SKU, error) {
	sku, err := s.skuRepo.FindSKUByID(ctx, ownerUID, skuID)
	if err != nil {
		if errors.Is(err, repository.ErrSKUNotFound) {
			return nil, domainerrors.ErrSKUNotFound
		}

		return nil, err
	}

	return sku, nil
}

// skuLabel snapshots a human-readable SKU description onto log entries.
func skuLabel(sku *entity.SKU) string {
	return fmt.Sprintf("%s - Tam %d %s", sku.ProductName, sku.Size, sku.Color)
}

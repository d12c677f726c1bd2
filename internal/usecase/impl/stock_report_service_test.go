package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loja/internal/domain/analysis"
	"loja/internal/domain/entity"
	domainerrors "loja/internal/domain/errors"
	"loja/internal/usecase"
)

type stockReportFixture struct {
	skuRepo      *fakeSKURepo
	movementRepo *fakeMovementRepo
	publisher    *capturingPublisher
	svc          usecase.StockReportUsecase
	sku          *entity.SKU
}

func newStockReportFixture(quantity int) *stockReportFixture {
	f := &stockReportFixture{
		skuRepo:      newFakeSKURepo(),
		movementRepo: newFakeMovementRepo(),
		publisher:    &capturingPublisher{},
	}
	f.sku = f.skuRepo.add(&entity.SKU{
		ProductName: "Nike Air Max 90",
		Size:        42,
		Color:       "preto",
		Quantity:    quantity,
		Status:      entity.DeriveSKUStatus(quantity, ""),
	})
	f.svc = NewStockReportService(testLogger(), f.skuRepo, f.movementRepo, f.publisher)

	return f
}

func TestStockReportService_EstimateStock(t *testing.T) {
	t.Run("projects the resulting quantity without writing", func(t *testing.T) {
		f := newStockReportFixture(10)

		estimate, err := f.svc.EstimateStock(context.Background(), testOwnerUID, f.sku.ID, &usecase.StockEstimateInput{
			Sold:     3,
			Received: 5,
		})

		require.NoError(t, err)
		assert.Equal(t, 10, estimate.Previous)
		assert.Equal(t, 12, estimate.Estimated)
		assert.Equal(t, analysis.StockLevelAdequate, estimate.Level)
		assert.Nil(t, f.skuRepo.lastFields)
		assert.Empty(t, f.movementRepo.entries)
	})

	t.Run("flags a projection above fifty pairs as high", func(t *testing.T) {
		f := newStockReportFixture(48)

		estimate, err := f.svc.EstimateStock(context.Background(), testOwnerUID, f.sku.ID, &usecase.StockEstimateInput{
			Received: 10,
		})

		require.NoError(t, err)
		assert.Equal(t, analysis.StockLevelHigh, estimate.Level)
	})

	t.Run("rejects negative quantities", func(t *testing.T) {
		f := newStockReportFixture(10)

		_, err := f.svc.EstimateStock(context.Background(), testOwnerUID, f.sku.ID, &usecase.StockEstimateInput{
			Sold: -1,
		})

		assertAppCode(t, err, "VALIDATION_FAILED")
	})

	t.Run("maps a missing SKU to a not found error", func(t *testing.T) {
		f := newStockReportFixture(10)

		_, err := f.svc.EstimateStock(context.Background(), testOwnerUID, "missing", &usecase.StockEstimateInput{})

		assert.ErrorIs(t, err, domainerrors.ErrSKUNotFound)
	})
}

func TestStockReportService_RegisterMovement(t *testing.T) {
	t.Run("splits a positive delta into received pairs", func(t *testing.T) {
		f := newStockReportFixture(10)

		movement, err := f.svc.RegisterMovement(context.Background(), testOwnerUID, f.sku.ID, &usecase.RegisterMovementInput{
			NewTotal: 15,
		})

		require.NoError(t, err)
		assert.Equal(t, 5, movement.QtyReceived)
		assert.Equal(t, 0, movement.QtySold)
		assert.Equal(t, 15, movement.ResultingQty)
		assert.Equal(t, "Nike Air Max 90 - Tam 42 preto", movement.SKUName)
		assert.Len(t, f.movementRepo.entries[f.sku.ID], 1)
		assert.Equal(t, 15, f.skuRepo.lastFields["quantidade"])
		assert.Equal(t, entity.SKUStatusAvailable, f.skuRepo.lastFields["status"])
	})

	t.Run("splits a negative delta into sold pairs", func(t *testing.T) {
		f := newStockReportFixture(10)

		movement, err := f.svc.RegisterMovement(context.Background(), testOwnerUID, f.sku.ID, &usecase.RegisterMovementInput{
			NewTotal: 0,
		})

		require.NoError(t, err)
		assert.Equal(t, 0, movement.QtyReceived)
		assert.Equal(t, 10, movement.QtySold)
		assert.Equal(t, entity.SKUStatusDepleted, f.skuRepo.lastFields["status"])
	})

	t.Run("rejects a zero movement with no notes", func(t *testing.T) {
		f := newStockReportFixture(10)

		_, err := f.svc.RegisterMovement(context.Background(), testOwnerUID, f.sku.ID, &usecase.RegisterMovementInput{
			NewTotal: 10,
			Notes:    "   ",
		})

		assert.ErrorIs(t, err, domainerrors.ErrEmptyMovement)
		assert.Empty(t, f.movementRepo.entries)
	})

	t.Run("accepts a zero movement carrying notes", func(t *testing.T) {
		f := newStockReportFixture(10)

		movement, err := f.svc.RegisterMovement(context.Background(), testOwnerUID, f.sku.ID, &usecase.RegisterMovementInput{
			NewTotal: 10,
			Notes:    "contagem de auditoria",
		})

		require.NoError(t, err)
		assert.Equal(t, 0, movement.QtyReceived)
		assert.Equal(t, 0, movement.QtySold)
	})

	t.Run("rejects a negative new total", func(t *testing.T) {
		f := newStockReportFixture(10)

		_, err := f.svc.RegisterMovement(context.Background(), testOwnerUID, f.sku.ID, &usecase.RegisterMovementInput{
			NewTotal: -1,
		})

		assertAppCode(t, err, "VALIDATION_FAILED")
	})

	t.Run("publishes the log entry and the SKU update", func(t *testing.T) {
		f := newStockReportFixture(10)

		_, err := f.svc.RegisterMovement(context.Background(), testOwnerUID, f.sku.ID, &usecase.RegisterMovementInput{
			NewTotal: 12,
		})

		require.NoError(t, err)
		require.Len(t, f.publisher.events, 2)
		assert.Equal(t, "relatoriosEstoque", f.publisher.events[0].Collection)
		assert.Equal(t, "estoque", f.publisher.events[1].Collection)
	})
}

func TestStockReportService_ListMovements(t *testing.T) {
	t.Run("returns the SKU's log", func(t *testing.T) {
		f := newStockReportFixture(10)

		_, err := f.svc.RegisterMovement(context.Background(), testOwnerUID, f.sku.ID, &usecase.RegisterMovementInput{NewTotal: 12})
		require.NoError(t, err)

		movements, err := f.svc.ListMovements(context.Background(), testOwnerUID, f.sku.ID)

		require.NoError(t, err)
		assert.Len(t, movements, 1)
	})

	t.Run("maps a missing SKU to a not found error", func(t *testing.T) {
		f := newStockReportFixture(10)

		_, err := f.svc.ListMovements(context.Background(), testOwnerUID, "missing")

		assert.ErrorIs(t, err, domainerrors.ErrSKUNotFound)
	})
}

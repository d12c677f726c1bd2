package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loja/internal/domain/entity"
	domainerrors "loja/internal/domain/errors"
	"loja/internal/usecase"
)

func newSalesServiceForTest(repo *fakeSaleRepo, publisher *capturingPublisher) usecase.SalesUsecase {
	return NewSalesService(testLogger(), repo, fakeActionGate{}, &fakeQRCodeService{}, publisher)
}

func seedSale(repo *fakeSaleRepo, status entity.SaleStatus) *entity.Sale {
	return repo.add(&entity.Sale{
		Customer:        "Maria Silva",
		ItemDescription: "Nike Air Max 90, 42 preto",
		Quantity:        1,
		TotalValue:      599.90,
		Status:          status,
	})
}

func TestSalesService_CreateSale(t *testing.T) {
	t.Run("creates a pending order with a creation timestamp", func(t *testing.T) {
		repo := newFakeSaleRepo()
		svc := newSalesServiceForTest(repo, &capturingPublisher{})

		sale, err := svc.CreateSale(context.Background(), testOwnerUID, &usecase.CreateSaleInput{
			Customer:        "Maria Silva",
			ItemDescription: "Nike Air Max 90, 42 preto",
			Quantity:        2,
			TotalValue:      1199.80,
			Priority:        entity.PriorityHigh,
			PaymentMethod:   entity.PaymentPix,
		})

		require.NoError(t, err)
		assert.Equal(t, entity.SaleStatusPending, sale.Status)
		assert.NotZero(t, sale.Timestamp)
		assert.NotEmpty(t, sale.ID)
	})

	t.Run("rejects non positive quantity and total", func(t *testing.T) {
		svc := newSalesServiceForTest(newFakeSaleRepo(), &capturingPublisher{})

		_, err := svc.CreateSale(context.Background(), testOwnerUID, &usecase.CreateSaleInput{
			Customer: "Maria", ItemDescription: "tenis", Quantity: 0, TotalValue: 100,
		})
		assertAppCode(t, err, "VALIDATION_FAILED")

		_, err = svc.CreateSale(context.Background(), testOwnerUID, &usecase.CreateSaleInput{
			Customer: "Maria", ItemDescription: "tenis", Quantity: 1, TotalValue: 0,
		})
		assertAppCode(t, err, "VALIDATION_FAILED")
	})

	t.Run("rejects unknown priority and payment method", func(t *testing.T) {
		svc := newSalesServiceForTest(newFakeSaleRepo(), &capturingPublisher{})

		_, err := svc.CreateSale(context.Background(), testOwnerUID, &usecase.CreateSaleInput{
			Customer: "Maria", ItemDescription: "tenis", Quantity: 1, TotalValue: 100,
			Priority: entity.SalePriority("urgente"),
		})
		assertAppCode(t, err, "VALIDATION_FAILED")

		_, err = svc.CreateSale(context.Background(), testOwnerUID, &usecase.CreateSaleInput{
			Customer: "Maria", ItemDescription: "tenis", Quantity: 1, TotalValue: 100,
			PaymentMethod: entity.PaymentMethod("cheque"),
		})
		assertAppCode(t, err, "VALIDATION_FAILED")
	})
}

func TestSalesService_UpdateSale(t *testing.T) {
	t.Run("patches fields without touching the status", func(t *testing.T) {
		repo := newFakeSaleRepo()
		sale := seedSale(repo, entity.SaleStatusPending)
		svc := newSalesServiceForTest(repo, &capturingPublisher{})

		customer := "João Souza"
		_, err := svc.UpdateSale(context.Background(), testOwnerUID, sale.ID, &usecase.UpdateSaleInput{
			Customer: &customer,
		})

		require.NoError(t, err)
		assert.Equal(t, "João Souza", repo.lastFields["cliente"])
		assert.NotContains(t, repo.lastFields, "status")
	})

	t.Run("rejects an empty edit", func(t *testing.T) {
		repo := newFakeSaleRepo()
		sale := seedSale(repo, entity.SaleStatusPending)
		svc := newSalesServiceForTest(repo, &capturingPublisher{})

		_, err := svc.UpdateSale(context.Background(), testOwnerUID, sale.ID, &usecase.UpdateSaleInput{})

		assertAppCode(t, err, "VALIDATION_FAILED")
	})
}

func TestSalesService_ChangeStatus(t *testing.T) {
	t.Run("moves a pending order to processing", func(t *testing.T) {
		repo := newFakeSaleRepo()
		sale := seedSale(repo, entity.SaleStatusPending)
		svc := newSalesServiceForTest(repo, &capturingPublisher{})

		updated, err := svc.ChangeStatus(context.Background(), testOwnerUID, sale.ID, entity.SaleStatusProcessing, testStatusChangePass)

		require.NoError(t, err)
		assert.Equal(t, entity.SaleStatusProcessing, updated.Status)
		assert.Equal(t, entity.SaleStatusProcessing, repo.lastFields["status"])
	})

	t.Run("reopens a cancelled order back to pending", func(t *testing.T) {
		repo := newFakeSaleRepo()
		sale := seedSale(repo, entity.SaleStatusCancelled)
		svc := newSalesServiceForTest(repo, &capturingPublisher{})

		updated, err := svc.ChangeStatus(context.Background(), testOwnerUID, sale.ID, entity.SaleStatusPending, testStatusChangePass)

		require.NoError(t, err)
		assert.Equal(t, entity.SaleStatusPending, updated.Status)
	})

	t.Run("rejects skipping states", func(t *testing.T) {
		repo := newFakeSaleRepo()
		sale := seedSale(repo, entity.SaleStatusPending)
		svc := newSalesServiceForTest(repo, &capturingPublisher{})

		_, err := svc.ChangeStatus(context.Background(), testOwnerUID, sale.ID, entity.SaleStatusDelivered, testStatusChangePass)

		assertAppCode(t, err, "INVALID_STATUS_TRANSITION")
		assert.Nil(t, repo.lastFields)
	})

	t.Run("rejects leaving a delivered order", func(t *testing.T) {
		repo := newFakeSaleRepo()
		sale := seedSale(repo, entity.SaleStatusDelivered)
		svc := newSalesServiceForTest(repo, &capturingPublisher{})

		_, err := svc.ChangeStatus(context.Background(), testOwnerUID, sale.ID, entity.SaleStatusCancelled, testStatusChangePass)

		assertAppCode(t, err, "INVALID_STATUS_TRANSITION")
	})

	t.Run("rejects a wrong passphrase before touching the order", func(t *testing.T) {
		repo := newFakeSaleRepo()
		sale := seedSale(repo, entity.SaleStatusPending)
		svc := newSalesServiceForTest(repo, &capturingPublisher{})

		_, err := svc.ChangeStatus(context.Background(), testOwnerUID, sale.ID, entity.SaleStatusProcessing, "wrong")

		assert.ErrorIs(t, err, domainerrors.ErrPassphraseRejected)
		assert.Nil(t, repo.lastFields)
	})

	t.Run("rejects an unknown status", func(t *testing.T) {
		repo := newFakeSaleRepo()
		sale := seedSale(repo, entity.SaleStatusPending)
		svc := newSalesServiceForTest(repo, &capturingPublisher{})

		_, err := svc.ChangeStatus(context.Background(), testOwnerUID, sale.ID, entity.SaleStatus("extraviado"), testStatusChangePass)

		assertAppCode(t, err, "VALIDATION_FAILED")
	})
}

func TestSalesService_DeleteSale(t *testing.T) {
	t.Run("deletes with the correct passphrase", func(t *testing.T) {
		repo := newFakeSaleRepo()
		sale := seedSale(repo, entity.SaleStatusPending)
		svc := newSalesServiceForTest(repo, &capturingPublisher{})

		err := svc.DeleteSale(context.Background(), testOwnerUID, sale.ID, testDeletePass)

		require.NoError(t, err)
		assert.Empty(t, repo.records)
	})

	t.Run("rejects a wrong passphrase and keeps the order", func(t *testing.T) {
		repo := newFakeSaleRepo()
		sale := seedSale(repo, entity.SaleStatusPending)
		svc := newSalesServiceForTest(repo, &capturingPublisher{})

		err := svc.DeleteSale(context.Background(), testOwnerUID, sale.ID, "wrong")

		assert.ErrorIs(t, err, domainerrors.ErrPassphraseRejected)
		assert.Len(t, repo.records, 1)
	})
}

func TestSalesService_TrackingQR(t *testing.T) {
	t.Run("renders the QR code for an existing order", func(t *testing.T) {
		repo := newFakeSaleRepo()
		sale := seedSale(repo, entity.SaleStatusShipped)
		svc := newSalesServiceForTest(repo, &capturingPublisher{})

		png, err := svc.TrackingQR(context.Background(), testOwnerUID, sale.ID)

		require.NoError(t, err)
		assert.Equal(t, []byte("png:"+sale.ID), png)
	})

	t.Run("maps a missing order to a not found error", func(t *testing.T) {
		svc := newSalesServiceForTest(newFakeSaleRepo(), &capturingPublisher{})

		_, err := svc.TrackingQR(context.Background(), testOwnerUID, "missing")

		assert.ErrorIs(t, err, domainerrors.ErrSaleNotFound)
	})
}

package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loja/internal/domain/constants"
	"loja/internal/domain/entity"
	"loja/internal/domain/service"
	"loja/internal/infra/pubsub"
)

func newDashboardFixture() (*DashboardService, *fakeStoreRepo, *fakeProductRepo, *fakeSKURepo, *fakeSaleRepo) {
	storeRepo := newFakeStoreRepo()
	productRepo := newFakeProductRepo()
	skuRepo := newFakeSKURepo()
	saleRepo := newFakeSaleRepo()
	svc := NewDashboardService(testLogger(), storeRepo, productRepo, skuRepo, saleRepo, nil, time.Minute)

	return svc, storeRepo, productRepo, skuRepo, saleRepo
}

func seedSnapshot[T any](t *testing.T, snapshots *fakeSnapshotStore, collection string, records []T) {
	t.Helper()

	payload, err := json.Marshal(records)
	require.NoError(t, err)
	require.NoError(t, snapshots.SaveSnapshot(context.Background(), testOwnerUID, collection, payload, 0))
}

func TestDashboardService_Summary(t *testing.T) {
	t.Run("aggregates the owner's whole operation", func(t *testing.T) {
		svc, storeRepo, productRepo, skuRepo, saleRepo := newDashboardFixture()
		defer svc.Close()

		storeRepo.add(&entity.Store{Name: "Loja Centro", Capacity: 6000, Status: entity.StoreStatusActive})
		storeRepo.add(&entity.Store{Name: "Quiosque", Capacity: 1000, Status: entity.StoreStatusActive})
		productRepo.add(&entity.Product{ModelName: "Nike Air Max 90"})
		skuRepo.add(&entity.SKU{ProductName: "Nike Air Max 90", Quantity: 60})
		skuRepo.add(&entity.SKU{ProductName: "Nike Air Max 90", Quantity: 0})
		saleRepo.add(&entity.Sale{Status: entity.SaleStatusPending, TotalValue: 100})
		saleRepo.add(&entity.Sale{Status: entity.SaleStatusCancelled, TotalValue: 50})
		saleRepo.add(&entity.Sale{Status: entity.SaleStatusDelivered, TotalValue: 30})

		summary, err := svc.Summary(context.Background(), testOwnerUID)

		require.NoError(t, err)
		assert.Equal(t, 2, summary.TotalStores)
		assert.Equal(t, 1, summary.LargeCapacityStores)
		assert.Equal(t, 7000, summary.TotalCapacity)
		assert.Equal(t, 1, summary.TotalProducts)
		assert.Equal(t, 2, summary.TotalSKUs)
		assert.Equal(t, 60, summary.TotalPairs)
		assert.Equal(t, 1, summary.CriticalSKUs)
		assert.Equal(t, 3, summary.TotalSales)
		assert.Equal(t, 1, summary.PendingSales)
		assert.Equal(t, 130.0, summary.TotalRevenue)
		assert.Equal(t, 1, summary.SalesByStatus[entity.SaleStatusPending])
		assert.Equal(t, 1, summary.SalesByStatus[entity.SaleStatusCancelled])
		assert.Equal(t, 0, summary.SalesByStatus[entity.SaleStatusProcessing])
		assert.False(t, summary.Stale)
	})

	t.Run("caps the recent sales at five, newest first", func(t *testing.T) {
		svc, _, _, _, saleRepo := newDashboardFixture()
		defer svc.Close()

		for i := 1; i <= 7; i++ {
			saleRepo.add(&entity.Sale{
				Customer:   fmt.Sprintf("cliente %d", i),
				Status:     entity.SaleStatusPending,
				TotalValue: 10,
			})
		}

		summary, err := svc.Summary(context.Background(), testOwnerUID)

		require.NoError(t, err)
		require.Len(t, summary.RecentSales, 5)
		assert.Equal(t, "cliente 7", summary.RecentSales[0].Customer)
	})

	t.Run("fails when the first load of a collection fails", func(t *testing.T) {
		svc, storeRepo, _, _, _ := newDashboardFixture()
		defer svc.Close()

		storeRepo.err = assert.AnError

		_, err := svc.Summary(context.Background(), testOwnerUID)

		assert.Error(t, err)
	})

	t.Run("recovers once the collection loads again", func(t *testing.T) {
		svc, storeRepo, _, _, _ := newDashboardFixture()
		defer svc.Close()

		storeRepo.err = assert.AnError
		_, err := svc.Summary(context.Background(), testOwnerUID)
		require.Error(t, err)

		storeRepo.err = nil
		storeRepo.add(&entity.Store{Name: "Loja Centro", Capacity: 3000})
		svc.InvalidateOwner(testOwnerUID)

		assert.Eventually(t, func() bool {
			summary, err := svc.Summary(context.Background(), testOwnerUID)

			return err == nil && summary.TotalStores == 1
		}, time.Second, 10*time.Millisecond)
	})
}

func TestDashboardService_SnapshotFallback(t *testing.T) {
	newFixture := func() (*DashboardService, *fakeStoreRepo, *fakeSnapshotStore) {
		storeRepo := newFakeStoreRepo()
		productRepo := newFakeProductRepo()
		skuRepo := newFakeSKURepo()
		saleRepo := newFakeSaleRepo()
		snapshots := newFakeSnapshotStore()
		svc := NewDashboardService(testLogger(), storeRepo, productRepo, skuRepo, saleRepo, snapshots, time.Minute)

		return svc, storeRepo, snapshots
	}

	t.Run("serves the worker snapshots while the record store is down", func(t *testing.T) {
		svc, storeRepo, snapshots := newFixture()
		defer svc.Close()

		storeRepo.err = assert.AnError
		seedSnapshot(t, snapshots, constants.CollectionStores, []*entity.Store{
			{Name: "Loja Centro", Capacity: 6000},
			{Name: "Quiosque", Capacity: 1000},
		})
		seedSnapshot(t, snapshots, constants.CollectionProducts, []*entity.Product{})
		seedSnapshot(t, snapshots, constants.CollectionSKUs, []*entity.SKU{})
		seedSnapshot(t, snapshots, constants.CollectionSales, []*entity.Sale{})

		summary, err := svc.Summary(context.Background(), testOwnerUID)

		require.NoError(t, err)
		assert.Equal(t, 2, summary.TotalStores)
		assert.Equal(t, 7000, summary.TotalCapacity)
		assert.True(t, summary.Stale)
	})

	t.Run("prefers live data once the record store recovers", func(t *testing.T) {
		svc, storeRepo, snapshots := newFixture()
		defer svc.Close()

		storeRepo.err = assert.AnError
		seedSnapshot(t, snapshots, constants.CollectionStores, []*entity.Store{{Name: "Loja Centro"}})
		seedSnapshot(t, snapshots, constants.CollectionProducts, []*entity.Product{})
		seedSnapshot(t, snapshots, constants.CollectionSKUs, []*entity.SKU{})
		seedSnapshot(t, snapshots, constants.CollectionSales, []*entity.Sale{})

		summary, err := svc.Summary(context.Background(), testOwnerUID)
		require.NoError(t, err)
		require.Equal(t, 1, summary.TotalStores)

		storeRepo.err = nil
		storeRepo.add(&entity.Store{Name: "Loja Centro"})
		storeRepo.add(&entity.Store{Name: "Quiosque"})
		svc.InvalidateOwner(testOwnerUID)

		assert.Eventually(t, func() bool {
			summary, err := svc.Summary(context.Background(), testOwnerUID)

			return err == nil && summary.TotalStores == 2 && !summary.Stale
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("still fails when a collection has no snapshot", func(t *testing.T) {
		svc, storeRepo, snapshots := newFixture()
		defer svc.Close()

		storeRepo.err = assert.AnError
		seedSnapshot(t, snapshots, constants.CollectionProducts, []*entity.Product{})

		_, err := svc.Summary(context.Background(), testOwnerUID)

		assert.Error(t, err)
	})
}

func TestDashboardService_RefreshesOnPublishedEvents(t *testing.T) {
	svc, storeRepo, _, _, _ := newDashboardFixture()
	defer svc.Close()

	summary, err := svc.Summary(context.Background(), testOwnerUID)
	require.NoError(t, err)
	require.Equal(t, 0, summary.TotalStores)

	inner := &capturingPublisher{}
	publisher := pubsub.NewInvalidatingPublisher(inner, svc)

	storeRepo.add(&entity.Store{Name: "Loja Centro", Capacity: 3000})
	err = publisher.PublishRecordEvent(context.Background(), &service.RecordEvent{
		OwnerUID:   testOwnerUID,
		Collection: constants.CollectionStores,
		Action:     "created",
	})
	require.NoError(t, err)
	require.Len(t, inner.events, 1)

	assert.Eventually(t, func() bool {
		summary, err := svc.Summary(context.Background(), testOwnerUID)

		return err == nil && summary.TotalStores == 1
	}, time.Second, 10*time.Millisecond)
}

func TestDashboardService_InvalidateOwner(t *testing.T) {
	t.Run("ignores owners without mirrors", func(t *testing.T) {
		svc, _, _, _, _ := newDashboardFixture()
		defer svc.Close()

		svc.InvalidateOwner("unknown-uid")
	})

	t.Run("picks up new records after invalidation", func(t *testing.T) {
		svc, storeRepo, _, _, _ := newDashboardFixture()
		defer svc.Close()

		summary, err := svc.Summary(context.Background(), testOwnerUID)
		require.NoError(t, err)
		require.Equal(t, 0, summary.TotalStores)

		storeRepo.add(&entity.Store{Name: "Loja Centro", Capacity: 3000})
		svc.InvalidateOwner(testOwnerUID)

		assert.Eventually(t, func() bool {
			summary, err := svc.Summary(context.Background(), testOwnerUID)

			return err == nil && summary.TotalStores == 1
		}, time.Second, 10*time.Millisecond)
	})
}

func TestDashboardService_Close(t *testing.T) {
	t.Run("is safe to call twice", func(t *testing.T) {
		svc, _, _, _, _ := newDashboardFixture()

		_, err := svc.Summary(context.Background(), testOwnerUID)
		require.NoError(t, err)

		svc.Close()
		svc.Close()
	})

	t.Run("serves late summaries without leaking refresh loops", func(t *testing.T) {
		svc, storeRepo, _, _, _ := newDashboardFixture()
		storeRepo.add(&entity.Store{Name: "Loja Centro", Capacity: 3000})

		svc.Close()
		baseline := runtime.NumGoroutine()

		summary, err := svc.Summary(context.Background(), testOwnerUID)

		require.NoError(t, err)
		assert.Equal(t, 1, summary.TotalStores)
		// Poll from the test goroutine: assert.Eventually runs its condition
		// in a goroutine of its own, which would inflate NumGoroutine past
		// the baseline forever.
		deadline := time.Now().Add(time.Second)
		for runtime.NumGoroutine() > baseline {
			if time.Now().After(deadline) {
				t.Fatalf("goroutines never returned to baseline %d, have %d", baseline, runtime.NumGoroutine())
			}
			time.Sleep(10 * time.Millisecond)
		}
	})
}

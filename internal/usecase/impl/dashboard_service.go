package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/pkg/errors"

	"loja/internal/domain/analysis"
	"loja/internal/domain/constants"
	"loja/internal/domain/entity"
	"loja/internal/domain/repository"
	"loja/internal/infra/mirror"
	"loja/internal/usecase"
)

const recentSalesLimit = 5

// ownerMirrors bundles the four mirrored collections of one owner.
type ownerMirrors struct {
	stores   *mirror.Collection[*entity.Store]
	products *mirror.Collection[*entity.Product]
	skus     *mirror.Collection[*entity.SKU]
	sales    *mirror.Collection[*entity.Sale]
}

func (m *ownerMirrors) stale() bool {
	return m.stores.Err() != nil || m.products.Err() != nil || m.skus.Err() != nil || m.sales.Err() != nil
}

func (m *ownerMirrors) close() {
	m.stores.Close()
	m.products.Close()
	m.skus.Close()
	m.sales.Close()
}

// DashboardService implements usecase.DashboardUsecase on top of per-owner
// collection mirrors. Mirrors are created lazily on the first summary request
// of an owner and refresh on an interval afterwards.
type DashboardService struct {
	logger      *slog.Logger
	storeRepo   repository.StoreRepository
	productRepo repository.ProductRepository
	skuRepo     repository.SKURepository
	saleRepo    repository.SaleRepository
	snapshots   repository.SnapshotStore
	interval    time.Duration

	mu      sync.Mutex
	mirrors map[string]*ownerMirrors
	closed  bool
}

// NewDashboardService creates a new dashboard service instance. The snapshot
// store is optional; when present, a cold mirror whose record store load
// fails serves the worker-materialized snapshot instead.
func NewDashboardService(
	logger *slog.Logger,
	storeRepo repository.StoreRepository,
	productRepo repository.ProductRepository,
	skuRepo repository.SKURepository,
	saleRepo repository.SaleRepository,
	snapshots repository.SnapshotStore,
	refreshInterval time.Duration,
) *DashboardService {
	return &DashboardService{
		logger:      logger,
		storeRepo:   storeRepo,
		productRepo: productRepo,
		skuRepo:     skuRepo,
		saleRepo:    saleRepo,
		snapshots:   snapshots,
		interval:    refreshInterval,
		mirrors:     make(map[string]*ownerMirrors),
	}
}

// Summary computes the owner's dashboard from the mirrored collections.
func (s *DashboardService) Summary(ctx context.Context, ownerUID string) (*usecase.DashboardSummary, error) {
	m := s.ownerMirrors(ownerUID)

	stores, err := m.stores.EnsureFresh(ctx)
	if err != nil {
		return nil, err
	}
	products, err := m.products.EnsureFresh(ctx)
	if err != nil {
		return nil, err
	}
	skus, err := m.skus.EnsureFresh(ctx)
	if err != nil {
		return nil, err
	}
	sales, err := m.sales.EnsureFresh(ctx)
	if err != nil {
		return nil, err
	}

	summary := &usecase.DashboardSummary{
		TotalStores:   len(stores),
		TotalProducts: len(products),
		TotalSKUs:     len(skus),
		TotalSales:    len(sales),
		SalesByStatus: map[entity.SaleStatus]int{
			entity.SaleStatusPending:    0,
			entity.SaleStatusProcessing: 0,
			entity.SaleStatusShipped:    0,
			entity.SaleStatusDelivered:  0,
			entity.SaleStatusCancelled:  0,
		},
		Stale: m.stale(),
	}

	for _, store := range stores {
		summary.TotalCapacity += store.Capacity
		if analysis.IsLargeCapacity(store.Capacity) {
			summary.LargeCapacityStores++
		}
	}

	for _, sku := range skus {
		summary.TotalPairs += sku.Quantity
		if analysis.ClassifyStock(sku.Quantity) == analysis.StockLevelCritical {
			summary.CriticalSKUs++
		}
	}

	for _, sale := range sales {
		summary.SalesByStatus[sale.Status]++
		if sale.Status == entity.SaleStatusPending {
			summary.PendingSales++
		}
		if sale.Status != entity.SaleStatusCancelled {
			summary.TotalRevenue += sale.TotalValue
		}
	}

	// Sales are mirrored newest first.
	recent := sales
	if len(recent) > recentSalesLimit {
		recent = recent[:recentSalesLimit]
	}
	summary.RecentSales = recent

	return summary, nil
}

// InvalidateOwner schedules an eager refresh of the owner's mirrors, if any.
func (s *DashboardService) InvalidateOwner(ownerUID string) {
	s.mu.Lock()
	m, ok := s.mirrors[ownerUID]
	s.mu.Unlock()

	if !ok {
		return
	}

	m.stores.Invalidate()
	m.products.Invalidate()
	m.skus.Invalidate()
	m.sales.Invalidate()
}

// Close stops every mirror. The service stops accepting new owners.
func (s *DashboardService) Close() {
	s.mu.Lock()
	s.closed = true
	mirrors := s.mirrors
	s.mirrors = make(map[string]*ownerMirrors)
	s.mu.Unlock()

	for _, m := range mirrors {
		m.close()
	}
}

func (s *DashboardService) ownerMirrors(ownerUID string) *ownerMirrors {
	s.mu.Lock()

	if m, ok := s.mirrors[ownerUID]; ok {
		s.mu.Unlock()

		return m
	}

	m := &ownerMirrors{
		stores: mirror.NewCollection(constants.CollectionStores, func(ctx context.Context) ([]*entity.Store, error) {
			return s.storeRepo.ListStores(ctx, ownerUID)
		}, s.interval, s.logger, snapshotFallback[*entity.Store](s.snapshots, ownerUID, constants.CollectionStores)...),
		products: mirror.NewCollection(constants.CollectionProducts, func(ctx context.Context) ([]*entity.Product, error) {
			return s.productRepo.ListProducts(ctx, ownerUID)
		}, s.interval, s.logger, snapshotFallback[*entity.Product](s.snapshots, ownerUID, constants.CollectionProducts)...),
		skus: mirror.NewCollection(constants.CollectionSKUs, func(ctx context.Context) ([]*entity.SKU, error) {
			return s.skuRepo.ListSKUs(ctx, ownerUID)
		}, s.interval, s.logger, snapshotFallback[*entity.SKU](s.snapshots, ownerUID, constants.CollectionSKUs)...),
		sales: mirror.NewCollection(constants.CollectionSales, func(ctx context.Context) ([]*entity.Sale, error) {
			return s.saleRepo.ListSales(ctx, ownerUID)
		}, s.interval, s.logger, snapshotFallback[*entity.Sale](s.snapshots, ownerUID, constants.CollectionSales)...),
	}

	if s.closed {
		s.mu.Unlock()
		// Shutdown race: the bundle still serves this request through lazy
		// loads, but its refresh loops must not outlive Close.
		m.close()

		return m
	}

	s.mirrors[ownerUID] = m
	s.mu.Unlock()

	return m
}

// snapshotFallback builds the mirror option serving a worker-materialized
// snapshot while the record store is unreachable and the mirror is cold.
// A nil store disables the fallback.
func snapshotFallback[T any](snapshots repository.SnapshotStore, ownerUID, collection string) []mirror.Option[T] {
	if snapshots == nil {
		return nil
	}

	loader := func(ctx context.Context) ([]T, error) {
		payload, err := snapshots.LoadSnapshot(ctx, ownerUID, collection)
		if err != nil {
			return nil, err
		}

		var records []T
		if err := json.Unmarshal(payload, &records); err != nil {
			return nil, errors.Wrap(err, "failed to decode collection snapshot")
		}

		return records, nil
	}

	return []mirror.Option[T]{mirror.WithFallback(loader)}
}

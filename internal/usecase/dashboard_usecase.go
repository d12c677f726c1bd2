package usecase

import (
	"context"

	"loja/internal/domain/entity"
)

// DashboardSummary aggregates the owner's whole operation for the home view.
// It is computed from mirrored collections, so values may lag the record
// store by one refresh interval.
type DashboardSummary struct {
	TotalStores         int     `json:"totalLojas"`
	LargeCapacityStores int     `json:"lojasGrandePorte"` // Stores above 5000 pairs of capacity.
	TotalCapacity       int     `json:"capacidadeTotal"`
	TotalProducts       int     `json:"totalProdutos"`
	TotalSKUs           int     `json:"totalSkus"`
	TotalPairs          int     `json:"totalPares"` // Sum of SKU quantities on hand.
	CriticalSKUs        int     `json:"skusCriticos"`
	TotalSales          int     `json:"totalVendas"`
	PendingSales        int     `json:"vendasPendentes"`
	TotalRevenue        float64 `json:"receitaTotal"` // Sum of non-cancelled order totals.

	SalesByStatus map[entity.SaleStatus]int `json:"vendasPorStatus"`
	RecentSales   []*entity.Sale            `json:"vendasRecentes"` // Up to five, newest first.

	Stale bool `json:"desatualizado"` // True when any mirror is serving stale data.
}

// DashboardUsecase defines the interface for the live dashboard use cases
type DashboardUsecase interface {
	// Summary computes the owner's dashboard from the mirrored collections.
	Summary(ctx context.Context, ownerUID string) (*DashboardSummary, error)
}

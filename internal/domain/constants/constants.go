// Package constants centralizes small shared constants of the project.
package constants

// Runtime environments.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub provider types.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Record store collections under users/{uid}/.
const (
	CollectionStores   = "lojas"
	CollectionProducts = "produtos"
	CollectionSKUs     = "estoque"
	CollectionSales    = "vendas"

	// Per-SKU append-only log collections; entries live one level deeper,
	// under {collection}/{skuId}/.
	CollectionStockReports = "relatoriosEstoque"
	CollectionSalesReports = "relatoriosVendas"
)

// Record event actions.
const (
	RecordActionCreated = "created"
	RecordActionUpdated = "updated"
	RecordActionDeleted = "deleted"
)

package entity

import "time"

// SalesAnalysis is an append-only log entry with the result of one margin
// simulation for a SKU. Saving an analysis never mutates the SKU or any order.
type SalesAnalysis struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"data"`
	SKUID       string    `json:"skuId"`
	ProductName string    `json:"produtoNome"`
	SalePrice   float64   `json:"precoVenda"`
	UnitCost    float64   `json:"custoUnitario"`
	GrossMargin float64   `json:"margemBruta"`
	MarginRate  float64   `json:"taxaMargem"` // Gross margin over revenue, as a percentage.
	UnitsSold   int       `json:"unidadesVendidas"`
	Notes       string    `json:"observacoes,omitempty"`
}

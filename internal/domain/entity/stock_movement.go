package entity

import "time"

// StockMovement is an append-only log entry recording one stock adjustment of
// a SKU. Entries are only ever created, never updated or deleted.
type StockMovement struct {
	ID           string    `json:"id"`
	Date         time.Time `json:"data"`
	SKUID        string    `json:"skuId"`
	SKUName      string    `json:"skuNome"`
	QtyReceived  int       `json:"quantidadeRecebida"` // Pairs received in this entry, >= 0.
	QtySold      int       `json:"quantidadeVendida"`  // Pairs sold/removed in this entry, >= 0.
	ResultingQty int       `json:"estoqueAtual"`       // Stock on hand after this movement.
	Notes        string    `json:"observacoes,omitempty"`
}

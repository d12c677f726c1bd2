package entity

import "time"

// SKUStatus is the availability state of a stock keeping unit.
// "disponivel" and "esgotado" are derived from the quantity; "reservado" is
// only ever set manually and survives quantity edits.
type SKUStatus string

const (
	SKUStatusAvailable SKUStatus = "disponivel"
	SKUStatusDepleted  SKUStatus = "esgotado"
	SKUStatusReserved  SKUStatus = "reservado"
)

// SKU is a concrete (product, size, color, store) combination with its own
// quantity. The product and store names are denormalized snapshots: deleting
// the referenced catalog entry leaves them dangling on purpose (no cascade).
type SKU struct {
	ID              string    `json:"id"`
	ProductID       string    `json:"produtoId"`
	ProductName     string    `json:"nomeProduto"`
	Size            int       `json:"tamanho"` // Shoe size, always > 0.
	Color           string    `json:"cor"`
	StoreID         string    `json:"lojaId"`
	StoreName       string    `json:"nomeLoja"`
	Quantity        int       `json:"quantidade"`        // Current stock on hand, the single source of truth. >= 0.
	InitialQuantity int       `json:"quantidadeInicial"` // Quantity received on entry.
	EntryDate       string    `json:"dataEntrada"`       // Date-only, e.g. "2026-01-31".
	Supplier        string    `json:"fornecedor"`
	Status          SKUStatus `json:"status"`
	Notes           string    `json:"observacoes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// DeriveSKUStatus maps a quantity to the derived availability state.
// A manually reserved SKU keeps its reservation regardless of quantity.
func DeriveSKUStatus(quantity int, current SKUStatus) SKUStatus {
	if current == SKUStatusReserved {
		return SKUStatusReserved
	}
	if quantity > 0 {
		return SKUStatusAvailable
	}

	return SKUStatusDepleted
}

package usecase

import (
	"context"

	"loja/internal/domain/entity"
)

// CreateSKUInput carries the fields accepted when registering an inventory SKU.
// Product and store names are denormalized onto the record at creation time.
type CreateSKUInput struct {
	ProductID string `json:"produtoId" validate:"required"`
	Size      int    `json:"tamanho" validate:"required,gt=0"`
	Color     string `json:"cor" validate:"required"`
	StoreID   string `json:"lojaId" validate:"required"`
	Quantity  int    `json:"quantidade" validate:"gte=0"`
	EntryDate string `json:"dataEntrada"`
	Supplier  string `json:"fornecedor"`
	Notes     string `json:"observacoes"`
}

// UpdateSKUInput carries the optional fields of a SKU edit. Setting Quantity
// re-derives the availability status unless the SKU is manually reserved.
type UpdateSKUInput struct {
	Size     *int              `json:"tamanho"`
	Color    *string           `json:"cor"`
	Quantity *int              `json:"quantidade"`
	Supplier *string           `json:"fornecedor"`
	Status   *entity.SKUStatus `json:"status"`
	Notes    *string           `json:"observacoes"`
}

// InventoryUsecase defines the interface for inventory SKU use cases
type InventoryUsecase interface {
	// ListSKUs retrieves every inventory SKU of the owner.
	ListSKUs(ctx context.Context, ownerUID string) ([]*entity.SKU, error)

	// GetSKU retrieves a single SKU.
	GetSKU(ctx context.Context, ownerUID, id string) (*entity.SKU, error)

	// CreateSKU registers a new SKU, snapshotting the product and store names.
	CreateSKU(ctx context.Context, ownerUID string, input *CreateSKUInput) (*entity.SKU, error)

	// UpdateSKU edits an existing SKU.
	UpdateSKU(ctx context.Context, ownerUID, id string, input *UpdateSKUInput) (*entity.SKU, error)

	// DeleteSKU removes a SKU after checking the delete passphrase. Its report
	// logs are kept.
	DeleteSKU(ctx context.Context, ownerUID, id, passphrase string) error
}

package usecase

import (
	"context"

	"loja/internal/domain/entity"
)

// CreateStoreInput carries the fields accepted when registering a store.
type CreateStoreInput struct {
	Name        string             `json:"nome" validate:"required"`
	Location    string             `json:"localizacao" validate:"required"`
	Capacity    int                `json:"capacidadeEstoque" validate:"required,gt=0"`
	FullAddress string             `json:"enderecoCompleto"`
	Status      entity.StoreStatus `json:"status"`
}

// UpdateStoreInput carries the optional fields of a store edit. Nil fields
// are left untouched.
type UpdateStoreInput struct {
	Name        *string             `json:"nome"`
	Location    *string             `json:"localizacao"`
	Capacity    *int                `json:"capacidadeEstoque"`
	FullAddress *string             `json:"enderecoCompleto"`
	Status      *entity.StoreStatus `json:"status"`
}

// StoreUsecase defines the interface for store management use cases
type StoreUsecase interface {
	// ListStores retrieves every store of the owner.
	ListStores(ctx context.Context, ownerUID string) ([]*entity.Store, error)

	// GetStore retrieves a single store.
	GetStore(ctx context.Context, ownerUID, id string) (*entity.Store, error)

	// CreateStore registers a new store.
	CreateStore(ctx context.Context, ownerUID string, input *CreateStoreInput) (*entity.Store, error)

	// UpdateStore edits an existing store.
	UpdateStore(ctx context.Context, ownerUID, id string, input *UpdateStoreInput) (*entity.Store, error)

	// DeleteStore removes a store after checking the delete passphrase.
	DeleteStore(ctx context.Context, ownerUID, id, passphrase string) error
}

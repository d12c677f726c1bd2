package usecase

import (
	"context"

	"loja/internal/domain/entity"
)

// CreateProductInput carries the fields accepted when registering a catalog product.
type CreateProductInput struct {
	ModelName   string                 `json:"nomeModelo" validate:"required"`
	Brand       string                 `json:"marca" validate:"required"`
	BasePrice   float64                `json:"precoBase" validate:"required,gt=0"`
	Category    entity.ProductCategory `json:"categoria" validate:"required"`
	Gender      entity.ProductGender   `json:"genero" validate:"required"`
	ReleaseDate string                 `json:"dataLancamento"`
	ImageURL    string                 `json:"imagemURL"`
	Notes       string                 `json:"observacoes"`
}

// UpdateProductInput carries the optional fields of a product edit.
type UpdateProductInput struct {
	ModelName   *string                 `json:"nomeModelo"`
	Brand       *string                 `json:"marca"`
	BasePrice   *float64                `json:"precoBase"`
	Category    *entity.ProductCategory `json:"categoria"`
	Gender      *entity.ProductGender   `json:"genero"`
	ReleaseDate *string                 `json:"dataLancamento"`
	ImageURL    *string                 `json:"imagemURL"`
	Notes       *string                 `json:"observacoes"`
}

// ProductUsecase defines the interface for catalog management use cases
type ProductUsecase interface {
	// ListProducts retrieves every catalog product of the owner.
	ListProducts(ctx context.Context, ownerUID string) ([]*entity.Product, error)

	// GetProduct retrieves a single product.
	GetProduct(ctx context.Context, ownerUID, id string) (*entity.Product, error)

	// CreateProduct registers a new catalog product.
	CreateProduct(ctx context.Context, ownerUID string, input *CreateProductInput) (*entity.Product, error)

	// UpdateProduct edits an existing product. SKUs that denormalized the old
	// model name keep it; there is no cascade.
	UpdateProduct(ctx context.Context, ownerUID, id string, input *UpdateProductInput) (*entity.Product, error)

	// DeleteProduct removes a product after checking the delete passphrase.
	DeleteProduct(ctx context.Context, ownerUID, id, passphrase string) error
}

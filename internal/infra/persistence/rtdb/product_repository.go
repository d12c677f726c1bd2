package rtdb

import (
	"context"
	"sort"

	"loja/internal/domain/constants"
	"loja/internal/domain/entity"
	domainerrors "loja/internal/domain/errors"
	"loja/internal/domain/repository"

	"firebase.google.com/go/v4/db"
)

// productRepository implements the repository.ProductRepository interface.
type productRepository struct {
	client *db.Client
}

// NewProductRepository is the constructor for productRepository.
func NewProductRepository(client *db.Client) repository.ProductRepository {
	return &productRepository{
		client: client,
	}
}

// ListProducts retrieves every catalog product owned by the user.
func (repo *productRepository) ListProducts(ctx context.Context, ownerUID string) ([]*entity.Product, error) {
	var records map[string]*entity.Product
	ref := collectionRef(repo.client, ownerUID, constants.CollectionProducts)
	if err := ref.Get(ctx, &records); err != nil {
		return nil, domainerrors.NewRecordStoreError(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(records))
	for key, product := range records {
		if product == nil {
			continue
		}
		product.ID = key
		products = append(products, product)
	}

	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })

	return products, nil
}

// FindProductByID retrieves a product by its record key.
func (repo *productRepository) FindProductByID(ctx context.Context, ownerUID, id string) (*entity.Product, error) {
	var product *entity.Product
	ref := recordRef(repo.client, ownerUID, constants.CollectionProducts, id)
	if err := ref.Get(ctx, &product); err != nil {
		return nil, domainerrors.NewRecordStoreError(err, "failed to find product")
	}
	if product == nil {
		return nil, repository.ErrProductNotFound
	}
	product.ID = id

	return product, nil
}

// CreateProduct persists a new product and returns its generated record key.
func (repo *productRepository) CreateProduct(ctx context.Context, ownerUID string, product *entity.Product) (string, error) {
	record := *product
	record.ID = ""

	ref := collectionRef(repo.client, ownerUID, constants.CollectionProducts)
	childRef, err := ref.Push(ctx, &record)
	if err != nil {
		return "", domainerrors.NewRecordStoreError(err, "failed to create product")
	}

	product.ID = childRef.Key

	return childRef.Key, nil
}

// UpdateProduct merges the given fields into an existing product record.
func (repo *productRepository) UpdateProduct(ctx context.Context, ownerUID, id string, fields map[string]any) error {
	if _, err := repo.FindProductByID(ctx, ownerUID, id); err != nil {
		return err
	}

	ref := recordRef(repo.client, ownerUID, constants.CollectionProducts, id)
	if err := ref.Update(ctx, fields); err != nil {
		return domainerrors.NewRecordStoreError(err, "failed to update product")
	}

	return nil
}

// DeleteProduct removes a product record.
func (repo *productRepository) DeleteProduct(ctx context.Context, ownerUID, id string) error {
	if _, err := repo.FindProductByID(ctx, ownerUID, id); err != nil {
		return err
	}

	ref := recordRef(repo.client, ownerUID, constants.CollectionProducts, id)
	if err := ref.Delete(ctx); err != nil {
		return domainerrors.NewRecordStoreError(err, "failed to delete product")
	}

	return nil
}

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

// skuRepository implements the repository.SKURepository interface.
type skuRepository struct {
	client *db.Client
}

// NewSKURepository is the constructor for skuRepository.
func NewSKURepository(client *db.Client) repository.SKURepository {
	return &skuRepository{
		client: client,
	}
}

// ListSKUs retrieves every inventory SKU owned by the user.
func (repo *skuRepository) ListSKUs(ctx context.Context, ownerUID string) ([]*entity.SKU, error) {
	var records map[string]*entity.SKU
	ref := collectionRef(repo.client, ownerUID, constants.CollectionSKUs)
	if err := ref.Get(ctx, &records); err != nil {
		return nil, domainerrors.NewRecordStoreError(err, "failed to list SKUs")
	}

	skus := make([]*entity.SKU, 0, len(records))
	for key, sku := range records {
		if sku == nil {
			continue
		}
		sku.ID = key
		skus = append(skus, sku)
	}

	sort.Slice(skus, func(i, j int) bool { return skus[i].ID < skus[j].ID })

	return skus, nil
}

// FindSKUByID retrieves a SKU by its record key.
func (repo *skuRepository) FindSKUByID(ctx context.Context, ownerUID, id string) (*entity.SKU, error) {
	var sku *entity.SKU
	ref := recordRef(repo.client, ownerUID, constants.CollectionSKUs, id)
	if err := ref.Get(ctx, &sku); err != nil {
		return nil, domainerrors.NewRecordStoreError(err, "failed to find SKU")
	}
	if sku == nil {
		return nil, repository.ErrSKUNotFound
	}
	sku.ID = id

	return sku, nil
}

// CreateSKU persists a new SKU and returns its generated record key.
func (repo *skuRepository) CreateSKU(ctx context.Context, ownerUID string, sku *entity.SKU) (string, error) {
	record := *sku
	record.ID = ""

	ref := collectionRef(repo.client, ownerUID, constants.CollectionSKUs)
	childRef, err := ref.Push(ctx, &record)
	if err != nil {
		return "", domainerrors.NewRecordStoreError(err, "failed to create SKU")
	}

	sku.ID = childRef.Key

	return childRef.Key, nil
}

// UpdateSKU merges the given fields into an existing SKU record.
func (repo *skuRepository) UpdateSKU(ctx context.Context, ownerUID, id string, fields map[string]any) error {
	if _, err := repo.FindSKUByID(ctx, ownerUID, id); err != nil {
		return err
	}

	ref := recordRef(repo.client, ownerUID, constants.CollectionSKUs, id)
	if err := ref.Update(ctx, fields); err != nil {
		return domainerrors.NewRecordStoreError(err, "failed to update SKU")
	}

	return nil
}

// DeleteSKU removes a SKU record.
func (repo *skuRepository) DeleteSKU(ctx context.Context, ownerUID, id string) error {
	if _, err := repo.FindSKUByID(ctx, ownerUID, id); err != nil {
		return err
	}

	ref := recordRef(repo.client, ownerUID, constants.CollectionSKUs, id)
	if err := ref.Delete(ctx); err != nil {
		return domainerrors.NewRecordStoreError(err, "failed to delete SKU")
	}

	return nil
}

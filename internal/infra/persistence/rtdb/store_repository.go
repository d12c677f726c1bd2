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

// storeRepository implements the repository.StoreRepository interface.
type storeRepository struct {
	client *db.Client
}

// NewStoreRepository is the constructor for storeRepository.
func NewStoreRepository(client *db.Client) repository.StoreRepository {
	return &storeRepository{
		client: client,
	}
}

// ListStores retrieves every store owned by the user.
func (repo *storeRepository) ListStores(ctx context.Context, ownerUID string) ([]*entity.Store, error) {
	var records map[string]*entity.Store
	ref := collectionRef(repo.client, ownerUID, constants.CollectionStores)
	if err := ref.Get(ctx, &records); err != nil {
		return nil, domainerrors.NewRecordStoreError(err, "failed to list stores")
	}

	stores := make([]*entity.Store, 0, len(records))
	for key, store := range records {
		if store == nil {
			continue
		}
		store.ID = key
		stores = append(stores, store)
	}

	// Key order is stable across reads, map iteration is not.
	sort.Slice(stores, func(i, j int) bool { return stores[i].ID < stores[j].ID })

	return stores, nil
}

// FindStoreByID retrieves a store by its record key.
func (repo *storeRepository) FindStoreByID(ctx context.Context, ownerUID, id string) (*entity.Store, error) {
	var store *entity.Store
	ref := recordRef(repo.client, ownerUID, constants.CollectionStores, id)
	if err := ref.Get(ctx, &store); err != nil {
		return nil, domainerrors.NewRecordStoreError(err, "failed to find store")
	}
	if store == nil {
		return nil, repository.ErrStoreNotFound
	}
	store.ID = id

	return store, nil
}

// CreateStore persists a new store and returns its generated record key.
func (repo *storeRepository) CreateStore(ctx context.Context, ownerUID string, store *entity.Store) (string, error) {
	record := *store
	record.ID = ""

	ref := collectionRef(repo.client, ownerUID, constants.CollectionStores)
	childRef, err := ref.Push(ctx, &record)
	if err != nil {
		return "", domainerrors.NewRecordStoreError(err, "failed to create store")
	}

	store.ID = childRef.Key

	return childRef.Key, nil
}

// UpdateStore merges the given fields into an existing store record.
func (repo *storeRepository) UpdateStore(ctx context.Context, ownerUID, id string, fields map[string]any) error {
	if _, err := repo.FindStoreByID(ctx, ownerUID, id); err != nil {
		return err
	}

	ref := recordRef(repo.client, ownerUID, constants.CollectionStores, id)
	if err := ref.Update(ctx, fields); err != nil {
		return domainerrors.NewRecordStoreError(err, "failed to update store")
	}

	return nil
}

// DeleteStore removes a store record.
func (repo *storeRepository) DeleteStore(ctx context.Context, ownerUID, id string) error {
	if _, err := repo.FindStoreByID(ctx, ownerUID, id); err != nil {
		return err
	}

	ref := recordRef(repo.client, ownerUID, constants.CollectionStores, id)
	if err := ref.Delete(ctx); err != nil {
		return domainerrors.NewRecordStoreError(err, "failed to delete store")
	}

	return nil
}

// Package repository defines the interfaces for the persistence layer.
// Every collection is partitioned by the owning user's UID.
package repository

import (
	"context"

	"loja/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrStoreNotFound is returned when a store record is not found.
var ErrStoreNotFound = errors.New("store not found")

// StoreRepository defines the interface for store record operations.
type StoreRepository interface {
	// ListStores retrieves every store owned by the user.
	ListStores(ctx context.Context, ownerUID string) ([]*entity.Store, error)

	// FindStoreByID retrieves a store by its record key.
	FindStoreByID(ctx context.Context, ownerUID, id string) (*entity.Store, error)

	// CreateStore persists a new store and returns its generated record key.
	CreateStore(ctx context.Context, ownerUID string, store *entity.Store) (string, error)

	// UpdateStore merges the given fields into an existing store record.
	UpdateStore(ctx context.Context, ownerUID, id string, fields map[string]any) error

	// DeleteStore removes a store record.
	DeleteStore(ctx context.Context, ownerUID, id string) error
}

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

// stockMovementRepository implements the repository.StockMovementRepository interface.
type stockMovementRepository struct {
	client *db.Client
}

// NewStockMovementRepository is the constructor for stockMovementRepository.
func NewStockMovementRepository(client *db.Client) repository.StockMovementRepository {
	return &stockMovementRepository{
		client: client,
	}
}

// AppendMovement appends a movement entry to the SKU's log and returns its
// generated record key.
func (repo *stockMovementRepository) AppendMovement(ctx context.Context, ownerUID, skuID string, movement *entity.StockMovement) (string, error) {
	record := *movement
	record.ID = ""

	ref := logRef(repo.client, ownerUID, constants.CollectionStockReports, skuID)
	childRef, err := ref.Push(ctx, &record)
	if err != nil {
		return "", domainerrors.NewRecordStoreError(err, "failed to append stock movement")
	}

	movement.ID = childRef.Key

	return childRef.Key, nil
}

// ListMovements retrieves the SKU's movement log, newest first.
func (repo *stockMovementRepository) ListMovements(ctx context.Context, ownerUID, skuID string) ([]*entity.StockMovement, error) {
	var records map[string]*entity.StockMovement
	ref := logRef(repo.client, ownerUID, constants.CollectionStockReports, skuID)
	if err := ref.Get(ctx, &records); err != nil {
		return nil, domainerrors.NewRecordStoreError(err, "failed to list stock movements")
	}

	movements := make([]*entity.StockMovement, 0, len(records))
	for key, movement := range records {
		if movement == nil {
			continue
		}
		movement.ID = key
		movements = append(movements, movement)
	}

	sort.Slice(movements, func(i, j int) bool {
		if !movements[i].Date.Equal(movements[j].Date) {
			return movements[i].Date.After(movements[j].Date)
		}

		return movements[i].ID < movements[j].ID
	})

	return movements, nil
}

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

// saleRepository implements the repository.SaleRepository interface.
type saleRepository struct {
	client *db.Client
}

// NewSaleRepository is the constructor for saleRepository.
func NewSaleRepository(client *db.Client) repository.SaleRepository {
	return &saleRepository{
		client: client,
	}
}

// ListSales retrieves every sales order owned by the user, newest first.
func (repo *saleRepository) ListSales(ctx context.Context, ownerUID string) ([]*entity.Sale, error) {
	var records map[string]*entity.Sale
	ref := collectionRef(repo.client, ownerUID, constants.CollectionSales)
	if err := ref.Get(ctx, &records); err != nil {
		return nil, domainerrors.NewRecordStoreError(err, "failed to list sales")
	}

	sales := make([]*entity.Sale, 0, len(records))
	for key, sale := range records {
		if sale == nil {
			continue
		}
		sale.ID = key
		sales = append(sales, sale)
	}

	sort.Slice(sales, func(i, j int) bool {
		if sales[i].Timestamp != sales[j].Timestamp {
			return sales[i].Timestamp > sales[j].Timestamp
		}

		return sales[i].ID < sales[j].ID
	})

	return sales, nil
}

// FindSaleByID retrieves a sales order by its record key.
func (repo *saleRepository) FindSaleByID(ctx context.Context, ownerUID, id string) (*entity.Sale, error) {
	var sale *entity.Sale
	ref := recordRef(repo.client, ownerUID, constants.CollectionSales, id)
	if err := ref.Get(ctx, &sale); err != nil {
		return nil, domainerrors.NewRecordStoreError(err, "failed to find sale")
	}
	if sale == nil {
		return nil, repository.ErrSaleNotFound
	}
	sale.ID = id

	return sale, nil
}

// CreateSale persists a new sales order and returns its generated record key.
func (repo *saleRepository) CreateSale(ctx context.Context, ownerUID string, sale *entity.Sale) (string, error) {
	record := *sale
	record.ID = ""

	ref := collectionRef(repo.client, ownerUID, constants.CollectionSales)
	childRef, err := ref.Push(ctx, &record)
	if err != nil {
		return "", domainerrors.NewRecordStoreError(err, "failed to create sale")
	}

	sale.ID = childRef.Key

	return childRef.Key, nil
}

// UpdateSale merges the given fields into an existing sales order record.
func (repo *saleRepository) UpdateSale(ctx context.Context, ownerUID, id string, fields map[string]any) error {
	if _, err := repo.FindSaleByID(ctx, ownerUID, id); err != nil {
		return err
	}

	ref := recordRef(repo.client, ownerUID, constants.CollectionSales, id)
	if err := ref.Update(ctx, fields); err != nil {
		return domainerrors.NewRecordStoreError(err, "failed to update sale")
	}

	return nil
}

// DeleteSale removes a sales order record.
func (repo *saleRepository) DeleteSale(ctx context.Context, ownerUID, id string) error {
	if _, err := repo.FindSaleByID(ctx, ownerUID, id); err != nil {
		return err
	}

	ref := recordRef(repo.client, ownerUID, constants.CollectionSales, id)
	if err := ref.Delete(ctx); err != nil {
		return domainerrors.NewRecordStoreError(err, "failed to delete sale")
	}

	return nil
}

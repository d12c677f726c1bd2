package impl

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"loja/internal/domain/constants"
	"loja/internal/domain/entity"
	domainerrors "loja/internal/domain/errors"
	"loja/internal/domain/repository"
	"loja/internal/domain/service"
	"loja/internal/usecase"
)

const entryDateLayout = "2006-01-02"

type inventoryService struct {
	logger      *slog.Logger
	skuRepo     repository.SKURepository
	productRepo repository.ProductRepository
	storeRepo   repository.StoreRepository
	gate        service.ActionGate
	publisher   service.EventPublisher
}

// NewInventoryService creates a new inventory service instance
func NewInventoryService(
	logger *slog.Logger,
	skuRepo repository.SKURepository,
	productRepo repository.ProductRepository,
	storeRepo repository.StoreRepository,
	gate service.ActionGate,
	publisher service.EventPublisher,
) usecase.InventoryUsecase {
	return &inventoryService{
		logger:      logger,
		skuRepo:     skuRepo,
		productRepo: productRepo,
		storeRepo:   storeRepo,
		gate:        gate,
		publisher:   publisher,
	}
}

// ListSKUs retrieves every inventory SKU of the owner.
func (s *inventoryService) ListSKUs(ctx context.Context, ownerUID string) ([]*entity.SKU, error) {
	return s.skuRepo.ListSKUs(ctx, ownerUID)
}

// GetSKU retrieves a single SKU.
func (s *inventoryService) GetSKU(ctx context.Context, ownerUID, id string) (*entity.SKU, error) {
	sku, err := s.skuRepo.FindSKUByID(ctx, ownerUID, id)
	if err != nil {
		if errors.Is(err, repository.ErrSKUNotFound) {
			return nil, domainerrors.ErrSKUNotFound
		}

		return nil, err
	}

	return sku, nil
}

// CreateSKU registers a new SKU, snapshotting the product and store names.
func (s *inventoryService) CreateSKU(ctx context.Context, ownerUID string, input *usecase.CreateSKUInput) (*entity.SKU, error) {
	if input.Size <= 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("tamanho deve ser positivo")
	}
	if input.Quantity < 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("quantidade deve ser maior ou igual a zero")
	}

	product, err := s.productRepo.FindProductByID(ctx, ownerUID, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, err
	}

	store, err := s.storeRepo.FindStoreByID(ctx, ownerUID, input.StoreID)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, err
	}

	entryDate := input.EntryDate
	if entryDate == "" {
		entryDate = time.Now().Format(entryDateLayout)
	}

	now := time.Now()
	sku := &entity.SKU{
		ProductID:       product.ID,
		ProductName:     product.ModelName,
		Size:            input.Size,
		Color:           input.Color,
		StoreID:         store.ID,
		StoreName:       store.Name,
		Quantity:        input.Quantity,
		InitialQuantity: input.Quantity,
		EntryDate:       entryDate,
		Supplier:        input.Supplier,
		Status:          entity.DeriveSKUStatus(input.Quantity, ""),
		Notes:           input.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	key, err := s.skuRepo.CreateSKU(ctx, ownerUID, sku)
	if err != nil {
		return nil, err
	}

	publishRecordEvent(ctx, s.publisher, s.logger, ownerUID, constants.CollectionSKUs, key, constants.RecordActionCreated)

	return sku, nil
}

// UpdateSKU edits an existing SKU.
func (s *inventoryService) UpdateSKU(ctx context.Context, ownerUID, id string, input *usecase.UpdateSKUInput) (*entity.SKU, error) {
	sku, err := s.GetSKU(ctx, ownerUID, id)
	if err != nil {
		return nil, err
	}

	fields := map[string]any{}
	if input.Size != nil {
		if *input.Size <= 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("tamanho deve ser positivo")
		}
		fields["tamanho"] = *input.Size
	}
	if input.Color != nil {
		fields["cor"] = *input.Color
	}
	if input.Supplier != nil {
		fields["fornecedor"] = *input.Supplier
	}
	if input.Notes != nil {
		fields["observacoes"] = *input.Notes
	}

	status := sku.Status
	if input.Quantity != nil {
		if *input.Quantity < 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("quantidade deve ser maior ou igual a zero")
		}
		fields["quantidade"] = *input.Quantity
		status = entity.DeriveSKUStatus(*input.Quantity, sku.Status)
	}
	if input.Status != nil {
		// A manual status wins over the derived one.
		switch *input.Status {
		case entity.SKUStatusAvailable, entity.SKUStatusDepleted, entity.SKUStatusReserved:
			status = *input.Status
		default:
			return nil, domainerrors.ErrValidationFailed.WithDetails("status desconhecido")
		}
	}
	if status != sku.Status {
		fields["status"] = status
	}

	if len(fields) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("nenhum campo para atualizar")
	}
	fields["updatedAt"] = time.Now()

	if err := s.skuRepo.UpdateSKU(ctx, ownerUID, id, fields); err != nil {
		if errors.Is(err, repository.ErrSKUNotFound) {
			return nil, domainerrors.ErrSKUNotFound
		}

		return nil, err
	}

	publishRecordEvent(ctx, s.publisher, s.logger, ownerUID, constants.CollectionSKUs, id, constants.RecordActionUpdated)

	return s.skuRepo.FindSKUByID(ctx, ownerUID, id)
}

// DeleteSKU removes a SKU after checking the delete passphrase. Its report
// logs are kept.
func (s *inventoryService) DeleteSKU(ctx context.Context, ownerUID, id, passphrase string) error {
	if err := s.gate.AuthorizeDelete(passphrase); err != nil {
		return err
	}

	if err := s.skuRepo.DeleteSKU(ctx, ownerUID, id); err != nil {
		if errors.Is(err, repository.ErrSKUNotFound) {
			return domainerrors.ErrSKUNotFound
		}

		return err
	}

	publishRecordEvent(ctx, s.publisher, s.logger, ownerUID, constants.CollectionSKUs, id, constants.RecordActionDeleted)

	return nil
}

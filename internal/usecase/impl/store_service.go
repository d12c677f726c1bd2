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

type storeService struct {
	logger    *slog.Logger
	storeRepo repository.StoreRepository
	gate      service.ActionGate
	publisher service.EventPublisher
}

// NewStoreService creates a new store service instance
func NewStoreService(
	logger *slog.Logger,
	storeRepo repository.StoreRepository,
	gate service.ActionGate,
	publisher service.EventPublisher,
) usecase.StoreUsecase {
	return &storeService{
		logger:    logger,
		storeRepo: storeRepo,
		gate:      gate,
		publisher: publisher,
	}
}

// ListStores retrieves every store of the owner.
func (s *storeService) ListStores(ctx context.Context, ownerUID string) ([]*entity.Store, error) {
	return s.storeRepo.ListStores(ctx, ownerUID)
}

// GetStore retrieves a single store.
func (s *storeService) GetStore(ctx context.Context, ownerUID, id string) (*entity.Store, error) {
	store, err := s.storeRepo.FindStoreByID(ctx, ownerUID, id)
	if err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, err
	}

	return store, nil
}

// CreateStore registers a new store.
func (s *storeService) CreateStore(ctx context.Context, ownerUID string, input *usecase.CreateStoreInput) (*entity.Store, error) {
	if input.Capacity <= 0 {
		return nil, domainerrors.ErrInvalidCapacity
	}

	status := input.Status
	if status == "" {
		status = entity.StoreStatusActive
	}
	if !entity.ValidStoreStatus(status) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("status desconhecido")
	}

	now := time.Now()
	store := &entity.Store{
		Name:        input.Name,
		Location:    input.Location,
		Capacity:    input.Capacity,
		FullAddress: input.FullAddress,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	key, err := s.storeRepo.CreateStore(ctx, ownerUID, store)
	if err != nil {
		return nil, err
	}

	publishRecordEvent(ctx, s.publisher, s.logger, ownerUID, constants.CollectionStores, key, constants.RecordActionCreated)

	return store, nil
}

// UpdateStore edits an existing store.
func (s *storeService) UpdateStore(ctx context.Context, ownerUID, id string, input *usecase.UpdateStoreInput) (*entity.Store, error) {
	fields := map[string]any{}
	if input.Name != nil {
		fields["nome"] = *input.Name
	}
	if input.Location != nil {
		fields["localizacao"] = *input.Location
	}
	if input.Capacity != nil {
		if *input.Capacity <= 0 {
			return nil, domainerrors.ErrInvalidCapacity
		}
		fields["capacidadeEstoque"] = *input.Capacity
	}
	if input.FullAddress != nil {
		fields["enderecoCompleto"] = *input.FullAddress
	}
	if input.Status != nil {
		if !entity.ValidStoreStatus(*input.Status) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("status desconhecido")
		}
		fields["status"] = *input.Status
	}
	if len(fields) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("nenhum campo para atualizar")
	}
	fields["updatedAt"] = time.Now()

	if err := s.storeRepo.UpdateStore(ctx, ownerUID, id, fields); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return nil, domainerrors.ErrStoreNotFound
		}

		return nil, err
	}

	publishRecordEvent(ctx, s.publisher, s.logger, ownerUID, constants.CollectionStores, id, constants.RecordActionUpdated)

	return s.storeRepo.FindStoreByID(ctx, ownerUID, id)
}

// DeleteStore removes a store after checking the delete passphrase.
func (s *storeService) DeleteStore(ctx context.Context, ownerUID, id, passphrase string) error {
	if err := s.gate.AuthorizeDelete(passphrase); err != nil {
		return err
	}

	if err := s.storeRepo.DeleteStore(ctx, ownerUID, id); err != nil {
		if errors.Is(err, repository.ErrStoreNotFound) {
			return domainerrors.ErrStoreNotFound
		}

		return err
	}

	publishRecordEvent(ctx, s.publisher, s.logger, ownerUID, constants.CollectionStores, id, constants.RecordActionDeleted)

	return nil
}

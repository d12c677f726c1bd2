package impl

import (
	"context"
	"errors"
	"log/slog"

	"loja/internal/domain/constants"
	"loja/internal/domain/entity"
	domainerrors "loja/internal/domain/errors"
	"loja/internal/domain/repository"
	"loja/internal/domain/service"
	"loja/internal/usecase"
)

type productService struct {
	logger      *slog.Logger
	productRepo repository.ProductRepository
	gate        service.ActionGate
	publisher   service.EventPublisher
}

// NewProductService creates a new product service instance
func NewProductService(
	logger *slog.Logger,
	productRepo repository.ProductRepository,
	gate service.ActionGate,
	publisher service.EventPublisher,
) usecase.ProductUsecase {
	return &productService{
		logger:      logger,
		productRepo: productRepo,
		gate:        gate,
		publisher:   publisher,
	}
}

// ListProducts retrieves every catalog product of the owner.
func (s *productService) ListProducts(ctx context.Context, ownerUID string) ([]*entity.Product, error) {
	return s.productRepo.ListProducts(ctx, ownerUID)
}

// GetProduct retrieves a single product.
func (s *productService) GetProduct(ctx context.Context, ownerUID, id string) (*entity.Product, error) {
	product, err := s.productRepo.FindProductByID(ctx, ownerUID, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, err
	}

	return product, nil
}

// CreateProduct registers a new catalog product.
func (s *productService) CreateProduct(ctx context.Context, ownerUID string, input *usecase.CreateProductInput) (*entity.Product, error) {
	if input.BasePrice <= 0 {
		return nil, domainerrors.ErrInvalidPrice
	}
	if !entity.ValidProductCategory(input.Category) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("categoria desconhecida")
	}
	if !entity.ValidProductGender(input.Gender) {
		return nil, domainerrors.ErrValidationFailed.WithDetails("genero desconhecido")
	}

	product := &entity.Product{
		ModelName:   input.ModelName,
		Brand:       input.Brand,
		BasePrice:   input.BasePrice,
		Category:    input.Category,
		Gender:      input.Gender,
		ReleaseDate: input.ReleaseDate,
		ImageURL:    input.ImageURL,
		Notes:       input.Notes,
	}

	key, err := s.productRepo.CreateProduct(ctx, ownerUID, product)
	if err != nil {
		return nil, err
	}

	publishRecordEvent(ctx, s.publisher, s.logger, ownerUID, constants.CollectionProducts, key, constants.RecordActionCreated)

	return product, nil
}

// UpdateProduct edits an existing product. SKUs that denormalized the old
// model name keep it; there is no cascade.
func (s *productService) UpdateProduct(ctx context.Context, ownerUID, id string, input *usecase.UpdateProductInput) (*entity.Product, error) {
	fields := map[string]any{}
	if input.ModelName != nil {
		fields["nomeModelo"] = *input.ModelName
	}
	if input.Brand != nil {
		fields["marca"] = *input.Brand
	}
	if input.BasePrice != nil {
		if *input.BasePrice <= 0 {
			return nil, domainerrors.ErrInvalidPrice
		}
		fields["precoBase"] = *input.BasePrice
	}
	if input.Category != nil {
		if !entity.ValidProductCategory(*input.Category) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("categoria desconhecida")
		}
		fields["categoria"] = *input.Category
	}
	if input.Gender != nil {
		if !entity.ValidProductGender(*input.Gender) {
			return nil, domainerrors.ErrValidationFailed.WithDetails("genero desconhecido")
		}
		fields["genero"] = *input.Gender
	}
	if input.ReleaseDate != nil {
		fields["dataLancamento"] = *input.ReleaseDate
	}
	if input.ImageURL != nil {
		fields["imagemURL"] = *input.ImageURL
	}
	if input.Notes != nil {
		fields["observacoes"] = *input.Notes
	}
	if len(fields) == 0 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("nenhum campo para atualizar")
	}

	if err := s.productRepo.UpdateProduct(ctx, ownerUID, id, fields); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, err
	}

	publishRecordEvent(ctx, s.publisher, s.logger, ownerUID, constants.CollectionProducts, id, constants.RecordActionUpdated)

	return s.productRepo.FindProductByID(ctx, ownerUID, id)
}

// DeleteProduct removes a product after checking the delete passphrase.
func (s *productService) DeleteProduct(ctx context.Context, ownerUID, id, passphrase string) error {
	if err := s.gate.AuthorizeDelete(passphrase); err != nil {
		return err
	}

	if err := s.productRepo.DeleteProduct(ctx, ownerUID, id); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return err
	}

	publishRecordEvent(ctx, s.publisher, s.logger, ownerUID, constants.CollectionProducts, id, constants.RecordActionDeleted)

	return nil
}

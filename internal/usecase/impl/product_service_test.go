package impl

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loja/internal/domain/constants"
	"loja/internal/domain/entity"
	domainerrors "loja/internal/domain/errors"
	"loja/internal/usecase"
)

func newProductServiceForTest(repo *fakeProductRepo, publisher *capturingPublisher) usecase.ProductUsecase {
	return NewProductService(testLogger(), repo, fakeActionGate{}, publisher)
}

func TestProductService_CreateProduct(t *testing.T) {
	t.Run("creates a catalog product", func(t *testing.T) {
		repo := newFakeProductRepo()
		publisher := &capturingPublisher{}
		svc := newProductServiceForTest(repo, publisher)

		product, err := svc.CreateProduct(context.Background(), testOwnerUID, &usecase.CreateProductInput{
			ModelName: "Nike Air Max 90",
			Brand:     "Nike",
			BasePrice: 599.90,
			Category:  entity.CategorySport,
			Gender:    entity.GenderUnisex,
		})

		require.NoError(t, err)
		assert.NotEmpty(t, product.ID)
		assert.Equal(t, "Nike Air Max 90", product.ModelName)

		event := publisher.last()
		require.NotNil(t, event)
		assert.Equal(t, constants.CollectionProducts, event.Collection)
		assert.Equal(t, constants.RecordActionCreated, event.Action)
	})

	t.Run("rejects non positive price", func(t *testing.T) {
		svc := newProductServiceForTest(newFakeProductRepo(), &capturingPublisher{})

		_, err := svc.CreateProduct(context.Background(), testOwnerUID, &usecase.CreateProductInput{
			ModelName: "Nike Air Max 90",
			Brand:     "Nike",
			BasePrice: 0,
			Category:  entity.CategorySport,
			Gender:    entity.GenderUnisex,
		})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidPrice)
	})

	t.Run("rejects unknown category and gender", func(t *testing.T) {
		svc := newProductServiceForTest(newFakeProductRepo(), &capturingPublisher{})

		_, err := svc.CreateProduct(context.Background(), testOwnerUID, &usecase.CreateProductInput{
			ModelName: "Nike Air Max 90",
			Brand:     "Nike",
			BasePrice: 599.90,
			Category:  entity.ProductCategory("futebol"),
			Gender:    entity.GenderUnisex,
		})
		assertAppCode(t, err, "VALIDATION_FAILED")

		_, err = svc.CreateProduct(context.Background(), testOwnerUID, &usecase.CreateProductInput{
			ModelName: "Nike Air Max 90",
			Brand:     "Nike",
			BasePrice: 599.90,
			Category:  entity.CategorySport,
			Gender:    entity.ProductGender("infantil"),
		})
		assertAppCode(t, err, "VALIDATION_FAILED")
	})
}

func TestProductService_UpdateProduct(t *testing.T) {
	t.Run("patches only the provided fields", func(t *testing.T) {
		repo := newFakeProductRepo()
		seeded := repo.add(&entity.Product{ModelName: "Nike Air Max 90", Brand: "Nike", BasePrice: 599.90})
		svc := newProductServiceForTest(repo, &capturingPublisher{})

		price := 649.90
		_, err := svc.UpdateProduct(context.Background(), testOwnerUID, seeded.ID, &usecase.UpdateProductInput{
			BasePrice: &price,
		})

		require.NoError(t, err)
		assert.Equal(t, 649.90, repo.lastFields["precoBase"])
		assert.NotContains(t, repo.lastFields, "nomeModelo")
	})

	t.Run("rejects an empty edit", func(t *testing.T) {
		repo := newFakeProductRepo()
		seeded := repo.add(&entity.Product{ModelName: "Nike Air Max 90"})
		svc := newProductServiceForTest(repo, &capturingPublisher{})

		_, err := svc.UpdateProduct(context.Background(), testOwnerUID, seeded.ID, &usecase.UpdateProductInput{})

		assertAppCode(t, err, "VALIDATION_FAILED")
	})

	t.Run("maps a missing product to a not found error", func(t *testing.T) {
		svc := newProductServiceForTest(newFakeProductRepo(), &capturingPublisher{})

		brand := "Adidas"
		_, err := svc.UpdateProduct(context.Background(), testOwnerUID, "missing", &usecase.UpdateProductInput{Brand: &brand})

		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})
}

func TestProductService_DeleteProduct(t *testing.T) {
	t.Run("deletes with the correct passphrase", func(t *testing.T) {
		repo := newFakeProductRepo()
		seeded := repo.add(&entity.Product{ModelName: "Nike Air Max 90"})
		publisher := &capturingPublisher{}
		svc := newProductServiceForTest(repo, publisher)

		err := svc.DeleteProduct(context.Background(), testOwnerUID, seeded.ID, testDeletePass)

		require.NoError(t, err)
		assert.Empty(t, repo.records)
		assert.Equal(t, constants.RecordActionDeleted, publisher.last().Action)
	})

	t.Run("rejects a wrong passphrase and keeps the record", func(t *testing.T) {
		repo := newFakeProductRepo()
		seeded := repo.add(&entity.Product{ModelName: "Nike Air Max 90"})
		svc := newProductServiceForTest(repo, &capturingPublisher{})

		err := svc.DeleteProduct(context.Background(), testOwnerUID, seeded.ID, "wrong")

		assert.ErrorIs(t, err, domainerrors.ErrPassphraseRejected)
		assert.Len(t, repo.records, 1)
	})
}

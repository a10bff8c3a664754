package inventory

import (
	"context"
	"dental-clinic-service/internal/app/contracts/mocks"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/exceptions"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func TestCreateProduct(t *testing.T) {
	t.Run("Normalises SKU and defaults to active", func(t *testing.T) {
		repo := new(mocks.ProductRepository)
		productID := primitive.NewObjectID()
		repo.On("FindBySKU", mock.Anything, "GLV-M").Return(nil, nil)
		repo.On("Create", mock.Anything, mock.MatchedBy(func(p *models.Product) bool {
			return p.SKU == "GLV-M" && p.Active && p.MinStock == 10
		})).Return(productID.Hex(), nil)

		uc := NewProductUsecase(repo, zap.NewNop())
		product, err := uc.CreateProduct(context.Background(), &requests.Product{SKU: " glv-m ", Name: "Gloves M", Unit: "box", MinStock: 10})

		require.NoError(t, err)
		assert.Equal(t, productID, product.ID)
		assert.Equal(t, "GLV-M", product.SKU)
	})

	t.Run("Duplicate SKU", func(t *testing.T) {
		repo := new(mocks.ProductRepository)
		repo.On("FindBySKU", mock.Anything, "GLV-M").Return(newProduct(), nil)

		uc := NewProductUsecase(repo, zap.NewNop())
		_, err := uc.CreateProduct(context.Background(), &requests.Product{SKU: "GLV-M", Name: "Gloves M", Unit: "box"})

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestUpdateProduct(t *testing.T) {
	t.Run("Keeps active flag when omitted", func(t *testing.T) {
		repo := new(mocks.ProductRepository)
		product := newProduct()
		repo.On("FindByID", mock.Anything, product.ID.Hex()).Return(product, nil)
		repo.On("Update", mock.Anything, product).Return(nil)

		uc := NewProductUsecase(repo, zap.NewNop())
		updated, err := uc.UpdateProduct(context.Background(), product.ID.Hex(), &requests.Product{SKU: "GLV-M", Name: "Nitrile gloves M", Unit: "box", MinStock: 20})

		require.NoError(t, err)
		assert.True(t, updated.Active)
		assert.Equal(t, 20, updated.MinStock)
		repo.AssertNotCalled(t, "FindBySKU", mock.Anything, mock.Anything)
	})

	t.Run("SKU taken by another product", func(t *testing.T) {
		repo := new(mocks.ProductRepository)
		product := newProduct()
		repo.On("FindByID", mock.Anything, product.ID.Hex()).Return(product, nil)
		repo.On("FindBySKU", mock.Anything, "GLV-L").Return(&models.Product{ID: primitive.NewObjectID(), SKU: "GLV-L"}, nil)

		uc := NewProductUsecase(repo, zap.NewNop())
		_, err := uc.UpdateProduct(context.Background(), product.ID.Hex(), &requests.Product{SKU: "glv-l", Name: "Gloves L", Unit: "box"})

		assert.Error(t, err)
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestDeleteProduct(t *testing.T) {
	t.Run("Unknown product", func(t *testing.T) {
		repo := new(mocks.ProductRepository)
		productID := primitive.NewObjectID().Hex()
		repo.On("FindByID", mock.Anything, productID).Return(nil, nil)

		uc := NewProductUsecase(repo, zap.NewNop())
		err := uc.DeleteProduct(context.Background(), productID)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})

	t.Run("Repository error", func(t *testing.T) {
		repo := new(mocks.ProductRepository)
		product := newProduct()
		repo.On("FindByID", mock.Anything, product.ID.Hex()).Return(product, nil)
		repo.On("Delete", mock.Anything, product.ID.Hex()).Return(errors.New("connection reset"))

		uc := NewProductUsecase(repo, zap.NewNop())
		err := uc.DeleteProduct(context.Background(), product.ID.Hex())

		assert.EqualError(t, err, "connection reset")
	})
}

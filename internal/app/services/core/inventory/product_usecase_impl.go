package inventory

import (
	"context"
	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/exceptions"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type productUsecase struct {
	ProductRepository contracts.ProductRepository
	Log               *zap.Logger
}

func NewProductUsecase(productRepository contracts.ProductRepository, logger *zap.Logger) contracts.ProductUsecase {
	return &productUsecase{
		ProductRepository: productRepository,
		Log:               logger,
	}
}

func (uc *productUsecase) CreateProduct(ctx context.Context, request *requests.Product) (*models.Product, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("productUsecase.CreateProduct called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	sku := strings.ToUpper(strings.TrimSpace(request.SKU))
	existing, err := uc.ProductRepository.FindBySKU(ctx, sku)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrDocumentAlreadyExists(nil, "product")
	}

	product := &models.Product{
		SKU:      sku,
		Name:     request.Name,
		Category: request.Category,
		Unit:     request.Unit,
		MinStock: request.MinStock,
		Active:   request.Active == nil || *request.Active,
	}
	product.SetCreatedAtUpdatedAt()

	productID, err := uc.ProductRepository.Create(ctx, product)
	if err != nil {
		uc.Log.Error("productUsecase.CreateProduct error calling ProductRepository.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	product.ID, _ = primitive.ObjectIDFromHex(productID)
	return product, nil
}

func (uc *productUsecase) FindAllProducts(ctx context.Context) ([]models.Product, error) {
	return uc.ProductRepository.FindAll(ctx)
}

func (uc *productUsecase) FindProductByID(ctx context.Context, productID string) (*models.Product, error) {
	product, err := uc.ProductRepository.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, exceptions.ErrDocumentNotFound(nil, "product")
	}
	return product, nil
}

func (uc *productUsecase) UpdateProduct(ctx context.Context, productID string, request *requests.Product) (*models.Product, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("productUsecase.UpdateProduct called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProductIDKey, productID),
	)

	product, err := uc.FindProductByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	sku := strings.ToUpper(strings.TrimSpace(request.SKU))
	if sku != product.SKU {
		existing, err := uc.ProductRepository.FindBySKU(ctx, sku)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, exceptions.ErrDocumentAlreadyExists(nil, "product")
		}
	}

	product.SKU = sku
	product.Name = request.Name
	product.Category = request.Category
	product.Unit = request.Unit
	product.MinStock = request.MinStock
	if request.Active != nil {
		product.Active = *request.Active
	}

	err = uc.ProductRepository.Update(ctx, product)
	if err != nil {
		uc.Log.Error("productUsecase.UpdateProduct error calling ProductRepository.Update",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return product, nil
}

func (uc *productUsecase) DeleteProduct(ctx context.Context, productID string) error {
	if _, err := uc.FindProductByID(ctx, productID); err != nil {
		return err
	}
	return uc.ProductRepository.Delete(ctx, productID)
}

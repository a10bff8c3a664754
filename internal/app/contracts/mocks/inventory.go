package mocks

import (
	"context"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/dto/responses"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductRepository struct {
	mock.Mock
}

func (m *ProductRepository) Create(ctx context.Context, product *models.Product) (string, error) {
	args := m.Called(ctx, product)
	return args.String(0), args.Error(1)
}

func (m *ProductRepository) FindByID(ctx context.Context, productID string) (*models.Product, error) {
	args := m.Called(ctx, productID)
	var r0 *models.Product
	if value, ok := args.Get(0).(*models.Product); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *ProductRepository) FindBySKU(ctx context.Context, sku string) (*models.Product, error) {
	args := m.Called(ctx, sku)
	var r0 *models.Product
	if value, ok := args.Get(0).(*models.Product); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *ProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	var r0 []models.Product
	if value, ok := args.Get(0).([]models.Product); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *ProductRepository) Update(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *ProductRepository) Delete(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

type BatchRepository struct {
	mock.Mock
}

func (m *BatchRepository) Create(ctx context.Context, batch *models.Batch) (string, error) {
	args := m.Called(ctx, batch)
	return args.String(0), args.Error(1)
}

func (m *BatchRepository) FindAvailable(ctx context.Context, productID primitive.ObjectID, branchID primitive.ObjectID) ([]models.Batch, error) {
	args := m.Called(ctx, productID, branchID)
	var r0 []models.Batch
	if value, ok := args.Get(0).([]models.Batch); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *BatchRepository) FindAll(ctx context.Context, productID string, branchID string) ([]models.Batch, error) {
	args := m.Called(ctx, productID, branchID)
	var r0 []models.Batch
	if value, ok := args.Get(0).([]models.Batch); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *BatchRepository) FindExpiring(ctx context.Context, before time.Time) ([]models.Batch, error) {
	args := m.Called(ctx, before)
	var r0 []models.Batch
	if value, ok := args.Get(0).([]models.Batch); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *BatchRepository) Consume(ctx context.Context, batchID primitive.ObjectID, quantity int) error {
	args := m.Called(ctx, batchID, quantity)
	return args.Error(0)
}

type StockRepository struct {
	mock.Mock
}

func (m *StockRepository) Increment(ctx context.Context, productID primitive.ObjectID, branchID primitive.ObjectID, delta int) (int, error) {
	args := m.Called(ctx, productID, branchID, delta)
	return args.Int(0), args.Error(1)
}

func (m *StockRepository) FindOne(ctx context.Context, productID primitive.ObjectID, branchID primitive.ObjectID) (*models.Stock, error) {
	args := m.Called(ctx, productID, branchID)
	var r0 *models.Stock
	if value, ok := args.Get(0).(*models.Stock); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *StockRepository) FindAll(ctx context.Context, branchID string) ([]models.Stock, error) {
	args := m.Called(ctx, branchID)
	var r0 []models.Stock
	if value, ok := args.Get(0).([]models.Stock); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

type StockMovementRepository struct {
	mock.Mock
}

func (m *StockMovementRepository) Create(ctx context.Context, movement *models.StockMovement) (string, error) {
	args := m.Called(ctx, movement)
	return args.String(0), args.Error(1)
}

func (m *StockMovementRepository) FindAll(ctx context.Context, request *requests.FindAllStockMovements) ([]models.StockMovement, int, error) {
	args := m.Called(ctx, request)
	var r0 []models.StockMovement
	if value, ok := args.Get(0).([]models.StockMovement); ok {
		r0 = value
	}
	return r0, args.Int(1), args.Error(2)
}

type WithdrawalRepository struct {
	mock.Mock
}

func (m *WithdrawalRepository) Create(ctx context.Context, withdrawal *models.WithdrawalRequest) (string, error) {
	args := m.Called(ctx, withdrawal)
	return args.String(0), args.Error(1)
}

func (m *WithdrawalRepository) FindByID(ctx context.Context, withdrawalID string) (*models.WithdrawalRequest, error) {
	args := m.Called(ctx, withdrawalID)
	var r0 *models.WithdrawalRequest
	if value, ok := args.Get(0).(*models.WithdrawalRequest); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *WithdrawalRepository) FindAll(ctx context.Context, request *requests.FindAllWithdrawals) ([]models.WithdrawalRequest, int, error) {
	args := m.Called(ctx, request)
	var r0 []models.WithdrawalRequest
	if value, ok := args.Get(0).([]models.WithdrawalRequest); ok {
		r0 = value
	}
	return r0, args.Int(1), args.Error(2)
}

func (m *WithdrawalRepository) Update(ctx context.Context, withdrawal *models.WithdrawalRequest, expectedStatus string) error {
	args := m.Called(ctx, withdrawal, expectedStatus)
	return args.Error(0)
}

type ProductUsecase struct {
	mock.Mock
}

func (m *ProductUsecase) CreateProduct(ctx context.Context, request *requests.Product) (*models.Product, error) {
	args := m.Called(ctx, request)
	var r0 *models.Product
	if value, ok := args.Get(0).(*models.Product); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *ProductUsecase) FindAllProducts(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	var r0 []models.Product
	if value, ok := args.Get(0).([]models.Product); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *ProductUsecase) FindProductByID(ctx context.Context, productID string) (*models.Product, error) {
	args := m.Called(ctx, productID)
	var r0 *models.Product
	if value, ok := args.Get(0).(*models.Product); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *ProductUsecase) UpdateProduct(ctx context.Context, productID string, request *requests.Product) (*models.Product, error) {
	args := m.Called(ctx, productID, request)
	var r0 *models.Product
	if value, ok := args.Get(0).(*models.Product); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *ProductUsecase) DeleteProduct(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

type InventoryUsecase struct {
	mock.Mock
}

func (m *InventoryUsecase) ReceiveStock(ctx context.Context, request *requests.ReceiveStock) (*models.Batch, error) {
	args := m.Called(ctx, request)
	var r0 *models.Batch
	if value, ok := args.Get(0).(*models.Batch); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *InventoryUsecase) AdjustStock(ctx context.Context, request *requests.AdjustStock) (*models.StockMovement, error) {
	args := m.Called(ctx, request)
	var r0 *models.StockMovement
	if value, ok := args.Get(0).(*models.StockMovement); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *InventoryUsecase) TransferStock(ctx context.Context, request *requests.TransferStock) ([]models.StockMovement, error) {
	args := m.Called(ctx, request)
	var r0 []models.StockMovement
	if value, ok := args.Get(0).([]models.StockMovement); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *InventoryUsecase) FindStockByBranch(ctx context.Context, branchID string) ([]models.Stock, error) {
	args := m.Called(ctx, branchID)
	var r0 []models.Stock
	if value, ok := args.Get(0).([]models.Stock); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *InventoryUsecase) FindBatches(ctx context.Context, productID string, branchID string) ([]models.Batch, error) {
	args := m.Called(ctx, productID, branchID)
	var r0 []models.Batch
	if value, ok := args.Get(0).([]models.Batch); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *InventoryUsecase) FindAllStockMovements(ctx context.Context, request *requests.FindAllStockMovements) ([]models.StockMovement, int, error) {
	args := m.Called(ctx, request)
	var r0 []models.StockMovement
	if value, ok := args.Get(0).([]models.StockMovement); ok {
		r0 = value
	}
	return r0, args.Int(1), args.Error(2)
}

func (m *InventoryUsecase) FindLowStock(ctx context.Context, branchID string) ([]responses.LowStockItem, error) {
	args := m.Called(ctx, branchID)
	var r0 []responses.LowStockItem
	if value, ok := args.Get(0).([]responses.LowStockItem); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *InventoryUsecase) ScanLowStock(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *InventoryUsecase) ScanExpiringBatches(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type WithdrawalUsecase struct {
	mock.Mock
}

func (m *WithdrawalUsecase) CreateWithdrawal(ctx context.Context, request *requests.CreateWithdrawal) (*models.WithdrawalRequest, error) {
	args := m.Called(ctx, request)
	var r0 *models.WithdrawalRequest
	if value, ok := args.Get(0).(*models.WithdrawalRequest); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *WithdrawalUsecase) FindAllWithdrawals(ctx context.Context, request *requests.FindAllWithdrawals) ([]models.WithdrawalRequest, int, error) {
	args := m.Called(ctx, request)
	var r0 []models.WithdrawalRequest
	if value, ok := args.Get(0).([]models.WithdrawalRequest); ok {
		r0 = value
	}
	return r0, args.Int(1), args.Error(2)
}

func (m *WithdrawalUsecase) FindWithdrawalByID(ctx context.Context, withdrawalID string) (*models.WithdrawalRequest, error) {
	args := m.Called(ctx, withdrawalID)
	var r0 *models.WithdrawalRequest
	if value, ok := args.Get(0).(*models.WithdrawalRequest); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *WithdrawalUsecase) ApproveWithdrawal(ctx context.Context, withdrawalID string, request *requests.ReviewWithdrawal) (*models.WithdrawalRequest, error) {
	args := m.Called(ctx, withdrawalID, request)
	var r0 *models.WithdrawalRequest
	if value, ok := args.Get(0).(*models.WithdrawalRequest); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *WithdrawalUsecase) RejectWithdrawal(ctx context.Context, withdrawalID string, request *requests.ReviewWithdrawal) (*models.WithdrawalRequest, error) {
	args := m.Called(ctx, withdrawalID, request)
	var r0 *models.WithdrawalRequest
	if value, ok := args.Get(0).(*models.WithdrawalRequest); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

package contracts

import (
	"context"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/dto/responses"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) (string, error)
	FindByID(ctx context.Context, productID string) (*models.Product, error)
	FindBySKU(ctx context.Context, sku string) (*models.Product, error)
	FindAll(ctx context.Context) ([]models.Product, error)
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, productID string) error
}

type BatchRepository interface {
	Create(ctx context.Context, batch *models.Batch) (string, error)
	FindAvailable(ctx context.Context, productID, branchID primitive.ObjectID) ([]models.Batch, error)
	FindAll(ctx context.Context, productID, branchID string) ([]models.Batch, error)
	FindExpiring(ctx context.Context, before time.Time) ([]models.Batch, error)
	// Consume decrements the remaining quantity of a batch, failing when the
	// batch holds less than quantity.
	Consume(ctx context.Context, batchID primitive.ObjectID, quantity int) error
}

type StockRepository interface {
	// Increment applies a signed change to the stock of a product at a
	// branch and returns the new quantity. Negative changes never take the
	// quantity below zero.
	Increment(ctx context.Context, productID, branchID primitive.ObjectID, delta int) (int, error)
	FindOne(ctx context.Context, productID, branchID primitive.ObjectID) (*models.Stock, error)
	FindAll(ctx context.Context, branchID string) ([]models.Stock, error)
}

type StockMovementRepository interface {
	Create(ctx context.Context, movement *models.StockMovement) (string, error)
	FindAll(ctx context.Context, request *requests.FindAllStockMovements) ([]models.StockMovement, int, error)
}

type WithdrawalRepository interface {
	Create(ctx context.Context, withdrawal *models.WithdrawalRequest) (string, error)
	FindByID(ctx context.Context, withdrawalID string) (*models.WithdrawalRequest, error)
	FindAll(ctx context.Context, request *requests.FindAllWithdrawals) ([]models.WithdrawalRequest, int, error)
	// Update replaces the request only while its stored status still equals
	// expectedStatus.
	Update(ctx context.Context, withdrawal *models.WithdrawalRequest, expectedStatus string) error
}

type ProductUsecase interface {
	CreateProduct(ctx context.Context, request *requests.Product) (*models.Product, error)
	FindAllProducts(ctx context.Context) ([]models.Product, error)
	FindProductByID(ctx context.Context, productID string) (*models.Product, error)
	UpdateProduct(ctx context.Context, productID string, request *requests.Product) (*models.Product, error)
	DeleteProduct(ctx context.Context, productID string) error
}

type InventoryUsecase interface {
	ReceiveStock(ctx context.Context, request *requests.ReceiveStock) (*models.Batch, error)
	AdjustStock(ctx context.Context, request *requests.AdjustStock) (*models.StockMovement, error)
	TransferStock(ctx context.Context, request *requests.TransferStock) ([]models.StockMovement, error)
	FindStockByBranch(ctx context.Context, branchID string) ([]models.Stock, error)
	FindBatches(ctx context.Context, productID, branchID string) ([]models.Batch, error)
	FindAllStockMovements(ctx context.Context, request *requests.FindAllStockMovements) ([]models.StockMovement, int, error)
	FindLowStock(ctx context.Context, branchID string) ([]responses.LowStockItem, error)
	ScanLowStock(ctx context.Context) (int, error)
	ScanExpiringBatches(ctx context.Context) (int, error)
}

type WithdrawalUsecase interface {
	CreateWithdrawal(ctx context.Context, request *requests.CreateWithdrawal) (*models.WithdrawalRequest, error)
	FindAllWithdrawals(ctx context.Context, request *requests.FindAllWithdrawals) ([]models.WithdrawalRequest, int, error)
	FindWithdrawalByID(ctx context.Context, withdrawalID string) (*models.WithdrawalRequest, error)
	ApproveWithdrawal(ctx context.Context, withdrawalID string, request *requests.ReviewWithdrawal) (*models.WithdrawalRequest, error)
	RejectWithdrawal(ctx context.Context, withdrawalID string, request *requests.ReviewWithdrawal) (*models.WithdrawalRequest, error)
}

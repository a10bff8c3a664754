package inventory

import (
	"context"
	"dental-clinic-service/internal/app/config"
	"dental-clinic-service/internal/app/contracts/mocks"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/exceptions"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type inventoryFixture struct {
	productRepo   *mocks.ProductRepository
	batchRepo     *mocks.BatchRepository
	stockRepo     *mocks.StockRepository
	movementRepo  *mocks.StockMovementRepository
	branchRepo    *mocks.BranchRepository
	withdrawRepo  *mocks.WithdrawalRepository
	transactor    *mocks.Transactor
	notifications *mocks.NotificationPublisher
	events        *mocks.EventPublisher
	cfg           *config.InternalConfig
	now           time.Time
}

func newInventoryFixture() *inventoryFixture {
	f := &inventoryFixture{
		productRepo:   new(mocks.ProductRepository),
		batchRepo:     new(mocks.BatchRepository),
		stockRepo:     new(mocks.StockRepository),
		movementRepo:  new(mocks.StockMovementRepository),
		branchRepo:    new(mocks.BranchRepository),
		withdrawRepo:  new(mocks.WithdrawalRepository),
		transactor:    new(mocks.Transactor),
		notifications: new(mocks.NotificationPublisher),
		events:        new(mocks.EventPublisher),
		cfg: &config.InternalConfig{
			Notification: config.AppNotification{InventoryRecipient: "stock@clinic.test"},
			Inventory:    config.AppInventory{ExpiryWarningDays: 30},
		},
		now: time.Date(2024, 5, 6, 8, 0, 0, 0, time.UTC),
	}
	f.events.On("Publish", mock.Anything, mock.Anything).Return(nil).Maybe()
	f.movementRepo.On("Create", mock.Anything, mock.Anything).Return(primitive.NewObjectID().Hex(), nil).Maybe()
	return f
}

func (f *inventoryFixture) usecase() *inventoryUsecase {
	uc := NewInventoryUsecase(f.productRepo, f.batchRepo, f.stockRepo, f.movementRepo, f.branchRepo, f.transactor, f.notifications, f.events, f.cfg, zap.NewNop()).(*inventoryUsecase)
	uc.now = func() time.Time { return f.now }
	return uc
}

func (f *inventoryFixture) withdrawals() *withdrawalUsecase {
	return NewWithdrawalUsecase(f.withdrawRepo, f.productRepo, f.batchRepo, f.stockRepo, f.movementRepo, f.branchRepo, f.transactor, f.events, zap.NewNop()).(*withdrawalUsecase)
}

func (f *inventoryFixture) expectProduct(product *models.Product) {
	f.productRepo.On("FindByID", mock.Anything, product.ID.Hex()).Return(product, nil)
}

func (f *inventoryFixture) expectBranch(branch *models.Branch) {
	f.branchRepo.On("FindByID", mock.Anything, branch.ID.Hex()).Return(branch, nil)
}

func newProduct() *models.Product {
	return &models.Product{ID: primitive.NewObjectID(), SKU: "GLV-M", Name: "Gloves M", Unit: "box", MinStock: 10, Active: true}
}

func newBranch(name string) *models.Branch {
	return &models.Branch{ID: primitive.NewObjectID(), Name: name, Active: true}
}

func TestReceiveStock(t *testing.T) {
	f := newInventoryFixture()
	product, branch := newProduct(), newBranch("Central")
	f.expectProduct(product)
	f.expectBranch(branch)
	batchID := primitive.NewObjectID()
	f.batchRepo.On("Create", mock.Anything, mock.MatchedBy(func(b *models.Batch) bool {
		return b.Remaining == 25 && b.Quantity == 25 && b.LotNumber == "L-01" && b.ReceivedAt.Equal(f.now)
	})).Return(batchID.Hex(), nil)
	f.stockRepo.On("Increment", mock.Anything, product.ID, branch.ID, 25).Return(40, nil)

	batch, err := f.usecase().ReceiveStock(context.Background(), &requests.ReceiveStock{
		ProductID: product.ID.Hex(),
		BranchID:  branch.ID.Hex(),
		LotNumber: "L-01",
		Quantity:  25,
		UnitCost:  12000,
	})
	require.NoError(t, err)
	assert.Equal(t, batchID, batch.ID)
	assert.Equal(t, 1, f.transactor.Calls)
	f.movementRepo.AssertCalled(t, "Create", mock.Anything, mock.MatchedBy(func(m *models.StockMovement) bool {
		return m.Type == constvars.StockMovementReceive && m.Quantity == 25 && m.BalanceAfter == 40 && *m.BatchID == batchID
	}))
}

func TestAdjustStock(t *testing.T) {
	t.Run("Deduction draws from batches", func(t *testing.T) {
		f := newInventoryFixture()
		product, branch := newProduct(), newBranch("Central")
		f.expectProduct(product)
		f.expectBranch(branch)
		batch := models.Batch{ID: primitive.NewObjectID(), Remaining: 8}
		f.batchRepo.On("FindAvailable", mock.Anything, product.ID, branch.ID).Return([]models.Batch{batch}, nil)
		f.batchRepo.On("Consume", mock.Anything, batch.ID, 3).Return(nil)
		f.stockRepo.On("Increment", mock.Anything, product.ID, branch.ID, -3).Return(5, nil)

		movement, err := f.usecase().AdjustStock(context.Background(), &requests.AdjustStock{
			ProductID: product.ID.Hex(),
			BranchID:  branch.ID.Hex(),
			Delta:     -3,
			Note:      "broken box",
		})
		require.NoError(t, err)
		assert.Equal(t, -3, movement.Quantity)
		assert.Equal(t, 5, movement.BalanceAfter)
	})

	t.Run("Deduction below zero is a conflict", func(t *testing.T) {
		f := newInventoryFixture()
		product, branch := newProduct(), newBranch("Central")
		f.expectProduct(product)
		f.expectBranch(branch)
		f.batchRepo.On("FindAvailable", mock.Anything, product.ID, branch.ID).Return([]models.Batch{{ID: primitive.NewObjectID(), Remaining: 2}}, nil)

		_, err := f.usecase().AdjustStock(context.Background(), &requests.AdjustStock{
			ProductID: product.ID.Hex(),
			BranchID:  branch.ID.Hex(),
			Delta:     -3,
			Note:      "count",
		})
		assert.Equal(t, constvars.StatusConflict, exceptions.StatusCode(err))
		f.stockRepo.AssertNotCalled(t, "Increment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Addition enters as adjustment batch", func(t *testing.T) {
		f := newInventoryFixture()
		product, branch := newProduct(), newBranch("Central")
		f.expectProduct(product)
		f.expectBranch(branch)
		f.batchRepo.On("Create", mock.Anything, mock.MatchedBy(func(b *models.Batch) bool {
			return b.LotNumber == adjustmentLotNumber && b.Remaining == 4 && b.UnitCost == 0
		})).Return(primitive.NewObjectID().Hex(), nil)
		f.stockRepo.On("Increment", mock.Anything, product.ID, branch.ID, 4).Return(4, nil)

		movement, err := f.usecase().AdjustStock(context.Background(), &requests.AdjustStock{
			ProductID: product.ID.Hex(),
			BranchID:  branch.ID.Hex(),
			Delta:     4,
			Note:      "found in storage",
		})
		require.NoError(t, err)
		assert.Equal(t, constvars.StockMovementAdjust, movement.Type)
	})
}

func TestTransferStock(t *testing.T) {
	t.Run("Mirrors consumed batches at the destination", func(t *testing.T) {
		f := newInventoryFixture()
		product := newProduct()
		source, destination := newBranch("Central"), newBranch("North")
		f.expectProduct(product)
		f.expectBranch(source)
		f.expectBranch(destination)
		expiry := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		first := models.Batch{ID: primitive.NewObjectID(), LotNumber: "A", ExpiryDate: &expiry, Remaining: 2, UnitCost: 500}
		second := models.Batch{ID: primitive.NewObjectID(), LotNumber: "B", Remaining: 10, UnitCost: 700}
		f.batchRepo.On("FindAvailable", mock.Anything, product.ID, source.ID).Return([]models.Batch{second, first}, nil)
		f.batchRepo.On("Consume", mock.Anything, first.ID, 2).Return(nil)
		f.batchRepo.On("Consume", mock.Anything, second.ID, 3).Return(nil)
		f.stockRepo.On("Increment", mock.Anything, product.ID, source.ID, -2).Return(10, nil)
		f.stockRepo.On("Increment", mock.Anything, product.ID, source.ID, -3).Return(7, nil)
		f.batchRepo.On("Create", mock.Anything, mock.MatchedBy(func(b *models.Batch) bool {
			return b.BranchID == destination.ID && b.LotNumber == "A" && b.Quantity == 2 && b.UnitCost == 500
		})).Return(primitive.NewObjectID().Hex(), nil)
		f.batchRepo.On("Create", mock.Anything, mock.MatchedBy(func(b *models.Batch) bool {
			return b.BranchID == destination.ID && b.LotNumber == "B" && b.Quantity == 3 && b.UnitCost == 700
		})).Return(primitive.NewObjectID().Hex(), nil)
		f.stockRepo.On("Increment", mock.Anything, product.ID, destination.ID, 2).Return(2, nil)
		f.stockRepo.On("Increment", mock.Anything, product.ID, destination.ID, 3).Return(5, nil)

		movements, err := f.usecase().TransferStock(context.Background(), &requests.TransferStock{
			ProductID:    product.ID.Hex(),
			FromBranchID: source.ID.Hex(),
			ToBranchID:   destination.ID.Hex(),
			Quantity:     5,
		})
		require.NoError(t, err)
		require.Len(t, movements, 4)
		assert.Equal(t, constvars.StockMovementTransferOut, movements[0].Type)
		assert.Equal(t, constvars.StockMovementTransferIn, movements[3].Type)
		assert.Equal(t, movements[0].Reference, movements[3].Reference)
		assert.True(t, strings.HasPrefix(movements[0].Reference, "TRF-"))
	})

	t.Run("Same branch is rejected", func(t *testing.T) {
		f := newInventoryFixture()
		branchID := primitive.NewObjectID().Hex()

		_, err := f.usecase().TransferStock(context.Background(), &requests.TransferStock{
			ProductID:    primitive.NewObjectID().Hex(),
			FromBranchID: branchID,
			ToBranchID:   branchID,
			Quantity:     1,
		})
		assert.Equal(t, constvars.StatusBadRequest, exceptions.StatusCode(err))
	})

	t.Run("Insufficient source stock", func(t *testing.T) {
		f := newInventoryFixture()
		product := newProduct()
		source, destination := newBranch("Central"), newBranch("North")
		f.expectProduct(product)
		f.expectBranch(source)
		f.expectBranch(destination)
		f.batchRepo.On("FindAvailable", mock.Anything, product.ID, source.ID).Return([]models.Batch{{ID: primitive.NewObjectID(), Remaining: 1}}, nil)

		_, err := f.usecase().TransferStock(context.Background(), &requests.TransferStock{
			ProductID:    product.ID.Hex(),
			FromBranchID: source.ID.Hex(),
			ToBranchID:   destination.ID.Hex(),
			Quantity:     5,
		})
		assert.Equal(t, constvars.StatusConflict, exceptions.StatusCode(err))
		f.batchRepo.AssertNotCalled(t, "Consume", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestFindLowStock(t *testing.T) {
	f := newInventoryFixture()
	gloves := newProduct()
	masks := &models.Product{ID: primitive.NewObjectID(), SKU: "MSK", Name: "Masks", MinStock: 5, Active: true}
	retired := &models.Product{ID: primitive.NewObjectID(), SKU: "OLD", Name: "Old", MinStock: 5, Active: false}
	central, north := newBranch("Central"), newBranch("North")
	f.branchRepo.On("FindAll", mock.Anything).Return([]models.Branch{*central, *north}, nil)
	f.productRepo.On("FindAll", mock.Anything).Return([]models.Product{*gloves, *masks, *retired}, nil)
	f.stockRepo.On("FindAll", mock.Anything, "").Return([]models.Stock{
		{ProductID: gloves.ID, BranchID: central.ID, Quantity: 12},
		{ProductID: masks.ID, BranchID: central.ID, Quantity: 4},
		{ProductID: gloves.ID, BranchID: north.ID, Quantity: 3},
	}, nil)

	items, err := f.usecase().FindLowStock(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, masks.ID.Hex(), items[0].ProductID)
	assert.Equal(t, 4, items[0].Quantity)
	assert.Equal(t, gloves.ID.Hex(), items[1].ProductID)
	assert.Equal(t, north.ID.Hex(), items[1].BranchID)
	assert.Equal(t, 0, items[2].Quantity, "never received counts as zero")
}

func TestScanExpiringBatches(t *testing.T) {
	f := newInventoryFixture()
	product, branch := newProduct(), newBranch("Central")
	expiry := f.now.AddDate(0, 0, 10)
	f.batchRepo.On("FindExpiring", mock.Anything, f.now.AddDate(0, 0, 30)).Return([]models.Batch{
		{ID: primitive.NewObjectID(), ProductID: product.ID, BranchID: branch.ID, LotNumber: "L-9", ExpiryDate: &expiry, Remaining: 6},
	}, nil)
	f.branchRepo.On("FindAll", mock.Anything).Return([]models.Branch{*branch}, nil)
	f.productRepo.On("FindAll", mock.Anything).Return([]models.Product{*product}, nil)
	f.notifications.On("Publish", mock.Anything, mock.MatchedBy(func(n *models.Notification) bool {
		return n.Type == constvars.NotificationTypeBatchExpiry &&
			n.Recipient == "stock@clinic.test" &&
			strings.Contains(n.Body, "L-9") &&
			strings.Contains(n.Body, "Gloves M") &&
			strings.Contains(n.Body, "Central")
	})).Return(nil).Once()

	count, err := f.usecase().ScanExpiringBatches(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	f.notifications.AssertExpectations(t)
}

func TestScanLowStockWithoutRecipient(t *testing.T) {
	f := newInventoryFixture()
	f.cfg.Notification.InventoryRecipient = ""

	count, err := f.usecase().ScanLowStock(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
	f.productRepo.AssertNotCalled(t, "FindAll", mock.Anything)
}

func TestApproveWithdrawal(t *testing.T) {
	t.Run("Consumes batches and marks approved", func(t *testing.T) {
		f := newInventoryFixture()
		product, branch := newProduct(), newBranch("Central")
		withdrawal := &models.WithdrawalRequest{
			ID:       primitive.NewObjectID(),
			BranchID: branch.ID,
			Items:    []models.WithdrawalItem{{ProductID: product.ID, Quantity: 4}},
			Status:   constvars.WithdrawalStatusPending,
		}
		batch := models.Batch{ID: primitive.NewObjectID(), Remaining: 10}
		f.withdrawRepo.On("FindByID", mock.Anything, withdrawal.ID.Hex()).Return(withdrawal, nil)
		f.expectProduct(product)
		f.batchRepo.On("FindAvailable", mock.Anything, product.ID, branch.ID).Return([]models.Batch{batch}, nil)
		f.batchRepo.On("Consume", mock.Anything, batch.ID, 4).Return(nil)
		f.stockRepo.On("Increment", mock.Anything, product.ID, branch.ID, -4).Return(6, nil)
		f.withdrawRepo.On("Update", mock.Anything, withdrawal, constvars.WithdrawalStatusPending).Return(nil)

		approved, err := f.withdrawals().ApproveWithdrawal(context.Background(), withdrawal.ID.Hex(), &requests.ReviewWithdrawal{Note: "ok"})
		require.NoError(t, err)
		assert.Equal(t, constvars.WithdrawalStatusApproved, approved.Status)
		assert.NotNil(t, approved.ReviewedAt)
		f.movementRepo.AssertCalled(t, "Create", mock.Anything, mock.MatchedBy(func(m *models.StockMovement) bool {
			return m.Type == constvars.StockMovementWithdraw && m.Quantity == -4 && m.Reference == withdrawal.ID.Hex()
		}))
	})

	t.Run("Nothing is written when one line is short", func(t *testing.T) {
		f := newInventoryFixture()
		gloves, masks := newProduct(), &models.Product{ID: primitive.NewObjectID(), Name: "Masks"}
		branch := newBranch("Central")
		withdrawal := &models.WithdrawalRequest{
			ID:       primitive.NewObjectID(),
			BranchID: branch.ID,
			Items: []models.WithdrawalItem{
				{ProductID: gloves.ID, Quantity: 1},
				{ProductID: masks.ID, Quantity: 50},
			},
			Status: constvars.WithdrawalStatusPending,
		}
		f.withdrawRepo.On("FindByID", mock.Anything, withdrawal.ID.Hex()).Return(withdrawal, nil)
		f.expectProduct(gloves)
		f.expectProduct(masks)
		f.batchRepo.On("FindAvailable", mock.Anything, gloves.ID, branch.ID).Return([]models.Batch{{ID: primitive.NewObjectID(), Remaining: 5}}, nil)
		f.batchRepo.On("FindAvailable", mock.Anything, masks.ID, branch.ID).Return([]models.Batch{{ID: primitive.NewObjectID(), Remaining: 5}}, nil)

		_, err := f.withdrawals().ApproveWithdrawal(context.Background(), withdrawal.ID.Hex(), &requests.ReviewWithdrawal{})
		assert.Equal(t, constvars.StatusConflict, exceptions.StatusCode(err))
		f.batchRepo.AssertNotCalled(t, "Consume", mock.Anything, mock.Anything, mock.Anything)
		f.withdrawRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Rejected while the approval was running", func(t *testing.T) {
		f := newInventoryFixture()
		product, branch := newProduct(), newBranch("Central")
		withdrawal := &models.WithdrawalRequest{
			ID:       primitive.NewObjectID(),
			BranchID: branch.ID,
			Items:    []models.WithdrawalItem{{ProductID: product.ID, Quantity: 2}},
			Status:   constvars.WithdrawalStatusPending,
		}
		batch := models.Batch{ID: primitive.NewObjectID(), Remaining: 10}
		f.withdrawRepo.On("FindByID", mock.Anything, withdrawal.ID.Hex()).Return(withdrawal, nil)
		f.expectProduct(product)
		f.batchRepo.On("FindAvailable", mock.Anything, product.ID, branch.ID).Return([]models.Batch{batch}, nil)
		f.batchRepo.On("Consume", mock.Anything, batch.ID, 2).Return(nil)
		f.stockRepo.On("Increment", mock.Anything, product.ID, branch.ID, -2).Return(8, nil)
		f.withdrawRepo.On("Update", mock.Anything, withdrawal, constvars.WithdrawalStatusPending).
			Return(exceptions.ErrDocumentChanged(nil, "withdrawal request"))

		_, err := f.withdrawals().ApproveWithdrawal(context.Background(), withdrawal.ID.Hex(), &requests.ReviewWithdrawal{})
		assert.Equal(t, constvars.StatusConflict, exceptions.StatusCode(err))
		f.events.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})

	t.Run("Reviewed request cannot be approved again", func(t *testing.T) {
		f := newInventoryFixture()
		withdrawal := &models.WithdrawalRequest{ID: primitive.NewObjectID(), Status: constvars.WithdrawalStatusRejected}
		f.withdrawRepo.On("FindByID", mock.Anything, withdrawal.ID.Hex()).Return(withdrawal, nil)

		_, err := f.withdrawals().ApproveWithdrawal(context.Background(), withdrawal.ID.Hex(), &requests.ReviewWithdrawal{})
		assert.Equal(t, constvars.StatusConflict, exceptions.StatusCode(err))
	})
}

func TestCreateAndRejectWithdrawal(t *testing.T) {
	f := newInventoryFixture()
	product, branch := newProduct(), newBranch("Central")
	f.expectBranch(branch)
	f.expectProduct(product)
	withdrawalID := primitive.NewObjectID()
	f.withdrawRepo.On("Create", mock.Anything, mock.MatchedBy(func(w *models.WithdrawalRequest) bool {
		return len(w.Items) == 1 && w.Items[0].Quantity == 5 && w.Status == constvars.WithdrawalStatusPending
	})).Return(withdrawalID.Hex(), nil)

	withdrawal, err := f.withdrawals().CreateWithdrawal(context.Background(), &requests.CreateWithdrawal{
		BranchID: branch.ID.Hex(),
		Items: []requests.WithdrawalItem{
			{ProductID: product.ID.Hex(), Quantity: 2},
			{ProductID: product.ID.Hex(), Quantity: 3},
		},
		Reason: "surgery room",
	})
	require.NoError(t, err)
	assert.Equal(t, withdrawalID, withdrawal.ID)

	f.withdrawRepo.On("FindByID", mock.Anything, withdrawalID.Hex()).Return(withdrawal, nil)
	f.withdrawRepo.On("Update", mock.Anything, withdrawal, constvars.WithdrawalStatusPending).Return(nil)

	rejected, err := f.withdrawals().RejectWithdrawal(context.Background(), withdrawalID.Hex(), &requests.ReviewWithdrawal{Note: "not needed"})
	require.NoError(t, err)
	assert.Equal(t, constvars.WithdrawalStatusRejected, rejected.Status)
	assert.Equal(t, "not needed", rejected.ReviewNote)
	f.batchRepo.AssertNotCalled(t, "Consume", mock.Anything, mock.Anything, mock.Anything)
}

func TestRejectWithdrawalApprovedConcurrently(t *testing.T) {
	f := newInventoryFixture()
	withdrawal := &models.WithdrawalRequest{ID: primitive.NewObjectID(), Status: constvars.WithdrawalStatusPending}
	f.withdrawRepo.On("FindByID", mock.Anything, withdrawal.ID.Hex()).Return(withdrawal, nil)
	f.withdrawRepo.On("Update", mock.Anything, withdrawal, constvars.WithdrawalStatusPending).
		Return(exceptions.ErrDocumentChanged(nil, "withdrawal request"))

	_, err := f.withdrawals().RejectWithdrawal(context.Background(), withdrawal.ID.Hex(), &requests.ReviewWithdrawal{Note: "late"})
	assert.Equal(t, constvars.StatusConflict, exceptions.StatusCode(err))
}

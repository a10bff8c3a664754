package inventory

import (
	"context"
	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/app/services/shared/events"
	"dental-clinic-service/internal/app/services/shared/session"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type withdrawalUsecase struct {
	stockLedger
	WithdrawalRepository contracts.WithdrawalRepository
	ProductRepository    contracts.ProductRepository
	BranchRepository     contracts.BranchRepository
	Transactor           contracts.Transactor
	EventPublisher       contracts.EventPublisher
	Log                  *zap.Logger
}

func NewWithdrawalUsecase(
	withdrawalRepository contracts.WithdrawalRepository,
	productRepository contracts.ProductRepository,
	batchRepository contracts.BatchRepository,
	stockRepository contracts.StockRepository,
	stockMovementRepository contracts.StockMovementRepository,
	branchRepository contracts.BranchRepository,
	transactor contracts.Transactor,
	eventPublisher contracts.EventPublisher,
	logger *zap.Logger,
) contracts.WithdrawalUsecase {
	return &withdrawalUsecase{
		stockLedger: stockLedger{
			BatchRepository:         batchRepository,
			StockRepository:         stockRepository,
			StockMovementRepository: stockMovementRepository,
		},
		WithdrawalRepository: withdrawalRepository,
		ProductRepository:    productRepository,
		BranchRepository:     branchRepository,
		Transactor:           transactor,
		EventPublisher:       eventPublisher,
		Log:                  logger,
	}
}

func (uc *withdrawalUsecase) CreateWithdrawal(ctx context.Context, request *requests.CreateWithdrawal) (*models.WithdrawalRequest, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("withdrawalUsecase.CreateWithdrawal called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBranchIDKey, request.BranchID),
	)

	branch, err := uc.BranchRepository.FindByID(ctx, request.BranchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, exceptions.ErrDocumentNotFound(nil, "branch")
	}

	// Lines of the same product are merged.
	items := make([]models.WithdrawalItem, 0, len(request.Items))
	positions := make(map[string]int)
	for _, item := range request.Items {
		if position, ok := positions[item.ProductID]; ok {
			items[position].Quantity += item.Quantity
			continue
		}
		product, err := uc.ProductRepository.FindByID(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, exceptions.ErrDocumentNotFound(nil, "product")
		}
		positions[item.ProductID] = len(items)
		items = append(items, models.WithdrawalItem{ProductID: product.ID, Quantity: item.Quantity})
	}

	withdrawal := &models.WithdrawalRequest{
		BranchID:    branch.ID,
		Items:       items,
		Reason:      request.Reason,
		Status:      constvars.WithdrawalStatusPending,
		RequestedBy: session.ActorFromContext(ctx),
	}
	withdrawal.SetCreatedAtUpdatedAt()

	withdrawalID, err := uc.WithdrawalRepository.Create(ctx, withdrawal)
	if err != nil {
		uc.Log.Error("withdrawalUsecase.CreateWithdrawal error calling WithdrawalRepository.Create",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	withdrawal.ID, _ = primitive.ObjectIDFromHex(withdrawalID)
	return withdrawal, nil
}

func (uc *withdrawalUsecase) FindAllWithdrawals(ctx context.Context, request *requests.FindAllWithdrawals) ([]models.WithdrawalRequest, int, error) {
	return uc.WithdrawalRepository.FindAll(ctx, request)
}

func (uc *withdrawalUsecase) FindWithdrawalByID(ctx context.Context, withdrawalID string) (*models.WithdrawalRequest, error) {
	withdrawal, err := uc.WithdrawalRepository.FindByID(ctx, withdrawalID)
	if err != nil {
		return nil, err
	}
	if withdrawal == nil {
		return nil, exceptions.ErrDocumentNotFound(nil, "withdrawal request")
	}
	return withdrawal, nil
}

// ApproveWithdrawal checks every line against the available batches before
// anything is written, then draws them in FIFO order.
func (uc *withdrawalUsecase) ApproveWithdrawal(ctx context.Context, withdrawalID string, request *requests.ReviewWithdrawal) (*models.WithdrawalRequest, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("withdrawalUsecase.ApproveWithdrawal called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWithdrawalIDKey, withdrawalID),
	)

	var withdrawal *models.WithdrawalRequest
	err := uc.Transactor.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		withdrawal, err = uc.findPending(txCtx, withdrawalID)
		if err != nil {
			return err
		}

		type plannedItem struct {
			product     *models.Product
			allocations []batchAllocation
		}
		planned := make([]plannedItem, 0, len(withdrawal.Items))
		for _, item := range withdrawal.Items {
			product, err := uc.ProductRepository.FindByID(txCtx, item.ProductID.Hex())
			if err != nil {
				return err
			}
			if product == nil {
				return exceptions.ErrDocumentNotFound(nil, "product")
			}
			allocations, err := uc.plan(txCtx, product, withdrawal.BranchID, item.Quantity)
			if err != nil {
				return err
			}
			planned = append(planned, plannedItem{product: product, allocations: allocations})
		}

		entry := ledgerEntry{
			Type:      constvars.StockMovementWithdraw,
			Reference: withdrawal.ID.Hex(),
			Note:      withdrawal.Reason,
		}
		for _, item := range planned {
			if _, err := uc.consume(txCtx, item.product, withdrawal.BranchID, item.allocations, entry); err != nil {
				return err
			}
		}

		uc.review(txCtx, withdrawal, constvars.WithdrawalStatusApproved, request.Note)
		return uc.WithdrawalRepository.Update(txCtx, withdrawal, constvars.WithdrawalStatusPending)
	})
	if err != nil {
		uc.Log.Error("withdrawalUsecase.ApproveWithdrawal error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingWithdrawalIDKey, withdrawalID),
			zap.Error(err),
		)
		return nil, err
	}

	events.PublishQuietly(ctx, uc.EventPublisher, uc.Log, events.NewDomainEvent(ctx,
		constvars.EventWithdrawalApproved,
		withdrawalID,
		map[string]interface{}{
			"branch_id":   withdrawal.BranchID.Hex(),
			"items":       withdrawal.Items,
			"reviewed_by": withdrawal.ReviewedBy,
		},
	))

	uc.Log.Info("withdrawalUsecase.ApproveWithdrawal succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWithdrawalIDKey, withdrawalID),
	)
	return withdrawal, nil
}

func (uc *withdrawalUsecase) RejectWithdrawal(ctx context.Context, withdrawalID string, request *requests.ReviewWithdrawal) (*models.WithdrawalRequest, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("withdrawalUsecase.RejectWithdrawal called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingWithdrawalIDKey, withdrawalID),
	)

	withdrawal, err := uc.findPending(ctx, withdrawalID)
	if err != nil {
		return nil, err
	}

	uc.review(ctx, withdrawal, constvars.WithdrawalStatusRejected, request.Note)
	err = uc.WithdrawalRepository.Update(ctx, withdrawal, constvars.WithdrawalStatusPending)
	if err != nil {
		uc.Log.Error("withdrawalUsecase.RejectWithdrawal error calling WithdrawalRepository.Update",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	return withdrawal, nil
}

func (uc *withdrawalUsecase) findPending(ctx context.Context, withdrawalID string) (*models.WithdrawalRequest, error) {
	withdrawal, err := uc.FindWithdrawalByID(ctx, withdrawalID)
	if err != nil {
		return nil, err
	}
	if withdrawal.Status != constvars.WithdrawalStatusPending {
		return nil, exceptions.ErrWithdrawalNotPending(nil)
	}
	return withdrawal, nil
}

func (uc *withdrawalUsecase) review(ctx context.Context, withdrawal *models.WithdrawalRequest, status, note string) {
	reviewedAt := time.Now()
	withdrawal.Status = status
	withdrawal.ReviewNote = note
	withdrawal.ReviewedBy = session.ActorFromContext(ctx)
	withdrawal.ReviewedAt = &reviewedAt
}

package inventory

import (
	"context"
	"dental-clinic-service/internal/app/config"
	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/app/services/shared/events"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/dto/responses"
	"dental-clinic-service/internal/pkg/exceptions"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const (
	adjustmentLotNumber  = "ADJUSTMENT"
	transferReferenceFmt = "TRF-%s"
	expiryDateLayout     = "02 Jan 2006"
)

type inventoryUsecase struct {
	stockLedger
	ProductRepository     contracts.ProductRepository
	BranchRepository      contracts.BranchRepository
	Transactor            contracts.Transactor
	NotificationPublisher contracts.NotificationPublisher
	EventPublisher        contracts.EventPublisher
	InternalConfig        *config.InternalConfig
	Log                   *zap.Logger
	now                   func() time.Time
}

func NewInventoryUsecase(
	productRepository contracts.ProductRepository,
	batchRepository contracts.BatchRepository,
	stockRepository contracts.StockRepository,
	stockMovementRepository contracts.StockMovementRepository,
	branchRepository contracts.BranchRepository,
	transactor contracts.Transactor,
	notificationPublisher contracts.NotificationPublisher,
	eventPublisher contracts.EventPublisher,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.InventoryUsecase {
	return &inventoryUsecase{
		stockLedger: stockLedger{
			BatchRepository:         batchRepository,
			StockRepository:         stockRepository,
			StockMovementRepository: stockMovementRepository,
		},
		ProductRepository:     productRepository,
		BranchRepository:      branchRepository,
		Transactor:            transactor,
		NotificationPublisher: notificationPublisher,
		EventPublisher:        eventPublisher,
		InternalConfig:        internalConfig,
		Log:                   logger,
		now:                   time.Now,
	}
}

func (uc *inventoryUsecase) ReceiveStock(ctx context.Context, request *requests.ReceiveStock) (*models.Batch, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("inventoryUsecase.ReceiveStock called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProductIDKey, request.ProductID),
		zap.String(constvars.LoggingBranchIDKey, request.BranchID),
		zap.Int(constvars.LoggingQuantityKey, request.Quantity),
	)

	product, branch, err := uc.findProductAndBranch(ctx, request.ProductID, request.BranchID)
	if err != nil {
		return nil, err
	}

	batch := &models.Batch{
		ProductID:  product.ID,
		BranchID:   branch.ID,
		LotNumber:  request.LotNumber,
		ExpiryDate: request.ExpiryDate,
		Quantity:   request.Quantity,
		Remaining:  request.Quantity,
		UnitCost:   request.UnitCost,
		ReceivedAt: uc.now(),
	}

	var movement *models.StockMovement
	err = uc.Transactor.WithTransaction(ctx, func(txCtx context.Context) error {
		movement, err = uc.receive(txCtx, batch, ledgerEntry{
			Type:      constvars.StockMovementReceive,
			Reference: request.LotNumber,
			Note:      request.Note,
		})
		return err
	})
	if err != nil {
		uc.Log.Error("inventoryUsecase.ReceiveStock error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.publishMovements(ctx, []models.StockMovement{*movement})
	uc.Log.Info("inventoryUsecase.ReceiveStock succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProductIDKey, request.ProductID),
		zap.Int(constvars.LoggingQuantityKey, movement.BalanceAfter),
	)
	return batch, nil
}

// AdjustStock books a manual correction. Additions enter as a zero cost
// batch, deductions draw from batches in FIFO order.
func (uc *inventoryUsecase) AdjustStock(ctx context.Context, request *requests.AdjustStock) (*models.StockMovement, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("inventoryUsecase.AdjustStock called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProductIDKey, request.ProductID),
		zap.Int(constvars.LoggingQuantityKey, request.Delta),
	)

	product, branch, err := uc.findProductAndBranch(ctx, request.ProductID, request.BranchID)
	if err != nil {
		return nil, err
	}

	entry := ledgerEntry{Type: constvars.StockMovementAdjust, Note: request.Note}
	var movements []models.StockMovement
	err = uc.Transactor.WithTransaction(ctx, func(txCtx context.Context) error {
		if request.Delta > 0 {
			movement, err := uc.receive(txCtx, &models.Batch{
				ProductID:  product.ID,
				BranchID:   branch.ID,
				LotNumber:  adjustmentLotNumber,
				Quantity:   request.Delta,
				Remaining:  request.Delta,
				ReceivedAt: uc.now(),
			}, entry)
			if err != nil {
				return err
			}
			movements = []models.StockMovement{*movement}
			return nil
		}

		allocations, err := uc.plan(txCtx, product, branch.ID, -request.Delta)
		if err != nil {
			if exceptions.StatusCode(err) == constvars.StatusConflict {
				return exceptions.ErrConflictRule(nil, constvars.ErrClientNegativeStock)
			}
			return err
		}
		movements, err = uc.consume(txCtx, product, branch.ID, allocations, entry)
		return err
	})
	if err != nil {
		uc.Log.Error("inventoryUsecase.AdjustStock error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.publishMovements(ctx, movements)
	last := movements[len(movements)-1]
	last.Quantity = request.Delta
	return &last, nil
}

// TransferStock moves quantity between branches. Source batches are drawn in
// FIFO order and mirrored at the destination with their lot, expiry and cost.
func (uc *inventoryUsecase) TransferStock(ctx context.Context, request *requests.TransferStock) ([]models.StockMovement, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("inventoryUsecase.TransferStock called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingProductIDKey, request.ProductID),
		zap.Int(constvars.LoggingQuantityKey, request.Quantity),
	)

	if request.FromBranchID == request.ToBranchID {
		return nil, exceptions.ErrBadRequestRule(nil, constvars.ErrClientSameBranchTransfer)
	}

	product, source, err := uc.findProductAndBranch(ctx, request.ProductID, request.FromBranchID)
	if err != nil {
		return nil, err
	}
	destination, err := uc.findBranch(ctx, request.ToBranchID)
	if err != nil {
		return nil, err
	}

	reference := fmt.Sprintf(transferReferenceFmt, primitive.NewObjectID().Hex())
	var movements []models.StockMovement
	err = uc.Transactor.WithTransaction(ctx, func(txCtx context.Context) error {
		allocations, err := uc.plan(txCtx, product, source.ID, request.Quantity)
		if err != nil {
			return err
		}

		out, err := uc.consume(txCtx, product, source.ID, allocations, ledgerEntry{
			Type:      constvars.StockMovementTransferOut,
			Reference: reference,
			Note:      request.Note,
		})
		if err != nil {
			return err
		}
		movements = append(movements, out...)

		for _, allocation := range allocations {
			in, err := uc.receive(txCtx, &models.Batch{
				ProductID:  product.ID,
				BranchID:   destination.ID,
				LotNumber:  allocation.Batch.LotNumber,
				ExpiryDate: allocation.Batch.ExpiryDate,
				Quantity:   allocation.Quantity,
				Remaining:  allocation.Quantity,
				UnitCost:   allocation.Batch.UnitCost,
				ReceivedAt: allocation.Batch.ReceivedAt,
			}, ledgerEntry{
				Type:      constvars.StockMovementTransferIn,
				Reference: reference,
				Note:      request.Note,
			})
			if err != nil {
				return err
			}
			movements = append(movements, *in)
		}
		return nil
	})
	if err != nil {
		uc.Log.Error("inventoryUsecase.TransferStock error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.publishMovements(ctx, movements)
	return movements, nil
}

func (uc *inventoryUsecase) FindStockByBranch(ctx context.Context, branchID string) ([]models.Stock, error) {
	return uc.StockRepository.FindAll(ctx, branchID)
}

func (uc *inventoryUsecase) FindBatches(ctx context.Context, productID, branchID string) ([]models.Batch, error) {
	return uc.BatchRepository.FindAll(ctx, productID, branchID)
}

func (uc *inventoryUsecase) FindAllStockMovements(ctx context.Context, request *requests.FindAllStockMovements) ([]models.StockMovement, int, error) {
	return uc.StockMovementRepository.FindAll(ctx, request)
}

// FindLowStock lists active products whose quantity at a branch is below
// their minimum. Products never received at a branch count as zero.
func (uc *inventoryUsecase) FindLowStock(ctx context.Context, branchID string) ([]responses.LowStockItem, error) {
	var branches []models.Branch
	if branchID != "" {
		branch, err := uc.findBranch(ctx, branchID)
		if err != nil {
			return nil, err
		}
		branches = []models.Branch{*branch}
	} else {
		all, err := uc.BranchRepository.FindAll(ctx)
		if err != nil {
			return nil, err
		}
		for _, branch := range all {
			if branch.Active {
				branches = append(branches, branch)
			}
		}
	}

	products, err := uc.ProductRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	stocks, err := uc.StockRepository.FindAll(ctx, branchID)
	if err != nil {
		return nil, err
	}

	quantities := make(map[[2]primitive.ObjectID]int, len(stocks))
	for _, stock := range stocks {
		quantities[[2]primitive.ObjectID{stock.ProductID, stock.BranchID}] = stock.Quantity
	}

	items := make([]responses.LowStockItem, 0)
	for _, branch := range branches {
		for _, product := range products {
			if !product.Active || product.MinStock <= 0 {
				continue
			}
			quantity := quantities[[2]primitive.ObjectID{product.ID, branch.ID}]
			if quantity >= product.MinStock {
				continue
			}
			items = append(items, responses.LowStockItem{
				ProductID: product.ID.Hex(),
				SKU:       product.SKU,
				Name:      product.Name,
				Unit:      product.Unit,
				BranchID:  branch.ID.Hex(),
				Quantity:  quantity,
				MinStock:  product.MinStock,
			})
		}
	}
	return items, nil
}

func (uc *inventoryUsecase) ScanLowStock(ctx context.Context) (int, error) {
	recipient := uc.InternalConfig.Notification.InventoryRecipient
	if recipient == "" {
		uc.Log.Warn("inventoryUsecase.ScanLowStock skipped, no inventory recipient configured")
		return 0, nil
	}

	items, err := uc.FindLowStock(ctx, "")
	if err != nil {
		return 0, err
	}

	branchNames, err := uc.branchNames(ctx)
	if err != nil {
		return 0, err
	}

	for _, item := range items {
		err := uc.NotificationPublisher.Publish(ctx, &models.Notification{
			Type:      constvars.NotificationTypeLowStock,
			Recipient: recipient,
			Subject:   constvars.EmailSubjectLowStock,
			Body:      fmt.Sprintf(constvars.EmailBodyLowStock, item.Name, item.SKU, branchNames[item.BranchID], item.Quantity, item.MinStock),
			Metadata: map[string]string{
				constvars.LoggingProductIDKey: item.ProductID,
				constvars.LoggingBranchIDKey:  item.BranchID,
			},
			CreatedAt: uc.now(),
		})
		if err != nil {
			return 0, err
		}
	}

	uc.Log.Info("inventoryUsecase.ScanLowStock succeeded", zap.Int(constvars.LoggingCountKey, len(items)))
	return len(items), nil
}

func (uc *inventoryUsecase) ScanExpiringBatches(ctx context.Context) (int, error) {
	recipient := uc.InternalConfig.Notification.InventoryRecipient
	if recipient == "" {
		uc.Log.Warn("inventoryUsecase.ScanExpiringBatches skipped, no inventory recipient configured")
		return 0, nil
	}

	before := uc.now().AddDate(0, 0, uc.InternalConfig.Inventory.ExpiryWarningDays)
	batches, err := uc.BatchRepository.FindExpiring(ctx, before)
	if err != nil {
		return 0, err
	}
	if len(batches) == 0 {
		return 0, nil
	}

	branchNames, err := uc.branchNames(ctx)
	if err != nil {
		return 0, err
	}
	products, err := uc.ProductRepository.FindAll(ctx)
	if err != nil {
		return 0, err
	}
	productNames := make(map[primitive.ObjectID]string, len(products))
	for _, product := range products {
		productNames[product.ID] = product.Name
	}

	for _, batch := range batches {
		err := uc.NotificationPublisher.Publish(ctx, &models.Notification{
			Type:      constvars.NotificationTypeBatchExpiry,
			Recipient: recipient,
			Subject:   constvars.EmailSubjectBatchExpiry,
			Body: fmt.Sprintf(constvars.EmailBodyBatchExpiry,
				batch.LotNumber,
				productNames[batch.ProductID],
				branchNames[batch.BranchID.Hex()],
				batch.ExpiryDate.Format(expiryDateLayout),
				batch.Remaining,
			),
			Metadata: map[string]string{
				constvars.LoggingProductIDKey: batch.ProductID.Hex(),
				constvars.LoggingBranchIDKey:  batch.BranchID.Hex(),
			},
			CreatedAt: uc.now(),
		})
		if err != nil {
			return 0, err
		}
	}

	uc.Log.Info("inventoryUsecase.ScanExpiringBatches succeeded", zap.Int(constvars.LoggingCountKey, len(batches)))
	return len(batches), nil
}

func (uc *inventoryUsecase) publishMovements(ctx context.Context, movements []models.StockMovement) {
	for _, movement := range movements {
		events.PublishQuietly(ctx, uc.EventPublisher, uc.Log, events.NewDomainEvent(ctx,
			constvars.EventStockMoved,
			movement.ProductID.Hex(),
			movement,
		))
	}
}

func (uc *inventoryUsecase) branchNames(ctx context.Context) (map[string]string, error) {
	branches, err := uc.BranchRepository.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(branches))
	for _, branch := range branches {
		names[branch.ID.Hex()] = branch.Name
	}
	return names, nil
}

func (uc *inventoryUsecase) findProductAndBranch(ctx context.Context, productID, branchID string) (*models.Product, *models.Branch, error) {
	product, err := uc.ProductRepository.FindByID(ctx, productID)
	if err != nil {
		return nil, nil, err
	}
	if product == nil {
		return nil, nil, exceptions.ErrDocumentNotFound(nil, "product")
	}
	branch, err := uc.findBranch(ctx, branchID)
	if err != nil {
		return nil, nil, err
	}
	return product, branch, nil
}

func (uc *inventoryUsecase) findBranch(ctx context.Context, branchID string) (*models.Branch, error) {
	branch, err := uc.BranchRepository.FindByID(ctx, branchID)
	if err != nil {
		return nil, err
	}
	if branch == nil {
		return nil, exceptions.ErrDocumentNotFound(nil, "branch")
	}
	return branch, nil
}

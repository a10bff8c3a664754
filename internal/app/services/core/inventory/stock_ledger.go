package inventory

import (
	"context"
	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/app/services/shared/session"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// stockLedger keeps batches, stock totals and movements in step. Callers run
// it inside a transaction.
type stockLedger struct {
	BatchRepository         contracts.BatchRepository
	StockRepository         contracts.StockRepository
	StockMovementRepository contracts.StockMovementRepository
}

type ledgerEntry struct {
	Type      string
	Reference string
	Note      string
}

// receive stores a new batch and books it into stock.
func (l *stockLedger) receive(ctx context.Context, batch *models.Batch, entry ledgerEntry) (*models.StockMovement, error) {
	batchID, err := l.BatchRepository.Create(ctx, batch)
	if err != nil {
		return nil, err
	}
	batch.ID, _ = primitive.ObjectIDFromHex(batchID)

	balance, err := l.StockRepository.Increment(ctx, batch.ProductID, batch.BranchID, batch.Quantity)
	if err != nil {
		return nil, err
	}
	return l.record(ctx, batch.ProductID, batch.BranchID, &batch.ID, batch.Quantity, balance, entry)
}

// plan allocates quantity of a product at a branch without writing anything.
func (l *stockLedger) plan(ctx context.Context, product *models.Product, branchID primitive.ObjectID, quantity int) ([]batchAllocation, error) {
	batches, err := l.BatchRepository.FindAvailable(ctx, product.ID, branchID)
	if err != nil {
		return nil, err
	}
	allocations, ok := allocateFIFO(batches, quantity)
	if !ok {
		return nil, exceptions.ErrInsufficientStock(nil, product.Name)
	}
	return allocations, nil
}

// consume draws the allocations from their batches and from stock, writing
// one movement per batch.
func (l *stockLedger) consume(ctx context.Context, product *models.Product, branchID primitive.ObjectID, allocations []batchAllocation, entry ledgerEntry) ([]models.StockMovement, error) {
	movements := make([]models.StockMovement, 0, len(allocations))
	for _, allocation := range allocations {
		batchID := allocation.Batch.ID
		err := l.BatchRepository.Consume(ctx, batchID, allocation.Quantity)
		if err != nil {
			return nil, l.insufficient(err, product)
		}

		balance, err := l.StockRepository.Increment(ctx, product.ID, branchID, -allocation.Quantity)
		if err != nil {
			return nil, l.insufficient(err, product)
		}

		movement, err := l.record(ctx, product.ID, branchID, &batchID, -allocation.Quantity, balance, entry)
		if err != nil {
			return nil, err
		}
		movements = append(movements, *movement)
	}
	return movements, nil
}

func (l *stockLedger) record(ctx context.Context, productID, branchID primitive.ObjectID, batchID *primitive.ObjectID, quantity, balance int, entry ledgerEntry) (*models.StockMovement, error) {
	movement := &models.StockMovement{
		ProductID:    productID,
		BranchID:     branchID,
		BatchID:      batchID,
		Type:         entry.Type,
		Quantity:     quantity,
		BalanceAfter: balance,
		Reference:    entry.Reference,
		Note:         entry.Note,
		CreatedBy:    session.ActorFromContext(ctx),
		CreatedAt:    time.Now(),
	}
	movementID, err := l.StockMovementRepository.Create(ctx, movement)
	if err != nil {
		return nil, err
	}
	movement.ID, _ = primitive.ObjectIDFromHex(movementID)
	return movement, nil
}

func (l *stockLedger) insufficient(err error, product *models.Product) error {
	if exceptions.StatusCode(err) == constvars.StatusConflict {
		return exceptions.ErrInsufficientStock(nil, product.Name)
	}
	return err
}

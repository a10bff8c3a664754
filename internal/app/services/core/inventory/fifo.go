package inventory

import (
	"dental-clinic-service/internal/app/models"
	"sort"
)

type batchAllocation struct {
	Batch    models.Batch
	Quantity int
}

// sortFIFO orders batches by expiry date, batches without expiry last, then
// by receipt time.
func sortFIFO(batches []models.Batch) {
	sort.SliceStable(batches, func(i, j int) bool {
		left, right := batches[i], batches[j]
		switch {
		case left.ExpiryDate != nil && right.ExpiryDate == nil:
			return true
		case left.ExpiryDate == nil && right.ExpiryDate != nil:
			return false
		case left.ExpiryDate != nil && !left.ExpiryDate.Equal(*right.ExpiryDate):
			return left.ExpiryDate.Before(*right.ExpiryDate)
		}
		return left.ReceivedAt.Before(right.ReceivedAt)
	})
}

// allocateFIFO takes quantity from batches in FIFO order. It reports false
// when the batches do not hold enough.
func allocateFIFO(batches []models.Batch, quantity int) ([]batchAllocation, bool) {
	sorted := make([]models.Batch, len(batches))
	copy(sorted, batches)
	sortFIFO(sorted)

	allocations := make([]batchAllocation, 0)
	left := quantity
	for _, batch := range sorted {
		if left == 0 {
			break
		}
		if batch.Remaining <= 0 {
			continue
		}
		take := batch.Remaining
		if take > left {
			take = left
		}
		allocations = append(allocations, batchAllocation{Batch: batch, Quantity: take})
		left -= take
	}
	return allocations, left == 0
}

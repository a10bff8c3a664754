package requests

import "time"

type Product struct {
	SKU      string `json:"sku" validate:"required,max=50"`
	Name     string `json:"name" validate:"required,max=100"`
	Category string `json:"category" validate:"max=50"`
	Unit     string `json:"unit" validate:"required,max=20"`
	MinStock int    `json:"min_stock" validate:"gte=0"`
	Active   *bool  `json:"active"`
}

type ReceiveStock struct {
	ProductID  string     `json:"product_id" validate:"required,object_id"`
	BranchID   string     `json:"branch_id" validate:"required,object_id"`
	LotNumber  string     `json:"lot_number" validate:"required,max=50"`
	ExpiryDate *time.Time `json:"expiry_date"`
	Quantity   int        `json:"quantity" validate:"gt=0"`
	UnitCost   int64      `json:"unit_cost" validate:"gte=0"`
	Note       string     `json:"note" validate:"max=255"`
}

type AdjustStock struct {
	ProductID string `json:"product_id" validate:"required,object_id"`
	BranchID  string `json:"branch_id" validate:"required,object_id"`
	Delta     int    `json:"delta" validate:"ne=0"`
	Note      string `json:"note" validate:"required,max=255"`
}

type TransferStock struct {
	ProductID    string `json:"product_id" validate:"required,object_id"`
	FromBranchID string `json:"from_branch_id" validate:"required,object_id"`
	ToBranchID   string `json:"to_branch_id" validate:"required,object_id"`
	Quantity     int    `json:"quantity" validate:"gt=0"`
	Note         string `json:"note" validate:"max=255"`
}

type CreateWithdrawal struct {
	BranchID string           `json:"branch_id" validate:"required,object_id"`
	Items    []WithdrawalItem `json:"items" validate:"required,min=1,dive"`
	Reason   string           `json:"reason" validate:"required,max=255"`
}

type WithdrawalItem struct {
	ProductID string `json:"product_id" validate:"required,object_id"`
	Quantity  int    `json:"quantity" validate:"gt=0"`
}

type ReviewWithdrawal struct {
	Note string `json:"note" validate:"max=255"`
}

type FindAllStockMovements struct {
	ProductID string
	BranchID  string
	DateRange
	Pagination
}

type FindAllWithdrawals struct {
	BranchID string
	Status   string
	Pagination
}

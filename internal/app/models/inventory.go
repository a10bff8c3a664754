package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	SKU       string             `json:"sku" bson:"sku"`
	Name      string             `json:"name" bson:"name"`
	Category  string             `json:"category,omitempty" bson:"category,omitempty"`
	Unit      string             `json:"unit" bson:"unit"`
	MinStock  int                `json:"min_stock" bson:"minStock"`
	Active    bool               `json:"active" bson:"active"`
	TimeModel `bson:",inline"`
}

// Batch is a received lot of a product at one branch. Remaining is consumed
// earliest expiry first.
type Batch struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ProductID  primitive.ObjectID `json:"product_id" bson:"productId"`
	BranchID   primitive.ObjectID `json:"branch_id" bson:"branchId"`
	LotNumber  string             `json:"lot_number" bson:"lotNumber"`
	ExpiryDate *time.Time         `json:"expiry_date,omitempty" bson:"expiryDate,omitempty"`
	Quantity   int                `json:"quantity" bson:"quantity"`
	Remaining  int                `json:"remaining" bson:"remaining"`
	UnitCost   int64              `json:"unit_cost" bson:"unitCost"`
	ReceivedAt time.Time          `json:"received_at" bson:"receivedAt"`
}

type Stock struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	ProductID primitive.ObjectID `json:"product_id" bson:"productId"`
	BranchID  primitive.ObjectID `json:"branch_id" bson:"branchId"`
	Quantity  int                `json:"quantity" bson:"quantity"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updatedAt"`
}

// StockMovement is an append-only ledger line. Quantity is signed.
type StockMovement struct {
	ID           primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	ProductID    primitive.ObjectID  `json:"product_id" bson:"productId"`
	BranchID     primitive.ObjectID  `json:"branch_id" bson:"branchId"`
	BatchID      *primitive.ObjectID `json:"batch_id,omitempty" bson:"batchId,omitempty"`
	Type         string              `json:"type" bson:"type"`
	Quantity     int                 `json:"quantity" bson:"quantity"`
	BalanceAfter int                 `json:"balance_after" bson:"balanceAfter"`
	Reference    string              `json:"reference,omitempty" bson:"reference,omitempty"`
	Note         string              `json:"note,omitempty" bson:"note,omitempty"`
	CreatedBy    string              `json:"created_by" bson:"createdBy"`
	CreatedAt    time.Time           `json:"created_at" bson:"createdAt"`
}

type WithdrawalRequest struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	BranchID    primitive.ObjectID `json:"branch_id" bson:"branchId"`
	Items       []WithdrawalItem   `json:"items" bson:"items"`
	Reason      string             `json:"reason" bson:"reason"`
	Status      string             `json:"status" bson:"status"`
	RequestedBy string             `json:"requested_by" bson:"requestedBy"`
	ReviewedBy  string             `json:"reviewed_by,omitempty" bson:"reviewedBy,omitempty"`
	ReviewedAt  *time.Time         `json:"reviewed_at,omitempty" bson:"reviewedAt,omitempty"`
	ReviewNote  string             `json:"review_note,omitempty" bson:"reviewNote,omitempty"`
	TimeModel   `bson:",inline"`
}

type WithdrawalItem struct {
	ProductID primitive.ObjectID `json:"product_id" bson:"productId"`
	Quantity  int                `json:"quantity" bson:"quantity"`
}

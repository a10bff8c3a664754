package models

import (
	"dental-clinic-service/internal/pkg/constvars"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Invoice amounts are stored in minor currency units.
type Invoice struct {
	ID            primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	Number        string              `json:"number" bson:"number"`
	PatientID     primitive.ObjectID  `json:"patient_id" bson:"patientId"`
	BranchID      primitive.ObjectID  `json:"branch_id" bson:"branchId"`
	AppointmentID *primitive.ObjectID `json:"appointment_id,omitempty" bson:"appointmentId,omitempty"`
	Items         []InvoiceItem       `json:"items" bson:"items"`
	Subtotal      int64               `json:"subtotal" bson:"subtotal"`
	Discount      int64               `json:"discount" bson:"discount"`
	TaxRate       float64             `json:"tax_rate" bson:"taxRate"`
	Tax           int64               `json:"tax" bson:"tax"`
	Total         int64               `json:"total" bson:"total"`
	AmountPaid    int64               `json:"amount_paid" bson:"amountPaid"`
	Balance       int64               `json:"balance" bson:"balance"`
	Status        string              `json:"status" bson:"status"`
	Payments      []Payment           `json:"payments" bson:"payments"`
	DueDate       *time.Time          `json:"due_date,omitempty" bson:"dueDate,omitempty"`
	Notes         string              `json:"notes,omitempty" bson:"notes,omitempty"`
	CancelReason  string              `json:"cancel_reason,omitempty" bson:"cancelReason,omitempty"`
	CreatedBy     string              `json:"created_by" bson:"createdBy"`
	TimeModel     `bson:",inline"`
}

type InvoiceItem struct {
	TreatmentID *primitive.ObjectID `json:"treatment_id,omitempty" bson:"treatmentId,omitempty"`
	Description string              `json:"description" bson:"description"`
	Quantity    int                 `json:"quantity" bson:"quantity"`
	UnitPrice   int64               `json:"unit_price" bson:"unitPrice"`
	Amount      int64               `json:"amount" bson:"amount"`
}

type Payment struct {
	ID         primitive.ObjectID `json:"id" bson:"_id"`
	Amount     int64              `json:"amount" bson:"amount"`
	Method     string             `json:"method" bson:"method"`
	Reference  string             `json:"reference,omitempty" bson:"reference,omitempty"`
	PaidAt     time.Time          `json:"paid_at" bson:"paidAt"`
	ReceivedBy string             `json:"received_by" bson:"receivedBy"`
}

// CalculateTotals derives subtotal, tax, total and balance from the items.
// Tax is rounded half up to the nearest minor unit.
func (inv *Invoice) CalculateTotals() {
	var subtotal int64
	for i := range inv.Items {
		inv.Items[i].Amount = int64(inv.Items[i].Quantity) * inv.Items[i].UnitPrice
		subtotal += inv.Items[i].Amount
	}
	inv.Subtotal = subtotal

	taxable := subtotal - inv.Discount
	if taxable < 0 {
		taxable = 0
	}
	inv.Tax = int64(float64(taxable)*inv.TaxRate/100 + 0.5)
	inv.Total = taxable + inv.Tax
	inv.RefreshStatus()
}

// RefreshStatus recomputes the balance and the payment status. A cancelled
// invoice keeps its status.
func (inv *Invoice) RefreshStatus() {
	inv.Balance = inv.Total - inv.AmountPaid
	if inv.Balance < 0 {
		inv.Balance = 0
	}
	if inv.Status == constvars.InvoiceStatusCancelled {
		return
	}
	switch {
	case inv.AmountPaid >= inv.Total:
		inv.Status = constvars.InvoiceStatusPaid
	case inv.AmountPaid > 0:
		inv.Status = constvars.InvoiceStatusPartiallyPaid
	default:
		inv.Status = constvars.InvoiceStatusUnpaid
	}
}

func (inv *Invoice) IsPayable() bool {
	return inv.Status == constvars.InvoiceStatusUnpaid || inv.Status == constvars.InvoiceStatusPartiallyPaid
}

package requests

import "time"

type CreateInvoice struct {
	PatientID     string        `json:"patient_id" validate:"required,object_id"`
	BranchID      string        `json:"branch_id" validate:"required,object_id"`
	AppointmentID string        `json:"appointment_id" validate:"omitempty,object_id"`
	Items         []InvoiceItem `json:"items" validate:"required,min=1,dive"`
	Discount      int64         `json:"discount" validate:"gte=0"`
	TaxRate       float64       `json:"tax_rate" validate:"gte=0,lte=100"`
	DueDate       *time.Time    `json:"due_date"`
	Notes         string        `json:"notes"`
}

type InvoiceItem struct {
	TreatmentID string `json:"treatment_id" validate:"omitempty,object_id"`
	Description string `json:"description" validate:"max=255"`
	Quantity    int    `json:"quantity" validate:"gt=0"`
	UnitPrice   *int64 `json:"unit_price" validate:"omitempty,gte=0"`
}

type RecordPayment struct {
	Amount    int64  `json:"amount" validate:"gt=0"`
	Method    string `json:"method" validate:"required,oneof=cash card transfer insurance credit"`
	Reference string `json:"reference" validate:"max=100"`
}

type CancelInvoice struct {
	Reason string `json:"reason" validate:"max=255"`
}

type FindAllInvoices struct {
	PatientID string
	BranchID  string
	Status    string
	DateRange
	Pagination
}

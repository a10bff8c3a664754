package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CreditEntry is one line of a patient's credit history. Amount is signed:
// positive entries add to the balance and negative entries draw from it.
type CreditEntry struct {
	ID           primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	PatientID    primitive.ObjectID  `json:"patient_id" bson:"patientId"`
	Type         string              `json:"type" bson:"type"`
	Amount       int64               `json:"amount" bson:"amount"`
	BalanceAfter int64               `json:"balance_after" bson:"balanceAfter"`
	InvoiceID    *primitive.ObjectID `json:"invoice_id,omitempty" bson:"invoiceId,omitempty"`
	Note         string              `json:"note,omitempty" bson:"note,omitempty"`
	CreatedBy    string              `json:"created_by" bson:"createdBy"`
	CreatedAt    time.Time           `json:"created_at" bson:"createdAt"`
}

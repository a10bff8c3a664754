package contracts

import (
	"context"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreditRepository interface {
	Create(ctx context.Context, entry *models.CreditEntry) (string, error)
	FindAllByPatient(ctx context.Context, patientID string, pagination requests.Pagination) ([]models.CreditEntry, int, error)
}

// CreditMovement describes one signed change to a patient's credit balance.
type CreditMovement struct {
	PatientID primitive.ObjectID
	Type      string
	Amount    int64
	InvoiceID *primitive.ObjectID
	Note      string
}

type CreditUsecase interface {
	Deposit(ctx context.Context, patientID string, request *requests.CreditMovement) (*models.CreditEntry, error)
	Withdraw(ctx context.Context, patientID string, request *requests.CreditMovement) (*models.CreditEntry, error)
	FindCreditHistory(ctx context.Context, patientID string, pagination requests.Pagination) ([]models.CreditEntry, int, error)
	GetCreditBalance(ctx context.Context, patientID string) (*responses.CreditBalance, error)
	// ApplyMovement updates the balance and appends the history entry. It
	// must be called with a transaction context.
	ApplyMovement(ctx context.Context, movement CreditMovement) (*models.CreditEntry, error)
}

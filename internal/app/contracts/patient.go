package contracts

import (
	"context"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/dto/responses"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *models.Patient) (string, error)
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindAll(ctx context.Context, request *requests.FindAllPatients) ([]models.Patient, int, error)
	Update(ctx context.Context, patient *models.Patient) error
	SoftDelete(ctx context.Context, patientID string) error
	AddAttachment(ctx context.Context, patientID string, attachment *models.Attachment) error
	// IncrementCredit applies a signed change to the credit balance and
	// returns the new balance. A debit larger than the balance is rejected.
	IncrementCredit(ctx context.Context, patientID primitive.ObjectID, amount int64) (int64, error)
}

type PatientUsecase interface {
	CreatePatient(ctx context.Context, request *requests.Patient) (*models.Patient, error)
	FindAllPatients(ctx context.Context, request *requests.FindAllPatients) ([]models.Patient, int, error)
	FindPatientByID(ctx context.Context, patientID string) (*models.Patient, error)
	UpdatePatient(ctx context.Context, patientID string, request *requests.Patient) (*models.Patient, error)
	DeletePatient(ctx context.Context, patientID string) error
	UploadAttachment(ctx context.Context, request *requests.UploadAttachment) (*models.Attachment, error)
	GetAttachmentURL(ctx context.Context, patientID, attachmentID string) (*responses.AttachmentURL, error)
}

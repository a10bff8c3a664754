package contracts

import (
	"context"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/dto/responses"
)

type MedicalFindingRepository interface {
	Create(ctx context.Context, finding *models.MedicalFinding) (string, error)
	FindByID(ctx context.Context, findingID string) (*models.MedicalFinding, error)
	FindAllByPatient(ctx context.Context, patientID string) ([]models.MedicalFinding, error)
	Update(ctx context.Context, finding *models.MedicalFinding) error
	Delete(ctx context.Context, findingID string) error
}

type MedicalFindingUsecase interface {
	CreateFinding(ctx context.Context, request *requests.MedicalFinding) (*models.MedicalFinding, error)
	FindFindingsByPatient(ctx context.Context, patientID string) ([]models.MedicalFinding, error)
	FindFindingByID(ctx context.Context, findingID string) (*models.MedicalFinding, error)
	UpdateFinding(ctx context.Context, findingID string, request *requests.MedicalFinding) (*models.MedicalFinding, error)
	DeleteFinding(ctx context.Context, findingID string) error
	GetDentalChart(ctx context.Context, patientID string) (*responses.DentalChart, error)
}

package contracts

import (
	"context"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/dto/requests"
)

type TreatmentRepository interface {
	Create(ctx context.Context, treatment *models.Treatment) (string, error)
	FindByID(ctx context.Context, treatmentID string) (*models.Treatment, error)
	FindByCode(ctx context.Context, code string) (*models.Treatment, error)
	FindAll(ctx context.Context) ([]models.Treatment, error)
	Update(ctx context.Context, treatment *models.Treatment) error
	Delete(ctx context.Context, treatmentID string) error
}

type TreatmentUsecase interface {
	CreateTreatment(ctx context.Context, request *requests.Treatment) (*models.Treatment, error)
	FindAllTreatments(ctx context.Context) ([]models.Treatment, error)
	FindTreatmentByID(ctx context.Context, treatmentID string) (*models.Treatment, error)
	UpdateTreatment(ctx context.Context, treatmentID string, request *requests.Treatment) (*models.Treatment, error)
	DeleteTreatment(ctx context.Context, treatmentID string) error
}

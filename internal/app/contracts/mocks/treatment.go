package mocks

import (
	"context"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/mock"
)

type TreatmentRepository struct {
	mock.Mock
}

func (m *TreatmentRepository) Create(ctx context.Context, treatment *models.Treatment) (string, error) {
	args := m.Called(ctx, treatment)
	return args.String(0), args.Error(1)
}

func (m *TreatmentRepository) FindByID(ctx context.Context, treatmentID string) (*models.Treatment, error) {
	args := m.Called(ctx, treatmentID)
	var r0 *models.Treatment
	if value, ok := args.Get(0).(*models.Treatment); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *TreatmentRepository) FindByCode(ctx context.Context, code string) (*models.Treatment, error) {
	args := m.Called(ctx, code)
	var r0 *models.Treatment
	if value, ok := args.Get(0).(*models.Treatment); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *TreatmentRepository) FindAll(ctx context.Context) ([]models.Treatment, error) {
	args := m.Called(ctx)
	var r0 []models.Treatment
	if value, ok := args.Get(0).([]models.Treatment); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *TreatmentRepository) Update(ctx context.Context, treatment *models.Treatment) error {
	args := m.Called(ctx, treatment)
	return args.Error(0)
}

func (m *TreatmentRepository) Delete(ctx context.Context, treatmentID string) error {
	args := m.Called(ctx, treatmentID)
	return args.Error(0)
}

type TreatmentUsecase struct {
	mock.Mock
}

func (m *TreatmentUsecase) CreateTreatment(ctx context.Context, request *requests.Treatment) (*models.Treatment, error) {
	args := m.Called(ctx, request)
	var r0 *models.Treatment
	if value, ok := args.Get(0).(*models.Treatment); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *TreatmentUsecase) FindAllTreatments(ctx context.Context) ([]models.Treatment, error) {
	args := m.Called(ctx)
	var r0 []models.Treatment
	if value, ok := args.Get(0).([]models.Treatment); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *TreatmentUsecase) FindTreatmentByID(ctx context.Context, treatmentID string) (*models.Treatment, error) {
	args := m.Called(ctx, treatmentID)
	var r0 *models.Treatment
	if value, ok := args.Get(0).(*models.Treatment); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *TreatmentUsecase) UpdateTreatment(ctx context.Context, treatmentID string, request *requests.Treatment) (*models.Treatment, error) {
	args := m.Called(ctx, treatmentID, request)
	var r0 *models.Treatment
	if value, ok := args.Get(0).(*models.Treatment); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *TreatmentUsecase) DeleteTreatment(ctx context.Context, treatmentID string) error {
	args := m.Called(ctx, treatmentID)
	return args.Error(0)
}

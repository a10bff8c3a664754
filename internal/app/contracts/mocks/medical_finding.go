package mocks

import (
	"context"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/mock"
)

type MedicalFindingRepository struct {
	mock.Mock
}

func (m *MedicalFindingRepository) Create(ctx context.Context, finding *models.MedicalFinding) (string, error) {
	args := m.Called(ctx, finding)
	return args.String(0), args.Error(1)
}

func (m *MedicalFindingRepository) FindByID(ctx context.Context, findingID string) (*models.MedicalFinding, error) {
	args := m.Called(ctx, findingID)
	var r0 *models.MedicalFinding
	if value, ok := args.Get(0).(*models.MedicalFinding); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *MedicalFindingRepository) FindAllByPatient(ctx context.Context, patientID string) ([]models.MedicalFinding, error) {
	args := m.Called(ctx, patientID)
	var r0 []models.MedicalFinding
	if value, ok := args.Get(0).([]models.MedicalFinding); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *MedicalFindingRepository) Update(ctx context.Context, finding *models.MedicalFinding) error {
	args := m.Called(ctx, finding)
	return args.Error(0)
}

func (m *MedicalFindingRepository) Delete(ctx context.Context, findingID string) error {
	args := m.Called(ctx, findingID)
	return args.Error(0)
}

type MedicalFindingUsecase struct {
	mock.Mock
}

func (m *MedicalFindingUsecase) CreateFinding(ctx context.Context, request *requests.MedicalFinding) (*models.MedicalFinding, error) {
	args := m.Called(ctx, request)
	var r0 *models.MedicalFinding
	if value, ok := args.Get(0).(*models.MedicalFinding); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *MedicalFindingUsecase) FindFindingsByPatient(ctx context.Context, patientID string) ([]models.MedicalFinding, error) {
	args := m.Called(ctx, patientID)
	var r0 []models.MedicalFinding
	if value, ok := args.Get(0).([]models.MedicalFinding); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *MedicalFindingUsecase) FindFindingByID(ctx context.Context, findingID string) (*models.MedicalFinding, error) {
	args := m.Called(ctx, findingID)
	var r0 *models.MedicalFinding
	if value, ok := args.Get(0).(*models.MedicalFinding); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *MedicalFindingUsecase) UpdateFinding(ctx context.Context, findingID string, request *requests.MedicalFinding) (*models.MedicalFinding, error) {
	args := m.Called(ctx, findingID, request)
	var r0 *models.MedicalFinding
	if value, ok := args.Get(0).(*models.MedicalFinding); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *MedicalFindingUsecase) DeleteFinding(ctx context.Context, findingID string) error {
	args := m.Called(ctx, findingID)
	return args.Error(0)
}

func (m *MedicalFindingUsecase) GetDentalChart(ctx context.Context, patientID string) (*responses.DentalChart, error) {
	args := m.Called(ctx, patientID)
	var r0 *responses.DentalChart
	if value, ok := args.Get(0).(*responses.DentalChart); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

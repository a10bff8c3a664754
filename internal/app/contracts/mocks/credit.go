package mocks

import (
	"context"
	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/mock"
)

type CreditRepository struct {
	mock.Mock
}

func (m *CreditRepository) Create(ctx context.Context, entry *models.CreditEntry) (string, error) {
	args := m.Called(ctx, entry)
	return args.String(0), args.Error(1)
}

func (m *CreditRepository) FindAllByPatient(ctx context.Context, patientID string, pagination requests.Pagination) ([]models.CreditEntry, int, error) {
	args := m.Called(ctx, patientID, pagination)
	var r0 []models.CreditEntry
	if value, ok := args.Get(0).([]models.CreditEntry); ok {
		r0 = value
	}
	return r0, args.Int(1), args.Error(2)
}

type CreditUsecase struct {
	mock.Mock
}

func (m *CreditUsecase) Deposit(ctx context.Context, patientID string, request *requests.CreditMovement) (*models.CreditEntry, error) {
	args := m.Called(ctx, patientID, request)
	var r0 *models.CreditEntry
	if value, ok := args.Get(0).(*models.CreditEntry); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *CreditUsecase) Withdraw(ctx context.Context, patientID string, request *requests.CreditMovement) (*models.CreditEntry, error) {
	args := m.Called(ctx, patientID, request)
	var r0 *models.CreditEntry
	if value, ok := args.Get(0).(*models.CreditEntry); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *CreditUsecase) FindCreditHistory(ctx context.Context, patientID string, pagination requests.Pagination) ([]models.CreditEntry, int, error) {
	args := m.Called(ctx, patientID, pagination)
	var r0 []models.CreditEntry
	if value, ok := args.Get(0).([]models.CreditEntry); ok {
		r0 = value
	}
	return r0, args.Int(1), args.Error(2)
}

func (m *CreditUsecase) GetCreditBalance(ctx context.Context, patientID string) (*responses.CreditBalance, error) {
	args := m.Called(ctx, patientID)
	var r0 *responses.CreditBalance
	if value, ok := args.Get(0).(*responses.CreditBalance); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *CreditUsecase) ApplyMovement(ctx context.Context, movement contracts.CreditMovement) (*models.CreditEntry, error) {
	args := m.Called(ctx, movement)
	var r0 *models.CreditEntry
	if value, ok := args.Get(0).(*models.CreditEntry); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

package mocks

import (
	"context"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/mock"
)

type BranchRepository struct {
	mock.Mock
}

func (m *BranchRepository) Create(ctx context.Context, branch *models.Branch) (string, error) {
	args := m.Called(ctx, branch)
	return args.String(0), args.Error(1)
}

func (m *BranchRepository) FindByID(ctx context.Context, branchID string) (*models.Branch, error) {
	args := m.Called(ctx, branchID)
	var r0 *models.Branch
	if value, ok := args.Get(0).(*models.Branch); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *BranchRepository) FindByCode(ctx context.Context, code string) (*models.Branch, error) {
	args := m.Called(ctx, code)
	var r0 *models.Branch
	if value, ok := args.Get(0).(*models.Branch); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *BranchRepository) FindAll(ctx context.Context) ([]models.Branch, error) {
	args := m.Called(ctx)
	var r0 []models.Branch
	if value, ok := args.Get(0).([]models.Branch); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *BranchRepository) Update(ctx context.Context, branch *models.Branch) error {
	args := m.Called(ctx, branch)
	return args.Error(0)
}

type BranchUsecase struct {
	mock.Mock
}

func (m *BranchUsecase) CreateBranch(ctx context.Context, request *requests.Branch) (*models.Branch, error) {
	args := m.Called(ctx, request)
	var r0 *models.Branch
	if value, ok := args.Get(0).(*models.Branch); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *BranchUsecase) FindAllBranches(ctx context.Context) ([]models.Branch, error) {
	args := m.Called(ctx)
	var r0 []models.Branch
	if value, ok := args.Get(0).([]models.Branch); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *BranchUsecase) FindBranchByID(ctx context.Context, branchID string) (*models.Branch, error) {
	args := m.Called(ctx, branchID)
	var r0 *models.Branch
	if value, ok := args.Get(0).(*models.Branch); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *BranchUsecase) UpdateBranch(ctx context.Context, branchID string, request *requests.Branch) (*models.Branch, error) {
	args := m.Called(ctx, branchID, request)
	var r0 *models.Branch
	if value, ok := args.Get(0).(*models.Branch); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *BranchUsecase) DeactivateBranch(ctx context.Context, branchID string) error {
	args := m.Called(ctx, branchID)
	return args.Error(0)
}

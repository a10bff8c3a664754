package mocks

import (
	"context"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/mock"
)

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, user *models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *UserRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	var r0 *models.User
	if value, ok := args.Get(0).(*models.User); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	var r0 *models.User
	if value, ok := args.Get(0).(*models.User); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *UserRepository) FindAll(ctx context.Context, request *requests.FindAllUsers) ([]models.User, int, error) {
	args := m.Called(ctx, request)
	var r0 []models.User
	if value, ok := args.Get(0).([]models.User); ok {
		r0 = value
	}
	return r0, args.Int(1), args.Error(2)
}

func (m *UserRepository) Update(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type UserUsecase struct {
	mock.Mock
}

func (m *UserUsecase) CreateUser(ctx context.Context, request *requests.CreateUser) (*responses.User, error) {
	args := m.Called(ctx, request)
	var r0 *responses.User
	if value, ok := args.Get(0).(*responses.User); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *UserUsecase) FindAllUsers(ctx context.Context, request *requests.FindAllUsers) ([]responses.User, int, error) {
	args := m.Called(ctx, request)
	var r0 []responses.User
	if value, ok := args.Get(0).([]responses.User); ok {
		r0 = value
	}
	return r0, args.Int(1), args.Error(2)
}

func (m *UserUsecase) FindUserByID(ctx context.Context, userID string) (*responses.User, error) {
	args := m.Called(ctx, userID)
	var r0 *responses.User
	if value, ok := args.Get(0).(*responses.User); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *UserUsecase) UpdateUser(ctx context.Context, userID string, request *requests.UpdateUser) (*responses.User, error) {
	args := m.Called(ctx, userID, request)
	var r0 *responses.User
	if value, ok := args.Get(0).(*responses.User); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *UserUsecase) DeactivateUser(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

package mocks

import (
	"context"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/dto/requests"
	"dental-clinic-service/internal/pkg/dto/responses"

	"github.com/stretchr/testify/mock"
)

type AuthUsecase struct {
	mock.Mock
}

func (m *AuthUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	args := m.Called(ctx, request)
	var r0 *responses.Login
	if value, ok := args.Get(0).(*responses.Login); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *AuthUsecase) Logout(ctx context.Context, session *models.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *AuthUsecase) Me(ctx context.Context, session *models.Session) (*responses.User, error) {
	args := m.Called(ctx, session)
	var r0 *responses.User
	if value, ok := args.Get(0).(*responses.User); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

type AuthorizationService struct {
	mock.Mock
}

func (m *AuthorizationService) Enforce(role string, path string, method string) (bool, error) {
	args := m.Called(role, path, method)
	return args.Bool(0), args.Error(1)
}

type AttemptLimiter struct {
	mock.Mock
}

func (m *AttemptLimiter) Blocked(ctx context.Context, resource string) (bool, error) {
	args := m.Called(ctx, resource)
	return args.Bool(0), args.Error(1)
}

func (m *AttemptLimiter) RecordFailure(ctx context.Context, resource string) (int64, error) {
	args := m.Called(ctx, resource)
	var r0 int64
	if value, ok := args.Get(0).(int64); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *AttemptLimiter) Reset(ctx context.Context, resource string) error {
	args := m.Called(ctx, resource)
	return args.Error(0)
}

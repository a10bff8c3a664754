package mocks

import (
	"context"
	"dental-clinic-service/internal/app/models"

	"github.com/stretchr/testify/mock"
)

type SessionService struct {
	mock.Mock
}

func (m *SessionService) CreateSession(ctx context.Context, user *models.User) (*models.Session, error) {
	args := m.Called(ctx, user)
	var r0 *models.Session
	if value, ok := args.Get(0).(*models.Session); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *SessionService) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	var r0 *models.Session
	if value, ok := args.Get(0).(*models.Session); ok {
		r0 = value
	}
	return r0, args.Error(1)
}

func (m *SessionService) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

package mocks

import (
	"context"
	"dental-clinic-service/internal/app/models"

	"github.com/stretchr/testify/mock"
)

type NotificationPublisher struct {
	mock.Mock
}

func (m *NotificationPublisher) Publish(ctx context.Context, notification *models.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

type NotificationSender struct {
	mock.Mock
}

func (m *NotificationSender) Send(ctx context.Context, notification *models.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

type EventPublisher struct {
	mock.Mock
}

func (m *EventPublisher) Publish(ctx context.Context, event *models.DomainEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *EventPublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}

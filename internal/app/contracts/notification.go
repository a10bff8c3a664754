package contracts

import (
	"context"
	"dental-clinic-service/internal/app/models"
)

type NotificationPublisher interface {
	Publish(ctx context.Context, notification *models.Notification) error
}

type NotificationSender interface {
	Send(ctx context.Context, notification *models.Notification) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event *models.DomainEvent) error
	Close() error
}

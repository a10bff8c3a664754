package events

import (
	"context"
	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/constvars"
	"dental-clinic-service/internal/pkg/exceptions"
	"dental-clinic-service/internal/pkg/utils"
	"time"

	"github.com/IBM/sarama"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type kafkaEventPublisher struct {
	Producer sarama.SyncProducer
	Topic    string
	Log      *zap.Logger
}

// NewEventPublisher falls back to a logging publisher when the producer is nil.
func NewEventPublisher(producer sarama.SyncProducer, topic string, logger *zap.Logger) contracts.EventPublisher {
	if producer == nil {
		return &noopEventPublisher{Log: logger}
	}
	return &kafkaEventPublisher{
		Producer: producer,
		Topic:    topic,
		Log:      logger,
	}
}

func (p *kafkaEventPublisher) Publish(ctx context.Context, event *models.DomainEvent) error {
	prepareEvent(ctx, event)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	partition, offset, err := p.Producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.Topic,
		Key:   sarama.StringEncoder(event.AggregateID),
		Value: sarama.ByteEncoder(body),
		Headers: []sarama.RecordHeader{
			{Key: []byte(constvars.LoggingEventTypeKey), Value: []byte(event.Type)},
		},
		Timestamp: event.OccurredAt,
	})
	if err != nil {
		return exceptions.ErrKafkaPublishMessage(err, p.Topic)
	}

	p.Log.Debug("kafkaEventPublisher.Publish succeeded",
		zap.String(constvars.LoggingRequestIDKey, event.RequestID),
		zap.String(constvars.LoggingTopicKey, p.Topic),
		zap.String(constvars.LoggingEventTypeKey, event.Type),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset),
	)
	return nil
}

func (p *kafkaEventPublisher) Close() error {
	return p.Producer.Close()
}

type noopEventPublisher struct {
	Log *zap.Logger
}

func (p *noopEventPublisher) Publish(ctx context.Context, event *models.DomainEvent) error {
	prepareEvent(ctx, event)
	p.Log.Debug("noopEventPublisher.Publish skipped",
		zap.String(constvars.LoggingRequestIDKey, event.RequestID),
		zap.String(constvars.LoggingEventTypeKey, event.Type),
	)
	return nil
}

func (p *noopEventPublisher) Close() error {
	return nil
}

// NewDomainEvent builds an event stamped with the request id carried by ctx.
func NewDomainEvent(ctx context.Context, eventType, aggregateID string, payload interface{}) *models.DomainEvent {
	event := &models.DomainEvent{
		Type:        eventType,
		AggregateID: aggregateID,
		Payload:     payload,
	}
	prepareEvent(ctx, event)
	return event
}

// PublishQuietly publishes after the business change is committed, so a
// failure is logged and never returned.
func PublishQuietly(ctx context.Context, publisher contracts.EventPublisher, logger *zap.Logger, event *models.DomainEvent) {
	if err := publisher.Publish(ctx, event); err != nil {
		logger.Warn("Failed to publish domain event",
			zap.String(constvars.LoggingRequestIDKey, event.RequestID),
			zap.String(constvars.LoggingEventTypeKey, event.Type),
			zap.Error(err),
		)
	}
}

func prepareEvent(ctx context.Context, event *models.DomainEvent) {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now()
	}
	if event.RequestID == "" {
		event.RequestID = utils.GetRequestID(ctx)
	}
}

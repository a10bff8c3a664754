package mailer

import (
	"context"
	"dental-clinic-service/internal/app/contracts"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/constvars"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

const consumerPrefetchCount = 10

var deliverableNotificationTypes = map[string]bool{
	constvars.NotificationTypeAppointmentReminder: true,
	constvars.NotificationTypeLowStock:            true,
	constvars.NotificationTypeBatchExpiry:         true,
}

// NotificationConsumer drains the notification queue and hands each message
// to the sender. Malformed messages are dropped, failed deliveries are
// retried once.
type NotificationConsumer struct {
	Connection *amqp091.Connection
	Queue      string
	Sender     contracts.NotificationSender
	Log        *zap.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewNotificationConsumer(conn *amqp091.Connection, queue string, sender contracts.NotificationSender, logger *zap.Logger) *NotificationConsumer {
	return &NotificationConsumer{
		Connection: conn,
		Queue:      queue,
		Sender:     sender,
		Log:        logger,
	}
}

func (c *NotificationConsumer) Start() error {
	channel, err := c.Connection.Channel()
	if err != nil {
		return err
	}
	if _, err = channel.QueueDeclare(c.Queue, true, false, false, false, nil); err != nil {
		return err
	}
	if err = channel.Qos(consumerPrefetchCount, 0, false); err != nil {
		return err
	}

	deliveries, err := channel.Consume(c.Queue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		defer channel.Close()
		c.consume(ctx, deliveries)
	}()

	c.Log.Info("Notification consumer started", zap.String(constvars.LoggingQueueKey, c.Queue))
	return nil
}

func (c *NotificationConsumer) Stop() {
	if c.cancel == nil {
		return
	}
	c.cancel()
	c.wg.Wait()
	c.Log.Info("Notification consumer stopped", zap.String(constvars.LoggingQueueKey, c.Queue))
}

func (c *NotificationConsumer) consume(ctx context.Context, deliveries <-chan amqp091.Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		case delivery, ok := <-deliveries:
			if !ok {
				c.Log.Warn("Notification queue channel closed", zap.String(constvars.LoggingQueueKey, c.Queue))
				return
			}
			c.handleDelivery(ctx, delivery)
		}
	}
}

func (c *NotificationConsumer) handleDelivery(ctx context.Context, delivery amqp091.Delivery) {
	if !gjson.ValidBytes(delivery.Body) {
		c.Log.Error("NotificationConsumer.handleDelivery invalid payload")
		c.nack(delivery, false)
		return
	}

	notificationType := gjson.GetBytes(delivery.Body, "type").String()
	if !deliverableNotificationTypes[notificationType] {
		c.Log.Error("NotificationConsumer.handleDelivery unknown notification type",
			zap.String(constvars.LoggingNotificationTypeKey, notificationType),
		)
		c.nack(delivery, false)
		return
	}
	if gjson.GetBytes(delivery.Body, "recipient").String() == "" {
		c.Log.Error("NotificationConsumer.handleDelivery missing recipient",
			zap.String(constvars.LoggingNotificationTypeKey, notificationType),
		)
		c.nack(delivery, false)
		return
	}

	notification := new(models.Notification)
	if err := json.Unmarshal(delivery.Body, notification); err != nil {
		c.Log.Error("NotificationConsumer.handleDelivery error decoding notification", zap.Error(err))
		c.nack(delivery, false)
		return
	}

	if err := c.Sender.Send(ctx, notification); err != nil {
		c.Log.Error("NotificationConsumer.handleDelivery error sending notification",
			zap.String(constvars.LoggingNotificationTypeKey, notificationType),
			zap.Bool("redelivered", delivery.Redelivered),
			zap.Error(err),
		)
		c.nack(delivery, !delivery.Redelivered)
		return
	}

	if err := delivery.Ack(false); err != nil {
		c.Log.Error("NotificationConsumer.handleDelivery error acking message", zap.Error(err))
	}
}

func (c *NotificationConsumer) nack(delivery amqp091.Delivery, requeue bool) {
	if err := delivery.Nack(false, requeue); err != nil {
		c.Log.Error("NotificationConsumer.nack error", zap.Error(err))
	}
}

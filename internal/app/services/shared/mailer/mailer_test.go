package mailer

import (
	"context"
	"dental-clinic-service/internal/app/contracts/mocks"
	"dental-clinic-service/internal/app/models"
	"dental-clinic-service/internal/pkg/constvars"
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeAcknowledger struct {
	acked    bool
	nacked   bool
	requeued bool
}

func (a *fakeAcknowledger) Ack(tag uint64, multiple bool) error {
	a.acked = true
	return nil
}

func (a *fakeAcknowledger) Nack(tag uint64, multiple, requeue bool) error {
	a.nacked = true
	a.requeued = requeue
	return nil
}

func (a *fakeAcknowledger) Reject(tag uint64, requeue bool) error {
	return a.Nack(tag, false, requeue)
}

type fakePublisher struct {
	key string
	msg amqp091.Publishing
	err error
}

func (p *fakePublisher) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	p.key = key
	p.msg = msg
	return p.err
}

func newDelivery(t *testing.T, body string, redelivered bool) (amqp091.Delivery, *fakeAcknowledger) {
	t.Helper()
	ack := &fakeAcknowledger{}
	return amqp091.Delivery{Acknowledger: ack, Body: []byte(body), Redelivered: redelivered}, ack
}

func TestNotificationPublisher(t *testing.T) {
	channel := &fakePublisher{}
	publisher := &notificationPublisher{Channel: channel, Queue: "clinic_notifications", Log: zap.NewNop()}

	err := publisher.Publish(context.Background(), &models.Notification{
		Type:      constvars.NotificationTypeLowStock,
		Recipient: "stock@clinic.test",
		Subject:   constvars.EmailSubjectLowStock,
		Body:      "Gloves are low",
	})
	require.NoError(t, err)
	assert.Equal(t, "clinic_notifications", channel.key)
	assert.Equal(t, amqp091.Persistent, channel.msg.DeliveryMode)
	assert.Equal(t, constvars.NotificationTypeLowStock, channel.msg.Type)

	decoded := new(models.Notification)
	require.NoError(t, json.Unmarshal(channel.msg.Body, decoded))
	assert.Equal(t, "stock@clinic.test", decoded.Recipient)
	assert.False(t, decoded.CreatedAt.IsZero())

	channel.err = errors.New("channel closed")
	err = publisher.Publish(context.Background(), &models.Notification{Type: constvars.NotificationTypeLowStock})
	assert.Error(t, err)
}

func TestHandleDelivery(t *testing.T) {
	validBody := `{"type":"appointment_reminder","recipient":"patient@mail.test","subject":"Appointment reminder","body":"Tomorrow 09:00"}`

	t.Run("Delivered notification is acked", func(t *testing.T) {
		sender := new(mocks.NotificationSender)
		sender.On("Send", mock.Anything, mock.MatchedBy(func(n *models.Notification) bool {
			return n.Recipient == "patient@mail.test" && n.Body == "Tomorrow 09:00"
		})).Return(nil)
		consumer := NewNotificationConsumer(nil, "q", sender, zap.NewNop())
		delivery, ack := newDelivery(t, validBody, false)

		consumer.handleDelivery(context.Background(), delivery)
		assert.True(t, ack.acked)
		sender.AssertExpectations(t)
	})

	t.Run("Malformed payload is dropped", func(t *testing.T) {
		sender := new(mocks.NotificationSender)
		consumer := NewNotificationConsumer(nil, "q", sender, zap.NewNop())
		delivery, ack := newDelivery(t, "{broken", false)

		consumer.handleDelivery(context.Background(), delivery)
		assert.True(t, ack.nacked)
		assert.False(t, ack.requeued)
		sender.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
	})

	t.Run("Unknown type is dropped", func(t *testing.T) {
		sender := new(mocks.NotificationSender)
		consumer := NewNotificationConsumer(nil, "q", sender, zap.NewNop())
		delivery, ack := newDelivery(t, `{"type":"marketing","recipient":"a@b.test"}`, false)

		consumer.handleDelivery(context.Background(), delivery)
		assert.True(t, ack.nacked)
		assert.False(t, ack.requeued)
	})

	t.Run("Missing recipient is dropped", func(t *testing.T) {
		sender := new(mocks.NotificationSender)
		consumer := NewNotificationConsumer(nil, "q", sender, zap.NewNop())
		delivery, ack := newDelivery(t, `{"type":"low_stock"}`, false)

		consumer.handleDelivery(context.Background(), delivery)
		assert.True(t, ack.nacked)
		assert.False(t, ack.requeued)
	})

	t.Run("First send failure is requeued", func(t *testing.T) {
		sender := new(mocks.NotificationSender)
		sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("smtp down"))
		consumer := NewNotificationConsumer(nil, "q", sender, zap.NewNop())
		delivery, ack := newDelivery(t, validBody, false)

		consumer.handleDelivery(context.Background(), delivery)
		assert.True(t, ack.nacked)
		assert.True(t, ack.requeued)
	})

	t.Run("Second send failure is dropped", func(t *testing.T) {
		sender := new(mocks.NotificationSender)
		sender.On("Send", mock.Anything, mock.Anything).Return(errors.New("smtp down"))
		consumer := NewNotificationConsumer(nil, "q", sender, zap.NewNop())
		delivery, ack := newDelivery(t, validBody, true)

		consumer.handleDelivery(context.Background(), delivery)
		assert.True(t, ack.nacked)
		assert.False(t, ack.requeued)
	})
}

package messaging

import (
	"dental-clinic-service/internal/app/config"
	"testing"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
)

func TestNewKafkaProducerDisabled(t *testing.T) {
	producer := NewKafkaProducer(&config.DriverConfig{Kafka: config.Kafka{Enabled: false}})
	assert.Nil(t, producer)
}

func TestNewKafkaConfig(t *testing.T) {
	cfg := newKafkaConfig(&config.DriverConfig{Kafka: config.Kafka{ClientID: "dental-clinic-service"}})

	assert.Equal(t, "dental-clinic-service", cfg.ClientID)
	assert.True(t, cfg.Producer.Return.Successes)
	assert.Equal(t, sarama.WaitForAll, cfg.Producer.RequiredAcks)
	assert.NoError(t, cfg.Validate())
}

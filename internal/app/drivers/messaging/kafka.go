package messaging

import (
	"dental-clinic-service/internal/app/config"
	"log"
	"time"

	"github.com/IBM/sarama"
)

// NewKafkaProducer returns nil when the event stream is disabled.
func NewKafkaProducer(driverConfig *config.DriverConfig) sarama.SyncProducer {
	if !driverConfig.Kafka.Enabled {
		log.Println("Kafka event stream disabled")
		return nil
	}

	producer, err := sarama.NewSyncProducer(driverConfig.Kafka.Brokers, newKafkaConfig(driverConfig))
	if err != nil {
		log.Fatalf("Failed to create kafka producer: %s", err.Error())
	}
	log.Println("Successfully connected to kafka")
	return producer
}

func newKafkaConfig(driverConfig *config.DriverConfig) *sarama.Config {
	cfg := sarama.NewConfig()
	cfg.Version = sarama.V2_1_0_0
	cfg.ClientID = driverConfig.Kafka.ClientID
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Return.Successes = true
	cfg.Producer.Retry.Max = 3
	cfg.Producer.Retry.Backoff = 250 * time.Millisecond
	cfg.Producer.Idempotent = true
	cfg.Net.MaxOpenRequests = 1
	return cfg
}

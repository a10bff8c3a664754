package config

import (
	"context"
	"log"

	"github.com/IBM/sarama"
	"github.com/go-chi/chi/v5"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	MongoDB        *mongo.Client
	Redis          *redis.Client
	Logger         *zap.Logger
	RabbitMQ       *amqp091.Connection
	Kafka          sarama.SyncProducer
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// WorkerStops are called during Shutdown to stop cron workers and consumers
	WorkerStops []func()
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	for _, stop := range b.WorkerStops {
		stop()
	}
	if len(b.WorkerStops) > 0 {
		log.Println("Successfully stopped background workers")
	}

	if b.Kafka != nil {
		err := b.Kafka.Close()
		if err != nil {
			return err
		}
		log.Println("Successfully closing Kafka producer")
	}

	err := b.Redis.Close()
	if err != nil {
		return err
	}
	log.Println("Successfully closing Redis")

	err = b.RabbitMQ.Close()
	if err != nil {
		return err
	}
	log.Println("Successfully closing RabbitMQ")

	err = b.MongoDB.Disconnect(ctx)
	if err != nil {
		return err
	}
	log.Println("Successfully closing MongoDB")

	// Sync on stdout returns EINVAL on some platforms, nothing to report.
	_ = b.Logger.Sync()
	log.Println("Successfully closing Logger")

	return nil
}

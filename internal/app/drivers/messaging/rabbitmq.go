package messaging

import (
	"dental-clinic-service/internal/app/config"
	"log"
	"strconv"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const rabbitMQConnectionName = "dental-clinic-service"

// NewRabbitMQ dials the broker that carries the notification queue.
func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	port, err := strconv.Atoi(driverConfig.RabbitMQ.Port)
	if err != nil {
		log.Fatalf("Invalid rabbitMQ port %q: %s", driverConfig.RabbitMQ.Port, err.Error())
	}

	uri := amqp091.URI{
		Scheme:   "amqp",
		Host:     driverConfig.RabbitMQ.Host,
		Port:     port,
		Username: driverConfig.RabbitMQ.Username,
		Password: driverConfig.RabbitMQ.Password,
		Vhost:    "/",
	}
	conn, err := amqp091.DialConfig(uri.String(), amqp091.Config{
		Heartbeat:  10 * time.Second,
		Properties: amqp091.Table{"connection_name": rabbitMQConnectionName},
	})
	if err != nil {
		log.Fatalf("Failed to connect to rabbitMQ at %s:%d: %s", uri.Host, port, err.Error())
	}
	log.Println("Successfully connected to rabbitMQ")
	return conn
}

package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Publisher публикует события в RabbitMQ.
// Соединение открывается на каждую публикацию: поток событий въезда и
// выезда низкочастотный, а переживать реконнекты так не нужно.
type Publisher struct {
	url string
	log Logger
}

// NewPublisher создает публикатор событий
func NewPublisher(url string, log Logger) *Publisher {
	return &Publisher{url: url, log: log}
}

// PublishVehicleEntered публикует событие въезда
func (p *Publisher) PublishVehicleEntered(ctx context.Context, event VehicleEnteredEvent) error {
	return p.publish(ctx, QueueVehicleEntered, event)
}

// PublishVehicleExited публикует событие выезда
func (p *Publisher) PublishVehicleExited(ctx context.Context, event VehicleExitedEvent) error {
	return p.publish(ctx, QueueVehicleExited, event)
}

func (p *Publisher) publish(ctx context.Context, queueName string, event interface{}) error {
	conn, err := amqp.Dial(p.url)
	if err != nil {
		p.log.Error("queue: dial failed: %v", err)
		return fmt.Errorf("queue: dial: %w", err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.log.Error("queue: channel open failed: %v", err)
		return fmt.Errorf("queue: channel: %w", err)
	}
	defer func() { _ = ch.Close() }()

	// Декларация идемпотентна; durable - сообщения переживают рестарт брокера
	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		p.log.Error("queue: declare %s failed: %v", queueName, err)
		return fmt.Errorf("queue: declare: %w", err)
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.log.Error("queue: marshal event failed: %v", err)
		return fmt.Errorf("queue: marshal: %w", err)
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", queueName, false, false, pub); err != nil {
		p.log.Error("queue: publish to %s failed: %v", queueName, err)
		return fmt.Errorf("queue: publish: %w", err)
	}

	p.log.Info("queue: published event to %s", queueName)
	return nil
}

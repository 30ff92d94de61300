package services

import (
	"context"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/streadway/amqp"

	"guaranihost/services/logger"
)

// Event es un aviso de dominio publicado después de una escritura
type Event struct {
	Type       string    `json:"type"` // property.created, booking.cancelled, ...
	ResourceID string    `json:"resourceId"`
	UserID     string    `json:"userId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}

// EventPublisher publica eventos; un fallo nunca anula la escritura
type EventPublisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

// NoopPublisher se usa cuando RABBITMQ_URL no está configurado
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, Event) error { return nil }
func (NoopPublisher) Close() error                         { return nil }

// RabbitMQPublisher publica en una cola durable de RabbitMQ
type RabbitMQPublisher struct {
	mu         sync.Mutex
	connection *amqp.Connection
	channel    *amqp.Channel
	queueName  string
	logger     logger.Logger
}

// NewRabbitMQPublisher se conecta y declara la cola
func NewRabbitMQPublisher(rabbitURL, queueName string, log logger.Logger) (*RabbitMQPublisher, error) {
	conn, err := amqp.Dial(rabbitURL)
	if err != nil {
		return nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}
	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}
	if log == nil {
		log = logger.Nop{}
	}
	log.Info("RabbitMQ publisher listo, cola=%s", queueName)
	return &RabbitMQPublisher{connection: conn, channel: ch, queueName: queueName, logger: log}, nil
}

func (p *RabbitMQPublisher) Publish(ctx context.Context, e Event) error {
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now()
	}
	body, err := json.Marshal(e)
	if err != nil {
		return err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.channel.Publish("", p.queueName, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    e.OccurredAt,
		Type:         e.Type,
		Body:         body,
	})
}

func (p *RabbitMQPublisher) Close() error {
	if err := p.channel.Close(); err != nil {
		p.logger.Warn("cerrar canal RabbitMQ: %v", err)
	}
	return p.connection.Close()
}

// Package rabbitmq publishes order change events to a RabbitMQ queue.
// Downstream consumers (notifications, reporting) read the queue; this
// side only ever publishes.
package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"backoffice/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
)

// QueueOrderChanged is the queue order change events are published to.
const QueueOrderChanged = "order-changed"

// Publisher implements EventPublisher on a RabbitMQ connection.
type Publisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	mu      sync.Mutex
}

// NewPublisher connects to RabbitMQ and declares the order change queue.
func NewPublisher(url string) (*Publisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = channel.QueueDeclare(
		QueueOrderChanged, // name
		true,              // durable
		false,             // delete when unused
		false,             // exclusive
		false,             // no-wait
		nil,               // arguments
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare queue %s: %w", QueueOrderChanged, err)
	}

	return &Publisher{
		conn:    conn,
		channel: channel,
	}, nil
}

// PublishOrderChanged publishes a single order change event as JSON.
func (p *Publisher) PublishOrderChanged(ctx context.Context, event ports.OrderChangedEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	err = p.channel.PublishWithContext(
		ctx,
		"",                // exchange
		QueueOrderChanged, // routing key
		false,             // mandatory
		false,             // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
			Timestamp:    time.Now(),
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	return nil
}

// Close closes the channel and connection.
func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel != nil {
		p.channel.Close()
	}
	if p.conn != nil {
		return p.conn.Close()
	}
	return nil
}

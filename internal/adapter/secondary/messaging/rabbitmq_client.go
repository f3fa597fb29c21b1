package messaging

import (
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/paystream/payments-api/internal/core"
	"github.com/paystream/payments-api/internal/port/output"
)

// ExchangeName is the broadcast exchange every subscriber binds to.
const ExchangeName = "payments_exchange"

// RabbitMQClient is a secondary adapter that implements the EventPublisher
// output port. It holds a single connection and channel for the process
// lifetime; there is no reconnect logic, so a failed setup must abort startup.
type RabbitMQClient struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// NewRabbitMQClient creates a new RabbitMQ client (returns interface for ports).
func NewRabbitMQClient(amqpURL string) (output.EventPublisher, error) {
	return NewRabbitMQClientConcrete(amqpURL)
}

// NewRabbitMQClientConcrete creates a new RabbitMQ client (returns concrete
// type for consumers).
func NewRabbitMQClientConcrete(amqpURL string) (*RabbitMQClient, error) {
	conn, err := amqp.Dial(amqpURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	// Fanout: every bound queue receives a copy of each event.
	err = channel.ExchangeDeclare(
		ExchangeName,
		"fanout",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare exchange: %w", err)
	}

	return &RabbitMQClient{
		conn:    conn,
		channel: channel,
	}, nil
}

// Publish sends the event to the broadcast exchange with no routing key. No
// acknowledgment is awaited and nothing is retried.
func (c *RabbitMQClient) Publish(event core.PaymentEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	err = c.channel.Publish(
		ExchangeName,
		"",    // routing key ignored by fanout
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType: "application/json",
			Body:        body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish event: %w", err)
	}
	return nil
}

// ConsumePaymentEvents binds a fresh exclusive queue to the broadcast
// exchange and feeds each decoded event to handler. Notifications are
// auto-acked; a handler error is logged and the next event is consumed.
func (c *RabbitMQClient) ConsumePaymentEvents(handler func(core.PaymentEvent) error) error {
	queue, err := c.channel.QueueDeclare(
		"",    // broker-named queue, one per subscriber
		false, // durable
		true,  // delete when unused
		true,  // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	err = c.channel.QueueBind(
		queue.Name,
		"", // routing key ignored by fanout
		ExchangeName,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to bind queue: %w", err)
	}

	msgs, err := c.channel.Consume(
		queue.Name,
		"",    // consumer tag
		true,  // auto-ack
		true,  // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	go func() {
		for msg := range msgs {
			var event core.PaymentEvent
			if err := json.Unmarshal(msg.Body, &event); err != nil {
				logrus.WithError(err).Error("failed to unmarshal payment event")
				continue
			}
			if err := handler(event); err != nil {
				logrus.WithError(err).
					WithField("payment_intent_id", event.PaymentIntentID).
					Error("failed to handle payment event")
			}
		}
	}()

	return nil
}

// Close closes the RabbitMQ connection.
func (c *RabbitMQClient) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

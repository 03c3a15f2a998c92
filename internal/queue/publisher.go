package queue

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/streadway/amqp"
)

// Publisher delivers status updates
type Publisher interface {
	Publish(routingKey string, update StatusUpdate) error
}

// AMQPPublisher publishes updates to a topic exchange
type AMQPPublisher struct {
	conn     *amqp.Connection
	exchange string

	declareOnce sync.Once
	declareErr  error
}

// NewAMQPPublisher creates a publisher on conn. The exchange is declared on first use.
func NewAMQPPublisher(conn *amqp.Connection, exchange string) *AMQPPublisher {
	if exchange == "" {
		exchange = UpdateExchange
	}
	return &AMQPPublisher{conn: conn, exchange: exchange}
}

// Publish sends update as JSON on a short-lived channel
func (p *AMQPPublisher) Publish(routingKey string, update StatusUpdate) error {
	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	p.declareOnce.Do(func() {
		p.declareErr = declareExchange(ch, p.exchange)
	})
	if p.declareErr != nil {
		return p.declareErr
	}

	body, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("failed to marshal update: %w", err)
	}

	return ch.Publish(
		p.exchange,
		routingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    update.Timestamp,
			Body:         body,
		},
	)
}

func declareExchange(ch *amqp.Channel, name string) error {
	err := ch.ExchangeDeclare(
		name,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to declare exchange %s: %w", name, err)
	}
	return nil
}

package queue

import (
	"context"
	"fmt"
	"log"

	"github.com/streadway/amqp"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of messages handled at once
const DefaultConcurrency = 4

// Worker consumes RequestQueue and hands each delivery to a Handler
type Worker struct {
	conn        *amqp.Connection
	handler     *Handler
	queue       string
	concurrency int
}

// Dial connects to RabbitMQ
func Dial(url string) (*amqp.Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to dial rabbitmq: %w", err)
	}
	return conn, nil
}

// NewWorker creates a worker on conn
func NewWorker(conn *amqp.Connection, handler *Handler, concurrency int) *Worker {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	return &Worker{
		conn:        conn,
		handler:     handler,
		queue:       RequestQueue,
		concurrency: concurrency,
	}
}

// Run consumes until ctx is cancelled or the broker closes the channel
func (w *Worker) Run(ctx context.Context) error {
	ch, err := w.conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	if err := declareDeadLetter(ch); err != nil {
		return err
	}

	_, err = ch.QueueDeclare(
		w.queue,
		true,  // durable (survives broker restarts)
		false, // auto-delete when unused
		false, // exclusive
		false, // no-wait
		requestQueueArgs(),
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", w.queue, err)
	}

	if err := ch.Qos(w.concurrency, 0, false); err != nil {
		return fmt.Errorf("failed to set prefetch: %w", err)
	}

	deliveries, err := ch.Consume(
		w.queue,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to consume %s: %w", w.queue, err)
	}

	log.Printf("[WORKER] Consuming %s with %d workers", w.queue, w.concurrency)

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < w.concurrency; i++ {
		g.Go(func() error {
			return w.consume(ctx, deliveries)
		})
	}

	// Closing the channel ends the delivery stream for every goroutine
	go func() {
		<-ctx.Done()
		_ = ch.Close()
	}()

	return g.Wait()
}

// requestQueueArgs routes nacked requests to DeadLetterExchange.
// A broker that already holds RequestQueue without these arguments rejects
// the declaration, so such a queue must be deleted once before upgrading.
func requestQueueArgs() amqp.Table {
	return amqp.Table{"x-dead-letter-exchange": DeadLetterExchange}
}

func declareDeadLetter(ch *amqp.Channel) error {
	if err := ch.ExchangeDeclare(DeadLetterExchange, amqp.ExchangeFanout, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange %s: %w", DeadLetterExchange, err)
	}
	if _, err := ch.QueueDeclare(DeadLetterQueue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare queue %s: %w", DeadLetterQueue, err)
	}
	if err := ch.QueueBind(DeadLetterQueue, "", DeadLetterExchange, false, nil); err != nil {
		return fmt.Errorf("failed to bind %s to %s: %w", DeadLetterQueue, DeadLetterExchange, err)
	}
	return nil
}

func (w *Worker) consume(ctx context.Context, deliveries <-chan amqp.Delivery) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-deliveries:
			if !ok {
				return nil
			}
			if err := w.handler.Handle(ctx, d.Body); err != nil {
				// not requeued, the broker moves it to DeadLetterQueue
				if nackErr := d.Nack(false, false); nackErr != nil {
					log.Printf("[WORKER] Failed to nack delivery: %v", nackErr)
				}
				continue
			}
			if err := d.Ack(false); err != nil {
				log.Printf("[WORKER] Failed to ack delivery: %v", err)
			}
		}
	}
}

package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestQueueArgs_RouteRejectsToDeadLetterExchange(t *testing.T) {
	args := requestQueueArgs()

	assert.Equal(t, DeadLetterExchange, args["x-dead-letter-exchange"])
	assert.NotContains(t, args, "x-dead-letter-routing-key", "rejected messages keep their routing key")
	assert.NoError(t, args.Validate())
}

func TestNewWorker_DefaultConcurrency(t *testing.T) {
	w := NewWorker(nil, nil, 0)
	assert.Equal(t, DefaultConcurrency, w.concurrency)
	assert.Equal(t, RequestQueue, w.queue)

	w = NewWorker(nil, nil, 9)
	assert.Equal(t, 9, w.concurrency)
}

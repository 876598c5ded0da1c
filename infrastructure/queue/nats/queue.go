// ABOUTME: NATS JetStream task queue for fan-out batches
// ABOUTME: Durable work-queue stream with explicit acks giving at-least-once delivery

package nats

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"

	coreerrors "newsfeed-app-api/core/errors"
	"newsfeed-app-api/core/interfaces"
	"newsfeed-app-api/pkg/config"
)

const (
	batchSubject = "newsfeed.fanout.batch"
	consumerName = "fanout-workers"

	setupTimeout = 30 * time.Second

	// ackWaitSlack is added on top of the worker time limit so a batch
	// that legitimately runs up to the ceiling is not redelivered while
	// still in flight.
	ackWaitSlack = 5 * time.Minute
)

// Queue is a TaskQueue backed by a JetStream work-queue stream. The
// broker redelivers unacked batches, so the delivery contract is
// at-least-once; the batch processor's duplicate-ignore insert is what
// makes that safe.
type Queue struct {
	conn       *nats.Conn
	js         jetstream.JetStream
	stream     string
	maxDeliver int
	ackWait    time.Duration
	handler    interfaces.BatchHandler
	consumeCtx jetstream.ConsumeContext
	logger     interfaces.Logger
}

// NewQueue connects to NATS and ensures the fan-out stream exists.
// workerTimeLimit shapes the consumer AckWait.
func NewQueue(cfg config.NATSConfig, workerTimeLimit time.Duration, logger interfaces.Logger) (*Queue, error) {
	if cfg.URL == "" {
		cfg.URL = nats.DefaultURL
	}
	if cfg.Stream == "" {
		cfg.Stream = "NEWSFEED_FANOUT"
	}
	if cfg.MaxDeliver <= 0 {
		cfg.MaxDeliver = 5
	}

	conn, err := nats.Connect(cfg.URL,
		nats.Name("newsfeed-fanout"),
		nats.MaxReconnects(-1),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS at %s: %w", cfg.URL, err)
	}

	js, err := jetstream.New(conn)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create JetStream context: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), setupTimeout)
	defer cancel()

	// Stream creation races with other instances starting up; retry
	// with backoff until the broker settles.
	ensureStream := func() error {
		_, err := js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
			Name:      cfg.Stream,
			Subjects:  []string{batchSubject},
			Retention: jetstream.WorkQueuePolicy,
			Storage:   jetstream.FileStorage,
		})
		return err
	}
	if err := backoff.Retry(ensureStream, backoff.WithContext(backoff.NewExponentialBackOff(), ctx)); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ensure stream %s: %w", cfg.Stream, err)
	}

	return &Queue{
		conn:       conn,
		js:         js,
		stream:     cfg.Stream,
		maxDeliver: cfg.MaxDeliver,
		ackWait:    workerTimeLimit + ackWaitSlack,
		logger:     logger,
	}, nil
}

// Enqueue publishes one batch to the stream
func (q *Queue) Enqueue(ctx context.Context, batch interfaces.Batch) error {
	data, err := json.Marshal(batch)
	if err != nil {
		return coreerrors.WrapError(err, "failed to encode batch")
	}

	if _, err := q.js.Publish(ctx, batchSubject, data); err != nil {
		return &coreerrors.DependencyError{Dependency: "task queue", Err: err}
	}

	return nil
}

// Subscribe registers the handler invoked for delivered batches
func (q *Queue) Subscribe(handler interfaces.BatchHandler) {
	q.handler = handler
}

// Start creates the durable consumer and begins delivering batches
func (q *Queue) Start() error {
	if q.handler == nil {
		return fmt.Errorf("no batch handler subscribed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), setupTimeout)
	defer cancel()

	stream, err := q.js.Stream(ctx, q.stream)
	if err != nil {
		return fmt.Errorf("failed to get stream %s: %w", q.stream, err)
	}

	consumer, err := stream.CreateOrUpdateConsumer(ctx, jetstream.ConsumerConfig{
		Name:          consumerName,
		Durable:       consumerName,
		FilterSubject: batchSubject,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       q.ackWait,
		MaxDeliver:    q.maxDeliver,
	})
	if err != nil {
		return fmt.Errorf("failed to create consumer %s: %w", consumerName, err)
	}

	consumeCtx, err := consumer.Consume(q.onMessage)
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}

	q.consumeCtx = consumeCtx
	return nil
}

// Stop drains in-flight work and closes the connection
func (q *Queue) Stop() error {
	if q.consumeCtx != nil {
		q.consumeCtx.Stop()
	}
	return q.conn.Drain()
}

// onMessage decodes and dispatches one delivered batch. Ack/nak/term
// encodes the error taxonomy: success acks, transient failures nak for
// redelivery, fatal failures (time limit, validation, garbage payload)
// terminate so the broker never redelivers them.
func (q *Queue) onMessage(msg jetstream.Msg) {
	var batch interfaces.Batch
	if err := json.Unmarshal(msg.Data(), &batch); err != nil {
		q.logger.Error("dropping undecodable fan-out batch", map[string]interface{}{
			"error": err.Error(),
		})
		_ = msg.Term()
		return
	}

	err := q.handler(context.Background(), batch)
	if err == nil {
		if ackErr := msg.Ack(); ackErr != nil {
			q.logger.Warn("failed to ack fan-out batch", map[string]interface{}{
				"post_id": batch.PostID,
				"error":   ackErr.Error(),
			})
		}
		return
	}

	if coreerrors.IsTimeLimit(err) || coreerrors.IsValidation(err) {
		q.logger.Error("fan-out batch failed fatally, terminating delivery", map[string]interface{}{
			"post_id": batch.PostID,
			"error":   err.Error(),
		})
		_ = msg.Term()
		return
	}

	q.logger.Warn("fan-out batch failed, requesting redelivery", map[string]interface{}{
		"post_id": batch.PostID,
		"error":   err.Error(),
	})
	_ = msg.Nak()
}

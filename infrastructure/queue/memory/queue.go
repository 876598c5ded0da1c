// ABOUTME: In-process task queue with a managed worker pool for fan-out batches
// ABOUTME: Emulates at-least-once delivery by re-enqueueing batches on retryable failure

package memory

import (
	"context"
	"sync"
	"time"

	coreerrors "newsfeed-app-api/core/errors"
	"newsfeed-app-api/core/interfaces"
)

// job wraps a batch with its delivery count
type job struct {
	batch    interfaces.Batch
	attempts int
}

// Config holds configuration for the in-process queue
type Config struct {
	MaxWorkers  int
	QueueSize   int
	MaxAttempts int
}

// DefaultConfig returns the default queue configuration
func DefaultConfig() Config {
	return Config{
		MaxWorkers:  10,
		QueueSize:   1000,
		MaxAttempts: 5,
	}
}

// Queue is a single-process TaskQueue: a buffered channel drained by a
// fixed pool of worker goroutines. A batch whose handler fails with a
// retryable error is re-enqueued until MaxAttempts deliveries; handlers
// therefore see the same at-least-once contract a broker would give
// them. Fatal failures (time limit, validation) are dropped, matching
// the no-automatic-retry rule for those classes.
type Queue struct {
	handler     interfaces.BatchHandler
	jobQueue    chan *job
	maxWorkers  int
	maxAttempts int
	logger      interfaces.Logger
	wg          sync.WaitGroup
	ctx         context.Context
	cancel      context.CancelFunc
	mu          sync.Mutex
	running     bool
}

// NewQueue creates a new in-process queue
func NewQueue(config Config, logger interfaces.Logger) *Queue {
	ctx, cancel := context.WithCancel(context.Background())

	if config.MaxWorkers <= 0 {
		config.MaxWorkers = DefaultConfig().MaxWorkers
	}
	if config.QueueSize <= 0 {
		config.QueueSize = DefaultConfig().QueueSize
	}
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = DefaultConfig().MaxAttempts
	}

	return &Queue{
		jobQueue:    make(chan *job, config.QueueSize),
		maxWorkers:  config.MaxWorkers,
		maxAttempts: config.MaxAttempts,
		logger:      logger,
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Subscribe registers the handler invoked for delivered batches
func (q *Queue) Subscribe(handler interfaces.BatchHandler) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.handler = handler
}

// Start starts the worker pool
func (q *Queue) Start() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.running {
		return nil
	}
	if q.handler == nil {
		return ErrNoHandler
	}

	for i := 0; i < q.maxWorkers; i++ {
		q.wg.Add(1)
		go q.run()
	}

	q.running = true
	return nil
}

// Stop stops the worker pool gracefully
func (q *Queue) Stop() error {
	q.mu.Lock()
	defer q.mu.Unlock()

	if !q.running {
		return nil
	}

	// The channel is never closed. Workers and redelivery goroutines
	// may still be sending on it at this point; they all exit through
	// the context instead.
	q.cancel()
	q.wg.Wait()

	q.running = false
	return nil
}

// Enqueue submits one batch for asynchronous processing. It blocks only
// while the queue buffer is full, never for batch execution.
func (q *Queue) Enqueue(ctx context.Context, batch interfaces.Batch) error {
	q.mu.Lock()
	if !q.running {
		q.mu.Unlock()
		return ErrQueueNotRunning
	}
	q.mu.Unlock()

	return q.submit(ctx, &job{batch: batch, attempts: 0})
}

// submit places a job on the queue with a bounded wait
func (q *Queue) submit(ctx context.Context, j *job) error {
	select {
	case q.jobQueue <- j:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-q.ctx.Done():
		return ErrQueueNotRunning
	case <-time.After(5 * time.Second):
		return ErrQueueFull
	}
}

// run is the main loop for each worker
func (q *Queue) run() {
	defer q.wg.Done()

	for {
		select {
		case j := <-q.jobQueue:
			q.deliver(j)
		case <-q.ctx.Done():
			return
		}
	}
}

// deliver invokes the handler for one job and applies the retry policy
func (q *Queue) deliver(j *job) {
	j.attempts++

	err := q.handler(q.ctx, j.batch)
	if err == nil {
		return
	}

	if coreerrors.IsTimeLimit(err) || coreerrors.IsValidation(err) {
		q.logger.Error("fan-out batch failed fatally, not retrying", map[string]interface{}{
			"post_id":  j.batch.PostID,
			"attempts": j.attempts,
			"error":    err.Error(),
		})
		return
	}

	if j.attempts >= q.maxAttempts {
		q.logger.Error("fan-out batch exhausted delivery attempts", map[string]interface{}{
			"post_id":  j.batch.PostID,
			"attempts": j.attempts,
			"error":    err.Error(),
		})
		return
	}

	q.logger.Warn("fan-out batch failed, re-enqueueing", map[string]interface{}{
		"post_id":  j.batch.PostID,
		"attempts": j.attempts,
		"error":    err.Error(),
	})

	// Redeliver asynchronously so a full buffer cannot deadlock the
	// worker that is also supposed to drain it. The goroutine joins the
	// WaitGroup so Stop waits for in-flight redeliveries too.
	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		if err := q.submit(q.ctx, j); err != nil {
			q.logger.Error("failed to re-enqueue fan-out batch", map[string]interface{}{
				"post_id": j.batch.PostID,
				"error":   err.Error(),
			})
		}
	}()
}

// Error definitions
var (
	ErrQueueNotRunning = &QueueError{Message: "task queue is not running"}
	ErrQueueFull       = &QueueError{Message: "task queue is full"}
	ErrNoHandler       = &QueueError{Message: "no batch handler subscribed"}
)

// QueueError represents a queue-specific error
type QueueError struct {
	Message string
}

func (e *QueueError) Error() string {
	return e.Message
}

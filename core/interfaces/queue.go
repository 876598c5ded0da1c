// ABOUTME: Task queue interface for asynchronous fan-out batch dispatch
// ABOUTME: Defines the at-least-once unit-of-work boundary between publish and workers

package interfaces

import "context"

// Batch is one unit of fan-out work: make PostID visible to every
// recipient in RecipientIDs. It has no identity beyond the queue
// message carrying it.
type Batch struct {
	PostID       string   `json:"post_id"`
	RecipientIDs []string `json:"recipient_ids"`
}

// BatchHandler consumes one batch. The queue layer redelivers a batch
// whose handler returned a retryable error, so handlers must tolerate
// duplicate delivery. A handler error satisfying errors.IsTimeLimit is
// fatal: the batch is dropped, not redelivered.
type BatchHandler func(ctx context.Context, batch Batch) error

// TaskQueue is the asynchronous dispatch boundary. Enqueue is
// non-blocking with respect to batch execution: it returns once the
// batch is accepted for delivery, never waiting for completion.
// Delivery is at-least-once.
type TaskQueue interface {
	// Enqueue submits one batch for asynchronous processing.
	Enqueue(ctx context.Context, batch Batch) error

	// Subscribe registers the handler invoked for delivered batches.
	// Must be called before Start.
	Subscribe(handler BatchHandler)

	// Start begins delivering batches to the subscribed handler.
	Start() error

	// Stop drains in-flight work and shuts the queue down.
	Stop() error
}

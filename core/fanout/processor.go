// ABOUTME: Batch processor performing the bulk write and explicit cache population
// ABOUTME: Consumed by the task queue workers; tolerant of duplicate delivery

package fanout

import (
	"context"
	"errors"
	"time"

	"github.com/sourcegraph/conc/pool"

	"newsfeed-app-api/core/domain"
	coreerrors "newsfeed-app-api/core/errors"
	"newsfeed-app-api/core/interfaces"
)

// defaultPushConcurrency bounds the goroutines pushing cache entries
// for one batch.
const defaultPushConcurrency = 8

// Processor consumes fan-out batches. One batch becomes one bulk insert
// into the feed store (one round trip instead of one per recipient)
// followed by an explicit cache push per recipient. The bulk insert
// bypasses any per-row creation hook, so the explicit push is the only
// path by which fanned-out entries reach a warm cache.
type Processor struct {
	deps            interfaces.Dependencies
	cache           FeedCache
	timeLimit       time.Duration
	pushConcurrency int
}

// NewProcessor creates a batch processor. timeLimit is the hard
// execution ceiling for one batch; exceeding it is fatal for that
// batch, never retried.
func NewProcessor(deps interfaces.Dependencies, cache FeedCache, timeLimit time.Duration) *Processor {
	if timeLimit <= 0 {
		timeLimit = time.Hour
	}

	return &Processor{
		deps:            deps,
		cache:           cache,
		timeLimit:       timeLimit,
		pushConcurrency: defaultPushConcurrency,
	}
}

// ProcessBatch materializes one batch of feed entries and returns the
// number of rows actually created. Recipients whose entry already
// exists (a redelivered batch) are skipped by the store without
// failing the batch, and their caches are still populated: the queue
// delivers at least once, so a duplicate batch must converge to the
// same end state as the first delivery.
func (p *Processor) ProcessBatch(ctx context.Context, batch interfaces.Batch) (int, error) {
	if batch.PostID == "" {
		return 0, &coreerrors.ValidationError{Field: "post_id", Message: "cannot be empty"}
	}
	if len(batch.RecipientIDs) == 0 {
		return 0, nil
	}

	ctx, cancel := context.WithTimeout(ctx, p.timeLimit)
	defer cancel()

	entries := make([]*domain.NewsFeed, 0, len(batch.RecipientIDs))
	for _, recipientID := range batch.RecipientIDs {
		entry, err := domain.NewNewsFeed(recipientID, batch.PostID)
		if err != nil {
			return 0, &coreerrors.ValidationError{Field: "recipient_ids", Message: err.Error()}
		}
		entries = append(entries, entry)
	}

	created, err := p.deps.FeedStore.BulkInsertEntries(ctx, entries)
	if err != nil {
		if timedOut := p.timeLimitError(ctx, err); timedOut != nil {
			return 0, timedOut
		}
		return 0, &coreerrors.DependencyError{Dependency: "feed store", Err: err}
	}

	pushPool := pool.New().WithMaxGoroutines(p.pushConcurrency).WithContext(ctx)
	for _, entry := range entries {
		entry := entry
		pushPool.Go(func(ctx context.Context) error {
			return p.cache.PushNewsfeedToCache(ctx, entry)
		})
	}

	if err := pushPool.Wait(); err != nil {
		if timedOut := p.timeLimitError(ctx, err); timedOut != nil {
			return created, timedOut
		}
		return created, coreerrors.WrapError(err, "failed to push batch entries to cache")
	}

	p.deps.Logger.Info("fan-out batch processed", map[string]interface{}{
		"post_id":    batch.PostID,
		"recipients": len(batch.RecipientIDs),
		"created":    created,
	})

	return created, nil
}

// Handle adapts ProcessBatch to the task queue handler contract
func (p *Processor) Handle(ctx context.Context, batch interfaces.Batch) error {
	_, err := p.ProcessBatch(ctx, batch)
	return err
}

// timeLimitError maps a deadline expiry to the fatal TimeLimitError
func (p *Processor) timeLimitError(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &coreerrors.TimeLimitError{Task: "fanout batch", Limit: p.timeLimit.String()}
	}
	return nil
}

// ABOUTME: Main fan-out service orchestrating the publish-time flow
// ABOUTME: Self-entry first, then follower query, partitioning, and async batch dispatch

package fanout

import (
	"context"
	"fmt"

	"newsfeed-app-api/core/domain"
	coreerrors "newsfeed-app-api/core/errors"
	"newsfeed-app-api/core/interfaces"
)

// FeedCache is the slice of the feed cache service the fan-out pipeline
// needs: write-through population of newly created entries.
type FeedCache interface {
	PushNewsfeedToCache(ctx context.Context, entry *domain.NewsFeed) error
}

// Summary reports what a fan-out dispatched. It exists for
// observability only; correctness never depends on it.
type Summary struct {
	Followers int
	Batches   int
	Enqueued  int
}

// String renders the summary in log-friendly form
func (s *Summary) String() string {
	return fmt.Sprintf("%d newsfeeds going to fanout, %d batches created", s.Followers, s.Batches)
}

// Service runs the synchronous half of the fan-out pipeline. It writes
// the publisher's own feed entry, slices the follower set into batches,
// and hands each batch to the task queue without waiting for any of
// them to complete.
type Service struct {
	deps      interfaces.Dependencies
	directory interfaces.FollowerDirectory
	queue     interfaces.TaskQueue
	cache     FeedCache
	batchSize int
}

// NewService creates a new fan-out service
func NewService(
	deps interfaces.Dependencies,
	directory interfaces.FollowerDirectory,
	queue interfaces.TaskQueue,
	cache FeedCache,
	batchSize int,
) *Service {
	if batchSize <= 0 {
		batchSize = 1000
	}

	return &Service{
		deps:      deps,
		directory: directory,
		queue:     queue,
		cache:     cache,
		batchSize: batchSize,
	}
}

// Fanout materializes postID into every follower's feed. The caller
// guarantees the post itself is already durably stored.
//
// The publisher's own entry is written synchronously before anything
// else so the publisher sees their post immediately, regardless of
// follower count or queue congestion. Batch submission is
// fire-and-forget; a failed enqueue affects only that batch and is
// reported through the returned error so the caller can retry it.
func (s *Service) Fanout(ctx context.Context, postID, publisherID string) (*Summary, error) {
	if postID == "" {
		return nil, &coreerrors.ValidationError{Field: "post_id", Message: "cannot be empty"}
	}
	if publisherID == "" {
		return nil, &coreerrors.ValidationError{Field: "publisher_id", Message: "cannot be empty"}
	}

	if err := s.createSelfEntry(ctx, postID, publisherID); err != nil {
		return nil, err
	}

	followerIDs, err := s.directory.GetFollowerIDs(ctx, publisherID)
	if err != nil {
		// The whole fan-out fails and is retried as a unit. The self
		// entry already written is skipped idempotently on retry.
		return nil, &coreerrors.DependencyError{Dependency: "follower directory", Err: err}
	}

	batches := PartitionBatches(followerIDs, s.batchSize)

	enqueued := 0
	var lastErr error
	for i, recipientIDs := range batches {
		err := s.queue.Enqueue(ctx, interfaces.Batch{
			PostID:       postID,
			RecipientIDs: recipientIDs,
		})
		if err != nil {
			lastErr = err
			s.deps.Logger.Error("failed to enqueue fan-out batch", map[string]interface{}{
				"post_id":    postID,
				"batch":      i,
				"batch_size": len(recipientIDs),
				"error":      err.Error(),
			})
			continue
		}
		enqueued++
	}

	summary := &Summary{
		Followers: len(followerIDs),
		Batches:   len(batches),
		Enqueued:  enqueued,
	}

	s.deps.Logger.Info("fan-out dispatched", map[string]interface{}{
		"post_id":      postID,
		"publisher_id": publisherID,
		"followers":    summary.Followers,
		"batches":      summary.Batches,
		"enqueued":     summary.Enqueued,
	})

	if lastErr != nil {
		failed := summary.Batches - summary.Enqueued
		return summary, &coreerrors.DependencyError{
			Dependency: "task queue",
			Err:        fmt.Errorf("%d of %d batches failed to enqueue: %w", failed, summary.Batches, lastErr),
		}
	}

	return summary, nil
}

// createSelfEntry durably writes the publisher's own feed entry and
// pushes it through the cache. This must succeed, or the whole publish
// is considered failed.
func (s *Service) createSelfEntry(ctx context.Context, postID, publisherID string) error {
	entry, err := domain.NewNewsFeed(publisherID, postID)
	if err != nil {
		return &coreerrors.ValidationError{Field: "publisher_id", Message: err.Error()}
	}

	if _, err := s.deps.FeedStore.InsertEntry(ctx, entry); err != nil {
		return &coreerrors.DependencyError{Dependency: "feed store", Err: err}
	}

	if err := s.cache.PushNewsfeedToCache(ctx, entry); err != nil {
		return err
	}

	return nil
}

// ABOUTME: Storage interfaces for persisting domain entities
// ABOUTME: Defines contracts for data persistence operations

package interfaces

import (
	"context"
	"time"

	"newsfeed-app-api/core/domain"
)

// FeedStore defines the interface for durable feed entry persistence.
// The store enforces the per-(recipient, post) uniqueness invariant;
// duplicate inserts are ignored, never errors.
type FeedStore interface {
	// InsertEntry persists a single feed entry. Inserting an entry that
	// already exists is a no-op. Returns true if a row was created.
	InsertEntry(ctx context.Context, entry *domain.NewsFeed) (bool, error)

	// BulkInsertEntries persists a batch of feed entries in one
	// round trip, ignoring entries that already exist. Returns the
	// number of rows actually created.
	BulkInsertEntries(ctx context.Context, entries []*domain.NewsFeed) (int, error)

	// ListRecentEntries returns up to limit entries for a recipient,
	// most recent first.
	ListRecentEntries(ctx context.Context, recipientID string, limit int) ([]domain.NewsFeed, error)

	// DeleteEntriesBefore removes entries created before the cutoff.
	// Used by the retention janitor. Returns the number of rows removed.
	DeleteEntriesBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

package fanout

import (
	"context"
	"sync"
	"time"

	"newsfeed-app-api/core/domain"
	"newsfeed-app-api/core/interfaces"
)

// mockFeedStore is a mock implementation of the FeedStore interface
type mockFeedStore struct {
	insertEntryFunc         func(ctx context.Context, entry *domain.NewsFeed) (bool, error)
	bulkInsertEntriesFunc   func(ctx context.Context, entries []*domain.NewsFeed) (int, error)
	listRecentEntriesFunc   func(ctx context.Context, recipientID string, limit int) ([]domain.NewsFeed, error)
	deleteEntriesBeforeFunc func(ctx context.Context, cutoff time.Time) (int64, error)
}

func (m *mockFeedStore) InsertEntry(ctx context.Context, entry *domain.NewsFeed) (bool, error) {
	if m.insertEntryFunc != nil {
		return m.insertEntryFunc(ctx, entry)
	}
	return true, nil
}

func (m *mockFeedStore) BulkInsertEntries(ctx context.Context, entries []*domain.NewsFeed) (int, error) {
	if m.bulkInsertEntriesFunc != nil {
		return m.bulkInsertEntriesFunc(ctx, entries)
	}
	return len(entries), nil
}

func (m *mockFeedStore) ListRecentEntries(ctx context.Context, recipientID string, limit int) ([]domain.NewsFeed, error) {
	if m.listRecentEntriesFunc != nil {
		return m.listRecentEntriesFunc(ctx, recipientID, limit)
	}
	return nil, nil
}

func (m *mockFeedStore) DeleteEntriesBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	if m.deleteEntriesBeforeFunc != nil {
		return m.deleteEntriesBeforeFunc(ctx, cutoff)
	}
	return 0, nil
}

// mockFollowerDirectory is a mock implementation of the FollowerDirectory interface
type mockFollowerDirectory struct {
	getFollowerIDsFunc func(ctx context.Context, publisherID string) ([]string, error)
}

func (m *mockFollowerDirectory) GetFollowerIDs(ctx context.Context, publisherID string) ([]string, error) {
	if m.getFollowerIDsFunc != nil {
		return m.getFollowerIDsFunc(ctx, publisherID)
	}
	return nil, nil
}

// mockTaskQueue is a mock implementation of the TaskQueue interface
type mockTaskQueue struct {
	enqueueFunc func(ctx context.Context, batch interfaces.Batch) error
	enqueued    []interfaces.Batch
}

func (m *mockTaskQueue) Enqueue(ctx context.Context, batch interfaces.Batch) error {
	if m.enqueueFunc != nil {
		if err := m.enqueueFunc(ctx, batch); err != nil {
			return err
		}
	}
	m.enqueued = append(m.enqueued, batch)
	return nil
}

func (m *mockTaskQueue) Subscribe(handler interfaces.BatchHandler) {}

func (m *mockTaskQueue) Start() error { return nil }

func (m *mockTaskQueue) Stop() error { return nil }

// mockFeedCache is a mock implementation of the FeedCache interface.
// The push recorder is mutex-guarded because the batch processor pushes
// entries from multiple goroutines.
type mockFeedCache struct {
	mu       sync.Mutex
	pushFunc func(ctx context.Context, entry *domain.NewsFeed) error
	pushed   []*domain.NewsFeed
}

func (m *mockFeedCache) PushNewsfeedToCache(ctx context.Context, entry *domain.NewsFeed) error {
	if m.pushFunc != nil {
		if err := m.pushFunc(ctx, entry); err != nil {
			return err
		}
	}
	m.mu.Lock()
	m.pushed = append(m.pushed, entry)
	m.mu.Unlock()
	return nil
}

func (m *mockFeedCache) pushedEntries() []*domain.NewsFeed {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*domain.NewsFeed, len(m.pushed))
	copy(out, m.pushed)
	return out
}

// mockLogger is a mock implementation of the Logger interface
type mockLogger struct {
	debugFunc func(msg string, fields map[string]interface{})
	infoFunc  func(msg string, fields map[string]interface{})
	warnFunc  func(msg string, fields map[string]interface{})
	errorFunc func(msg string, fields map[string]interface{})
}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {
	if m.debugFunc != nil {
		m.debugFunc(msg, fields)
	}
}

func (m *mockLogger) Info(msg string, fields map[string]interface{}) {
	if m.infoFunc != nil {
		m.infoFunc(msg, fields)
	}
}

func (m *mockLogger) Warn(msg string, fields map[string]interface{}) {
	if m.warnFunc != nil {
		m.warnFunc(msg, fields)
	}
}

func (m *mockLogger) Error(msg string, fields map[string]interface{}) {
	if m.errorFunc != nil {
		m.errorFunc(msg, fields)
	}
}

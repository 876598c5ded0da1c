package newsfeed

import (
	"context"
	"sync"
	"time"

	"newsfeed-app-api/core/domain"
	"newsfeed-app-api/core/interfaces"
)

// mockCache is a mock implementation of the Cache interface
type mockCache struct {
	getFunc    func(ctx context.Context, key string) ([]byte, error)
	setFunc    func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	deleteFunc func(ctx context.Context, key string) error
}

func (m *mockCache) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, key)
	}
	return nil, interfaces.ErrCacheMiss
}

func (m *mockCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFunc != nil {
		return m.setFunc(ctx, key, value, ttl)
	}
	return nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, key)
	}
	return nil
}

// inMemoryCache is a map-backed Cache used where tests need real
// read-your-writes behavior instead of canned responses.
type inMemoryCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newInMemoryCache() *inMemoryCache {
	return &inMemoryCache{data: make(map[string][]byte)}
}

func (c *inMemoryCache) Get(ctx context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.data[key]
	if !ok {
		return nil, interfaces.ErrCacheMiss
	}
	return data, nil
}

func (c *inMemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = value
	return nil
}

func (c *inMemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

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

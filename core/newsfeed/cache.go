// ABOUTME: Feed cache service providing the read-through/write-through per-user feed slice
// ABOUTME: Owns cache key layout, slice capping, and explicit invalidation

package newsfeed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"newsfeed-app-api/core/domain"
	coreerrors "newsfeed-app-api/core/errors"
	"newsfeed-app-api/core/interfaces"
)

// newsfeedKeyPattern is the cache key layout for a recipient's feed slice.
const newsfeedKeyPattern = "newsfeeds:%s"

// cacheLockStripes bounds the number of per-recipient mutexes. Pushes to
// different recipients almost never share a stripe; pushes to the same
// recipient always do, which is what makes append-then-trim atomic.
const cacheLockStripes = 128

// CacheService maintains the per-recipient cached feed slice: an
// ordered, most-recent-first view of the newest entries in the feed
// store, capped at sliceSize. The slice is rebuilt lazily from the
// store on miss and appended to incrementally on fan-out writes.
type CacheService struct {
	deps      interfaces.Dependencies
	sliceSize int
	ttl       time.Duration
	locks     [cacheLockStripes]sync.Mutex
}

// NewCacheService creates a new feed cache service. sliceSize is the
// maximum number of entries kept per recipient; ttl bounds how long a
// slice survives without a rebuild (0 means no expiry).
func NewCacheService(deps interfaces.Dependencies, sliceSize int, ttl time.Duration) *CacheService {
	if sliceSize <= 0 {
		sliceSize = 200
	}

	return &CacheService{
		deps:      deps,
		sliceSize: sliceSize,
		ttl:       ttl,
	}
}

// GetCachedNewsfeeds returns the recipient's feed slice, most recent
// first. On a cache hit the store is not touched. On a miss the newest
// sliceSize entries are loaded from the store, cached, and returned.
func (s *CacheService) GetCachedNewsfeeds(ctx context.Context, userID string) ([]domain.NewsFeed, error) {
	if userID == "" {
		return nil, &coreerrors.ValidationError{Field: "user_id", Message: "cannot be empty"}
	}

	key := s.key(userID)

	data, err := s.deps.Cache.Get(ctx, key)
	if err == nil {
		var entries []domain.NewsFeed
		if unmarshalErr := json.Unmarshal(data, &entries); unmarshalErr == nil {
			return entries, nil
		}
		// Corrupt payload: drop it and rebuild from the store.
		_ = s.deps.Cache.Delete(ctx, key)
	} else if !errors.Is(err, interfaces.ErrCacheMiss) {
		// Backend failure, not a miss. Serve from the store but do not
		// repopulate a cache we cannot read.
		s.logWarn("feed cache read failed, serving from store", userID, err)
		return s.loadFromStore(ctx, userID)
	}

	entries, err := s.loadFromStore(ctx, userID)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(entries); err == nil {
		if err := s.deps.Cache.Set(ctx, key, data, s.ttl); err != nil {
			s.logWarn("feed cache populate failed", userID, err)
		}
	}

	return entries, nil
}

// PushNewsfeedToCache prepends a newly created entry to its recipient's
// cached slice, trimming the tail to the configured cap. Append and
// trim run as one per-recipient critical section. If the recipient's
// slice is cold the push is a no-op: the cache stays cold until the
// next read rebuilds it, so recipients who never read their feed never
// pay for a warm slice.
func (s *CacheService) PushNewsfeedToCache(ctx context.Context, entry *domain.NewsFeed) error {
	if entry == nil {
		return &coreerrors.ValidationError{Field: "entry", Message: "cannot be nil"}
	}
	if err := entry.Validate(); err != nil {
		return &coreerrors.ValidationError{Field: "entry", Message: err.Error()}
	}

	mu := s.lockFor(entry.RecipientID)
	mu.Lock()
	defer mu.Unlock()

	key := s.key(entry.RecipientID)

	data, err := s.deps.Cache.Get(ctx, key)
	if errors.Is(err, interfaces.ErrCacheMiss) {
		return nil
	}
	if err != nil {
		return &coreerrors.DependencyError{Dependency: "feed cache", Err: err}
	}

	var entries []domain.NewsFeed
	if err := json.Unmarshal(data, &entries); err != nil {
		// Corrupt slice: invalidate rather than prepend onto garbage.
		_ = s.deps.Cache.Delete(ctx, key)
		return nil
	}

	entries = append([]domain.NewsFeed{*entry}, entries...)
	if len(entries) > s.sliceSize {
		entries = entries[:s.sliceSize]
	}

	data, err = json.Marshal(entries)
	if err != nil {
		return coreerrors.WrapError(err, "failed to encode feed slice")
	}

	if err := s.deps.Cache.Set(ctx, key, data, s.ttl); err != nil {
		return &coreerrors.DependencyError{Dependency: "feed cache", Err: err}
	}

	return nil
}

// InvalidateNewsfeeds drops the recipient's cached slice entirely. Used
// when the store-order assumption behind the slice may no longer hold,
// e.g. after bulk administrative changes to historical entries.
func (s *CacheService) InvalidateNewsfeeds(ctx context.Context, userID string) error {
	if userID == "" {
		return &coreerrors.ValidationError{Field: "user_id", Message: "cannot be empty"}
	}

	return s.deps.Cache.Delete(ctx, s.key(userID))
}

// loadFromStore reads the newest sliceSize entries for a recipient.
func (s *CacheService) loadFromStore(ctx context.Context, userID string) ([]domain.NewsFeed, error) {
	entries, err := s.deps.FeedStore.ListRecentEntries(ctx, userID, s.sliceSize)
	if err != nil {
		return nil, &coreerrors.DependencyError{Dependency: "feed store", Err: err}
	}

	if entries == nil {
		entries = []domain.NewsFeed{}
	}

	return entries, nil
}

// key builds the cache key for a recipient's feed slice
func (s *CacheService) key(userID string) string {
	return fmt.Sprintf(newsfeedKeyPattern, userID)
}

// lockFor returns the stripe mutex guarding a recipient's slice
func (s *CacheService) lockFor(userID string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(userID))
	return &s.locks[h.Sum32()%cacheLockStripes]
}

// logWarn logs a cache-related warning when a logger is configured
func (s *CacheService) logWarn(msg, userID string, err error) {
	if s.deps.Logger == nil {
		return
	}
	s.deps.Logger.Warn(msg, map[string]interface{}{
		"user_id": userID,
		"error":   err.Error(),
	})
}

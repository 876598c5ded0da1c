// ABOUTME: NewsFeed read service exposing the feed listing backed by the cache read path
// ABOUTME: Thin orchestration over the feed cache service for API consumption

package newsfeed

import (
	"context"

	"newsfeed-app-api/core/domain"
	coreerrors "newsfeed-app-api/core/errors"
	"newsfeed-app-api/core/interfaces"
)

// NewsFeedService serves feed listing requests. Reads go through the
// feed cache; the store is only touched on a cache miss.
type NewsFeedService struct {
	deps  interfaces.Dependencies
	cache *CacheService
}

// NewNewsFeedService creates a new feed read service
func NewNewsFeedService(deps interfaces.Dependencies, cache *CacheService) *NewsFeedService {
	return &NewsFeedService{
		deps:  deps,
		cache: cache,
	}
}

// ListNewsfeeds returns the user's feed, most recent first, capped at
// the configured slice size.
func (s *NewsFeedService) ListNewsfeeds(ctx context.Context, userID string) ([]domain.NewsFeed, error) {
	if userID == "" {
		return nil, &coreerrors.ValidationError{Field: "user_id", Message: "cannot be empty"}
	}

	return s.cache.GetCachedNewsfeeds(ctx, userID)
}

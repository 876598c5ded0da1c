// ABOUTME: Mappers between domain models and newsfeed API DTOs
// ABOUTME: Keeps wire representations out of the core packages

package mappers

import (
	"newsfeed-app-api/api/dto/responses"
	"newsfeed-app-api/core/domain"
	"newsfeed-app-api/core/fanout"
)

// ToNewsFeedEntries converts domain feed entries to response DTOs
func ToNewsFeedEntries(entries []domain.NewsFeed) []responses.NewsFeedEntry {
	result := make([]responses.NewsFeedEntry, 0, len(entries))
	for _, entry := range entries {
		result = append(result, responses.NewsFeedEntry{
			PostID:    entry.PostID,
			CreatedAt: entry.CreatedAt,
		})
	}
	return result
}

// ToFanoutResponse converts a fan-out summary to its response DTO
func ToFanoutResponse(summary *fanout.Summary) responses.FanoutResponse {
	if summary == nil {
		return responses.FanoutResponse{}
	}
	return responses.FanoutResponse{
		Followers: summary.Followers,
		Batches:   summary.Batches,
		Enqueued:  summary.Enqueued,
	}
}

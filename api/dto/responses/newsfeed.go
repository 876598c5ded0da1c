// ABOUTME: Response DTOs for newsfeed API endpoints
// ABOUTME: Wire representations of feed entries and fan-out summaries

package responses

import "time"

// NewsFeedEntry is one feed entry as returned to clients
type NewsFeedEntry struct {
	// PostID references the published content
	PostID string `json:"post_id" doc:"ID of the post appearing in the feed"`

	// CreatedAt is when the entry was fanned out
	CreatedAt time.Time `json:"created_at" doc:"When the entry was created"`
}

// ListNewsfeedsResponse is the response for the feed listing endpoint
type ListNewsfeedsResponse struct {
	// Newsfeeds contains the user's feed entries, most recent first
	Newsfeeds []NewsFeedEntry `json:"newsfeeds" doc:"Feed entries, most recent first"`
}

// FanoutResponse summarizes a dispatched fan-out
type FanoutResponse struct {
	// Followers is the size of the publisher's follower set
	Followers int `json:"followers" doc:"Number of followers fanned out to"`

	// Batches is how many batches the follower set was split into
	Batches int `json:"batches" doc:"Number of batches created"`

	// Enqueued is how many batches were accepted by the task queue
	Enqueued int `json:"enqueued" doc:"Number of batches successfully enqueued"`
}

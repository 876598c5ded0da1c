// ABOUTME: Request DTOs for newsfeed API endpoints
// ABOUTME: Provides validation constraints for incoming requests

package requests

// FanoutRequest represents the request body for dispatching a fan-out.
// The caller guarantees the post is already durably stored and that the
// (publisher, post) pair was authorized upstream.
type FanoutRequest struct {
	// PostID references the published content
	PostID string `json:"post_id" required:"true" minLength:"1" doc:"ID of the durably stored post to fan out"`

	// PublisherID is the id of the publishing user
	PublisherID string `json:"publisher_id" required:"true" minLength:"1" doc:"ID of the user who published the post"`
}

// ABOUTME: NewsFeed domain model represents one post appearing in one recipient's feed
// ABOUTME: Provides validation logic to ensure feed entry integrity

package domain

import (
	"errors"
	"time"
)

// NewsFeed represents a single feed entry: post PostID appears in
// recipient RecipientID's feed. For a given (RecipientID, PostID) pair
// at most one entry exists; entries are created once and never updated.
type NewsFeed struct {
	// RecipientID is the identity of the feed owner
	RecipientID string `json:"recipient_id"`

	// PostID references the published content; opaque to this service
	PostID string `json:"post_id"`

	// CreatedAt is the ordering key, assigned at write time
	CreatedAt time.Time `json:"created_at"`
}

// NewNewsFeed creates a new NewsFeed entry with validation.
// CreatedAt is assigned here, at construction time.
func NewNewsFeed(recipientID, postID string) (*NewsFeed, error) {
	entry := &NewsFeed{
		RecipientID: recipientID,
		PostID:      postID,
		CreatedAt:   time.Now().UTC(),
	}

	if err := entry.Validate(); err != nil {
		return nil, err
	}

	return entry, nil
}

// Validate checks if the entry has valid required fields
func (n *NewsFeed) Validate() error {
	if n.RecipientID == "" {
		return errors.New("newsfeed recipient id cannot be empty")
	}

	if n.PostID == "" {
		return errors.New("newsfeed post id cannot be empty")
	}

	return nil
}

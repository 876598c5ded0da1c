// ABOUTME: Follower directory interface consumed by the fan-out pipeline
// ABOUTME: Treated as a pure query dependency owned by the surrounding application

package interfaces

import "context"

// FollowerDirectory answers who follows a given publisher. The returned
// ids are deduplicated and in a stable order (followship creation
// order), so repeated queries for an unchanged graph slice into the
// same batch partition.
type FollowerDirectory interface {
	// GetFollowerIDs returns the complete ordered follower id set of
	// the publisher.
	GetFollowerIDs(ctx context.Context, publisherID string) ([]string, error)
}

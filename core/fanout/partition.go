// ABOUTME: Deterministic batch partitioning of a follower id sequence
// ABOUTME: Pure function so retried dispatch of the same snapshot is reproducible

package fanout

// PartitionBatches splits followerIDs into consecutive batches of at
// most batchSize ids: batch k holds followerIDs[k*batchSize:(k+1)*batchSize],
// the last batch may be smaller. No reordering and no randomness, so
// re-running over the same snapshot yields the same partition.
// Returns nil for an empty sequence.
func PartitionBatches(followerIDs []string, batchSize int) [][]string {
	if len(followerIDs) == 0 || batchSize <= 0 {
		return nil
	}

	batches := make([][]string, 0, (len(followerIDs)+batchSize-1)/batchSize)
	for start := 0; start < len(followerIDs); start += batchSize {
		end := start + batchSize
		if end > len(followerIDs) {
			end = len(followerIDs)
		}
		batches = append(batches, followerIDs[start:end])
	}

	return batches
}

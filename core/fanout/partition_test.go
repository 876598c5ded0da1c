package fanout

import (
	"fmt"
	"reflect"
	"testing"
)

func makeIDs(n int) []string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("user-%03d", i)
	}
	return ids
}

func TestPartitionBatches_Empty(t *testing.T) {
	batches := PartitionBatches(nil, 10)

	if batches != nil {
		t.Errorf("PartitionBatches(nil) = %v, want nil", batches)
	}

	batches = PartitionBatches([]string{}, 10)
	if batches != nil {
		t.Errorf("PartitionBatches(empty) = %v, want nil", batches)
	}
}

func TestPartitionBatches_InvalidBatchSize(t *testing.T) {
	batches := PartitionBatches(makeIDs(5), 0)
	if batches != nil {
		t.Errorf("PartitionBatches with batchSize 0 = %v, want nil", batches)
	}

	batches = PartitionBatches(makeIDs(5), -1)
	if batches != nil {
		t.Errorf("PartitionBatches with negative batchSize = %v, want nil", batches)
	}
}

func TestPartitionBatches_FewerThanBatchSize(t *testing.T) {
	ids := makeIDs(3)

	batches := PartitionBatches(ids, 10)

	if len(batches) != 1 {
		t.Fatalf("expected 1 batch, got %d", len(batches))
	}
	if !reflect.DeepEqual(batches[0], ids) {
		t.Errorf("batch 0 = %v, want %v", batches[0], ids)
	}
}

func TestPartitionBatches_ExactMultiple(t *testing.T) {
	ids := makeIDs(20)

	batches := PartitionBatches(ids, 10)

	if len(batches) != 2 {
		t.Fatalf("expected 2 batches, got %d", len(batches))
	}
	for i, batch := range batches {
		if len(batch) != 10 {
			t.Errorf("batch %d has %d ids, want 10", i, len(batch))
		}
	}
}

func TestPartitionBatches_Remainder(t *testing.T) {
	ids := makeIDs(25)

	batches := PartitionBatches(ids, 10)

	if len(batches) != 3 {
		t.Fatalf("expected 3 batches, got %d", len(batches))
	}

	sizes := []int{len(batches[0]), len(batches[1]), len(batches[2])}
	if !reflect.DeepEqual(sizes, []int{10, 10, 5}) {
		t.Errorf("batch sizes = %v, want [10 10 5]", sizes)
	}
}

func TestPartitionBatches_PreservesOrder(t *testing.T) {
	ids := makeIDs(25)

	batches := PartitionBatches(ids, 10)

	flat := make([]string, 0, len(ids))
	for _, batch := range batches {
		flat = append(flat, batch...)
	}
	if !reflect.DeepEqual(flat, ids) {
		t.Error("concatenated batches do not reproduce the input order")
	}
}

func TestPartitionBatches_Deterministic(t *testing.T) {
	ids := makeIDs(37)

	first := PartitionBatches(ids, 8)
	second := PartitionBatches(ids, 8)

	if !reflect.DeepEqual(first, second) {
		t.Error("repeated partitioning of the same input differs")
	}
}

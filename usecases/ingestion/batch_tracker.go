package ingestion

import (
	"sync"

	"github.com/heatsight/heatsight-backend/models"
)

// BatchTracker groups incoming files into date-keyed batches and decides
// when a batch has all four required file types. It is an explicit instance
// owned by the coordinator, so tests can run independent trackers.
type BatchTracker struct {
	mu      sync.Mutex
	batches map[string]models.BatchFiles
}

func NewBatchTracker() *BatchTracker {
	return &BatchTracker{
		batches: make(map[string]models.BatchFiles),
	}
}

// Register records a file for its batch and reports whether the batch now
// holds every required type. Re-registering a type before completion
// overwrites the stored path: a corrected re-delivery wins over the
// original.
func (t *BatchTracker) Register(batchKey string, fileType models.FileType, filePath string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	batch, ok := t.batches[batchKey]
	if !ok {
		batch = make(models.BatchFiles, len(models.RequiredFileTypes))
		t.batches[batchKey] = batch
	}
	batch[fileType] = filePath

	return len(batch) == len(models.RequiredFileTypes)
}

// Take atomically removes and returns the batch's file map, so a completed
// batch is processed at most once. A file arriving under the same key
// afterwards starts a brand-new batch: export dates can legitimately recur.
func (t *BatchTracker) Take(batchKey string) (models.BatchFiles, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	batch, ok := t.batches[batchKey]
	if ok {
		delete(t.batches, batchKey)
	}
	return batch, ok
}

// Pending returns the number of incomplete batches, for liveness logging.
func (t *BatchTracker) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.batches)
}

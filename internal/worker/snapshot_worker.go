package worker

// snapshot_worker.go
// Processes persist-state jobs from QueueSnapshot.
// Writes the current snapshot to every configured store with retry;
// jobs that still fail land in the DLQ for manual inspection.

import (
	"context"
	"encoding/json"
	"time"

	"github.com/luix3mo90/Deli-Bross-Manager/internal/model"
	"github.com/luix3mo90/Deli-Bross-Manager/internal/storage"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const maxSnapshotAttempts = 3

// SnapshotJobPayload is the job envelope sent to QueueSnapshot.
// The state itself is not carried in the payload; the worker reads
// the freshest snapshot at processing time so stale jobs collapse
// into a single write.
type SnapshotJobPayload struct {
	Reason string `json:"reason"`
}

// SnapshotWorker persists the in-memory state.
type SnapshotWorker struct {
	source func() model.Snapshot
	stores []storage.SnapshotStore
	rdb    *redis.Client
}

// NewSnapshotWorker wires the state source and the target stores.
// rdb may be nil when running without a DLQ.
func NewSnapshotWorker(source func() model.Snapshot, rdb *redis.Client, stores ...storage.SnapshotStore) *SnapshotWorker {
	return &SnapshotWorker{source: source, stores: stores, rdb: rdb}
}

// Process writes the current snapshot to each store.
func (w *SnapshotWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload SnapshotJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("snapshot_worker: invalid payload")
		return
	}

	snap := w.source()
	for _, st := range w.stores {
		st := st
		err := withRetry(ctx, maxSnapshotAttempts, func(attempt int) error {
			if err := st.Save(ctx, snap); err != nil {
				log.Warn().
					Err(err).
					Int("attempt", attempt+1).
					Str("reason", payload.Reason).
					Msg("snapshot_worker: save attempt failed, retrying")
				return err
			}
			return nil
		})
		if err != nil {
			log.Error().Err(err).Str("reason", payload.Reason).Msg("snapshot_worker: save failed after all retries")
			if w.rdb != nil {
				SendToDLQ(ctx, w.rdb, QueueSnapshot, "snapshot", raw, err.Error(), maxSnapshotAttempts)
			}
		}
	}
}

// withRetry calls fn up to maxAttempts times with exponential backoff.
// Backoff schedule: attempt 1 = immediate, 2 = 1s, 3 = 2s.
// Returns nil if any attempt succeeds; last error otherwise.
func withRetry(ctx context.Context, maxAttempts int, fn func(attempt int) error) error {
	var lastErr error
	for i := 0; i < maxAttempts; i++ {
		if i > 0 {
			wait := time.Duration(1<<uint(i-1)) * time.Second
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(wait):
			}
		}
		if err := fn(i); err != nil {
			lastErr = err
			continue
		}
		return nil
	}
	return lastErr
}

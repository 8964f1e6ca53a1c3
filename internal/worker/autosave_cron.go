package worker

// autosave_cron.go
// Background goroutine that periodically enqueues a snapshot job so the
// persisted state never drifts far from memory even if the change hook
// missed a write. It respects the context for graceful shutdown.

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// StartAutosaveCron launches a goroutine that enqueues a snapshot job
// every interval. A non-positive interval disables the cron.
func StartAutosaveCron(ctx context.Context, d *Dispatcher, interval time.Duration) {
	if interval <= 0 {
		log.Info().Msg("autosave_cron: disabled")
		return
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		log.Info().Dur("interval", interval).Msg("autosave_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("autosave_cron: shutting down")
				return
			case <-ticker.C:
				if err := d.EnqueueSnapshot(ctx, SnapshotJobPayload{Reason: "autosave"}); err != nil {
					log.Error().Err(err).Msg("autosave_cron: failed to enqueue snapshot")
				}
			}
		}
	}()
}

package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	QueueSnapshot = "jobs:snapshot"
	QueueReport   = "jobs:report"
)

// Job is the generic envelope for all async tasks.
type Job struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Dispatcher enqueues async jobs into Redis lists.
// The worker pool dequeues them via BRPOP.
// With a nil Redis client jobs run inline on the caller's goroutine,
// which keeps single-binary deployments working without Redis.
type Dispatcher struct {
	rdb            *redis.Client
	snapshotWorker *SnapshotWorker
	reportWorker   *ReportWorker
}

func NewDispatcher(rdb *redis.Client, snapshotWorker *SnapshotWorker, reportWorker *ReportWorker) *Dispatcher {
	return &Dispatcher{rdb: rdb, snapshotWorker: snapshotWorker, reportWorker: reportWorker}
}

// EnqueueSnapshot pushes a persist-state job to Redis.
func (d *Dispatcher) EnqueueSnapshot(ctx context.Context, payload interface{}) error {
	return d.enqueue(ctx, QueueSnapshot, "snapshot", payload)
}

// EnqueueReport pushes a daily-report job to Redis.
func (d *Dispatcher) EnqueueReport(ctx context.Context, payload interface{}) error {
	return d.enqueue(ctx, QueueReport, "report", payload)
}

func (d *Dispatcher) enqueue(ctx context.Context, queue, jobType string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	if d.rdb == nil {
		d.process(ctx, queue, Job{Type: jobType, Payload: data})
		return nil
	}
	job := Job{Type: jobType, Payload: data}
	encoded, err := json.Marshal(job)
	if err != nil {
		return err
	}
	return d.rdb.LPush(ctx, queue, encoded).Err()
}

func (d *Dispatcher) process(ctx context.Context, queue string, job Job) {
	switch queue {
	case QueueSnapshot:
		if d.snapshotWorker != nil {
			d.snapshotWorker.Process(ctx, job.Payload)
		}
	case QueueReport:
		if d.reportWorker != nil {
			d.reportWorker.Process(ctx, job.Payload)
		}
	default:
		log.Warn().Str("queue", queue).Str("type", job.Type).Msg("no handler for queue")
	}
}

// StartWorkerPool launches numWorkers goroutines consuming both queues.
// Each goroutine blocks on BRPOP — zero CPU when idle.
func (d *Dispatcher) StartWorkerPool(ctx context.Context, numWorkers int) {
	if d.rdb == nil {
		log.Info().Msg("worker pool disabled, jobs run inline")
		return
	}
	for i := 0; i < numWorkers; i++ {
		go d.runWorker(ctx, i)
	}
	log.Info().Msgf("worker pool started with %d workers", numWorkers)
}

func (d *Dispatcher) runWorker(ctx context.Context, id int) {
	queues := []string{QueueSnapshot, QueueReport}
	for {
		select {
		case <-ctx.Done():
			log.Info().Msgf("worker %d shutting down", id)
			return
		default:
			// Blocking pop — waits up to 5s then loops to check ctx
			result, err := d.rdb.BRPop(ctx, 5*time.Second, queues...).Result()
			if err != nil {
				continue // timeout or context cancelled
			}
			if len(result) < 2 {
				continue
			}
			var job Job
			if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
				log.Error().Str("queue", result[0]).Err(err).Msg("failed to unmarshal job")
				continue
			}
			d.process(ctx, result[0], job)
		}
	}
}

package async

import (
	"context"
	"sync"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/pipeline"
)

// ScriptQueue feeds answer scripts to a fixed pool of orchestrator workers.
// Enqueue blocks once the buffer fills; duplicate enqueues are harmless
// because Process resumes from the script's persisted status.
type ScriptQueue struct {
	orch    *pipeline.Orchestrator
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan uuid.UUID
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*ScriptQueue)

func WithWorkers(n int) Option {
	return func(q *ScriptQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *ScriptQueue) {
		if n > 0 {
			q.ch = make(chan uuid.UUID, n)
		}
	}
}
func WithProcessTimeout(d time.Duration) Option {
	return func(q *ScriptQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewScriptQueue(orch *pipeline.Orchestrator, logger *slog.Logger, opts ...Option) *ScriptQueue {
	q := &ScriptQueue{
		orch:    orch,
		logger:  logger,
		workers: 4,
		timeout: 5 * time.Minute,
		ch:      make(chan uuid.UUID, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *ScriptQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for scriptID := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					err := q.orch.Process(ctx, scriptID)
					cancel()

					if err != nil {
						q.logger.Error("script processing failed", "worker_id", workerID, "script_id", scriptID, "error", err)
					} else {
						q.logger.Info("script processed", "worker_id", workerID, "script_id", scriptID)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *ScriptQueue) Enqueue(scriptID uuid.UUID) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "script_id", scriptID)
		return nil
	}
	select {
	case q.ch <- scriptID:
		q.logger.Info("queued script for processing", "script_id", scriptID)
	default:
		q.logger.Warn("queue full, applying backpressure", "script_id", scriptID)
		q.ch <- scriptID
	}
	return nil
}

func (q *ScriptQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}

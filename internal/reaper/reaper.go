package reaper

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/pipeline"
	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/repository"
)

// Reaper periodically re-enqueues scripts stranded mid-pipeline, typically
// after a crash between a stage write and the follow-up enqueue. Re-running a
// script is safe: the orchestrator resumes from the persisted status and CAS
// transitions reject duplicate completions.
type Reaper struct {
	scripts    repository.AnswerScriptRepository
	queue      pipeline.Enqueuer
	stuckAfter time.Duration
	cron       *cron.Cron
	log        *slog.Logger
}

func New(scripts repository.AnswerScriptRepository, queue pipeline.Enqueuer, stuckAfter time.Duration, log *slog.Logger) *Reaper {
	if stuckAfter <= 0 {
		stuckAfter = 15 * time.Minute
	}
	return &Reaper{
		scripts:    scripts,
		queue:      queue,
		stuckAfter: stuckAfter,
		cron:       cron.New(),
		log:        log.With(slog.String("component", "reaper")),
	}
}

// Start schedules the sweep. schedule accepts cron specs and descriptors like
// "@every 5m".
func (r *Reaper) Start(schedule string) error {
	if _, err := r.cron.AddFunc(schedule, r.Sweep); err != nil {
		return err
	}
	r.cron.Start()
	r.log.Info("reaper.started", slog.String("schedule", schedule))
	return nil
}

// Stop halts scheduling and waits for a running sweep to finish.
func (r *Reaper) Stop() {
	<-r.cron.Stop().Done()
	r.log.Info("reaper.stopped")
}

// Sweep re-enqueues every script that has sat in a pending status past the
// threshold.
func (r *Reaper) Sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cutoff := time.Now().Add(-r.stuckAfter)
	ids, err := r.scripts.ListStuck(ctx, cutoff)
	if err != nil {
		r.log.Error("reaper.list_failed", slog.String("error", err.Error()))
		return
	}
	if len(ids) == 0 {
		return
	}

	r.log.Info("reaper.requeueing", slog.Int("count", len(ids)))
	for _, id := range ids {
		if err := r.queue.Enqueue(id); err != nil {
			r.log.Error("reaper.enqueue_failed",
				slog.String("script_id", id.String()),
				slog.String("error", err.Error()))
		}
	}
}

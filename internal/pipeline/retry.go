package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/common"
)

// retryPolicy retries transient collaborator failures with exponential
// backoff. Permanent errors return immediately.
type retryPolicy struct {
	MaxAttempts int
	BaseDelay   time.Duration
}

func defaultRetryPolicy() retryPolicy {
	return retryPolicy{MaxAttempts: 3, BaseDelay: 500 * time.Millisecond}
}

func (p retryPolicy) do(ctx context.Context, log *slog.Logger, op string, fn func() error) error {
	attempts := p.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}
		if !common.Transient(err) {
			return err
		}
		if attempt == attempts {
			break
		}

		delay := p.BaseDelay << (attempt - 1)
		log.Warn("pipeline.retry",
			slog.String("op", op),
			slog.Int("attempt", attempt),
			slog.Duration("delay", delay),
			slog.String("error", err.Error()))

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return err
}

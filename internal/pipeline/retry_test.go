package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/InsightEd01/script-sense-grade-ai-sub001/internal/common"
)

func TestRetryTransientUntilSuccess(t *testing.T) {
	p := retryPolicy{MaxAttempts: 3, BaseDelay: time.Millisecond}
	calls := 0
	err := p.do(context.Background(), slog.Default(), "op", func() error {
		calls++
		if calls < 3 {
			return &common.TransientError{Cause: errors.New("timeout")}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	if calls != 3 {
		t.Fatalf("calls = %d, want 3", calls)
	}
}

func TestRetryExhaustsAttempts(t *testing.T) {
	p := retryPolicy{MaxAttempts: 3, BaseDelay: time.Millisecond}
	calls := 0
	wrapped := errors.New("still down")
	err := p.do(context.Background(), slog.Default(), "op", func() error {
		calls++
		return &common.TransientError{Cause: wrapped}
	})
	if err == nil {
		t.Fatal("exhausted retries must return the last error")
	}
	if !errors.Is(err, wrapped) {
		t.Fatalf("err = %v, want wrapped cause", err)
	}
	if calls != 3 {
		t.Fatalf("calls = %d, want 3", calls)
	}
}

func TestRetryPermanentErrorFailsFast(t *testing.T) {
	p := retryPolicy{MaxAttempts: 3, BaseDelay: time.Millisecond}
	calls := 0
	permanent := errors.New("bad request")
	err := p.do(context.Background(), slog.Default(), "op", func() error {
		calls++
		return permanent
	})
	if !errors.Is(err, permanent) {
		t.Fatalf("err = %v, want permanent error", err)
	}
	if calls != 1 {
		t.Fatalf("calls = %d, permanent errors must not retry", calls)
	}
}

func TestRetryHonorsCancellation(t *testing.T) {
	p := retryPolicy{MaxAttempts: 5, BaseDelay: time.Hour}
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := p.do(ctx, slog.Default(), "op", func() error {
		return &common.TransientError{Cause: errors.New("timeout")}
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

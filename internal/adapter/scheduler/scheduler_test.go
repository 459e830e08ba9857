package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSchedulerRunsJobsUntilCancelled(t *testing.T) {
	var ok, failing, panicking atomic.Int32
	s := New(discard(),
		Job{Name: "ok", Interval: 5 * time.Millisecond, Run: func(context.Context) error {
			ok.Add(1)
			return nil
		}},
		Job{Name: "failing", Interval: 5 * time.Millisecond, Run: func(context.Context) error {
			failing.Add(1)
			return errors.New("boom")
		}},
		Job{Name: "panicking", Interval: 5 * time.Millisecond, Run: func(context.Context) error {
			panicking.Add(1)
			panic("bad")
		}},
	)

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)

	assert.Eventually(t, func() bool {
		return ok.Load() >= 2 && failing.Load() >= 2 && panicking.Load() >= 2
	}, time.Second, 5*time.Millisecond)

	cancel()
	s.Wait()

	after := ok.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, ok.Load())
}

func TestSchedulerSkipsDisabledJobs(t *testing.T) {
	var calls atomic.Int32
	s := New(discard(), Job{Name: "off", Interval: 0, Run: func(context.Context) error {
		calls.Add(1)
		return nil
	}})

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
	s.Wait()
	assert.Zero(t, calls.Load())
}

func TestSchedulerWaitsOneIntervalBeforeFirstRun(t *testing.T) {
	var calls atomic.Int32
	s := New(discard(), Job{Name: "slow", Interval: time.Hour, Run: func(context.Context) error {
		calls.Add(1)
		return nil
	}})

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	time.Sleep(20 * time.Millisecond)
	cancel()
	s.Wait()
	assert.Zero(t, calls.Load())
}

package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"
)

// Job is a named task run on a fixed interval.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func(ctx context.Context) error
}

// Scheduler runs each job on its own ticker. The first run happens one
// interval after Start. Runs of one job never overlap within a process;
// ticks that arrive while a run is in progress are dropped.
type Scheduler struct {
	jobs   []Job
	logger *slog.Logger
	wg     sync.WaitGroup
}

func New(logger *slog.Logger, jobs ...Job) *Scheduler {
	return &Scheduler{jobs: jobs, logger: logger}
}

// Start launches the job loops. They stop when ctx is cancelled; use Wait to
// block until in-flight runs have returned.
func (s *Scheduler) Start(ctx context.Context) {
	for _, job := range s.jobs {
		if job.Interval <= 0 || job.Run == nil {
			s.logger.Warn("scheduler job disabled", slog.String("job", job.Name))
			continue
		}
		s.wg.Add(1)
		go s.loop(ctx, job)
	}
}

// Wait blocks until all job loops have exited.
func (s *Scheduler) Wait() {
	s.wg.Wait()
}

func (s *Scheduler) loop(ctx context.Context, job Job) {
	defer s.wg.Done()
	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

	s.logger.Info("scheduler job started", slog.String("job", job.Name), slog.Duration("interval", job.Interval))
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runOnce(ctx, job)
		}
	}
}

func (s *Scheduler) runOnce(ctx context.Context, job Job) {
	started := time.Now()
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("scheduled job panicked", slog.String("job", job.Name), slog.Any("panic", r))
		}
	}()
	err := job.Run(ctx)
	switch {
	case err == nil:
		s.logger.Info("scheduled job finished", slog.String("job", job.Name), slog.Duration("took", time.Since(started)))
	case errors.Is(err, context.Canceled):
	default:
		s.logger.Error("scheduled job failed", slog.String("job", job.Name), slog.Any("error", err))
	}
}

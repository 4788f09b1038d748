// Package scheduler triggers mirror runs on fixed intervals, one goroutine
// per job. Runs of the same job never overlap; the next tick after a long
// run simply starts later.
package scheduler

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"album_syncer/internal/domain"
)

// Runner executes one complete mirror run for a job.
type Runner interface {
	Execute(ctx context.Context) (domain.RunStats, error)
}

// Job pairs a runner with its trigger interval.
type Job struct {
	Name     string
	Interval time.Duration
	Runner   Runner
}

type Scheduler struct {
	jobs   []Job
	logger *slog.Logger
}

func New(jobs []Job, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		jobs:   jobs,
		logger: logger,
	}
}

// Start runs every job once immediately, then on its interval, until the
// context is cancelled.
func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "jobs", len(s.jobs))

	var wg sync.WaitGroup
	for _, job := range s.jobs {
		wg.Add(1)
		go func(job Job) {
			defer wg.Done()
			s.runLoop(ctx, job)
		}(job)
	}
	wg.Wait()

	s.logger.Info("scheduler stopped")
	return ctx.Err()
}

func (s *Scheduler) runLoop(ctx context.Context, job Job) {
	s.logger.Info("job scheduled", "job", job.Name, "interval", job.Interval)

	s.runOnce(ctx, job)

	ticker := time.NewTicker(job.Interval)
	defer ticker.Stop()

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
	if ctx.Err() != nil {
		return
	}
	if _, err := job.Runner.Execute(ctx); err != nil {
		s.logger.Error("run failed", "job", job.Name, "error", err)
	}
}

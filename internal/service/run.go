package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"album_syncer/internal/domain"
)

// RunService executes mirror runs for one job: create the run record,
// refresh the catalog, drive the pipeline, close the run record, notify.
type RunService struct {
	jobID        int64
	jobName      string
	accountID    string
	cfg          domain.RunConfig
	runs         RunStore
	refresher    *Refresher
	newProcessor ProcessorFactory
	notifier     Notifier
	logger       *slog.Logger
}

func NewRunService(
	jobID int64,
	jobName string,
	accountID string,
	cfg domain.RunConfig,
	runs RunStore,
	refresher *Refresher,
	newProcessor ProcessorFactory,
	notifier Notifier,
	logger *slog.Logger,
) *RunService {
	return &RunService{
		jobID:        jobID,
		jobName:      jobName,
		accountID:    accountID,
		cfg:          cfg,
		runs:         runs,
		refresher:    refresher,
		newProcessor: newProcessor,
		notifier:     notifier,
		logger:       logger.With("job_id", jobID, "job", jobName),
	}
}

// Execute performs one complete run. Setup failures abort it with an error;
// once the pipeline starts, per-item failures only lower the success count
// and the run record is always closed.
func (s *RunService) Execute(ctx context.Context) (domain.RunStats, error) {
	startTime := time.Now()
	runUUID := uuid.NewString()

	runID, err := s.runs.Create(ctx, s.jobID, s.jobName, runUUID, startTime)
	if err != nil {
		return domain.RunStats{}, fmt.Errorf("create run record: %w", err)
	}

	logger := s.logger.With("run_id", runID, "run_uuid", runUUID)
	logger.Info("run started", "albums", len(s.cfg.AlbumIDs), "diff_by_timeline", s.cfg.DiffByTimeline)

	run := domain.RunContext{
		RunID:              runID,
		RunUUID:            runUUID,
		JobID:              s.jobID,
		JobName:            s.jobName,
		AccountID:          s.accountID,
		StartTime:          startTime,
		Location:           s.loadLocation(logger),
		TargetPathBase:     s.cfg.TargetPathBase,
		TargetPathTemplate: s.cfg.TargetPathTemplate,
	}

	snapshot, err := s.refreshCatalog(ctx, run, logger)
	if err != nil {
		s.finish(ctx, runID, 0, 0, logger)
		return domain.RunStats{}, fmt.Errorf("refresh catalog: %w", err)
	}
	if err := s.runs.SaveTimelineSnapshot(ctx, runID, snapshot); err != nil {
		// The next run falls back to a full refresh; this one is unaffected.
		logger.Warn("save timeline snapshot", "error", err)
	}

	success, total, pipeErr := s.newProcessor(run, s.cfg).Run(ctx)
	s.finish(ctx, runID, success, total, logger)

	stats := domain.RunStats{
		RunID:    runID,
		JobID:    s.jobID,
		JobName:  s.jobName,
		Success:  success,
		Total:    total,
		Duration: time.Since(startTime),
	}

	if s.notifier != nil {
		if err := s.notifier.PublishRunSummary(ctx, run, stats); err != nil {
			logger.Warn("publish run summary", "error", err)
		}
	}

	logger.Info("run finished",
		"success", stats.Success,
		"total", stats.Total,
		"duration", stats.Duration,
	)
	if pipeErr != nil {
		return stats, fmt.Errorf("pipeline: %w", pipeErr)
	}
	return stats, nil
}

// refreshCatalog plans and executes the catalog refresh. A failed
// incremental refresh degrades to a full one before giving up.
func (s *RunService) refreshCatalog(ctx context.Context, run domain.RunContext, logger *slog.Logger) (map[int64]domain.AlbumTimeline, error) {
	previous, err := s.runs.LatestTimelineSnapshot(ctx, s.jobID, run.RunID)
	if err != nil {
		logger.Warn("load previous timeline snapshot", "error", err)
		previous = nil
	}

	plan := PlanRefresh(s.cfg, previous)
	logger.Info("refresh planned", "incremental", plan.Incremental, "reason", plan.Reason)

	snapshot, err := s.refresher.Refresh(ctx, run, s.cfg, plan)
	if err != nil && plan.Incremental {
		logger.Warn("incremental refresh failed, retrying with full refresh", "error", err)
		snapshot, err = s.refresher.Refresh(ctx, run, s.cfg, RefreshPlan{Reason: "incremental refresh failed"})
	}
	return snapshot, err
}

func (s *RunService) finish(ctx context.Context, runID int64, success, total int, logger *slog.Logger) {
	if err := s.runs.Finish(ctx, runID, success, total, time.Now()); err != nil {
		logger.Error("close run record", "error", err)
	}
}

// loadLocation resolves the job's configured time zone, falling back to UTC
// on a bad name so path resolution stays deterministic.
func (s *RunService) loadLocation(logger *slog.Logger) *time.Location {
	if s.cfg.TimeZone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(s.cfg.TimeZone)
	if err != nil {
		logger.Warn("bad time zone, using UTC", "time_zone", s.cfg.TimeZone, "error", err)
		return time.UTC
	}
	return loc
}

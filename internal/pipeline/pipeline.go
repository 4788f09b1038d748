// Package pipeline turns the backlog of assets needing local
// materialization into verified, time-corrected files on disk. Items flow
// through four stages (download, verify, rewrite tags, rewrite fs-time),
// each with its own bounded worker pool; a failure in one item never
// touches another.
package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"album_syncer/internal/domain"
)

// ErrSkipItem marks an item that leaves the pipeline deliberately, not
// because something broke. Stages wrap it when the remote asset is gone.
var ErrSkipItem = errors.New("item skipped")

// Stage is one idempotent, side-effecting transform on a work item, gated
// by the item's persisted completion flag for that stage.
type Stage interface {
	Name() string
	Process(ctx context.Context, item *domain.WorkItem) error
}

type stagePool struct {
	stage   Stage
	workers int
}

// Pipeline chains the backlog enumerator through the four stages. Items are
// in flight concurrently and complete out of order.
type Pipeline struct {
	backlog *Backlog
	stages  []stagePool
	items   ItemStore
	logger  *slog.Logger
}

// Deps carries the pipeline's side-effecting collaborators.
type Deps struct {
	Assets     AssetSource
	Items      ItemStore
	Downloader Downloader
	Rewriter   TagRewriter
	Logger     *slog.Logger
}

// New assembles the four-stage pipeline for one run.
func New(run domain.RunContext, cfg domain.RunConfig, deps Deps) *Pipeline {
	logger := deps.Logger.With("run_id", run.RunID, "job", run.JobName)
	return &Pipeline{
		backlog: NewBacklog(deps.Assets, deps.Items, run, cfg, logger),
		stages: []stagePool{
			{NewDownloadStage(deps.Downloader, deps.Items, run.AccountID, cfg.SkipExistingFile, logger), workers(cfg.Workers.Download, 4)},
			{NewVerifyStage(deps.Items), workers(cfg.Workers.Verify, 2)},
			{NewTagStage(deps.Rewriter, deps.Items, logger), workers(cfg.Workers.RewriteTags, 1)},
			{NewFsTimeStage(deps.Items, logger), workers(cfg.Workers.RewriteFsTime, 1)},
		},
		items:  deps.Items,
		logger: logger,
	}
}

func workers(n, fallback int) int {
	if n <= 0 {
		return fallback
	}
	return n
}

// Run drives the pipeline to completion and reports how many items entered
// it and how many left the final stage without error. A backlog enumeration
// error stops further intake; items already claimed still drain through all
// stages before the error is returned with the partial counts.
func (p *Pipeline) Run(ctx context.Context) (success, total int, err error) {
	source := make(chan *domain.WorkItem, p.stages[0].workers)

	var streamErr error
	go func() {
		defer close(source)
		total, streamErr = p.backlog.Stream(ctx, source)
	}()

	out := (<-chan *domain.WorkItem)(source)
	for _, pool := range p.stages {
		out = p.runStage(ctx, pool, out)
	}

	for item := range out {
		success++
		p.logger.Info("asset processed", "asset_id", item.Asset.ID, "path", item.ResolvedPath)
	}

	// total and streamErr are written before close(source), which
	// happens-before the final stage's channel closing.
	return success, total, streamErr
}

// runStage fans a stage out over its bounded worker pool. A stage error for
// an item is logged with the asset identifier, persisted as the item's last
// error, and the item is dropped from the rest of the pipeline.
func (p *Pipeline) runStage(ctx context.Context, pool stagePool, in <-chan *domain.WorkItem) <-chan *domain.WorkItem {
	out := make(chan *domain.WorkItem, pool.workers)

	var wg sync.WaitGroup
	for i := 0; i < pool.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range in {
				if err := pool.stage.Process(ctx, item); err != nil {
					if errors.Is(err, ErrSkipItem) {
						p.logger.Info("item left pipeline",
							"stage", pool.stage.Name(),
							"asset_id", item.Asset.ID,
							"reason", err,
						)
						continue
					}
					p.logger.Error("stage failed, dropping item",
						"stage", pool.stage.Name(),
						"asset_id", item.Asset.ID,
						"error", err,
					)
					item.LastError = err.Error()
					if perr := p.items.RecordError(ctx, item.ID, err.Error()); perr != nil {
						p.logger.Error("record item error", "item_id", item.ID, "error", perr)
					}
					continue
				}
				out <- item
			}
		}()
	}

	go func() {
		wg.Wait()
		close(out)
	}()
	return out
}

package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"album_syncer/internal/domain"
	"album_syncer/internal/pathtemplate"
)

// DefaultPageSize bounds how many backlog rows are pulled per query.
const DefaultPageSize = 500

// Backlog streams the run's pending assets as work items, page by page.
// Each page is durably recorded before its items are handed downstream, so
// a partial pipeline failure still leaves a consistent claim trail.
type Backlog struct {
	assets AssetSource
	items  ItemStore
	run    domain.RunContext
	cfg    domain.RunConfig
	logger *slog.Logger
}

func NewBacklog(assets AssetSource, items ItemStore, run domain.RunContext, cfg domain.RunConfig, logger *slog.Logger) *Backlog {
	return &Backlog{
		assets: assets,
		items:  items,
		run:    run,
		cfg:    cfg,
		logger: logger,
	}
}

// Stream enumerates pending assets in keyset-paginated pages until a short
// page, sending one work item per asset on out. It returns how many items
// were emitted. The sequence is lazy, finite and not restartable.
func (b *Backlog) Stream(ctx context.Context, out chan<- *domain.WorkItem) (int, error) {
	pageSize := b.cfg.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	total := 0
	lastID := int64(0)
	for {
		page, err := b.assets.ListPending(ctx, b.run.JobID, b.cfg, lastID, pageSize)
		if err != nil {
			return total, fmt.Errorf("list pending assets after id %d: %w", lastID, err)
		}
		if len(page) == 0 {
			return total, nil
		}

		batch := make([]*domain.WorkItem, 0, len(page))
		for _, pending := range page {
			path := pathtemplate.Resolve(pending.Asset, b.run)
			batch = append(batch, domain.NewWorkItem(b.run, b.cfg, pending.Asset, path, pending.PrevFlags))
		}
		if err := b.items.CreateBatch(ctx, batch); err != nil {
			return total, fmt.Errorf("claim page of %d assets: %w", len(batch), err)
		}

		b.logger.Debug("claimed backlog page",
			"run_id", b.run.RunID,
			"items", len(batch),
			"after_id", lastID,
		)

		for _, item := range batch {
			select {
			case <-ctx.Done():
				return total, ctx.Err()
			case out <- item:
				total++
			}
		}

		lastID = page[len(page)-1].Asset.ID
		if len(page) < pageSize {
			return total, nil
		}
	}
}

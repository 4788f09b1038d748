package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"album_syncer/internal/domain"
)

// FsTimeStage sets the file's modification time to the asset's capture
// time. Like the tag stage it is best-effort and independent of it: a
// failure here never blocks the item.
type FsTimeStage struct {
	items  ItemStore
	logger *slog.Logger
}

func NewFsTimeStage(items ItemStore, logger *slog.Logger) *FsTimeStage {
	return &FsTimeStage{items: items, logger: logger}
}

func (s *FsTimeStage) Name() string { return "rewrite_fstime" }

func (s *FsTimeStage) Process(ctx context.Context, item *domain.WorkItem) error {
	if item.Flags.FsTimeRewritten {
		return nil
	}

	if _, err := os.Stat(item.ResolvedPath); errors.Is(err, fs.ErrNotExist) {
		// Rare, but possible when an operator moved the file mid-run.
		s.logger.Warn("file missing, skipping fs-time rewrite",
			"asset_id", item.Asset.ID,
			"path", item.ResolvedPath,
		)
		return nil
	}

	if err := os.Chtimes(item.ResolvedPath, item.Asset.TakenAt, item.Asset.TakenAt); err != nil {
		s.logger.Warn("fs-time rewrite failed, leaving for a later run",
			"asset_id", item.Asset.ID,
			"path", item.ResolvedPath,
			"error", err,
		)
		item.LastError = err.Error()
		if perr := s.items.RecordError(ctx, item.ID, err.Error()); perr != nil {
			s.logger.Error("record fs-time error", "item_id", item.ID, "error", perr)
		}
		return nil
	}

	if err := s.items.MarkFsTimeRewritten(ctx, item.ID); err != nil {
		return fmt.Errorf("persist fs-time flag: %w", err)
	}
	item.Flags.FsTimeRewritten = true
	return nil
}

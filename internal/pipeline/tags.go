package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"album_syncer/internal/domain"
)

// TagStage rewrites the file's embedded creation timestamp through the
// external tag tool. The stage is best-effort: a rewrite failure is recorded
// on the item but does not drop it, leaving the flag unset for a later run.
type TagStage struct {
	rewriter TagRewriter
	items    ItemStore
	logger   *slog.Logger
}

func NewTagStage(rewriter TagRewriter, items ItemStore, logger *slog.Logger) *TagStage {
	return &TagStage{rewriter: rewriter, items: items, logger: logger}
}

func (s *TagStage) Name() string { return "rewrite_tags" }

func (s *TagStage) Process(ctx context.Context, item *domain.WorkItem) error {
	if item.Flags.TagsRewritten {
		return nil
	}

	if err := s.rewriter.Rewrite(ctx, item.Asset, item.ResolvedPath); err != nil {
		s.logger.Warn("tag rewrite failed, leaving for a later run",
			"asset_id", item.Asset.ID,
			"path", item.ResolvedPath,
			"error", err,
		)
		item.LastError = err.Error()
		if perr := s.items.RecordError(ctx, item.ID, err.Error()); perr != nil {
			s.logger.Error("record tag rewrite error", "item_id", item.ID, "error", perr)
		}
		return nil
	}

	if err := s.items.MarkTagsRewritten(ctx, item.ID); err != nil {
		return fmt.Errorf("persist tags flag: %w", err)
	}
	item.Flags.TagsRewritten = true
	return nil
}

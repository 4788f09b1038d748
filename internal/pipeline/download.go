package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"album_syncer/internal/domain"
)

// DownloadStage fetches the asset bytes into the item's resolved path. It is
// the pipeline's network-bound bottleneck stage.
type DownloadStage struct {
	downloader   Downloader
	items        ItemStore
	accountID    string
	skipExisting bool
	logger       *slog.Logger
}

func NewDownloadStage(downloader Downloader, items ItemStore, accountID string, skipExisting bool, logger *slog.Logger) *DownloadStage {
	return &DownloadStage{
		downloader:   downloader,
		items:        items,
		accountID:    accountID,
		skipExisting: skipExisting,
		logger:       logger,
	}
}

func (s *DownloadStage) Name() string { return "download" }

func (s *DownloadStage) Process(ctx context.Context, item *domain.WorkItem) error {
	if item.Flags.Downloaded {
		return nil
	}

	dir := filepath.Dir(item.ResolvedPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}

	fetch := true
	if s.skipExisting {
		if _, err := os.Stat(item.ResolvedPath); err == nil {
			s.logger.Debug("file already present, skipping fetch",
				"asset_id", item.Asset.ID,
				"path", item.ResolvedPath,
			)
			fetch = false
		}
	}

	if fetch {
		if err := s.fetchToFile(ctx, item); err != nil {
			return err
		}
	}

	if err := s.items.MarkDownloaded(ctx, item.ID); err != nil {
		return fmt.Errorf("persist downloaded flag: %w", err)
	}
	item.Flags.Downloaded = true
	return nil
}

// fetchToFile streams the asset into a temp file next to the target and
// renames it into place, so a crashed download never leaves a half-written
// file at the resolved path.
func (s *DownloadStage) fetchToFile(ctx context.Context, item *domain.WorkItem) error {
	body, err := s.downloader.FetchAssetBytes(ctx, s.accountID, item.Asset)
	if errors.Is(err, domain.ErrAssetDeleted) {
		return fmt.Errorf("asset %d deleted on remote: %w", item.Asset.ID, ErrSkipItem)
	}
	if err != nil {
		return fmt.Errorf("fetch asset %d: %w", item.Asset.ID, err)
	}
	defer body.Close()

	dir := filepath.Dir(item.ResolvedPath)
	tmp, err := os.CreateTemp(dir, ".syncer-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if tmpPath != "" {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := io.Copy(tmp, body); err != nil {
		tmp.Close()
		return fmt.Errorf("write asset %d to %s: %w", item.Asset.ID, tmpPath, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file %s: %w", tmpPath, err)
	}
	if err := os.Rename(tmpPath, item.ResolvedPath); err != nil {
		return fmt.Errorf("move %s into place: %w", tmpPath, err)
	}
	tmpPath = ""
	return nil
}

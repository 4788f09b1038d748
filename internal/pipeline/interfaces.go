package pipeline

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"io"

	"album_syncer/internal/domain"
)

type AssetSource interface {
	// ListPending returns up to limit assets of the job's albums that are
	// synced locally but have no fully-completed work item for the job,
	// ordered by asset id, starting after lastID.
	ListPending(ctx context.Context, jobID int64, cfg domain.RunConfig, lastID int64, limit int) ([]domain.PendingAsset, error)
}

type ItemStore interface {
	CreateBatch(ctx context.Context, items []*domain.WorkItem) error
	MarkDownloaded(ctx context.Context, itemID int64) error
	MarkVerified(ctx context.Context, itemID int64) error
	MarkTagsRewritten(ctx context.Context, itemID int64) error
	MarkFsTimeRewritten(ctx context.Context, itemID int64) error
	RecordError(ctx context.Context, itemID int64, msg string) error
}

type Downloader interface {
	// FetchAssetBytes opens a stream of the asset's content. The caller
	// closes it.
	FetchAssetBytes(ctx context.Context, accountID string, asset domain.Asset) (io.ReadCloser, error)
}

type TagRewriter interface {
	// Rewrite fills the embedded creation timestamp of the file at path when
	// it is missing or zeroed.
	Rewrite(ctx context.Context, asset domain.Asset, path string) error
}

package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"album_syncer/internal/domain"
)

// Catalog is the remote gallery: album and asset listings plus the
// per-album timeline histogram.
type Catalog interface {
	ListAlbums(ctx context.Context, accountID string) ([]domain.Album, error)
	FetchAssetsByAlbum(ctx context.Context, accountID string, album domain.Album, day string) ([]domain.Asset, error)
	FetchAlbumTimeline(ctx context.Context, accountID string, albumID int64) (domain.AlbumTimeline, error)
}

type AlbumStore interface {
	UpsertBatch(ctx context.Context, albums []domain.Album) error
	UpdateAssetCount(ctx context.Context, albumID, count int64) error
	GetByIDs(ctx context.Context, ids []int64) ([]domain.Album, error)
}

type AssetStore interface {
	UpsertBatch(ctx context.Context, assets []domain.Asset) error
}

type RunStore interface {
	Create(ctx context.Context, jobID int64, jobName, runUUID string, startTime time.Time) (int64, error)
	Finish(ctx context.Context, runID int64, success, total int, endTime time.Time) error
	SaveTimelineSnapshot(ctx context.Context, runID int64, snapshot map[int64]domain.AlbumTimeline) error
	LatestTimelineSnapshot(ctx context.Context, jobID, excludeRunID int64) (map[int64]domain.AlbumTimeline, error)
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type Notifier interface {
	PublishRunSummary(ctx context.Context, run domain.RunContext, stats domain.RunStats) error
	Close() error
}

// Processor drives one assembled pipeline to completion.
type Processor interface {
	Run(ctx context.Context) (success, total int, err error)
}

// ProcessorFactory builds the pipeline for one run once its identity is
// known. Kept as a factory so run execution is testable without real
// stages.
type ProcessorFactory func(run domain.RunContext, cfg domain.RunConfig) Processor

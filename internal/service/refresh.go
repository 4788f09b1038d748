package service

import (
	"context"
	"fmt"
	"log/slog"

	"album_syncer/internal/domain"
)

// Refresher brings the local catalog tables up to date with the remote
// before the pipeline enumerates its backlog.
type Refresher struct {
	catalog   Catalog
	albums    AlbumStore
	assets    AssetStore
	txManager TransactionManager
	logger    *slog.Logger
}

func NewRefresher(
	catalog Catalog,
	albums AlbumStore,
	assets AssetStore,
	txManager TransactionManager,
	logger *slog.Logger,
) *Refresher {
	return &Refresher{
		catalog:   catalog,
		albums:    albums,
		assets:    assets,
		txManager: txManager,
		logger:    logger,
	}
}

// Refresh executes the plan and returns the timeline snapshot to persist on
// the run record, keyed by album id. The recordings pseudo album never gets
// a snapshot entry.
func (r *Refresher) Refresh(ctx context.Context, run domain.RunContext, cfg domain.RunConfig, plan RefreshPlan) (map[int64]domain.AlbumTimeline, error) {
	if plan.Incremental {
		return r.incrementalRefresh(ctx, run, cfg, plan.Previous)
	}
	return r.fullRefresh(ctx, run, cfg)
}

// fullRefresh re-lists every configured album and re-fetches all of its
// assets.
func (r *Refresher) fullRefresh(ctx context.Context, run domain.RunContext, cfg domain.RunConfig) (map[int64]domain.AlbumTimeline, error) {
	albums, err := r.selectAlbums(ctx, run, cfg)
	if err != nil {
		return nil, err
	}

	snapshot := make(map[int64]domain.AlbumTimeline, len(albums))
	for _, album := range albums {
		assets, err := r.catalog.FetchAssetsByAlbum(ctx, run.AccountID, album, "")
		if err != nil {
			return nil, fmt.Errorf("fetch assets of album %d: %w", album.ID, err)
		}
		if err := r.storeAlbum(ctx, album, assets, int64(len(assets))); err != nil {
			return nil, err
		}

		if album.ID == domain.RecordingsAlbumID {
			continue
		}
		timeline, err := r.catalog.FetchAlbumTimeline(ctx, run.AccountID, album.ID)
		if err != nil {
			return nil, fmt.Errorf("fetch timeline of album %d: %w", album.ID, err)
		}
		snapshot[album.ID] = timeline
	}

	r.logger.Info("catalog fully refreshed", "albums", len(albums))
	return snapshot, nil
}

// incrementalRefresh re-fetches only the days the remote timelines gained
// assets on since the previous snapshot.
func (r *Refresher) incrementalRefresh(ctx context.Context, run domain.RunContext, cfg domain.RunConfig, previous map[int64]domain.AlbumTimeline) (map[int64]domain.AlbumTimeline, error) {
	albums, err := r.albums.GetByIDs(ctx, cfg.AlbumIDs)
	if err != nil {
		return nil, fmt.Errorf("load albums %v: %w", cfg.AlbumIDs, err)
	}

	snapshot := make(map[int64]domain.AlbumTimeline, len(albums))
	for _, album := range albums {
		current, err := r.catalog.FetchAlbumTimeline(ctx, run.AccountID, album.ID)
		if err != nil {
			return nil, fmt.Errorf("fetch timeline of album %d: %w", album.ID, err)
		}
		snapshot[album.ID] = current

		prev, ok := previous[album.ID]
		if !ok {
			prev = domain.EmptyAlbumTimeline()
		}
		days := changedDays(current, prev)
		if len(days) == 0 {
			r.logger.Debug("album unchanged since snapshot", "album_id", album.ID)
			continue
		}

		r.logger.Info("album gained assets, refreshing days",
			"album_id", album.ID,
			"days", len(days),
		)
		var fetched []domain.Asset
		for _, day := range days {
			assets, err := r.catalog.FetchAssetsByAlbum(ctx, run.AccountID, album, day)
			if err != nil {
				return nil, fmt.Errorf("fetch assets of album %d on %s: %w", album.ID, day, err)
			}
			fetched = append(fetched, assets...)
		}
		if err := r.storeAlbum(ctx, album, fetched, current.Total()); err != nil {
			return nil, err
		}
	}
	return snapshot, nil
}

// selectAlbums resolves the configured album ids against the remote album
// list. The recordings pseudo album is never listed remotely and is
// synthesized when configured.
func (r *Refresher) selectAlbums(ctx context.Context, run domain.RunContext, cfg domain.RunConfig) ([]domain.Album, error) {
	remote, err := r.catalog.ListAlbums(ctx, run.AccountID)
	if err != nil {
		return nil, fmt.Errorf("list remote albums: %w", err)
	}

	byID := make(map[int64]domain.Album, len(remote))
	for _, album := range remote {
		byID[album.ID] = album
	}

	var selected []domain.Album
	for _, id := range cfg.AlbumIDs {
		if id == domain.RecordingsAlbumID {
			selected = append(selected, domain.Album{ID: id, Name: "Recordings"})
			continue
		}
		album, ok := byID[id]
		if !ok {
			r.logger.Warn("configured album missing on remote", "album_id", id)
			continue
		}
		selected = append(selected, album)
	}
	return selected, nil
}

// storeAlbum persists the album row, its assets and its count in one
// transaction.
func (r *Refresher) storeAlbum(ctx context.Context, album domain.Album, assets []domain.Asset, count int64) error {
	err := r.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := r.albums.UpsertBatch(txCtx, []domain.Album{album}); err != nil {
			return fmt.Errorf("upsert album %d: %w", album.ID, err)
		}
		if len(assets) > 0 {
			if err := r.assets.UpsertBatch(txCtx, assets); err != nil {
				return fmt.Errorf("upsert %d assets: %w", len(assets), err)
			}
		}
		return r.albums.UpdateAssetCount(txCtx, album.ID, count)
	})
	if err != nil {
		return fmt.Errorf("store album %d: %w", album.ID, err)
	}
	return nil
}

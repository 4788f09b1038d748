package postgres

import (
	"context"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"

	"album_syncer/internal/domain"
)

type AlbumStore struct {
	db *sqlx.DB
}

func NewAlbumStore(db *sqlx.DB) *AlbumStore {
	return &AlbumStore{db: db}
}

// UpsertBatch mirrors the remote album list into the local catalog.
func (s *AlbumStore) UpsertBatch(ctx context.Context, albums []domain.Album) error {
	if len(albums) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO albums (id, name, asset_count, last_update_time) VALUES ")
	valueArgs := make([]interface{}, 0, len(albums)*4)

	for i, a := range albums {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("($")
		sb.WriteString(strconv.Itoa(i*4 + 1))
		sb.WriteString(", $")
		sb.WriteString(strconv.Itoa(i*4 + 2))
		sb.WriteString(", $")
		sb.WriteString(strconv.Itoa(i*4 + 3))
		sb.WriteString(", $")
		sb.WriteString(strconv.Itoa(i*4 + 4))
		sb.WriteString(")")
		valueArgs = append(valueArgs, a.ID, a.Name, a.AssetCount, a.LastUpdateTime)
	}
	sb.WriteString(` ON CONFLICT (id) DO UPDATE SET
		name = EXCLUDED.name,
		asset_count = EXCLUDED.asset_count,
		last_update_time = EXCLUDED.last_update_time`)

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, sb.String(), valueArgs...)
	return err
}

// UpdateAssetCount stores the album's remote asset total after a refresh.
func (s *AlbumStore) UpdateAssetCount(ctx context.Context, albumID, count int64) error {
	_, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		"UPDATE albums SET asset_count = $2 WHERE id = $1", albumID, count)
	return err
}

// GetByIDs loads the named albums; missing ids are simply absent from the
// result.
func (s *AlbumStore) GetByIDs(ctx context.Context, ids []int64) ([]domain.Album, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query, args, err := sqlx.In(
		"SELECT id, name, asset_count, last_update_time FROM albums WHERE id IN (?) ORDER BY id", ids)
	if err != nil {
		return nil, err
	}
	query = s.db.Rebind(query)

	var albums []domain.Album
	err = sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &albums, query, args...)
	return albums, err
}

package postgres

import (
	"context"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"album_syncer/internal/domain"
)

type AssetStore struct {
	db *sqlx.DB
}

func NewAssetStore(db *sqlx.DB) *AssetStore {
	return &AssetStore{db: db}
}

// UpsertBatch writes a page of catalog assets, replacing stale metadata for
// ids that already exist. Runs inside the refresh transaction when one is on
// the context.
func (s *AssetStore) UpsertBatch(ctx context.Context, assets []domain.Asset) error {
	if len(assets) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO assets (id, album_id, file_name, title, type, taken_at, sha1, mime_type, size) VALUES ")
	valueArgs := make([]interface{}, 0, len(assets)*9)

	for i, a := range assets {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		for j := 0; j < 9; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString("$")
			sb.WriteString(strconv.Itoa(i*9 + j + 1))
		}
		sb.WriteString(")")
		valueArgs = append(valueArgs,
			a.ID, a.AlbumID, a.FileName, a.Title, a.Type, a.TakenAt, a.SHA1, a.MimeType, a.Size,
		)
	}
	sb.WriteString(` ON CONFLICT (id) DO UPDATE SET
		album_id = EXCLUDED.album_id,
		file_name = EXCLUDED.file_name,
		title = EXCLUDED.title,
		type = EXCLUDED.type,
		taken_at = EXCLUDED.taken_at,
		sha1 = EXCLUDED.sha1,
		mime_type = EXCLUDED.mime_type,
		size = EXCLUDED.size`)

	_, err := GetExecutor(ctx, s.db).ExecContext(ctx, sb.String(), valueArgs...)
	return err
}

type pendingRow struct {
	domain.Asset
	PrevDownloaded      bool `db:"prev_downloaded"`
	PrevVerified        bool `db:"prev_verified"`
	PrevTagsRewritten   bool `db:"prev_tags_rewritten"`
	PrevFsTimeRewritten bool `db:"prev_fstime_rewritten"`
}

// ListPending returns one keyset page of the job's backlog: assets of the
// configured albums without a fully-completed work item for the job. Each
// row carries the stage flags of the asset's latest work item so a resumed
// asset picks up where it stopped.
func (s *AssetStore) ListPending(ctx context.Context, jobID int64, cfg domain.RunConfig, lastID int64, limit int) ([]domain.PendingAsset, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT a.id, a.album_id, al.name AS album_name, a.file_name, a.title,
		       a.type, a.taken_at, a.sha1, a.mime_type, a.size,
		       COALESCE(w.downloaded, false) AS prev_downloaded,
		       COALESCE(w.verified, false) AS prev_verified,
		       COALESCE(w.tags_rewritten, false) AS prev_tags_rewritten,
		       COALESCE(w.fstime_rewritten, false) AS prev_fstime_rewritten
		FROM assets a
		JOIN albums al ON al.id = a.album_id
		LEFT JOIN LATERAL (
			SELECT wi.downloaded, wi.verified, wi.tags_rewritten, wi.fstime_rewritten
			FROM work_items wi
			JOIN runs r ON r.id = wi.run_id
			WHERE wi.asset_id = a.id AND r.job_id = $1
			ORDER BY wi.id DESC
			LIMIT 1
		) w ON true
		WHERE a.album_id = ANY($2)
		  AND a.id > $3
		  AND NOT COALESCE(w.downloaded AND w.verified AND w.tags_rewritten AND w.fstime_rewritten, false)`)

	args := []interface{}{jobID, pq.Array(cfg.AlbumIDs), lastID}
	if !cfg.DownloadImages {
		args = append(args, domain.MediaImage)
		sb.WriteString(" AND a.type <> $" + strconv.Itoa(len(args)))
	}
	if !cfg.DownloadVideos {
		args = append(args, domain.MediaVideo)
		sb.WriteString(" AND a.type <> $" + strconv.Itoa(len(args)))
	}
	if !cfg.DownloadAudios {
		args = append(args, domain.MediaAudio)
		sb.WriteString(" AND a.type <> $" + strconv.Itoa(len(args)))
	}
	args = append(args, limit)
	sb.WriteString(" ORDER BY a.id LIMIT $" + strconv.Itoa(len(args)))

	var rows []pendingRow
	if err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, sb.String(), args...); err != nil {
		return nil, err
	}

	pending := make([]domain.PendingAsset, 0, len(rows))
	for _, r := range rows {
		pending = append(pending, domain.PendingAsset{
			Asset: r.Asset,
			PrevFlags: domain.StageFlags{
				Downloaded:      r.PrevDownloaded,
				Verified:        r.PrevVerified,
				TagsRewritten:   r.PrevTagsRewritten,
				FsTimeRewritten: r.PrevFsTimeRewritten,
			},
		})
	}
	return pending, nil
}


package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"

	"album_syncer/internal/domain"
)

type WorkItemStore struct {
	db *sqlx.DB
}

func NewWorkItemStore(db *sqlx.DB) *WorkItemStore {
	return &WorkItemStore{db: db}
}

// CreateBatch durably records a claimed backlog page and fills in the new
// item ids. Resolved paths and pre-set flags are written as-is; flags never
// change again except through the Mark methods.
func (s *WorkItemStore) CreateBatch(ctx context.Context, items []*domain.WorkItem) error {
	if len(items) == 0 {
		return nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO work_items (run_id, asset_id, resolved_path, downloaded, verified, tags_rewritten, fstime_rewritten) VALUES ")
	valueArgs := make([]interface{}, 0, len(items)*7)

	for i, item := range items {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		for j := 0; j < 7; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString("$")
			sb.WriteString(strconv.Itoa(i*7 + j + 1))
		}
		sb.WriteString(")")
		valueArgs = append(valueArgs,
			item.RunID, item.Asset.ID, item.ResolvedPath,
			item.Flags.Downloaded, item.Flags.Verified,
			item.Flags.TagsRewritten, item.Flags.FsTimeRewritten,
		)
	}
	sb.WriteString(" RETURNING id")

	rows, err := s.db.QueryContext(ctx, sb.String(), valueArgs...)
	if err != nil {
		return err
	}
	defer rows.Close()

	i := 0
	for rows.Next() {
		if i >= len(items) {
			return fmt.Errorf("insert returned more ids than items")
		}
		if err := rows.Scan(&items[i].ID); err != nil {
			return err
		}
		i++
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if i != len(items) {
		return fmt.Errorf("insert returned %d ids for %d items", i, len(items))
	}
	return nil
}

// Each flag update is a single conditional write keyed by the item id:
// flags only advance in pipeline order, so unrelated-item writes are safe
// under concurrency and no write ever resets a flag.

func (s *WorkItemStore) MarkDownloaded(ctx context.Context, itemID int64) error {
	return s.setFlag(ctx, "downloaded", itemID)
}

func (s *WorkItemStore) MarkVerified(ctx context.Context, itemID int64) error {
	return s.setFlag(ctx, "verified", itemID)
}

func (s *WorkItemStore) MarkTagsRewritten(ctx context.Context, itemID int64) error {
	return s.setFlag(ctx, "tags_rewritten", itemID)
}

func (s *WorkItemStore) MarkFsTimeRewritten(ctx context.Context, itemID int64) error {
	return s.setFlag(ctx, "fstime_rewritten", itemID)
}

func (s *WorkItemStore) setFlag(ctx context.Context, column string, itemID int64) error {
	res, err := s.db.ExecContext(ctx,
		"UPDATE work_items SET "+column+" = true WHERE id = $1", itemID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("work item %d not found", itemID)
	}
	return nil
}

// RecordError stores the failure text for operator inspection.
func (s *WorkItemStore) RecordError(ctx context.Context, itemID int64, msg string) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE work_items SET last_error = $2 WHERE id = $1", itemID, msg)
	return err
}

type workItemRow struct {
	ID              int64  `db:"id"`
	RunID           int64  `db:"run_id"`
	AssetID         int64  `db:"asset_id"`
	ResolvedPath    string `db:"resolved_path"`
	Downloaded      bool   `db:"downloaded"`
	Verified        bool   `db:"verified"`
	TagsRewritten   bool   `db:"tags_rewritten"`
	FsTimeRewritten bool   `db:"fstime_rewritten"`
	LastError       string `db:"last_error"`
}

// GetByRun loads the run's items, mainly for tests and operator tooling.
func (s *WorkItemStore) GetByRun(ctx context.Context, runID int64) ([]domain.WorkItem, error) {
	var rows []workItemRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT id, run_id, asset_id, resolved_path,
		       downloaded, verified, tags_rewritten, fstime_rewritten,
		       COALESCE(last_error, '') AS last_error
		FROM work_items
		WHERE run_id = $1
		ORDER BY id`, runID)
	if err != nil {
		return nil, err
	}

	items := make([]domain.WorkItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, domain.WorkItem{
			ID:           r.ID,
			RunID:        r.RunID,
			Asset:        domain.Asset{ID: r.AssetID},
			ResolvedPath: r.ResolvedPath,
			Flags: domain.StageFlags{
				Downloaded:      r.Downloaded,
				Verified:        r.Verified,
				TagsRewritten:   r.TagsRewritten,
				FsTimeRewritten: r.FsTimeRewritten,
			},
			LastError: r.LastError,
		})
	}
	return items, nil
}

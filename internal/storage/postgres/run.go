package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/jmoiron/sqlx"

	"album_syncer/internal/domain"
)

type RunStore struct {
	db *sqlx.DB
}

func NewRunStore(db *sqlx.DB) *RunStore {
	return &RunStore{db: db}
}

// Create opens a run record and returns its id.
func (s *RunStore) Create(ctx context.Context, jobID int64, jobName, runUUID string, startTime time.Time) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO runs (uuid, job_id, job_name, start_time)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		runUUID, jobID, jobName, startTime,
	).Scan(&id)
	return id, err
}

// Finish closes out the run record with its terminal counts. Called even
// when some items failed.
func (s *RunStore) Finish(ctx context.Context, runID int64, success, total int, endTime time.Time) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE runs
		SET end_time = $2, success_count = $3, total_count = $4
		WHERE id = $1`,
		runID, endTime, success, total,
	)
	return err
}

// SaveTimelineSnapshot stores the run's per-album timelines for the next
// run's change detection.
func (s *RunStore) SaveTimelineSnapshot(ctx context.Context, runID int64, snapshot map[int64]domain.AlbumTimeline) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		"UPDATE runs SET timeline_snapshot = $2 WHERE id = $1", runID, data)
	return err
}

// LatestTimelineSnapshot returns the snapshot of the job's most recent
// finished run other than excludeRunID. A job with no usable history yields
// an empty map, not an error.
func (s *RunStore) LatestTimelineSnapshot(ctx context.Context, jobID, excludeRunID int64) (map[int64]domain.AlbumTimeline, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT timeline_snapshot
		FROM runs
		WHERE job_id = $1 AND id <> $2 AND end_time IS NOT NULL AND timeline_snapshot IS NOT NULL
		ORDER BY start_time DESC
		LIMIT 1`,
		jobID, excludeRunID,
	).Scan(&data)
	if err == sql.ErrNoRows {
		return map[int64]domain.AlbumTimeline{}, nil
	}
	if err != nil {
		return nil, err
	}

	snapshot := map[int64]domain.AlbumTimeline{}
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, err
	}
	return snapshot, nil
}

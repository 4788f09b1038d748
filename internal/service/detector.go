package service

import (
	"album_syncer/internal/domain"
)

// RefreshPlan is the change detector's verdict for one run: either the
// catalog is refreshed incrementally against the previous run's timeline
// snapshot, or every album is re-fetched in full.
type RefreshPlan struct {
	Incremental bool
	Reason      string
	Previous    map[int64]domain.AlbumTimeline
}

// PlanRefresh decides whether the run may diff against the previous
// snapshot. Incremental mode needs the flag on, a non-empty snapshot from a
// finished run, the job's album set unchanged since that run, and no
// recordings pseudo album (it exposes no timeline to diff against).
func PlanRefresh(cfg domain.RunConfig, previous map[int64]domain.AlbumTimeline) RefreshPlan {
	if !cfg.DiffByTimeline {
		return RefreshPlan{Reason: "timeline diff disabled"}
	}
	if len(previous) == 0 {
		return RefreshPlan{Reason: "no previous timeline snapshot"}
	}
	for _, id := range cfg.AlbumIDs {
		if id == domain.RecordingsAlbumID {
			return RefreshPlan{Reason: "recordings album has no timeline"}
		}
	}
	if !sameAlbumSet(cfg.AlbumIDs, previous) {
		return RefreshPlan{Reason: "album set changed since snapshot"}
	}
	return RefreshPlan{Incremental: true, Reason: "timeline snapshot usable", Previous: previous}
}

// sameAlbumSet reports whether the configured album ids are exactly the
// snapshot's keys. The config list may carry duplicates; only the effective
// set matters.
func sameAlbumSet(albumIDs []int64, previous map[int64]domain.AlbumTimeline) bool {
	ids := make(map[int64]struct{}, len(albumIDs))
	for _, id := range albumIDs {
		if _, ok := previous[id]; !ok {
			return false
		}
		ids[id] = struct{}{}
	}
	return len(ids) == len(previous)
}

// changedDays lists the days an incremental refresh must re-fetch: days the
// current timeline gained assets on. Days that only lost assets are left
// alone, local files are never deleted.
func changedDays(current, previous domain.AlbumTimeline) []string {
	var days []string
	for day, delta := range current.Minus(previous) {
		if delta > 0 {
			days = append(days, day)
		}
	}
	return days
}

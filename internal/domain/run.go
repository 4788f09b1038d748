package domain

import "time"

// RunContext carries the identity of one pipeline invocation. It is created
// once per run and never mutated afterwards; every work item of the run
// points back at it.
type RunContext struct {
	RunID              int64
	RunUUID            string
	JobID              int64
	JobName            string
	AccountID          string
	StartTime          time.Time
	Location           *time.Location
	TargetPathBase     string
	TargetPathTemplate string
}

// WorkerConfig bounds the concurrency of each pipeline stage.
type WorkerConfig struct {
	Download      int `yaml:"download"`
	Verify        int `yaml:"verify"`
	RewriteTags   int `yaml:"rewrite_tags"`
	RewriteFsTime int `yaml:"rewrite_fs_time"`
}

// RunConfig is the read-only per-run configuration. Feature flags that are
// off here pre-complete the matching work item stage at creation time.
type RunConfig struct {
	AlbumIDs           []int64
	DownloadImages     bool
	DownloadVideos     bool
	DownloadAudios     bool
	CheckSHA1          bool
	RewriteTags        bool
	RewriteFsTime      bool
	SkipExistingFile   bool
	DiffByTimeline     bool
	TargetPathBase     string
	TargetPathTemplate string
	TimeZone           string
	PageSize           int
	Workers            WorkerConfig
}

// RunStats summarizes one run for logging and notification.
type RunStats struct {
	RunID    int64
	JobID    int64
	JobName  string
	Success  int
	Total    int
	Duration time.Duration
}

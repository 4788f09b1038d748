package domain

// StageFlags records which pipeline stages have completed for a work item.
// Flags only ever advance from false to true; a disabled stage starts true
// and is therefore skipped by its worker.
type StageFlags struct {
	Downloaded      bool `db:"downloaded"`
	Verified        bool `db:"verified"`
	TagsRewritten   bool `db:"tags_rewritten"`
	FsTimeRewritten bool `db:"fstime_rewritten"`
}

// Merge returns the union of two flag sets. Used when an asset is
// re-enumerated by a later run: the new item picks up where the previous
// one stopped.
func (f StageFlags) Merge(other StageFlags) StageFlags {
	return StageFlags{
		Downloaded:      f.Downloaded || other.Downloaded,
		Verified:        f.Verified || other.Verified,
		TagsRewritten:   f.TagsRewritten || other.TagsRewritten,
		FsTimeRewritten: f.FsTimeRewritten || other.FsTimeRewritten,
	}
}

// Done reports whether every stage has completed.
func (f StageFlags) Done() bool {
	return f.Downloaded && f.Verified && f.TagsRewritten && f.FsTimeRewritten
}

// WorkItem is the unit of pipeline work: one (run, asset) pair. ResolvedPath
// is computed exactly once at creation and never recomputed, so all stages
// and any resumed run agree on the file location.
type WorkItem struct {
	ID           int64
	RunID        int64
	Asset        Asset
	ResolvedPath string
	Flags        StageFlags
	LastError    string
}

// InitialFlags returns the flag set a fresh work item starts with under cfg:
// every disabled stage is pre-completed, everything else is pending.
func InitialFlags(cfg RunConfig) StageFlags {
	return StageFlags{
		Verified:        !cfg.CheckSHA1,
		TagsRewritten:   !cfg.RewriteTags,
		FsTimeRewritten: !cfg.RewriteFsTime,
	}
}

// PendingAsset is one backlog row: an asset that still needs local
// materialization, together with the stage flags of its most recent work
// item for the job (zero flags when it was never claimed).
type PendingAsset struct {
	Asset     Asset
	PrevFlags StageFlags
}

// NewWorkItem builds the work item for asset within run. prev carries the
// stage flags of the asset's most recent item for the same job, zero when
// the asset has never been claimed before.
func NewWorkItem(run RunContext, cfg RunConfig, asset Asset, resolvedPath string, prev StageFlags) *WorkItem {
	return &WorkItem{
		RunID:        run.RunID,
		Asset:        asset,
		ResolvedPath: resolvedPath,
		Flags:        InitialFlags(cfg).Merge(prev),
	}
}

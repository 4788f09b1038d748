package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitialFlags(t *testing.T) {
	all := RunConfig{CheckSHA1: true, RewriteTags: true, RewriteFsTime: true}
	assert.Equal(t, StageFlags{}, InitialFlags(all))

	none := RunConfig{}
	assert.Equal(t, StageFlags{Verified: true, TagsRewritten: true, FsTimeRewritten: true}, InitialFlags(none))

	noTags := RunConfig{CheckSHA1: true, RewriteFsTime: true}
	assert.Equal(t, StageFlags{TagsRewritten: true}, InitialFlags(noTags))
}

func TestStageFlagsMerge(t *testing.T) {
	prev := StageFlags{Downloaded: true, Verified: true}
	preset := StageFlags{TagsRewritten: true}

	merged := preset.Merge(prev)
	assert.Equal(t, StageFlags{Downloaded: true, Verified: true, TagsRewritten: true}, merged)
}

func TestStageFlagsDone(t *testing.T) {
	assert.False(t, StageFlags{}.Done())
	assert.False(t, StageFlags{Downloaded: true, Verified: true, TagsRewritten: true}.Done())
	assert.True(t, StageFlags{Downloaded: true, Verified: true, TagsRewritten: true, FsTimeRewritten: true}.Done())
}

func TestNewWorkItemInheritsPriorProgress(t *testing.T) {
	run := RunContext{RunID: 7}
	cfg := RunConfig{CheckSHA1: true} // tag and fs-time stages disabled

	asset := Asset{ID: 10, FileName: "a.jpg"}
	item := NewWorkItem(run, cfg, asset, "/mnt/photos/Camera/a.jpg", StageFlags{Downloaded: true})

	assert.Equal(t, int64(7), item.RunID)
	assert.Equal(t, "/mnt/photos/Camera/a.jpg", item.ResolvedPath)
	assert.Equal(t, StageFlags{Downloaded: true, TagsRewritten: true, FsTimeRewritten: true}, item.Flags)
	assert.False(t, item.Flags.Done())
}

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"album_syncer/internal/domain"
	"album_syncer/internal/pipeline/mocks"
)

type pipelineFixture struct {
	assets     *mocks.MockAssetSource
	items      *mocks.MockItemStore
	downloader *mocks.MockDownloader
	rewriter   *mocks.MockTagRewriter
	run        domain.RunContext
	cfg        domain.RunConfig
}

func newPipelineFixture(t *testing.T, cfg domain.RunConfig) *pipelineFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &pipelineFixture{
		assets:     mocks.NewMockAssetSource(ctrl),
		items:      mocks.NewMockItemStore(ctrl),
		downloader: mocks.NewMockDownloader(ctrl),
		rewriter:   mocks.NewMockTagRewriter(ctrl),
		cfg:        cfg,
	}
	f.cfg.TargetPathBase = t.TempDir()
	f.run = domain.RunContext{
		RunID:          7,
		JobID:          3,
		JobName:        "family photos",
		AccountID:      "acc-1",
		TargetPathBase: f.cfg.TargetPathBase,
	}

	var nextID int64 = 100
	f.items.EXPECT().CreateBatch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, batch []*domain.WorkItem) error {
			for _, item := range batch {
				item.ID = nextID
				nextID++
			}
			return nil
		},
	).AnyTimes()
	f.items.EXPECT().MarkDownloaded(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.items.EXPECT().MarkVerified(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.items.EXPECT().MarkTagsRewritten(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.items.EXPECT().MarkFsTimeRewritten(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func (f *pipelineFixture) pipeline() *Pipeline {
	return New(f.run, f.cfg, Deps{
		Assets:     f.assets,
		Items:      f.items,
		Downloader: f.downloader,
		Rewriter:   f.rewriter,
		Logger:     testLogger(),
	})
}

func pendingImage(id int64, name string) domain.PendingAsset {
	return domain.PendingAsset{Asset: domain.Asset{
		ID:        id,
		AlbumID:   1,
		AlbumName: "Camera",
		FileName:  name,
		Type:      domain.MediaImage,
		SHA1:      helloSHA1,
		TakenAt:   time.Date(2024, 4, 1, 13, 30, 0, 0, time.UTC),
	}}
}

func helloBody() io.ReadCloser {
	return io.NopCloser(strings.NewReader("hello"))
}

func TestPipelineRunEndToEnd(t *testing.T) {
	cfg := domain.RunConfig{CheckSHA1: true, RewriteTags: true, RewriteFsTime: true}
	f := newPipelineFixture(t, cfg)

	backlog := []domain.PendingAsset{
		pendingImage(10, "a.jpg"),
		pendingImage(11, "b.jpg"),
		pendingImage(12, "c.jpg"),
	}
	f.assets.EXPECT().ListPending(gomock.Any(), int64(3), gomock.Any(), int64(0), DefaultPageSize).
		Return(backlog, nil)

	f.downloader.EXPECT().FetchAssetBytes(gomock.Any(), "acc-1", gomock.Any()).
		DoAndReturn(func(context.Context, string, domain.Asset) (io.ReadCloser, error) {
			return helloBody(), nil
		}).Times(3)
	f.rewriter.EXPECT().Rewrite(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(3)

	success, total, err := f.pipeline().Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, success)
	assert.Equal(t, 3, total)

	for _, name := range []string{"a.jpg", "b.jpg", "c.jpg"} {
		path := filepath.Join(f.cfg.TargetPathBase, "Camera", name)
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(content))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.True(t, info.ModTime().Equal(backlog[0].Asset.TakenAt))
	}
}

func TestPipelineIsolatesItemFailures(t *testing.T) {
	cfg := domain.RunConfig{CheckSHA1: true, RewriteTags: true, RewriteFsTime: true}
	f := newPipelineFixture(t, cfg)

	f.assets.EXPECT().ListPending(gomock.Any(), int64(3), gomock.Any(), int64(0), DefaultPageSize).
		Return([]domain.PendingAsset{
			pendingImage(10, "a.jpg"),
			pendingImage(11, "b.jpg"),
			pendingImage(12, "c.jpg"),
		}, nil)

	f.downloader.EXPECT().FetchAssetBytes(gomock.Any(), "acc-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, asset domain.Asset) (io.ReadCloser, error) {
			if asset.ID == 11 {
				return nil, errors.New("remote down")
			}
			return helloBody(), nil
		}).Times(3)
	f.rewriter.EXPECT().Rewrite(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.items.EXPECT().RecordError(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	success, total, err := f.pipeline().Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, success)
	assert.Equal(t, 3, total)
}

func TestPipelineChecksumMismatchDropsItem(t *testing.T) {
	cfg := domain.RunConfig{CheckSHA1: true, RewriteTags: true, RewriteFsTime: true}
	f := newPipelineFixture(t, cfg)

	f.assets.EXPECT().ListPending(gomock.Any(), int64(3), gomock.Any(), int64(0), DefaultPageSize).
		Return([]domain.PendingAsset{pendingImage(10, "a.jpg")}, nil)

	f.downloader.EXPECT().FetchAssetBytes(gomock.Any(), "acc-1", gomock.Any()).
		Return(io.NopCloser(strings.NewReader("tampered")), nil)
	f.items.EXPECT().RecordError(gomock.Any(), int64(100), gomock.Any()).Return(nil)

	success, total, err := f.pipeline().Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, success)
	assert.Equal(t, 1, total)

	// The mismatching file is kept on disk.
	_, statErr := os.Stat(filepath.Join(f.cfg.TargetPathBase, "Camera", "a.jpg"))
	assert.NoError(t, statErr)
}

func TestPipelineDeletedAssetSkippedWithoutError(t *testing.T) {
	cfg := domain.RunConfig{CheckSHA1: true, RewriteTags: true, RewriteFsTime: true}
	f := newPipelineFixture(t, cfg)

	f.assets.EXPECT().ListPending(gomock.Any(), int64(3), gomock.Any(), int64(0), DefaultPageSize).
		Return([]domain.PendingAsset{
			pendingImage(10, "a.jpg"),
			pendingImage(11, "b.jpg"),
		}, nil)

	f.downloader.EXPECT().FetchAssetBytes(gomock.Any(), "acc-1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, asset domain.Asset) (io.ReadCloser, error) {
			if asset.ID == 11 {
				return nil, fmt.Errorf("asset 11: %w", domain.ErrAssetDeleted)
			}
			return helloBody(), nil
		}).Times(2)
	f.rewriter.EXPECT().Rewrite(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	// No RecordError: a deliberate skip is not an item failure.
	success, total, err := f.pipeline().Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, success)
	assert.Equal(t, 2, total)
}

func TestPipelineStreamErrorDrainsClaimedItems(t *testing.T) {
	cfg := domain.RunConfig{CheckSHA1: true, RewriteTags: true, RewriteFsTime: true, PageSize: 1}
	f := newPipelineFixture(t, cfg)

	f.assets.EXPECT().ListPending(gomock.Any(), int64(3), gomock.Any(), int64(0), 1).
		Return([]domain.PendingAsset{pendingImage(10, "a.jpg")}, nil)
	f.assets.EXPECT().ListPending(gomock.Any(), int64(3), gomock.Any(), int64(10), 1).
		Return(nil, errors.New("db down"))

	f.downloader.EXPECT().FetchAssetBytes(gomock.Any(), "acc-1", gomock.Any()).Return(helloBody(), nil)
	f.rewriter.EXPECT().Rewrite(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	success, total, err := f.pipeline().Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, 1, success)
	assert.Equal(t, 1, total)
}

func TestPipelineSkipsDisabledStages(t *testing.T) {
	// Only the download stage is on; content does not match the catalog
	// hash and must not be checked.
	cfg := domain.RunConfig{}
	f := newPipelineFixture(t, cfg)

	f.assets.EXPECT().ListPending(gomock.Any(), int64(3), gomock.Any(), int64(0), DefaultPageSize).
		Return([]domain.PendingAsset{pendingImage(10, "a.jpg")}, nil)
	f.downloader.EXPECT().FetchAssetBytes(gomock.Any(), "acc-1", gomock.Any()).
		Return(io.NopCloser(strings.NewReader("whatever")), nil)

	success, total, err := f.pipeline().Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, success)
	assert.Equal(t, 1, total)
}

func TestPipelineResumesFromPriorFlags(t *testing.T) {
	cfg := domain.RunConfig{CheckSHA1: true, RewriteTags: true, RewriteFsTime: true}
	f := newPipelineFixture(t, cfg)

	pending := pendingImage(10, "a.jpg")
	pending.PrevFlags = domain.StageFlags{Downloaded: true, Verified: true}
	f.assets.EXPECT().ListPending(gomock.Any(), int64(3), gomock.Any(), int64(0), DefaultPageSize).
		Return([]domain.PendingAsset{pending}, nil)

	// A previous run already downloaded and verified the file.
	path := filepath.Join(f.cfg.TargetPathBase, "Camera", "a.jpg")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	f.rewriter.EXPECT().Rewrite(gomock.Any(), gomock.Any(), path).Return(nil)

	success, total, err := f.pipeline().Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, success)
	assert.Equal(t, 1, total)
}

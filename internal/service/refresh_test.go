package service

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"album_syncer/internal/domain"
	"album_syncer/internal/service/mocks"
)

type RefresherTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	catalog   *mocks.MockCatalog
	albums    *mocks.MockAlbumStore
	assets    *mocks.MockAssetStore
	txManager *mocks.MockTransactionManager

	refresher *Refresher
	run       domain.RunContext
}

func (s *RefresherTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.catalog = mocks.NewMockCatalog(s.ctrl)
	s.albums = mocks.NewMockAlbumStore(s.ctrl)
	s.assets = mocks.NewMockAssetStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.refresher = NewRefresher(s.catalog, s.albums, s.assets, s.txManager, logger)

	s.run = domain.RunContext{RunID: 7, JobID: 3, AccountID: "acc-1", StartTime: time.Now()}

	s.txManager.EXPECT().WithTransaction(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	).AnyTimes()
}

func (s *RefresherTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestRefresherTestSuite(t *testing.T) {
	suite.Run(t, new(RefresherTestSuite))
}

func (s *RefresherTestSuite) TestFullRefresh() {
	ctx := context.Background()
	camera := domain.Album{ID: 1, Name: "Camera", AssetCount: 2}
	holiday := domain.Album{ID: 42, Name: "Holiday", AssetCount: 1}
	cfg := domain.RunConfig{AlbumIDs: []int64{1, 42}}

	s.catalog.EXPECT().ListAlbums(ctx, "acc-1").Return([]domain.Album{camera, holiday, {ID: 5, Name: "Unrelated"}}, nil)

	cameraAssets := []domain.Asset{{ID: 900, AlbumID: 1}, {ID: 901, AlbumID: 1}}
	s.catalog.EXPECT().FetchAssetsByAlbum(ctx, "acc-1", camera, "").Return(cameraAssets, nil)
	s.albums.EXPECT().UpsertBatch(ctx, []domain.Album{camera}).Return(nil)
	s.assets.EXPECT().UpsertBatch(ctx, cameraAssets).Return(nil)
	s.albums.EXPECT().UpdateAssetCount(ctx, int64(1), int64(2)).Return(nil)
	cameraTimeline := domain.AlbumTimeline{IndexHash: "h1", DayCount: map[string]int64{"2024-04-01": 2}}
	s.catalog.EXPECT().FetchAlbumTimeline(ctx, "acc-1", int64(1)).Return(cameraTimeline, nil)

	holidayAssets := []domain.Asset{{ID: 910, AlbumID: 42}}
	s.catalog.EXPECT().FetchAssetsByAlbum(ctx, "acc-1", holiday, "").Return(holidayAssets, nil)
	s.albums.EXPECT().UpsertBatch(ctx, []domain.Album{holiday}).Return(nil)
	s.assets.EXPECT().UpsertBatch(ctx, holidayAssets).Return(nil)
	s.albums.EXPECT().UpdateAssetCount(ctx, int64(42), int64(1)).Return(nil)
	holidayTimeline := domain.AlbumTimeline{IndexHash: "h2", DayCount: map[string]int64{"2024-04-02": 1}}
	s.catalog.EXPECT().FetchAlbumTimeline(ctx, "acc-1", int64(42)).Return(holidayTimeline, nil)

	snapshot, err := s.refresher.Refresh(ctx, s.run, cfg, RefreshPlan{Reason: "timeline diff disabled"})
	s.NoError(err)
	s.Equal(map[int64]domain.AlbumTimeline{1: cameraTimeline, 42: holidayTimeline}, snapshot)
}

func (s *RefresherTestSuite) TestFullRefresh_SynthesizesRecordingsAlbum() {
	ctx := context.Background()
	cfg := domain.RunConfig{AlbumIDs: []int64{domain.RecordingsAlbumID}}
	recordings := domain.Album{ID: domain.RecordingsAlbumID, Name: "Recordings"}

	s.catalog.EXPECT().ListAlbums(ctx, "acc-1").Return(nil, nil)

	assets := []domain.Asset{{ID: 77, AlbumID: domain.RecordingsAlbumID, Type: domain.MediaAudio}}
	s.catalog.EXPECT().FetchAssetsByAlbum(ctx, "acc-1", recordings, "").Return(assets, nil)
	s.albums.EXPECT().UpsertBatch(ctx, []domain.Album{recordings}).Return(nil)
	s.assets.EXPECT().UpsertBatch(ctx, assets).Return(nil)
	s.albums.EXPECT().UpdateAssetCount(ctx, domain.RecordingsAlbumID, int64(1)).Return(nil)

	// No timeline fetch for the recordings pseudo album.
	snapshot, err := s.refresher.Refresh(ctx, s.run, cfg, RefreshPlan{Reason: "timeline diff disabled"})
	s.NoError(err)
	s.Empty(snapshot)
}

func (s *RefresherTestSuite) TestFullRefresh_SkipsAlbumMissingOnRemote() {
	ctx := context.Background()
	cfg := domain.RunConfig{AlbumIDs: []int64{99}}

	s.catalog.EXPECT().ListAlbums(ctx, "acc-1").Return([]domain.Album{{ID: 1, Name: "Camera"}}, nil)

	snapshot, err := s.refresher.Refresh(ctx, s.run, cfg, RefreshPlan{Reason: "timeline diff disabled"})
	s.NoError(err)
	s.Empty(snapshot)
}

func (s *RefresherTestSuite) TestIncrementalRefresh_FetchesOnlyGainedDays() {
	ctx := context.Background()
	holiday := domain.Album{ID: 42, Name: "Holiday"}
	cfg := domain.RunConfig{DiffByTimeline: true, AlbumIDs: []int64{42}}

	previous := map[int64]domain.AlbumTimeline{
		42: {IndexHash: "h1", DayCount: map[string]int64{"2024-04-01": 2, "2024-04-02": 1}},
	}
	current := domain.AlbumTimeline{
		IndexHash: "h2",
		DayCount:  map[string]int64{"2024-04-01": 3, "2024-04-02": 1},
	}

	s.albums.EXPECT().GetByIDs(ctx, []int64{42}).Return([]domain.Album{holiday}, nil)
	s.catalog.EXPECT().FetchAlbumTimeline(ctx, "acc-1", int64(42)).Return(current, nil)

	newAssets := []domain.Asset{{ID: 920, AlbumID: 42}}
	s.catalog.EXPECT().FetchAssetsByAlbum(ctx, "acc-1", holiday, "2024-04-01").Return(newAssets, nil)
	s.albums.EXPECT().UpsertBatch(ctx, []domain.Album{holiday}).Return(nil)
	s.assets.EXPECT().UpsertBatch(ctx, newAssets).Return(nil)
	s.albums.EXPECT().UpdateAssetCount(ctx, int64(42), int64(4)).Return(nil)

	snapshot, err := s.refresher.Refresh(ctx, s.run, cfg, RefreshPlan{Incremental: true, Previous: previous})
	s.NoError(err)
	s.Equal(map[int64]domain.AlbumTimeline{42: current}, snapshot)
}

func (s *RefresherTestSuite) TestIncrementalRefresh_UnchangedAlbumIsLeftAlone() {
	ctx := context.Background()
	holiday := domain.Album{ID: 42, Name: "Holiday"}
	cfg := domain.RunConfig{DiffByTimeline: true, AlbumIDs: []int64{42}}

	timeline := domain.AlbumTimeline{IndexHash: "h1", DayCount: map[string]int64{"2024-04-01": 2}}
	previous := map[int64]domain.AlbumTimeline{42: timeline}

	s.albums.EXPECT().GetByIDs(ctx, []int64{42}).Return([]domain.Album{holiday}, nil)
	s.catalog.EXPECT().FetchAlbumTimeline(ctx, "acc-1", int64(42)).Return(timeline, nil)

	snapshot, err := s.refresher.Refresh(ctx, s.run, cfg, RefreshPlan{Incremental: true, Previous: previous})
	s.NoError(err)
	s.Equal(previous, snapshot)
}

func (s *RefresherTestSuite) TestIncrementalRefresh_TimelineErrorPropagates() {
	ctx := context.Background()
	cfg := domain.RunConfig{DiffByTimeline: true, AlbumIDs: []int64{42}}

	s.albums.EXPECT().GetByIDs(ctx, []int64{42}).Return([]domain.Album{{ID: 42}}, nil)
	s.catalog.EXPECT().FetchAlbumTimeline(ctx, "acc-1", int64(42)).
		Return(domain.AlbumTimeline{}, errors.New("remote down"))

	_, err := s.refresher.Refresh(ctx, s.run, cfg, RefreshPlan{Incremental: true})
	s.Error(err)
}

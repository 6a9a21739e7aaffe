package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/fastbrowser/internal/application/usecase"
	"github.com/bnema/fastbrowser/internal/domain/entity"
	"github.com/bnema/fastbrowser/internal/domain/repository"
	repomocks "github.com/bnema/fastbrowser/internal/domain/repository/mocks"
)

func tabListOf(urls ...string) *entity.TabList {
	tabs := entity.NewTabList()
	for i, u := range urls {
		tabs.Add(entity.NewBrowsingTab(entity.TabID("tab-"+string(rune('a'+i))), u))
	}
	return tabs
}

func TestSnapshotSessionUseCase_Persist(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSessionRepository(t)

	snapshot := entity.CaptureURLs([]string{"https://x.example", "https://y.example"})
	repo.EXPECT().Save(ctx, snapshot).Return(nil)

	uc := usecase.NewSnapshotSessionUseCase(repo)
	require.NoError(t, uc.Persist(ctx, snapshot))
}

func TestSnapshotSessionUseCase_Persist_WrapsError(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSessionRepository(t)
	repo.EXPECT().Save(ctx, entity.CaptureURLs(nil)).Return(repository.ErrIOFailure)

	uc := usecase.NewSnapshotSessionUseCase(repo)
	err := uc.Persist(ctx, entity.CaptureURLs(nil))

	require.ErrorIs(t, err, repository.ErrIOFailure)
}

func TestSnapshotSessionUseCase_Shutdown_KeepPersistsBrowsingTabsOnly(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSessionRepository(t)

	tabs := tabListOf("https://x.example", "https://y.example")
	tabs.Add(entity.NewPaneTab("settings", entity.SettingsPaneContent{}))
	tabs.Add(entity.NewBrowsingTab("tab-z", "https://z.example"))

	repo.EXPECT().
		Save(ctx, entity.SessionSnapshot{URLs: []string{"https://x.example", "https://y.example", "https://z.example"}}).
		Return(nil)

	uc := usecase.NewSnapshotSessionUseCase(repo)
	require.NoError(t, uc.Shutdown(ctx, usecase.ShutdownInput{Keep: true, TabList: tabs}))
}

func TestSnapshotSessionUseCase_Shutdown_DeclineDiscards(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSessionRepository(t)
	repo.EXPECT().Delete(ctx).Return(nil)

	uc := usecase.NewSnapshotSessionUseCase(repo)
	require.NoError(t, uc.Shutdown(ctx, usecase.ShutdownInput{Keep: false, TabList: tabListOf("https://x.example")}))
}

func TestSnapshotSessionUseCase_Discard_WrapsError(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSessionRepository(t)
	repo.EXPECT().Delete(ctx).Return(repository.ErrIOFailure)

	uc := usecase.NewSnapshotSessionUseCase(repo)
	err := uc.Discard(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrIOFailure)
}

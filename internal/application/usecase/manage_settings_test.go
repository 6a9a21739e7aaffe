package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/fastbrowser/internal/application/port"
	portmocks "github.com/bnema/fastbrowser/internal/application/port/mocks"
	"github.com/bnema/fastbrowser/internal/application/usecase"
	"github.com/bnema/fastbrowser/internal/domain/entity"
	"github.com/bnema/fastbrowser/internal/domain/repository"
	repomocks "github.com/bnema/fastbrowser/internal/domain/repository/mocks"
)

func testSettings() *entity.Settings {
	return &entity.Settings{
		DefaultSearchEngine: "https://duckduckgo.com",
		Theme:               entity.ThemeDark,
		DownloadPath:        "/tmp/dl",
		Language:            entity.LanguageEnglish,
	}
}

func TestManageSettingsUseCase_Load(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)
	repo.EXPECT().Load(ctx).Return(testSettings(), nil)

	uc := usecase.NewManageSettingsUseCase(repo, entity.DefaultSettings("/home/u"))
	got, err := uc.Load(ctx)

	require.NoError(t, err)
	assert.Equal(t, testSettings(), got)
	assert.Equal(t, testSettings(), uc.Current())
}

func TestManageSettingsUseCase_Load_ErrorKeepsDefaults(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)
	repo.EXPECT().Load(ctx).Return(nil, repository.ErrCorruptData)

	defaults := entity.DefaultSettings("/home/u")
	uc := usecase.NewManageSettingsUseCase(repo, defaults)
	got, err := uc.Load(ctx)

	require.ErrorIs(t, err, repository.ErrCorruptData)
	assert.Equal(t, defaults, got)
	assert.Equal(t, defaults, uc.Current())
}

func TestManageSettingsUseCase_Save_PersistsBeforeNotifying(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)
	observer := portmocks.NewMockSettingsObserver(t)

	saved := false
	repo.EXPECT().Save(ctx, testSettings()).RunAndReturn(func(context.Context, *entity.Settings) error {
		saved = true
		return nil
	})
	observer.EXPECT().ApplySettings(ctx, testSettings()).Run(func(context.Context, *entity.Settings) {
		assert.True(t, saved, "observer ran before the settings were written")
	})

	uc := usecase.NewManageSettingsUseCase(repo, entity.DefaultSettings("/home/u"))
	uc.Subscribe(observer)

	require.NoError(t, uc.Save(ctx, testSettings()))
	assert.Equal(t, testSettings(), uc.Current())
}

func TestManageSettingsUseCase_Save_RejectsEmptyFields(t *testing.T) {
	repo := repomocks.NewMockSettingsRepository(t)
	observer := portmocks.NewMockSettingsObserver(t)

	uc := usecase.NewManageSettingsUseCase(repo, entity.DefaultSettings("/home/u"))
	uc.Subscribe(observer)

	s := testSettings()
	s.DefaultSearchEngine = ""
	err := uc.Save(testContext(), s)

	require.ErrorIs(t, err, entity.ErrInvalidSettings)
}

func TestManageSettingsUseCase_Save_FailureLeavesCurrentUnchanged(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)
	repo.EXPECT().Save(ctx, mock.Anything).Return(repository.ErrIOFailure)

	defaults := entity.DefaultSettings("/home/u")
	uc := usecase.NewManageSettingsUseCase(repo, defaults)
	called := false
	uc.Subscribe(port.SettingsObserverFunc(func(context.Context, *entity.Settings) { called = true }))

	err := uc.Save(ctx, testSettings())

	require.ErrorIs(t, err, repository.ErrIOFailure)
	assert.False(t, called)
	assert.Equal(t, defaults, uc.Current())
}

func TestManageSettingsUseCase_Reloaded_NotifiesObservers(t *testing.T) {
	ctx := testContext()
	repo := repomocks.NewMockSettingsRepository(t)

	uc := usecase.NewManageSettingsUseCase(repo, entity.DefaultSettings("/home/u"))
	var got *entity.Settings
	uc.Subscribe(port.SettingsObserverFunc(func(_ context.Context, s *entity.Settings) { got = s }))

	uc.Reloaded(ctx, testSettings())

	assert.Equal(t, testSettings(), got)
	assert.Equal(t, testSettings(), uc.Current())
}

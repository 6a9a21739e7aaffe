// Package cli wires the browser shell and its commands.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/bnema/fastbrowser/internal/application/usecase"
	"github.com/bnema/fastbrowser/internal/cli/styles"
	"github.com/bnema/fastbrowser/internal/domain/build"
	"github.com/bnema/fastbrowser/internal/domain/entity"
	"github.com/bnema/fastbrowser/internal/domain/url"
	"github.com/bnema/fastbrowser/internal/i18n"
	"github.com/bnema/fastbrowser/internal/infrastructure/config"
	"github.com/bnema/fastbrowser/internal/infrastructure/persistence/jsonstore"
	"github.com/bnema/fastbrowser/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Theme      *styles.Theme
	Translator *i18n.Translator
	BuildInfo  build.Info
	ConfigDir  string
	Store      *jsonstore.Store
	Config     *config.Manager

	// Use cases
	HistoryUC  *usecase.ManageHistoryUseCase
	SettingsUC *usecase.ManageSettingsUseCase
	TabsUC     *usecase.ManageTabsUseCase
	NavigateUC *usecase.NavigateUseCase
	SnapshotUC *usecase.SnapshotSessionUseCase
	RestoreUC  *usecase.RestoreSessionUseCase

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp creates a new CLI application with all dependencies.
// When interactive is true the terminal belongs to the browser shell, so
// nothing is logged to stderr.
func NewApp(interactive bool) (*App, error) {
	dir, err := config.EnsureConfigDir()
	if err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}

	fileCfg := logging.FileConfig{
		Enabled:  true,
		LogDir:   dir,
		Rotation: logging.DefaultRotationConfig(),
	}
	if !interactive {
		fileCfg.Stderr = os.Stderr
		fileCfg.StderrLevel = zerolog.WarnLevel
	}
	logger, logCleanup, err := logging.NewWithFiles(logging.ConfigFromEnv(), fileCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: file logging disabled: %v\n", err)
	}
	ctx := logging.WithContext(context.Background(), logger)

	store := jsonstore.New(dir)
	mgr := config.NewManager(store, "")

	// Settings
	settingsUC := usecase.NewManageSettingsUseCase(mgr, mgr.Defaults())
	settings, err := settingsUC.Load(ctx)
	if err != nil {
		// Unreadable settings fall back to defaults; the shell still starts.
		logger.Warn().Err(err).Msg("using default settings")
	}

	translator, err := i18n.NewTranslator(settings.Language)
	if err != nil {
		logCleanup()
		return nil, fmt.Errorf("load translations: %w", err)
	}
	settingsUC.Subscribe(translator)

	// Repositories and use cases
	historyUC := usecase.NewManageHistoryUseCase(jsonstore.NewHistoryRepository(store))
	sessionRepo := jsonstore.NewSessionRepository(store)

	logger.Debug().Str("config_dir", dir).Msg("app initialized")

	return &App{
		Theme:      styles.NewTheme(settings.Theme),
		Translator: translator,
		ConfigDir:  dir,
		Store:      store,
		Config:     mgr,
		HistoryUC:  historyUC,
		SettingsUC: settingsUC,
		TabsUC:     usecase.NewManageTabsUseCase(uuid.NewString, historyUC),
		NavigateUC: usecase.NewNavigateUseCase(historyUC),
		SnapshotUC: usecase.NewSnapshotSessionUseCase(sessionRepo),
		RestoreUC:  usecase.NewRestoreSessionUseCase(sessionRepo),
		ctx:        ctx,
		logCleanup: logCleanup,
	}, nil
}

// WatchSettings reloads settings when config.json is changed by another
// process and hands them to the settings observers.
func (a *App) WatchSettings() error {
	ctx := a.ctx
	a.Config.OnConfigChange(func(s *entity.Settings) {
		a.SettingsUC.Reloaded(ctx, s)
	})
	return a.Config.Watch(ctx)
}

// StartupTabs opens the tabs of the previous session, or the start page when
// there is none, followed by one tab per command-line argument. The notice is
// non-empty when a saved session could not be read. An empty saved session
// opens no tabs.
func (a *App) StartupTabs(args []string) (*entity.TabList, string, error) {
	ctx := a.ctx
	engine := a.SettingsUC.Current().DefaultSearchEngine

	restored, restoreErr := a.RestoreUC.Restore(ctx, usecase.RestoreInput{DefaultSearchEngine: engine})
	notice := ""
	if restoreErr != nil {
		notice = a.Translator.T(i18n.MsgRestoreFailed)
	}

	tabs := entity.NewTabList()
	for _, u := range restored.URLs {
		if _, err := a.TabsUC.Open(ctx, usecase.OpenTabInput{TabList: tabs, URL: u, DefaultSearchEngine: engine}); err != nil {
			return nil, "", err
		}
	}
	for _, arg := range args {
		target := url.Resolve(arg, engine)
		if _, err := a.TabsUC.Open(ctx, usecase.OpenTabInput{TabList: tabs, URL: target, DefaultSearchEngine: engine}); err != nil {
			return nil, "", err
		}
	}
	return tabs, notice, nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

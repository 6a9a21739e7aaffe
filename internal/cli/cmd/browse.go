package cmd

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/fastbrowser/internal/application/port"
	"github.com/bnema/fastbrowser/internal/cli/model"
	"github.com/bnema/fastbrowser/internal/domain/entity"
	"github.com/bnema/fastbrowser/internal/logging"
)

var browseCmd = &cobra.Command{
	Use:   "browse [url...]",
	Short: "Open the browser",
	Long: `Open the browser shell.

Tabs saved by the previous session are restored first. Without a saved
session the default search engine is opened. Each argument opens one more
tab.

On exit you are asked whether to keep the open tabs. The answer defaults to
No, which also removes tabs saved by an earlier session.

Examples:
  fastbrowser browse                      # Restore tabs or open the start page
  fastbrowser browse https://go.dev       # Also open go.dev
  fastbrowser browse "bubble tea"         # Also search for "bubble tea"`,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(_ *cobra.Command, args []string) (err error) {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx := logging.WithComponent(app.Ctx(), "browse")
	defer logging.RecoverPanic(ctx, &err)

	tabs, notice, err := app.StartupTabs(args)
	if err != nil {
		return err
	}

	// SIGTERM ends the program without the keep-tabs prompt; nothing is written.
	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGTERM)
	defer stop()

	shell := model.NewShellModel(ctx, model.ShellDeps{
		Tabs:       app.TabsUC,
		Navigate:   app.NavigateUC,
		History:    app.HistoryUC,
		Settings:   app.SettingsUC,
		Snapshot:   app.SnapshotUC,
		Translator: app.Translator,
	}, tabs, notice)

	p := tea.NewProgram(shell, tea.WithAltScreen(), tea.WithContext(sigCtx))

	app.SettingsUC.Subscribe(port.SettingsObserverFunc(func(_ context.Context, s *entity.Settings) {
		p.Send(model.SettingsAppliedMsg{Settings: s})
	}))
	if err := app.WatchSettings(); err != nil {
		logging.FromContext(ctx).Warn().Err(err).Msg("settings file watch disabled")
	}

	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			logging.FromContext(ctx).Info().Msg("terminated, tabs not saved")
			return nil
		}
		return err
	}

	if m, ok := final.(model.ShellModel); ok {
		if shutdownErr := m.ShutdownErr(); shutdownErr != nil {
			return shutdownErr
		}
	}
	logging.FromContext(ctx).Info().Msg("Browser closed")
	return nil
}

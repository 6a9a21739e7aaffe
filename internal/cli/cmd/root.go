// Package cmd provides Cobra CLI commands for fastbrowser.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/fastbrowser/internal/cli"
	"github.com/bnema/fastbrowser/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "fastbrowser [url...]",
		Short: "A small tabbed browser shell with persistent history and sessions",
		Long: `fastbrowser - a tabbed browser shell for the terminal.

Every visited page is kept in a history ledger, open tabs can be saved on
exit and restored on the next start, and settings (start page, theme,
download path, language) live in a single config.json.

Run without a subcommand to open the browser. Arguments are opened as extra
tabs: a value starting with "http" is used as-is, anything else is searched.

Files live in $FASTBROWSER_CONFIG_DIR, or $XDG_CONFIG_HOME/fastbrowser:
  config.json   settings
  tabs.json     tabs saved for the next session
  history.json  visited pages
  browser.log   log
  error.log     errors only`,
		Args: cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs", "version", "schema":
				return nil
			}

			var err error
			app, err = cli.NewApp(!cmd.HasParent() || cmd.Name() == "browse")
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
				app = nil
			}
		},
		RunE:          runBrowse,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

func requireApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a, nil
}

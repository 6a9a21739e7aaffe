package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/bnema/fastbrowser/internal/cli/styles"
	"github.com/bnema/fastbrowser/internal/domain/build"
	"github.com/bnema/fastbrowser/internal/domain/entity"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, _ []string) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), renderVersion(styles.NewTheme(entity.ThemeDark), buildInfo))
	return err
}

func renderVersion(t *styles.Theme, info build.Info) string {
	row := func(icon, label, value string) string {
		if value == "" {
			value = "unknown"
		}
		return lipgloss.JoinHorizontal(lipgloss.Left,
			t.Highlight.Render(icon+" "),
			t.Subtle.Width(10).Render(label),
			t.Normal.Render(value),
		)
	}

	return t.Box.Render(lipgloss.JoinVertical(lipgloss.Left,
		t.BoxHeader.Render(styles.IconGlobe+" fastbrowser"),
		row(styles.IconVersion, "version", info.Version),
		row(styles.IconVersion, "commit", info.Commit),
		row(styles.IconClock, "built", info.BuildDate),
		row(styles.IconGo, "go", info.GoVersion),
		t.Subtle.Render(build.RepoURL()),
	))
}

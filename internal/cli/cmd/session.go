package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bnema/fastbrowser/internal/application/usecase"
	"github.com/bnema/fastbrowser/internal/cli/styles"
	"github.com/bnema/fastbrowser/internal/i18n"
)

var (
	sessionJSON bool
	sessionYes  bool
)

var sessionCmd = &cobra.Command{
	Use:     "session",
	Aliases: []string{"tabs"},
	Short:   "Inspect or discard the saved tabs",
	Long:    `The tabs kept at the last exit are reopened on the next start.`,
}

var sessionShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the tabs that will be restored",
	Args:  cobra.NoArgs,
	RunE:  runSessionShow,
}

var sessionDiscardCmd = &cobra.Command{
	Use:   "discard",
	Short: "Delete the saved tabs",
	Long:  `Delete tabs.json so the next start opens the default search engine.`,
	Args:  cobra.NoArgs,
	RunE:  runSessionDiscard,
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.AddCommand(sessionShowCmd, sessionDiscardCmd)

	sessionShowCmd.Flags().BoolVar(&sessionJSON, "json", false, "output as JSON")
	sessionDiscardCmd.Flags().BoolVarP(&sessionYes, "yes", "y", false, "do not ask for confirmation")
}

// sessionView is the JSON shape of session show.
type sessionView struct {
	Saved bool     `json:"saved"`
	URLs  []string `json:"urls"`
}

func runSessionShow(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	restored, err := app.RestoreUC.Restore(app.Ctx(), usecase.RestoreInput{
		DefaultSearchEngine: app.SettingsUC.Current().DefaultSearchEngine,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if sessionJSON {
		view := sessionView{Saved: restored.FromSnapshot, URLs: []string{}}
		if restored.FromSnapshot {
			view.URLs = restored.URLs
		}
		return writeJSON(out, view)
	}

	if !restored.FromSnapshot {
		_, err = fmt.Fprintln(out, app.Theme.Subtle.Render(app.Translator.T(i18n.MsgNoSavedTabs, restored.URLs[0])))
		return err
	}

	rows := make([][]string, len(restored.URLs))
	for i, u := range restored.URLs {
		rows[i] = []string{strconv.Itoa(i + 1), u}
	}
	if _, err = fmt.Fprintln(out, app.Theme.RenderTable([]string{"#", "URL"}, rows)); err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, app.Theme.Subtle.Render(styles.IconSession+" "+app.Translator.T(i18n.MsgTabsCount, len(restored.URLs))))
	return err
}

func runSessionDiscard(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	if !sessionYes {
		t := app.Translator
		ok, err := confirm(t.T(i18n.MsgSavedTabs), t.T(i18n.MsgDiscardPrompt), t.T(i18n.MsgYes), t.T(i18n.MsgNo))
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}

	if err := app.SnapshotUC.Discard(app.Ctx()); err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Subtle.Render(styles.IconTrash+" tabs.json"))
	return err
}

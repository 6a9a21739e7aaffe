package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bnema/fastbrowser/internal/cli/styles"
	"github.com/bnema/fastbrowser/internal/i18n"
)

var (
	historyJSON   bool
	historyFilter string
	historyYes    bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List and manage browsing history",
	Long: `List the history ledger, oldest visit first.

Each URL appears once with the time of its first visit.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

var historyAddCmd = &cobra.Command{
	Use:   "add <url>",
	Short: "Record a visit",
	Long:  `Add a URL to the history ledger. Adding a URL that is already recorded does nothing.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryAdd,
}

var historyRemoveCmd = &cobra.Command{
	Use:   "remove <url>",
	Short: "Delete a URL from history",
	Long:  `Remove every entry for a URL (exact match). Asks for confirmation unless --yes is given.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryRemove,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyAddCmd, historyRemoveCmd)

	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "output as JSON")
	historyCmd.Flags().StringVarP(&historyFilter, "filter", "f", "", "only show URLs containing this text (case-insensitive)")
	historyRemoveCmd.Flags().BoolVarP(&historyYes, "yes", "y", false, "do not ask for confirmation")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	entries, err := app.HistoryUC.Search(app.Ctx(), historyFilter)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if historyJSON {
		return writeJSON(out, entries)
	}

	if len(entries) == 0 {
		_, err = fmt.Fprintln(out, app.Theme.Subtle.Render(app.Translator.T(i18n.MsgHistoryEmpty)))
		return err
	}

	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{strconv.Itoa(i + 1), e.URL, e.Timestamp}
	}
	_, err = fmt.Fprintln(out, app.Theme.RenderTable([]string{"#", "URL", "VISITED"}, rows))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, app.Theme.Subtle.Render(app.Translator.T(i18n.MsgEntriesCount, len(entries))))
	return err
}

func runHistoryAdd(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	if err := app.HistoryUC.AddVisit(app.Ctx(), args[0]); err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), app.Theme.SuccessStyle.Render(styles.IconCheck+" "+args[0]))
	return err
}

func runHistoryRemove(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	target := args[0]

	if !historyYes {
		t := app.Translator
		ok, err := confirm(t.T(i18n.MsgDeleteTitle), t.T(i18n.MsgDeletePrompt, target), t.T(i18n.MsgYes), t.T(i18n.MsgNo))
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}

	if err := app.HistoryUC.RemoveVisit(app.Ctx(), target); err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Subtle.Render(styles.IconTrash+" "+target))
	return err
}

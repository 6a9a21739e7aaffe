package cmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/bnema/fastbrowser/internal/cli/styles"
	"github.com/bnema/fastbrowser/internal/domain/entity"
	"github.com/bnema/fastbrowser/internal/i18n"
	"github.com/bnema/fastbrowser/internal/infrastructure/config"
	"github.com/bnema/fastbrowser/internal/infrastructure/persistence/jsonstore"
)

var (
	settingsJSON         bool
	settingsSearchEngine string
	settingsTheme        string
	settingsDownloadPath string
	settingsLanguage     string
	schemaWrite          bool
)

var settingsCmd = &cobra.Command{
	Use:     "settings",
	Aliases: []string{"config"},
	Short:   "Show and change settings",
	Long: `Settings are stored in config.json. A field that is missing or empty takes
its default; FASTBROWSER_DEFAULT_SEARCH_ENGINE, FASTBROWSER_THEME,
FASTBROWSER_DOWNLOAD_PATH and FASTBROWSER_LANGUAGE override the file.`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the settings in effect",
	Args:  cobra.NoArgs,
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Change one or more settings",
	Long: `Change settings from flags. Fields without a flag keep their current value.

Examples:
  fastbrowser settings set --theme dark
  fastbrowser settings set --language en --search-engine https://duckduckgo.com`,
	Args: cobra.NoArgs,
	RunE: runSettingsSet,
}

var settingsEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit settings interactively",
	Args:  cobra.NoArgs,
	RunE:  runSettingsEdit,
}

var settingsSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of config.json",
	Args:  cobra.NoArgs,
	RunE:  runSettingsSchema,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd, settingsEditCmd, settingsSchemaCmd)

	settingsShowCmd.Flags().BoolVar(&settingsJSON, "json", false, "output as JSON")

	settingsSetCmd.Flags().StringVar(&settingsSearchEngine, "search-engine", "", "start page and search engine URL")
	settingsSetCmd.Flags().StringVar(&settingsTheme, "theme", "", "color theme: light or dark")
	settingsSetCmd.Flags().StringVar(&settingsDownloadPath, "download-path", "", "directory downloads are saved to")
	settingsSetCmd.Flags().StringVar(&settingsLanguage, "language", "", "interface language: ru or en")

	settingsSchemaCmd.Flags().BoolVar(&schemaWrite, "write", false, "also save the schema as "+config.SchemaFileName+" in the config directory")
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	s := app.SettingsUC.Current()

	out := cmd.OutOrStdout()
	if settingsJSON {
		return writeJSON(out, s)
	}

	t := app.Translator
	rows := [][]string{
		{t.T(i18n.MsgSearchEngine), s.DefaultSearchEngine},
		{t.T(i18n.MsgTheme), t.ThemeName(s.Theme)},
		{t.T(i18n.MsgDownloadPath), s.DownloadPath},
		{t.T(i18n.MsgLanguage), i18n.LanguageName(s.Language)},
	}
	if _, err := fmt.Fprintln(out, app.Theme.RenderTable([]string{t.T(i18n.MsgSettings), ""}, rows)); err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, app.Theme.Subtle.Render(styles.IconConfig+" "+app.Store.Path(jsonstore.ConfigDocument)))
	return err
}

// applySettingsFlags returns current with the changed flags applied.
func applySettingsFlags(cmd *cobra.Command, current *entity.Settings) (*entity.Settings, error) {
	s := current.Clone()
	flags := cmd.Flags()

	if flags.Changed("search-engine") {
		s.DefaultSearchEngine = strings.TrimSpace(settingsSearchEngine)
	}
	if flags.Changed("download-path") {
		s.DownloadPath = strings.TrimSpace(settingsDownloadPath)
	}
	if flags.Changed("theme") {
		theme, ok := entity.ParseTheme(settingsTheme)
		if !ok {
			return nil, fmt.Errorf("%w: unknown theme %q (use light or dark)", entity.ErrInvalidSettings, settingsTheme)
		}
		s.Theme = theme
	}
	if flags.Changed("language") {
		lang, ok := entity.ParseLanguage(settingsLanguage)
		if !ok {
			return nil, fmt.Errorf("%w: unknown language %q (use ru or en)", entity.ErrInvalidSettings, settingsLanguage)
		}
		s.Language = lang
	}
	return s, nil
}

func runSettingsSet(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	s, err := applySettingsFlags(cmd, app.SettingsUC.Current())
	if err != nil {
		return err
	}
	if err := app.SettingsUC.Save(app.Ctx(), s); err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), app.Theme.SuccessStyle.Render(styles.IconCheck+" "+app.Translator.T(i18n.MsgSettingsSaved)))
	return err
}

func runSettingsEdit(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	t := app.Translator
	s := app.SettingsUC.Current()

	notEmpty := func(v string) error {
		if strings.TrimSpace(v) == "" {
			return fmt.Errorf("required")
		}
		return nil
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(t.T(i18n.MsgSearchEngine)).
				Value(&s.DefaultSearchEngine).
				Validate(notEmpty),
			huh.NewSelect[entity.Theme]().
				Title(t.T(i18n.MsgTheme)).
				Options(
					huh.NewOption(t.ThemeName(entity.ThemeLight), entity.ThemeLight),
					huh.NewOption(t.ThemeName(entity.ThemeDark), entity.ThemeDark),
				).
				Value(&s.Theme),
			huh.NewInput().
				Title(t.T(i18n.MsgDownloadPath)).
				Value(&s.DownloadPath).
				Validate(notEmpty),
			huh.NewSelect[entity.Language]().
				Title(t.T(i18n.MsgLanguage)).
				Options(
					huh.NewOption(i18n.LanguageName(entity.LanguageRussian), entity.LanguageRussian),
					huh.NewOption(i18n.LanguageName(entity.LanguageEnglish), entity.LanguageEnglish),
				).
				Value(&s.Language),
		),
	)
	if err := form.Run(); err != nil {
		return err
	}

	s.DefaultSearchEngine = strings.TrimSpace(s.DefaultSearchEngine)
	s.DownloadPath = strings.TrimSpace(s.DownloadPath)
	if err := app.SettingsUC.Save(app.Ctx(), s); err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), app.Theme.SuccessStyle.Render(styles.IconCheck+" "+t.T(i18n.MsgSettingsSaved)))
	return err
}

func runSettingsSchema(cmd *cobra.Command, _ []string) error {
	data, err := config.Schema()
	if err != nil {
		return err
	}

	if schemaWrite {
		dir, err := config.EnsureConfigDir()
		if err != nil {
			return fmt.Errorf("create config dir: %w", err)
		}
		if err := jsonstore.New(dir).WriteRaw(cmd.Context(), config.SchemaFileName, data); err != nil {
			return err
		}
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

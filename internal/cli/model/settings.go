package model

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/fastbrowser/internal/application/usecase"
	"github.com/bnema/fastbrowser/internal/cli/styles"
	"github.com/bnema/fastbrowser/internal/domain/entity"
	"github.com/bnema/fastbrowser/internal/i18n"
	"github.com/bnema/fastbrowser/internal/logging"
)

// settingsSavedMsg is sent when the settings pane's save completes.
type settingsSavedMsg struct {
	settings *entity.Settings
	err      error
}

type settingsField int

const (
	fieldSearchEngine settingsField = iota
	fieldTheme
	fieldDownloadPath
	fieldLanguage
	fieldCount
)

var (
	themeChoices    = []entity.Theme{entity.ThemeLight, entity.ThemeDark}
	languageChoices = []entity.Language{entity.LanguageRussian, entity.LanguageEnglish}
)

// SettingsPane edits the four settings fields.
type SettingsPane struct {
	searchEngine textinput.Model
	downloadPath textinput.Model
	keys         styles.SettingsKeyMap

	theme    entity.Theme
	language entity.Language
	focus    settingsField
	saving   bool
	err      error

	ctx        context.Context
	settingsUC *usecase.ManageSettingsUseCase
	translator *i18n.Translator
	ui         *styles.Theme
}

// NewSettingsPane creates a settings pane showing the current settings.
func NewSettingsPane(ctx context.Context, theme *styles.Theme, settingsUC *usecase.ManageSettingsUseCase, translator *i18n.Translator) SettingsPane {
	current := settingsUC.Current()
	m := SettingsPane{
		searchEngine: styles.NewFieldInput(theme, current.DefaultSearchEngine),
		downloadPath: styles.NewFieldInput(theme, current.DownloadPath),
		keys:         styles.DefaultSettingsKeyMap(),
		theme:        current.Theme,
		language:     current.Language,
		ctx:          logging.WithComponent(ctx, "settings-pane"),
		settingsUC:   settingsUC,
		translator:   translator,
		ui:           theme,
	}
	m.setFocus(fieldSearchEngine)
	return m
}

// Settings returns the settings as currently edited.
func (m SettingsPane) Settings() *entity.Settings {
	return &entity.Settings{
		DefaultSearchEngine: strings.TrimSpace(m.searchEngine.Value()),
		Theme:               m.theme,
		DownloadPath:        strings.TrimSpace(m.downloadPath.Value()),
		Language:            m.language,
	}
}

// SetTheme re-styles the pane.
func (m *SettingsPane) SetTheme(theme *styles.Theme) {
	m.ui = theme
	styles.Restyle(&m.searchEngine, theme)
	styles.Restyle(&m.downloadPath, theme)
}

// Update implements tea.Model.
func (m SettingsPane) Update(msg tea.Msg) (SettingsPane, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case settingsSavedMsg:
		m.saving = false
		m.err = msg.err
		return m, nil
	}
	return m, nil
}

func (m SettingsPane) handleKeyMsg(msg tea.KeyMsg) (SettingsPane, tea.Cmd) {
	if m.saving {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Save):
		m.saving = true
		m.err = nil
		return m, m.save(m.Settings())
	case key.Matches(msg, m.keys.Cancel):
		return m, func() tea.Msg { return closePaneMsg{} }
	case key.Matches(msg, m.keys.Next):
		m.setFocus((m.focus + 1) % fieldCount)
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		return m, nil
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldSearchEngine:
		m.searchEngine, cmd = m.searchEngine.Update(msg)
	case fieldDownloadPath:
		m.downloadPath, cmd = m.downloadPath.Update(msg)
	case fieldTheme:
		if key.Matches(msg, m.keys.Cycle) {
			m.theme = cycle(themeChoices, m.theme, msg.Type == tea.KeyLeft)
		}
	case fieldLanguage:
		if key.Matches(msg, m.keys.Cycle) {
			m.language = cycle(languageChoices, m.language, msg.Type == tea.KeyLeft)
		}
	}
	return m, cmd
}

// save returns a command that persists settings. Observers run only after
// the file has been written.
func (m SettingsPane) save(settings *entity.Settings) tea.Cmd {
	ctx, settingsUC := m.ctx, m.settingsUC
	return func() tea.Msg {
		if err := settingsUC.Save(ctx, settings); err != nil {
			return settingsSavedMsg{err: err}
		}
		return settingsSavedMsg{settings: settings}
	}
}

func (m *SettingsPane) setFocus(field settingsField) {
	m.focus = field
	m.searchEngine.Blur()
	m.downloadPath.Blur()
	switch field {
	case fieldSearchEngine:
		m.searchEngine.Focus()
	case fieldDownloadPath:
		m.downloadPath.Focus()
	}
}

func cycle[T comparable](choices []T, current T, back bool) T {
	for i, c := range choices {
		if c == current {
			step := 1
			if back {
				step = len(choices) - 1
			}
			return choices[(i+step)%len(choices)]
		}
	}
	return choices[0]
}

// View implements tea.Model.
func (m SettingsPane) View() string {
	t := m.ui
	tr := m.translator

	row := func(field settingsField, label, value string) string {
		labelStyle := t.Subtle
		cursor := "  "
		if m.focus == field {
			labelStyle = t.Highlight
			cursor = "▸ "
		}
		return lipgloss.JoinHorizontal(lipgloss.Left,
			t.Highlight.Render(cursor),
			labelStyle.Width(24).Render(tr.T(label)),
			value,
		)
	}
	selector := func(field settingsField, value string) string {
		if m.focus == field {
			return t.Badge.Render("◂ " + value + " ▸")
		}
		return t.BadgeMuted.Render(value)
	}

	rows := []string{
		t.BoxHeader.Render(tr.T(i18n.MsgSettings)),
		row(fieldSearchEngine, i18n.MsgSearchEngine, m.searchEngine.View()),
		row(fieldTheme, i18n.MsgTheme, selector(fieldTheme, tr.ThemeName(m.theme))),
		row(fieldDownloadPath, i18n.MsgDownloadPath, m.downloadPath.View()),
		row(fieldLanguage, i18n.MsgLanguage, selector(fieldLanguage, i18n.LanguageName(m.language))),
		"",
		t.Subtle.Render(styles.IconConfig + " " + tr.T(i18n.MsgSave) + ": enter"),
	}
	if m.err != nil {
		rows = append(rows, t.ErrorStyle.Render(tr.T(i18n.MsgError)+": "+m.err.Error()))
	}

	return t.Box.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// Package model provides the Bubble Tea models of the browser shell.
package model

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/fastbrowser/internal/application/usecase"
	"github.com/bnema/fastbrowser/internal/cli/styles"
	"github.com/bnema/fastbrowser/internal/domain/entity"
	"github.com/bnema/fastbrowser/internal/domain/url"
	"github.com/bnema/fastbrowser/internal/i18n"
	"github.com/bnema/fastbrowser/internal/logging"
)

// ShellDeps holds the use cases driven by the shell.
type ShellDeps struct {
	Tabs       *usecase.ManageTabsUseCase
	Navigate   *usecase.NavigateUseCase
	History    *usecase.ManageHistoryUseCase
	Settings   *usecase.ManageSettingsUseCase
	Snapshot   *usecase.SnapshotSessionUseCase
	Translator *i18n.Translator
}

// SettingsAppliedMsg tells the shell that settings changed outside of its
// settings pane, e.g. config.json was edited by hand.
type SettingsAppliedMsg struct {
	Settings *entity.Settings
}

// shutdownDoneMsg is sent once the keep-session answer has been acted on.
type shutdownDoneMsg struct {
	err error
}

// ShellModel is the browser window: tab bar, omnibox, page area and the
// history and settings panes.
type ShellModel struct {
	// UI components
	urlBar  textinput.Model
	keys    styles.ShellKeyMap
	confirm *styles.ConfirmModel

	history  *HistoryPane
	settings *SettingsPane

	// State
	tabs         *entity.TabList
	status       string
	err          error
	shuttingDown bool
	shutdownErr  error
	width        int
	height       int

	// Dependencies
	ctx   context.Context
	deps  ShellDeps
	theme *styles.Theme
}

// NewShellModel creates the shell around an already populated tab list.
// notice is shown in the status line until the next action.
func NewShellModel(ctx context.Context, deps ShellDeps, tabs *entity.TabList, notice string) ShellModel {
	ctx = logging.WithComponent(ctx, "shell")
	logging.FromContext(ctx).Debug().Int("tabs", tabs.Count()).Msg("creating shell model")

	theme := styles.NewTheme(deps.Settings.Current().Theme)
	m := ShellModel{
		urlBar: styles.NewURLInput(theme, deps.Translator.T(i18n.MsgAppTitle)),
		keys:   styles.DefaultShellKeyMap(),
		tabs:   tabs,
		status: notice,
		ctx:    ctx,
		deps:   deps,
		theme:  theme,
		width:  80,
		height: 24,
	}
	m.syncURLBar()
	return m
}

// Init implements tea.Model.
func (m ShellModel) Init() tea.Cmd {
	return textinput.Blink
}

// Tabs returns the shell's tab list.
func (m ShellModel) Tabs() *entity.TabList {
	return m.tabs
}

// ShutdownErr returns the error of the final snapshot write or discard, if any.
func (m ShellModel) ShutdownErr() error {
	return m.shutdownErr
}

// Update implements tea.Model.
func (m ShellModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		if _, ok := msg.(tea.KeyMsg); ok {
			return m.handleKeepTabsModal(msg)
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case shutdownDoneMsg:
		return m.handleShutdownDone(msg)
	case SettingsAppliedMsg:
		m.applySettings(msg.Settings)
		return m, nil
	case settingsSavedMsg:
		return m.handleSettingsSaved(msg)
	case openURLMsg:
		return m.handleOpenURL(msg)
	case closePaneMsg:
		return m.closeActive()

	case historyLoadedMsg, historyDeletedMsg:
		if m.history != nil {
			pane, cmd := m.history.Update(msg)
			m.history = &pane
			return m, cmd
		}
	}

	return m, nil
}

func (m ShellModel) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.urlBar.Width = msg.Width - 6
	if m.history != nil {
		m.history.SetSize(msg.Width, m.paneHeight())
	}
	return m, nil
}

func (m ShellModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.shuttingDown {
		return m, nil
	}
	if updated, cmd, handled := m.handleGlobalKeys(msg); handled {
		return updated, cmd
	}

	switch m.activeContent().(type) {
	case entity.HistoryPaneContent:
		if m.history != nil {
			pane, cmd := m.history.Update(msg)
			m.history = &pane
			return m, cmd
		}
	case entity.SettingsPaneContent:
		if m.settings != nil {
			pane, cmd := m.settings.Update(msg)
			m.settings = &pane
			return m, cmd
		}
	default:
		return m.handleOmniboxKey(msg)
	}
	return m, nil
}

func (m ShellModel) handleGlobalKeys(msg tea.KeyMsg) (ShellModel, tea.Cmd, bool) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		confirm := styles.NewConfirm(m.theme,
			m.t(i18n.MsgKeepTabsTitle), m.t(i18n.MsgKeepTabsPrompt),
			m.t(i18n.MsgYes), m.t(i18n.MsgNo))
		m.confirm = &confirm
		return m, nil, true
	case key.Matches(msg, m.keys.NewTab):
		updated, cmd := m.openTab("")
		return updated, cmd, true
	case key.Matches(msg, m.keys.CloseTab):
		updated, cmd := m.closeActive()
		return updated.(ShellModel), cmd, true
	case key.Matches(msg, m.keys.NextTab):
		m.tabs.Activate(m.tabs.ActiveIndex() + 1)
		m.syncURLBar()
		return m, nil, true
	case key.Matches(msg, m.keys.PrevTab):
		m.tabs.Activate(m.tabs.ActiveIndex() - 1)
		m.syncURLBar()
		return m, nil, true
	case key.Matches(msg, m.keys.Translate):
		return m.translateActive(), nil, true
	case key.Matches(msg, m.keys.History):
		updated, cmd := m.openHistory()
		return updated, cmd, true
	case key.Matches(msg, m.keys.Settings):
		return m.openSettings(), nil, true
	default:
		return m, nil, false
	}
}

func (m ShellModel) handleOmniboxKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Go) {
		return m.navigateActive(m.urlBar.Value()), nil
	}
	var cmd tea.Cmd
	m.urlBar, cmd = m.urlBar.Update(msg)
	return m, cmd
}

func (m ShellModel) handleKeepTabsModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	confirm, cmd := m.confirm.Update(msg)
	m.confirm = &confirm
	if !m.confirm.Done() {
		return m, cmd
	}

	keep := m.confirm.Result()
	m.confirm = nil
	m.shuttingDown = true
	return m, m.shutdown(keep)
}

// shutdown acts on the keep-session answer. The program quits only after
// the snapshot has been written or discarded.
func (m ShellModel) shutdown(keep bool) tea.Cmd {
	ctx, tabs, snapshotUC := m.ctx, m.tabs, m.deps.Snapshot
	return func() tea.Msg {
		err := snapshotUC.Shutdown(ctx, usecase.ShutdownInput{Keep: keep, TabList: tabs})
		return shutdownDoneMsg{err: err}
	}
}

func (m ShellModel) handleShutdownDone(msg shutdownDoneMsg) (tea.Model, tea.Cmd) {
	m.shutdownErr = msg.err
	return m, tea.Quit
}

func (m ShellModel) openTab(target string) (ShellModel, tea.Cmd) {
	out, err := m.deps.Tabs.Open(m.ctx, usecase.OpenTabInput{
		TabList:             m.tabs,
		URL:                 target,
		DefaultSearchEngine: m.deps.Settings.Current().DefaultSearchEngine,
	})
	if err != nil {
		m.setError(err)
		return m, nil
	}
	m.setStatus("")
	logging.FromContext(m.ctx).Debug().Str("tab_id", string(out.Tab.ID)).Msg("tab activated")
	m.syncURLBar()
	m.urlBar.Focus()
	return m, textinput.Blink
}

func (m ShellModel) handleOpenURL(msg openURLMsg) (tea.Model, tea.Cmd) {
	return m.openTab(msg.url)
}

func (m ShellModel) closeActive() (tea.Model, tea.Cmd) {
	active := m.tabs.ActiveTab()
	if active == nil {
		return m, nil
	}
	closed, err := m.deps.Tabs.Close(m.ctx, m.tabs, active.ID)
	if err != nil {
		m.setError(err)
		return m, nil
	}
	if closed {
		switch active.Content.(type) {
		case entity.HistoryPaneContent:
			m.history = nil
		case entity.SettingsPaneContent:
			m.settings = nil
		}
	}
	m.syncURLBar()
	return m, nil
}

func (m ShellModel) navigateActive(input string) ShellModel {
	out, err := m.deps.Navigate.Navigate(m.ctx, usecase.NavigateInput{
		Tab:          m.tabs.ActiveTab(),
		Input:        input,
		SearchEngine: m.deps.Settings.Current().DefaultSearchEngine,
	})
	if err != nil {
		if !errors.Is(err, usecase.ErrNotBrowsing) {
			m.setError(err)
		}
		return m
	}
	m.setStatus("")
	m.urlBar.SetValue(out.URL)
	return m
}

func (m ShellModel) translateActive() ShellModel {
	out, err := m.deps.Navigate.Translate(m.ctx, m.tabs.ActiveTab(), m.deps.Settings.Current().Language)
	if err != nil {
		if !errors.Is(err, usecase.ErrNotBrowsing) {
			m.setError(err)
		}
		return m
	}
	m.setStatus("")
	m.urlBar.SetValue(out.URL)
	return m
}

func (m ShellModel) openHistory() (ShellModel, tea.Cmd) {
	if _, err := m.deps.Tabs.OpenPane(m.ctx, m.tabs, entity.HistoryPaneContent{}); err != nil {
		m.setError(err)
		return m, nil
	}
	m.urlBar.Blur()
	if m.history == nil {
		pane := NewHistoryPane(m.ctx, m.theme, m.deps.History, m.deps.Translator)
		pane.SetSize(m.width, m.paneHeight())
		m.history = &pane
		return m, pane.Init()
	}
	return m, m.history.Reload()
}

func (m ShellModel) openSettings() ShellModel {
	if _, err := m.deps.Tabs.OpenPane(m.ctx, m.tabs, entity.SettingsPaneContent{}); err != nil {
		m.setError(err)
		return m
	}
	m.urlBar.Blur()
	if m.settings == nil {
		pane := NewSettingsPane(m.ctx, m.theme, m.deps.Settings, m.deps.Translator)
		m.settings = &pane
	}
	return m
}

func (m ShellModel) handleSettingsSaved(msg settingsSavedMsg) (tea.Model, tea.Cmd) {
	if m.settings != nil {
		pane, _ := m.settings.Update(msg)
		m.settings = &pane
	}
	if msg.err != nil {
		m.setError(msg.err)
		return m, nil
	}
	m.applySettings(msg.settings)
	m.setStatus(m.t(i18n.MsgSettingsSaved))
	return m, nil
}

// applySettings re-themes the shell. The translator follows the settings on
// its own as a settings observer.
func (m *ShellModel) applySettings(settings *entity.Settings) {
	if settings == nil {
		return
	}
	if settings.Theme != m.theme.Name {
		m.theme = styles.NewTheme(settings.Theme)
		styles.Restyle(&m.urlBar, m.theme)
		if m.history != nil {
			m.history.SetTheme(m.theme)
		}
		if m.settings != nil {
			m.settings.SetTheme(m.theme)
		}
		logging.FromContext(m.ctx).Info().Str("theme", string(settings.Theme)).Msg("Theme applied")
	}
	m.urlBar.Placeholder = m.t(i18n.MsgAppTitle)
}

func (m ShellModel) activeContent() entity.TabContent {
	if active := m.tabs.ActiveTab(); active != nil {
		return active.Content
	}
	return nil
}

// syncURLBar shows the active tab's URL in the omnibox.
func (m *ShellModel) syncURLBar() {
	active := m.tabs.ActiveTab()
	if _, ok := active.Browsing(); !ok {
		m.urlBar.SetValue("")
		m.urlBar.Blur()
		return
	}
	m.urlBar.SetValue(active.URL())
	m.urlBar.CursorEnd()
	m.urlBar.Focus()
}

func (m *ShellModel) setStatus(status string) {
	m.err = nil
	m.status = status
}

func (m *ShellModel) setError(err error) {
	logging.FromContext(m.ctx).Error().Err(err).Msg("shell action failed")
	m.err = err
	m.status = m.t(i18n.MsgError) + ": " + err.Error()
}

func (m ShellModel) t(key string, args ...any) string {
	return m.deps.Translator.T(key, args...)
}

func (m ShellModel) paneHeight() int {
	const chrome = 8 // tab bar, omnibox, status, help
	h := m.height - chrome
	if h < 5 {
		h = 5
	}
	return h
}

// tabLabel returns the translated tab bar label of a tab.
func (m ShellModel) tabLabel(tab *entity.Tab) string {
	switch c := tab.Content.(type) {
	case entity.HistoryPaneContent:
		return m.t(i18n.MsgHistory)
	case entity.SettingsPaneContent:
		return m.t(i18n.MsgSettings)
	case *entity.BrowsingContent:
		if c.Title != "" {
			return c.Title
		}
		if domain := url.ExtractDomain(c.URL); domain != "" {
			return domain
		}
		if c.URL != "" {
			return c.URL
		}
	}
	return m.t(i18n.MsgNewTab)
}

// View implements tea.Model.
func (m ShellModel) View() string {
	labels := make([]string, 0, m.tabs.Count())
	for _, tab := range m.tabs.Tabs {
		labels = append(labels, m.tabLabel(tab))
	}
	tabBar := styles.NewTabs(m.theme, labels...)
	tabBar.SetActive(m.tabs.ActiveIndex())
	tabBar.Width = m.width

	var body, help string
	switch m.activeContent().(type) {
	case entity.HistoryPaneContent:
		if m.history != nil {
			body = m.history.View()
		}
		help = m.t(i18n.MsgHelpHistory)
	case entity.SettingsPaneContent:
		if m.settings != nil {
			body = m.settings.View()
		}
		help = m.t(i18n.MsgHelpSettings)
	default:
		body = m.pageView()
		help = m.t(i18n.MsgHelpNavigate)
	}

	if m.confirm != nil {
		body = lipgloss.Place(m.width, m.paneHeight(), lipgloss.Center, lipgloss.Center, m.confirm.View())
	}

	status := m.theme.Subtle.Render(m.t(i18n.MsgTabsCount, m.tabs.Count()))
	if m.status != "" {
		style := m.theme.SuccessStyle
		if m.err != nil {
			style = m.theme.ErrorStyle
		}
		status = lipgloss.JoinHorizontal(lipgloss.Left, status, "  ", style.Render(m.status))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		tabBar.View(),
		m.theme.InputBox(m.urlBar.View(), m.urlBar.Focused()),
		body,
		status,
		m.theme.Subtle.Render(help),
	)
}

// pageView stands in for the rendered page of a browsing tab.
func (m ShellModel) pageView() string {
	lines := []string{m.theme.Subtle.Render(m.t(i18n.MsgNewTab))}
	if active := m.tabs.ActiveTab(); active != nil {
		lines = []string{
			m.theme.Title.Render(styles.IconGlobe + " " + m.tabLabel(active)),
			m.theme.Subtle.Render(active.URL()),
		}
	}
	width := m.width - 4
	if width < 20 {
		width = 20
	}
	return m.theme.Page.Width(width).Height(m.paneHeight() - 2).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

package model

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
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

// historyLoadedMsg is sent when history entries are loaded.
type historyLoadedMsg struct {
	query   string
	entries []entity.HistoryEntry
	err     error
}

// historyDeletedMsg is sent when an entry is deleted.
type historyDeletedMsg struct {
	url string
	err error
}

// openURLMsg asks the shell to open url in a new tab.
type openURLMsg struct {
	url string
}

// closePaneMsg asks the shell to close the active pane.
type closePaneMsg struct{}

// HistoryPane is the Bubble Tea model of the history browser.
type HistoryPane struct {
	// UI components
	list    list.Model
	filter  textinput.Model
	keys    styles.HistoryKeyMap
	confirm *styles.ConfirmModel

	// State
	entries    []entity.HistoryEntry
	pending    string // URL awaiting delete confirmation
	filterMode bool
	width      int
	height     int
	err        error

	// Dependencies
	ctx        context.Context
	historyUC  *usecase.ManageHistoryUseCase
	translator *i18n.Translator
	theme      *styles.Theme
}

// NewHistoryPane creates a new history browser model.
func NewHistoryPane(ctx context.Context, theme *styles.Theme, historyUC *usecase.ManageHistoryUseCase, translator *i18n.Translator) HistoryPane {
	ctx = logging.WithComponent(ctx, "history-pane")
	logging.FromContext(ctx).Debug().Msg("creating history pane")

	return HistoryPane{
		list:       styles.NewHistoryList(theme, nil, 80, 16),
		filter:     styles.NewFilterInput(theme, translator.T(i18n.MsgFilter)),
		keys:       styles.DefaultHistoryKeyMap(),
		ctx:        ctx,
		historyUC:  historyUC,
		translator: translator,
		theme:      theme,
		width:      80,
		height:     16,
	}
}

// Init implements tea.Model.
func (m HistoryPane) Init() tea.Cmd {
	return m.Reload()
}

// Reload re-reads the ledger with the current filter.
func (m HistoryPane) Reload() tea.Cmd {
	return m.loadHistory(m.filter.Value())
}

// loadHistory returns a command that searches the ledger for query.
func (m HistoryPane) loadHistory(query string) tea.Cmd {
	ctx, historyUC := m.ctx, m.historyUC
	return func() tea.Msg {
		entries, err := historyUC.Search(ctx, query)
		if err != nil {
			logging.FromContext(ctx).Error().Err(err).Msg("failed to load history")
			return historyLoadedMsg{query: query, err: err}
		}
		logging.FromContext(ctx).Debug().Int("count", len(entries)).Str("query", query).Msg("loaded history entries")
		return historyLoadedMsg{query: query, entries: entries}
	}
}

// deleteEntry returns a command that removes url from the ledger.
func (m HistoryPane) deleteEntry(target string) tea.Cmd {
	ctx, historyUC := m.ctx, m.historyUC
	return func() tea.Msg {
		return historyDeletedMsg{url: target, err: historyUC.RemoveVisit(ctx, target)}
	}
}

// SetSize resizes the list.
func (m *HistoryPane) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.updateList()
}

// SetTheme re-styles the pane.
func (m *HistoryPane) SetTheme(theme *styles.Theme) {
	m.theme = theme
	styles.Restyle(&m.filter, theme)
	m.updateList()
}

// Entries returns the entries currently listed.
func (m HistoryPane) Entries() []entity.HistoryEntry {
	return m.entries
}

// Update implements tea.Model.
func (m HistoryPane) Update(msg tea.Msg) (HistoryPane, tea.Cmd) {
	if m.confirm != nil {
		if _, ok := msg.(tea.KeyMsg); ok {
			return m.handleConfirmModal(msg)
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case historyLoadedMsg:
		return m.handleHistoryLoaded(msg)
	case historyDeletedMsg:
		return m.handleHistoryDeleted(msg)
	}
	return m, nil
}

func (m HistoryPane) handleConfirmModal(msg tea.Msg) (HistoryPane, tea.Cmd) {
	confirm, cmd := m.confirm.Update(msg)
	m.confirm = &confirm
	if m.confirm.Done() {
		if m.confirm.Result() {
			cmd = m.deleteEntry(m.pending)
		}
		m.confirm = nil
		m.pending = ""
	}
	return m, cmd
}

func (m HistoryPane) handleKeyMsg(msg tea.KeyMsg) (HistoryPane, tea.Cmd) {
	if m.filterMode {
		return m.handleFilterKey(msg)
	}
	return m.handleNormalKey(msg)
}

// handleFilterKey edits the filter. The list is re-searched on every change.
func (m HistoryPane) handleFilterKey(msg tea.KeyMsg) (HistoryPane, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc, tea.KeyEnter:
		m.filterMode = false
		m.filter.Blur()
		return m, nil
	}

	before := m.filter.Value()
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != before {
		return m, tea.Batch(cmd, m.loadHistory(m.filter.Value()))
	}
	return m, cmd
}

func (m HistoryPane) handleNormalKey(msg tea.KeyMsg) (HistoryPane, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Filter):
		m.filterMode = true
		m.filter.Focus()
		return m, textinput.Blink
	case key.Matches(msg, m.keys.Back):
		if m.filter.Value() != "" {
			m.filter.SetValue("")
			return m, m.loadHistory("")
		}
		return m, func() tea.Msg { return closePaneMsg{} }
	case key.Matches(msg, m.keys.Open):
		if hi, ok := m.selected(); ok {
			target := hi.URL
			return m, func() tea.Msg { return openURLMsg{url: target} }
		}
		return m, nil
	case key.Matches(msg, m.keys.Delete):
		if hi, ok := m.selected(); ok {
			confirm := styles.NewConfirm(m.theme,
				m.translator.T(i18n.MsgDeleteTitle),
				m.translator.T(i18n.MsgDeletePrompt, hi.URL),
				m.translator.T(i18n.MsgYes), m.translator.T(i18n.MsgNo))
			m.confirm = &confirm
			m.pending = hi.URL
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m HistoryPane) selected() (styles.HistoryItem, bool) {
	item := m.list.SelectedItem()
	if item == nil {
		return styles.HistoryItem{}, false
	}
	hi, ok := item.(styles.HistoryItem)
	return hi, ok
}

func (m HistoryPane) handleHistoryLoaded(msg historyLoadedMsg) (HistoryPane, tea.Cmd) {
	if msg.query != m.filter.Value() {
		return m, nil // superseded by a newer search
	}
	if msg.err != nil {
		m.err = msg.err
		return m, nil
	}
	m.err = nil
	m.entries = msg.entries
	m.updateList()
	return m, nil
}

func (m HistoryPane) handleHistoryDeleted(msg historyDeletedMsg) (HistoryPane, tea.Cmd) {
	if msg.err != nil {
		m.err = msg.err
		return m, nil
	}
	logging.FromContext(m.ctx).Debug().Str("url", msg.url).Msg("history entry deleted")
	return m, m.Reload()
}

// updateList rebuilds the list from the loaded entries, newest first.
func (m *HistoryPane) updateList() {
	items := make([]styles.HistoryItem, 0, len(m.entries))
	for i := len(m.entries) - 1; i >= 0; i-- {
		e := m.entries[i]
		items = append(items, styles.HistoryItem{
			URL:       e.URL,
			Domain:    url.ExtractDomain(e.URL),
			Timestamp: e.Timestamp,
			VisitedAt: e.VisitedAt(),
		})
	}

	const filterHeight = 3
	listHeight := m.height - filterHeight
	if listHeight < 4 {
		listHeight = 4
	}

	index := m.list.Index()
	m.list = styles.NewHistoryList(m.theme, items, m.width, listHeight)
	if index < len(items) {
		m.list.Select(index)
	}
}

// View implements tea.Model.
func (m HistoryPane) View() string {
	if m.confirm != nil {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.confirm.View())
	}

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		m.theme.Title.Render(m.translator.T(i18n.MsgHistory)),
		"  ",
		m.theme.MutedBadge(m.translator.T(i18n.MsgEntriesCount, len(m.entries))),
	)
	filter := m.theme.InputBox(m.filter.View(), m.filterMode)

	var body string
	switch {
	case m.err != nil:
		body = m.theme.ErrorStyle.Render(m.translator.T(i18n.MsgError) + ": " + m.err.Error())
	case len(m.entries) == 0:
		body = m.theme.Subtle.Render(m.translator.T(i18n.MsgHistoryEmpty))
	default:
		body = m.list.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, filter, body)
}

package styles

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	cursorEmpty    = "  "
	cursorSelected = "▸ "
)

// HistoryItem represents a history entry for the list.
type HistoryItem struct {
	URL       string
	Domain    string
	Timestamp string
	VisitedAt time.Time
}

// FilterValue implements list.Item.
func (i HistoryItem) FilterValue() string {
	return i.URL
}

// HistoryDelegate renders history items with theme styling.
type HistoryDelegate struct {
	Theme *Theme
}

// Height returns the height of each item.
func (d HistoryDelegate) Height() int { return 2 }

// Spacing returns the spacing between items.
func (d HistoryDelegate) Spacing() int { return 0 }

// Update handles item-level events.
func (d HistoryDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

// Render renders a single list item.
func (d HistoryDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	hi, ok := item.(HistoryItem)
	if !ok {
		return
	}

	t := d.Theme
	isSelected := index == m.Index()
	const maxURLLength = 70

	cursor := cursorEmpty
	urlStyle := t.ListItemTitle
	if isSelected {
		cursor = cursorSelected
		urlStyle = urlStyle.Foreground(t.Accent).Bold(true)
	}

	line1 := lipgloss.JoinHorizontal(
		lipgloss.Left,
		t.Highlight.Render(cursor),
		urlStyle.Render(Truncate(hi.URL, maxURLLength)),
	)

	meta := []string{t.ListItemDesc.Render(hi.Timestamp)}
	if !hi.VisitedAt.IsZero() {
		meta = append(meta, " ", t.MutedBadge(RelativeTime(hi.VisitedAt)))
	}
	if hi.Domain != "" {
		meta = append(meta, " ", t.AccentBadge(hi.Domain))
	}
	line2 := lipgloss.JoinHorizontal(
		lipgloss.Left,
		append([]string{strings.Repeat(" ", len(cursorEmpty))}, meta...)...,
	)

	_, _ = fmt.Fprintf(w, "%s\n%s", line1, line2)
}

// NewHistoryList creates a themed list for history items.
func NewHistoryList(theme *Theme, items []HistoryItem, width, height int) list.Model {
	l := list.New(HistoryListItems(items), HistoryDelegate{Theme: theme}, width, height)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowFilter(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(true)
	l.DisableQuitKeybindings()

	l.Styles.PaginationStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	l.Styles.ActivePaginationDot = lipgloss.NewStyle().Foreground(theme.Accent)
	l.Styles.InactivePaginationDot = lipgloss.NewStyle().Foreground(theme.Muted)

	return l
}

// HistoryListItems converts history items to list items.
func HistoryListItems(items []HistoryItem) []list.Item {
	listItems := make([]list.Item, len(items))
	for i, item := range items {
		listItems[i] = item
	}
	return listItems
}

package styles

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmModel is a yes/no confirmation dialog. It starts on "No".
type ConfirmModel struct {
	Title     string
	Message   string
	YesLabel  string
	NoLabel   string
	Yes       bool // Current selection
	Confirmed bool // User pressed enter
	Canceled  bool // User pressed escape
	theme     *Theme
}

// ConfirmKeyMap defines keybindings for the confirm dialog.
type ConfirmKeyMap struct {
	Yes     key.Binding
	No      key.Binding
	Left    key.Binding
	Right   key.Binding
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultConfirmKeyMap returns the default keybindings.
// "д"/"н" mirror y/n on a Russian layout.
func DefaultConfirmKeyMap() ConfirmKeyMap {
	return ConfirmKeyMap{
		Yes:     key.NewBinding(key.WithKeys("y", "д"), key.WithHelp("y", "yes")),
		No:      key.NewBinding(key.WithKeys("n", "н"), key.WithHelp("n", "no")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "no")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "yes")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// NewConfirm creates a new confirmation dialog.
func NewConfirm(theme *Theme, title, message, yesLabel, noLabel string) ConfirmModel {
	return ConfirmModel{
		Title:    title,
		Message:  message,
		YesLabel: yesLabel,
		NoLabel:  noLabel,
		Yes:      false, // Default to "No"
		theme:    theme,
	}
}

// Update handles a key press.
func (m ConfirmModel) Update(msg tea.Msg) (ConfirmModel, tea.Cmd) {
	keys := DefaultConfirmKeyMap()

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Yes):
			m.Yes = true
			m.Confirmed = true
		case key.Matches(msg, keys.No):
			m.Yes = false
			m.Confirmed = true
		case key.Matches(msg, keys.Left):
			m.Yes = false
		case key.Matches(msg, keys.Right):
			m.Yes = true
		case key.Matches(msg, keys.Confirm):
			m.Confirmed = true
		case key.Matches(msg, keys.Cancel):
			m.Canceled = true
		}
	}

	return m, nil
}

// View renders the dialog.
func (m ConfirmModel) View() string {
	t := m.theme

	yesStyle := t.InactiveTab
	noStyle := t.InactiveTab
	if m.Yes {
		yesStyle = t.ActiveTab
	} else {
		noStyle = t.ActiveTab
	}

	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		noStyle.Render(" "+m.NoLabel+" "),
		"  ",
		yesStyle.Render(" "+m.YesLabel+" "),
	)

	rows := make([]string, 0, 4)
	if m.Title != "" {
		rows = append(rows, t.BoxHeader.Render(m.Title))
	}
	rows = append(rows, t.Normal.Render(m.Message), "", buttons)

	return t.Box.Render(lipgloss.JoinVertical(lipgloss.Center, rows...))
}

// Done returns true if the dialog is complete.
func (m ConfirmModel) Done() bool {
	return m.Confirmed || m.Canceled
}

// Result returns true if user confirmed "Yes". Escape counts as "No".
func (m ConfirmModel) Result() bool {
	return m.Confirmed && m.Yes
}

package styles

import (
	"github.com/charmbracelet/bubbles/key"
)

// ShellKeyMap defines keybindings for the browser window.
type ShellKeyMap struct {
	Go        key.Binding
	NewTab    key.Binding
	CloseTab  key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding
	Translate key.Binding
	History   key.Binding
	Settings  key.Binding
	Quit      key.Binding
}

// DefaultShellKeyMap returns the default browser window keybindings.
func DefaultShellKeyMap() ShellKeyMap {
	return ShellKeyMap{
		Go: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "go"),
		),
		NewTab: key.NewBinding(
			key.WithKeys("ctrl+t"),
			key.WithHelp("C-t", "new tab"),
		),
		CloseTab: key.NewBinding(
			key.WithKeys("ctrl+w"),
			key.WithHelp("C-w", "close tab"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev tab"),
		),
		Translate: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("C-r", "translate"),
		),
		History: key.NewBinding(
			key.WithKeys("ctrl+h", "f2"),
			key.WithHelp("C-h", "history"),
		),
		Settings: key.NewBinding(
			key.WithKeys("ctrl+s", "f3"),
			key.WithHelp("C-s", "settings"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+q", "ctrl+c"),
			key.WithHelp("C-q", "quit"),
		),
	}
}

// HistoryKeyMap defines keybindings for the history pane.
type HistoryKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Open   key.Binding
	Delete key.Binding
	Filter key.Binding
	Back   key.Binding
}

// DefaultHistoryKeyMap returns the default history keybindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
	}
}

// SettingsKeyMap defines keybindings for the settings pane.
type SettingsKeyMap struct {
	Next   key.Binding
	Prev   key.Binding
	Cycle  key.Binding
	Save   key.Binding
	Cancel key.Binding
}

// DefaultSettingsKeyMap returns the default settings keybindings.
func DefaultSettingsKeyMap() SettingsKeyMap {
	return SettingsKeyMap{
		Next: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "prev field"),
		),
		Cycle: key.NewBinding(
			key.WithKeys("left", "right"),
			key.WithHelp("←/→", "change"),
		),
		Save: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

package styles

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
)

// NewStyledInput creates a themed text input.
func NewStyledInput(theme *Theme, placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	ti.TextStyle = lipgloss.NewStyle().Foreground(theme.Text)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.PromptStyle = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.Prompt = "/ "
	return ti
}

// NewFilterInput creates the history filter input.
func NewFilterInput(theme *Theme, placeholder string) textinput.Model {
	ti := NewStyledInput(theme, placeholder)
	ti.Prompt = "🔍 "
	ti.CharLimit = 256
	return ti
}

// NewURLInput creates the omnibox.
func NewURLInput(theme *Theme, placeholder string) textinput.Model {
	ti := NewStyledInput(theme, placeholder)
	ti.Prompt = "→ "
	ti.CharLimit = 2048
	return ti
}

// NewFieldInput creates a labelled settings field.
func NewFieldInput(theme *Theme, value string) textinput.Model {
	ti := NewStyledInput(theme, "")
	ti.Prompt = ""
	ti.CharLimit = 1024
	ti.SetValue(value)
	return ti
}

// Restyle re-applies theme colors to an existing input.
func Restyle(ti *textinput.Model, theme *Theme) {
	ti.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.Muted)
	ti.TextStyle = lipgloss.NewStyle().Foreground(theme.Text)
	ti.Cursor.Style = lipgloss.NewStyle().Foreground(theme.Accent)
	ti.PromptStyle = lipgloss.NewStyle().Foreground(theme.Accent)
}

// InputBox wraps a text input in a styled box.
func (t *Theme) InputBox(input string, focused bool) string {
	style := t.Input
	if focused {
		style = t.InputFocused
	}
	return style.Render(input)
}

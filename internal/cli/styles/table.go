package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// RenderTable renders rows as a bordered, non-interactive table for
// command output.
func (t *Theme) RenderTable(headers []string, rows [][]string) string {
	header := lipgloss.NewStyle().
		Foreground(t.Accent).
		Bold(true).
		Padding(0, 1)
	cell := lipgloss.NewStyle().
		Foreground(t.Text).
		Padding(0, 1)
	odd := cell.Foreground(t.Muted)

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(t.Border)).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header
			case row%2 == 1:
				return odd
			default:
				return cell
			}
		})

	return tbl.Render()
}

// Package static provides non-interactive terminal output components.
package static

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/raphi011/gx/internal/ui/styles"
)

// RenderTable creates a borderless table with aligned columns. The first
// column is highlighted. Returns "" when there are no rows.
func RenderTable(headers []string, rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	var output strings.Builder

	t := table.New().
		Headers(headers...).
		Rows(rows...).
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderHeader(false).
		BorderColumn(false).
		BorderRow(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().PaddingRight(2)
			switch {
			case row == table.HeaderRow:
				return style.Inherit(styles.Bold)
			case col == 0:
				return style.Inherit(styles.AccentStyle)
			default:
				return style
			}
		})

	output.WriteString(t.String())
	output.WriteString("\n")

	return output.String()
}

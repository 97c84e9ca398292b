package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"strummy/theme"
)

// renderPanel draws a rounded box with title set into its top border, body
// centered inside and footer on the line below. Fills width x height.
func renderPanel(th *theme.Theme, title, body, footer string, width, height int) string {
	innerW := max(width-2, 1)
	innerH := max(height-3, 1) // top border, bottom border, footer

	border := lipgloss.RoundedBorder()
	borderStyle := lipgloss.NewStyle().Foreground(th.Border())
	titleStyle := borderStyle.Bold(true)

	// ╭─ Title ──────╮
	label := " " + title + " "
	if lipgloss.Width(label) > innerW-1 {
		label = ""
	}
	fill := innerW - 1 - lipgloss.Width(label)
	top := borderStyle.Render(border.TopLeft+border.Top) +
		titleStyle.Render(label) +
		borderStyle.Render(strings.Repeat(border.Top, fill)+border.TopRight)

	content := lipgloss.Place(innerW, innerH, lipgloss.Center, lipgloss.Center, body)
	box := lipgloss.NewStyle().
		Border(border, false, true, true, true).
		BorderForeground(th.Border()).
		Render(content)

	footer = lipgloss.NewStyle().MaxWidth(width).Render(footer)

	return lipgloss.JoinVertical(lipgloss.Left, top, box, footer)
}

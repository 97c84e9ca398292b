package widgets

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// BeatLabel returns the count for slot i in eighth notes: 1 + 2 + 3 + ...
func BeatLabel(i int) string {
	if i%2 == 1 {
		return "+"
	}
	return strconv.Itoa(i/2 + 1)
}

// BeatLabels returns the ruler labels for n slots
func BeatLabels(n int) []string {
	labels := make([]string, n)
	for i := range labels {
		labels[i] = BeatLabel(i)
	}
	return labels
}

// RowStyles styles a slot row; Cursor applies to the highlighted slot
type RowStyles struct {
	Normal lipgloss.Style
	Cursor lipgloss.Style
}

// RenderSlotRows renders a ruler row over a cell row. Both rows share one
// column width so labels stay above their cells. cursor < 0 highlights nothing.
func RenderSlotRows(labels, cells []string, cursor int, st RowStyles) (ruler, row string) {
	width := 1
	for _, s := range labels {
		width = max(width, lipgloss.Width(s))
	}
	for _, s := range cells {
		width = max(width, lipgloss.Width(s))
	}

	return renderRow(labels, width, cursor, st), renderRow(cells, width, cursor, st)
}

func renderRow(items []string, width, cursor int, st RowStyles) string {
	var out strings.Builder
	for i, item := range items {
		if i > 0 {
			out.WriteString(" ")
		}
		style := st.Normal
		if i == cursor {
			style = st.Cursor
		}
		out.WriteString(style.Render(pad(item, width)))
	}
	return out.String()
}

func pad(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

// RenderKeyHelp formats key bindings in a friendly way
func RenderKeyHelp(sections []KeySection) string {
	var lines []string
	for _, sec := range sections {
		if sec.Title != "" {
			lines = append(lines, sec.Title)
		}
		for _, k := range sec.Keys {
			lines = append(lines, "  "+pad(k.Key, 12)+" "+k.Desc)
		}
	}
	return strings.Join(lines, "\n")
}

// KeySection groups related key bindings
type KeySection struct {
	Title string
	Keys  []KeyBinding
}

// KeyBinding is a single key and its description
type KeyBinding struct {
	Key  string
	Desc string
}

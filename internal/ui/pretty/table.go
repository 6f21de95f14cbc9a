package pretty

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const columnGap = 2

// Table is a simple column-aligned table.
type Table struct {
	Headers []string
	Rows    [][]string
}

// FormatTable renders t with a header rule. Column widths come from the widest
// cell as measured by lipgloss, so styled cells stay aligned.
func (s *Styles) FormatTable(t Table) string {
	if len(t.Headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.Headers))
	for col, header := range t.Headers {
		widths[col] = lipgloss.Width(header)
	}
	for _, row := range t.Rows {
		for col := range min(len(row), len(widths)) {
			widths[col] = max(widths[col], lipgloss.Width(row[col]))
		}
	}

	var builder strings.Builder

	headers := make([]string, len(t.Headers))
	for col, header := range t.Headers {
		headers[col] = s.TableHeader.Render(header)
	}
	writeRow(&builder, headers, widths)

	total := 0
	for _, w := range widths {
		total += w
	}
	total += columnGap * (len(widths) - 1)
	builder.WriteString(s.TableBorder.Render(strings.Repeat("─", total)) + "\n")

	for _, row := range t.Rows {
		writeRow(&builder, row, widths)
	}

	return builder.String()
}

func writeRow(builder *strings.Builder, cells []string, widths []int) {
	var line strings.Builder
	for col, width := range widths {
		cell := ""
		if col < len(cells) {
			cell = cells[col]
		}
		line.WriteString(cell)
		if col < len(widths)-1 {
			line.WriteString(strings.Repeat(" ", width-lipgloss.Width(cell)+columnGap))
		}
	}
	builder.WriteString(strings.TrimRight(line.String(), " ") + "\n")
}

package cli

import (
	"strings"
)

// table lays out rows in aligned columns for terminal output.
type table struct {
	headers []string
	rows    [][]string
}

func newTable(headers ...string) *table {
	return &table{headers: headers}
}

func (t *table) addRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// render pads every column to its widest cell, header included, and
// separates the header from the body with a dashed rule. Rows shorter
// than the header are padded with empty cells.
func (t *table) render() string {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	line := func(cells []string) string {
		parts := make([]string, len(widths))
		for i, w := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			parts[i] = cell + strings.Repeat(" ", w-len(cell))
		}
		return strings.TrimRight(strings.Join(parts, "  "), " ")
	}

	rule := make([]string, len(widths))
	for i, w := range widths {
		rule[i] = strings.Repeat("-", w)
	}

	var b strings.Builder
	b.WriteString(line(t.headers) + "\n")
	b.WriteString(strings.Join(rule, "  ") + "\n")
	for _, row := range t.rows {
		b.WriteString(line(row) + "\n")
	}
	return b.String()
}

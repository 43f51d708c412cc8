package console

import (
	"fmt"
	"strings"
)

// TableConfig describes a table for RenderTable.
type TableConfig struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// RenderTable renders a plain text table with column alignment. Output is
// stable regardless of terminal width, which keeps it usable in CI logs and
// in golden assertions.
func RenderTable(config TableConfig) string {
	var out strings.Builder

	if config.Title != "" {
		out.WriteString(config.Title)
		out.WriteString("\n\n")
	}

	if len(config.Headers) == 0 {
		return out.String()
	}

	widths := make([]int, len(config.Headers))
	for i, h := range config.Headers {
		widths[i] = len(h)
	}
	for _, row := range config.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	writeRow := func(cells []string) {
		for i, cell := range cells {
			if i >= len(widths) {
				break
			}
			if i > 0 {
				out.WriteString("  ")
			}
			fmt.Fprintf(&out, "%-*s", widths[i], cell)
		}
		out.WriteString("\n")
	}

	writeRow(config.Headers)

	separators := make([]string, len(config.Headers))
	for i := range separators {
		separators[i] = strings.Repeat("-", widths[i])
	}
	writeRow(separators)

	for _, row := range config.Rows {
		writeRow(row)
	}

	return out.String()
}

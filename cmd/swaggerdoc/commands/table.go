package commands

import (
	"fmt"
	"io"
)

// RenderSummaryTable renders a table of results.
// In quiet mode, headers are omitted and rows are tab-separated for piping.
// In normal mode, a fixed-width table with headers is rendered.
func RenderSummaryTable(w io.Writer, headers []string, rows [][]string, quiet bool) {
	if len(rows) == 0 {
		return
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	if !quiet {
		writeRow(w, headers, widths, "  ")
	}
	for _, row := range rows {
		if quiet {
			writeRow(w, row, nil, "\t")
			continue
		}
		writeRow(w, row, widths, "  ")
	}
}

// writeRow pads each cell to its width, when widths is non-nil, and
// separates cells with sep. Trailing padding is dropped.
func writeRow(w io.Writer, cells []string, widths []int, sep string) {
	for i, cell := range cells {
		if i > 0 {
			_, _ = fmt.Fprint(w, sep)
		}
		if widths != nil && i < len(cells)-1 {
			_, _ = fmt.Fprintf(w, "%-*s", widths[i], cell)
			continue
		}
		_, _ = fmt.Fprint(w, cell)
	}
	_, _ = fmt.Fprintln(w)
}

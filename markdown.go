package nicenumber

import (
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// WriteMarkdown writes the Frame as a GitHub-flavored Markdown table.
func (f *Frame) WriteMarkdown(w io.Writer) error {
	rows := make([][]string, f.rows)
	for r, row := range f.Rows() {
		cells := make([]string, len(row))
		for i, v := range row {
			cells[i] = cellString(v)
		}
		rows[r] = cells
	}

	// Column widths, minimum 3 so the separator row stays well-formed.
	widths := make([]int, len(f.columns))
	for i, name := range f.columns {
		widths[i] = runewidth.StringWidth(name)
	}
	for _, row := range rows {
		for i, cell := range row {
			if cw := runewidth.StringWidth(cell); cw > widths[i] {
				widths[i] = cw
			}
		}
	}
	for i := range widths {
		if widths[i] < 3 {
			widths[i] = 3
		}
	}

	if err := writeMarkdownRow(w, f.columns, widths); err != nil {
		return err
	}

	sep := make([]string, len(widths))
	for i, width := range widths {
		sep[i] = strings.Repeat("-", width)
	}
	if _, err := fmt.Fprintf(w, "| %s |\n", strings.Join(sep, " | ")); err != nil {
		return err
	}

	for _, row := range rows {
		if err := writeMarkdownRow(w, row, widths); err != nil {
			return err
		}
	}
	return nil
}

func writeMarkdownRow(w io.Writer, cells []string, widths []int) error {
	padded := make([]string, len(widths))
	for i, width := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		padded[i] = padCell(cell, width)
	}
	_, err := fmt.Fprintf(w, "| %s |\n", strings.Join(padded, " | "))
	return err
}

package ui

import (
	"fmt"
	"strings"
)

// TableColumn defines a column in a table
type TableColumn struct {
	Key      string
	Header   string
	MinWidth int
}

// TableBorder style for tables
type TableBorder int

const (
	// BorderNone separates columns with spaces and underlines headers with dashes
	BorderNone TableBorder = iota
	BorderUnicode
	BorderASCII
)

// ParseBorder maps a --border flag value to a TableBorder
func ParseBorder(name string) (TableBorder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "none":
		return BorderNone, nil
	case "unicode":
		return BorderUnicode, nil
	case "ascii":
		return BorderASCII, nil
	}
	return BorderNone, fmt.Errorf("unknown border style %q: want none, unicode or ascii", name)
}

// RenderTableOptions configures table rendering
type RenderTableOptions struct {
	Columns []TableColumn
	Rows    []map[string]string
	Border  TableBorder
	Gap     int // spaces between columns, BorderNone only
}

// Box drawing characters
type boxChars struct {
	tl, tr, bl, br  string // corners
	h, v            string // horizontal, vertical
	t, ml, m, mr, b string // tees and crosses
}

var (
	unicodeBox = boxChars{
		tl: "┌", tr: "┐", bl: "└", br: "┘",
		h: "─", v: "│",
		t: "┬", ml: "├", m: "┼", mr: "┤", b: "┴",
	}
	asciiBox = boxChars{
		tl: "+", tr: "+", bl: "+", br: "+",
		h: "-", v: "|",
		t: "+", ml: "+", m: "+", mr: "+", b: "+",
	}
)

// ColumnWidths returns the visible width of every column: the widest of its
// header, its cells and its MinWidth
func ColumnWidths(opts RenderTableOptions) []int {
	widths := make([]int, len(opts.Columns))
	for i, col := range opts.Columns {
		w := VisibleWidth(col.Header)
		for _, row := range opts.Rows {
			if cw := VisibleWidth(row[col.Key]); cw > w {
				w = cw
			}
		}
		if col.MinWidth > w {
			w = col.MinWidth
		}
		widths[i] = w
	}
	return widths
}

// RenderTable renders a formatted table
func RenderTable(opts RenderTableOptions) string {
	widths := ColumnWidths(opts)

	values := func(row map[string]string) []string {
		out := make([]string, len(opts.Columns))
		for i, col := range opts.Columns {
			out[i] = PadRight(row[col.Key], widths[i])
		}
		return out
	}

	headers := make(map[string]string, len(opts.Columns))
	for _, col := range opts.Columns {
		headers[col.Key] = col.Header
	}

	var lines []string

	if opts.Border == BorderNone {
		gap := opts.Gap
		if gap <= 0 {
			gap = 2
		}
		sep := spaces(gap)
		join := func(cells []string) string {
			return strings.TrimRight(strings.Join(cells, sep), " ")
		}

		lines = append(lines, join(values(headers)))
		rules := make([]string, len(widths))
		for i, w := range widths {
			rules[i] = strings.Repeat("-", w)
		}
		lines = append(lines, join(rules))
		for _, row := range opts.Rows {
			lines = append(lines, join(values(row)))
		}
		return strings.Join(lines, "\n") + "\n"
	}

	box := unicodeBox
	if opts.Border == BorderASCII {
		box = asciiBox
	}

	hLine := func(left, mid, right string) string {
		parts := make([]string, len(widths))
		for i, w := range widths {
			parts[i] = strings.Repeat(box.h, w+2)
		}
		return left + strings.Join(parts, mid) + right
	}

	renderRow := func(cells []string) string {
		for i := range cells {
			cells[i] = " " + cells[i] + " "
		}
		return box.v + strings.Join(cells, box.v) + box.v
	}

	lines = append(lines, hLine(box.tl, box.t, box.tr))
	lines = append(lines, renderRow(values(headers)))
	lines = append(lines, hLine(box.ml, box.m, box.mr))
	for _, row := range opts.Rows {
		lines = append(lines, renderRow(values(row)))
	}
	lines = append(lines, hLine(box.bl, box.b, box.br))

	return strings.Join(lines, "\n") + "\n"
}

package ui

import (
	"fmt"
	"io"

	"veneer/internal/palette"
)

// minLabelWidth keeps narrow palettes readable
const minLabelWidth = 8

// SummarySection is one titled group of key / hex pairs
type SummarySection struct {
	Title string
	Keys  []string
	Hex   map[string]string
}

// SummarySections lays out rp in display order
func SummarySections(rp *palette.ResolvedPalette) []SummarySection {
	raw := rp.Palette()
	var out []SummarySection
	for _, sec := range raw.Sections() {
		hex := make(map[string]string, len(sec.Keys))
		for _, key := range sec.Keys {
			ref, _ := raw.Lookup(sec.Base + "." + key)
			hex[key] = ref.Value
		}
		out = append(out, SummarySection{Title: sec.Title, Keys: sec.Keys, Hex: hex})
	}
	return out
}

// LabelWidth is the longest key across every section, at least minLabelWidth
func LabelWidth(sections []SummarySection) int {
	width := minLabelWidth
	for _, sec := range sections {
		for _, key := range sec.Keys {
			if w := VisibleWidth(key); w > width {
				width = w
			}
		}
	}
	return width
}

// PrintSummary writes the human readable palette overview: a header, then
// one key / swatch / hex table per non-empty section, all sharing one key
// column width.
func PrintSummary(w io.Writer, source string, rp *palette.ResolvedPalette, border TableBorder) {
	fmt.Fprintf(w, "%s %s (%s)\n", Bold("Palette:"), Heading("%s", rp.Meta.Name), source)
	if rp.Meta.Version != nil {
		fmt.Fprintf(w, "%s %s\n", Bold("Version:"), *rp.Meta.Version)
	}
	slug := "<none>"
	if rp.Meta.Slug != nil {
		slug = *rp.Meta.Slug
	}
	fmt.Fprintf(w, "%s %s\n", Bold("Slug:"), slug)
	fmt.Fprintln(w)

	sections := SummarySections(rp)
	width := LabelWidth(sections)

	columns := []TableColumn{
		{Key: "key", Header: "key", MinWidth: width},
		{Key: "swatch", Header: "swatch", MinWidth: len(swatchBlock)},
		{Key: "hex", Header: "hex"},
	}

	for _, sec := range sections {
		if len(sec.Keys) == 0 {
			continue
		}
		rows := make([]map[string]string, 0, len(sec.Keys))
		for _, key := range sec.Keys {
			hex := sec.Hex[key]
			rows = append(rows, map[string]string{
				"key":    key,
				"swatch": Swatch(hex),
				"hex":    hex,
			})
		}
		fmt.Fprintln(w, Heading("%s", sec.Title))
		fmt.Fprint(w, RenderTable(RenderTableOptions{Columns: columns, Rows: rows, Border: border}))
		fmt.Fprintln(w)
	}
}

package ui

import (
	"regexp"
	"unicode/utf8"
)

// ANSI escape code patterns
var (
	// SGR (Select Graphic Rendition) codes: ESC[...m, including the
	// 38;2;R;G;B and 48;2;R;G;B true-color forms swatches use
	ansiSGRPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

	// OSC-8 hyperlink codes: ESC]8;;...ESC\ or ESC]8;;ESC\
	osc8Pattern = regexp.MustCompile(`\x1b\]8;;[^\x1b]*\x1b\\|\x1b\]8;;\x1b\\`)
)

// StripAnsi removes all ANSI escape codes from a string
func StripAnsi(input string) string {
	// First remove OSC-8 hyperlinks
	result := osc8Pattern.ReplaceAllString(input, "")
	// Then remove SGR codes
	result = ansiSGRPattern.ReplaceAllString(result, "")
	return result
}

// VisibleWidth returns the display width of a string, ignoring ANSI codes
// This counts runes, not bytes, for proper Unicode support
func VisibleWidth(input string) int {
	stripped := StripAnsi(input)
	return utf8.RuneCountInString(stripped)
}

// PadRight pads a string to a minimum visible width (left-aligned content)
func PadRight(input string, width int) string {
	visible := VisibleWidth(input)
	if visible >= width {
		return input
	}
	return input + spaces(width-visible)
}

// spaces returns a string of n spaces
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}

package ui

import (
	"github.com/fatih/color"

	vcolor "veneer/internal/color"
)

const swatchBlock = "      "

func hexRGB(hex string) (r, g, b int, ok bool) {
	r8, g8, b8, ok := vcolor.HexToRGB(hex)
	return int(r8), int(g8), int(b8), ok
}

// swatchStyle paints the background with hex and picks white or black text
// by luminance. Swatches are the point of show, so they keep their escapes
// when stdout is not a terminal; only NO_COLOR turns them off. nil for
// malformed input.
func swatchStyle(hex string) *color.Color {
	r, g, b, ok := vcolor.HexToRGB(hex)
	if !ok {
		return nil
	}
	text := 0
	if vcolor.IsDark(r, g, b) {
		text = 255
	}
	style := color.RGB(text, text, text).AddBgRGB(int(r), int(g), int(b))
	if noColor {
		style.DisableColor()
	} else {
		style.EnableColor()
	}
	return style
}

// Swatch renders a six cell true-color block for hex, or hex itself when it
// cannot be parsed
func Swatch(hex string) string {
	style := swatchStyle(hex)
	if style == nil {
		return hex
	}
	return style.Sprint(swatchBlock)
}

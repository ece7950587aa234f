package ui

import (
	"os"
	"strings"

	"github.com/fatih/color"

	vcolor "veneer/internal/color"
)

// Theme provides styled color functions for consistent CLI output
// Respects NO_COLOR and FORCE_COLOR environment variables

var (
	// Check color support
	noColor    = os.Getenv("NO_COLOR") != ""
	forceColor = isForceColor()
)

func init() {
	if forceColor && !noColor {
		color.NoColor = false
	}
}

func isForceColor() bool {
	fc := strings.TrimSpace(os.Getenv("FORCE_COLOR"))
	return fc != "" && fc != "0"
}

// IsRich returns true if the terminal supports rich output (colors)
func IsRich() bool {
	if noColor && !forceColor {
		return false
	}
	return !color.NoColor
}

// hexStyle builds a true-color foreground style from a #RRGGBB literal
func hexStyle(hex string, attrs ...color.Attribute) *color.Color {
	r, g, b, ok := vcolor.HexToRGB(hex)
	if !ok {
		return color.New(attrs...)
	}
	return color.RGB(int(r), int(g), int(b)).Add(attrs...)
}

// AccentDim returns muted accent text
func AccentDim(format string, a ...interface{}) string {
	return hexStyle(CLI_PALETTE.AccentDim).Sprintf(format, a...)
}

// Info returns informational styled text
func Info(format string, a ...interface{}) string {
	return hexStyle(CLI_PALETTE.Info).Sprintf(format, a...)
}

// Success returns success-styled text
func Success(format string, a ...interface{}) string {
	return hexStyle(CLI_PALETTE.Success).Sprintf(format, a...)
}

// Warn returns warning-styled text
func Warn(format string, a ...interface{}) string {
	return hexStyle(CLI_PALETTE.Warn).Sprintf(format, a...)
}

// Error returns error-styled text
func Error(format string, a ...interface{}) string {
	return hexStyle(CLI_PALETTE.Error).Sprintf(format, a...)
}

// Muted returns secondary/hint text
func Muted(format string, a ...interface{}) string {
	return hexStyle(CLI_PALETTE.Muted).Sprintf(format, a...)
}

// Heading returns bold accent text for section headers
func Heading(format string, a ...interface{}) string {
	return hexStyle(CLI_PALETTE.Accent, color.Bold).Sprintf(format, a...)
}

// Bold returns bold text
func Bold(format string, a ...interface{}) string {
	return color.New(color.Bold).Sprintf(format, a...)
}

// Command returns command/code styled text
func Command(format string, a ...interface{}) string {
	return color.New(color.FgCyan, color.Bold).Sprintf(format, a...)
}

// Option returns option/flag styled text
func Option(format string, a ...interface{}) string {
	return hexStyle(CLI_PALETTE.Warn).Sprintf(format, a...)
}

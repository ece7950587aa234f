package ui

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
)

// Level gates which status lines are printed
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelQuiet
)

var (
	// Output receives every status line; stdout stays free for command output
	Output io.Writer = os.Stderr

	logMu    sync.Mutex
	logLevel = LevelInfo
	now      = time.Now
)

// SetLevel sets the minimum level printed
func SetLevel(l Level) {
	logMu.Lock()
	logLevel = l
	logMu.Unlock()
}

// ParseLevel maps a config level name to a Level
func ParseLevel(name string) Level {
	switch name {
	case "debug":
		return LevelDebug
	case "quiet":
		return LevelQuiet
	}
	return LevelInfo
}

// LogStatus displays a status message with appropriate styling
func LogStatus(category, message string) {
	logMu.Lock()
	level := logLevel
	logMu.Unlock()

	switch category {
	case "debug":
		if level > LevelDebug {
			return
		}
	case "error", "warning":
	default:
		if level > LevelInfo {
			return
		}
	}

	ts := Muted("%s", now().Format("15:04:05"))

	var icon string
	var styledMsg string

	switch category {
	case "success":
		icon = Success("✔")
		styledMsg = Success("%s", message)
	case "error":
		icon = Error("✖")
		styledMsg = Error("%s", message)
	case "warning":
		icon = Warn("⚠")
		styledMsg = Warn("%s", message)
	case "info":
		icon = Info("ℹ")
		styledMsg = message
	case "debug":
		icon = Muted("·")
		styledMsg = Muted("%s", message)
	default:
		icon = Muted("●")
		styledMsg = message
	}

	fmt.Fprintf(Output, "%s  %s  %s\n", ts, icon, styledMsg)
}

// LogDebug is LogStatus("debug", ...) with formatting
func LogDebug(format string, a ...interface{}) {
	LogStatus("debug", fmt.Sprintf(format, a...))
}

// LogTemplate reports the outcome of one rendered template
func LogTemplate(result, template, output string) {
	switch result {
	case "written":
		LogStatus("success", fmt.Sprintf("%s %s %s", template, Muted("→"), output))
	case "unchanged":
		LogStatus("info", fmt.Sprintf("%s %s %s %s", template, Muted("→"), output, Muted("(unchanged)")))
	case "checked":
		LogStatus("success", template+" "+Muted("ok"))
	default:
		LogStatus("error", template+" "+result)
	}
}

// badge renders a short inverted label
func badge(text string) string {
	r, g, b, _ := hexRGB(CLI_PALETTE.Accent)
	return color.RGB(255, 255, 255).AddBgRGB(r, g, b).Add(color.Bold).Sprint(" " + text + " ")
}

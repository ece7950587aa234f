package main

import (
	"fmt"
	"os"

	"veneer/internal/ui"

	"github.com/joho/godotenv"
)

// version is overridden at build time with -ldflags "-X main.version=..."
var version = "0.1.0"

func main() {
	// Load .env file if it exists
	// A missing file is fine: plain environment variables work the same way
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch os.Args[1] {
	case "build":
		err = cmdBuild(os.Args[2:])
	case "check":
		err = cmdCheck(os.Args[2:])
	case "show":
		err = cmdShow(os.Args[2:])
	case "resolve":
		err = cmdResolve(os.Args[2:])
	case "version", "--version", "-v":
		ui.PrintBanner(os.Stdout, version)
		return
	case "help", "-h", "--help":
		usage()
		return
	default:
		ui.LogStatus("error", "unknown command: "+os.Args[1])
		usage()
		os.Exit(1)
	}

	if err != nil {
		ui.LogStatus("error", "error: "+err.Error())
		os.Exit(1)
	}
}

var commands = []struct{ usage, help string }{
	{"build   [--palette FILE] [--force] SRC... [DEST]", "Render templates to DEST (default: current directory)"},
	{"check   [--palette FILE] TEMPLATE...", "Validate palette and templates without writing"},
	{"show    [--palette FILE] [--border STYLE]", "Show palette values with color swatches"},
	{"resolve [--palette FILE]", "Print the fully resolved palette as TOML"},
	{"version", "Print the version"},
}

var flags = []struct{ name, help string }{
	{"--palette <file>", "Palette TOML file (default: $VENEER_PALETTE or veneer.toml)"},
	{"--ext <suffix>", "Template suffix stripped from output names (default: $VENEER_TEMPLATE_EXT or .tmpl)"},
	{"--metrics <file>", "Write run metrics in Prometheus textfile format"},
	{"--force", "Rewrite outputs even when unchanged"},
	{"--log-level <lvl>", "debug, info or quiet"},
	{"--border <style>", "Table borders in show: none, unicode or ascii"},
}

func usage() {
	w := os.Stderr
	fmt.Fprintf(w, "%s\n\n%s\n", ui.FormatBannerLine(version), ui.Heading("Usage:"))
	for _, c := range commands {
		fmt.Fprintf(w, "  %s  %s\n", ui.PadRight(ui.Command("veneer %s", c.usage), 58), ui.Muted("%s", c.help))
	}
	fmt.Fprintf(w, "\n%s\n", ui.Heading("Flags:"))
	for _, f := range flags {
		fmt.Fprintf(w, "  %s  %s\n", ui.PadRight(ui.Option("%s", f.name), 18), f.help)
	}
	fmt.Fprintf(w, "\n%s\n", ui.Heading("Templates use Go text/template syntax. Helpers:"))
	fmt.Fprint(w, `  {{ with_alpha .light.primary 0.5 }}   {{ rgba .accents.info 1 }}
  {{ hsla .dark.primary 0.25 }}         {{ rgba_floats .ansi.dark.normal.red 1 }}
  {{ .meta.name | lowercase }}
`)
}

package ui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"veneer/internal/palette"
)

// withoutColor simulates NO_COLOR
func withoutColor(t *testing.T) {
	t.Helper()
	prev, prevEnv := color.NoColor, noColor
	color.NoColor, noColor = true, true
	t.Cleanup(func() { color.NoColor, noColor = prev, prevEnv })
}

// notATerminal simulates piped stdout with NO_COLOR unset
func notATerminal(t *testing.T) {
	t.Helper()
	prev, prevEnv := color.NoColor, noColor
	color.NoColor, noColor = true, false
	t.Cleanup(func() { color.NoColor, noColor = prev, prevEnv })
}

func TestVisibleWidthIgnoresTrueColor(t *testing.T) {
	s := "\x1b[38;2;255;255;255;48;2;17;17;17m      \x1b[0m"
	if got := VisibleWidth(s); got != 6 {
		t.Errorf("VisibleWidth = %d, want 6", got)
	}
	if got := PadRight(s, 8); VisibleWidth(got) != 8 {
		t.Errorf("PadRight width = %d", VisibleWidth(got))
	}
}

func TestSwatchStyle(t *testing.T) {
	notATerminal(t)
	out := Swatch("#111111")
	if !strings.Contains(out, "48;2;17;17;17") || !strings.Contains(out, "38;2;255;255;255") {
		t.Errorf("dark swatch = %q", out)
	}

	out = Swatch("#EEEEEE")
	if !strings.Contains(out, "38;2;0;0;0") {
		t.Errorf("light swatch should use dark text: %q", out)
	}

	if Swatch("not-a-color") != "not-a-color" {
		t.Error("malformed hex should be returned as is")
	}
}

func TestSwatchHonorsNoColor(t *testing.T) {
	withoutColor(t)
	if got := Swatch("#111111"); got != swatchBlock {
		t.Errorf("Swatch = %q, want plain block", got)
	}
}

func TestRenderTablePlain(t *testing.T) {
	out := RenderTable(RenderTableOptions{
		Columns: []TableColumn{
			{Key: "key", Header: "key", MinWidth: 8},
			{Key: "hex", Header: "hex"},
		},
		Rows: []map[string]string{
			{"key": "primary", "hex": "#111111"},
		},
	})
	want := "key       hex\n" +
		"--------  -------\n" +
		"primary   #111111\n"
	if out != want {
		t.Errorf("got:\n%q\nwant:\n%q", out, want)
	}
}

func TestRenderTableBoxed(t *testing.T) {
	out := RenderTable(RenderTableOptions{
		Columns: []TableColumn{{Key: "k", Header: "k"}},
		Rows:    []map[string]string{{"k": "ab"}},
		Border:  BorderASCII,
	})
	want := "+----+\n| k  |\n+----+\n| ab |\n+----+\n"
	if out != want {
		t.Errorf("got:\n%s\nwant:\n%s", out, want)
	}
}

func TestParseBorder(t *testing.T) {
	tests := []struct {
		name string
		want TableBorder
	}{
		{"", BorderNone},
		{"none", BorderNone},
		{"Unicode", BorderUnicode},
		{"ascii", BorderASCII},
	}
	for _, tt := range tests {
		got, err := ParseBorder(tt.name)
		if err != nil || got != tt.want {
			t.Errorf("ParseBorder(%q) = %v, %v; want %v", tt.name, got, err, tt.want)
		}
	}
	if _, err := ParseBorder("double"); err == nil {
		t.Error("expected error for unknown border")
	}
}

func testResolved() *palette.ResolvedPalette {
	version := "0.1.0"
	row := palette.ResolvedAnsiRow{
		Black: "#000000", Red: "#AA0000", Green: "#00AA00", Yellow: "#AAAA00",
		Blue: "#0000AA", Magenta: "#AA00AA", Cyan: "#00AAAA", White: "#FFFFFF",
	}
	return &palette.ResolvedPalette{
		Meta: palette.Meta{Name: "Test", Version: &version},
		Colors: palette.ResolvedColors{
			Light: map[string]string{"primary": "#111111", "text_primary_long": "#FFFFFF"},
			Dark:  map[string]string{"primary": "#000000"},
		},
		Accents: map[string]string{},
		Ansi: palette.ResolvedAnsi{
			Light: palette.ResolvedAnsiScheme{Normal: row, Bright: row},
			Dark:  palette.ResolvedAnsiScheme{Normal: row, Bright: row},
		},
	}
}

func TestLabelWidth(t *testing.T) {
	if got := LabelWidth(SummarySections(testResolved())); got != len("text_primary_long") {
		t.Errorf("LabelWidth = %d", got)
	}
	short := testResolved()
	short.Colors.Light = map[string]string{"a": "#000000"}
	if got := LabelWidth(SummarySections(short)); got != 8 {
		t.Errorf("LabelWidth = %d, want 8", got)
	}
}

func TestPrintSummary(t *testing.T) {
	withoutColor(t)
	var buf bytes.Buffer
	PrintSummary(&buf, "veneer.toml", testResolved(), BorderNone)
	out := buf.String()

	for _, want := range []string{
		"Palette: Test (veneer.toml)\n",
		"Version: 0.1.0\n",
		"Slug: <none>\n",
		"Colors (Light)\n",
		"ANSI (Dark / Bright)\n",
		"primary            " + swatchBlock + "  #111111\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary lacks %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Accents") {
		t.Errorf("empty accents section should be skipped:\n%s", out)
	}
}

func TestLogStatusLevels(t *testing.T) {
	withoutColor(t)
	var buf bytes.Buffer
	prevOut, prevNow := Output, now
	Output = &buf
	now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }
	t.Cleanup(func() {
		Output, now = prevOut, prevNow
		SetLevel(LevelInfo)
	})

	SetLevel(LevelInfo)
	LogStatus("debug", "hidden")
	LogStatus("info", "shown")
	SetLevel(LevelQuiet)
	LogStatus("success", "hidden too")
	LogStatus("error", "boom")
	SetLevel(LevelDebug)
	LogDebug("lookups=%d", 3)

	want := "03:04:05  ℹ  shown\n" +
		"03:04:05  ✖  boom\n" +
		"03:04:05  ·  lookups=3\n"
	if buf.String() != want {
		t.Errorf("got:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestParseLevel(t *testing.T) {
	if ParseLevel("debug") != LevelDebug || ParseLevel("quiet") != LevelQuiet || ParseLevel("info") != LevelInfo || ParseLevel("") != LevelInfo {
		t.Error("ParseLevel mapping is wrong")
	}
}

// Package render stamps a resolved palette into text templates.
package render

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"golang.org/x/crypto/blake2b"

	"veneer/internal/palette"
)

// Result is what happened to one template
type Result string

const (
	Written   Result = "written"
	Unchanged Result = "unchanged"
	Checked   Result = "checked"
	Failed    Result = "failed"
)

// NewContext builds the read-only template variables for rp
func NewContext(rp *palette.ResolvedPalette) map[string]any {
	ansi := make(map[string]any, len(palette.Tones))
	for _, tone := range palette.Tones {
		levels := make(map[string]any, len(palette.Levels))
		for _, level := range palette.Levels {
			levels[level] = rp.Ansi.Row(tone, level).Map()
		}
		ansi[tone] = levels
	}
	return map[string]any{
		"meta":    metaMap(rp.Meta),
		"light":   rp.Colors.Light,
		"dark":    rp.Colors.Dark,
		"accents": rp.Accents,
		"ansi":    ansi,
	}
}

func metaMap(m palette.Meta) map[string]string {
	out := map[string]string{"name": m.Name, "version": "", "slug": ""}
	if m.Version != nil {
		out["version"] = *m.Version
	}
	if m.Slug != nil {
		out["slug"] = *m.Slug
	}
	return out
}

// Parse compiles a template with the color helpers registered. Missing keys
// are render errors.
func Parse(name, text string) (*template.Template, error) {
	t, err := template.New(name).Option("missingkey=error").Funcs(Funcs()).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("registering template %s: %w", name, err)
	}
	return t, nil
}

// Execute renders t against ctx
func Execute(t *template.Template, ctx map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Execute(&buf, ctx); err != nil {
		return nil, fmt.Errorf("rendering template %s: %w", t.Name(), err)
	}
	return buf.Bytes(), nil
}

// RenderFile reads, parses and renders the template at path
func RenderFile(path string, ctx map[string]any) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	t, err := Parse(path, string(raw))
	if err != nil {
		return nil, err
	}
	return Execute(t, ctx)
}

// OutputName is the template's file name with ext removed
func OutputName(templatePath, ext string) string {
	name := filepath.Base(templatePath)
	if name == "." || name == string(filepath.Separator) {
		return "output"
	}
	if ext != "" {
		if stripped := strings.TrimSuffix(name, ext); stripped != "" {
			return stripped
		}
	}
	return name
}

// OutputPath decides where a rendered template goes. An existing directory
// dest receives the output inside it; any other dest is the output file; an
// empty dest means the current directory.
func OutputPath(templatePath, dest, ext string) (string, error) {
	name := OutputName(templatePath, ext)
	if dest == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("reading current directory: %w", err)
		}
		return filepath.Join(wd, name), nil
	}
	if IsDir(dest) {
		return filepath.Join(dest, name), nil
	}
	return dest, nil
}

// IsDir reports whether path is an existing directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// WriteOutput writes data to path, creating parent directories. A file whose
// digest already matches is left alone unless force is set.
func WriteOutput(path string, data []byte, force bool) (Result, error) {
	if !force {
		existing, err := os.ReadFile(path)
		switch {
		case err == nil:
			if Digest(existing) == Digest(data) {
				return Unchanged, nil
			}
		case !errors.Is(err, fs.ErrNotExist):
			return Failed, fmt.Errorf("reading %s: %w", path, err)
		}
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Failed, fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return Failed, fmt.Errorf("writing %s: %w", path, err)
	}
	return Written, nil
}

// Digest is the blake2b-256 sum of data
func Digest(data []byte) [blake2b.Size256]byte {
	return blake2b.Sum256(data)
}

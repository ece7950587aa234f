// Package palette holds the raw palette document, its reference graph, the
// structural validator and the resolution engine that turns every reference
// into a literal color.
package palette

import (
	"sort"
	"strings"
)

// RefKind tells a literal from a reference
type RefKind int

const (
	// RefUnset marks a slot the document did not provide
	RefUnset RefKind = iota
	// RefLiteral is a hex color literal
	RefLiteral
	// RefPath is a dotted path to another slot
	RefPath
)

// ColorRef is a single palette value: a literal hex color or a dotted path
// into the same palette namespace.
type ColorRef struct {
	Kind  RefKind
	Value string
}

// Literal builds a literal ColorRef
func Literal(hex string) ColorRef { return ColorRef{Kind: RefLiteral, Value: hex} }

// Reference builds a path ColorRef
func Reference(path string) ColorRef { return ColorRef{Kind: RefPath, Value: path} }

// ParseRef classifies raw using the '#' prefix rule
func ParseRef(raw string) ColorRef {
	if strings.HasPrefix(raw, "#") {
		return Literal(raw)
	}
	return Reference(raw)
}

// UnmarshalTOML accepts string leaves only. The TOML decoder would otherwise
// format numbers, booleans and datetimes into text.
func (c *ColorRef) UnmarshalTOML(v any) error {
	raw, ok := v.(string)
	if !ok {
		return &ValueTypeError{Value: v}
	}
	*c = ParseRef(raw)
	return nil
}

// UnmarshalText lets text decoders produce ColorRefs from string leaves
func (c *ColorRef) UnmarshalText(text []byte) error {
	*c = ParseRef(string(text))
	return nil
}

// MarshalText writes the raw value back
func (c ColorRef) MarshalText() ([]byte, error) {
	return []byte(c.Value), nil
}

func (c ColorRef) String() string { return c.Value }

// Meta is passed through to templates untouched
type Meta struct {
	Name    string  `toml:"name"`
	Version *string `toml:"version,omitempty"`
	Slug    *string `toml:"slug,omitempty"`
}

// Colors holds the user defined light and dark color sets
type Colors struct {
	Light map[string]ColorRef `toml:"light"`
	Dark  map[string]ColorRef `toml:"dark"`
}

// AnsiRow is the closed set of eight terminal color slots
type AnsiRow struct {
	Black   ColorRef `toml:"black"`
	Red     ColorRef `toml:"red"`
	Green   ColorRef `toml:"green"`
	Yellow  ColorRef `toml:"yellow"`
	Blue    ColorRef `toml:"blue"`
	Magenta ColorRef `toml:"magenta"`
	Cyan    ColorRef `toml:"cyan"`
	White   ColorRef `toml:"white"`
}

// AnsiScheme is one tone of the terminal palette
type AnsiScheme struct {
	Normal AnsiRow `toml:"normal"`
	Bright AnsiRow `toml:"bright"`
}

// Ansi holds both terminal tones
type Ansi struct {
	Light AnsiScheme `toml:"light"`
	Dark  AnsiScheme `toml:"dark"`
}

// Palette is the raw, possibly self referential document
type Palette struct {
	Meta    Meta                `toml:"meta"`
	Colors  Colors              `toml:"colors"`
	Accents map[string]ColorRef `toml:"accents"`
	Ansi    Ansi                `toml:"ansi"`
}

// Tones, levels and slots in enumeration order
var (
	Tones     = []string{"light", "dark"}
	Levels    = []string{"normal", "bright"}
	AnsiSlots = []string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}
)

// Slot returns a pointer to the named slot, or nil for an unknown name
func (r *AnsiRow) Slot(name string) *ColorRef {
	switch name {
	case "black":
		return &r.Black
	case "red":
		return &r.Red
	case "green":
		return &r.Green
	case "yellow":
		return &r.Yellow
	case "blue":
		return &r.Blue
	case "magenta":
		return &r.Magenta
	case "cyan":
		return &r.Cyan
	case "white":
		return &r.White
	}
	return nil
}

// Scheme returns the tone's scheme, or nil
func (a *Ansi) Scheme(tone string) *AnsiScheme {
	switch tone {
	case "light":
		return &a.Light
	case "dark":
		return &a.Dark
	}
	return nil
}

// Row returns the level's row, or nil
func (s *AnsiScheme) Row(level string) *AnsiRow {
	switch level {
	case "normal":
		return &s.Normal
	case "bright":
		return &s.Bright
	}
	return nil
}

// Tone returns the open-ended color map for a tone
func (c *Colors) Tone(tone string) (map[string]ColorRef, bool) {
	switch tone {
	case "light":
		return c.Light, true
	case "dark":
		return c.Dark, true
	}
	return nil, false
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

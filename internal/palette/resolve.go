package palette

import (
	"errors"
	"slices"

	"veneer/internal/color"
)

// ResolvedAnsiRow holds the eight terminal slots as #RRGGBB strings
type ResolvedAnsiRow struct {
	Black   string `toml:"black"`
	Red     string `toml:"red"`
	Green   string `toml:"green"`
	Yellow  string `toml:"yellow"`
	Blue    string `toml:"blue"`
	Magenta string `toml:"magenta"`
	Cyan    string `toml:"cyan"`
	White   string `toml:"white"`
}

// Map returns the row keyed by slot name
func (r ResolvedAnsiRow) Map() map[string]string {
	return map[string]string{
		"black":   r.Black,
		"red":     r.Red,
		"green":   r.Green,
		"yellow":  r.Yellow,
		"blue":    r.Blue,
		"magenta": r.Magenta,
		"cyan":    r.Cyan,
		"white":   r.White,
	}
}

// ResolvedAnsiScheme is one resolved terminal tone
type ResolvedAnsiScheme struct {
	Normal ResolvedAnsiRow `toml:"normal"`
	Bright ResolvedAnsiRow `toml:"bright"`
}

// ResolvedAnsi holds both resolved terminal tones
type ResolvedAnsi struct {
	Light ResolvedAnsiScheme `toml:"light"`
	Dark  ResolvedAnsiScheme `toml:"dark"`
}

// ResolvedColors holds the resolved light and dark sets
type ResolvedColors struct {
	Light map[string]string `toml:"light"`
	Dark  map[string]string `toml:"dark"`
}

// ResolvedPalette has the shape of Palette with every value replaced by its
// canonical uppercase #RRGGBB literal. It is not modified after Resolve.
type ResolvedPalette struct {
	Meta    Meta              `toml:"meta"`
	Colors  ResolvedColors    `toml:"colors"`
	Accents map[string]string `toml:"accents"`
	Ansi    ResolvedAnsi      `toml:"ansi"`
}

// Stats describes the work done by one resolution run
type Stats struct {
	Slots   int // top-level slots resolved
	Lookups int // graph lookups, at most one per distinct path
}

// resolver is the transient state of a single run
type resolver struct {
	palette *Palette
	memo    map[string]string
	stack   []string
	lookups int
}

// Resolve replaces every reference in p with the literal it ultimately
// points at. It either resolves the whole palette or returns the first error.
func Resolve(p *Palette) (*ResolvedPalette, error) {
	out, _, err := ResolveWithStats(p)
	return out, err
}

// ResolveWithStats is Resolve plus the run's Stats
func ResolveWithStats(p *Palette) (*ResolvedPalette, Stats, error) {
	r := &resolver{
		palette: p,
		memo:    make(map[string]string),
	}

	values := make(map[string]string)
	entries := p.Entries()
	for _, e := range entries {
		hex, err := r.resolveEntry(e)
		if err != nil {
			return nil, Stats{}, err
		}
		values[e.Label] = hex
	}

	out := &ResolvedPalette{
		Meta: p.Meta,
		Colors: ResolvedColors{
			Light: collect(values, "colors.light", p.Colors.Light),
			Dark:  collect(values, "colors.dark", p.Colors.Dark),
		},
		Accents: collect(values, "accents", p.Accents),
	}
	for _, tone := range Tones {
		scheme := out.Ansi.scheme(tone)
		scheme.Normal = ansiRow(values, "ansi."+tone+".normal")
		scheme.Bright = ansiRow(values, "ansi."+tone+".bright")
	}

	return out, Stats{Slots: len(entries), Lookups: r.lookups}, nil
}

func (r *resolver) resolveEntry(e Entry) (string, error) {
	switch e.Ref.Kind {
	case RefLiteral:
		hex, err := normalize(e.Label, e.Ref.Value)
		if err != nil {
			return "", &ResolveError{Label: e.Label, Err: err}
		}
		r.memo[e.Label] = hex
		return hex, nil
	case RefPath:
		// The slot itself is in progress while its target resolves, so a
		// self reference is caught as a cycle.
		if hex, ok := r.memo[e.Label]; ok {
			return hex, nil
		}
		r.stack = append(r.stack, e.Label)
		hex, err := r.resolve(e.Ref.Value)
		r.stack = r.stack[:len(r.stack)-1]
		if err != nil {
			return "", &ResolveError{Label: e.Label, Target: e.Ref.Value, Err: err}
		}
		r.memo[e.Label] = hex
		return hex, nil
	}
	return "", &ResolveError{Label: e.Label, Err: &MalformedPathError{Label: e.Label, Missing: true}}
}

func (r *resolver) resolve(path string) (string, error) {
	if hex, ok := r.memo[path]; ok {
		return hex, nil
	}
	if i := slices.Index(r.stack, path); i >= 0 {
		cycle := append(slices.Clone(r.stack[i:]), path)
		return "", &CycleError{Cycle: cycle}
	}

	r.lookups++
	ref, ok := r.palette.Lookup(path)
	if !ok {
		return "", &MissingPathError{Path: path}
	}

	r.stack = append(r.stack, path)
	var (
		hex string
		err error
	)
	switch ref.Kind {
	case RefLiteral:
		hex, err = normalize(path, ref.Value)
	case RefPath:
		hex, err = r.resolve(ref.Value)
	default:
		err = &MalformedPathError{Label: path, Missing: true}
	}
	r.stack = r.stack[:len(r.stack)-1]
	if err != nil {
		return "", err
	}

	r.memo[path] = hex
	return hex, nil
}

func normalize(label, raw string) (string, error) {
	hex, err := color.NormalizeHex(raw)
	if errors.Is(err, color.ErrInvalidHex) {
		return "", &InvalidHexColorError{Label: label, Value: raw}
	}
	return hex, err
}

func collect(values map[string]string, base string, src map[string]ColorRef) map[string]string {
	out := make(map[string]string, len(src))
	for key := range src {
		out[key] = values[base+"."+key]
	}
	return out
}

func ansiRow(values map[string]string, base string) ResolvedAnsiRow {
	return ResolvedAnsiRow{
		Black:   values[base+".black"],
		Red:     values[base+".red"],
		Green:   values[base+".green"],
		Yellow:  values[base+".yellow"],
		Blue:    values[base+".blue"],
		Magenta: values[base+".magenta"],
		Cyan:    values[base+".cyan"],
		White:   values[base+".white"],
	}
}

func (a *ResolvedAnsi) scheme(tone string) *ResolvedAnsiScheme {
	if tone == "dark" {
		return &a.Dark
	}
	return &a.Light
}

// Row returns the resolved row for tone and level
func (a *ResolvedAnsi) Row(tone, level string) ResolvedAnsiRow {
	s := a.scheme(tone)
	if level == "bright" {
		return s.Bright
	}
	return s.Normal
}

// Palette converts rp back into a raw palette made only of literals
func (rp *ResolvedPalette) Palette() *Palette {
	literals := func(m map[string]string) map[string]ColorRef {
		out := make(map[string]ColorRef, len(m))
		for k, v := range m {
			out[k] = Literal(v)
		}
		return out
	}
	row := func(r ResolvedAnsiRow) AnsiRow {
		return AnsiRow{
			Black:   Literal(r.Black),
			Red:     Literal(r.Red),
			Green:   Literal(r.Green),
			Yellow:  Literal(r.Yellow),
			Blue:    Literal(r.Blue),
			Magenta: Literal(r.Magenta),
			Cyan:    Literal(r.Cyan),
			White:   Literal(r.White),
		}
	}
	return &Palette{
		Meta:    rp.Meta,
		Colors:  Colors{Light: literals(rp.Colors.Light), Dark: literals(rp.Colors.Dark)},
		Accents: literals(rp.Accents),
		Ansi: Ansi{
			Light: AnsiScheme{Normal: row(rp.Ansi.Light.Normal), Bright: row(rp.Ansi.Light.Bright)},
			Dark:  AnsiScheme{Normal: row(rp.Ansi.Dark.Normal), Bright: row(rp.Ansi.Dark.Bright)},
		},
	}
}

package palette

import "strings"

// Section groups slots the way they are enumerated and displayed
type Section struct {
	Title string
	Base  string // canonical path prefix, e.g. "colors.light"
	Keys  []string
}

// Entry is one addressable slot of the reference graph
type Entry struct {
	Label string // canonical path
	Ref   ColorRef
}

// Sections lists every slot group in the fixed enumeration order:
// colors.light, colors.dark, accents, then the four ansi rows.
// Open-ended maps are enumerated in sorted key order.
func (p *Palette) Sections() []Section {
	sections := []Section{
		{Title: "Colors (Light)", Base: "colors.light", Keys: sortedKeys(p.Colors.Light)},
		{Title: "Colors (Dark)", Base: "colors.dark", Keys: sortedKeys(p.Colors.Dark)},
		{Title: "Accents", Base: "accents", Keys: sortedKeys(p.Accents)},
	}
	return append(sections, ansiSections()...)
}

func ansiSections() []Section {
	var sections []Section
	for _, tone := range Tones {
		for _, level := range Levels {
			sections = append(sections, Section{
				Title: "ANSI (" + titleCase(tone) + " / " + titleCase(level) + ")",
				Base:  "ansi." + tone + "." + level,
				Keys:  AnsiSlots,
			})
		}
	}
	return sections
}

// Entries flattens Sections into canonical path / value pairs
func (p *Palette) Entries() []Entry {
	var entries []Entry
	for _, sec := range p.Sections() {
		for _, key := range sec.Keys {
			entries = append(entries, Entry{Label: sec.Base + "." + key, Ref: p.sectionRef(sec.Base, key)})
		}
	}
	return entries
}

func (p *Palette) sectionRef(base, key string) ColorRef {
	switch base {
	case "colors.light":
		return p.Colors.Light[key]
	case "colors.dark":
		return p.Colors.Dark[key]
	case "accents":
		return p.Accents[key]
	}
	// ansi.<tone>.<level>
	parts := strings.Split(base, ".")
	return *p.Ansi.Scheme(parts[1]).Row(parts[2]).Slot(key)
}

// Lookup dispatches a canonical path into the matching sub-structure.
// Accepted shapes are colors.<tone>.<key>, accents.<key> and
// ansi.<tone>.<level>.<slot>; anything else reports false.
func (p *Palette) Lookup(path string) (ColorRef, bool) {
	parts := strings.Split(path, ".")
	switch parts[0] {
	case "colors":
		if len(parts) != 3 {
			return ColorRef{}, false
		}
		m, ok := p.Colors.Tone(parts[1])
		if !ok {
			return ColorRef{}, false
		}
		ref, ok := m[parts[2]]
		return ref, ok
	case "accents":
		if len(parts) != 2 {
			return ColorRef{}, false
		}
		ref, ok := p.Accents[parts[1]]
		return ref, ok
	case "ansi":
		if len(parts) != 4 {
			return ColorRef{}, false
		}
		scheme := p.Ansi.Scheme(parts[1])
		if scheme == nil {
			return ColorRef{}, false
		}
		row := scheme.Row(parts[2])
		if row == nil {
			return ColorRef{}, false
		}
		slot := row.Slot(parts[3])
		if slot == nil {
			return ColorRef{}, false
		}
		return *slot, true
	}
	return ColorRef{}, false
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

package palette

import (
	"fmt"
	"strings"
)

// ExpectedShapes names the address shapes a reference may take
const ExpectedShapes = "colors.*, accents.*, or ansi.*.*.*"

// InvalidHexColorError is a literal that is not #RRGGBB
type InvalidHexColorError struct {
	Label string
	Value string
}

func (e *InvalidHexColorError) Error() string {
	if e.Label == "" {
		return fmt.Sprintf("invalid hex color: %s", e.Value)
	}
	return fmt.Sprintf("%s has invalid hex color: %s", e.Label, e.Value)
}

// MalformedPathError is a reference without a '.' separator, or a slot the
// document left out (Missing)
type MalformedPathError struct {
	Label   string
	Value   string
	Missing bool
}

func (e *MalformedPathError) Error() string {
	if e.Missing {
		return fmt.Sprintf("%s is missing a color value", e.Label)
	}
	if e.Value == "" {
		return fmt.Sprintf("%s path must contain at least one '.' segment: %q", e.Label, e.Value)
	}
	return fmt.Sprintf("%s path must contain at least one '.' segment: %s", e.Label, e.Value)
}

// ValueTypeError is a palette leaf that is not a string
type ValueTypeError struct {
	Value any
}

func (e *ValueTypeError) Error() string {
	return fmt.Sprintf("color value must be a string, got %T (%v)", e.Value, e.Value)
}

// MissingPathError is a reference whose target does not exist
type MissingPathError struct {
	Path string
}

func (e *MissingPathError) Error() string {
	return fmt.Sprintf("missing path '%s'; expected %s", e.Path, ExpectedShapes)
}

// CycleError is a reference chain that revisits a path being resolved.
// Cycle starts and ends with the repeated path.
type CycleError struct {
	Cycle []string
}

func (e *CycleError) Error() string {
	return "cycle detected: " + strings.Join(e.Cycle, " -> ")
}

// ResolveError wraps a failure with the top-level slot it was reached from
type ResolveError struct {
	Label  string
	Target string // empty for literal slots
	Err    error
}

func (e *ResolveError) Error() string {
	if e.Target == "" {
		return fmt.Sprintf("resolving %s: %v", e.Label, e.Err)
	}
	return fmt.Sprintf("resolving %s -> %s: %v", e.Label, e.Target, e.Err)
}

func (e *ResolveError) Unwrap() error { return e.Err }

// InvalidKeyError is a user defined key that cannot form a canonical path
type InvalidKeyError struct {
	Section string
	Key     string
}

func (e *InvalidKeyError) Error() string {
	return fmt.Sprintf("%s key %q must be non-empty and must not contain '.'", e.Section, e.Key)
}

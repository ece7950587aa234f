package palette

import (
	"errors"
	"strings"

	"veneer/internal/color"
)

// ErrMissingName is returned for a palette without meta.name
var ErrMissingName = errors.New("meta.name is required")

// Validate is the structural pre-pass run before resolution. It checks the
// syntax of every slot in enumeration order and stops at the first problem.
// References are not followed.
func Validate(p *Palette) error {
	if strings.TrimSpace(p.Meta.Name) == "" {
		return ErrMissingName
	}
	for _, sec := range p.Sections() {
		for _, key := range sec.Keys {
			if key == "" || strings.Contains(key, ".") {
				return &InvalidKeyError{Section: sec.Base, Key: key}
			}
		}
	}
	for _, e := range p.Entries() {
		if err := CheckRef(e.Label, e.Ref); err != nil {
			return err
		}
	}
	return nil
}

// CheckRef validates a single slot value
func CheckRef(label string, ref ColorRef) error {
	switch ref.Kind {
	case RefLiteral:
		if !color.IsHex(ref.Value) {
			return &InvalidHexColorError{Label: label, Value: ref.Value}
		}
	case RefPath:
		if !strings.Contains(ref.Value, ".") {
			return &MalformedPathError{Label: label, Value: ref.Value}
		}
	default:
		return &MalformedPathError{Label: label, Missing: true}
	}
	return nil
}

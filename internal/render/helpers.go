package render

import (
	"errors"
	"fmt"
	"strings"
	"text/template"

	"veneer/internal/color"
)

// HelperArgumentError is a helper called with a missing, wrong typed or out
// of range argument
type HelperArgumentError struct {
	Helper string
	Arg    string
	Reason string
}

func (e *HelperArgumentError) Error() string {
	return fmt.Sprintf("%s: argument '%s' %s", e.Helper, e.Arg, e.Reason)
}

// Funcs returns the helpers registered into every template
func Funcs() template.FuncMap {
	return template.FuncMap{
		"with_alpha":  WithAlpha,
		"rgba":        RGBA,
		"hsla":        HSLA,
		"rgba_floats": RGBAFloats,
		"lowercase":   Lowercase,
	}
}

// WithAlpha returns color with alpha appended as "#RRGGBBAA"
func WithAlpha(c, alpha any) (string, error) {
	hex, a, err := colorArgs("with_alpha", c, alpha)
	if err != nil {
		return "", err
	}
	out, err := color.CompositeAlpha(hex, a)
	if err != nil {
		return "", argError("with_alpha", err)
	}
	return out, nil
}

// RGBA formats color as "rgba(R, G, B, A)"
func RGBA(c, alpha any) (string, error) {
	r, g, b, a, err := rgbArgs("rgba", c, alpha)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %.3f)", r, g, b, a), nil
}

// HSLA formats color as "hsla(H, S, L, A)" with H, S and L in [0,1]
func HSLA(c, alpha any) (string, error) {
	r, g, b, a, err := rgbArgs("hsla", c, alpha)
	if err != nil {
		return "", err
	}
	h, s, l := color.RGBToHSL(r, g, b)
	return fmt.Sprintf("hsla(%.3f, %.3f, %.3f, %.3f)", h, s, l, a), nil
}

// RGBAFloats formats color as four space separated floats in [0,1]
func RGBAFloats(c, alpha any) (string, error) {
	r, g, b, a, err := rgbArgs("rgba_floats", c, alpha)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%.6f %.6f %.6f %.6f",
		float64(r)/255.0, float64(g)/255.0, float64(b)/255.0, a), nil
}

// Lowercase lowercases a string value
func Lowercase(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", &HelperArgumentError{Helper: "lowercase", Arg: "value", Reason: fmt.Sprintf("must be a string, got %T", v)}
	}
	return strings.ToLower(s), nil
}

func colorArgs(helper string, c, alpha any) (string, float64, error) {
	hex, ok := c.(string)
	if !ok {
		return "", 0, &HelperArgumentError{Helper: helper, Arg: "color", Reason: fmt.Sprintf("must be a string, got %T", c)}
	}
	a, ok := toFloat(alpha)
	if !ok {
		return "", 0, &HelperArgumentError{Helper: helper, Arg: "alpha", Reason: fmt.Sprintf("must be a number, got %T", alpha)}
	}
	return hex, a, nil
}

func rgbArgs(helper string, c, alpha any) (r, g, b uint8, a float64, err error) {
	hex, a, err := colorArgs(helper, c, alpha)
	if err != nil {
		return 0, 0, 0, 0, err
	}
	if !(a >= 0.0 && a <= 1.0) {
		return 0, 0, 0, 0, &HelperArgumentError{Helper: helper, Arg: "alpha", Reason: fmt.Sprintf("must be between 0.0 and 1.0, got %v", a)}
	}
	r, g, b, ok := color.HexToRGB(hex)
	if !ok {
		return 0, 0, 0, 0, &HelperArgumentError{Helper: helper, Arg: "color", Reason: "invalid hex color: " + hex}
	}
	return r, g, b, a, nil
}

func argError(helper string, err error) error {
	switch {
	case errors.Is(err, color.ErrAlphaRange):
		return &HelperArgumentError{Helper: helper, Arg: "alpha", Reason: err.Error()}
	case errors.Is(err, color.ErrInvalidHex):
		return &HelperArgumentError{Helper: helper, Arg: "color", Reason: err.Error()}
	}
	return err
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

// Package color implements the palette color model: hex literals, 8-bit RGB
// triples, HSL triples in the [0,1] domain and hex with an alpha byte.
package color

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidHex is returned when a value is not a #RRGGBB literal
var ErrInvalidHex = errors.New("invalid hex color")

// ErrAlphaRange is returned when an alpha value falls outside [0, 1]
var ErrAlphaRange = errors.New("alpha must be between 0.0 and 1.0")

var hexPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// IsHex reports whether raw is a well-formed #RRGGBB literal (any case)
func IsHex(raw string) bool {
	return hexPattern.MatchString(raw)
}

// NormalizeHex validates raw and returns it uppercased.
// "#aabbcc" and "#AABBCC" both normalize to "#AABBCC".
func NormalizeHex(raw string) (string, error) {
	if !IsHex(raw) {
		return "", fmt.Errorf("%w: %s", ErrInvalidHex, raw)
	}
	return strings.ToUpper(raw), nil
}

// HexToRGB parses a 7 character "#RRGGBB" string.
// ok is false on malformed input so callers can word their own error.
func HexToRGB(hex string) (r, g, b uint8, ok bool) {
	if len(hex) != 7 || hex[0] != '#' {
		return 0, 0, 0, false
	}
	var channels [3]uint8
	for i := range channels {
		v, err := strconv.ParseUint(hex[1+i*2:3+i*2], 16, 8)
		if err != nil {
			return 0, 0, 0, false
		}
		channels[i] = uint8(v)
	}
	return channels[0], channels[1], channels[2], true
}

// RGBToHSL converts 8-bit channels to hue, saturation and lightness, all in
// [0,1]. Hue is not expressed in degrees.
func RGBToHSL(r, g, b uint8) (h, s, l float64) {
	c := colorful.Color{
		R: float64(r) / 255.0,
		G: float64(g) / 255.0,
		B: float64(b) / 255.0,
	}
	h, s, l = c.Hsl()
	return h / 360.0, s, l
}

// CompositeAlpha appends alpha, scaled to a byte, to a 6 digit literal and
// returns an uppercase "#RRGGBBAA" string. Alpha outside [0,1] is rejected,
// never clamped.
func CompositeAlpha(hex string, alpha float64) (string, error) {
	if !(alpha >= 0.0 && alpha <= 1.0) {
		return "", fmt.Errorf("%w: got %v", ErrAlphaRange, alpha)
	}
	r, g, b, ok := HexToRGB(hex)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrInvalidHex, hex)
	}
	a := uint8(alphaByte(alpha))
	return fmt.Sprintf("#%02X%02X%02X%02X", r, g, b, a), nil
}

// alphaByte rounds half away from zero
func alphaByte(alpha float64) int {
	return int(alpha*255.0 + 0.5)
}

// Luminance is the perceived brightness of an 8-bit triple, in [0,1]
func Luminance(r, g, b uint8) float64 {
	return (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 255.0
}

// IsDark reports whether light text reads better on top of the color
func IsDark(r, g, b uint8) bool {
	return Luminance(r, g, b) < 0.5
}

package palette

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Load reads, decodes and validates a palette file. Keys the document
// carries that the palette shape does not know are returned as undecoded.
func Load(path string) (*Palette, []string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading palette file %s: %w", path, err)
	}
	p, undecoded, err := Parse(raw)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing TOML %s: %w", path, err)
	}
	if err := Validate(p); err != nil {
		return nil, nil, err
	}
	return p, undecoded, nil
}

// Parse decodes a TOML document into a raw Palette without validating it
func Parse(data []byte) (*Palette, []string, error) {
	var p Palette
	md, err := toml.Decode(string(data), &p)
	if err != nil {
		return nil, nil, err
	}
	var undecoded []string
	for _, key := range md.Undecoded() {
		undecoded = append(undecoded, key.String())
	}
	return &p, undecoded, nil
}

// Encode writes a resolved palette as a TOML document
func Encode(rp *ResolvedPalette) ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(rp); err != nil {
		return nil, fmt.Errorf("encoding palette: %w", err)
	}
	return buf.Bytes(), nil
}

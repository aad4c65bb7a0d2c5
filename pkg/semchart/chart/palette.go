// Package chart turns a series set into line chart datasets and renders
// them as an interactive HTML page.
package chart

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Palette is an ordered list of hex colors assigned to datasets in turn.
type Palette []string

// DefaultPaletteName names the palette used when none is chosen.
const DefaultPaletteName = "Default"

var builtinPalettes = map[string]Palette{
	"Default": {"#1f77b4", "#2ca02c", "#ff7f0e", "#9467bd", "#e377c2", "#8c564b", "#17becf"},
	"Pastel":  {"#a3cef1", "#b8e6c4", "#ffd7a6", "#d6c4ff", "#ffd1ea", "#e9d7c9", "#bfeff2"},
	"Neon":    {"#00f5a0", "#7cfffb", "#ffd166", "#ff6b6b", "#c77dff", "#00b4d8", "#ffd700"},
}

// PaletteByName returns a copy of a built-in palette.
func PaletteByName(name string) (Palette, bool) {
	p, ok := builtinPalettes[name]
	if !ok {
		return nil, false
	}
	return append(Palette(nil), p...), true
}

// DefaultPalette returns a copy of the default palette.
func DefaultPalette() Palette {
	p, _ := PaletteByName(DefaultPaletteName)
	return p
}

// PaletteNames lists the built-in palettes in sorted order.
func PaletteNames() []string {
	names := make([]string, 0, len(builtinPalettes))
	for name := range builtinPalettes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Color returns the color for dataset i. An empty palette falls back to the
// default one.
func (p Palette) Color(i int) string {
	if len(p) == 0 {
		return DefaultPalette().Color(i)
	}
	return p[i%len(p)]
}

// Validate checks that every entry is a 3- or 6-digit hex color.
func (p Palette) Validate() error {
	for i, c := range p {
		if _, _, _, err := parseHex(c); err != nil {
			return fmt.Errorf("palette entry %d: %w", i, err)
		}
	}
	return nil
}

// HexToRGBA converts "#rrggbb" or "#rgb" to a CSS rgba() string.
func HexToRGBA(hex string, alpha float64) (string, error) {
	r, g, b, err := parseHex(hex)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, strconv.FormatFloat(alpha, 'f', -1, 64)), nil
}

func parseHex(hex string) (r, g, b uint8, err error) {
	h := strings.TrimPrefix(hex, "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q", hex)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid hex color %q", hex)
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), nil
}

package shading

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"orrery/internal/engine/raster"
)

// Palette is a gradient over evenly spaced color stops.
type Palette struct {
	stops []raster.Color
}

// NewPalette builds a palette from explicit stops. At least two stops
// are required for a usable gradient.
func NewPalette(stops ...raster.Color) Palette {
	return Palette{stops: stops}
}

// PaletteFromHex parses hex color stops ("#rrggbb") and inserts a
// Lab-blended midpoint between each adjacent pair, which keeps the
// gradient perceptually even instead of dipping through grey.
func PaletteFromHex(hexes ...string) (Palette, error) {
	if len(hexes) < 2 {
		return Palette{}, fmt.Errorf("palette needs at least 2 stops, got %d", len(hexes))
	}

	parsed := make([]colorful.Color, len(hexes))
	for i, h := range hexes {
		c, err := colorful.Hex(h)
		if err != nil {
			return Palette{}, fmt.Errorf("palette stop %q: %w", h, err)
		}
		parsed[i] = c
	}

	var stops []raster.Color
	for i, c := range parsed {
		stops = append(stops, fromColorful(c))
		if i+1 < len(parsed) {
			stops = append(stops, fromColorful(c.BlendLab(parsed[i+1], 0.5)))
		}
	}
	return Palette{stops: stops}, nil
}

// ParseHex parses a single "#rrggbb" color.
func ParseHex(hex string) (raster.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return raster.Color{}, fmt.Errorf("color %q: %w", hex, err)
	}
	return fromColorful(c), nil
}

func fromColorful(c colorful.Color) raster.Color {
	return raster.RGB(float32(c.R), float32(c.G), float32(c.B))
}

// At returns the gradient color at t in [0, 1], clamping outside values.
func (p Palette) At(t float32) raster.Color {
	n := len(p.stops)
	switch {
	case n == 0:
		return raster.Color{}
	case n == 1:
		return p.stops[0]
	}

	if t <= 0 {
		return p.stops[0]
	}
	if t >= 1 {
		return p.stops[n-1]
	}

	scaled := t * float32(n-1)
	i := int(scaled)
	if i >= n-1 {
		i = n - 2
	}
	return p.stops[i].Lerp(p.stops[i+1], scaled-float32(i))
}

// Len returns the number of stops.
func (p Palette) Len() int { return len(p.stops) }

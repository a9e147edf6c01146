// Package raster implements the software rasterizer: framebuffer
// ownership, triangle fill with depth testing, and the line/point
// primitives used for orbit trails and the star backdrop.
package raster

// Color is a linear RGB color with components in [0, 1]. Values outside
// the range are allowed during shading math and clamped on write.
type Color struct {
	R, G, B float32
}

// RGB builds a color from components.
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b}
}

// Lerp returns the interpolation between c and other at t.
func (c Color) Lerp(other Color, t float32) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
	}
}

// Scale returns the color with all components multiplied by s.
func (c Color) Scale(s float32) Color {
	return Color{R: c.R * s, G: c.G * s, B: c.B * s}
}

// Add returns the component-wise sum.
func (c Color) Add(other Color) Color {
	return Color{R: c.R + other.R, G: c.G + other.G, B: c.B + other.B}
}

// ARGB packs the color into 0xAArrggbb with full alpha, clamping each
// component to [0, 1].
func (c Color) ARGB() uint32 {
	return 0xff000000 |
		uint32(clamp01(c.R)*255)<<16 |
		uint32(clamp01(c.G)*255)<<8 |
		uint32(clamp01(c.B)*255)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

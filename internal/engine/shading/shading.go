// Package shading maps surface samples to colors, one variant per body
// class. A Shader is built once per body at scene construction; shading
// itself is a pure function of the sample, which keeps it testable by
// probing fixed coordinates.
package shading

import (
	"fmt"
	gomath "math"

	"orrery/internal/engine/raster"
	"orrery/internal/noise"
	"orrery/pkg/math"
)

// Class selects the shading variant for a body.
type Class int

const (
	// Star is emissive turbulence with a time pulse.
	Star Class = iota
	// Rocky is noise thresholded into terrain bands.
	Rocky
	// GasGiant is latitude-stretched banding warped by a storm field.
	GasGiant
	// Ice is a narrow palette with a brightness boost.
	Ice
	// Moon is a crater-grey rocky variant.
	Moon
)

// String returns the class name.
func (c Class) String() string {
	switch c {
	case Star:
		return "star"
	case Rocky:
		return "rocky"
	case GasGiant:
		return "gas_giant"
	case Ice:
		return "ice"
	case Moon:
		return "moon"
	default:
		return "unknown"
	}
}

// ParseClass converts a config string into a Class.
func ParseClass(s string) (Class, error) {
	switch s {
	case "star":
		return Star, nil
	case "rocky":
		return Rocky, nil
	case "gas_giant":
		return GasGiant, nil
	case "ice":
		return Ice, nil
	case "moon":
		return Moon, nil
	}
	return Star, fmt.Errorf("unknown body class %q", s)
}

// Sample is one surface sample handed over by the rasterizer.
type Sample struct {
	World  math.Vec3 // world-space position
	Normal math.Vec3 // unit surface normal
	Local  math.Vec3 // object-space position on the unit sphere
	Time   float32   // simulation time in seconds
}

// Material describes how to build a body's shader.
type Material struct {
	Class   Class
	Palette Palette
	Seed    int64
	// Scale stretches the noise coordinate; higher means finer detail.
	Scale float32
}

// Shader holds the per-body noise fields and dispatches on the class
// tag through one fixed-signature function.
type Shader struct {
	class   Class
	palette Palette
	scale   float32
	surface *noise.Field // primary detail field
	warp    *noise.Field // low-frequency secondary field
}

// New builds a shader for the material. The two noise fields are seeded
// deterministically from the material seed.
func New(m Material) *Shader {
	scale := m.Scale
	if scale <= 0 {
		scale = 1
	}

	surfaceCfg := noise.Config{
		Seed:      m.Seed,
		Frequency: 1.0,
		Octaves:   4,
	}
	warpCfg := noise.Config{
		Seed:      m.Seed + 1,
		Frequency: 0.35,
		Octaves:   2,
	}
	if m.Class == Star {
		// High-frequency turbulence for flares.
		surfaceCfg.Frequency = 3.0
		surfaceCfg.Octaves = 5
	}
	if m.Class == Moon {
		surfaceCfg.Fractal = noise.Ridged
	}

	return &Shader{
		class:   m.Class,
		palette: m.Palette,
		scale:   scale,
		surface: noise.New(surfaceCfg),
		warp:    noise.New(warpCfg),
	}
}

// Class returns the shader's variant tag.
func (s *Shader) Class() Class { return s.class }

// Shade produces the color for one sample.
func (s *Shader) Shade(smp Sample) raster.Color {
	switch s.class {
	case Star:
		return s.shadeStar(smp)
	case Rocky:
		return s.shadeRocky(smp)
	case GasGiant:
		return s.shadeGasGiant(smp)
	case Ice:
		return s.shadeIce(smp)
	case Moon:
		return s.shadeMoon(smp)
	default:
		return s.palette.At(0.5)
	}
}

// shadeStar is emissive: no lighting term. The turbulence coordinate is
// pushed along one axis by a slow sine of simulation time, so the
// surface pulses without the body rotating.
func (s *Shader) shadeStar(smp Sample) raster.Color {
	pulse := float32(gomath.Sin(float64(smp.Time)*0.8)) * 0.5
	p := smp.Local.Scale(s.scale)

	n1 := s.surface.Sample3(p.X, p.Y, p.Z+pulse)
	n2 := s.surface.Sample3(p.X+19.1, p.Y+7.3, p.Z+3.7+pulse)
	v := normalized((n1 + n2) * 0.5)

	// Global intensity breathes with the same clock.
	intensity := 0.85 + 0.15*float32(gomath.Sin(float64(smp.Time)*0.8))
	return s.palette.At(v).Scale(intensity)
}

// shadeRocky thresholds two-octave terrain noise into discrete bands;
// the palette supplies the color stop per band.
func (s *Shader) shadeRocky(smp Sample) raster.Color {
	p := smp.Local.Scale(s.scale)

	broad := s.surface.Sample3(p.X*0.5, p.Y*0.5, p.Z*0.5)
	detail := s.surface.Sample3(p.X*2.0+31.4, p.Y*2.0, p.Z*2.0)
	v := normalized(broad*0.7 + detail*0.3)

	// Discrete terrain bands: ocean, lowland, highland, polar.
	var t float32
	switch {
	case v < 0.4:
		t = 0.0
	case v < 0.6:
		t = 1.0 / 3.0
	case v < 0.8:
		t = 2.0 / 3.0
	default:
		t = 1.0
	}

	return s.lit(s.palette.At(t), smp)
}

// shadeGasGiant stretches noise along latitude and warps the band
// coordinate with a second low-frequency field to form storms.
func (s *Shader) shadeGasGiant(smp Sample) raster.Color {
	p := smp.Local.Scale(s.scale)

	storm := s.warp.Sample3(p.X, p.Y, p.Z)
	lat := smp.Local.Y // latitude proxy on the unit sphere
	band := float32(gomath.Sin(float64(lat*9.0 + storm*2.5)))
	v := normalized(band)

	base := s.palette.At(v)

	// Storm highlights where the warp field peaks.
	if storm > 0.55 {
		base = base.Lerp(raster.RGB(0.95, 0.92, 0.85), (storm-0.55)*1.5)
	}

	return s.lit(base, smp)
}

// shadeIce is the rocky machinery over a narrow palette with a
// reflectivity-like brightness boost.
func (s *Shader) shadeIce(smp Sample) raster.Color {
	p := smp.Local.Scale(s.scale)

	v := normalized(s.surface.Sample3(p.X, p.Y, p.Z))
	c := s.palette.At(v).Scale(1.2)

	return s.lit(c, smp)
}

// shadeMoon mixes ridged crater noise across the palette greys.
func (s *Shader) shadeMoon(smp Sample) raster.Color {
	p := smp.Local.Scale(s.scale)

	crater := s.surface.Sample3(p.X, p.Y, p.Z)
	fine := s.surface.Sample3(p.X*4.0+11.7, p.Y*4.0, p.Z*4.0)
	v := normalized(crater*0.75 + fine*0.25)

	return s.lit(s.palette.At(v), smp)
}

// lit applies the diffuse term: the only light source is the star at the
// world origin, plus a small ambient floor.
func (s *Shader) lit(c raster.Color, smp Sample) raster.Color {
	lightDir := smp.World.Negate().Normalize()
	diffuse := smp.Normal.Dot(lightDir)
	if diffuse < 0 {
		diffuse = 0
	}
	const ambient = 0.2
	return c.Scale(ambient + (1-ambient)*diffuse)
}

// normalized maps a noise value from [-1, 1] to [0, 1], clamping noise
// that overshoots its nominal range.
func normalized(v float32) float32 {
	v = (v + 1) * 0.5
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

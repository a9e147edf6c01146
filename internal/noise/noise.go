// Package noise provides deterministic fractal noise fields used as the
// only source of procedural surface detail. A Field is immutable after
// construction and sampling it is a pure function of the coordinates.
package noise

import (
	"math"

	"github.com/ojrac/opensimplex-go"
)

// Fractal selects how octaves are combined.
type Fractal int

const (
	// FBm sums octaves with decreasing amplitude.
	FBm Fractal = iota
	// Ridged folds each octave around zero, producing sharp creases.
	Ridged
)

// Config describes a noise field.
type Config struct {
	Seed       int64
	Frequency  float64
	Octaves    int
	Lacunarity float64 // frequency multiplier per octave
	Gain       float64 // amplitude multiplier per octave
	Fractal    Fractal
}

// DefaultConfig returns a single-octave field at unit frequency.
func DefaultConfig(seed int64) Config {
	return Config{
		Seed:       seed,
		Frequency:  1.0,
		Octaves:    1,
		Lacunarity: 2.0,
		Gain:       0.5,
		Fractal:    FBm,
	}
}

// Field is a deterministic scalar noise field over 2D/3D coordinates.
// Samples fall in [-1, 1].
type Field struct {
	cfg Config
	src opensimplex.Noise
}

// New creates a field from cfg. Octaves below 1 are treated as 1.
func New(cfg Config) *Field {
	if cfg.Octaves < 1 {
		cfg.Octaves = 1
	}
	if cfg.Frequency == 0 {
		cfg.Frequency = 1.0
	}
	if cfg.Lacunarity == 0 {
		cfg.Lacunarity = 2.0
	}
	if cfg.Gain == 0 {
		cfg.Gain = 0.5
	}
	return &Field{
		cfg: cfg,
		src: opensimplex.New(cfg.Seed),
	}
}

// Sample2 evaluates the field at a 2D coordinate.
func (f *Field) Sample2(x, y float32) float32 {
	fx, fy := float64(x), float64(y)

	freq := f.cfg.Frequency
	amp := 1.0
	sum := 0.0
	norm := 0.0

	for i := 0; i < f.cfg.Octaves; i++ {
		v := f.src.Eval2(fx*freq, fy*freq)
		if f.cfg.Fractal == Ridged {
			v = 1.0 - 2.0*math.Abs(v)
		}
		sum += v * amp
		norm += amp
		freq *= f.cfg.Lacunarity
		amp *= f.cfg.Gain
	}

	return float32(sum / norm)
}

// Sample3 evaluates the field at a 3D coordinate.
func (f *Field) Sample3(x, y, z float32) float32 {
	fx, fy, fz := float64(x), float64(y), float64(z)

	freq := f.cfg.Frequency
	amp := 1.0
	sum := 0.0
	norm := 0.0

	for i := 0; i < f.cfg.Octaves; i++ {
		v := f.src.Eval3(fx*freq, fy*freq, fz*freq)
		if f.cfg.Fractal == Ridged {
			v = 1.0 - 2.0*math.Abs(v)
		}
		sum += v * amp
		norm += amp
		freq *= f.cfg.Lacunarity
		amp *= f.cfg.Gain
	}

	return float32(sum / norm)
}

// Package scene holds the simulated solar system: the body arena, the
// orbit simulation, and the world transforms the renderer consumes.
package scene

import (
	"fmt"
	gomath "math"

	"orrery/internal/config"
	"orrery/internal/engine/mesh"
	"orrery/internal/engine/raster"
	"orrery/internal/engine/shading"
	"orrery/pkg/math"
)

const twoPi = 2 * gomath.Pi

// Ring is an annular ring attached to a body.
type Ring struct {
	// Scale is the ring's outer extent relative to the body radius.
	Scale  float32
	Tilt   float32 // radians around X
	Bright raster.Color
	Dark   raster.Color
}

// Body is one simulated celestial body. Bodies are stored in an arena
// and reference their parent by index, with parents always appearing
// before their children.
type Body struct {
	Name   string
	Class  shading.Class
	Radius float32

	OrbitRadius    float32
	OrbitPeriod    float32 // seconds per revolution, <= 0 means static
	RotationPeriod float32 // seconds per spin, <= 0 means no spin

	Parent int // arena index, -1 for bodies orbiting the scene origin
	Ring   *Ring

	Shader *shading.Shader
	Trail  *Trail

	phase    float32 // orbit angle, radians in [0, 2pi)
	spin     float32 // rotation angle, radians in [0, 2pi)
	position math.Vec3
}

// Phase returns the current orbit angle in radians.
func (b *Body) Phase() float32 {
	return b.phase
}

// Position returns the body's world-space center.
func (b *Body) Position() math.Vec3 {
	return b.position
}

// Scene is the body arena plus accumulated simulation time.
type Scene struct {
	Bodies []*Body

	time float32
}

// New builds a scene from the configured body table. Bodies are
// reordered so every parent precedes its children; an unresolvable
// parent reference is an error.
func New(cfg config.SceneConfig, trailLength int) (*Scene, error) {
	ordered, err := orderByDepth(cfg.Bodies)
	if err != nil {
		return nil, err
	}

	s := &Scene{Bodies: make([]*Body, 0, len(ordered))}
	indexOf := make(map[string]int, len(ordered))

	for _, bc := range ordered {
		class, err := shading.ParseClass(bc.Class)
		if err != nil {
			return nil, fmt.Errorf("body %q: %w", bc.Name, err)
		}

		palette, err := shading.PaletteFromHex(bc.Colors...)
		if err != nil {
			return nil, fmt.Errorf("body %q: %w", bc.Name, err)
		}

		parent := -1
		if bc.Parent != "" {
			idx, ok := indexOf[bc.Parent]
			if !ok {
				return nil, fmt.Errorf("body %q references unknown parent %q", bc.Name, bc.Parent)
			}
			parent = idx
		}

		b := &Body{
			Name:           bc.Name,
			Class:          class,
			Radius:         bc.Radius,
			OrbitRadius:    bc.OrbitRadius,
			OrbitPeriod:    bc.OrbitPeriod,
			RotationPeriod: bc.RotationPeriod,
			Parent:         parent,
			Shader: shading.New(shading.Material{
				Class:   class,
				Palette: palette,
				Seed:    bc.Seed,
				Scale:   bc.Detail,
			}),
		}

		if bc.Ring != nil {
			bright, err := shading.ParseHex(bc.Ring.Bright)
			if err != nil {
				return nil, fmt.Errorf("body %q ring: %w", bc.Name, err)
			}
			dark, err := shading.ParseHex(bc.Ring.Dark)
			if err != nil {
				return nil, fmt.Errorf("body %q ring: %w", bc.Name, err)
			}
			b.Ring = &Ring{
				Scale:  bc.Ring.Scale,
				Tilt:   bc.Ring.Tilt,
				Bright: bright,
				Dark:   dark,
			}
		}

		if bc.OrbitPeriod > 0 && trailLength > 0 {
			b.Trail = NewTrail(trailLength)
		}

		indexOf[bc.Name] = len(s.Bodies)
		s.Bodies = append(s.Bodies, b)
	}

	// Settle initial positions.
	s.Advance(0)

	return s, nil
}

// orderByDepth sorts bodies so parents come before children without
// disturbing the relative order of siblings. Cycles and unknown
// parents are reported as errors.
func orderByDepth(bodies []config.BodyConfig) ([]config.BodyConfig, error) {
	byName := make(map[string]config.BodyConfig, len(bodies))
	for _, b := range bodies {
		byName[b.Name] = b
	}

	depth := func(b config.BodyConfig) (int, error) {
		d := 0
		for b.Parent != "" {
			parent, ok := byName[b.Parent]
			if !ok {
				return 0, fmt.Errorf("body %q references unknown parent %q", b.Name, b.Parent)
			}
			b = parent
			d++
			if d > len(bodies) {
				return 0, fmt.Errorf("parent cycle involving body %q", b.Name)
			}
		}
		return d, nil
	}

	maxDepth := 0
	depths := make([]int, len(bodies))
	for i, b := range bodies {
		d, err := depth(b)
		if err != nil {
			return nil, err
		}
		depths[i] = d
		if d > maxDepth {
			maxDepth = d
		}
	}

	ordered := make([]config.BodyConfig, 0, len(bodies))
	for d := 0; d <= maxDepth; d++ {
		for i, b := range bodies {
			if depths[i] == d {
				ordered = append(ordered, b)
			}
		}
	}
	return ordered, nil
}

// Time returns the accumulated simulation time in seconds.
func (s *Scene) Time() float32 {
	return s.time
}

// Advance steps the simulation by dt seconds: orbit phases and spin
// angles accumulate and wrap, then world positions are recomputed
// parent-first and trails are extended.
func (s *Scene) Advance(dt float32) {
	s.time += dt

	for _, b := range s.Bodies {
		if b.OrbitPeriod > 0 {
			b.phase = wrapAngle(b.phase + twoPi*dt/b.OrbitPeriod)
		}
		if b.RotationPeriod > 0 {
			b.spin = wrapAngle(b.spin + twoPi*dt/b.RotationPeriod)
		}

		var center math.Vec3
		if b.Parent >= 0 {
			center = s.Bodies[b.Parent].position
		}
		b.position = math.Vec3{
			X: center.X + b.OrbitRadius*float32(gomath.Cos(float64(b.phase))),
			Y: center.Y,
			Z: center.Z + b.OrbitRadius*float32(gomath.Sin(float64(b.phase))),
		}

		if b.Trail != nil && dt > 0 {
			b.Trail.Push(b.position)
		}
	}
}

// WorldTransform returns the body's model matrix: orbit translation,
// spin around Y, then scale to the body radius.
func (s *Scene) WorldTransform(b *Body) math.Mat4 {
	translate := math.Translate(b.position.X, b.position.Y, b.position.Z)
	return translate.Mul(math.RotateY(b.spin)).Mul(math.ScaleUniform(b.Radius))
}

// RingTransform returns the model matrix for a body's ring, sized so
// the ring's outer edge sits at Radius*Ring.Scale from the center.
func (s *Scene) RingTransform(b *Body) math.Mat4 {
	scale := b.Radius * b.Ring.Scale / mesh.RingOuterRadius
	translate := math.Translate(b.position.X, b.position.Y, b.position.Z)
	return translate.Mul(math.RotateX(b.Ring.Tilt)).Mul(math.ScaleUniform(scale))
}

// wrapAngle folds an angle into [0, 2pi).
func wrapAngle(a float32) float32 {
	a = float32(gomath.Mod(float64(a), twoPi))
	if a < 0 {
		a += twoPi
	}
	return a
}

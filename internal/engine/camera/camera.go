// Package camera provides the viewer's camera modes.
package camera

import (
	"fmt"
	gomath "math"

	"orrery/pkg/math"
)

// Mode selects how the camera responds to input.
type Mode int

const (
	// Orbit circles a target point; drag rotates, wheel zooms.
	Orbit Mode = iota
	// FreeFly moves through space; drag looks, keys translate.
	FreeFly
	// BirdsEye looks straight down on the whole system.
	BirdsEye

	modeCount
)

// String returns the mode name used in config files.
func (m Mode) String() string {
	switch m {
	case Orbit:
		return "orbit"
	case FreeFly:
		return "freefly"
	case BirdsEye:
		return "birdseye"
	}
	return "unknown"
}

// ParseMode converts a config string into a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "orbit":
		return Orbit, nil
	case "freefly":
		return FreeFly, nil
	case "birdseye":
		return BirdsEye, nil
	}
	return Orbit, fmt.Errorf("unknown camera mode %q", s)
}

// Keep pitch strictly inside +-pi/2 so the look direction never
// becomes collinear with the up vector.
const pitchLimit = gomath.Pi/2 - 0.01

// Settings holds camera tuning shared by all modes.
type Settings struct {
	MinDistance float32
	MaxDistance float32
	MoveSpeed   float32 // world units per second, free-fly
	Sensitivity float32 // radians per pixel of drag
	ZoomStep    float32 // multiplicative, per wheel notch
}

// DefaultSettings returns sane tuning values.
func DefaultSettings() Settings {
	return Settings{
		MinDistance: 8,
		MaxDistance: 160,
		MoveSpeed:   20,
		Sensitivity: 0.005,
		ZoomStep:    1.1,
	}
}

// Camera holds the state of every mode so switching back and forth
// does not lose where the user was.
type Camera struct {
	mode     Mode
	settings Settings

	// Orbit state
	target   math.Vec3
	distance float32
	yaw      float32
	pitch    float32

	// Free-fly state
	flyPos   math.Vec3
	flyYaw   float32
	flyPitch float32

	// Birds-eye state
	height float32
	pan    math.Vec3 // horizontal only, Y stays zero
}

// New creates a camera starting in the given mode at the given orbit
// distance. The distance is clamped to the settings range.
func New(mode Mode, distance float32, s Settings) *Camera {
	c := &Camera{
		mode:     mode,
		settings: s,
		distance: distance,
		pitch:    0.4,
		flyPos:   math.Vec3{Y: 10, Z: distance},
		height:   distance,
	}
	c.distance = clamp(c.distance, s.MinDistance, s.MaxDistance)
	c.height = clamp(c.height, s.MinDistance, s.MaxDistance)
	return c
}

// Mode returns the active mode.
func (c *Camera) Mode() Mode {
	return c.mode
}

// SetMode switches the active mode.
func (c *Camera) SetMode(m Mode) {
	c.mode = m
}

// CycleMode advances to the next mode, wrapping around.
func (c *Camera) CycleMode() Mode {
	c.mode = (c.mode + 1) % modeCount
	return c.mode
}

// Position returns the camera eye position in world space.
func (c *Camera) Position() math.Vec3 {
	switch c.mode {
	case FreeFly:
		return c.flyPos
	case BirdsEye:
		return math.Vec3{X: c.pan.X, Y: c.height, Z: c.pan.Z}
	default:
		return c.target.Add(c.orbitOffset())
	}
}

// ViewMatrix returns the view matrix for the active mode. The result
// is always a valid transform: pitch and distance clamping keep the
// eye, center and up vector from degenerating.
func (c *Camera) ViewMatrix() math.Mat4 {
	up := math.Vec3{Y: 1}
	switch c.mode {
	case FreeFly:
		return math.LookAt(c.flyPos, c.flyPos.Add(c.flyForward()), up)
	case BirdsEye:
		// Looking straight down; Y cannot be the up reference.
		eye := math.Vec3{X: c.pan.X, Y: c.height, Z: c.pan.Z}
		center := math.Vec3{X: c.pan.X, Z: c.pan.Z}
		return math.LookAt(eye, center, math.Vec3{Z: -1})
	default:
		eye := c.target.Add(c.orbitOffset())
		return math.LookAt(eye, c.target, up)
	}
}

// HandleDrag rotates the view by a mouse drag of (dx, dy) pixels.
// Birds-eye ignores drags.
func (c *Camera) HandleDrag(dx, dy float32) {
	switch c.mode {
	case Orbit:
		c.yaw -= dx * c.settings.Sensitivity
		c.pitch += dy * c.settings.Sensitivity
		c.pitch = clamp(c.pitch, -pitchLimit, pitchLimit)
	case FreeFly:
		c.flyYaw -= dx * c.settings.Sensitivity
		c.flyPitch -= dy * c.settings.Sensitivity
		c.flyPitch = clamp(c.flyPitch, -pitchLimit, pitchLimit)
	}
}

// HandleZoom applies wheel notches. Positive notches zoom in. Orbit
// and birds-eye scale their distance multiplicatively and clamp to the
// settings range; free-fly nudges the position along the view.
func (c *Camera) HandleZoom(notches float32) {
	step := float32(gomath.Pow(float64(c.settings.ZoomStep), float64(-notches)))
	switch c.mode {
	case FreeFly:
		c.flyPos = c.flyPos.Add(c.flyForward().Scale(notches * c.settings.MoveSpeed * 0.2))
	case BirdsEye:
		c.height = clamp(c.height*step, c.settings.MinDistance, c.settings.MaxDistance)
	default:
		c.distance = clamp(c.distance*step, c.settings.MinDistance, c.settings.MaxDistance)
	}
}

// Move translates the camera from held movement keys. The axes are in
// view space: forward along the look direction, right strafes, up
// along world Y. dt is the frame delta in seconds.
func (c *Camera) Move(forward, right, up float32, dt float32) {
	speed := c.settings.MoveSpeed * dt
	switch c.mode {
	case FreeFly:
		fwd := c.flyForward()
		rgt := fwd.Cross(math.Vec3{Y: 1}).Normalize()
		delta := fwd.Scale(forward * speed).
			Add(rgt.Scale(right * speed)).
			Add(math.Vec3{Y: up * speed})
		c.flyPos = c.flyPos.Add(delta)
	case Orbit:
		// Pan the target in the horizontal plane of the view.
		sinYaw := float32(gomath.Sin(float64(c.yaw)))
		cosYaw := float32(gomath.Cos(float64(c.yaw)))
		c.target.X += (-sinYaw*forward + cosYaw*right) * speed
		c.target.Z += (-cosYaw*forward - sinYaw*right) * speed
		c.target.Y += up * speed
	case BirdsEye:
		// Horizontal plane only; screen-up is world -Z from above.
		c.pan.X += right * speed
		c.pan.Z -= forward * speed
	}
}

// Focus recenters the orbit target.
func (c *Camera) Focus(target math.Vec3) {
	c.target = target
}

// Distance returns the orbit distance (or birds-eye height).
func (c *Camera) Distance() float32 {
	if c.mode == BirdsEye {
		return c.height
	}
	return c.distance
}

func (c *Camera) orbitOffset() math.Vec3 {
	cosPitch := float32(gomath.Cos(float64(c.pitch)))
	return math.Vec3{
		X: c.distance * cosPitch * float32(gomath.Sin(float64(c.yaw))),
		Y: c.distance * float32(gomath.Sin(float64(c.pitch))),
		Z: c.distance * cosPitch * float32(gomath.Cos(float64(c.yaw))),
	}
}

func (c *Camera) flyForward() math.Vec3 {
	cosPitch := float32(gomath.Cos(float64(c.flyPitch)))
	return math.Vec3{
		X: -cosPitch * float32(gomath.Sin(float64(c.flyYaw))),
		Y: float32(gomath.Sin(float64(c.flyPitch))),
		Z: -cosPitch * float32(gomath.Cos(float64(c.flyYaw))),
	}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package scene

import (
	gomath "math"
	"math/rand"

	"orrery/pkg/math"
)

// Star is one backdrop star: a direction on the unit sphere and a
// brightness in (0, 1].
type Star struct {
	Dir        math.Vec3
	Brightness float32
}

// Starfield generates a deterministic set of backdrop stars from the
// seed. Directions are uniform over the sphere.
func Starfield(count int, seed int64) []Star {
	rng := rand.New(rand.NewSource(seed))
	stars := make([]Star, count)

	for i := range stars {
		// Uniform direction: z uniform in [-1, 1], azimuth uniform.
		z := rng.Float64()*2 - 1
		theta := rng.Float64() * twoPi
		r := gomath.Sqrt(1 - z*z)

		stars[i] = Star{
			Dir: math.Vec3{
				X: float32(r * gomath.Cos(theta)),
				Y: float32(z),
				Z: float32(r * gomath.Sin(theta)),
			},
			Brightness: 0.3 + 0.7*rng.Float32(),
		}
	}
	return stars
}

// Package mesh supplies the triangulated geometry consumed by the
// rasterizer: a unit UV sphere for every body and a flat annulus for
// ring systems. All meshes share one front-face winding convention so
// the rasterizer can backface-cull by signed screen-space area.
package mesh

import (
	"fmt"
	gomath "math"

	"orrery/pkg/math"
)

// Category identifies a mesh kind in the library.
type Category int

const (
	// Sphere is a unit-radius UV sphere centered at the origin.
	Sphere Category = iota
	// Ring is a flat annulus in the XZ plane.
	Ring
)

// String returns the category name.
func (c Category) String() string {
	switch c {
	case Sphere:
		return "sphere"
	case Ring:
		return "ring"
	default:
		return fmt.Sprintf("category(%d)", int(c))
	}
}

// Vertex is a mesh vertex with its surface normal.
type Vertex struct {
	Position math.Vec3
	Normal   math.Vec3
}

// Mesh is an indexed triangle list.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Library holds the prebuilt meshes, one per category.
type Library struct {
	meshes map[Category]*Mesh
}

// RingInnerRadius and RingOuterRadius are the annulus bounds of the
// library ring mesh, in mesh-local units. A body's ring scale maps these
// onto its configured inner/outer radii.
const (
	RingInnerRadius float32 = 1.0
	RingOuterRadius float32 = 2.0
)

// NewLibrary builds the default mesh set.
func NewLibrary() *Library {
	return &Library{
		meshes: map[Category]*Mesh{
			Sphere: GenerateSphere(48, 24),
			Ring:   GenerateRing(RingInnerRadius, RingOuterRadius, 96),
		},
	}
}

// Mesh returns the mesh for a category. A missing category is a
// configuration error.
func (l *Library) Mesh(c Category) (*Mesh, error) {
	m, ok := l.meshes[c]
	if !ok {
		return nil, fmt.Errorf("mesh library has no entry for %s", c)
	}
	return m, nil
}

// GenerateSphere builds a unit UV sphere with the given longitude segment
// and latitude ring counts. For a unit sphere each position is its own
// normal.
func GenerateSphere(segments, rings int) *Mesh {
	if segments < 3 {
		segments = 3
	}
	if rings < 2 {
		rings = 2
	}

	m := &Mesh{}

	for ring := 0; ring <= rings; ring++ {
		theta := float64(ring) * gomath.Pi / float64(rings)
		sinTheta := float32(gomath.Sin(theta))
		cosTheta := float32(gomath.Cos(theta))

		for seg := 0; seg <= segments; seg++ {
			phi := float64(seg) * 2.0 * gomath.Pi / float64(segments)
			sinPhi := float32(gomath.Sin(phi))
			cosPhi := float32(gomath.Cos(phi))

			p := math.Vec3{
				X: cosPhi * sinTheta,
				Y: cosTheta,
				Z: sinPhi * sinTheta,
			}
			m.Vertices = append(m.Vertices, Vertex{Position: p, Normal: p})
		}
	}

	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			current := uint32(ring*(segments+1) + seg)
			next := current + uint32(segments) + 1

			m.Indices = append(m.Indices, current, next, current+1)
			m.Indices = append(m.Indices, current+1, next, next+1)
		}
	}

	return m
}

// GenerateRing builds a flat annulus in the XZ plane between inner and
// outer radii. Both faces are emitted so the ring stays visible from
// either side of its plane under backface culling.
func GenerateRing(inner, outer float32, segments int) *Mesh {
	if segments < 3 {
		segments = 3
	}

	m := &Mesh{}
	up := math.Vec3{Y: 1}
	down := math.Vec3{Y: -1}

	// Two vertices per segment edge, duplicated per face for distinct normals.
	for seg := 0; seg <= segments; seg++ {
		phi := float64(seg) * 2.0 * gomath.Pi / float64(segments)
		c := float32(gomath.Cos(phi))
		s := float32(gomath.Sin(phi))

		in := math.Vec3{X: c * inner, Z: s * inner}
		out := math.Vec3{X: c * outer, Z: s * outer}

		m.Vertices = append(m.Vertices,
			Vertex{Position: in, Normal: up},
			Vertex{Position: out, Normal: up},
			Vertex{Position: in, Normal: down},
			Vertex{Position: out, Normal: down},
		)
	}

	for seg := 0; seg < segments; seg++ {
		base := uint32(seg * 4)
		next := base + 4

		// Top face.
		m.Indices = append(m.Indices, base, base+1, next)
		m.Indices = append(m.Indices, base+1, next+1, next)
		// Bottom face, wound the other way.
		m.Indices = append(m.Indices, base+2, next+2, base+3)
		m.Indices = append(m.Indices, base+3, next+2, next+3)
	}

	return m
}

package raster

import (
	gomath "math"

	"orrery/internal/engine/mesh"
	"orrery/pkg/math"
)

// Fragment carries the interpolated surface sample handed to shading.
type Fragment struct {
	World  math.Vec3 // world-space position
	Normal math.Vec3 // world-space normal, unit length
	Local  math.Vec3 // object-space position (surface coordinate)
}

// ShadeFunc produces a color for one covered pixel. Implementations must
// be pure functions of the fragment.
type ShadeFunc func(Fragment) Color

// Rasterizer fills triangles into a framebuffer with first-nearest-wins
// depth testing. It owns no geometry; meshes and transforms arrive per
// draw call.
type Rasterizer struct {
	fb *Framebuffer

	// scratch buffer reused across draws to avoid per-mesh allocation
	verts []transformedVertex
}

// NewRasterizer creates a rasterizer drawing into fb.
func NewRasterizer(fb *Framebuffer) *Rasterizer {
	return &Rasterizer{fb: fb}
}

// Framebuffer returns the target framebuffer.
func (r *Rasterizer) Framebuffer() *Framebuffer { return r.fb }

type transformedVertex struct {
	sx, sy float32 // screen coordinates, y down
	z      float32 // NDC depth
	w      float32 // clip-space w, kept for perspective-correct interpolation
	world  math.Vec3
	normal math.Vec3
	local  math.Vec3
	behind bool // w too small for a stable projection
}

// nearEpsilon rejects vertices at or behind the eye plane; triangles
// touching it are skipped rather than clipped.
const nearEpsilon = 1e-4

// DrawMesh rasterizes a mesh. Vertices are transformed by mvp, normals by
// the normal matrix, and world positions by the model matrix. shade is
// invoked only for pixels that pass the depth test.
func (r *Rasterizer) DrawMesh(m *mesh.Mesh, mvp math.Mat4, model math.Mat4, normal math.Mat3, shade ShadeFunc) {
	if cap(r.verts) < len(m.Vertices) {
		r.verts = make([]transformedVertex, len(m.Vertices))
	}
	r.verts = r.verts[:len(m.Vertices)]

	halfW := float32(r.fb.width) * 0.5
	halfH := float32(r.fb.height) * 0.5

	for i, v := range m.Vertices {
		clip := mvp.MulVec4(math.FromVec3(v.Position, 1))
		tv := &r.verts[i]

		if clip.W <= nearEpsilon {
			tv.behind = true
			continue
		}
		tv.behind = false

		invW := 1.0 / clip.W
		ndcX := clip.X * invW
		ndcY := clip.Y * invW
		tv.z = clip.Z * invW
		tv.w = clip.W

		tv.sx = (ndcX + 1) * halfW
		tv.sy = (1 - ndcY) * halfH

		tv.world = model.TransformPoint(v.Position)
		tv.normal = normal.MulVec3(v.Normal)
		tv.local = v.Position
	}

	for i := 0; i+2 < len(m.Indices); i += 3 {
		a := &r.verts[m.Indices[i]]
		b := &r.verts[m.Indices[i+1]]
		c := &r.verts[m.Indices[i+2]]
		r.fillTriangle(a, b, c, shade)
	}
}

// DrawRing rasterizes a ring mesh with analytic radial banding instead of
// shader dispatch: the color depends only on the distance from the ring's
// inner radius.
func (r *Rasterizer) DrawRing(m *mesh.Mesh, mvp math.Mat4, model math.Mat4, normal math.Mat3, inner, outer float32, bright, dark Color) {
	span := outer - inner
	if span <= 0 {
		span = 1
	}
	bands := float32(9.0)

	r.DrawMesh(m, mvp, model, normal, func(f Fragment) Color {
		radius := math.Vec2{X: f.Local.X, Y: f.Local.Z}.Length()
		t := (radius - inner) / span
		band := float32(gomath.Sin(float64(t * bands * gomath.Pi)))
		band = band * band // sharpen the gaps between bands
		return dark.Lerp(bright, band)
	})
}

// fillTriangle rasterizes one screen-space triangle with edge functions.
func (r *Rasterizer) fillTriangle(a, b, c *transformedVertex, shade ShadeFunc) {
	// Near-plane handling is a silent skip, not clipping.
	if a.behind || b.behind || c.behind {
		return
	}

	// Trivial reject: all three vertices outside the same NDC boundary.
	// Screen coordinates make the test cheap.
	w := float32(r.fb.width)
	h := float32(r.fb.height)
	if (a.sx < 0 && b.sx < 0 && c.sx < 0) ||
		(a.sx >= w && b.sx >= w && c.sx >= w) ||
		(a.sy < 0 && b.sy < 0 && c.sy < 0) ||
		(a.sy >= h && b.sy >= h && c.sy >= h) ||
		(a.z > 1 && b.z > 1 && c.z > 1) ||
		(a.z < -1 && b.z < -1 && c.z < -1) {
		return
	}

	// Signed area doubles as the backface test: front faces have
	// positive signed area in y-down screen space.
	area := (b.sx-a.sx)*(c.sy-a.sy) - (b.sy-a.sy)*(c.sx-a.sx)
	if area <= 0 {
		return // back-facing or degenerate
	}
	invArea := 1.0 / area

	minX := int(gomath.Max(0, gomath.Floor(float64(min3(a.sx, b.sx, c.sx)))))
	maxX := int(gomath.Min(float64(r.fb.width-1), gomath.Ceil(float64(max3(a.sx, b.sx, c.sx)))))
	minY := int(gomath.Max(0, gomath.Floor(float64(min3(a.sy, b.sy, c.sy)))))
	maxY := int(gomath.Min(float64(r.fb.height-1), gomath.Ceil(float64(max3(a.sy, b.sy, c.sy)))))

	invWA := 1.0 / a.w
	invWB := 1.0 / b.w
	invWC := 1.0 / c.w

	for y := minY; y <= maxY; y++ {
		py := float32(y) + 0.5
		rowBase := y * r.fb.width
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5

			// Edge functions; all non-negative means inside.
			w0 := (c.sx-b.sx)*(py-b.sy) - (c.sy-b.sy)*(px-b.sx)
			w1 := (a.sx-c.sx)*(py-c.sy) - (a.sy-c.sy)*(px-c.sx)
			w2 := (b.sx-a.sx)*(py-a.sy) - (b.sy-a.sy)*(px-a.sx)
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			l0 := w0 * invArea
			l1 := w1 * invArea
			l2 := w2 * invArea

			// NDC depth is affine in screen space, so plain barycentric
			// interpolation is exact here.
			z := l0*a.z + l1*b.z + l2*c.z

			idx := rowBase + x
			if z >= r.fb.depth[idx] {
				continue // first-nearest-wins; ties keep the earlier write
			}

			// Perspective-correct weights for the varyings.
			p0 := l0 * invWA
			p1 := l1 * invWB
			p2 := l2 * invWC
			sum := p0 + p1 + p2
			if sum == 0 {
				continue
			}
			p0 /= sum
			p1 /= sum
			p2 /= sum

			frag := Fragment{
				World: math.Vec3{
					X: p0*a.world.X + p1*b.world.X + p2*c.world.X,
					Y: p0*a.world.Y + p1*b.world.Y + p2*c.world.Y,
					Z: p0*a.world.Z + p1*b.world.Z + p2*c.world.Z,
				},
				Normal: math.Vec3{
					X: p0*a.normal.X + p1*b.normal.X + p2*c.normal.X,
					Y: p0*a.normal.Y + p1*b.normal.Y + p2*c.normal.Y,
					Z: p0*a.normal.Z + p1*b.normal.Z + p2*c.normal.Z,
				}.Normalize(),
				Local: math.Vec3{
					X: p0*a.local.X + p1*b.local.X + p2*c.local.X,
					Y: p0*a.local.Y + p1*b.local.Y + p2*c.local.Y,
					Z: p0*a.local.Z + p1*b.local.Z + p2*c.local.Z,
				},
			}

			r.fb.pixels[idx] = shade(frag).ARGB()
			r.fb.depth[idx] = z
		}
	}
}

func min3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}

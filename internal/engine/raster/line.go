package raster

// DrawPoint writes a single pixel, ignoring the depth buffer. Used for
// the star backdrop, which sits behind everything by construction.
func (r *Rasterizer) DrawPoint(x, y int, c Color) {
	r.fb.setPixel(x, y, c.ARGB())
}

// DrawLine draws a 1px line between two screen points with Bresenham's
// algorithm, ignoring the depth buffer. Orbit trails use it as an
// overlay primitive.
func (r *Rasterizer) DrawLine(x0, y0, x1, y1 int, c Color) {
	argb := c.ARGB()

	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		r.fb.setPixel(x0, y0, argb)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

package raster

import (
	"fmt"
	"math"
)

// farDepth is the cleared depth value; any rasterized depth is nearer.
const farDepth = float32(math.MaxFloat32)

// Framebuffer owns the pixel and depth planes for one viewport. Both are
// dense row-major arrays of identical dimensions, reallocated together on
// resize and reset together at the start of every frame.
type Framebuffer struct {
	width      int
	height     int
	pixels     []uint32
	depth      []float32
	background uint32
}

// NewFramebuffer allocates a framebuffer. Non-positive dimensions are a
// configuration error.
func NewFramebuffer(width, height int) (*Framebuffer, error) {
	fb := &Framebuffer{}
	if err := fb.Resize(width, height); err != nil {
		return nil, err
	}
	return fb, nil
}

// Resize reallocates both planes for the new viewport. Any in-flight
// frame content is discarded.
func (f *Framebuffer) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid framebuffer size %dx%d", width, height)
	}
	f.width = width
	f.height = height
	f.pixels = make([]uint32, width*height)
	f.depth = make([]float32, width*height)
	f.Clear()
	return nil
}

// SetBackground sets the clear color for subsequent frames.
func (f *Framebuffer) SetBackground(c Color) {
	f.background = c.ARGB()
}

// Clear resets the pixel plane to the background color and the depth
// plane to infinitely far. Called once at the start of every frame.
func (f *Framebuffer) Clear() {
	if len(f.pixels) == 0 {
		return
	}
	// Copy-doubling fill.
	f.pixels[0] = f.background
	for i := 1; i < len(f.pixels); i *= 2 {
		copy(f.pixels[i:], f.pixels[:i])
	}
	f.depth[0] = farDepth
	for i := 1; i < len(f.depth); i *= 2 {
		copy(f.depth[i:], f.depth[:i])
	}
}

// Width returns the viewport width in pixels.
func (f *Framebuffer) Width() int { return f.width }

// Height returns the viewport height in pixels.
func (f *Framebuffer) Height() int { return f.height }

// Pixels exposes the completed pixel plane for presentation. Callers must
// treat it as read-only.
func (f *Framebuffer) Pixels() []uint32 { return f.pixels }

// DepthAt returns the depth value at (x, y), or far for out-of-range
// coordinates.
func (f *Framebuffer) DepthAt(x, y int) float32 {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return farDepth
	}
	return f.depth[y*f.width+x]
}

// PixelAt returns the packed pixel at (x, y), or zero out of range.
func (f *Framebuffer) PixelAt(x, y int) uint32 {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return 0
	}
	return f.pixels[y*f.width+x]
}

// setPixel writes a pixel without a depth test. Used by the trail and
// backdrop primitives.
func (f *Framebuffer) setPixel(x, y int, argb uint32) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	f.pixels[y*f.width+x] = argb
}

package raster

import (
	"testing"

	"orrery/pkg/math"
)

func TestNewFramebufferRejectsBadSize(t *testing.T) {
	if _, err := NewFramebuffer(0, 600); err == nil {
		t.Error("expected error for zero width")
	}
	if _, err := NewFramebuffer(800, -1); err == nil {
		t.Error("expected error for negative height")
	}
}

func TestClearResetsBothPlanes(t *testing.T) {
	fb, err := NewFramebuffer(16, 16)
	if err != nil {
		t.Fatal(err)
	}
	fb.SetBackground(RGB(0, 0, 0))

	r := NewRasterizer(fb)
	r.DrawMesh(frontTriangle(0), math.Identity(), math.Identity(), math.Identity3(), flat(RGB(1, 0, 0)))

	fb.Clear()

	bg := RGB(0, 0, 0).ARGB()
	for i, p := range fb.Pixels() {
		if p != bg {
			t.Fatalf("pixel %d not reset: %#x", i, p)
		}
	}
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if fb.DepthAt(x, y) != farDepth {
				t.Fatalf("depth at (%d,%d) not reset", x, y)
			}
		}
	}
}

func TestResizeDiscardsOldFrame(t *testing.T) {
	fb, err := NewFramebuffer(800, 600)
	if err != nil {
		t.Fatal(err)
	}
	fb.SetBackground(RGB(0.1, 0.1, 0.1))
	fb.Clear()

	r := NewRasterizer(fb)
	r.DrawMesh(frontTriangle(0), math.Identity(), math.Identity(), math.Identity3(), flat(RGB(1, 1, 1)))

	if err := fb.Resize(400, 300); err != nil {
		t.Fatal(err)
	}

	if fb.Width() != 400 || fb.Height() != 300 {
		t.Fatalf("size after resize: %dx%d", fb.Width(), fb.Height())
	}
	if len(fb.Pixels()) != 400*300 {
		t.Fatalf("pixel plane length %d, want %d", len(fb.Pixels()), 400*300)
	}

	bg := RGB(0.1, 0.1, 0.1).ARGB()
	for i, p := range fb.Pixels() {
		if p != bg {
			t.Fatalf("residual pixel %d after resize: %#x", i, p)
		}
	}
	for y := 0; y < 300; y += 7 {
		for x := 0; x < 400; x += 7 {
			if fb.DepthAt(x, y) != farDepth {
				t.Fatalf("residual depth at (%d,%d)", x, y)
			}
		}
	}
}

package viewer

import (
	"testing"

	"orrery/internal/config"
	"orrery/internal/engine/camera"
	"orrery/internal/engine/input"
	"orrery/internal/engine/mesh"
	"orrery/internal/engine/raster"
	"orrery/internal/logger"
	"orrery/internal/scene"
	"orrery/pkg/math"
)

// newBareViewer builds a viewer without a window, enough to exercise
// projection, input handling and rendering into the framebuffer.
func newBareViewer(t *testing.T) *Viewer {
	t.Helper()

	cfg := config.Default()
	cfg.Graphics.Width = 320
	cfg.Graphics.Height = 200

	fb, err := raster.NewFramebuffer(cfg.Graphics.Width, cfg.Graphics.Height)
	if err != nil {
		t.Fatal(err)
	}
	fb.SetBackground(raster.RGB(0, 0, 0))

	sc, err := scene.New(cfg.Scene, cfg.Simulation.TrailLength)
	if err != nil {
		t.Fatal(err)
	}

	v := &Viewer{
		cfg:        cfg,
		log:        logger.Named("viewer"),
		fb:         fb,
		rast:       raster.NewRasterizer(fb),
		meshes:     mesh.NewLibrary(),
		scene:      sc,
		cam:        camera.New(camera.Orbit, cfg.Camera.Distance, camera.DefaultSettings()),
		stars:      scene.Starfield(cfg.Simulation.StarCount, cfg.Simulation.StarSeed),
		timeScale:  cfg.Simulation.TimeScale,
		showTrails: cfg.Simulation.ShowTrails,
	}
	v.updateProjection(cfg.Graphics.Width, cfg.Graphics.Height)
	return v
}

func TestProjectCenterOfView(t *testing.T) {
	v := newBareViewer(t)

	eye := math.Vec3{Z: 10}
	viewProj := v.proj.Mul(math.LookAt(eye, math.Vec3{}, math.Vec3{Y: 1}))

	x, y, ok := v.project(viewProj, math.Vec3{})
	if !ok {
		t.Fatal("point in front of the camera did not project")
	}
	if x < 155 || x > 165 || y < 95 || y > 105 {
		t.Errorf("origin projected to (%d, %d), want near (160, 100)", x, y)
	}
}

func TestProjectBehindCamera(t *testing.T) {
	v := newBareViewer(t)

	eye := math.Vec3{Z: 10}
	viewProj := v.proj.Mul(math.LookAt(eye, math.Vec3{}, math.Vec3{Y: 1}))

	if _, _, ok := v.project(viewProj, math.Vec3{Z: 30}); ok {
		t.Error("point behind the camera should not project")
	}
}

func TestApplyToggles(t *testing.T) {
	v := newBareViewer(t)

	v.apply(input.Snapshot{TogglePause: true}, 0.016)
	if !v.paused {
		t.Error("pause toggle ignored")
	}
	v.apply(input.Snapshot{TogglePause: true}, 0.016)
	if v.paused {
		t.Error("pause did not toggle back")
	}

	trails := v.showTrails
	v.apply(input.Snapshot{ToggleTrails: true}, 0.016)
	if v.showTrails == trails {
		t.Error("trail toggle ignored")
	}

	before := v.timeScale
	v.apply(input.Snapshot{SpeedUp: true}, 0.016)
	if v.timeScale != before*timeScaleStep {
		t.Errorf("speed up: time scale %g, want %g", v.timeScale, before*timeScaleStep)
	}
	v.apply(input.Snapshot{SlowDown: true}, 0.016)
	if v.timeScale != before {
		t.Errorf("slow down: time scale %g, want %g", v.timeScale, before)
	}

	mode := v.cam.Mode()
	v.apply(input.Snapshot{ToggleCamera: true}, 0.016)
	if v.cam.Mode() == mode {
		t.Error("camera toggle ignored")
	}
}

func TestResizeReshapesFramebuffer(t *testing.T) {
	v := newBareViewer(t)

	v.resize(640, 480)
	if v.fb.Width() != 640 || v.fb.Height() != 480 {
		t.Errorf("framebuffer is %dx%d after resize", v.fb.Width(), v.fb.Height())
	}

	// Bad sizes are rejected and leave the framebuffer intact.
	v.resize(0, -5)
	if v.fb.Width() != 640 || v.fb.Height() != 480 {
		t.Error("invalid resize should be ignored")
	}
}

func TestRenderProducesAFrame(t *testing.T) {
	v := newBareViewer(t)
	v.scene.Advance(1.0)

	v.render()

	background := raster.RGB(0, 0, 0).ARGB()
	written := 0
	for _, px := range v.fb.Pixels() {
		if px != background {
			written++
		}
	}
	if written == 0 {
		t.Fatal("rendered frame is entirely background")
	}
	// The sun alone should cover a visible patch of a 320x200 frame.
	if written < 100 {
		t.Errorf("only %d pixels written, expected a substantial frame", written)
	}
}

func TestTrailsFadeAlongTheirLength(t *testing.T) {
	v := newBareViewer(t)
	for i := 0; i < 60; i++ {
		v.scene.Advance(0.5)
	}

	v.fb.Clear()
	viewProj := v.proj.Mul(v.cam.ViewMatrix())
	v.drawTrails(viewProj)

	background := raster.RGB(0, 0, 0).ARGB()
	shades := map[uint32]bool{}
	for _, px := range v.fb.Pixels() {
		if px != background {
			shades[px] = true
		}
	}
	if len(shades) < 2 {
		t.Errorf("trail drawn in %d shades, want a gradient from old to new", len(shades))
	}
}

func TestRenderHonorsTrailToggle(t *testing.T) {
	v := newBareViewer(t)
	// Advance enough for trails to accumulate points.
	for i := 0; i < 30; i++ {
		v.scene.Advance(0.5)
	}

	countWritten := func() int {
		v.render()
		background := raster.RGB(0, 0, 0).ARGB()
		n := 0
		for _, px := range v.fb.Pixels() {
			if px != background {
				n++
			}
		}
		return n
	}

	v.showTrails = true
	withTrails := countWritten()
	v.showTrails = false
	withoutTrails := countWritten()

	if withTrails <= withoutTrails {
		t.Errorf("trails on wrote %d pixels, off wrote %d; expected more with trails",
			withTrails, withoutTrails)
	}
}

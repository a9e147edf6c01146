// Package viewer ties the pieces together: it owns the window, the
// framebuffer, the simulated scene and the camera, and runs the frame
// loop that renders one into the other.
package viewer

import (
	"fmt"
	gomath "math"
	"time"

	"go.uber.org/zap"

	"orrery/internal/config"
	"orrery/internal/engine/camera"
	"orrery/internal/engine/input"
	"orrery/internal/engine/mesh"
	"orrery/internal/engine/raster"
	"orrery/internal/engine/shading"
	"orrery/internal/engine/window"
	"orrery/internal/logger"
	"orrery/internal/scene"
	"orrery/pkg/math"
)

// starDistance pushes backdrop stars far enough out that no body ever
// reaches them.
const starDistance = 500

// timeScaleStep is the multiplier applied per speed-up/slow-down key.
const timeScaleStep = 2.0

// Viewer is the running application.
type Viewer struct {
	cfg     *config.Config
	log     *zap.Logger
	running bool

	window *window.Window
	input  *input.Input
	fb     *raster.Framebuffer
	rast   *raster.Rasterizer
	meshes *mesh.Library

	scene *scene.Scene
	cam   *camera.Camera
	stars []scene.Star
	proj  math.Mat4

	timeScale  float32
	paused     bool
	showTrails bool

	trailScratch []math.Vec3
}

// New creates a viewer from the loaded configuration.
func New(cfg *config.Config) (*Viewer, error) {
	log := logger.Named("viewer")
	log.Info("initializing",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Int("bodies", len(cfg.Scene.Bodies)),
	)

	mode, err := camera.ParseMode(cfg.Camera.Mode)
	if err != nil {
		return nil, err
	}

	background, err := shading.ParseHex(cfg.Graphics.Background)
	if err != nil {
		return nil, fmt.Errorf("background color: %w", err)
	}

	v := &Viewer{
		cfg:        cfg,
		log:        log,
		timeScale:  cfg.Simulation.TimeScale,
		showTrails: cfg.Simulation.ShowTrails,
	}

	v.scene, err = scene.New(cfg.Scene, cfg.Simulation.TrailLength)
	if err != nil {
		return nil, fmt.Errorf("building scene: %w", err)
	}

	v.window, err = window.New(window.Config{
		Title:      "Orrery",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	v.fb, err = raster.NewFramebuffer(cfg.Graphics.Width, cfg.Graphics.Height)
	if err != nil {
		v.window.Close()
		return nil, err
	}
	v.fb.SetBackground(background)
	v.rast = raster.NewRasterizer(v.fb)

	v.meshes = mesh.NewLibrary()
	v.input = input.New()
	v.cam = camera.New(mode, cfg.Camera.Distance, camera.Settings{
		MinDistance: cfg.Camera.MinDistance,
		MaxDistance: cfg.Camera.MaxDistance,
		MoveSpeed:   cfg.Camera.MoveSpeed,
		Sensitivity: cfg.Camera.Sensitivity,
		ZoomStep:    cfg.Camera.ZoomStep,
	})
	v.stars = scene.Starfield(cfg.Simulation.StarCount, cfg.Simulation.StarSeed)
	v.updateProjection(cfg.Graphics.Width, cfg.Graphics.Height)

	log.Info("initialized", zap.String("camera", mode.String()))
	return v, nil
}

// Run drives the frame loop until the user quits.
func (v *Viewer) Run() error {
	v.running = true
	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	var frameBudget time.Duration
	if v.cfg.Graphics.FPSLimit > 0 {
		frameBudget = time.Second / time.Duration(v.cfg.Graphics.FPSLimit)
	}

	v.log.Info("starting frame loop")

	for v.running {
		frameStart := time.Now()
		dt := float32(frameStart.Sub(lastTime).Seconds())
		lastTime = frameStart

		snap := v.input.Poll()
		if snap.Quit {
			break
		}
		v.apply(snap, dt)

		if !v.paused {
			v.scene.Advance(dt * v.timeScale)
		}

		v.render()

		if err := v.window.Present(v.fb.Pixels(), v.fb.Width(), v.fb.Height()); err != nil {
			return fmt.Errorf("presenting frame: %w", err)
		}

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			if v.cfg.Graphics.ShowFPS {
				v.window.SetTitle(fmt.Sprintf("Orrery | %d fps", frameCount))
			}
			v.log.Debug("fps",
				zap.Int("count", frameCount),
				zap.Float32("sim_time", v.scene.Time()),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}

		if frameBudget > 0 {
			if elapsed := time.Since(frameStart); elapsed < frameBudget {
				time.Sleep(frameBudget - elapsed)
			}
		}
	}

	return nil
}

// apply folds one input snapshot into viewer and camera state.
func (v *Viewer) apply(snap input.Snapshot, dt float32) {
	if snap.Resized {
		v.resize(snap.Width, snap.Height)
	}
	if snap.ToggleCamera {
		v.log.Info("camera mode", zap.String("mode", v.cam.CycleMode().String()))
	}
	if snap.TogglePause {
		v.paused = !v.paused
		v.log.Info("simulation", zap.Bool("paused", v.paused))
	}
	if snap.ToggleTrails {
		v.showTrails = !v.showTrails
	}
	if snap.SpeedUp {
		v.timeScale *= timeScaleStep
		v.log.Info("time scale", zap.Float32("scale", v.timeScale))
	}
	if snap.SlowDown {
		v.timeScale /= timeScaleStep
		v.log.Info("time scale", zap.Float32("scale", v.timeScale))
	}

	if snap.DragX != 0 || snap.DragY != 0 {
		v.cam.HandleDrag(snap.DragX, snap.DragY)
	}
	if snap.Wheel != 0 {
		v.cam.HandleZoom(snap.Wheel)
	}
	if snap.Forward != 0 || snap.Right != 0 || snap.Up != 0 {
		v.cam.Move(snap.Forward, snap.Right, snap.Up, dt)
	}
}

// resize propagates a window resize to the framebuffer and projection.
func (v *Viewer) resize(width, height int) {
	if err := v.fb.Resize(width, height); err != nil {
		v.log.Warn("ignoring resize", zap.Error(err))
		return
	}
	v.updateProjection(width, height)
	v.log.Debug("resized", zap.Int("width", width), zap.Int("height", height))
}

func (v *Viewer) updateProjection(width, height int) {
	aspect := float32(width) / float32(height)
	v.proj = math.Perspective(radians(v.cfg.Camera.FOV), aspect, 0.1, 1000)
}

// render draws one complete frame into the framebuffer.
func (v *Viewer) render() {
	v.fb.Clear()

	view := v.cam.ViewMatrix()
	viewProj := v.proj.Mul(view)
	eye := v.cam.Position()

	v.drawStars(viewProj, eye)
	v.drawBodies(viewProj)
	if v.showTrails {
		v.drawTrails(viewProj)
	}
}

// drawStars paints the backdrop. Stars sit at a fixed distance from
// the eye so they never parallax against the bodies.
func (v *Viewer) drawStars(viewProj math.Mat4, eye math.Vec3) {
	for _, star := range v.stars {
		p := eye.Add(star.Dir.Scale(starDistance))
		x, y, ok := v.project(viewProj, p)
		if !ok {
			continue
		}
		c := raster.RGB(star.Brightness, star.Brightness, star.Brightness)
		v.rast.DrawPoint(x, y, c)
	}
}

func (v *Viewer) drawBodies(viewProj math.Mat4) {
	sphere, err := v.meshes.Mesh(mesh.Sphere)
	if err != nil {
		v.log.Error("sphere mesh missing", zap.Error(err))
		return
	}
	ring, err := v.meshes.Mesh(mesh.Ring)
	if err != nil {
		v.log.Error("ring mesh missing", zap.Error(err))
		return
	}

	simTime := v.scene.Time()

	for _, b := range v.scene.Bodies {
		model := v.scene.WorldTransform(b)
		normal := math.NormalMatrix(model)
		mvp := viewProj.Mul(model)

		shader := b.Shader
		v.rast.DrawMesh(sphere, mvp, model, normal, func(f raster.Fragment) raster.Color {
			return shader.Shade(shading.Sample{
				World:  f.World,
				Normal: f.Normal,
				Local:  f.Local,
				Time:   simTime,
			})
		})

		if b.Ring != nil {
			ringModel := v.scene.RingTransform(b)
			v.rast.DrawRing(ring, viewProj.Mul(ringModel), ringModel, math.NormalMatrix(ringModel),
				mesh.RingInnerRadius, mesh.RingOuterRadius, b.Ring.Bright, b.Ring.Dark)
		}
	}
}

func (v *Viewer) drawTrails(viewProj math.Mat4) {
	// Trails fade along their length, oldest segments dimmest.
	dim := raster.RGB(0.05, 0.05, 0.05)
	bright := raster.RGB(0.4, 0.4, 0.4)

	for _, b := range v.scene.Bodies {
		if b.Trail == nil {
			continue
		}
		v.trailScratch = b.Trail.Points(v.trailScratch[:0])
		if len(v.trailScratch) < 2 {
			continue
		}
		segments := len(v.trailScratch) - 1

		prevX, prevY, prevOK := 0, 0, false
		for i, p := range v.trailScratch {
			x, y, ok := v.project(viewProj, p)
			if ok && prevOK {
				t := float32(i-1) / float32(segments)
				v.rast.DrawLine(prevX, prevY, x, y, dim.Lerp(bright, t))
			}
			prevX, prevY, prevOK = x, y, ok
		}
	}
}

// project maps a world point to pixel coordinates. ok is false when
// the point is behind the camera or outside the viewport.
func (v *Viewer) project(viewProj math.Mat4, p math.Vec3) (int, int, bool) {
	clip := viewProj.MulVec4(math.FromVec3(p, 1))
	if clip.W <= 1e-4 {
		return 0, 0, false
	}

	ndcX := clip.X / clip.W
	ndcY := clip.Y / clip.W
	if ndcX < -1 || ndcX > 1 || ndcY < -1 || ndcY > 1 {
		return 0, 0, false
	}

	x := int((ndcX + 1) * 0.5 * float32(v.fb.Width()))
	y := int((1 - ndcY) * 0.5 * float32(v.fb.Height()))
	if x < 0 || x >= v.fb.Width() || y < 0 || y >= v.fb.Height() {
		return 0, 0, false
	}
	return x, y, true
}

// Close releases the window and SDL resources.
func (v *Viewer) Close() {
	v.log.Info("closing")
	if v.window != nil {
		v.window.Close()
	}
}

func radians(degrees float32) float32 {
	return degrees * gomath.Pi / 180
}

// Package window handles SDL2 window creation and frame presentation.
package window

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/veandco/go-sdl2/sdl"
)

func init() {
	// SDL window and renderer calls must stay on the main thread
	runtime.LockOSThread()
}

// Config holds window configuration.
type Config struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	VSync      bool
}

// Window wraps an SDL2 window with a streaming texture that frames
// rendered on the CPU are copied into.
type Window struct {
	config    Config
	sdlWindow *sdl.Window
	renderer  *sdl.Renderer
	texture   *sdl.Texture
	texW      int
	texH      int
}

// New creates a window and the renderer backing it.
func New(cfg Config) (*Window, error) {
	w := &Window{
		config: cfg,
	}

	slog.Info("initializing SDL2")
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return nil, fmt.Errorf("SDL_Init failed: %w", err)
	}

	flags := uint32(sdl.WINDOW_SHOWN | sdl.WINDOW_RESIZABLE)
	if cfg.Fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN
	}

	var err error
	w.sdlWindow, err = sdl.CreateWindow(
		cfg.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(cfg.Width),
		int32(cfg.Height),
		flags,
	)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateWindow failed: %w", err)
	}

	rendererFlags := uint32(sdl.RENDERER_ACCELERATED)
	if cfg.VSync {
		rendererFlags |= sdl.RENDERER_PRESENTVSYNC
	}
	w.renderer, err = sdl.CreateRenderer(w.sdlWindow, -1, rendererFlags)
	if err != nil {
		w.sdlWindow.Destroy()
		sdl.Quit()
		return nil, fmt.Errorf("SDL_CreateRenderer failed: %w", err)
	}

	if err := w.ensureTexture(cfg.Width, cfg.Height); err != nil {
		w.Close()
		return nil, err
	}

	slog.Info("window created",
		"title", cfg.Title,
		"width", cfg.Width,
		"height", cfg.Height,
		"fullscreen", cfg.Fullscreen,
		"vsync", cfg.VSync,
	)

	return w, nil
}

// ensureTexture (re)creates the streaming texture at the given size.
func (w *Window) ensureTexture(width, height int) error {
	if w.texture != nil && w.texW == width && w.texH == height {
		return nil
	}
	if w.texture != nil {
		w.texture.Destroy()
		w.texture = nil
	}

	tex, err := w.renderer.CreateTexture(
		sdl.PIXELFORMAT_ARGB8888,
		sdl.TEXTUREACCESS_STREAMING,
		int32(width),
		int32(height),
	)
	if err != nil {
		return fmt.Errorf("SDL_CreateTexture failed: %w", err)
	}

	w.texture = tex
	w.texW = width
	w.texH = height
	return nil
}

// Present copies a frame of packed ARGB pixels to the screen. The
// pixel slice must hold width*height values, row major.
func (w *Window) Present(pixels []uint32, width, height int) error {
	if len(pixels) != width*height {
		return fmt.Errorf("pixel buffer is %d values, want %d", len(pixels), width*height)
	}
	if err := w.ensureTexture(width, height); err != nil {
		return err
	}

	if err := w.texture.UpdateRGBA(nil, pixels, width); err != nil {
		return fmt.Errorf("SDL_UpdateTexture failed: %w", err)
	}
	if err := w.renderer.Clear(); err != nil {
		return fmt.Errorf("SDL_RenderClear failed: %w", err)
	}
	if err := w.renderer.Copy(w.texture, nil, nil); err != nil {
		return fmt.Errorf("SDL_RenderCopy failed: %w", err)
	}
	w.renderer.Present()
	return nil
}

// Close destroys the window and cleans up SDL2.
func (w *Window) Close() {
	slog.Info("closing window")

	if w.texture != nil {
		w.texture.Destroy()
	}
	if w.renderer != nil {
		w.renderer.Destroy()
	}
	if w.sdlWindow != nil {
		w.sdlWindow.Destroy()
	}

	sdl.Quit()
}

// GetSize returns the current window size.
func (w *Window) GetSize() (int, int) {
	width, height := w.sdlWindow.GetSize()
	return int(width), int(height)
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) {
	w.sdlWindow.SetTitle(title)
}

// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Snapshot is one frame of input, already digested for the viewer:
// held movement axes, one-shot toggle edges, and accumulated mouse
// deltas.
type Snapshot struct {
	Quit    bool
	Resized bool
	Width   int
	Height  int

	// One-shot key edges
	ToggleCamera bool // Tab
	TogglePause  bool // Space
	ToggleTrails bool // T
	SpeedUp      bool // ]
	SlowDown     bool // [

	// Held movement axes, each in [-1, 1]
	Forward float32 // W / S
	Right   float32 // D / A

	Up float32 // E / Q

	// Mouse, accumulated over the frame
	DragX float32 // pixels while the left button is held
	DragY float32
	Wheel float32 // scroll notches, positive away from the user
}

// Input pumps SDL events into per-frame snapshots.
type Input struct {
	keyboard []uint8
}

// New creates a new input handler.
func New() *Input {
	return &Input{}
}

// Poll drains pending SDL events and samples the keyboard, returning
// the frame's input snapshot. Call exactly once per frame.
func (i *Input) Poll() Snapshot {
	var s Snapshot

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			s.Quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				s.Resized = true
				s.Width = int(e.Data1)
				s.Height = int(e.Data2)
			}

		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
				switch e.Keysym.Scancode {
				case sdl.SCANCODE_TAB:
					s.ToggleCamera = true
				case sdl.SCANCODE_SPACE:
					s.TogglePause = true
				case sdl.SCANCODE_T:
					s.ToggleTrails = true
				case sdl.SCANCODE_RIGHTBRACKET:
					s.SpeedUp = true
				case sdl.SCANCODE_LEFTBRACKET:
					s.SlowDown = true
				case sdl.SCANCODE_ESCAPE:
					s.Quit = true
				}
			}

		case *sdl.MouseMotionEvent:
			if e.State&sdl.ButtonLMask() != 0 {
				s.DragX += float32(e.XRel)
				s.DragY += float32(e.YRel)
			}

		case *sdl.MouseWheelEvent:
			s.Wheel += float32(e.Y)
		}
	}

	i.keyboard = sdl.GetKeyboardState()
	s.Forward, s.Right, s.Up = movementAxes(i.keyboard)

	return s
}

// movementAxes folds held WASD/QE keys into three signed axes.
func movementAxes(keys []uint8) (forward, right, up float32) {
	held := func(code sdl.Scancode) bool {
		return int(code) < len(keys) && keys[code] != 0
	}

	if held(sdl.SCANCODE_W) {
		forward++
	}
	if held(sdl.SCANCODE_S) {
		forward--
	}
	if held(sdl.SCANCODE_D) {
		right++
	}
	if held(sdl.SCANCODE_A) {
		right--
	}
	if held(sdl.SCANCODE_E) {
		up++
	}
	if held(sdl.SCANCODE_Q) {
		up--
	}
	return forward, right, up
}

// Package input polls SDL2 events into per-frame state for the viewer.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// Resize is a window size change seen this frame.
type Resize struct {
	Width  int
	Height int
}

// Input tracks keyboard state across frames: held keys survive between
// updates, pressed keys reset every frame.
type Input struct {
	held    map[sdl.Scancode]bool
	pressed map[sdl.Scancode]bool
	resize  *Resize
}

// New creates an input handler.
func New() *Input {
	return &Input{
		held:    make(map[sdl.Scancode]bool),
		pressed: make(map[sdl.Scancode]bool),
	}
}

// Update drains the SDL event queue. Returns true when the window was
// closed.
func (in *Input) Update() bool {
	for k := range in.pressed {
		delete(in.pressed, k)
	}
	in.resize = nil

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			return true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				in.resize = &Resize{Width: int(e.Data1), Height: int(e.Data2)}
			}

		case *sdl.KeyboardEvent:
			switch e.Type {
			case sdl.KEYDOWN:
				if e.Repeat == 0 {
					in.pressed[e.Keysym.Scancode] = true
				}
				in.held[e.Keysym.Scancode] = true
			case sdl.KEYUP:
				delete(in.held, e.Keysym.Scancode)
			}
		}
	}
	return false
}

// IsKeyDown reports whether the key is currently held.
func (in *Input) IsKeyDown(scancode sdl.Scancode) bool {
	return in.held[scancode]
}

// IsKeyPressed reports whether the key went down this frame.
func (in *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	return in.pressed[scancode]
}

// Resized returns the last resize of this frame, or nil.
func (in *Input) Resized() *Resize {
	return in.resize
}

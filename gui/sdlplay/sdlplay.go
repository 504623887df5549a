// This file is part of Chipper.
//
// Chipper is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Chipper is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Chipper.  If not, see <https://www.gnu.org/licenses/>.

// Package sdlplay opens a window showing the display of the machine. Key down
// and key up events in the window are presented to the machine through an
// input.HeldKey.
//
// All SDL functions must be called from the main thread. The Render()
// function only records the frame and can be called from any goroutine. The
// frame is drawn by the next call to Service().
package sdlplay

import (
	"context"
	"runtime"
	"sync"

	"github.com/chipper-emu/chipper/assert"
	"github.com/chipper-emu/chipper/curated"
	"github.com/chipper-emu/chipper/gui"
	"github.com/chipper-emu/chipper/hardware/display"
	"github.com/chipper-emu/chipper/hardware/input"
	"github.com/chipper-emu/chipper/logger"
	"github.com/chipper-emu/chipper/performance/limiter"
	"github.com/veandco/go-sdl2/sdl"
)

// height of the key row in display pixels. there is a gap of one pixel
// between the display and the key row
const keyRowHeight = 2

// width of each key in the key row in display pixels
const keyWidth = display.Width / input.NumKeys

// SdlPlay implements the gui.Renderer and gui.Service interfaces.
type SdlPlay struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	scale    int32

	// limits the rate of the Service() loop
	lmtr *limiter.Limiter

	keys input.HeldKey

	crit     sync.Mutex
	frame    display.Frame
	keyState [input.NumKeys]bool
	dirty    bool
	onExit   func()

	// the window has been closed. only accessed by the main thread
	closed bool

	mainthread assert.Goroutine
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay. Must be
// called from the main thread. Each display pixel is drawn as a square of
// scale by scale window pixels.
func NewSdlPlay(scale int32, fps int) (*SdlPlay, error) {
	// the SDL package calls LockOSThread() but we call it here too
	runtime.LockOSThread()

	scr := &SdlPlay{
		scale:      max(scale, 1),
		lmtr:       limiter.NewLimiter(fps),
		dirty:      true,
		mainthread: assert.ThisGoroutine(),
	}

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, curated.Errorf(gui.Unavailable, "sdl", err)
	}

	w := display.Width * scr.scale
	h := (display.Height + 1 + keyRowHeight) * scr.scale

	scr.window, err = sdl.CreateWindow("Chipper",
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		w, h,
		uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(gui.Unavailable, "sdl", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		_ = scr.window.Destroy()
		sdl.Quit()
		return nil, curated.Errorf(gui.Unavailable, "sdl", err)
	}

	logger.Logf(logger.Allow, "sdlplay", "window opened (%dx%d)", w, h)

	return scr, nil
}

// Destroy closes the window. Must be called from the main thread.
func (scr *SdlPlay) Destroy() {
	scr.lmtr.Stop()
	if err := scr.renderer.Destroy(); err != nil {
		logger.Log(logger.Allow, "sdlplay", err)
	}
	if err := scr.window.Destroy(); err != nil {
		logger.Log(logger.Allow, "sdlplay", err)
	}
	sdl.Quit()
}

// Source returns the input.Source for key events in the window.
func (scr *SdlPlay) Source() input.Source {
	return &scr.keys
}

// SetExit sets the function to call when the window is closed.
func (scr *SdlPlay) SetExit(onExit func()) {
	scr.crit.Lock()
	defer scr.crit.Unlock()
	scr.onExit = onExit
}

// SetTitle changes the window title. Must be called from the main thread.
func (scr *SdlPlay) SetTitle(title string) {
	scr.window.SetTitle(title)
}

// Render implements the gui.Renderer interface.
func (scr *SdlPlay) Render(frame display.Frame, keys [input.NumKeys]bool) error {
	scr.crit.Lock()
	defer scr.crit.Unlock()
	if scr.frame != frame || scr.keyState != keys {
		scr.frame = frame
		scr.keyState = keys
		scr.dirty = true
	}
	return nil
}

// Service implements the gui.Service interface. Must be called from the main
// thread.
func (scr *SdlPlay) Service() bool {
	if !scr.mainthread.IsCurrent() {
		panic("sdlplay: Service() called from outside the main thread")
	}
	if scr.closed {
		return false
	}

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.close()
			return false

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				break
			}
			raw, ok := rawKey(ev.Keysym.Sym)
			if !ok {
				break
			}
			switch ev.Type {
			case sdl.KEYDOWN:
				scr.keys.Hold(raw)
			case sdl.KEYUP:
				scr.keys.Release(raw)
			}
		}
	}

	if err := scr.draw(); err != nil {
		logger.Log(logger.Allow, "sdlplay", err)
	}

	_ = scr.lmtr.Wait(context.Background())

	return true
}

func (scr *SdlPlay) close() {
	scr.closed = true
	scr.window.Hide()

	scr.crit.Lock()
	onExit := scr.onExit
	scr.crit.Unlock()

	logger.Log(logger.Allow, "sdlplay", "window closed")
	if onExit != nil {
		onExit()
	}
}

// rawKey converts the SDL key code to the raw byte used by the input
// package. SDL key codes for printable keys and the escape key are the same
// as their ASCII values.
func rawKey(sym sdl.Keycode) (byte, bool) {
	if sym < 0 || sym > 0x7f {
		return 0, false
	}
	return byte(sym), true
}

func (scr *SdlPlay) draw() error {
	scr.crit.Lock()
	if !scr.dirty {
		scr.crit.Unlock()
		return nil
	}
	frame := scr.frame
	keys := scr.keyState
	scr.dirty = false
	scr.crit.Unlock()

	if err := scr.renderer.SetDrawColor(0, 0, 0, 255); err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}
	if err := scr.renderer.Clear(); err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}

	if err := scr.renderer.SetDrawColor(255, 255, 255, 255); err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}
	for row := range display.Height {
		for col := range display.Width {
			if !frame.Pixel(row, col) {
				continue
			}
			if err := scr.renderer.FillRect(scr.rect(col, row, 1, 1)); err != nil {
				return curated.Errorf("sdlplay: %v", err)
			}
		}
	}

	// key row
	if err := scr.renderer.SetDrawColor(255, 160, 0, 255); err != nil {
		return curated.Errorf("sdlplay: %v", err)
	}
	for k, pressed := range keys {
		if !pressed {
			continue
		}
		r := scr.rect(k*keyWidth, display.Height+1, keyWidth-1, keyRowHeight)
		if err := scr.renderer.FillRect(r); err != nil {
			return curated.Errorf("sdlplay: %v", err)
		}
	}

	scr.renderer.Present()

	return nil
}

// rect returns the window rectangle for an area measured in display pixels
func (scr *SdlPlay) rect(x, y, w, h int) *sdl.Rect {
	return &sdl.Rect{
		X: int32(x) * scr.scale,
		Y: int32(y) * scr.scale,
		W: int32(w) * scr.scale,
		H: int32(h) * scr.scale,
	}
}

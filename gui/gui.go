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

package gui

import (
	"github.com/chipper-emu/chipper/hardware/display"
	"github.com/chipper-emu/chipper/hardware/input"
)

// Renderer presents the display and the state of the keypad to the user.
// Render() is called from the display refresh activity and must not block for
// longer than a frame.
type Renderer interface {
	Render(frame display.Frame, keys [input.NumKeys]bool) error
}

// AudioSink receives the state of the sound timer once every timer tick.
type AudioSink interface {
	SetSound(active bool) error
}

// Service is implemented by user interfaces that must handle events on the
// main thread. Service() returns false once the user interface has been
// closed.
type Service interface {
	Service() bool
}

// Sentinal errors.
const (
	NotATerminal = "gui: not a terminal (%s)"
	Unavailable  = "gui: %s unavailable: %v"
)

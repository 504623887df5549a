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

// Package gui defines the interfaces between the machine and the user
// interface. The playmode package drives implementations of these interfaces.
//
// The terminal package draws the display with text characters and reads keys
// from a terminal in raw mode. The sdlplay package opens a window. The
// speaker package plays a tone while the sound timer is active.
//
// Renderer and AudioSink implementations can be used from any goroutine but
// only from one at a time. An implementation of Service must only be used
// from the main thread.
package gui

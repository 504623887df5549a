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

// Package playmode runs the machine in real time. Four activities run
// concurrently, each in its own goroutine:
//
//	execution: steps the machine at the configured instructions per second
//	timers: ticks the delay and sound timers at 60Hz and forwards the state
//	        of the sound timer to the attached audio sinks
//	refresh: hands the display and keypad to the renderer at the configured
//	         frames per second
//	sampling: takes observations from the input source at the configured rate
//
// The machine's operations are safe for concurrent use so the activities
// share it without further synchronisation.
//
// The run ends when the exit key is observed, when Quit() is called, when the
// context is cancelled or when the machine faults. A failure in the renderer,
// an audio sink or the input source ends that activity only. The failure is
// logged and returned by Run() once the run has ended.
package playmode

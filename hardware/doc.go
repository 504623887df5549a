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

// Package hardware is the base package for the machine. The Machine type is
// the single owner of the CPU, memory, display, keypad and timers. Other
// packages interact with the machine through the narrow set of functions
// defined here. All of them are safe to call concurrently with Step() except
// where noted.
//
// Run() executes instructions as quickly as possible until the continueCheck
// function returns govern.Ending. The playmode package is responsible for
// running the machine at the correct speed alongside the display, input and
// timer activities.
package hardware

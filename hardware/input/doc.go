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

// Package input coordinates the 16 key keypad of the machine with the
// physical keyboard of the host.
//
// The Keypad holds the pressed state of each key and a latch recording the
// most recently pressed key. It is safe for concurrent use.
//
// A Source is a non-blocking observation of the key presented by the host.
// The Sampler takes observations from a Source, translates them with
// Lookup() and updates the Keypad. Only one key is tracked at a time: when
// the observed key changes, the previous key is released and the new key is
// pressed.
//
// The keyboard layout is the conventional one:
//
//	1 2 3 4        1 2 3 C
//	q w e r   ->   4 5 6 D
//	a s d f        7 8 9 E
//	z x c v        A 0 B F
//
// The escape key and Ctrl-C are translated to the Exit code.
package input

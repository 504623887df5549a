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

// Package terminal is a text user interface for the machine. The Renderer
// draws the display with '#' characters followed by a row showing the state
// of the keypad. The KeyReader presents keys read from a terminal in raw mode.
//
// Terminals do not report when a key is released so the KeyReader presents
// every key for a fixed hold duration.
//
// The Terminal type wraps the termios attributes of the input terminal. It
// should be put into raw mode before reading keys and returned to canonical
// mode before the program ends:
//
//	term, err := terminal.NewTerminal(os.Stdin)
//	if err != nil {
//		return err
//	}
//	term.RawMode()
//	defer term.CanonicalMode()
package terminal

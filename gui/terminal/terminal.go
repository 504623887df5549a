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

package terminal

import (
	"os"

	"github.com/chipper-emu/chipper/curated"
	"github.com/chipper-emu/chipper/gui"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Terminal is the input terminal.
type Terminal struct {
	input *os.File

	canAttr unix.Termios
	rawAttr unix.Termios
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type. The input file must be a terminal.
func NewTerminal(input *os.File) (*Terminal, error) {
	if input == nil || !term.IsTerminal(int(input.Fd())) {
		name := "nil"
		if input != nil {
			name = input.Name()
		}
		return nil, curated.Errorf(gui.NotATerminal, name)
	}

	t := &Terminal{input: input}

	err := termios.Tcgetattr(t.input.Fd(), &t.canAttr)
	if err != nil {
		return nil, curated.Errorf("terminal: %v", err)
	}

	// raw mode but with output processing so that newlines in the rendered
	// frame still return the carriage
	t.rawAttr = t.canAttr
	termios.Cfmakeraw(&t.rawAttr)
	t.rawAttr.Oflag |= unix.OPOST | unix.ONLCR

	return t, nil
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (t *Terminal) CanonicalMode() error {
	err := termios.Tcsetattr(t.input.Fd(), termios.TCIFLUSH, &t.canAttr)
	if err != nil {
		return curated.Errorf("terminal: %v", err)
	}
	return nil
}

// RawMode puts terminal into raw mode. Keys are available as soon as they
// are pressed and are not echoed.
func (t *Terminal) RawMode() error {
	err := termios.Tcsetattr(t.input.Fd(), termios.TCIFLUSH, &t.rawAttr)
	if err != nil {
		return curated.Errorf("terminal: %v", err)
	}
	return nil
}

// Input returns the input file of the terminal.
func (t *Terminal) Input() *os.File {
	return t.input
}

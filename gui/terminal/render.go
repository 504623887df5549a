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
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/buger/goterm"
	"github.com/chipper-emu/chipper/curated"
	"github.com/chipper-emu/chipper/hardware/display"
	"github.com/chipper-emu/chipper/hardware/input"
	"golang.org/x/term"
)

// number of lines in the output of FrameString()
const frameLines = display.Height + 1

// FrameString renders the frame and the state of the keypad as text. Set
// pixels are '#' and clear pixels are ' '. The final line shows pressed keys
// as '*' and released keys as '_'.
func FrameString(frame display.Frame, keys [input.NumKeys]bool) string {
	var s strings.Builder
	s.WriteString(frame.String())
	for _, k := range keys {
		if k {
			s.WriteRune('*')
		} else {
			s.WriteRune('_')
		}
	}
	s.WriteRune('\n')
	return s.String()
}

// Renderer implements the gui.Renderer interface.
type Renderer struct {
	output io.Writer

	// output is the standard output and it is a terminal
	stdout bool
}

// NewRenderer is the preferred method of initialisation for the Renderer
// type. Rendering to a terminal on the standard output clears the screen
// before every frame.
func NewRenderer(output io.Writer) *Renderer {
	r := &Renderer{output: output}
	if f, ok := output.(*os.File); ok && f == os.Stdout {
		r.stdout = term.IsTerminal(int(f.Fd()))
	}
	return r
}

// Render implements the gui.Renderer interface.
func (r *Renderer) Render(frame display.Frame, keys [input.NumKeys]bool) error {
	s := FrameString(frame, keys)

	// goterm drops lines that don't fit in the terminal
	if r.stdout && goterm.Height() > frameLines {
		goterm.Clear()
		goterm.MoveCursor(1, 1)
		if _, err := goterm.Print(s); err != nil {
			return curated.Errorf("terminal: %v", err)
		}
		goterm.Flush()
		return nil
	}

	if _, err := fmt.Fprint(r.output, s); err != nil {
		return curated.Errorf("terminal: %v", err)
	}
	return nil
}

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

package display

import (
	"math/bits"
	"strings"
)

// Dimensions of the display.
const (
	Width  = 64
	Height = 32
)

// Frame is a snapshot of the display.
type Frame [Height]uint64

// Pixel returns true if the pixel at row and column is set. Coordinates wrap.
func (f Frame) Pixel(row int, col int) bool {
	row = ((row % Height) + Height) % Height
	col = ((col % Width) + Width) % Width
	return f[row]&(uint64(1)<<(Width-1-col)) != 0
}

// Count returns the number of set pixels in the frame.
func (f Frame) Count() int {
	var n int
	for _, r := range f {
		n += bits.OnesCount64(r)
	}
	return n
}

// String renders the frame as text with '#' for a set pixel and ' ' for a
// clear pixel. Each row ends with a newline.
func (f Frame) String() string {
	var s strings.Builder
	s.Grow(Height * (Width + 1))
	for _, r := range f {
		for c := range Width {
			if r&(uint64(1)<<(Width-1-c)) != 0 {
				s.WriteRune('#')
			} else {
				s.WriteRune(' ')
			}
		}
		s.WriteRune('\n')
	}
	return s.String()
}

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
	"sync"
)

// Display is the frame buffer of the machine.
type Display struct {
	crit sync.Mutex
	rows Frame

	// the number of draw operations since the display was created. useful
	// for renderers that only want to redraw on a change
	draws uint64
}

// NewDisplay is the preferred method of initialisation for the Display type.
func NewDisplay() *Display {
	return &Display{}
}

// Clear turns off every pixel.
func (dsp *Display) Clear() {
	dsp.crit.Lock()
	defer dsp.crit.Unlock()
	dsp.rows = Frame{}
	dsp.draws++
}

// spriteRow positions an 8 pixel sprite byte in a 64 pixel row word. pixels
// that pass the right edge reappear at the left edge
func spriteRow(b uint8, col uint8) uint64 {
	return bits.RotateLeft64(uint64(b)<<(Width-8), -int(col%Width))
}

// Draw XORs the sprite onto the display with the most significant bit of the
// first byte at row and col. Each byte of the sprite is drawn on the
// following row. Returns true if any pixel covered by the sprite was turned
// off.
//
// The complete sprite is drawn under a single lock. A renderer will never see
// part of a sprite.
func (dsp *Display) Draw(row uint8, col uint8, sprite []uint8) bool {
	dsp.crit.Lock()
	defer dsp.crit.Unlock()

	var collision bool
	for i, b := range sprite {
		r := (int(row) + i) % Height
		mask := spriteRow(b, col)
		if dsp.rows[r]&mask != 0 {
			collision = true
		}
		dsp.rows[r] ^= mask
	}
	dsp.draws++

	return collision
}

// IsCollision returns true if the pixel at row and col is set. Coordinates
// wrap.
func (dsp *Display) IsCollision(row uint8, col uint8) bool {
	dsp.crit.Lock()
	defer dsp.crit.Unlock()
	return dsp.rows.Pixel(int(row), int(col))
}

// Frame returns a copy of the display.
func (dsp *Display) Frame() Frame {
	dsp.crit.Lock()
	defer dsp.crit.Unlock()
	return dsp.rows
}

// Draws returns the number of clear and draw operations since the display
// was created.
func (dsp *Display) Draws() uint64 {
	dsp.crit.Lock()
	defer dsp.crit.Unlock()
	return dsp.draws
}

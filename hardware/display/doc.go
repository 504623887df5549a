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

// Package display implements the 64x32 monochrome frame buffer of the
// machine. Each row is stored as a single uint64 with column zero in the most
// significant bit.
//
// Sprites are drawn by XOR. Rows wrap from the bottom of the display to the
// top and columns wrap from the right edge of a row to the left edge of the
// same row. A draw reports a collision when any pixel covered by the sprite
// was turned off.
//
// The Display type is safe for concurrent use. Renderers take a Frame, which
// is an immutable copy of the buffer, and never see a partially drawn sprite.
package display

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

// Package memory implements the flat, byte addressable memory of the machine.
// Memory is 4096 bytes. The lowest 512 bytes are reserved for the
// interpreter and hold the font glyphs. Programs are loaded at
// ProgramOrigin.
//
// All access is bounds checked. An out of range access returns an error
// created with the AddressError pattern and the memory is not changed. Words
// are stored big-endian: the high byte is at the lower address.
package memory

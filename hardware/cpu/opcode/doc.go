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

// Package opcode decodes the 16-bit instruction words of the machine. An
// Opcode is a view of the raw word: the family is the top nibble and the
// payload is the remaining twelve bits. Decoding never fails. Whether an
// instruction is legal is decided by the CPU when it dispatches on the
// family.
//
// The conventional names for the fields of the payload are used:
//
//	FXYN
//	 |||
//	 ||+-- N   (4 bits)
//	 |+--- Y   (4 bits)
//	 +---- X   (4 bits)
//
//	 NN  is the low byte
//	 NNN is the complete payload
package opcode

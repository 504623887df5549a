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

package opcode

import "fmt"

// Opcode is a single instruction word.
type Opcode uint16

// Decode combines the two bytes of an instruction. The high byte is the byte
// at the lower address.
func Decode(hi uint8, lo uint8) Opcode {
	return Opcode(uint16(hi)<<8 | uint16(lo))
}

func (op Opcode) String() string {
	return fmt.Sprintf("0x%04X", uint16(op))
}

// Family is the most significant nibble of the instruction.
func (op Opcode) Family() uint8 {
	return uint8(op >> 12)
}

// Payload is the least significant twelve bits of the instruction.
func (op Opcode) Payload() uint16 {
	return uint16(op) & 0x0fff
}

// X is the second nibble of the instruction. Usually a register index.
func (op Opcode) X() uint8 {
	return uint8(op>>8) & 0x0f
}

// Y is the third nibble of the instruction. Usually a register index.
func (op Opcode) Y() uint8 {
	return uint8(op>>4) & 0x0f
}

// N is the least significant nibble of the instruction.
func (op Opcode) N() uint8 {
	return uint8(op) & 0x0f
}

// NN is the least significant byte of the instruction.
func (op Opcode) NN() uint8 {
	return uint8(op)
}

// NNN is the payload interpreted as an address.
func (op Opcode) NNN() uint16 {
	return op.Payload()
}

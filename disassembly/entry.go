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

package disassembly

import (
	"fmt"

	"github.com/chipper-emu/chipper/hardware/cpu/opcode"
)

// EntryLevel describes the reliability of the Entry.
type EntryLevel int

// List of valid EntryLevel values in increasing reliability.
const (
	// decoded without reference to the flow of the program
	EntryLevelDecoded EntryLevel = iota

	// reached by following the flow of the program from the origin
	EntryLevelBlessed
)

// Entry is a single disassembled instruction.
type Entry struct {
	Address  uint16
	Opcode   opcode.Opcode
	Mnemonic string
	Operand  string

	// the instruction is not part of the instruction set
	Illegal bool

	Level EntryLevel
}

func (e Entry) String() string {
	if e.Operand == "" {
		return e.Mnemonic
	}
	return fmt.Sprintf("%s %s", e.Mnemonic, e.Operand)
}

func reg(r uint8) string {
	return fmt.Sprintf("V%X", r)
}

// Decode a single instruction.
func Decode(address uint16, op opcode.Opcode) Entry {
	e := Entry{
		Address: address,
		Opcode:  op,
	}

	x := reg(op.X())
	y := reg(op.Y())
	nn := fmt.Sprintf("0x%02X", op.NN())
	nnn := fmt.Sprintf("0x%03X", op.NNN())

	set := func(mnemonic string, operand string) {
		e.Mnemonic = mnemonic
		e.Operand = operand
	}

	switch op.Family() {
	case 0x0:
		switch op.Payload() {
		case 0x0e0:
			set("CLS", "")
		case 0x0ee:
			set("RET", "")
		}
	case 0x1:
		set("JP", nnn)
	case 0x2:
		set("CALL", nnn)
	case 0x3:
		set("SE", fmt.Sprintf("%s, %s", x, nn))
	case 0x4:
		set("SNE", fmt.Sprintf("%s, %s", x, nn))
	case 0x5:
		if op.N() == 0 {
			set("SE", fmt.Sprintf("%s, %s", x, y))
		}
	case 0x6:
		set("LD", fmt.Sprintf("%s, %s", x, nn))
	case 0x7:
		set("ADD", fmt.Sprintf("%s, %s", x, nn))
	case 0x8:
		mnemonics := map[uint8]string{
			0x0: "LD", 0x1: "OR", 0x2: "AND", 0x3: "XOR", 0x4: "ADD",
			0x5: "SUB", 0x6: "SHR", 0x7: "SUBN", 0xe: "SHL",
		}
		if m, ok := mnemonics[op.N()]; ok {
			set(m, fmt.Sprintf("%s, %s", x, y))
		}
	case 0x9:
		if op.N() == 0 {
			set("SNE", fmt.Sprintf("%s, %s", x, y))
		}
	case 0xa:
		set("LD", fmt.Sprintf("I, %s", nnn))
	case 0xb:
		set("JP", fmt.Sprintf("V0, %s", nnn))
	case 0xc:
		set("RND", fmt.Sprintf("%s, %s", x, nn))
	case 0xd:
		set("DRW", fmt.Sprintf("%s, %s, %d", x, y, op.N()))
	case 0xe:
		switch op.NN() {
		case 0x9e:
			set("SKP", x)
		case 0xa1:
			set("SKNP", x)
		}
	case 0xf:
		operands := map[uint8]string{
			0x07: x + ", DT",
			0x0a: x + ", K",
			0x15: "DT, " + x,
			0x18: "ST, " + x,
			0x1e: "I, " + x,
			0x29: "F, " + x,
			0x33: "B, " + x,
			0x55: "[I], " + x,
			0x65: x + ", [I]",
		}
		if o, ok := operands[op.NN()]; ok {
			m := "LD"
			if op.NN() == 0x1e {
				m = "ADD"
			}
			set(m, o)
		}
	}

	if e.Mnemonic == "" {
		e.Illegal = true
		set("???", op.String())
	}

	return e
}

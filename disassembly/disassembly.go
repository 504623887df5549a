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
	"github.com/chipper-emu/chipper/hardware/cpu/opcode"
	"github.com/chipper-emu/chipper/hardware/memory"
)

// Disassembly of a complete program.
type Disassembly struct {
	Origin  uint16
	Entries []Entry

	// a trailing byte that does not make a complete instruction
	Trailing []uint8
}

// FromROM disassembles a program image as it would be loaded into memory.
func FromROM(rom []uint8) *Disassembly {
	dsm := &Disassembly{
		Origin:  memory.ProgramOrigin,
		Entries: make([]Entry, 0, len(rom)/2),
	}

	for i := 0; i+1 < len(rom); i += 2 {
		address := dsm.Origin + uint16(i)
		dsm.Entries = append(dsm.Entries, Decode(address, opcode.Decode(rom[i], rom[i+1])))
	}
	if len(rom)%2 == 1 {
		dsm.Trailing = rom[len(rom)-1:]
	}

	dsm.bless()

	return dsm
}

// Get the entry for an address. Returns false if there is no entry at that
// address.
func (dsm *Disassembly) Get(address uint16) (*Entry, bool) {
	if address < dsm.Origin || (address-dsm.Origin)%2 != 0 {
		return nil, false
	}
	idx := int(address-dsm.Origin) / 2
	if idx >= len(dsm.Entries) {
		return nil, false
	}
	return &dsm.Entries[idx], true
}

// bless follows the flow of the program from the origin. computed jumps
// cannot be followed
func (dsm *Disassembly) bless() {
	queue := []uint16{dsm.Origin}

	for len(queue) > 0 {
		address := queue[0]
		queue = queue[1:]

		e, ok := dsm.Get(address)
		if !ok || e.Level == EntryLevelBlessed {
			continue // for loop
		}
		e.Level = EntryLevelBlessed

		if e.Illegal {
			continue // for loop
		}

		queue = append(queue, next(e)...)
	}
}

// next returns the addresses that can follow the entry
func next(e *Entry) []uint16 {
	op := e.Opcode
	switch op.Family() {
	case 0x0:
		if op.Payload() == 0x0ee {
			return nil
		}
	case 0x1:
		return []uint16{op.NNN()}
	case 0x2:
		return []uint16{op.NNN(), e.Address + 2}
	case 0x3, 0x4, 0x5, 0x9, 0xe:
		return []uint16{e.Address + 2, e.Address + 4}
	case 0xb:
		return nil
	}
	return []uint16{e.Address + 2}
}

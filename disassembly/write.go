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
	"io"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool

	// only write entries that have been blessed
	BlessedOnly bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	for i := range dsm.Entries {
		if attr.BlessedOnly && dsm.Entries[i].Level != EntryLevelBlessed {
			continue // for loop
		}
		if err := WriteLine(output, attr, dsm.Entries[i]); err != nil {
			return err
		}
	}
	if len(dsm.Trailing) > 0 && !attr.BlessedOnly {
		_, err := fmt.Fprintf(output, "0x%03X: .byte 0x%02X\n", dsm.Origin+uint16(len(dsm.Entries)*2), dsm.Trailing[0])
		return err
	}
	return nil
}

// WriteLine writes a single entry to io.Writer.
func WriteLine(output io.Writer, attr WriteAttr, e Entry) error {
	var err error
	if attr.ByteCode {
		_, err = fmt.Fprintf(output, "0x%03X: %s  %s\n", e.Address, e.Opcode, e)
	} else {
		_, err = fmt.Fprintf(output, "0x%03X: %s\n", e.Address, e)
	}
	return err
}

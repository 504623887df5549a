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

// Package disassembly converts instructions into human readable form. It is
// used for the trace of executed instructions and to produce a listing of a
// complete program.
//
// A listing is made with FromROM(). Every instruction-aligned word of the
// program is decoded. The flow of the program is then followed from the
// program origin and every entry that can be reached is marked as Blessed.
// Entries that are not blessed are probably data.
//
//	dsm := disassembly.FromROM(rom)
//	dsm.Write(os.Stdout, disassembly.WriteAttr{ByteCode: true})
package disassembly

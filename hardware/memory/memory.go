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

package memory

import (
	"encoding/hex"

	"github.com/chipper-emu/chipper/curated"
)

// Sentinel error patterns.
const (
	AddressError = "memory: address out of range: 0x%04x"
	ROMTooLarge  = "memory: program image too large: %d bytes (max %d)"
)

// Size and layout of memory.
const (
	Size          = 0x1000
	ProgramOrigin = 0x200
	MaxROMSize    = Size - ProgramOrigin
)

// Memory is the complete address space of the machine.
type Memory struct {
	data [Size]uint8
}

// NewMemory is the preferred method of initialisation for the Memory type.
// The font glyphs are loaded into the new memory.
func NewMemory() *Memory {
	mem := &Memory{}
	mem.LoadFontset()
	return mem
}

func (mem *Memory) String() string {
	return hex.Dump(mem.data[:])
}

// Snapshot creates a copy of memory in its current state.
func (mem *Memory) Snapshot() *Memory {
	n := *mem
	return &n
}

// Reset zeroes memory and reloads the font glyphs.
func (mem *Memory) Reset() {
	clear(mem.data[:])
	mem.LoadFontset()
}

// inRange checks that the n bytes from address are all inside memory
func inRange(address uint16, n int) bool {
	return int(address)+n <= Size
}

// Read a single byte.
func (mem *Memory) Read(address uint16) (uint8, error) {
	if !inRange(address, 1) {
		return 0, curated.Errorf(AddressError, address)
	}
	return mem.data[address], nil
}

// Write a single byte.
func (mem *Memory) Write(address uint16, data uint8) error {
	if !inRange(address, 1) {
		return curated.Errorf(AddressError, address)
	}
	mem.data[address] = data
	return nil
}

// Read16 reads the big-endian word at address.
func (mem *Memory) Read16(address uint16) (uint16, error) {
	if !inRange(address, 2) {
		return 0, curated.Errorf(AddressError, address)
	}
	return uint16(mem.data[address])<<8 | uint16(mem.data[address+1]), nil
}

// Write16 writes data as a big-endian word at address.
func (mem *Memory) Write16(address uint16, data uint16) error {
	if !inRange(address, 2) {
		return curated.Errorf(AddressError, address)
	}
	mem.data[address] = uint8(data >> 8)
	mem.data[address+1] = uint8(data)
	return nil
}

// ReadBlock copies len(block) bytes starting at address into block.
func (mem *Memory) ReadBlock(address uint16, block []uint8) error {
	if !inRange(address, len(block)) {
		return curated.Errorf(AddressError, address)
	}
	copy(block, mem.data[address:])
	return nil
}

// WriteBlock copies block to memory starting at address.
func (mem *Memory) WriteBlock(address uint16, block []uint8) error {
	if !inRange(address, len(block)) {
		return curated.Errorf(AddressError, address)
	}
	copy(mem.data[address:], block)
	return nil
}

// SetRegs stores the register values in regs to memory starting at address.
// Exactly len(regs) bytes are written.
func (mem *Memory) SetRegs(address uint16, regs []uint8) error {
	return mem.WriteBlock(address, regs)
}

// GetRegs loads len(regs) bytes from memory starting at address into regs.
func (mem *Memory) GetRegs(address uint16, regs []uint8) error {
	return mem.ReadBlock(address, regs)
}

// LoadROM copies the program image into memory at ProgramOrigin. An image
// that is too large is rejected and memory is unchanged.
func (mem *Memory) LoadROM(rom []uint8) error {
	if len(rom) > MaxROMSize {
		return curated.Errorf(ROMTooLarge, len(rom), MaxROMSize)
	}
	return mem.WriteBlock(ProgramOrigin, rom)
}

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

package registers

import "fmt"

// Address is a 16 bit register. Used for the program counter and the index
// register.
type Address struct {
	label string
	value uint16
}

// NewAddress is the preferred method of initialisation for Address.
func NewAddress(val uint16, label string) Address {
	return Address{
		value: val,
		label: label,
	}
}

func (a Address) String() string {
	return fmt.Sprintf("0x%03x", a.value)
}

// Label returns the name of the register.
func (a Address) Label() string {
	return a.label
}

// Address returns the current value of the register.
func (a Address) Address() uint16 {
	return a.value
}

// Load a value into the register.
func (a *Address) Load(val uint16) {
	a.value = val
}

// Add a value to the register, wrapping at 16 bits.
func (a *Address) Add(val uint16) {
	a.value += val
}

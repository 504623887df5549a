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

// Package registers implements the registers of the CPU. Register is the 8
// bit general purpose register and Address is the 16 bit register used for
// the program counter and the index register.
//
// Operations that produce a flag return the flag rather than changing another
// register. Where the flag ends up is the responsibility of the CPU. For
// instance, an addition with carry into VF:
//
//	carry := v[x].Add(v[y].Value())
//	v[0xf].LoadFlag(carry)
//
// This ordering means that the flag is always the final value of VF, even
// when VF is also the destination of the result.
package registers

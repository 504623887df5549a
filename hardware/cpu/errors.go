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

package cpu

// Sentinel error patterns.
const (
	DecodeError    = "cpu: illegal instruction %v at 0x%03x"
	StackOverflow  = "cpu: stack overflow calling from 0x%03x"
	StackUnderflow = "cpu: stack underflow"
	KeyRangeError  = "cpu: key out of range: %d"
	MemoryError    = "cpu: %v"
	Halted         = "cpu: halted"
	Interrupted    = "cpu: interrupted waiting for key"
)

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

import "github.com/chipper-emu/chipper/curated"

// StackDepth is the maximum number of nested calls.
const StackDepth = 16

// Stack is the call stack of the CPU. Entries are the addresses of the call
// instructions, not the addresses of the instructions after them.
type Stack struct {
	entries [StackDepth]uint16
	sp      int
}

// Len returns the number of entries on the stack.
func (s Stack) Len() int {
	return s.sp
}

// Peek returns the top entry of the stack without removing it.
func (s Stack) Peek() (uint16, bool) {
	if s.sp == 0 {
		return 0, false
	}
	return s.entries[s.sp-1], true
}

// Push an address onto the stack.
func (s *Stack) Push(address uint16) error {
	if s.sp >= StackDepth {
		return curated.Errorf(StackOverflow, address)
	}
	s.entries[s.sp] = address
	s.sp++
	return nil
}

// Pop an address from the stack.
func (s *Stack) Pop() (uint16, error) {
	if s.sp == 0 {
		return 0, curated.Errorf(StackUnderflow)
	}
	s.sp--
	return s.entries[s.sp], nil
}

// Reset empties the stack.
func (s *Stack) Reset() {
	s.sp = 0
}

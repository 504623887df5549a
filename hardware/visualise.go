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

package hardware

import (
	"io"

	"github.com/bradleyjkemp/memviz"
)

// visualState is a copy of the machine state suitable for visualisation. the
// memory is not included because it would dominate the graph
type visualState struct {
	PC     uint16
	I      uint16
	V      [16]uint8
	Stack  []uint16
	Delay  uint8
	Sound  uint8
	Keys   [16]bool
	Halted bool
}

// Visualise writes a graphviz description of the machine state to the
// writer. Not safe to call concurrently with Step().
func (m *Machine) Visualise(w io.Writer) {
	st := &visualState{
		PC:     m.CPU.PC.Address(),
		I:      m.CPU.I.Address(),
		Delay:  m.Timers.Delay(),
		Sound:  m.Timers.Sound(),
		Keys:   m.Keys(),
		Halted: m.CPU.Halted,
	}
	for i := range m.CPU.V {
		st.V[i] = m.CPU.V[i].Value()
	}

	stack := m.CPU.Stack
	for stack.Len() > 0 {
		a, _ := stack.Pop()
		st.Stack = append([]uint16{a}, st.Stack...)
	}

	memviz.Map(w, st)
}

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
	"fmt"
	"io"

	"github.com/chipper-emu/chipper/disassembly"
	"github.com/chipper-emu/chipper/hardware/cpu/opcode"
	"github.com/chipper-emu/chipper/logger"
)

// SetTrace writes every executed instruction to the writer. A nil writer
// stops the trace.
func (m *Machine) SetTrace(w io.Writer) {
	m.traceCrit.Lock()
	defer m.traceCrit.Unlock()
	m.trace = w
	m.traceErr = nil
}

func (m *Machine) traceStep(address uint16, op opcode.Opcode) {
	m.traceCrit.Lock()
	defer m.traceCrit.Unlock()

	if m.trace == nil {
		return
	}

	e := disassembly.Decode(address, op)
	_, err := fmt.Fprintf(m.trace, "0x%03X: %s  %s\n", address, op, e)

	// a failed trace is logged once and the trace is stopped
	if err != nil {
		m.traceErr = err
		m.trace = nil
		logger.Logf(logger.Allow, "hardware", "trace stopped: %v", err)
	}
}

// TraceError returns the error that stopped the trace, if any.
func (m *Machine) TraceError() error {
	m.traceCrit.Lock()
	defer m.traceCrit.Unlock()
	return m.traceErr
}

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

package cpu_test

import (
	"context"
	"testing"

	"github.com/chipper-emu/chipper/hardware/cpu"
	"github.com/chipper-emu/chipper/hardware/display"
	"github.com/chipper-emu/chipper/hardware/input"
	"github.com/chipper-emu/chipper/hardware/memory"
	"github.com/chipper-emu/chipper/hardware/timers"
	"github.com/chipper-emu/chipper/random"
	"github.com/chipper-emu/chipper/test"
)

type harness struct {
	mc  *cpu.CPU
	mem *memory.Memory
	dsp *display.Display
	src *input.QueueSource
}

func newHarness(t *testing.T, rom ...uint8) *harness {
	t.Helper()

	h := &harness{
		mem: memory.NewMemory(),
		dsp: display.NewDisplay(),
		src: &input.QueueSource{},
	}
	test.DemandSuccess(t, h.mem.LoadROM(rom))

	h.mc = cpu.NewCPU(h.mem, h.dsp, timers.NewTimers(), random.NewRandom(1))
	smp := input.NewSampler(input.NewKeypad(), nil)
	smp.SetSource(h.src)
	h.mc.AttachKeys(smp)

	return h
}

// step executes n instructions, failing the test on any error
func (h *harness) step(t *testing.T, n int) {
	t.Helper()
	for range n {
		test.DemandSuccess(t, h.mc.Step(context.Background()))
	}
}

func (h *harness) v(r int) uint8 {
	return h.mc.V[r].Value()
}

func (h *harness) pc() uint16 {
	return h.mc.PC.Address()
}

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
	"context"
	"io"
	"sync"

	"github.com/chipper-emu/chipper/curated"
	"github.com/chipper-emu/chipper/hardware/cpu"
	"github.com/chipper-emu/chipper/hardware/display"
	"github.com/chipper-emu/chipper/hardware/input"
	"github.com/chipper-emu/chipper/hardware/memory"
	"github.com/chipper-emu/chipper/hardware/timers"
	"github.com/chipper-emu/chipper/random"
)

// Machine is the complete emulated machine.
type Machine struct {
	CPU     *cpu.CPU
	Mem     *memory.Memory
	Display *display.Display
	Keypad  *input.Keypad
	Input   *input.Sampler
	Timers  *timers.Timers
	Random  *random.Random

	// the loaded program image. used by Reset()
	rom []uint8

	// trace output. protected by its own lock because it can be changed
	// while the machine is running
	traceCrit sync.Mutex
	trace     io.Writer
	traceErr  error
}

// NewMachine is the preferred method of initialisation for the Machine type.
// A seed of zero means that the random number source is seeded from the
// current time.
func NewMachine(seed uint64) *Machine {
	m := &Machine{
		Mem:     memory.NewMemory(),
		Display: display.NewDisplay(),
		Keypad:  input.NewKeypad(),
		Timers:  timers.NewTimers(),
		Random:  random.NewRandom(seed),
	}
	m.Input = input.NewSampler(m.Keypad, nil)
	m.CPU = cpu.NewCPU(m.Mem, m.Display, m.Timers, m.Random)
	m.CPU.AttachKeys(m.Input)
	m.CPU.OnStep = m.traceStep
	return m
}

func (m *Machine) String() string {
	return m.CPU.String()
}

// Reset the machine to its power-on state and reload the program image.
func (m *Machine) Reset() error {
	m.CPU.Reset()
	m.Mem.Reset()
	m.Display.Clear()
	if len(m.rom) > 0 {
		return m.Mem.LoadROM(m.rom)
	}
	return nil
}

// LoadROM resets the machine and loads the program image. The machine is
// not changed if the image is too large.
func (m *Machine) LoadROM(rom []uint8) error {
	if len(rom) > memory.MaxROMSize {
		return curated.Errorf(memory.ROMTooLarge, len(rom), memory.MaxROMSize)
	}
	m.rom = append([]uint8(nil), rom...)
	return m.Reset()
}

// Step executes a single instruction. Not safe to call concurrently with
// itself or with Run().
func (m *Machine) Step(ctx context.Context) error {
	return m.CPU.Step(ctx)
}

// Frame returns a snapshot of the display.
func (m *Machine) Frame() display.Frame {
	return m.Display.Frame()
}

// Keys returns a snapshot of the keypad.
func (m *Machine) Keys() [input.NumKeys]bool {
	return m.Keypad.State()
}

// AttachInput sets the source of keyboard observations.
func (m *Machine) AttachInput(source input.Source) {
	m.Input.SetSource(source)
}

// OnExit sets the function to call when the exit key is observed.
func (m *Machine) OnExit(f func()) {
	m.Input.SetExit(f)
}

// Sample takes one observation from the input source and applies it to the
// keypad.
func (m *Machine) Sample() error {
	return m.Input.Sample()
}

// TickTimers ticks the delay and sound timers. Returns true if the sound is
// active.
func (m *Machine) TickTimers() bool {
	return m.Timers.Tick()
}

// ClockTimers sets whether the CPU ticks the timers after every instruction.
// Should be false when TickTimers() is called in real time. Not safe to call
// concurrently with Step().
func (m *Machine) ClockTimers(clock bool) {
	m.CPU.ClockTimers = clock
}

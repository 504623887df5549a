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

// Package cpu emulates the interpreter of the machine. Instructions are
// sixteen bits wide and are read from memory at the address in the program
// counter. The top nibble of an instruction is the family and selects the
// operation. See the opcode package for how the remaining bits are named.
//
// The CPU type requires implementations of the Memory and Display interfaces,
// a timers.Timers instance and a random number source. The keypad is
// attached with AttachKeys(). The main function is Step():
//
//	mc := cpu.NewCPU(mem, dsp, tmr, rnd)
//	mc.AttachKeys(sampler)
//
//	for {
//		if err := mc.Step(ctx); err != nil {
//			return err
//		}
//	}
//
// An error from Step() is either a decode fault (an instruction outside the
// defined set) or a bounds fault (a memory address, stack entry or key
// outside of its range). Both halt the CPU. The registers are left as they
// were before the faulting instruction began. The only error that does not
// halt the CPU is Interrupted, which is returned when the context is
// cancelled while the CPU waits for a key. The waiting instruction is resumed
// by the next call to Step().
//
// When ClockTimers is true the delay and sound timers are ticked once at the
// end of every instruction. This is the default and is convenient for tests.
// A scheduler that ticks the timers in real time should set ClockTimers to
// false.
package cpu

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

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/chipper-emu/chipper/curated"
	"github.com/chipper-emu/chipper/hardware/cpu/opcode"
	"github.com/chipper-emu/chipper/hardware/cpu/registers"
	"github.com/chipper-emu/chipper/hardware/memory"
	"github.com/chipper-emu/chipper/hardware/timers"
	"github.com/chipper-emu/chipper/logger"
	"github.com/chipper-emu/chipper/random"
)

// NumRegisters is the number of general purpose registers.
const NumRegisters = 16

// FlagRegister is the index of the register used for carry, borrow and
// collision flags.
const FlagRegister = 0xf

// DefaultKeyPoll is the interval between observations of the keypad while
// waiting for a key.
const DefaultKeyPoll = 2 * time.Millisecond

// Memory defines the memory operations required by the CPU.
type Memory interface {
	Read16(address uint16) (uint16, error)
	ReadBlock(address uint16, block []uint8) error
	WriteBlock(address uint16, block []uint8) error
	SetRegs(address uint16, regs []uint8) error
	GetRegs(address uint16, regs []uint8) error
}

// Display defines the display operations required by the CPU.
type Display interface {
	Clear()
	Draw(row uint8, col uint8, sprite []uint8) bool
}

// Keys defines the keypad operations required by the CPU.
type Keys interface {
	// take a new observation of the host keyboard
	Refresh() error
	IsPressed(key uint8) (bool, error)
	LastKey() (uint8, bool)
	ResetLastKey()
}

// CPU is the interpreter of the machine.
type CPU struct {
	PC registers.Address
	I  registers.Address
	V  [NumRegisters]registers.Register

	Stack  Stack
	Timers *timers.Timers

	mem  Memory
	dsp  Display
	keys Keys
	rnd  *random.Random

	// tick the timers at the end of every instruction
	ClockTimers bool

	// interval between observations of the keypad when waiting for a key
	KeyPoll time.Duration

	// the CPU has encountered a fault and requires a Reset()
	Halted bool

	// called after every successfully executed instruction with the
	// instruction's address
	OnStep func(address uint16, op opcode.Opcode)

	// number of instructions executed since the last reset
	Instructions uint64
}

// NewCPU is the preferred method of initialisation for the CPU type.
func NewCPU(mem Memory, dsp Display, tmr *timers.Timers, rnd *random.Random) *CPU {
	mc := &CPU{
		mem:         mem,
		dsp:         dsp,
		rnd:         rnd,
		Timers:      tmr,
		ClockTimers: true,
		KeyPoll:     DefaultKeyPoll,
	}
	mc.PC = registers.NewAddress(memory.ProgramOrigin, "PC")
	mc.I = registers.NewAddress(0, "I")
	for i := range mc.V {
		mc.V[i] = registers.NewRegister(0, fmt.Sprintf("V%X", i))
	}
	return mc
}

// AttachKeys sets the keypad used by the CPU. A nil value means that no key
// is ever pressed.
func (mc *CPU) AttachKeys(keys Keys) {
	mc.keys = keys
}

// Reset the CPU to its power-on state.
func (mc *CPU) Reset() {
	mc.PC.Load(memory.ProgramOrigin)
	mc.I.Load(0)
	for i := range mc.V {
		mc.V[i].Load(0)
	}
	mc.Stack.Reset()
	mc.Timers.Reset()
	mc.Halted = false
	mc.Instructions = 0
}

func (mc *CPU) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%s=%s %s=%s SP=%d", mc.PC.Label(), mc.PC, mc.I.Label(), mc.I, mc.Stack.Len()))
	for _, r := range mc.V {
		s.WriteString(fmt.Sprintf(" %s=%s", r.Label(), r))
	}
	return s.String()
}

// Snapshot creates a copy of the CPU in its current state.
func (mc *CPU) Snapshot() *CPU {
	n := *mc
	return &n
}

// registerState is the part of the CPU that is restored after a fault
type registerState struct {
	pc    registers.Address
	i     registers.Address
	v     [NumRegisters]registers.Register
	stack Stack
}

func (mc *CPU) saveState() registerState {
	return registerState{pc: mc.PC, i: mc.I, v: mc.V, stack: mc.Stack}
}

func (mc *CPU) restoreState(st registerState) {
	mc.PC = st.pc
	mc.I = st.i
	mc.V = st.v
	mc.Stack = st.stack
}

// Step executes a single instruction. The context is only consulted by
// instructions that wait.
func (mc *CPU) Step(ctx context.Context) error {
	if mc.Halted {
		return curated.Errorf(Halted)
	}

	st := mc.saveState()
	address := mc.PC.Address()

	op, err := mc.execute(ctx)
	if err != nil {
		mc.restoreState(st)
		if !curated.Is(err, Interrupted) {
			mc.Halted = true
			logger.Logf(logger.Allow, "cpu", "halted: %v", err)
		}
		return err
	}

	mc.Instructions++
	if mc.ClockTimers {
		mc.Timers.Tick()
	}
	if mc.OnStep != nil {
		mc.OnStep(address, op)
	}

	return nil
}

// fetch the instruction at the program counter
func (mc *CPU) fetch() (opcode.Opcode, error) {
	w, err := mc.mem.Read16(mc.PC.Address())
	if err != nil {
		return 0, curated.Errorf(MemoryError, err)
	}
	return opcode.Opcode(w), nil
}

func (mc *CPU) decodeError(op opcode.Opcode) error {
	return curated.Errorf(DecodeError, op, mc.PC.Address())
}

// skip the next instruction if cond is true
func (mc *CPU) skipIf(cond bool) {
	if cond {
		mc.PC.Add(2)
	}
}

// execute the instruction at the program counter and advance the program
// counter
func (mc *CPU) execute(ctx context.Context) (opcode.Opcode, error) {
	op, err := mc.fetch()
	if err != nil {
		return op, err
	}

	// families 1, 2 and B replace the program counter
	advance := true

	x := op.X()
	y := op.Y()

	switch op.Family() {
	case 0x0:
		switch op.Payload() {
		case 0x0e0:
			mc.dsp.Clear()
		case 0x0ee:
			address, err := mc.Stack.Pop()
			if err != nil {
				return op, err
			}
			// the address on the stack is the call instruction. the default
			// advance moves past it
			mc.PC.Load(address)
		default:
			return op, mc.decodeError(op)
		}

	case 0x1:
		mc.PC.Load(op.NNN())
		advance = false

	case 0x2:
		if err := mc.Stack.Push(mc.PC.Address()); err != nil {
			return op, err
		}
		mc.PC.Load(op.NNN())
		advance = false

	case 0x3:
		mc.skipIf(mc.V[x].Value() == op.NN())

	case 0x4:
		mc.skipIf(mc.V[x].Value() != op.NN())

	case 0x5:
		if op.N() != 0 {
			return op, mc.decodeError(op)
		}
		mc.skipIf(mc.V[x].Value() == mc.V[y].Value())

	case 0x6:
		mc.V[x].Load(op.NN())

	case 0x7:
		mc.V[x].Add(op.NN())

	case 0x8:
		if err := mc.alu(op); err != nil {
			return op, err
		}

	case 0x9:
		if op.N() != 0 {
			return op, mc.decodeError(op)
		}
		mc.skipIf(mc.V[x].Value() != mc.V[y].Value())

	case 0xa:
		mc.I.Load(op.NNN())

	case 0xb:
		mc.PC.Load(uint16(mc.V[0].Value()) + op.NNN())
		advance = false

	case 0xc:
		mc.V[x].Load(op.NN() & mc.rnd.Byte())

	case 0xd:
		sprite := make([]uint8, op.N())
		if err := mc.mem.ReadBlock(mc.I.Address(), sprite); err != nil {
			return op, curated.Errorf(MemoryError, err)
		}
		collision := mc.dsp.Draw(mc.V[y].Value(), mc.V[x].Value(), sprite)
		mc.V[FlagRegister].LoadFlag(collision)

	case 0xe:
		var want bool
		switch op.NN() {
		case 0x9e:
			want = true
		case 0xa1:
			want = false
		default:
			return op, mc.decodeError(op)
		}
		pressed, err := mc.isPressed(mc.V[x].Value())
		if err != nil {
			return op, err
		}
		mc.skipIf(pressed == want)

	case 0xf:
		if err := mc.misc(ctx, op); err != nil {
			return op, err
		}
	}

	if advance {
		mc.PC.Add(2)
	}

	return op, nil
}

// alu implements family 8. the flag register is always written after the
// result so that VF holds the flag even when it is also the destination
func (mc *CPU) alu(op opcode.Opcode) error {
	x := op.X()
	y := op.Y()
	vy := mc.V[y].Value()

	switch op.N() {
	case 0x0:
		mc.V[x].Load(vy)
	case 0x1:
		mc.V[x].ORA(vy)
	case 0x2:
		mc.V[x].AND(vy)
	case 0x3:
		mc.V[x].EOR(vy)
	case 0x4:
		carry := mc.V[x].Add(vy)
		mc.V[FlagRegister].LoadFlag(carry)
	case 0x5:
		borrow := mc.V[x].Subtract(vy)
		mc.V[FlagRegister].LoadFlag(borrow)
	case 0x6:
		r := registers.NewRegister(vy, "")
		carry := r.LSR()
		mc.V[x].Load(r.Value())
		mc.V[FlagRegister].LoadFlag(carry)
	case 0x7:
		r := registers.NewRegister(vy, "")
		borrow := r.Subtract(mc.V[x].Value())
		mc.V[x].Load(r.Value())
		mc.V[FlagRegister].LoadFlag(borrow)
	case 0xe:
		r := registers.NewRegister(vy, "")
		carry := r.ASL()
		mc.V[x].Load(r.Value())
		mc.V[FlagRegister].LoadFlag(carry)
	default:
		return mc.decodeError(op)
	}

	return nil
}

// misc implements family F
func (mc *CPU) misc(ctx context.Context, op opcode.Opcode) error {
	x := op.X()

	switch op.NN() {
	case 0x07:
		mc.V[x].Load(mc.Timers.Delay())

	case 0x0a:
		key, err := mc.waitForKey(ctx)
		if err != nil {
			return err
		}
		mc.V[x].Load(key)

	case 0x15:
		mc.Timers.SetDelay(mc.V[x].Value())

	case 0x18:
		mc.Timers.SetSound(mc.V[x].Value())

	case 0x1e:
		mc.I.Add(uint16(mc.V[x].Value()))

	case 0x29:
		mc.I.Load(uint16(mc.V[x].Value()) * memory.GlyphSize)

	case 0x33:
		v := mc.V[x].Value()
		bcd := []uint8{v / 100, (v / 10) % 10, v % 10}
		if err := mc.mem.WriteBlock(mc.I.Address(), bcd); err != nil {
			return curated.Errorf(MemoryError, err)
		}

	case 0x55:
		regs := make([]uint8, int(x)+1)
		for i := range regs {
			regs[i] = mc.V[i].Value()
		}
		if err := mc.mem.SetRegs(mc.I.Address(), regs); err != nil {
			return curated.Errorf(MemoryError, err)
		}
		// the index advances by eight whatever the number of registers
		mc.I.Add(8)

	case 0x65:
		regs := make([]uint8, int(x)+1)
		if err := mc.mem.GetRegs(mc.I.Address(), regs); err != nil {
			return curated.Errorf(MemoryError, err)
		}
		for i := range regs {
			mc.V[i].Load(regs[i])
		}
		mc.I.Add(8)

	default:
		return mc.decodeError(op)
	}

	return nil
}

// This file is part of Nescore.
//
// Nescore is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Nescore is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Nescore.  If not, see <https://www.gnu.org/licenses/>.

package cpu

import (
	"fmt"

	"github.com/nescore/nescore/curated"
	"github.com/nescore/nescore/hardware/cpu/instructions"
	"github.com/nescore/nescore/hardware/cpu/registers"
)

// InvalidOpcode is the error pattern for instructions the CPU cannot
// execute. The values are the opcode and a description of the reason.
const InvalidOpcode = "cpu: invalid opcode %#02x (%s)"

// Memory defines the memory operations required by the CPU. The
// memory.Bus type satisfies this interface.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// CPU implements the 2A03 found in the NES. The 2A03 is a 6502 without decimal
// mode. Register logic is implemented by the types in the registers
// sub-package.
type CPU struct {
	PC registers.ProgramCounter
	A  registers.Register
	X  registers.Register
	Y  registers.Register
	S  registers.Register
	P  registers.Status

	// Defn is the most recently fetched instruction
	Defn instructions.Definition

	mem      Memory
	alu      ALU
	stack    Stack
	pipeline Pipeline

	// the operand address and the value fetched from it, for the instruction
	// currently executing
	address uint16
	fetched uint8

	// interrupt requests waiting for the next instruction boundary
	nmi bool
	irq bool
}

// NewCPU is the preferred method of initialisation for the CPU structure.
func NewCPU(mem Memory) *CPU {
	mc := &CPU{
		mem: mem,
		PC:  registers.NewProgramCounter(0),
		A:   registers.NewRegister(0, "A"),
		X:   registers.NewRegister(0, "X"),
		Y:   registers.NewRegister(0, "Y"),
		S:   registers.NewRegister(0, "S"),
		P:   registers.NewStatus(),
	}
	mc.alu = NewALU(&mc.P)
	mc.stack = Stack{mem: mem, S: &mc.S}
	return mc
}

// Plumb a new memory implementation into the CPU.
func (mc *CPU) Plumb(mem Memory) {
	mc.mem = mem
	mc.stack.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s %s %s %s %s=%s",
		mc.PC.Label(), mc.PC, mc.A, mc.X, mc.Y, mc.S, mc.P.Label(), mc.P)
}

// Reset reinitialises all registers to zero and discards any staged steps or
// pending interrupts. Does not load PC with the reset vector. Use RST() for
// that.
func (mc *CPU) Reset() {
	mc.PC.Load(0)
	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.S.Load(0)
	mc.P.Reset()
	mc.pipeline.Clear()
	mc.Defn = instructions.Definition{}
	mc.address = 0
	mc.fetched = 0
	mc.nmi = false
	mc.irq = false
}

// Executing returns true if an instruction, or an interrupt sequence, is part
// way through execution.
func (mc *CPU) Executing() bool {
	return !mc.pipeline.Empty()
}

// Staged returns the steps remaining for the current instruction.
func (mc *CPU) Staged() []Step {
	return mc.pipeline.Steps()
}

// Tick advances the CPU by one cycle. If no instruction is executing then a
// new opcode is fetched and its steps are staged. Otherwise the next staged
// step is performed.
func (mc *CPU) Tick() error {
	s, ok := mc.pipeline.Pop()
	if ok {
		return mc.step(s)
	}

	mc.pipeline.Clear()

	serviced, err := mc.serviceInterrupt()
	if err != nil {
		return err
	}
	if serviced {
		return nil
	}

	return mc.FetchOpcode()
}

// FetchOpcode reads the opcode at the PC, advances the PC and stages the
// steps of the decoded instruction. Fails with InvalidOpcode for any
// instruction the CPU cannot execute.
func (mc *CPU) FetchOpcode() error {
	opcode, err := mc.mem.Read(mc.PC.Address())
	if err != nil {
		return curated.Errorf("cpu: %v", err)
	}
	mc.PC.Add(1)

	mc.Defn = instructions.Decode(opcode)

	if mc.Defn.AddressingMode.IsVariant() {
		return unsupported(mc.Defn, "unsupported addressing mode")
	}
	if mc.Defn.Operator.IsVariant() {
		return unsupported(mc.Defn, "unsupported instruction")
	}

	return mc.stage(mc.Defn)
}

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

// StepKind identifies what a Step does.
type StepKind int

// List of valid StepKind values.
const (
	// a cycle where nothing visible happens
	StepInternal StepKind = iota

	// read from the PC without incrementing it. the value is discarded
	StepDummyRead

	// first cycle of BRK. set the interrupt disable flag and read the
	// padding byte that follows the opcode
	StepBreak

	StepPushPCH
	StepPushPCL
	StepPushA

	// push the status register with the break flag clear (hardware
	// interrupts) or set (BRK and PHP)
	StepPushStatus
	StepPushStatusBreak

	StepPullPCL
	StepPullPCH
	StepPullA
	StepPullStatus

	StepIncrementPC

	// decrement the stack pointer without writing to the stack. used by the
	// reset sequence
	StepDecrementS

	// load the PC from the vector address in the Step. loading the low byte
	// also sets the interrupt disable flag
	StepVectorLo
	StepVectorHi

	// fetch the low and high bytes of an absolute address from the PC
	StepFetchLo
	StepFetchHi

	// fetch the high byte of an absolute address and load the PC with the
	// completed address
	StepJump

	// read-modify-write instructions read the value at the address and then
	// write it back unchanged before writing the modified value
	StepReadModify
	StepWriteBack

	// the operation of the instruction. which operand is used depends on the
	// kind of step
	StepImplied
	StepAccumulator
	StepImmediate
	StepAbsolute
)

func (k StepKind) String() string {
	switch k {
	case StepInternal:
		return "internal"
	case StepDummyRead:
		return "dummy read"
	case StepBreak:
		return "break"
	case StepPushPCH:
		return "push PCH"
	case StepPushPCL:
		return "push PCL"
	case StepPushA:
		return "push A"
	case StepPushStatus:
		return "push P"
	case StepPushStatusBreak:
		return "push P|B"
	case StepPullPCL:
		return "pull PCL"
	case StepPullPCH:
		return "pull PCH"
	case StepPullA:
		return "pull A"
	case StepPullStatus:
		return "pull P"
	case StepIncrementPC:
		return "increment PC"
	case StepDecrementS:
		return "decrement S"
	case StepVectorLo:
		return "vector lo"
	case StepVectorHi:
		return "vector hi"
	case StepFetchLo:
		return "fetch lo"
	case StepFetchHi:
		return "fetch hi"
	case StepJump:
		return "jump"
	case StepReadModify:
		return "read"
	case StepWriteBack:
		return "write back"
	case StepImplied:
		return "implied"
	case StepAccumulator:
		return "accumulator"
	case StepImmediate:
		return "immediate"
	case StepAbsolute:
		return "absolute"
	}
	return "unknown step"
}

// Step is a single cycle of work staged in the pipeline. Operator is only
// meaningful for the instruction steps. Vector is only meaningful for the
// vector steps.
type Step struct {
	Kind     StepKind
	Operator instructions.Operator
	Effect   instructions.EffectCategory
	Vector   uint16
}

func (s Step) String() string {
	switch s.Kind {
	case StepImplied, StepAccumulator, StepImmediate, StepAbsolute:
		return fmt.Sprintf("%s %s", s.Kind, s.Operator)
	case StepVectorLo, StepVectorHi:
		return fmt.Sprintf("%s %#04x", s.Kind, s.Vector)
	}
	return s.Kind.String()
}

// step is the interpreter for a single Step.
func (mc *CPU) step(s Step) error {
	switch s.Kind {
	case StepInternal:
		return nil

	case StepDummyRead:
		_, err := mc.mem.Read(mc.PC.Address())
		return err

	case StepBreak:
		mc.P.Set(registers.InterruptDisable, true)
		_, err := mc.mem.Read(mc.PC.Address())
		mc.PC.Add(1)
		return err

	case StepPushPCH:
		return mc.stack.Push(mc.PC.Hi())

	case StepPushPCL:
		return mc.stack.Push(mc.PC.Lo())

	case StepPushA:
		return mc.stack.Push(mc.A.Value())

	case StepPushStatus:
		return mc.stack.Push(mc.P.Pushed(false))

	case StepPushStatusBreak:
		return mc.stack.Push(mc.P.Pushed(true))

	case StepPullPCL:
		v, err := mc.stack.Pull()
		if err != nil {
			return err
		}
		mc.PC.LoadLo(v)

	case StepPullPCH:
		v, err := mc.stack.Pull()
		if err != nil {
			return err
		}
		mc.PC.LoadHi(v)

	case StepPullA:
		v, err := mc.stack.Pull()
		if err != nil {
			return err
		}
		mc.A.Load(mc.alu.PassThrough(v, true))

	case StepPullStatus:
		v, err := mc.stack.Pull()
		if err != nil {
			return err
		}
		mc.P.Pulled(v)

	case StepIncrementPC:
		mc.PC.Add(1)

	case StepDecrementS:
		mc.S.Decrement()

	case StepVectorLo:
		mc.P.Set(registers.InterruptDisable, true)
		v, err := mc.mem.Read(s.Vector)
		if err != nil {
			return err
		}
		mc.PC.LoadLo(v)

	case StepVectorHi:
		v, err := mc.mem.Read(s.Vector + 1)
		if err != nil {
			return err
		}
		mc.PC.LoadHi(v)

	case StepFetchLo:
		v, err := mc.mem.Read(mc.PC.Address())
		if err != nil {
			return err
		}
		mc.PC.Add(1)
		mc.address = uint16(v)

	case StepFetchHi:
		v, err := mc.mem.Read(mc.PC.Address())
		if err != nil {
			return err
		}
		mc.PC.Add(1)
		mc.address = (mc.address & 0x00ff) | (uint16(v) << 8)

	case StepJump:
		v, err := mc.mem.Read(mc.PC.Address())
		if err != nil {
			return err
		}
		mc.address = (mc.address & 0x00ff) | (uint16(v) << 8)
		mc.PC.Load(mc.address)

	case StepReadModify:
		v, err := mc.mem.Read(mc.address)
		if err != nil {
			return err
		}
		mc.fetched = v

	case StepWriteBack:
		return mc.mem.Write(mc.address, mc.fetched)

	case StepImplied:
		return mc.implied(s.Operator)

	case StepAccumulator:
		return mc.accumulator(s.Operator)

	case StepImmediate:
		v, err := mc.mem.Read(mc.PC.Address())
		if err != nil {
			return err
		}
		mc.PC.Add(1)
		return mc.read(s.Operator, v)

	case StepAbsolute:
		switch s.Effect {
		case instructions.Write:
			return mc.write(s.Operator)
		case instructions.RMW:
			return mc.modify(s.Operator)
		}
		v, err := mc.mem.Read(mc.address)
		if err != nil {
			return err
		}
		return mc.read(s.Operator, v)

	default:
		return curated.Errorf("cpu: unknown step (%d)", s.Kind)
	}

	return nil
}

// implied performs the operation of single cycle implied mode instructions.
func (mc *CPU) implied(op instructions.Operator) error {
	switch op {
	case instructions.CLC:
		mc.P.Set(registers.Carry, false)
	case instructions.SEC:
		mc.P.Set(registers.Carry, true)
	case instructions.CLI:
		mc.P.Set(registers.InterruptDisable, false)
	case instructions.SEI:
		mc.P.Set(registers.InterruptDisable, true)
	case instructions.CLV:
		mc.P.Set(registers.Overflow, false)
	case instructions.CLD:
		mc.P.Set(registers.DecimalMode, false)
	case instructions.SED:
		mc.P.Set(registers.DecimalMode, true)

	case instructions.TAX:
		mc.X.Load(mc.alu.PassThrough(mc.A.Value(), true))
	case instructions.TAY:
		mc.Y.Load(mc.alu.PassThrough(mc.A.Value(), true))
	case instructions.TXA:
		mc.A.Load(mc.alu.PassThrough(mc.X.Value(), true))
	case instructions.TYA:
		mc.A.Load(mc.alu.PassThrough(mc.Y.Value(), true))
	case instructions.TSX:
		mc.X.Load(mc.alu.PassThrough(mc.S.Value(), true))
	case instructions.TXS:
		// the only transfer that does not affect the status flags
		mc.S.Load(mc.alu.PassThrough(mc.X.Value(), false))

	case instructions.INX:
		mc.X.Load(mc.alu.Increment(mc.X.Value()))
	case instructions.INY:
		mc.Y.Load(mc.alu.Increment(mc.Y.Value()))
	case instructions.DEX:
		mc.X.Load(mc.alu.Decrement(mc.X.Value()))
	case instructions.DEY:
		mc.Y.Load(mc.alu.Decrement(mc.Y.Value()))

	case instructions.NOP:

	default:
		return curated.Errorf(InvalidOpcode, mc.Defn.OpCode, fmt.Sprintf("%s is not an implied operation", op))
	}
	return nil
}

// accumulator performs the operation of accumulator mode instructions.
func (mc *CPU) accumulator(op instructions.Operator) error {
	switch op {
	case instructions.ASL:
		mc.A.Load(mc.alu.ShiftL(mc.A.Value(), false))
	case instructions.ROL:
		mc.A.Load(mc.alu.ShiftL(mc.A.Value(), true))
	case instructions.LSR:
		mc.A.Load(mc.alu.ShiftR(mc.A.Value(), false))
	case instructions.ROR:
		mc.A.Load(mc.alu.ShiftR(mc.A.Value(), true))
	default:
		return curated.Errorf(InvalidOpcode, mc.Defn.OpCode, fmt.Sprintf("%s is not an accumulator operation", op))
	}
	return nil
}

// read performs the operation of instructions that take a value from memory.
func (mc *CPU) read(op instructions.Operator, v uint8) error {
	switch op {
	case instructions.ORA:
		mc.A.Load(mc.alu.Or(mc.A.Value(), v))
	case instructions.AND:
		mc.A.Load(mc.alu.And(mc.A.Value(), v))
	case instructions.EOR:
		mc.A.Load(mc.alu.Xor(mc.A.Value(), v))
	case instructions.ADC:
		mc.A.Load(mc.alu.Add(mc.A.Value(), v))
	case instructions.SBC:
		mc.A.Load(mc.alu.Sub(mc.A.Value(), v))
	case instructions.LDA:
		mc.A.Load(mc.alu.PassThrough(v, true))
	case instructions.LDX:
		mc.X.Load(mc.alu.PassThrough(v, true))
	case instructions.LDY:
		mc.Y.Load(mc.alu.PassThrough(v, true))
	case instructions.CMP:
		mc.alu.Cmp(mc.A.Value(), v)
	case instructions.CPX:
		mc.alu.Cmp(mc.X.Value(), v)
	case instructions.CPY:
		mc.alu.Cmp(mc.Y.Value(), v)
	case instructions.BIT:
		mc.alu.Bit(mc.A.Value(), v)
	default:
		return curated.Errorf(InvalidOpcode, mc.Defn.OpCode, fmt.Sprintf("%s is not a read operation", op))
	}
	return nil
}

// write performs the operation of instructions that store a register.
func (mc *CPU) write(op instructions.Operator) error {
	switch op {
	case instructions.STA:
		return mc.mem.Write(mc.address, mc.A.Value())
	case instructions.STX:
		return mc.mem.Write(mc.address, mc.X.Value())
	case instructions.STY:
		return mc.mem.Write(mc.address, mc.Y.Value())
	}
	return curated.Errorf(InvalidOpcode, mc.Defn.OpCode, fmt.Sprintf("%s is not a write operation", op))
}

// modify performs the operation of read-modify-write instructions on the
// value fetched by an earlier StepReadModify.
func (mc *CPU) modify(op instructions.Operator) error {
	switch op {
	case instructions.ASL:
		mc.fetched = mc.alu.ShiftL(mc.fetched, false)
	case instructions.ROL:
		mc.fetched = mc.alu.ShiftL(mc.fetched, true)
	case instructions.LSR:
		mc.fetched = mc.alu.ShiftR(mc.fetched, false)
	case instructions.ROR:
		mc.fetched = mc.alu.ShiftR(mc.fetched, true)
	case instructions.INC:
		mc.fetched = mc.alu.Increment(mc.fetched)
	case instructions.DEC:
		mc.fetched = mc.alu.Decrement(mc.fetched)
	default:
		return curated.Errorf(InvalidOpcode, mc.Defn.OpCode, fmt.Sprintf("%s is not a read-modify-write operation", op))
	}
	return mc.mem.Write(mc.address, mc.fetched)
}

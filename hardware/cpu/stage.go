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
	"github.com/nescore/nescore/hardware/memory/memorymap"
)

// stage the steps for the instruction. the opcode has already been fetched
// and counts as the first cycle of the instruction.
func (mc *CPU) stage(defn instructions.Definition) error {
	switch defn.AddressingMode {
	case instructions.Accumulator:
		return mc.stageAccumulator(defn)
	case instructions.Implied:
		return mc.stageImplied(defn)
	case instructions.Immediate:
		return mc.stageImmediate(defn)
	case instructions.Absolute:
		return mc.stageAbsolute(defn)
	}
	return unsupported(defn, "unsupported addressing mode")
}

func unsupported(defn instructions.Definition, reason string) error {
	return curated.Errorf(InvalidOpcode, defn.OpCode, fmt.Sprintf("%s %s: %s", defn.Operator, defn.AddressingMode, reason))
}

func (mc *CPU) stageAccumulator(defn instructions.Definition) error {
	switch defn.Operator {
	case instructions.ASL, instructions.ROL, instructions.LSR, instructions.ROR:
		mc.pipeline.Push(Step{Kind: StepAccumulator, Operator: defn.Operator})
		return nil
	}
	return unsupported(defn, "unsupported instruction")
}

func (mc *CPU) stageImplied(defn instructions.Definition) error {
	switch defn.Operator {
	case instructions.BRK:
		mc.pipeline.Push(
			Step{Kind: StepBreak},
			Step{Kind: StepPushPCH},
			Step{Kind: StepPushPCL},
			Step{Kind: StepPushStatusBreak},
			Step{Kind: StepVectorLo, Vector: memorymap.IRQ},
			Step{Kind: StepVectorHi, Vector: memorymap.IRQ},
		)

	case instructions.PHP:
		mc.pipeline.Push(
			Step{Kind: StepDummyRead},
			Step{Kind: StepPushStatusBreak},
		)

	case instructions.PLP:
		mc.pipeline.Push(
			Step{Kind: StepDummyRead},
			Step{Kind: StepInternal},
			Step{Kind: StepPullStatus},
		)

	case instructions.RTI:
		mc.pipeline.Push(
			Step{Kind: StepDummyRead},
			Step{Kind: StepInternal},
			Step{Kind: StepPullStatus},
			Step{Kind: StepPullPCL},
			Step{Kind: StepPullPCH},
		)

	case instructions.PHA:
		mc.pipeline.Push(
			Step{Kind: StepDummyRead},
			Step{Kind: StepPushA},
		)

	case instructions.PLA:
		mc.pipeline.Push(
			Step{Kind: StepDummyRead},
			Step{Kind: StepInternal},
			Step{Kind: StepPullA},
		)

	case instructions.RTS:
		// the internal cycle is the stack pointer increment. the Pull()
		// function does the increment itself
		mc.pipeline.Push(
			Step{Kind: StepDummyRead},
			Step{Kind: StepInternal},
			Step{Kind: StepPullPCL},
			Step{Kind: StepPullPCH},
			Step{Kind: StepIncrementPC},
		)

	case instructions.CLC, instructions.SEC, instructions.CLI, instructions.SEI,
		instructions.CLV, instructions.CLD, instructions.SED,
		instructions.TAX, instructions.TAY, instructions.TXA, instructions.TYA,
		instructions.TSX, instructions.TXS,
		instructions.INX, instructions.INY, instructions.DEX, instructions.DEY,
		instructions.NOP:
		mc.pipeline.Push(Step{Kind: StepImplied, Operator: defn.Operator})

	default:
		return unsupported(defn, "unsupported instruction")
	}

	return nil
}

func (mc *CPU) stageImmediate(defn instructions.Definition) error {
	switch defn.Operator {
	case instructions.ORA, instructions.AND, instructions.EOR,
		instructions.ADC, instructions.SBC,
		instructions.LDA, instructions.LDX, instructions.LDY,
		instructions.CMP, instructions.CPX, instructions.CPY:
		mc.pipeline.Push(Step{Kind: StepImmediate, Operator: defn.Operator})
		return nil
	}
	return unsupported(defn, "unsupported instruction")
}

func (mc *CPU) stageAbsolute(defn instructions.Definition) error {
	switch defn.Operator {
	case instructions.JSR:
		// the high byte of the address is fetched after the return address
		// has been pushed. the pushed address is therefore the address of the
		// last byte of the JSR instruction
		mc.pipeline.Push(
			Step{Kind: StepFetchLo},
			Step{Kind: StepInternal},
			Step{Kind: StepPushPCH},
			Step{Kind: StepPushPCL},
			Step{Kind: StepJump},
		)
		return nil

	case instructions.JMP:
		mc.pipeline.Push(
			Step{Kind: StepFetchLo},
			Step{Kind: StepJump},
		)
		return nil

	case instructions.ORA, instructions.AND, instructions.EOR,
		instructions.ADC, instructions.SBC,
		instructions.CMP, instructions.CPX, instructions.CPY, instructions.BIT,
		instructions.LDA, instructions.LDX, instructions.LDY,
		instructions.STA, instructions.STX, instructions.STY,
		instructions.ASL, instructions.LSR, instructions.ROL, instructions.ROR,
		instructions.INC, instructions.DEC:
		mc.pipeline.Push(
			Step{Kind: StepFetchLo},
			Step{Kind: StepFetchHi},
		)

		if defn.Effect == instructions.RMW {
			mc.pipeline.Push(
				Step{Kind: StepReadModify},
				Step{Kind: StepWriteBack},
			)
		}

		mc.pipeline.Push(Step{Kind: StepAbsolute, Operator: defn.Operator, Effect: defn.Effect})
		return nil
	}

	return unsupported(defn, "unsupported instruction")
}

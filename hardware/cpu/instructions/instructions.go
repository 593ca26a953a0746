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

package instructions

import "fmt"

// EffectCategory categorises an instruction by the effect it has.
type EffectCategory int

// List of effect categories.
const (
	Read EffectCategory = iota
	Write
	RMW

	// the following three effects have a variable effect on the program
	// counter, depending on the instruction's precise operand.

	// flow consists of the Branch and JMP instructions. Branch instructions
	// specifically can be distinguished by the AddressingMode.
	Flow

	Subroutine
	Interrupt
)

func (e EffectCategory) String() string {
	switch e {
	case Read:
		return "Read"
	case Write:
		return "Write"
	case RMW:
		return "RMW"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Interrupt:
		return "Interrupt"
	}
	return "unknown effect"
}

// effectOf returns the effect category of an operator in the given mode.
// shift and rotate instructions only modify memory when they are not in
// accumulator mode.
func effectOf(op Operator, mode AddressingMode) EffectCategory {
	switch op {
	case STA, STX, STY, STZ, PHA, PHP, PHX, PHY, PHB, PHD, PHK, PEA, PEI, PER:
		return Write
	case ASL, LSR, ROL, ROR, INC, DEC:
		if mode == Accumulator {
			return Read
		}
		return RMW
	case TRB, TSB:
		return RMW
	case BCC, BCS, BEQ, BMI, BNE, BPL, BVC, BVS, BRA, BRL, JMP, JML:
		return Flow
	case JSR, JSL, RTS, RTL:
		return Subroutine
	case BRK, COP, RTI:
		return Interrupt
	}
	return Read
}

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	AddressingMode AddressingMode
	Effect         EffectCategory
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s [mode=%s effect=%s]", defn.OpCode, defn.Operator, defn.AddressingMode, defn.Effect)
}

// Bytes returns the length of the instruction including the opcode. BRK,
// COP and WDM are followed by a signature byte which is counted.
func (defn Definition) Bytes() int {
	switch defn.Operator {
	case BRK, COP, WDM:
		return 2
	}
	return 1 + defn.AddressingMode.OperandBytes()
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}

// IsVariant returns true if either the operator or the addressing mode of the
// instruction is not available on the 6502.
func (defn Definition) IsVariant() bool {
	return defn.Operator.IsVariant() || defn.AddressingMode.IsVariant()
}

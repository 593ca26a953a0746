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

// AddressingMode describes the method by which the data for the instruction
// is located.
type AddressingMode int

// List of addressing modes. The first group are the addressing modes of the
// 6502. The second group are additions made by the 65C02 and 65C816 variants.
const (
	Implied AddressingMode = iota
	Accumulator
	Immediate
	Relative // relative addressing is used for branch instructions

	Absolute // abs
	ZeroPage // zpg
	Indirect // ind

	IndexedIndirect // (ind,X)
	IndirectIndexed // (ind), Y

	AbsoluteIndexedX // abs,X
	AbsoluteIndexedY // abs,Y

	ZeroPageIndexedX // zpg,X
	ZeroPageIndexedY // zpg,Y

	StackRelative                // sr,S
	StackRelativeIndirectIndexed // (sr,S),Y
	DirectIndirect               // (dp)
	DirectIndirectLong           // [dp]
	DirectIndirectLongIndexed    // [dp],Y
	AbsoluteLong                 // long
	AbsoluteLongIndexedX         // long,X
	AbsoluteIndexedIndirect      // (abs,X)
	AbsoluteIndirectLong         // [abs]
	RelativeLong                 // rl
	BlockMove                    // src,dst
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "Implied"
	case Accumulator:
		return "Accumulator"
	case Immediate:
		return "Immediate"
	case Relative:
		return "Relative"
	case Absolute:
		return "Absolute"
	case ZeroPage:
		return "ZeroPage"
	case Indirect:
		return "Indirect"
	case IndexedIndirect:
		return "IndexedIndirect"
	case IndirectIndexed:
		return "IndirectIndexed"
	case AbsoluteIndexedX:
		return "AbsoluteIndexedX"
	case AbsoluteIndexedY:
		return "AbsoluteIndexedY"
	case ZeroPageIndexedX:
		return "ZeroPageIndexedX"
	case ZeroPageIndexedY:
		return "ZeroPageIndexedY"
	case StackRelative:
		return "StackRelative"
	case StackRelativeIndirectIndexed:
		return "StackRelativeIndirectIndexed"
	case DirectIndirect:
		return "DirectIndirect"
	case DirectIndirectLong:
		return "DirectIndirectLong"
	case DirectIndirectLongIndexed:
		return "DirectIndirectLongIndexed"
	case AbsoluteLong:
		return "AbsoluteLong"
	case AbsoluteLongIndexedX:
		return "AbsoluteLongIndexedX"
	case AbsoluteIndexedIndirect:
		return "AbsoluteIndexedIndirect"
	case AbsoluteIndirectLong:
		return "AbsoluteIndirectLong"
	case RelativeLong:
		return "RelativeLong"
	case BlockMove:
		return "BlockMove"
	}
	return "unknown addressing mode"
}

// IsVariant returns true if the addressing mode is not available on the
// 6502.
func (m AddressingMode) IsVariant() bool {
	return m >= StackRelative
}

// OperandBytes returns the number of bytes that follow the opcode for the
// addressing mode.
func (m AddressingMode) OperandBytes() int {
	switch m {
	case Implied, Accumulator:
		return 0
	case Absolute, Indirect, AbsoluteIndexedX, AbsoluteIndexedY,
		AbsoluteIndexedIndirect, AbsoluteIndirectLong, RelativeLong, BlockMove:
		return 2
	case AbsoluteLong, AbsoluteLongIndexedX:
		return 3
	}
	return 1
}

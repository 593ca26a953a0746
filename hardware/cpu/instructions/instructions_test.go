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

package instructions_test

import (
	"testing"

	"github.com/nescore/nescore/hardware/cpu/instructions"
	"github.com/nescore/nescore/test"
)

func TestDecode(t *testing.T) {
	for i := range instructions.Definitions {
		defn := instructions.Decode(uint8(i))
		test.DemandEquality(t, defn.OpCode, uint8(i))
	}

	defn := instructions.Decode(0x00)
	test.ExpectEquality(t, defn.Operator, instructions.BRK)
	test.ExpectEquality(t, defn.AddressingMode, instructions.Implied)
	test.ExpectEquality(t, defn.Effect, instructions.Interrupt)
	test.ExpectEquality(t, defn.Bytes(), 2)

	defn = instructions.Decode(0x20)
	test.ExpectEquality(t, defn.Operator, instructions.JSR)
	test.ExpectEquality(t, defn.AddressingMode, instructions.Absolute)
	test.ExpectEquality(t, defn.Effect, instructions.Subroutine)
	test.ExpectEquality(t, defn.Bytes(), 3)

	defn = instructions.Decode(0x8d)
	test.ExpectEquality(t, defn.Operator, instructions.STA)
	test.ExpectEquality(t, defn.Effect, instructions.Write)

	defn = instructions.Decode(0xee)
	test.ExpectEquality(t, defn.Operator, instructions.INC)
	test.ExpectEquality(t, defn.Effect, instructions.RMW)

	defn = instructions.Decode(0x0a)
	test.ExpectEquality(t, defn.Operator, instructions.ASL)
	test.ExpectEquality(t, defn.AddressingMode, instructions.Accumulator)
	test.ExpectEquality(t, defn.Effect, instructions.Read)
	test.ExpectEquality(t, defn.Bytes(), 1)

	defn = instructions.Decode(0xd0)
	test.ExpectEquality(t, defn.Operator, instructions.BNE)
	test.ExpectSuccess(t, defn.IsBranch())

	defn = instructions.Decode(0x4c)
	test.ExpectEquality(t, defn.Operator, instructions.JMP)
	test.ExpectFailure(t, defn.IsBranch())
}

func TestVariants(t *testing.T) {
	// block move is a variant addressing mode and a variant instruction
	defn := instructions.Decode(0x44)
	test.ExpectEquality(t, defn.Operator, instructions.MVP)
	test.ExpectEquality(t, defn.AddressingMode, instructions.BlockMove)
	test.ExpectSuccess(t, defn.IsVariant())

	// store zero uses a 6502 addressing mode
	defn = instructions.Decode(0x9c)
	test.ExpectEquality(t, defn.Operator, instructions.STZ)
	test.ExpectFailure(t, defn.AddressingMode.IsVariant())
	test.ExpectSuccess(t, defn.Operator.IsVariant())

	// a 6502 instruction in a variant addressing mode
	defn = instructions.Decode(0x7c)
	test.ExpectEquality(t, defn.Operator, instructions.JMP)
	test.ExpectSuccess(t, defn.AddressingMode.IsVariant())
	test.ExpectFailure(t, defn.Operator.IsVariant())

	// there are 151 opcodes in the 6502 instruction set. the 65C02 added five
	// more that use 6502 operators and addressing modes: INC A, DEC A, BIT
	// zpg,X, BIT abs,X and BIT #
	var n int
	for _, defn := range instructions.Definitions {
		if !defn.IsVariant() {
			n++
		}
	}
	test.ExpectEquality(t, n, 156)
}

func TestStrings(t *testing.T) {
	test.ExpectEquality(t, instructions.ADC.String(), "ADC")
	test.ExpectEquality(t, instructions.XCE.String(), "XCE")
	test.ExpectEquality(t, instructions.Operator(-1).String(), "???")
	test.ExpectEquality(t, instructions.Decode(0xea).String(), "ea NOP [mode=Implied effect=Read]")
}

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

// Decode returns the definition for the opcode. Every opcode decodes to a
// definition. Whether the CPU can execute it is a separate question.
func Decode(opcode uint8) Definition {
	return Definitions[opcode]
}

// Definitions is the decode table, indexed by opcode.
var Definitions [256]Definition

func init() {
	for i, e := range matrix {
		Definitions[i] = Definition{
			OpCode:         uint8(i),
			Operator:       e.op,
			AddressingMode: e.mode,
			Effect:         effectOf(e.op, e.mode),
		}
	}
}

type entry struct {
	op   Operator
	mode AddressingMode
}

// the 65C816 opcode matrix.
var matrix = [256]entry{
	{BRK, Implied},                      // 00
	{ORA, IndexedIndirect},              // 01
	{COP, Immediate},                    // 02
	{ORA, StackRelative},                // 03
	{TSB, ZeroPage},                     // 04
	{ORA, ZeroPage},                     // 05
	{ASL, ZeroPage},                     // 06
	{ORA, DirectIndirectLong},           // 07
	{PHP, Implied},                      // 08
	{ORA, Immediate},                    // 09
	{ASL, Accumulator},                  // 0a
	{PHD, Implied},                      // 0b
	{TSB, Absolute},                     // 0c
	{ORA, Absolute},                     // 0d
	{ASL, Absolute},                     // 0e
	{ORA, AbsoluteLong},                 // 0f
	{BPL, Relative},                     // 10
	{ORA, IndirectIndexed},              // 11
	{ORA, DirectIndirect},               // 12
	{ORA, StackRelativeIndirectIndexed}, // 13
	{TRB, ZeroPage},                     // 14
	{ORA, ZeroPageIndexedX},             // 15
	{ASL, ZeroPageIndexedX},             // 16
	{ORA, DirectIndirectLongIndexed},    // 17
	{CLC, Implied},                      // 18
	{ORA, AbsoluteIndexedY},             // 19
	{INC, Accumulator},                  // 1a
	{TCS, Implied},                      // 1b
	{TRB, Absolute},                     // 1c
	{ORA, AbsoluteIndexedX},             // 1d
	{ASL, AbsoluteIndexedX},             // 1e
	{ORA, AbsoluteLongIndexedX},         // 1f
	{JSR, Absolute},                     // 20
	{AND, IndexedIndirect},              // 21
	{JSL, AbsoluteLong},                 // 22
	{AND, StackRelative},                // 23
	{BIT, ZeroPage},                     // 24
	{AND, ZeroPage},                     // 25
	{ROL, ZeroPage},                     // 26
	{AND, DirectIndirectLong},           // 27
	{PLP, Implied},                      // 28
	{AND, Immediate},                    // 29
	{ROL, Accumulator},                  // 2a
	{PLD, Implied},                      // 2b
	{BIT, Absolute},                     // 2c
	{AND, Absolute},                     // 2d
	{ROL, Absolute},                     // 2e
	{AND, AbsoluteLong},                 // 2f
	{BMI, Relative},                     // 30
	{AND, IndirectIndexed},              // 31
	{AND, DirectIndirect},               // 32
	{AND, StackRelativeIndirectIndexed}, // 33
	{BIT, ZeroPageIndexedX},             // 34
	{AND, ZeroPageIndexedX},             // 35
	{ROL, ZeroPageIndexedX},             // 36
	{AND, DirectIndirectLongIndexed},    // 37
	{SEC, Implied},                      // 38
	{AND, AbsoluteIndexedY},             // 39
	{DEC, Accumulator},                  // 3a
	{TSC, Implied},                      // 3b
	{BIT, AbsoluteIndexedX},             // 3c
	{AND, AbsoluteIndexedX},             // 3d
	{ROL, AbsoluteIndexedX},             // 3e
	{AND, AbsoluteLongIndexedX},         // 3f
	{RTI, Implied},                      // 40
	{EOR, IndexedIndirect},              // 41
	{WDM, Immediate},                    // 42
	{EOR, StackRelative},                // 43
	{MVP, BlockMove},                    // 44
	{EOR, ZeroPage},                     // 45
	{LSR, ZeroPage},                     // 46
	{EOR, DirectIndirectLong},           // 47
	{PHA, Implied},                      // 48
	{EOR, Immediate},                    // 49
	{LSR, Accumulator},                  // 4a
	{PHK, Implied},                      // 4b
	{JMP, Absolute},                     // 4c
	{EOR, Absolute},                     // 4d
	{LSR, Absolute},                     // 4e
	{EOR, AbsoluteLong},                 // 4f
	{BVC, Relative},                     // 50
	{EOR, IndirectIndexed},              // 51
	{EOR, DirectIndirect},               // 52
	{EOR, StackRelativeIndirectIndexed}, // 53
	{MVN, BlockMove},                    // 54
	{EOR, ZeroPageIndexedX},             // 55
	{LSR, ZeroPageIndexedX},             // 56
	{EOR, DirectIndirectLongIndexed},    // 57
	{CLI, Implied},                      // 58
	{EOR, AbsoluteIndexedY},             // 59
	{PHY, Implied},                      // 5a
	{TCD, Implied},                      // 5b
	{JML, AbsoluteLong},                 // 5c
	{EOR, AbsoluteIndexedX},             // 5d
	{LSR, AbsoluteIndexedX},             // 5e
	{EOR, AbsoluteLongIndexedX},         // 5f
	{RTS, Implied},                      // 60
	{ADC, IndexedIndirect},              // 61
	{PER, RelativeLong},                 // 62
	{ADC, StackRelative},                // 63
	{STZ, ZeroPage},                     // 64
	{ADC, ZeroPage},                     // 65
	{ROR, ZeroPage},                     // 66
	{ADC, DirectIndirectLong},           // 67
	{PLA, Implied},                      // 68
	{ADC, Immediate},                    // 69
	{ROR, Accumulator},                  // 6a
	{RTL, Implied},                      // 6b
	{JMP, Indirect},                     // 6c
	{ADC, Absolute},                     // 6d
	{ROR, Absolute},                     // 6e
	{ADC, AbsoluteLong},                 // 6f
	{BVS, Relative},                     // 70
	{ADC, IndirectIndexed},              // 71
	{ADC, DirectIndirect},               // 72
	{ADC, StackRelativeIndirectIndexed}, // 73
	{STZ, ZeroPageIndexedX},             // 74
	{ADC, ZeroPageIndexedX},             // 75
	{ROR, ZeroPageIndexedX},             // 76
	{ADC, DirectIndirectLongIndexed},    // 77
	{SEI, Implied},                      // 78
	{ADC, AbsoluteIndexedY},             // 79
	{PLY, Implied},                      // 7a
	{TDC, Implied},                      // 7b
	{JMP, AbsoluteIndexedIndirect},      // 7c
	{ADC, AbsoluteIndexedX},             // 7d
	{ROR, AbsoluteIndexedX},             // 7e
	{ADC, AbsoluteLongIndexedX},         // 7f
	{BRA, Relative},                     // 80
	{STA, IndexedIndirect},              // 81
	{BRL, RelativeLong},                 // 82
	{STA, StackRelative},                // 83
	{STY, ZeroPage},                     // 84
	{STA, ZeroPage},                     // 85
	{STX, ZeroPage},                     // 86
	{STA, DirectIndirectLong},           // 87
	{DEY, Implied},                      // 88
	{BIT, Immediate},                    // 89
	{TXA, Implied},                      // 8a
	{PHB, Implied},                      // 8b
	{STY, Absolute},                     // 8c
	{STA, Absolute},                     // 8d
	{STX, Absolute},                     // 8e
	{STA, AbsoluteLong},                 // 8f
	{BCC, Relative},                     // 90
	{STA, IndirectIndexed},              // 91
	{STA, DirectIndirect},               // 92
	{STA, StackRelativeIndirectIndexed}, // 93
	{STY, ZeroPageIndexedX},             // 94
	{STA, ZeroPageIndexedX},             // 95
	{STX, ZeroPageIndexedY},             // 96
	{STA, DirectIndirectLongIndexed},    // 97
	{TYA, Implied},                      // 98
	{STA, AbsoluteIndexedY},             // 99
	{TXS, Implied},                      // 9a
	{TXY, Implied},                      // 9b
	{STZ, Absolute},                     // 9c
	{STA, AbsoluteIndexedX},             // 9d
	{STZ, AbsoluteIndexedX},             // 9e
	{STA, AbsoluteLongIndexedX},         // 9f
	{LDY, Immediate},                    // a0
	{LDA, IndexedIndirect},              // a1
	{LDX, Immediate},                    // a2
	{LDA, StackRelative},                // a3
	{LDY, ZeroPage},                     // a4
	{LDA, ZeroPage},                     // a5
	{LDX, ZeroPage},                     // a6
	{LDA, DirectIndirectLong},           // a7
	{TAY, Implied},                      // a8
	{LDA, Immediate},                    // a9
	{TAX, Implied},                      // aa
	{PLB, Implied},                      // ab
	{LDY, Absolute},                     // ac
	{LDA, Absolute},                     // ad
	{LDX, Absolute},                     // ae
	{LDA, AbsoluteLong},                 // af
	{BCS, Relative},                     // b0
	{LDA, IndirectIndexed},              // b1
	{LDA, DirectIndirect},               // b2
	{LDA, StackRelativeIndirectIndexed}, // b3
	{LDY, ZeroPageIndexedX},             // b4
	{LDA, ZeroPageIndexedX},             // b5
	{LDX, ZeroPageIndexedY},             // b6
	{LDA, DirectIndirectLongIndexed},    // b7
	{CLV, Implied},                      // b8
	{LDA, AbsoluteIndexedY},             // b9
	{TSX, Implied},                      // ba
	{TYX, Implied},                      // bb
	{LDY, AbsoluteIndexedX},             // bc
	{LDA, AbsoluteIndexedX},             // bd
	{LDX, AbsoluteIndexedY},             // be
	{LDA, AbsoluteLongIndexedX},         // bf
	{CPY, Immediate},                    // c0
	{CMP, IndexedIndirect},              // c1
	{REP, Immediate},                    // c2
	{CMP, StackRelative},                // c3
	{CPY, ZeroPage},                     // c4
	{CMP, ZeroPage},                     // c5
	{DEC, ZeroPage},                     // c6
	{CMP, DirectIndirectLong},           // c7
	{INY, Implied},                      // c8
	{CMP, Immediate},                    // c9
	{DEX, Implied},                      // ca
	{WAI, Implied},                      // cb
	{CPY, Absolute},                     // cc
	{CMP, Absolute},                     // cd
	{DEC, Absolute},                     // ce
	{CMP, AbsoluteLong},                 // cf
	{BNE, Relative},                     // d0
	{CMP, IndirectIndexed},              // d1
	{CMP, DirectIndirect},               // d2
	{CMP, StackRelativeIndirectIndexed}, // d3
	{PEI, DirectIndirect},               // d4
	{CMP, ZeroPageIndexedX},             // d5
	{DEC, ZeroPageIndexedX},             // d6
	{CMP, DirectIndirectLongIndexed},    // d7
	{CLD, Implied},                      // d8
	{CMP, AbsoluteIndexedY},             // d9
	{PHX, Implied},                      // da
	{STP, Implied},                      // db
	{JML, AbsoluteIndirectLong},         // dc
	{CMP, AbsoluteIndexedX},             // dd
	{DEC, AbsoluteIndexedX},             // de
	{CMP, AbsoluteLongIndexedX},         // df
	{CPX, Immediate},                    // e0
	{SBC, IndexedIndirect},              // e1
	{SEP, Immediate},                    // e2
	{SBC, StackRelative},                // e3
	{CPX, ZeroPage},                     // e4
	{SBC, ZeroPage},                     // e5
	{INC, ZeroPage},                     // e6
	{SBC, DirectIndirectLong},           // e7
	{INX, Implied},                      // e8
	{SBC, Immediate},                    // e9
	{NOP, Implied},                      // ea
	{XBA, Implied},                      // eb
	{CPX, Absolute},                     // ec
	{SBC, Absolute},                     // ed
	{INC, Absolute},                     // ee
	{SBC, AbsoluteLong},                 // ef
	{BEQ, Relative},                     // f0
	{SBC, IndirectIndexed},              // f1
	{SBC, DirectIndirect},               // f2
	{SBC, StackRelativeIndirectIndexed}, // f3
	{PEA, Absolute},                     // f4
	{SBC, ZeroPageIndexedX},             // f5
	{INC, ZeroPageIndexedX},             // f6
	{SBC, DirectIndirectLongIndexed},    // f7
	{SED, Implied},                      // f8
	{SBC, AbsoluteIndexedY},             // f9
	{PLX, Implied},                      // fa
	{XCE, Implied},                      // fb
	{JSR, AbsoluteIndexedIndirect},      // fc
	{SBC, AbsoluteIndexedX},             // fd
	{INC, AbsoluteIndexedX},             // fe
	{SBC, AbsoluteLongIndexedX},         // ff
}

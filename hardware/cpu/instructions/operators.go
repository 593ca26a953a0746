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

// Operator is the operation performed by an instruction. The list covers the
// whole of the 65C816 family so that every opcode decodes to something. Only
// the operators of the original 6502 are executed by the CPU. See
// IsVariant().
type Operator int

// List of operators in alphabetical order.
const (
	ADC Operator = iota
	AND
	ASL
	BCC
	BCS
	BEQ
	BIT
	BMI
	BNE
	BPL
	BRA
	BRK
	BRL
	BVC
	BVS
	CLC
	CLD
	CLI
	CLV
	CMP
	COP
	CPX
	CPY
	DEC
	DEX
	DEY
	EOR
	INC
	INX
	INY
	JML
	JMP
	JSL
	JSR
	LDA
	LDX
	LDY
	LSR
	MVN
	MVP
	NOP
	ORA
	PEA
	PEI
	PER
	PHA
	PHB
	PHD
	PHK
	PHP
	PHX
	PHY
	PLA
	PLB
	PLD
	PLP
	PLX
	PLY
	REP
	ROL
	ROR
	RTI
	RTL
	RTS
	SBC
	SEC
	SED
	SEI
	SEP
	STA
	STP
	STX
	STY
	STZ
	TAX
	TAY
	TCD
	TCS
	TDC
	TRB
	TSB
	TSC
	TSX
	TXA
	TXS
	TXY
	TYA
	TYX
	WAI
	WDM
	XBA
	XCE
)

var mnemonics = [...]string{
	ADC: "ADC",
	AND: "AND",
	ASL: "ASL",
	BCC: "BCC",
	BCS: "BCS",
	BEQ: "BEQ",
	BIT: "BIT",
	BMI: "BMI",
	BNE: "BNE",
	BPL: "BPL",
	BRA: "BRA",
	BRK: "BRK",
	BRL: "BRL",
	BVC: "BVC",
	BVS: "BVS",
	CLC: "CLC",
	CLD: "CLD",
	CLI: "CLI",
	CLV: "CLV",
	CMP: "CMP",
	COP: "COP",
	CPX: "CPX",
	CPY: "CPY",
	DEC: "DEC",
	DEX: "DEX",
	DEY: "DEY",
	EOR: "EOR",
	INC: "INC",
	INX: "INX",
	INY: "INY",
	JML: "JML",
	JMP: "JMP",
	JSL: "JSL",
	JSR: "JSR",
	LDA: "LDA",
	LDX: "LDX",
	LDY: "LDY",
	LSR: "LSR",
	MVN: "MVN",
	MVP: "MVP",
	NOP: "NOP",
	ORA: "ORA",
	PEA: "PEA",
	PEI: "PEI",
	PER: "PER",
	PHA: "PHA",
	PHB: "PHB",
	PHD: "PHD",
	PHK: "PHK",
	PHP: "PHP",
	PHX: "PHX",
	PHY: "PHY",
	PLA: "PLA",
	PLB: "PLB",
	PLD: "PLD",
	PLP: "PLP",
	PLX: "PLX",
	PLY: "PLY",
	REP: "REP",
	ROL: "ROL",
	ROR: "ROR",
	RTI: "RTI",
	RTL: "RTL",
	RTS: "RTS",
	SBC: "SBC",
	SEC: "SEC",
	SED: "SED",
	SEI: "SEI",
	SEP: "SEP",
	STA: "STA",
	STP: "STP",
	STX: "STX",
	STY: "STY",
	STZ: "STZ",
	TAX: "TAX",
	TAY: "TAY",
	TCD: "TCD",
	TCS: "TCS",
	TDC: "TDC",
	TRB: "TRB",
	TSB: "TSB",
	TSC: "TSC",
	TSX: "TSX",
	TXA: "TXA",
	TXS: "TXS",
	TXY: "TXY",
	TYA: "TYA",
	TYX: "TYX",
	WAI: "WAI",
	WDM: "WDM",
	XBA: "XBA",
	XCE: "XCE",
}

func (op Operator) String() string {
	if op < 0 || int(op) >= len(mnemonics) {
		return "???"
	}
	return mnemonics[op]
}

// IsVariant returns true if the operator is not part of the 6502 instruction
// set. These are the additions made by the 65C02 and 65C816 variants.
func (op Operator) IsVariant() bool {
	switch op {
	case BRA, BRL, COP, JML, JSL, MVN, MVP, PEA, PEI, PER,
		PHB, PHD, PHK, PHX, PHY, PLB, PLD, PLX, PLY,
		REP, RTL, SEP, STP, STZ, TCD, TCS, TDC, TRB, TSB, TSC,
		TXY, TYX, WAI, WDM, XBA, XCE:
		return true
	}
	return false
}

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
	"github.com/nescore/nescore/hardware/cpu/registers"
)

// Bus is the internal data bus of the ALU. It pairs two 8 bit operands into
// a single 16 bit value, with the A operand in the high byte and the B operand
// in the low byte. Operations that carry out of an 8 bit result do so into
// the other half of the bus.
type Bus uint16

// Load the bus with two operands.
func (b *Bus) Load(a uint8, bb uint8) {
	*b = Bus(uint16(a)<<8 | uint16(bb))
}

// A returns the high byte of the bus.
func (b Bus) A() uint8 {
	return uint8(b >> 8)
}

// B returns the low byte of the bus.
func (b Bus) B() uint8 {
	return uint8(b)
}

// ALU performs arithmetic and logic on behalf of the CPU and sets the flags
// of the status register according to the result. Decimal mode is not
// supported by the 2A03 so the decimal flag has no effect on Add() and Sub().
type ALU struct {
	P   *registers.Status
	bus Bus
}

// NewALU is the preferred method of initialisation for the ALU type.
func NewALU(p *registers.Status) ALU {
	return ALU{P: p}
}

func (alu *ALU) setZN(v uint8) {
	alu.P.Set(registers.Zero, v == 0)
	alu.P.Set(registers.Negative, v&0x80 == 0x80)
}

func (alu *ALU) carry() uint8 {
	if alu.P.Get(registers.Carry) {
		return 1
	}
	return 0
}

// ShiftL shifts the operand one bit to the left. The bit shifted out goes to
// the carry flag. If rotate is true the previous carry is shifted in.
func (alu *ALU) ShiftL(b uint8, rotate bool) uint8 {
	var in uint8
	if rotate {
		in = alu.carry()
	}

	alu.bus.Load(0, b)
	alu.bus <<= 1
	r := alu.bus.B() | in

	alu.P.Set(registers.Carry, alu.bus.A()&0x01 == 0x01)
	alu.setZN(r)
	return r
}

// ShiftR shifts the operand one bit to the right. The bit shifted out goes to
// the carry flag. If rotate is true the previous carry is shifted in.
func (alu *ALU) ShiftR(b uint8, rotate bool) uint8 {
	var in uint8
	if rotate {
		in = alu.carry() << 7
	}

	alu.bus.Load(b, 0)
	alu.bus >>= 1
	r := alu.bus.A() | in

	alu.P.Set(registers.Carry, alu.bus.B()&0x80 == 0x80)
	alu.setZN(r)
	return r
}

// Increment returns the operand plus one.
func (alu *ALU) Increment(b uint8) uint8 {
	r := b + 1
	alu.setZN(r)
	return r
}

// Decrement returns the operand minus one.
func (alu *ALU) Decrement(b uint8) uint8 {
	r := b - 1
	alu.setZN(r)
	return r
}

// PassThrough returns the operand unchanged. The zero and negative flags are
// updated only if checkZN is true.
func (alu *ALU) PassThrough(b uint8, checkZN bool) uint8 {
	if checkZN {
		alu.setZN(b)
	}
	return b
}

// Or returns the bitwise or of the operands.
func (alu *ALU) Or(a uint8, b uint8) uint8 {
	r := a | b
	alu.setZN(r)
	return r
}

// And returns the bitwise and of the operands.
func (alu *ALU) And(a uint8, b uint8) uint8 {
	r := a & b
	alu.setZN(r)
	return r
}

// Xor returns the bitwise exclusive-or of the operands.
func (alu *ALU) Xor(a uint8, b uint8) uint8 {
	r := a ^ b
	alu.setZN(r)
	return r
}

// Add returns the sum of the operands and the carry flag.
func (alu *ALU) Add(a uint8, b uint8) uint8 {
	alu.bus = Bus(uint16(a) + uint16(b) + uint16(alu.carry()))
	r := alu.bus.B()

	// overflow detection from Ken Shirriff's blog: "The 6502 overflow flag
	// explained mathematically"
	alu.P.Set(registers.Overflow, (a^r)&(b^r)&0x80 != 0)
	alu.P.Set(registers.Carry, alu.bus.A() != 0)
	alu.setZN(r)
	return r
}

// Sub returns the difference of the operands. The carry flag is the inverse
// of the borrow.
func (alu *ALU) Sub(a uint8, b uint8) uint8 {
	return alu.Add(a, ^b)
}

// Cmp compares the operands by subtraction. Only the flags are affected.
func (alu *ALU) Cmp(a uint8, b uint8) {
	alu.bus.Load(a, b)
	alu.P.Set(registers.Carry, a >= b)
	alu.setZN(a - b)
}

// Bit tests the bits of the B operand against the A operand. The zero flag is
// set from the bitwise and of the operands. The overflow and negative flags
// are copied from bits 6 and 7 of the B operand.
func (alu *ALU) Bit(a uint8, b uint8) {
	alu.bus.Load(a, b)
	alu.P.Set(registers.Zero, a&b == 0)
	alu.P.Set(registers.Overflow, b&0x40 == 0x40)
	alu.P.Set(registers.Negative, b&0x80 == 0x80)
}

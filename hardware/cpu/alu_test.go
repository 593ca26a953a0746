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

package cpu_test

import (
	"testing"

	"github.com/nescore/nescore/hardware/cpu"
	"github.com/nescore/nescore/hardware/cpu/registers"
	"github.com/nescore/nescore/test"
)

func TestALUAdd(t *testing.T) {
	p := registers.NewStatus()
	alu := cpu.NewALU(&p)

	// signed overflow
	test.ExpectEquality(t, alu.Add(0x50, 0x50), 0xa0)
	test.ExpectSuccess(t, p.Get(registers.Overflow))
	test.ExpectSuccess(t, p.Get(registers.Negative))
	test.ExpectFailure(t, p.Get(registers.Zero))
	test.ExpectFailure(t, p.Get(registers.Carry))

	// unsigned carry
	test.ExpectEquality(t, alu.Add(0xff, 0x01), 0x00)
	test.ExpectSuccess(t, p.Get(registers.Carry))
	test.ExpectSuccess(t, p.Get(registers.Zero))
	test.ExpectFailure(t, p.Get(registers.Overflow))

	// carry in
	test.ExpectEquality(t, alu.Add(0x01, 0x01), 0x03)
	test.ExpectFailure(t, p.Get(registers.Carry))

	// decimal mode has no effect
	p.Set(registers.DecimalMode, true)
	test.ExpectEquality(t, alu.Add(0x09, 0x01), 0x0a)
}

func TestALUSub(t *testing.T) {
	p := registers.NewStatus()
	alu := cpu.NewALU(&p)

	// no borrow
	p.Set(registers.Carry, true)
	test.ExpectEquality(t, alu.Sub(0x50, 0x10), 0x40)
	test.ExpectSuccess(t, p.Get(registers.Carry))

	// borrow
	test.ExpectEquality(t, alu.Sub(0x50, 0xf0), 0x60)
	test.ExpectFailure(t, p.Get(registers.Carry))
	test.ExpectFailure(t, p.Get(registers.Overflow))

	// borrow in and signed overflow
	test.ExpectEquality(t, alu.Sub(0x50, 0xb0), 0x9f)
	test.ExpectSuccess(t, p.Get(registers.Overflow))
	test.ExpectSuccess(t, p.Get(registers.Negative))
}

func TestALUCompare(t *testing.T) {
	p := registers.NewStatus()
	alu := cpu.NewALU(&p)

	alu.Cmp(0x10, 0x10)
	test.ExpectSuccess(t, p.Get(registers.Carry))
	test.ExpectSuccess(t, p.Get(registers.Zero))
	test.ExpectFailure(t, p.Get(registers.Negative))

	alu.Cmp(0x10, 0x20)
	test.ExpectFailure(t, p.Get(registers.Carry))
	test.ExpectFailure(t, p.Get(registers.Zero))
	test.ExpectSuccess(t, p.Get(registers.Negative))

	// compare does not use or change overflow
	p.Set(registers.Overflow, true)
	alu.Cmp(0x80, 0x01)
	test.ExpectSuccess(t, p.Get(registers.Carry))
	test.ExpectSuccess(t, p.Get(registers.Overflow))
}

func TestALUBit(t *testing.T) {
	p := registers.NewStatus()
	alu := cpu.NewALU(&p)

	alu.Bit(0x0f, 0xc0)
	test.ExpectSuccess(t, p.Get(registers.Zero))
	test.ExpectSuccess(t, p.Get(registers.Overflow))
	test.ExpectSuccess(t, p.Get(registers.Negative))

	alu.Bit(0x01, 0x01)
	test.ExpectFailure(t, p.Get(registers.Zero))
	test.ExpectFailure(t, p.Get(registers.Overflow))
	test.ExpectFailure(t, p.Get(registers.Negative))
}

func TestALUShift(t *testing.T) {
	p := registers.NewStatus()
	alu := cpu.NewALU(&p)

	test.ExpectEquality(t, alu.ShiftL(0x81, false), 0x02)
	test.ExpectSuccess(t, p.Get(registers.Carry))

	// rotate the carry in
	test.ExpectEquality(t, alu.ShiftL(0x40, true), 0x81)
	test.ExpectFailure(t, p.Get(registers.Carry))
	test.ExpectSuccess(t, p.Get(registers.Negative))

	test.ExpectEquality(t, alu.ShiftR(0x01, false), 0x00)
	test.ExpectSuccess(t, p.Get(registers.Carry))
	test.ExpectSuccess(t, p.Get(registers.Zero))

	test.ExpectEquality(t, alu.ShiftR(0x02, true), 0x81)
	test.ExpectFailure(t, p.Get(registers.Carry))
	test.ExpectSuccess(t, p.Get(registers.Negative))
}

func TestALUMisc(t *testing.T) {
	p := registers.NewStatus()
	alu := cpu.NewALU(&p)

	test.ExpectEquality(t, alu.Increment(0xff), 0x00)
	test.ExpectSuccess(t, p.Get(registers.Zero))
	test.ExpectEquality(t, alu.Decrement(0x00), 0xff)
	test.ExpectSuccess(t, p.Get(registers.Negative))

	// pass through without flag update
	test.ExpectEquality(t, alu.PassThrough(0x00, false), 0x00)
	test.ExpectFailure(t, p.Get(registers.Zero))
	test.ExpectEquality(t, alu.PassThrough(0x00, true), 0x00)
	test.ExpectSuccess(t, p.Get(registers.Zero))

	test.ExpectEquality(t, alu.Or(0xf0, 0x0f), 0xff)
	test.ExpectEquality(t, alu.And(0xf0, 0x0f), 0x00)
	test.ExpectSuccess(t, p.Get(registers.Zero))
	test.ExpectEquality(t, alu.Xor(0xff, 0x0f), 0xf0)
	test.ExpectSuccess(t, p.Get(registers.Negative))
}

func TestBus(t *testing.T) {
	var b cpu.Bus
	b.Load(0x12, 0x34)
	test.ExpectEquality(t, b, cpu.Bus(0x1234))
	test.ExpectEquality(t, b.A(), 0x12)
	test.ExpectEquality(t, b.B(), 0x34)
}

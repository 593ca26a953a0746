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

package registers_test

import (
	"testing"

	"github.com/nescore/nescore/hardware/cpu/registers"
	"github.com/nescore/nescore/test"
)

func TestProgramCounter(t *testing.T) {
	// initialisation
	pc := registers.NewProgramCounter(0)
	test.ExpectEquality(t, pc.Address(), 0)

	// loading & addition
	pc.Load(127)
	test.ExpectEquality(t, pc.Address(), 127)
	test.ExpectFailure(t, pc.Add(2))
	test.ExpectEquality(t, pc.Address(), 129)

	// wrapping
	pc.Load(0xffff)
	test.ExpectSuccess(t, pc.Add(1))
	test.ExpectEquality(t, pc.Address(), 0x0000)
}

func TestProgramCounterBytes(t *testing.T) {
	pc := registers.NewProgramCounter(0x1234)
	test.ExpectEquality(t, pc.Lo(), 0x34)
	test.ExpectEquality(t, pc.Hi(), 0x12)

	pc.LoadLo(0xcd)
	test.ExpectEquality(t, pc.Address(), 0x12cd)
	pc.LoadHi(0xab)
	test.ExpectEquality(t, pc.Address(), 0xabcd)
	test.ExpectEquality(t, pc.String(), "0xabcd")
}

func TestStatus(t *testing.T) {
	sr := registers.NewStatus()
	test.ExpectEquality(t, sr.Value(), 0)
	test.ExpectEquality(t, sr.String(), "nv-bdizc")

	sr.Set(registers.Carry, true)
	sr.Set(registers.Negative, true)
	test.ExpectEquality(t, sr.Value(), 0x81)
	test.ExpectSuccess(t, sr.Get(registers.Carry))
	test.ExpectFailure(t, sr.Get(registers.Zero))
	test.ExpectEquality(t, sr.String(), "Nv-bdizC")

	sr.Set(registers.Carry, false)
	test.ExpectEquality(t, sr.Value(), 0x80)

	sr.Reset()
	test.ExpectEquality(t, sr.Value(), 0)
}

func TestStatusStack(t *testing.T) {
	sr := registers.NewStatus()
	sr.Set(registers.InterruptDisable, true)

	// pushes always have the unused bit set and the break bit depends on the
	// cause of the push
	test.ExpectEquality(t, sr.Pushed(true), 0x34)
	test.ExpectEquality(t, sr.Pushed(false), 0x24)

	// the pushed value does not change the register
	test.ExpectEquality(t, sr.Value(), 0x04)

	// pulled values lose the break bit and gain the unused bit
	sr.Pulled(0xdf)
	test.ExpectEquality(t, sr.Value(), 0xef)
	test.ExpectFailure(t, sr.Get(registers.Break))
	test.ExpectSuccess(t, sr.Get(registers.Unused))

	sr.Pulled(0x00)
	test.ExpectEquality(t, sr.Value(), 0x20)
}

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

package memory_test

import (
	"testing"

	"github.com/nescore/nescore/curated"
	"github.com/nescore/nescore/hardware/memory"
	"github.com/nescore/nescore/test"
)

func TestBankMirroring(t *testing.T) {
	ram, err := memory.NewRAM()
	test.DemandSuccess(t, err)

	size, err := ram.Size()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, size, 0x800)

	for a := 0; a < size; a++ {
		test.DemandSuccess(t, ram.Write(uint16(a), uint8(a*7)))
		for k := 0; k < 4; k++ {
			v, err := ram.Read(uint16(a + k*size))
			test.DemandSuccess(t, err)
			test.DemandEquality(t, v, uint8(a*7), a, k)
		}
	}

	// writing through a mirror is visible at the primary address
	test.ExpectSuccess(t, ram.Write(0x1801, 0xaa))
	v, err := ram.Read(0x0001)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0xaa)

	// the data slice is the storage
	d, err := ram.Data()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, d[1], 0xaa)
	d[2] = 0x55
	v, err = ram.Read(0x0802)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x55)
}

func TestBankInvalidAddress(t *testing.T) {
	pal, err := memory.NewPalette()
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, pal.HasValidAddress(0x3f00))
	test.ExpectSuccess(t, pal.HasValidAddress(0x3fff))
	test.ExpectFailure(t, pal.HasValidAddress(0x3eff))

	_, err = pal.Read(0x3eff)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, memory.InvalidAddress))

	err = pal.Write(0x0000, 0x01)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, memory.InvalidAddress))

	// palette mirrors every 32 bytes
	test.ExpectSuccess(t, pal.Write(0x3f01, 0x21))
	v, err := pal.Read(0x3fe1)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x21)
}

func TestNewBank(t *testing.T) {
	_, err := memory.NewBank(0x0000, 0x1fff, 0x0300)
	test.ExpectFailure(t, err)

	_, err = memory.NewBank(0x1000, 0x0fff, 0x0100)
	test.ExpectFailure(t, err)

	_, err = memory.NewBank(0x0000, 0x00ff, 0)
	test.ExpectFailure(t, err)

	// full address space
	b, err := memory.NewBank(0x0000, 0xffff, 0x4000)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, b.HasValidAddress(0xffff))
}

func TestVoid(t *testing.T) {
	var v memory.Void

	test.ExpectImplements[memory.Area](t, v)
	test.ExpectImplements[memory.Storage](t, v)

	test.ExpectFailure(t, v.HasValidAddress(0x0000))

	_, err := v.Read(0x8000)
	test.ExpectSuccess(t, curated.Is(err, memory.InvalidAddress))
	err = v.Write(0x8000, 0)
	test.ExpectSuccess(t, curated.Is(err, memory.InvalidAddress))

	size, err := v.Size()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, size, 0)

	_, err = v.Data()
	test.ExpectSuccess(t, curated.Is(err, memory.InvalidOperation))
}

// mockMapper responds to the upper half of the CPU space and the pattern and
// nametable areas of the PPU space
type mockMapper struct {
	prg       [0x8000]uint8
	chr       [0x3f00]uint8
	callbacks int
}

func (m *mockMapper) HasValidAddress(space memory.Space, address uint16) bool {
	if space == memory.CPUSpace {
		return address >= 0x8000
	}
	return address < 0x3f00
}

func (m *mockMapper) Read(space memory.Space, address uint16) (uint8, error) {
	if space == memory.CPUSpace {
		return m.prg[address-0x8000], nil
	}
	return m.chr[address], nil
}

func (m *mockMapper) Write(space memory.Space, address uint16, data uint8) error {
	if space == memory.CPUSpace {
		m.prg[address-0x8000] = data
		return nil
	}
	m.chr[address] = data
	return nil
}

func (m *mockMapper) Callback() {
	m.callbacks++
}

func TestMapperAdapter(t *testing.T) {
	m := &mockMapper{}
	cpu := memory.NewMapperAdapter(m, memory.CPUSpace)
	ppu := memory.NewMapperAdapter(m, memory.PPUSpace)

	test.ExpectSuccess(t, cpu.HasValidAddress(0x8000))
	test.ExpectFailure(t, cpu.HasValidAddress(0x6000))
	test.ExpectSuccess(t, ppu.HasValidAddress(0x2000))
	test.ExpectFailure(t, ppu.HasValidAddress(0x3f00))

	test.ExpectSuccess(t, cpu.Write(0x8001, 0x42))
	test.ExpectEquality(t, m.prg[1], 0x42)
	test.ExpectSuccess(t, ppu.Write(0x0001, 0x24))
	test.ExpectEquality(t, m.chr[1], 0x24)

	_, err := cpu.Read(0x6000)
	test.ExpectSuccess(t, curated.Is(err, memory.InvalidAddress))

	_, err = cpu.Size()
	test.ExpectSuccess(t, curated.Is(err, memory.NotImplemented))
	_, err = ppu.Data()
	test.ExpectSuccess(t, curated.Is(err, memory.NotImplemented))
}

// mockPorts records the last address accessed through a Ports area
type mockPorts struct {
	lastAddress uint16
	lastData    uint8
}

func (p *mockPorts) Read(address uint16) (uint8, error) {
	p.lastAddress = address
	return uint8(address & 0x07), nil
}

func (p *mockPorts) Write(address uint16, data uint8) error {
	p.lastAddress = address
	p.lastData = data
	return nil
}

func TestCPUBus(t *testing.T) {
	ram, err := memory.NewRAM()
	test.DemandSuccess(t, err)
	target := &mockPorts{}
	ports := memory.NewPorts(0x2000, 0x3fff, target)
	m := &mockMapper{}

	bus := memory.NewCPUBus(ram, ports, m)

	// RAM
	test.ExpectSuccess(t, bus.Write(0x0803, 0x99))
	v, err := bus.Read(0x0003)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x99)

	// ports are forwarded with the address unchanged
	v, err = bus.Read(0x3ffe)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x06)
	test.ExpectEquality(t, target.lastAddress, 0x3ffe)
	test.ExpectSuccess(t, bus.Write(0x2005, 0x13))
	test.ExpectEquality(t, target.lastData, 0x13)

	// mapper
	m.prg[0x7ffc] = 0x34
	v, err = bus.Read(0xfffc)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x34)

	// nothing responds to the APU/IO area
	_, err = bus.Read(0x4016)
	test.ExpectSuccess(t, curated.Is(err, memory.InvalidAddress))

	_, err = ports.Size()
	test.ExpectSuccess(t, curated.Is(err, memory.NotImplemented))
}

func TestBusWithoutMapper(t *testing.T) {
	ram, err := memory.NewRAM()
	test.DemandSuccess(t, err)
	bus := memory.NewCPUBus(ram, memory.NewPorts(0x2000, 0x3fff, &mockPorts{}), nil)
	test.ExpectEquality(t, len(bus.Areas()), 3)

	_, err = bus.Read(0x8000)
	test.ExpectSuccess(t, curated.Is(err, memory.InvalidAddress))

	pal, err := memory.NewPalette()
	test.DemandSuccess(t, err)
	ppuBus := memory.NewPPUBus(pal, nil)

	_, err = ppuBus.Read(0x2000)
	test.ExpectSuccess(t, curated.Is(err, memory.InvalidAddress))
	test.ExpectSuccess(t, ppuBus.Write(0x3f1f, 0x0f))
	v, err := ppuBus.Read(0x3fff)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x0f)
}

func TestPPUBus(t *testing.T) {
	pal, err := memory.NewPalette()
	test.DemandSuccess(t, err)
	m := &mockMapper{}
	bus := memory.NewPPUBus(pal, m)

	test.ExpectSuccess(t, bus.Write(0x2400, 0x11))
	test.ExpectEquality(t, m.chr[0x2400], 0x11)

	// palette is not shadowed by the mapper
	test.ExpectSuccess(t, bus.Write(0x3f00, 0x22))
	v, err := pal.Read(0x3f00)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x22)
}

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

package ppu

import (
	"github.com/nescore/nescore/curated"
	"github.com/nescore/nescore/hardware/memory"
	"github.com/nescore/nescore/hardware/memory/memorymap"
)

// The eight ports of the PPU, as seen by the CPU. The ports are mirrored so
// the port for an address is address%8.
const (
	PPUCTRL = iota
	PPUMASK
	PPUSTATUS
	OAMADDR
	OAMDATA
	PPUSCROLL
	PPUADDR
	PPUDATA
)

// latch is the state shared by all ports. value is the last byte that passed
// through any port. deferred is the read buffer of the data port. toggle is
// true if the next write to the scroll or address port is the second of a
// pair.
type latch struct {
	value    uint8
	deferred uint8
	toggle   bool
}

// Read implements the memory.PortTarget interface. Every port returns the
// latch value. Reading some ports changes the latch before it is returned.
func (ppu *PPU) Read(address uint16) (uint8, error) {
	switch address % memorymap.NumPPUPort {
	case PPUCTRL, PPUMASK, OAMADDR, PPUSCROLL, PPUADDR:
		// write-only ports

	case PPUSTATUS:
		// only the top three bits are driven. the remaining bits are whatever
		// was last on the data bus
		ppu.latch.value = (ppu.latch.value & 0x1f) | (uint8(ppu.Reg.Status) & 0xe0)
		ppu.Reg.Status.Set(VBlank, false)
		ppu.latch.toggle = false

	case OAMDATA:
		v, err := ppu.oam.Read(uint16(ppu.Reg.OAMAddr))
		if err != nil {
			return 0, curated.Errorf("ppu: %v", err)
		}
		ppu.latch.value = v

	case PPUDATA:
		address := ppu.Reg.V.Value() & memorymap.PPUMemtop
		v, err := ppu.mem.Read(address)
		if err != nil {
			return 0, curated.Errorf("ppu: %v", err)
		}

		if address < memorymap.OriginPalette {
			// reads outside the palette are delayed. the value returned is
			// from the previous read
			ppu.latch.value = ppu.latch.deferred
			ppu.latch.deferred = v
		} else {
			ppu.latch.deferred = v
			ppu.latch.value = v
		}

		ppu.Reg.V.Add(ppu.Reg.Ctrl.Increment())

	default:
		return 0, curated.Errorf(memory.InvalidAddress, address)
	}

	return ppu.latch.value, nil
}

// Write implements the memory.PortTarget interface.
func (ppu *PPU) Write(address uint16, data uint8) error {
	switch address % memorymap.NumPPUPort {
	case PPUCTRL:
		// enabling NMI during vblank causes an immediate NMI
		if !ppu.Reg.Ctrl.IsNMIEnable() && Control(data).IsNMIEnable() && ppu.Reg.Status.Get(VBlank) {
			ppu.raiseNMI()
		}
		ppu.latch.value = data
		ppu.Reg.Ctrl = Control(data)
		ppu.Reg.T.SetNametableX(ppu.Reg.Ctrl.NametableX())
		ppu.Reg.T.SetNametableY(ppu.Reg.Ctrl.NametableY())

	case PPUMASK:
		ppu.latch.value = data
		ppu.Reg.Mask = Mask(data)

	case PPUSTATUS:
		ppu.latch.value = data

	case OAMADDR:
		ppu.latch.value = data
		ppu.Reg.OAMAddr = data

	case OAMDATA:
		ppu.latch.value = data
		ppu.Reg.OAMData = data
		if err := ppu.oam.Write(uint16(ppu.Reg.OAMAddr), data); err != nil {
			return curated.Errorf("ppu: %v", err)
		}
		ppu.Reg.OAMAddr++

	case PPUSCROLL:
		ppu.latch.value = data
		if !ppu.latch.toggle {
			// first write is the X offset in pixels
			ppu.Reg.FineX = data & 0x07
			ppu.Reg.T.SetCoarseX(data >> 3)
		} else {
			// second write is the Y offset in pixels
			ppu.Reg.T.SetFineY(data & 0x07)
			ppu.Reg.T.SetCoarseY(data >> 3)
		}
		ppu.latch.toggle = !ppu.latch.toggle

	case PPUADDR:
		ppu.latch.value = data
		if !ppu.latch.toggle {
			// first write is the high byte. the top two bits are discarded
			ppu.Reg.T.SetHi(data & 0x3f)
		} else {
			// second write is the low byte. the complete address is copied
			// into V
			ppu.Reg.T.SetLo(data)
			ppu.Reg.V = ppu.Reg.T
		}
		ppu.latch.toggle = !ppu.latch.toggle

	case PPUDATA:
		ppu.latch.value = data
		if err := ppu.mem.Write(ppu.Reg.V.Value()&memorymap.PPUMemtop, data); err != nil {
			return curated.Errorf("ppu: %v", err)
		}
		ppu.Reg.V.Add(ppu.Reg.Ctrl.Increment())

	default:
		return curated.Errorf(memory.InvalidAddress, address)
	}

	return nil
}

// Latched returns the current value of the latch without side effects.
func (ppu *PPU) Latched() uint8 {
	return ppu.latch.value
}

// Toggle returns true if the next write to the scroll or address port will
// be the second of a pair.
func (ppu *PPU) Toggle() bool {
	return ppu.latch.toggle
}

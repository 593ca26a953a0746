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

package memory

import (
	"github.com/nescore/nescore/curated"
	"github.com/nescore/nescore/hardware/memory/memorymap"
	"github.com/nescore/nescore/logger"
)

// Bus routes accesses to the first of its areas that responds to the
// address. Bus itself implements the Area interface so buses can be nested.
type Bus struct {
	areas []Area
}

// NewBus is the preferred method of initialisation for the Bus type. The
// order of areas is the order in which they are consulted.
func NewBus(areas ...Area) *Bus {
	return &Bus{areas: areas}
}

// Areas returns the areas attached to the bus in the order they are
// consulted.
func (bus *Bus) Areas() []Area {
	return bus.areas
}

func (bus *Bus) lookup(address uint16) Area {
	for _, a := range bus.areas {
		if a.HasValidAddress(address) {
			return a
		}
	}
	return nil
}

// HasValidAddress implements the Area interface.
func (bus *Bus) HasValidAddress(address uint16) bool {
	return bus.lookup(address) != nil
}

// Read implements the Area interface.
func (bus *Bus) Read(address uint16) (uint8, error) {
	a := bus.lookup(address)
	if a == nil {
		return 0, curated.Errorf(InvalidAddress, address)
	}
	return a.Read(address)
}

// Write implements the Area interface.
func (bus *Bus) Write(address uint16, data uint8) error {
	a := bus.lookup(address)
	if a == nil {
		return curated.Errorf(InvalidAddress, address)
	}
	return a.Write(address, data)
}

// NewRAM creates the 2KB bank of internal RAM, mirrored across the RAM area
// of the CPU address space.
func NewRAM() (*Bank, error) {
	return NewBank(memorymap.OriginRAM, memorymap.MemtopRAM, memorymap.SizeRAM)
}

// NewPalette creates the 32 byte palette bank, mirrored across the palette
// area of the PPU address space.
func NewPalette() (*Bank, error) {
	return NewBank(memorymap.OriginPalette, memorymap.MemtopPalette, memorymap.SizePalette)
}

// NewCPUBus assembles the CPU address space from internal RAM, the PPU ports
// and the cartridge mapper. The mapper can be nil, in which case the
// cartridge area is void.
func NewCPUBus(ram Area, ports Area, mapper Mapper) *Bus {
	var cart Area
	if mapper == nil {
		logger.Log(logger.Allow, "memory", "no mapper attached to CPU bus")
		cart = Void{}
	} else {
		cart = NewMapperAdapter(mapper, CPUSpace)
	}
	return NewBus(ram, ports, cart)
}

// NewPPUBus assembles the PPU address space from the cartridge mapper and the
// palette. The mapper is consulted first and should not respond to addresses
// in the palette area. The mapper can be nil, in which case everything below
// the palette is void.
func NewPPUBus(palette Area, mapper Mapper) *Bus {
	var cart Area
	if mapper == nil {
		logger.Log(logger.Allow, "memory", "no mapper attached to PPU bus")
		cart = Void{}
	} else {
		cart = NewMapperAdapter(mapper, PPUSpace)
	}
	return NewBus(cart, palette)
}

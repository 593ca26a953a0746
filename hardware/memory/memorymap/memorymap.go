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

package memorymap

// Area represents the different areas of memory in the CPU address space.
type Area int

func (a Area) String() string {
	switch a {
	case RAM:
		return "RAM"
	case PPU:
		return "PPU"
	case Cartridge:
		return "Cartridge"
	}

	return "undefined"
}

// The different memory areas in the CPU address space.
const (
	Undefined Area = iota
	RAM
	PPU
	Cartridge
)

// The origin and memory top for each area of CPU memory. Internal RAM is
// 2KB mirrored four times. The PPU registers are eight bytes mirrored across
// the whole of the 0x2000 page range.
//
// The region between MemtopPPU and OriginCart holds the APU and IO registers.
// Those are outside the emulation and accesses to them are handed to the
// cartridge mapper, which is free to reject them.
const (
	OriginRAM  = uint16(0x0000)
	MemtopRAM  = uint16(0x1fff)
	SizeRAM    = 0x0800
	OriginPPU  = uint16(0x2000)
	MemtopPPU  = uint16(0x3fff)
	NumPPUPort = 8
	OriginCart = uint16(0x4020)
	MemtopCart = uint16(0xffff)
)

// Memtop is the top most address of memory in the CPU address space.
const Memtop = uint16(0xffff)

// The stack is fixed to page one. The stack pointer is an offset into it.
const StackPage = uint16(0x0100)

// Interrupt vectors. Each is the address of the low byte of a little-endian
// word.
const (
	NMI   = uint16(0xfffa)
	Reset = uint16(0xfffc)
	IRQ   = uint16(0xfffe)
)

// PPU address space. Pattern tables and nametables are provided by the
// cartridge mapper. The palette is internal to the PPU and is 32 bytes
// mirrored across the top page.
const (
	OriginPatterns   = uint16(0x0000)
	MemtopPatterns   = uint16(0x1fff)
	OriginNametables = uint16(0x2000)
	MemtopNametables = uint16(0x3eff)
	OriginPalette    = uint16(0x3f00)
	MemtopPalette    = uint16(0x3fff)
	SizePalette      = 0x20
	PPUMemtop        = uint16(0x3fff)
)

// SizeOAM is the size of object attribute memory in bytes. OAM is not mapped
// into either address space. It is reached through the PPU OAM ports.
const SizeOAM = 0x100

// MapAddress returns the area the CPU address belongs to and, for the RAM and
// PPU areas, the address with mirroring removed.
func MapAddress(address uint16) (uint16, Area) {
	// note that the order of these filters is important

	if address <= MemtopRAM {
		return address % SizeRAM, RAM
	}

	if address <= MemtopPPU {
		return OriginPPU + address%NumPPUPort, PPU
	}

	if address >= OriginCart {
		return address, Cartridge
	}

	return address, Undefined
}

// IsArea returns true if the address is in the specified area.
func IsArea(address uint16, area Area) bool {
	_, a := MapAddress(address)
	return area == a
}

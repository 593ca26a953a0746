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

// Package memory implements the memory areas of the NES and the buses that
// connect them to the CPU and PPU.
//
// Every area implements the Area interface. A Bus is itself an Area that
// routes accesses to the first of its areas that responds to an address.
// The CPU and PPU are each plumbed into their own bus:
//
//	                           ---- RAM (2KB mirrored to 0x1fff)
//	                          |
//	    CPU ---- cpu bus ---- *---- Ports ---- PPU registers
//	                          |
//	                           ---- mapper adapter (CPU space) ---- cartridge
//
//
//	                           ---- mapper adapter (PPU space) ---- cartridge
//	    PPU ---- ppu bus ---- *
//	                           ---- palette (32 bytes mirrored to 0x3fff)
//
// The cartridge is represented by the Mapper interface. The emulation does
// not implement any mappers. When no mapper is attached the Void area takes
// its place and accesses to the cartridge area fail with InvalidAddress.
//
// Banks of storage may be smaller than their address range in which case the
// storage is mirrored. An address is mapped to storage with:
//
//	address % size
//
// Areas that are also backed by plain storage implement the Storage
// interface. Adapters and ports, which have no storage of their own, fail
// with NotImplemented.
package memory

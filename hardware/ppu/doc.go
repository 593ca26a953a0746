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

// Package ppu implements the timing and register interface of the NES picture
// processing unit.
//
// The PPU is ticked three times for every CPU cycle. Each tick advances the
// cycle counter through the 341 cycles of a scanline and the scanline counter
// through the 262 scanlines of a frame (numbered -1 to 260). The CPU talks to
// the PPU through eight ports, mirrored through the 0x2000 to 0x3fff range of
// the CPU address space. The PPU type satisfies the memory.PortTarget interface
// so that it can be attached to the CPU bus with memory.NewPorts().
//
// Scrolling is implemented with the two 15 bit "loopy" registers, V and T,
// shared with the address port. The layout of the loopy registers is:
//
//	yyy NN YYYYY XXXXX
//	||| || ||||| +++++-- coarse X scroll
//	||| || +++++-------- coarse Y scroll
//	||| ++-------------- nametable select
//	+++----------------- fine Y scroll
//
// Sprite evaluation and pixel output are not part of this package.
package ppu

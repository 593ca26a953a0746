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

import "fmt"

// Loopy is a 15 bit VRAM address register, named after the person who first
// described how the PPU uses it for scrolling. The bits of the register are
// divided as follows:
//
//	yyy NN YYYYY XXXXX
//	||| || ||||| +++++-- coarse X
//	||| || +++++-------- coarse Y
//	||| |+-------------- nametable X
//	||| +--------------- nametable Y
//	+++----------------- fine Y
//
// The low twelve bits are the tile id, the offset of the tile in the
// nametable area.
type Loopy uint16

const loopyMask = 0x7fff

func (l Loopy) String() string {
	return fmt.Sprintf("%#04x", uint16(l))
}

// Value returns the register as a 15 bit value.
func (l Loopy) Value() uint16 {
	return uint16(l)
}

// Load a value into the register. Only the low 15 bits are kept.
func (l *Loopy) Load(v uint16) {
	*l = Loopy(v & loopyMask)
}

// Add a value to the register, wrapping at 15 bits.
func (l *Loopy) Add(v uint16) {
	*l = Loopy((uint16(*l) + v) & loopyMask)
}

// CoarseX is the column of the tile.
func (l Loopy) CoarseX() uint8 {
	return uint8(l & 0x001f)
}

// SetCoarseX replaces the coarse X field.
func (l *Loopy) SetCoarseX(v uint8) {
	*l = (*l &^ 0x001f) | Loopy(v&0x1f)
}

// CoarseY is the row of the tile.
func (l Loopy) CoarseY() uint8 {
	return uint8((l >> 5) & 0x1f)
}

// SetCoarseY replaces the coarse Y field.
func (l *Loopy) SetCoarseY(v uint8) {
	*l = (*l &^ 0x03e0) | (Loopy(v&0x1f) << 5)
}

// NametableX is the horizontal nametable selection.
func (l Loopy) NametableX() uint8 {
	return uint8((l >> 10) & 0x01)
}

// SetNametableX replaces the horizontal nametable selection.
func (l *Loopy) SetNametableX(v uint8) {
	*l = (*l &^ 0x0400) | (Loopy(v&0x01) << 10)
}

// NametableY is the vertical nametable selection.
func (l Loopy) NametableY() uint8 {
	return uint8((l >> 11) & 0x01)
}

// SetNametableY replaces the vertical nametable selection.
func (l *Loopy) SetNametableY(v uint8) {
	*l = (*l &^ 0x0800) | (Loopy(v&0x01) << 11)
}

// FineY is the pixel row within the tile.
func (l Loopy) FineY() uint8 {
	return uint8((l >> 12) & 0x07)
}

// SetFineY replaces the fine Y field.
func (l *Loopy) SetFineY(v uint8) {
	*l = (*l &^ 0x7000) | (Loopy(v&0x07) << 12)
}

// TileID is the offset of the tile in the nametable area.
func (l Loopy) TileID() uint16 {
	return uint16(l & 0x0fff)
}

// Lo returns the low byte of the register.
func (l Loopy) Lo() uint8 {
	return uint8(l)
}

// SetLo replaces the low byte of the register.
func (l *Loopy) SetLo(v uint8) {
	*l = (*l &^ 0x00ff) | Loopy(v)
}

// Hi returns the high seven bits of the register.
func (l Loopy) Hi() uint8 {
	return uint8(l >> 8)
}

// SetHi replaces the high seven bits of the register.
func (l *Loopy) SetHi(v uint8) {
	*l = (*l & 0x00ff) | (Loopy(v&0x7f) << 8)
}

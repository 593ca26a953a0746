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
	"fmt"
	"strings"
)

// InvalidRegister is the error pattern for a register field that holds a
// value with no meaning to the hardware. The values are the register field
// and the register value.
const InvalidRegister = "ppu: invalid register value (%s: %#02x)"

// Control is the value of the PPUCTRL register.
type Control uint8

// NametableX is the low bit of the base nametable selection.
func (c Control) NametableX() uint8 {
	return uint8(c) & 0x01
}

// NametableY is the high bit of the base nametable selection.
func (c Control) NametableY() uint8 {
	return (uint8(c) >> 1) & 0x01
}

// Increment is the amount the VRAM address is advanced by after an access to
// PPUDATA. Either 1 (across) or 32 (down).
func (c Control) Increment() uint16 {
	if c&0x04 == 0x04 {
		return 32
	}
	return 1
}

// SpriteTile is the base address of the pattern table for 8x8 sprites.
func (c Control) SpriteTile() uint16 {
	if c&0x08 == 0x08 {
		return 0x1000
	}
	return 0x0000
}

// BackgroundTile is the base address of the background pattern table.
func (c Control) BackgroundTile() uint16 {
	if c&0x10 == 0x10 {
		return 0x1000
	}
	return 0x0000
}

// SpriteHeight is zero for 8x8 sprites and one for 8x16 sprites.
func (c Control) SpriteHeight() uint8 {
	return (uint8(c) >> 5) & 0x01
}

// IsMaster is true if the PPU outputs color on the EXT pins.
func (c Control) IsMaster() bool {
	return c&0x40 == 0x40
}

// IsNMIEnable is true if an NMI should be generated at the start of vblank.
func (c Control) IsNMIEnable() bool {
	return c&0x80 == 0x80
}

// Mask is the value of the PPUMASK register.
type Mask uint8

// IsGreyscale is true if the display should be greyscale.
func (m Mask) IsGreyscale() bool {
	return m&0x01 == 0x01
}

// IsBackgroundLeftmost is true if the background is shown in the leftmost 8
// pixels of the screen.
func (m Mask) IsBackgroundLeftmost() bool {
	return m&0x02 == 0x02
}

// IsSpriteLeftmost is true if sprites are shown in the leftmost 8 pixels of
// the screen.
func (m Mask) IsSpriteLeftmost() bool {
	return m&0x04 == 0x04
}

// IsBackgroundEnable is true if the background is shown.
func (m Mask) IsBackgroundEnable() bool {
	return m&0x08 == 0x08
}

// IsSpriteEnable is true if sprites are shown.
func (m Mask) IsSpriteEnable() bool {
	return m&0x10 == 0x10
}

// Emphasis returns the red, green and blue emphasis bits.
func (m Mask) Emphasis() (red bool, green bool, blue bool) {
	return m&0x20 == 0x20, m&0x40 == 0x40, m&0x80 == 0x80
}

// Status is the value of the PPUSTATUS register.
type Status uint8

// List of flags in the status register. The low five bits of the register
// are not driven by the PPU. A read of the status register fills them from
// the latch.
const (
	SpriteOverflow Status = 0x20
	SpriteZeroHit  Status = 0x40
	VBlank         Status = 0x80
)

// Get returns the state of the flag.
func (s Status) Get(f Status) bool {
	return s&f == f
}

// Set the state of the flag.
func (s *Status) Set(f Status, v bool) {
	if v {
		*s |= f
	} else {
		*s &^= f
	}
}

// Registers of the PPU. V and T are the current and temporary VRAM address
// registers. Together with FineX they are known as the loopy registers.
type Registers struct {
	Ctrl    Control
	Mask    Mask
	Status  Status
	OAMAddr uint8
	OAMData uint8
	FineX   uint8
	V       Loopy
	T       Loopy
}

func (r Registers) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("ctrl=%#02x mask=%#02x status=%#02x ", uint8(r.Ctrl), uint8(r.Mask), uint8(r.Status)))
	s.WriteString(fmt.Sprintf("oamaddr=%#02x finex=%d v=%s t=%s", r.OAMAddr, r.FineX, r.V, r.T))
	return s.String()
}

// SpriteSize is the dimensions of all sprites, as selected by PPUCTRL.
type SpriteSize int

// List of valid SpriteSize values.
const (
	Sprite8x8 SpriteSize = iota
	Sprite8x16
)

func (s SpriteSize) String() string {
	switch s {
	case Sprite8x8:
		return "8x8"
	case Sprite8x16:
		return "8x16"
	}
	return "unknown sprite size"
}

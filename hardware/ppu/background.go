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
	"github.com/nescore/nescore/hardware/memory/memorymap"
)

// Background is the data most recently fetched for the next background tile.
// ID is the tile's entry in the nametable. Attr is the two bit palette
// selection. LSB and MSB are the two planes of the tile's pattern for the
// current fine Y row.
type Background struct {
	ID   uint8
	Attr uint8
	LSB  uint8
	MSB  uint8
}

// Background returns the most recently fetched background tile data.
func (ppu *PPU) Background() Background {
	return ppu.background
}

// the attribute table is at the end of each nametable
const attributeOffset = 0x03c0

// fetchBackground performs the background memory accesses and scroll updates
// for the current cycle. Must only be called on the pre-render and visible
// scanlines.
func (ppu *PPU) fetchBackground() error {
	if !ppu.IsRendering() {
		return nil
	}

	if (ppu.cycle >= 2 && ppu.cycle < 258) || (ppu.cycle >= 321 && ppu.cycle < 338) {
		var err error

		switch (ppu.cycle - 1) % 8 {
		case 0:
			err = ppu.fetchTileID()
		case 2:
			err = ppu.fetchTileAttr()
		case 4:
			ppu.background.LSB, err = ppu.fetchTilePattern(0)
		case 6:
			ppu.background.MSB, err = ppu.fetchTilePattern(8)
		case 7:
			ppu.ScrollX()
		}

		if err != nil {
			return curated.Errorf("ppu: background: %v", err)
		}
	}

	if ppu.cycle == 256 {
		ppu.ScrollY()
	}

	if ppu.cycle == 257 {
		ppu.TransferX()
	}

	if ppu.scanline == PreRenderScanline && ppu.cycle >= 280 && ppu.cycle < 305 {
		ppu.TransferY()
	}

	return nil
}

func (ppu *PPU) fetchTileID() error {
	v, err := ppu.mem.Read(memorymap.OriginNametables | ppu.Reg.V.TileID())
	if err != nil {
		return err
	}
	ppu.background.ID = v
	return nil
}

func (ppu *PPU) fetchTileAttr() error {
	address := memorymap.OriginNametables | attributeOffset |
		uint16(ppu.Reg.V.NametableY())<<11 |
		uint16(ppu.Reg.V.NametableX())<<10 |
		uint16(ppu.Reg.V.CoarseY()>>2)<<3 |
		uint16(ppu.Reg.V.CoarseX()>>2)

	v, err := ppu.mem.Read(address)
	if err != nil {
		return err
	}

	// each attribute byte covers a 4x4 group of tiles. each two bit field
	// covers a 2x2 quadrant of that group
	if ppu.Reg.V.CoarseY()&0x02 == 0x02 {
		v >>= 4
	}
	if ppu.Reg.V.CoarseX()&0x02 == 0x02 {
		v >>= 2
	}
	ppu.background.Attr = v & 0x03

	return nil
}

// fetchTilePattern reads one plane of the pattern for the current tile and
// fine Y row. The plane is selected by the offset: 0 for the low plane and 8
// for the high plane.
func (ppu *PPU) fetchTilePattern(plane uint16) (uint8, error) {
	address := ppu.Reg.Ctrl.BackgroundTile() +
		uint16(ppu.background.ID)<<4 +
		uint16(ppu.Reg.V.FineY()) +
		plane
	return ppu.mem.Read(address)
}

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

// ScrollX increments the coarse X field of V. Moving off the right edge of a
// nametable wraps to the next nametable horizontally. Does nothing unless
// rendering.
func (ppu *PPU) ScrollX() {
	if !ppu.IsRendering() {
		return
	}

	if ppu.Reg.V.CoarseX() == 31 {
		ppu.Reg.V.SetCoarseX(0)
		ppu.Reg.V.SetNametableX(^ppu.Reg.V.NametableX())
	} else {
		ppu.Reg.V.SetCoarseX(ppu.Reg.V.CoarseX() + 1)
	}
}

// ScrollY increments the fine Y field of V. When fine Y overflows the coarse Y
// field is incremented. A nametable is 30 rows high so moving off the bottom
// of a nametable wraps to the next nametable vertically. Coarse Y values of 30
// and 31 point into the attribute table. Some games use them anyway and the
// hardware wraps from 31 to 0 without changing nametable. Does nothing unless
// rendering.
func (ppu *PPU) ScrollY() {
	if !ppu.IsRendering() {
		return
	}

	if ppu.Reg.V.FineY() < 7 {
		ppu.Reg.V.SetFineY(ppu.Reg.V.FineY() + 1)
		return
	}

	ppu.Reg.V.SetFineY(0)

	switch ppu.Reg.V.CoarseY() {
	case 29:
		ppu.Reg.V.SetCoarseY(0)
		ppu.Reg.V.SetNametableY(^ppu.Reg.V.NametableY())
	case 31:
		ppu.Reg.V.SetCoarseY(0)
	default:
		ppu.Reg.V.SetCoarseY(ppu.Reg.V.CoarseY() + 1)
	}
}

// TransferX copies the horizontal fields of T to V. Does nothing unless
// rendering.
func (ppu *PPU) TransferX() {
	if !ppu.IsRendering() {
		return
	}
	ppu.Reg.V.SetNametableX(ppu.Reg.T.NametableX())
	ppu.Reg.V.SetCoarseX(ppu.Reg.T.CoarseX())
}

// TransferY copies the vertical fields of T to V. Does nothing unless
// rendering.
func (ppu *PPU) TransferY() {
	if !ppu.IsRendering() {
		return
	}
	ppu.Reg.V.SetFineY(ppu.Reg.T.FineY())
	ppu.Reg.V.SetNametableY(ppu.Reg.T.NametableY())
	ppu.Reg.V.SetCoarseY(ppu.Reg.T.CoarseY())
}

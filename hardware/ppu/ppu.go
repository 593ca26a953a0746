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

	"github.com/nescore/nescore/curated"
	"github.com/nescore/nescore/logger"
)

// Memory defines the memory operations required by the PPU. Both the PPU bus
// and OAM are accessed through this interface.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// Callbacker is implemented by cartridge mappers that need to observe the
// progress of rendering. The memory.Mapper interface satisfies it.
type Callbacker interface {
	Callback()
}

// Interrupter is the interrupt line the PPU raises at the start of vblank. The
// CPU satisfies this interface.
type Interrupter interface {
	NMI()
}

// Timing of the PPU, in cycles and scanlines.
const (
	CyclesPerScanline = 341
	PreRenderScanline = -1
	VisibleScanlines  = 240
	VBlankScanline    = 241
	LastScanline      = 260

	// the cycle at which the mapper callback is made
	callbackCycle = 260
)

// PPU implements the 2C02 found in the NES. Only the timing, the register
// ports and the background address logic are emulated. Pixel output is left
// to a renderer, which can use the accessor functions and Background() to
// build the picture.
type PPU struct {
	Reg Registers

	// FrameComplete is true for the duration of the tick that completed a
	// frame.
	FrameComplete bool

	mem    Memory
	oam    Memory
	mapper Callbacker
	nmi    Interrupter

	latch      latch
	background Background

	scanline int
	cycle    int
	frame    int
	oddFrame bool
}

// NewPPU is the preferred method of initialisation for the PPU type. The
// mapper can be nil.
func NewPPU(mem Memory, oam Memory, mapper Callbacker) *PPU {
	if mapper == nil {
		logger.Log(logger.Allow, "ppu", "no mapper callback")
	}
	ppu := &PPU{
		mem:    mem,
		oam:    oam,
		mapper: mapper,
	}
	ppu.Reset()
	return ppu
}

// Plumb the interrupt line into the PPU.
func (ppu *PPU) Plumb(nmi Interrupter) {
	ppu.nmi = nmi
}

// Reset the PPU to the start of the pre-render scanline of an even frame.
// Registers are cleared.
func (ppu *PPU) Reset() {
	ppu.Reg = Registers{}
	ppu.latch = latch{}
	ppu.background = Background{}
	ppu.FrameComplete = false
	ppu.scanline = PreRenderScanline
	ppu.cycle = 0
	ppu.frame = 0
	ppu.oddFrame = false
}

func (ppu *PPU) String() string {
	return fmt.Sprintf("frame=%d scanline=%d cycle=%d %s", ppu.frame, ppu.scanline, ppu.cycle, ppu.Reg)
}

// Scanline returns the current scanline. In the range -1 to 260.
func (ppu *PPU) Scanline() int {
	return ppu.scanline
}

// Cycle returns the current cycle of the scanline. In the range 0 to 340.
func (ppu *PPU) Cycle() int {
	return ppu.cycle
}

// Frame returns the number of frames completed since reset.
func (ppu *PPU) Frame() int {
	return ppu.frame
}

// IsOddFrame returns true if the current frame is odd.
func (ppu *PPU) IsOddFrame() bool {
	return ppu.oddFrame
}

// IsRendering returns true if either the background or sprites are enabled.
func (ppu *PPU) IsRendering() bool {
	return ppu.Reg.Mask.IsBackgroundEnable() || ppu.Reg.Mask.IsSpriteEnable()
}

func (ppu *PPU) isPreRenderOrVisible() bool {
	return ppu.scanline >= PreRenderScanline && ppu.scanline < VisibleScanlines
}

// SpriteSize returns the size of sprites selected by PPUCTRL.
func (ppu *PPU) SpriteSize() (SpriteSize, error) {
	switch ppu.Reg.Ctrl.SpriteHeight() {
	case 0:
		return Sprite8x8, nil
	case 1:
		return Sprite8x16, nil
	}
	return Sprite8x8, curated.Errorf(InvalidRegister, "PPUCTRL sprite height", uint8(ppu.Reg.Ctrl))
}

// Tick advances the PPU by one cycle.
func (ppu *PPU) Tick() error {
	ppu.FrameComplete = false

	if ppu.isPreRenderOrVisible() {
		// the first cycle of the first visible scanline is skipped on odd
		// frames when rendering
		if ppu.scanline == 0 && ppu.cycle == 0 && ppu.oddFrame && ppu.IsRendering() {
			ppu.cycle = 1
		}

		if ppu.scanline == PreRenderScanline && ppu.cycle == 1 {
			ppu.Reg.Status.Set(VBlank, false)
			ppu.Reg.Status.Set(SpriteOverflow, false)
			ppu.Reg.Status.Set(SpriteZeroHit, false)
		}

		if err := ppu.fetchBackground(); err != nil {
			return err
		}
	}

	if ppu.scanline == VBlankScanline && ppu.cycle == 1 {
		ppu.Reg.Status.Set(VBlank, true)
		if ppu.Reg.Ctrl.IsNMIEnable() {
			ppu.raiseNMI()
		}
	}

	ppu.ticked()

	return nil
}

// advance the cycle and scanline counters.
func (ppu *PPU) ticked() {
	ppu.cycle++

	if ppu.IsRendering() && ppu.cycle == callbackCycle && ppu.scanline < VisibleScanlines {
		if ppu.mapper != nil {
			ppu.mapper.Callback()
		}
	}

	if ppu.cycle >= CyclesPerScanline {
		ppu.cycle = 0
		ppu.scanline++
		if ppu.scanline > LastScanline {
			ppu.scanline = PreRenderScanline
			ppu.frame++
			ppu.oddFrame = !ppu.oddFrame
			ppu.FrameComplete = true
		}
	}
}

func (ppu *PPU) raiseNMI() {
	if ppu.nmi != nil {
		ppu.nmi.NMI()
	}
}

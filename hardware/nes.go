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

package hardware

import (
	"fmt"

	"github.com/nescore/nescore/curated"
	"github.com/nescore/nescore/hardware/cpu"
	"github.com/nescore/nescore/hardware/memory"
	"github.com/nescore/nescore/hardware/memory/memorymap"
	"github.com/nescore/nescore/hardware/ppu"
	"github.com/nescore/nescore/logger"
)

// NES is the main container for the emulated components of the NES.
type NES struct {
	CPU *cpu.CPU
	PPU *ppu.PPU

	// the two address spaces
	CPUBus *memory.Bus
	PPUBus *memory.Bus

	RAM     *memory.Bank
	OAM     *memory.Bank
	Palette *memory.Bank

	// the cartridge mapper. can be nil
	Mapper memory.Mapper
}

// NewNES creates a new NES and everything associated with the hardware. The
// mapper can be nil in which case the cartridge areas of both address spaces
// are empty.
func NewNES(mapper memory.Mapper) (*NES, error) {
	var err error

	nes := &NES{Mapper: mapper}

	nes.RAM, err = memory.NewRAM()
	if err != nil {
		return nil, curated.Errorf("nes: %v", err)
	}

	nes.OAM, err = memory.NewBank(0, memorymap.SizeOAM-1, memorymap.SizeOAM)
	if err != nil {
		return nil, curated.Errorf("nes: %v", err)
	}

	nes.Palette, err = memory.NewPalette()
	if err != nil {
		return nil, curated.Errorf("nes: %v", err)
	}

	nes.PPUBus = memory.NewPPUBus(nes.Palette, mapper)

	var callback ppu.Callbacker
	if mapper != nil {
		callback = mapper
	}
	nes.PPU = ppu.NewPPU(nes.PPUBus, nes.OAM, callback)

	ports := memory.NewPorts(memorymap.OriginPPU, memorymap.MemtopPPU, nes.PPU)
	nes.CPUBus = memory.NewCPUBus(nes.RAM, ports, mapper)

	nes.CPU = cpu.NewCPU(nes.CPUBus)
	nes.PPU.Plumb(nes.CPU)

	return nes, nil
}

func (nes *NES) String() string {
	return fmt.Sprintf("%s\n%s", nes.CPU, nes.PPU)
}

// Reset emulates the reset line of the console. The CPU will load the reset
// vector over the next seven cycles. The PPU is returned to the start of the
// pre-render scanline.
//
// Memory is not cleared.
func (nes *NES) Reset() {
	logger.Log(logger.Allow, "nes", "reset")
	nes.PPU.Reset()
	nes.CPU.RST()
}

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

// Step the emulation one CPU cycle. The PPU is ticked three times for every
// CPU cycle.
//
// The optional videoCycleCallback function is called after every PPU tick.
// It is useful for a debugger that wants to observe the PPU at the finest
// granularity.
func (nes *NES) Step(videoCycleCallback func() error) error {
	if err := nes.CPU.Tick(); err != nil {
		return err
	}

	for i := 0; i < ppuTicksPerCPUCycle; i++ {
		if err := nes.PPU.Tick(); err != nil {
			return err
		}

		if videoCycleCallback != nil {
			if err := videoCycleCallback(); err != nil {
				return err
			}
		}
	}

	return nil
}

// the master clock is divided by 12 for the CPU and by 4 for the PPU
const ppuTicksPerCPUCycle = 3

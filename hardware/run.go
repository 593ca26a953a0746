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

// While the continueCheck() function only runs at the end of a CPU cycle, it
// can still be expensive to do a full continue check every time.
//
// It depends on context whether it is used or not but the PerformanceBrake is
// a standard value that can be used to filter out expensive code paths within
// a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return false, nil
//		}
//	}
//	return true, nil
const PerformanceBrake = 100

// Run sets the emulation running as quickly as possible. The emulation stops
// when continueCheck() returns false or an error.
func (nes *NES) Run(continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	cont := true
	for cont {
		if err := nes.Step(nil); err != nil {
			return err
		}

		var err error
		cont, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForFrameCount sets emulator running for the specified number of frames.
// Useful for regression tests. The continueCheck() function is called at the
// end of every CPU cycle with the current frame number and can be nil.
func (nes *NES) RunForFrameCount(numFrames int, continueCheck func(frame int) (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func(frame int) (bool, error) { return true, nil }
	}

	frameNum := nes.PPU.Frame()
	targetFrame := frameNum + numFrames

	cont := true
	for frameNum != targetFrame && cont {
		if err := nes.Step(nil); err != nil {
			return err
		}

		frameNum = nes.PPU.Frame()

		var err error
		cont, err = continueCheck(frameNum)
		if err != nil {
			return err
		}
	}

	return nil
}

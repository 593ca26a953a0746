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

// Package cpu emulates the 2A03 microprocessor found in the NES. The 2A03 is
// a 6502 without decimal mode. Like all 8-bit processors of the era, the 6502
// executes instructions according to the single byte value read from an
// address pointed to by the program counter. This single byte is the opcode
// and is looked up in the instruction table of the instructions package.
//
// The CPU is driven one cycle at a time by the Tick() function. On the first
// cycle of an instruction the opcode is fetched and decoded and the remaining
// cycles of the instruction are staged in a Pipeline, one Step per cycle.
// Subsequent calls to Tick() consume one Step each. When the pipeline is
// empty the next call to Tick() fetches the next opcode.
//
// Let's assume mem is an implementation of the Memory interface, with a
// program at the address pointed to by the reset vector.
//
//	mc := cpu.NewCPU(mem)
//	mc.RST()
//
//	for {
//		if err := mc.Tick(); err != nil {
//			return err
//		}
//	}
//
// The NES runs the PPU three times for every CPU cycle. See the hardware
// package for an example of how to drive both chips.
//
// Only the accumulator, implied, immediate and absolute addressing modes are
// executed. Any other instruction fails with the InvalidOpcode error. The
// instruction table covers the whole of the 65C816 family and opcodes that
// belong to those variants also fail with InvalidOpcode.
//
// Interrupts are requested with NMI() and IRQ() and are serviced at the next
// instruction boundary. RST() abandons the current instruction immediately.
package cpu

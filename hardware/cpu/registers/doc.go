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

// Package registers implements the three types of register found in the 6502
// family of CPUs. The Register type is used for the accumulator, the X and Y
// index registers and the stack pointer. The ProgramCounter is a 16 bit
// register with separate views of its low and high bytes. The Status type is
// the flag register.
//
// Registers only store values. Arithmetic and the effect on the status flags
// is the job of the CPU's ALU. For example, an increment of the X register
// with the resulting status flags is written as:
//
//	X.Increment()
//	P.Set(registers.Zero, X.IsZero())
//	P.Set(registers.Negative, X.IsNegative())
package registers

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

package registers

import (
	"strings"
)

// Flag is a bit mask for one of the bits in the status register.
type Flag uint8

// List of valid Flag values.
const (
	Carry            Flag = 0x01
	Zero             Flag = 0x02
	InterruptDisable Flag = 0x04
	DecimalMode      Flag = 0x08
	Break            Flag = 0x10
	Unused           Flag = 0x20
	Overflow         Flag = 0x40
	Negative         Flag = 0x80
)

// Status is the special purpose register that stores the flags of the CPU.
// Each flag is a bit of a single 8 bit value.
type Status struct {
	value uint8
}

// NewStatus is the preferred method of initialisation for the status
// register.
func NewStatus() Status {
	return Status{}
}

// Label returns the canonical name for the status register.
func (sr Status) Label() string {
	return "P"
}

func (sr Status) String() string {
	s := strings.Builder{}

	flag := func(f Flag, set rune, unset rune) {
		if sr.Get(f) {
			s.WriteRune(set)
		} else {
			s.WriteRune(unset)
		}
	}

	flag(Negative, 'N', 'n')
	flag(Overflow, 'V', 'v')
	flag(Unused, '1', '-')
	flag(Break, 'B', 'b')
	flag(DecimalMode, 'D', 'd')
	flag(InterruptDisable, 'I', 'i')
	flag(Zero, 'Z', 'z')
	flag(Carry, 'C', 'c')

	return s.String()
}

// Get returns the state of the flag.
func (sr Status) Get(f Flag) bool {
	return sr.value&uint8(f) == uint8(f)
}

// Set the state of the flag.
func (sr *Status) Set(f Flag, v bool) {
	if v {
		sr.value |= uint8(f)
	} else {
		sr.value &^= uint8(f)
	}
}

// Value returns the status register as an 8 bit value, exactly as stored.
func (sr Status) Value() uint8 {
	return sr.value
}

// Load an 8 bit value into the status register, exactly as given.
func (sr *Status) Load(v uint8) {
	sr.value = v
}

// Reset status flags to initial state.
func (sr *Status) Reset() {
	sr.value = 0
}

// Pushed returns the value of the status register as it should be written to
// the stack. The unused bit is always set. The break bit is set for pushes
// caused by an instruction (BRK and PHP) and clear for pushes caused by a
// hardware interrupt.
func (sr Status) Pushed(instruction bool) uint8 {
	v := sr.value | uint8(Unused)
	if instruction {
		v |= uint8(Break)
	} else {
		v &^= uint8(Break)
	}
	return v
}

// Pulled loads a value taken from the stack. The break bit does not exist
// outside of the stack so it is cleared. The unused bit is set.
func (sr *Status) Pulled(v uint8) {
	sr.value = (v &^ uint8(Break)) | uint8(Unused)
}

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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which takes a formatting pattern and placeholder values.
//
// The pattern is what identifies a curated error. Packages that can fail
// define their failure kinds as pattern constants. For example, the memory
// package defines:
//
//	const InvalidAddress = "memory: invalid address (%#04x)"
//
// and a failing access returns:
//
//	return 0, curated.Errorf(memory.InvalidAddress, address)
//
// The Is() function checks whether an error was created with a specific
// pattern. The Has() function checks whether the pattern occurs anywhere in a
// chain of wrapped curated errors:
//
//	err := curated.Errorf("cpu: %v", curated.Errorf(memory.InvalidAddress, 0x4018))
//
//	curated.Is(err, memory.InvalidAddress)  // false
//	curated.Has(err, memory.InvalidAddress) // true
//
// The IsAny() function answers whether the error was created by Errorf() at
// all. Put another way, it separates 'expected' failures from 'unexpected'
// ones.
//
// The Error() implementation normalises the message chain by removing
// adjacent duplicate parts. Chains are thought of as parts separated by the
// sub-string ': ' as suggested on p239 of "The Go Programming Language"
// (Donovan, Kernighan). This means that a function does not need to worry
// about whether its caller has already added the same context:
//
//	cpu: cpu: invalid opcode (0x02)
//
// is reported as:
//
//	cpu: invalid opcode (0x02)
package curated

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

package memory

// Error patterns for the memory package. See the curated package for how to
// use them.
const (
	InvalidAddress   = "memory: invalid address (%#04x)"
	InvalidOperation = "memory: invalid operation (%s)"
	NotImplemented   = "memory: not implemented (%s)"
)

// Area defines the operations shared by every addressable region of memory,
// whether it is a plain bank of storage, a window onto a cartridge mapper or
// the register ports of a chip.
type Area interface {
	// HasValidAddress is true if the area responds to the address. It has no
	// side effects.
	HasValidAddress(address uint16) bool

	// Read and Write fail with InvalidAddress if HasValidAddress() is false
	// for the address.
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// Storage is implemented by areas that may be backed by a plain slice of
// bytes. Implementations that are not backed in that way fail with
// NotImplemented or InvalidOperation.
type Storage interface {
	Size() (int, error)
	Data() ([]uint8, error)
}

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

import "github.com/nescore/nescore/curated"

// Void is an area that responds to no address. It stands in for unmapped
// regions so that an access to one is an explicit error rather than a silent
// zero value.
type Void struct{}

// HasValidAddress implements the Area interface. Always false.
func (Void) HasValidAddress(_ uint16) bool {
	return false
}

// Read implements the Area interface. Always fails.
func (Void) Read(address uint16) (uint8, error) {
	return 0, curated.Errorf(InvalidAddress, address)
}

// Write implements the Area interface. Always fails.
func (Void) Write(address uint16, _ uint8) error {
	return curated.Errorf(InvalidAddress, address)
}

// Size implements the Storage interface.
func (Void) Size() (int, error) {
	return 0, nil
}

// Data implements the Storage interface. Always fails.
func (Void) Data() ([]uint8, error) {
	return nil, curated.Errorf(InvalidOperation, "void memory has no data")
}

func (Void) String() string {
	return "void"
}

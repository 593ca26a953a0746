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

import (
	"fmt"
	"strings"

	"github.com/nescore/nescore/curated"
)

// Bank is a fixed range of the address space backed by storage that may be
// smaller than the range. In which case the storage is mirrored across the
// range.
type Bank struct {
	origin  uint16
	memtop  uint16
	storage []uint8
}

// NewBank is the preferred method of initialisation for the Bank type. The
// size of the range must be an exact multiple of the storage size.
func NewBank(origin uint16, memtop uint16, size int) (*Bank, error) {
	if memtop < origin {
		return nil, curated.Errorf("memory: bank memtop (%#04x) is below origin (%#04x)", memtop, origin)
	}
	if size <= 0 {
		return nil, curated.Errorf("memory: bank size must be positive (%d)", size)
	}

	span := int(memtop) - int(origin) + 1
	if span%size != 0 {
		return nil, curated.Errorf("memory: bank range (%#04x to %#04x) is not a multiple of size (%#x)", origin, memtop, size)
	}

	return &Bank{
		origin:  origin,
		memtop:  memtop,
		storage: make([]uint8, size),
	}, nil
}

// Origin of the address range.
func (b *Bank) Origin() uint16 {
	return b.origin
}

// Memtop is the top-most address of the address range.
func (b *Bank) Memtop() uint16 {
	return b.memtop
}

// HasValidAddress implements the Area interface.
func (b *Bank) HasValidAddress(address uint16) bool {
	return address >= b.origin && address <= b.memtop
}

// Read implements the Area interface.
func (b *Bank) Read(address uint16) (uint8, error) {
	if !b.HasValidAddress(address) {
		return 0, curated.Errorf(InvalidAddress, address)
	}
	return b.storage[int(address)%len(b.storage)], nil
}

// Write implements the Area interface.
func (b *Bank) Write(address uint16, data uint8) error {
	if !b.HasValidAddress(address) {
		return curated.Errorf(InvalidAddress, address)
	}
	b.storage[int(address)%len(b.storage)] = data
	return nil
}

// Size implements the Storage interface.
func (b *Bank) Size() (int, error) {
	return len(b.storage), nil
}

// Data implements the Storage interface. The returned slice is the bank's
// storage and not a copy.
func (b *Bank) Data() ([]uint8, error) {
	return b.storage, nil
}

func (b *Bank) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%04x -> %04x (%#x bytes)\n", b.origin, b.memtop, len(b.storage)))
	s.WriteString("      -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("    ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	for y := 0; y*16 < len(b.storage); y++ {
		s.WriteString(fmt.Sprintf("%03X- | ", y))
		for x := 0; x < 16 && y*16+x < len(b.storage); x++ {
			s.WriteString(fmt.Sprintf(" %02x", b.storage[y*16+x]))
		}
		s.WriteString("\n")
	}
	return strings.Trim(s.String(), "\n")
}

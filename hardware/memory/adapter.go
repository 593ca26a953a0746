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

// Space identifies which address space a mapper access is made from.
type Space int

// List of valid Space values.
const (
	CPUSpace Space = iota
	PPUSpace
)

func (s Space) String() string {
	switch s {
	case CPUSpace:
		return "CPU"
	case PPUSpace:
		return "PPU"
	}
	return "undefined"
}

// Mapper is the capability a cartridge provides to the emulation. The mapper
// decides which addresses it responds to in each space.
//
// Callback() is called by the PPU once per rendered scanline. Mappers that
// count scanlines (for raising IRQs for example) should do so here.
type Mapper interface {
	HasValidAddress(space Space, address uint16) bool
	Read(space Space, address uint16) (uint8, error)
	Write(space Space, address uint16, data uint8) error
	Callback()
}

// MapperAdapter presents one space of a Mapper as an Area.
type MapperAdapter struct {
	mapper Mapper
	space  Space
}

// NewMapperAdapter is the preferred method of initialisation for the
// MapperAdapter type.
func NewMapperAdapter(mapper Mapper, space Space) *MapperAdapter {
	return &MapperAdapter{
		mapper: mapper,
		space:  space,
	}
}

// Space returns the address space the adapter forwards to.
func (ad *MapperAdapter) Space() Space {
	return ad.space
}

// HasValidAddress implements the Area interface.
func (ad *MapperAdapter) HasValidAddress(address uint16) bool {
	return ad.mapper.HasValidAddress(ad.space, address)
}

// Read implements the Area interface.
func (ad *MapperAdapter) Read(address uint16) (uint8, error) {
	if !ad.mapper.HasValidAddress(ad.space, address) {
		return 0, curated.Errorf(InvalidAddress, address)
	}
	return ad.mapper.Read(ad.space, address)
}

// Write implements the Area interface.
func (ad *MapperAdapter) Write(address uint16, data uint8) error {
	if !ad.mapper.HasValidAddress(ad.space, address) {
		return curated.Errorf(InvalidAddress, address)
	}
	return ad.mapper.Write(ad.space, address, data)
}

// Size implements the Storage interface. Mapper storage is not visible.
func (ad *MapperAdapter) Size() (int, error) {
	return 0, curated.Errorf(NotImplemented, "size of mapper adapter")
}

// Data implements the Storage interface. Mapper storage is not visible.
func (ad *MapperAdapter) Data() ([]uint8, error) {
	return nil, curated.Errorf(NotImplemented, "data of mapper adapter")
}

func (ad *MapperAdapter) String() string {
	return ad.space.String() + " mapper"
}

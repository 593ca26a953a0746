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

	"github.com/nescore/nescore/curated"
)

// PortTarget is implemented by chips that expose a window of registers to
// the CPU. The address is passed unchanged. The target is responsible for
// resolving mirrors.
type PortTarget interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// Ports forwards accesses in an address range to a PortTarget.
type Ports struct {
	origin uint16
	memtop uint16
	target PortTarget
}

// NewPorts is the preferred method of initialisation for the Ports type.
func NewPorts(origin uint16, memtop uint16, target PortTarget) *Ports {
	return &Ports{
		origin: origin,
		memtop: memtop,
		target: target,
	}
}

// HasValidAddress implements the Area interface.
func (p *Ports) HasValidAddress(address uint16) bool {
	return address >= p.origin && address <= p.memtop
}

// Read implements the Area interface.
func (p *Ports) Read(address uint16) (uint8, error) {
	if !p.HasValidAddress(address) {
		return 0, curated.Errorf(InvalidAddress, address)
	}
	return p.target.Read(address)
}

// Write implements the Area interface.
func (p *Ports) Write(address uint16, data uint8) error {
	if !p.HasValidAddress(address) {
		return curated.Errorf(InvalidAddress, address)
	}
	return p.target.Write(address, data)
}

// Size implements the Storage interface. Ports have no storage of their own.
func (p *Ports) Size() (int, error) {
	return 0, curated.Errorf(NotImplemented, "size of ports")
}

// Data implements the Storage interface. Ports have no storage of their own.
func (p *Ports) Data() ([]uint8, error) {
	return nil, curated.Errorf(NotImplemented, "data of ports")
}

func (p *Ports) String() string {
	return fmt.Sprintf("%04x -> %04x ports", p.origin, p.memtop)
}

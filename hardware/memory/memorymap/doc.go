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

// Package memorymap describes the CPU and PPU address spaces of the NES. The
// constants in this package are the origin and memtop of each area along with
// the fixed addresses the CPU uses for the stack and the interrupt vectors.
//
// Mirroring is resolved by the memory banks themselves so MapAddress() is
// only needed when an address must be reported in its primary form, for
// example when logging.
package memorymap

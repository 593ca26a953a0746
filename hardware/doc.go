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

// Package hardware is the base package for the NES emulation. It and its
// sub-packages contain everything required for a headless emulation of the
// CPU and PPU.
//
// The NES type is the root of the emulation and contains references to the
// two chips and the two address spaces. From here, the emulation can either be
// started to run continuously (with optional callback to check for
// continuation); or it can be stepped cycle by cycle.
//
// Cartridges are not part of this package. A cartridge is attached by passing
// an implementation of memory.Mapper to NewNES().
package hardware

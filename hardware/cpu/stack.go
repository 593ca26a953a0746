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

package cpu

import (
	"github.com/nescore/nescore/hardware/cpu/registers"
	"github.com/nescore/nescore/hardware/memory/memorymap"
)

// Stack implements push and pull for the hardware stack. The stack is fixed
// to page one and grows downwards. The stack pointer wraps without any
// overflow check.
type Stack struct {
	mem Memory
	S   *registers.Register
}

// Push writes the value to the top of the stack and decrements the stack
// pointer.
func (st Stack) Push(v uint8) error {
	err := st.mem.Write(memorymap.StackPage|st.S.Address(), v)
	st.S.Decrement()
	return err
}

// Pull increments the stack pointer and reads the value at the top of the
// stack.
func (st Stack) Pull() (uint8, error) {
	st.S.Increment()
	return st.mem.Read(memorymap.StackPage | st.S.Address())
}

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
	"github.com/nescore/nescore/logger"
)

// RST discards the current instruction and any pending interrupts and stages
// the reset sequence. The sequence takes seven cycles. The stack pointer is
// decremented three times without writing to the stack and the PC is loaded
// from the reset vector.
func (mc *CPU) RST() {
	logger.Log(logger.Allow, "cpu", "reset")

	mc.pipeline.Clear()
	mc.nmi = false
	mc.irq = false

	mc.pipeline.Push(
		Step{Kind: StepDummyRead},
		Step{Kind: StepDummyRead},
		Step{Kind: StepDecrementS},
		Step{Kind: StepDecrementS},
		Step{Kind: StepDecrementS},
		Step{Kind: StepVectorLo, Vector: memorymap.Reset},
		Step{Kind: StepVectorHi, Vector: memorymap.Reset},
	)
}

// NMI requests a non-maskable interrupt. The interrupt is serviced at the
// next instruction boundary.
func (mc *CPU) NMI() {
	mc.nmi = true
}

// IRQ requests an interrupt. The interrupt is serviced at the next
// instruction boundary where the interrupt disable flag is clear. The request
// stays pending until then.
func (mc *CPU) IRQ() {
	mc.irq = true
}

// PendingInterrupt returns true if either interrupt has been requested and
// not yet serviced.
func (mc *CPU) PendingInterrupt() (nmi bool, irq bool) {
	return mc.nmi, mc.irq
}

// serviceInterrupt is called at an instruction boundary in place of the
// opcode fetch. If an interrupt is serviced then the first cycle of the
// interrupt sequence is performed, the remaining six are staged and the
// function returns true.
func (mc *CPU) serviceInterrupt() (bool, error) {
	var vector uint16

	switch {
	case mc.nmi:
		mc.nmi = false
		vector = memorymap.NMI
		logger.Log(logger.Allow, "cpu", "servicing NMI")
	case mc.irq && !mc.P.Get(registers.InterruptDisable):
		mc.irq = false
		vector = memorymap.IRQ
		logger.Log(logger.Allow, "cpu", "servicing IRQ")
	default:
		return false, nil
	}

	// the opcode fetch happens but the value is discarded
	_, err := mc.mem.Read(mc.PC.Address())
	if err != nil {
		return true, err
	}

	mc.pipeline.Push(
		Step{Kind: StepDummyRead},
		Step{Kind: StepPushPCH},
		Step{Kind: StepPushPCL},
		Step{Kind: StepPushStatus},
		Step{Kind: StepVectorLo, Vector: vector},
		Step{Kind: StepVectorHi, Vector: vector},
	)

	return true, nil
}

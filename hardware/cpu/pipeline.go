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

// Pipeline is a FIFO of staged steps. Each step is consumed by one tick of
// the CPU.
type Pipeline struct {
	steps []Step
}

// Push steps onto the end of the pipeline.
func (p *Pipeline) Push(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Pop removes the step at the front of the pipeline. The boolean return value
// is false if the pipeline is empty.
func (p *Pipeline) Pop() (Step, bool) {
	if len(p.steps) == 0 {
		return Step{}, false
	}
	s := p.steps[0]
	p.steps = p.steps[1:]
	return s, true
}

// Len returns the number of steps remaining.
func (p *Pipeline) Len() int {
	return len(p.steps)
}

// Empty is true if there are no steps remaining.
func (p *Pipeline) Empty() bool {
	return len(p.steps) == 0
}

// Clear removes all steps from the pipeline.
func (p *Pipeline) Clear() {
	p.steps = p.steps[:0]
}

// Steps returns a copy of the remaining steps, in the order they will be
// consumed.
func (p *Pipeline) Steps() []Step {
	s := make([]Step, len(p.steps))
	copy(s, p.steps)
	return s
}

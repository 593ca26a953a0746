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

package thomharte

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/nescore/nescore/curated"
	"github.com/nescore/nescore/hardware/cpu"
	"github.com/nescore/nescore/test"
)

// the posible memory events recorded by the memory implementation. also used
// to seal the memEvent types in the BusCycle test data
type memEvent string

const (
	read  = memEvent("read")
	write = memEvent("write")
)

type busWrite struct {
	address uint16
	data    uint8
}

type testMem struct {
	internal []uint8
	writes   []busWrite
}

func newTestMem() *testMem {
	return &testMem{
		// the CPU has a 16bit address bus so the maximum amount of memory is 64k
		internal: make([]uint8, 0x10000),
	}
}

func (mem *testMem) Read(address uint16) (uint8, error) {
	return mem.internal[address], nil
}

func (mem *testMem) Write(address uint16, data uint8) error {
	mem.internal[address] = data
	mem.writes = append(mem.writes, busWrite{address: address, data: data})
	return nil
}

type RAMEntry struct {
	Address uint16 `json:"0"`
	Value   uint8  `json:"1"`
}

func (r *RAMEntry) UnmarshalJSON(data []byte) error {
	var raw [2]uint64
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}
	r.Address = uint16(raw[0])
	r.Value = uint8(raw[1])
	return nil
}

type BusCycle struct {
	Address uint16
	Data    uint8
	Event   memEvent
}

func (b *BusCycle) UnmarshalJSON(data []byte) error {
	var raw [3]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	addr, _ := raw[0].(float64)
	dat, _ := raw[1].(float64)
	ev, _ := raw[2].(string)

	b.Address = uint16(addr)
	b.Data = uint8(dat)
	b.Event = memEvent(ev)

	switch b.Event {
	case read, write:
	default:
		return fmt.Errorf("unexpected memory event: %q", b.Event)
	}

	return nil
}

type State struct {
	PC  uint64     `json:"pc"`
	S   uint64     `json:"s"`
	A   uint64     `json:"a"`
	X   uint64     `json:"x"`
	Y   uint64     `json:"y"`
	P   uint64     `json:"p"`
	RAM []RAMEntry `json:"ram"`
}

type Tests struct {
	Name    string     `json:"name"`
	Initial State      `json:"initial"`
	Final   State      `json:"final"`
	Cycles  []BusCycle `json:"cycles"`
}

func (d *Tests) UnmarshalJSON(data []byte) error {
	// we have a custom unmarshaller for Tests only so that we can insert the Name field to any
	// error. to make the unmarshaller as clean as possible we want to avoid recursion; and we can
	// do this by using an alias type
	type norecurse Tests

	var tmp norecurse
	if err := json.Unmarshal(data, &tmp); err != nil {
		return fmt.Errorf("error unmarshalling test %q: %w", tmp.Name, err)
	}
	*d = Tests(tmp)
	return nil
}

var testsPath = filepath.Join("nes6502", "v1")

// the break and unused bits of the status register are not compared
const statusMask = 0xcf

func TestThomHarte(t *testing.T) {
	d, err := os.ReadDir(testsPath)
	if err != nil {
		t.Skipf("no test data: %v", err)
	}

	for _, e := range d {
		switch e.Name() {
		case ".gitkeep":
			continue
		case "00.json":
			// the status is pushed by BRK after the interrupt disable flag
			// has been set
			continue
		}
		if e.Type().IsRegular() {
			testFile := filepath.Join(testsPath, e.Name())
			t.Run(e.Name(), func(t *testing.T) {
				testThomHarte(t, testFile)
			})
		}
	}
}

func testThomHarte(t *testing.T, testFile string) {
	f, err := os.Open(testFile)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var tests []Tests
	if err := json.NewDecoder(f).Decode(&tests); err != nil {
		t.Fatalf("%s: %v", testFile, err)
	}

	mem := newTestMem()
	mc := cpu.NewCPU(mem)

	for i, s := range tests {
		mc.Reset()
		mc.PC.Load(uint16(s.Initial.PC))
		mc.A.Load(uint8(s.Initial.A))
		mc.X.Load(uint8(s.Initial.X))
		mc.Y.Load(uint8(s.Initial.Y))
		mc.S.Load(uint8(s.Initial.S))
		mc.P.Load(uint8(s.Initial.P))
		for _, r := range s.Initial.RAM {
			mem.internal[r.Address] = r.Value
		}
		mem.writes = mem.writes[:0]

		// one tick for the opcode fetch and then one tick for every staged step
		var cycles int
		err := mc.Tick()
		for err == nil {
			cycles++
			if !mc.Executing() {
				break
			}
			err = mc.Tick()
		}
		if err != nil {
			if curated.Is(err, cpu.InvalidOpcode) {
				t.Skipf("%s: %v", testFile, err)
			}
			t.Fatal(err)
		}

		var fail bool

		fail = !test.ExpectEquality(t, cycles, len(s.Cycles), testFile, i, "cycles") || fail
		fail = !test.ExpectEquality(t, mc.PC.Address(), uint16(s.Final.PC), testFile, i, "PC") || fail
		fail = !test.ExpectEquality(t, mc.A.Value(), uint8(s.Final.A), testFile, i, "A") || fail
		fail = !test.ExpectEquality(t, mc.X.Value(), uint8(s.Final.X), testFile, i, "X") || fail
		fail = !test.ExpectEquality(t, mc.Y.Value(), uint8(s.Final.Y), testFile, i, "Y") || fail
		fail = !test.ExpectEquality(t, mc.S.Value(), uint8(s.Final.S), testFile, i, "S") || fail
		fail = !test.ExpectEquality(t, mc.P.Value()&statusMask, uint8(s.Final.P)&statusMask, testFile, i, "P") || fail
		for _, r := range s.Final.RAM {
			fail = !test.ExpectEquality(t, mem.internal[r.Address], r.Value, testFile, i, "RAM %04x", r.Address) || fail
		}

		// writes must happen in the same order as the real hardware
		var w int
		for _, c := range s.Cycles {
			if c.Event != write {
				continue
			}
			if w >= len(mem.writes) {
				fail = !test.ExpectEquality(t, len(mem.writes), w+1, testFile, i, "number of writes") || fail
				break
			}
			fail = !test.ExpectEquality(t, mem.writes[w].address, c.Address, testFile, i, "write address") || fail
			fail = !test.ExpectEquality(t, mem.writes[w].data, c.Data, testFile, i, "write data") || fail
			w++
		}

		if fail {
			t.Logf("last instruction: %s", mc.Defn.String())
			t.Fatalf("%s: failed on line %d (%s)", testFile, i, s.Name)
		}
	}
}

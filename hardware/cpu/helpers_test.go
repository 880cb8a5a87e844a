// This file is part of Gopher8080.
//
// Gopher8080 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8080 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8080.  If not, see <https://www.gnu.org/licenses/>.

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/hardware/cpu"
	"github.com/jetsetilly/gopher8080/hardware/memory"
)

// the top page of mockMem is inaccessible so that address faults can be
// tested
const mockInaccessible = 0xff00

type mockMem struct {
	internal []uint8
}

func newMockMem() *mockMem {
	return &mockMem{
		internal: make([]uint8, 0x10000),
	}
}

func (mem *mockMem) putInstructions(origin uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[origin+uint16(i)] = b
	}
	return origin + uint16(len(bytes))
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	if mem.internal[address] != value {
		t.Errorf("memory assertion failed (%#02x - wanted %#02x at address %#04x)", mem.internal[address], value, address)
	}
}

// Clear sets all bytes in memory to zero.
func (mem *mockMem) Clear() {
	for i := range mem.internal {
		mem.internal[i] = 0
	}
}

func (mem *mockMem) Read(address uint16) (uint8, error) {
	if address >= mockInaccessible {
		return 0, curated.Errorf(memory.AddressError, address)
	}
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	if address >= mockInaccessible {
		return curated.Errorf(memory.AddressError, address)
	}
	mem.internal[address] = data
	return nil
}

type portAccess struct {
	port  uint8
	value uint8
	out   bool
}

// mockPorts records every port access. IN returns the value in the input
// array for the port.
type mockPorts struct {
	input    [256]uint8
	accesses []portAccess
}

func (p *mockPorts) In(port uint8) uint8 {
	p.accesses = append(p.accesses, portAccess{port: port, value: p.input[port]})
	return p.input[port]
}

func (p *mockPorts) Out(port uint8, value uint8) {
	p.accesses = append(p.accesses, portAccess{port: port, value: value, out: true})
}

const (
	testOrigin   = 0x0000
	testStackTop = 0x2400
)

func newTestCPU() (*cpu.CPU, *mockMem, *mockPorts) {
	mem := newMockMem()
	ports := &mockPorts{}
	mc := cpu.NewCPU(mem, ports)
	mc.NoLogging = true
	mc.Reset(testOrigin, testStackTop)
	return mc, mem, ports
}

// step executes one instruction and fails the test if there is an error or
// if the result is not valid
func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	err := mc.ExecuteInstruction()
	if err != nil {
		t.Fatal(err)
	}
	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatal(err)
	}
}

// run steps until the CPU halts. fails the test if the CPU does not halt
// within a reasonable number of instructions
func run(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	for i := 0; i < 10000; i++ {
		if mc.Halted {
			return
		}
		step(t, mc)
	}
	t.Fatal("cpu did not halt")
}

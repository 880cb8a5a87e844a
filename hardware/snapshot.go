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

package hardware

import (
	"github.com/jetsetilly/gopher8080/hardware/cpu"
	"github.com/jetsetilly/gopher8080/hardware/memory"
)

// Snapshot stores the state of the machine's sub-systems. It is produced by
// the Snapshot() function and can be restored with the Plumb() function.
//
// Devices attached to the ports are not part of the snapshot.
type Snapshot struct {
	CPU *cpu.CPU
	Mem *memory.RAM
}

// Snapshot the state of the machine.
func (m *Machine) Snapshot() *Snapshot {
	return &Snapshot{
		CPU: m.CPU.Snapshot(),
		Mem: m.Mem.Snapshot(),
	}
}

// Plumb a previously snapshotted state into the machine. The trace hook of
// the current CPU is preserved.
func (m *Machine) Plumb(s *Snapshot) {
	if s == nil {
		panic("machine: cannot plumb in a nil snapshot")
	}

	// take another copy of the state before plumbing. the snapshot must not
	// be changed by the running machine
	hook := m.CPU.TraceHook
	m.CPU = s.CPU.Snapshot()
	m.Mem = s.Mem.Snapshot()
	m.CPU.Plumb(m.Mem, m.Ports)
	m.CPU.TraceHook = hook

	m.last = StepResult{State: Continue, PC: m.CPU.PC.Address()}
	if m.CPU.Halted {
		m.last.State = Halted
	}
}

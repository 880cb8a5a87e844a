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
	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/hardware/cpu"
	"github.com/jetsetilly/gopher8080/hardware/memory"
	"github.com/jetsetilly/gopher8080/hardware/ports"
	"github.com/jetsetilly/gopher8080/hardware/preferences"
	"github.com/jetsetilly/gopher8080/logger"
	"github.com/jetsetilly/gopher8080/prefs"
)

// Machine is the main container for the emulated components of the 8080
// system. It owns the memory, the CPU and the port bus for the lifetime of
// the emulation.
type Machine struct {
	Prefs *preferences.Preferences

	CPU   *cpu.CPU
	Mem   *memory.RAM
	Ports *ports.Mux

	// the result of the most recent call to Step(). once a fault has occurred
	// it is returned by every subsequent call to Step() until the machine is
	// reset
	last StepResult
}

// NewMachine creates a new Machine and everything associated with the
// hardware. If pref is nil then the preferences are loaded from the default
// location on disk.
func NewMachine(pref *preferences.Preferences) (*Machine, error) {
	var err error

	if pref == nil {
		pref, err = preferences.NewPreferences()
		if err != nil {
			return nil, curated.Errorf("machine: %v", err)
		}
	}

	err = pref.Validate()
	if err != nil {
		return nil, curated.Errorf("machine: %v", err)
	}

	m := &Machine{
		Prefs: pref,
		Ports: ports.NewMux(),
	}

	m.Mem, err = memory.NewRAM(m.Prefs.Size())
	if err != nil {
		return nil, err
	}

	m.CPU = cpu.NewCPU(m.Mem, m.Ports)

	// changes to the undocumented preference apply to the running machine
	// without waiting for a reset
	m.Prefs.Undocumented.SetHookPost(func(v prefs.Value) error {
		m.CPU.NoUndocumented = !v.(bool)
		return nil
	})

	m.Reset()

	return m, nil
}

func (m *Machine) String() string {
	return m.CPU.String()
}

// AllowLogging implements the logger.Permission interface. Logging by the
// machine follows the logging permission of the CPU.
func (m *Machine) AllowLogging() bool {
	return m.CPU.AllowLogging()
}

// AttachImage clears memory and loads the program image at the origin
// address. The machine is then reset.
//
// The preferences are validated again because they may have changed since
// the machine was created. Note that the memory size is fixed at creation.
func (m *Machine) AttachImage(image []uint8) error {
	err := m.Prefs.Validate()
	if err != nil {
		return curated.Errorf("machine: %v", err)
	}
	if size := m.Prefs.Size(); size != m.Mem.Size() {
		return curated.Errorf("machine: memory size changed from %#04x to %#04x", m.Mem.Size(), size)
	}

	m.Mem.Clear()

	origin := m.Prefs.OriginAddress()
	err = m.Mem.LoadImage(image, origin)
	if err != nil {
		return err
	}

	logger.Logf(m, "machine", "attached image of %d bytes at %#04x", len(image), origin)

	m.Reset()

	return nil
}

// Reset the CPU to the configured origin and stack top. Memory is not
// altered.
func (m *Machine) Reset() {
	m.CPU.NoUndocumented = !m.Prefs.Undocumented.Get().(bool)
	m.CPU.Reset(m.Prefs.OriginAddress(), m.Prefs.StackTopAddress())
	m.last = StepResult{State: Continue, PC: m.CPU.PC.Address()}
	logger.Logf(m, "machine", "reset (PC=%s SP=%s)", m.CPU.PC, m.CPU.SP)
}

// Interrupt requests an interrupt with the RST vector. Returns true if the
// interrupt was accepted by the CPU.
//
// A faulted machine ignores interrupts.
func (m *Machine) Interrupt(vector uint8) (bool, error) {
	if m.last.State == Fault {
		return false, nil
	}

	accepted, err := m.CPU.Interrupt(vector)
	if err != nil {
		// an accepted interrupt that fails is a stack fault
		if accepted {
			m.last = m.fault(err, m.CPU.PC.Address())
		}
		return accepted, err
	}

	if accepted {
		logger.Logf(m, "machine", "interrupt accepted (RST %d)", vector)
		m.last = StepResult{State: Continue, PC: m.CPU.PC.Address()}
	} else {
		logger.Logf(m, "machine", "interrupt ignored (RST %d)", vector)
	}

	return accepted, nil
}

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
	"fmt"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/hardware/cpu"
	"github.com/jetsetilly/gopher8080/hardware/memory"
	"github.com/jetsetilly/gopher8080/logger"
)

// State of the machine after a call to Step().
type State int

// List of valid State values.
const (
	Continue State = iota
	Halted
	Fault
)

func (s State) String() string {
	switch s {
	case Continue:
		return "continue"
	case Halted:
		return "halted"
	case Fault:
		return "fault"
	}
	return ""
}

// FaultKind classifies the error that caused a Fault state.
type FaultKind int

// List of valid FaultKind values.
const (
	NoFault FaultKind = iota
	OutOfBoundsAccess
	UnimplementedOpcode
	StackOverflow
	StackUnderflow
	UnclassifiedFault
)

func (k FaultKind) String() string {
	switch k {
	case NoFault:
		return "no fault"
	case OutOfBoundsAccess:
		return "out of bounds access"
	case UnimplementedOpcode:
		return "unimplemented opcode"
	case StackOverflow:
		return "stack overflow"
	case StackUnderflow:
		return "stack underflow"
	case UnclassifiedFault:
		return "unclassified fault"
	}
	return ""
}

// StepResult is returned by Step() and by the run functions.
type StepResult struct {
	State State

	// the kind of fault if State is Fault
	Fault FaultKind

	// the address of the instruction that has just been executed or which
	// caused the fault
	PC uint16

	// the error that caused the fault
	Err error
}

func (r StepResult) String() string {
	switch r.State {
	case Fault:
		return fmt.Sprintf("%s at %#04x: %v", r.Fault, r.PC, r.Err)
	case Halted:
		return fmt.Sprintf("halted at %#04x", r.PC)
	}
	return r.State.String()
}

// classify the error. the stack patterns are checked first because a stack
// fault can be caused by an address error.
func classify(err error) FaultKind {
	switch {
	case curated.Has(err, cpu.StackOverflow):
		return StackOverflow
	case curated.Has(err, cpu.StackUnderflow):
		return StackUnderflow
	case curated.Has(err, cpu.UnimplementedOpcode):
		return UnimplementedOpcode
	case curated.Has(err, memory.AddressError), curated.Has(err, memory.WrapError):
		return OutOfBoundsAccess
	}
	return UnclassifiedFault
}

func (m *Machine) fault(err error, pc uint16) StepResult {
	r := StepResult{
		State: Fault,
		Fault: classify(err),
		PC:    pc,
		Err:   err,
	}
	logger.Logf(m, "machine", "%s", r)
	return r
}

// Step the emulation one CPU instruction.
//
// A halted machine does not execute anything and returns Halted. A faulted
// machine returns the same Fault result until it is reset.
func (m *Machine) Step() StepResult {
	switch m.last.State {
	case Fault:
		return m.last
	case Halted:
		if m.CPU.Halted {
			return m.last
		}
	}

	err := m.CPU.ExecuteInstruction()
	if err != nil {
		m.last = m.fault(err, m.CPU.LastResult.Address)
		return m.last
	}

	if m.CPU.Halted {
		m.last = StepResult{State: Halted, PC: m.CPU.LastResult.Address}
		logger.Logf(m, "machine", "%s", m.last)
		return m.last
	}

	m.last = StepResult{State: Continue, PC: m.CPU.LastResult.Address}
	return m.last
}

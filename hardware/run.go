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

	"github.com/jetsetilly/gopher8080/govern"
)

// It can be expensive to do a full continue check after every instruction.
//
// PerformanceBrake is a standard value that can be used to filter out
// expensive code paths within a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// Run the emulation until the machine halts or faults, or until the
// continueCheck function returns govern.Ending. The continueCheck function is
// called between instructions and never during one. A nil continueCheck is
// the same as a function that always returns govern.Running.
//
// A fault is not returned as an error. Errors are returned only if the
// continueCheck function returns an error or an unsupported state.
func (m *Machine) Run(continueCheck func() (govern.State, error)) (StepResult, error) {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error

	r := m.last
	state := govern.Running

	for state != govern.Ending {
		switch state {
		case govern.Running:
			r = m.Step()
			if r.State != Continue {
				return r, nil
			}
		case govern.Paused:
		default:
			return r, fmt.Errorf("machine: unsupported emulation state (%s) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return r, err
		}
	}

	return r, nil
}

// RunForInstructionCount is like Run() but will also stop after the
// specified number of instructions have been executed. Useful for tests and
// for bounding the run time of an unknown program.
func (m *Machine) RunForInstructionCount(numInstructions int, continueCheck func(count int) (govern.State, error)) (StepResult, error) {
	if continueCheck == nil {
		continueCheck = func(_ int) (govern.State, error) { return govern.Running, nil }
	}

	var err error

	r := m.last
	state := govern.Running

	count := 0
	for count < numInstructions && state != govern.Ending {
		switch state {
		case govern.Running:
			r = m.Step()
			if r.State != Continue {
				return r, nil
			}
			count++
		case govern.Paused:
		default:
			return r, fmt.Errorf("machine: unsupported emulation state (%s) in RunForInstructionCount() function", state)
		}

		state, err = continueCheck(count)
		if err != nil {
			return r, err
		}
	}

	return r, nil
}

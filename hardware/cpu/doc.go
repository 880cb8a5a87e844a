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

// Package cpu emulates the Intel 8080 microprocessor. Like all 8-bit
// processors of the era, the 8080 executes instructions according to the
// single byte value read from an address pointed to by the program counter.
// This single byte is the opcode and is looked up in the instruction table.
// The instruction definition for that opcode is then used to move execution
// of the program forward.
//
// The CPU type requires an implementation of the cpubus.Memory interface and
// optionally an implementation of the ports.Bus interface.
//
//	mc := cpu.NewCPU(mem, nil)
//	mc.Reset(0x0000, 0x2400)
//
//	for !mc.Halted {
//		if err := mc.ExecuteInstruction(); err != nil {
//			return err
//		}
//	}
//
// The M operand (register encoding 6) is never a register. Any instruction
// that uses M reads or writes memory at the address in the HL register pair.
//
// The LastResult field can be probed for information about the last
// instruction executed. The TraceHook field can be set to a function that
// will be called with each instruction as it is decoded. See the execution
// package for more information.
package cpu

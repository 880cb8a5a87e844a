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

// Package registers implements the registers of the 8080 CPU and the
// arithmetic that operates on them.
//
// The 8 bit registers and the two 16 bit registers (the program counter and
// the stack pointer) are simple value holders. Arithmetic is implemented as
// pure functions that take operands and return a result along with the
// condition codes that the operation produces. It is up to the CPU to decide
// which of the condition codes to keep. For example, an ADD instruction might
// be implemented like this:
//
//	r, sr := registers.Add(a.Value(), b.Value(), false)
//	a.Load(r)
//	status = sr
//
// Whereas DAD, which only affects the carry flag, looks like this:
//
//	r, carry := registers.Add16(hl, bc)
//	status.Carry = carry
//
// The StatusRegister type can be converted to and from the flags byte, which
// is the low byte of the PSW when it is pushed to the stack.
package registers

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

package instructions

// AddressingMode describes the method by which an instruction receives the
// data on which it operates.
type AddressingMode int

// List of supported addressing modes.
const (
	// no operand or the operand is implied by the opcode (eg. CMA, RST)
	Implied AddressingMode = iota

	// register or register pair operand encoded in the opcode
	RegisterDirect

	// memory addressed by a register pair. for most instructions this is
	// the M pseudo-register, which is memory addressed by HL
	RegisterIndirect

	// 8 bit data in the byte following the opcode
	Immediate

	// 16 bit data in the two bytes following the opcode
	ImmediateExtended

	// 16 bit address in the two bytes following the opcode
	Direct
)

func (m AddressingMode) String() string {
	switch m {
	case Implied:
		return "Implied"
	case RegisterDirect:
		return "RegisterDirect"
	case RegisterIndirect:
		return "RegisterIndirect"
	case Immediate:
		return "Immediate"
	case ImmediateExtended:
		return "ImmediateExtended"
	case Direct:
		return "Direct"
	}
	return "unknown addressing mode"
}

// Bytes returns the length of an instruction using the addressing mode,
// including the opcode.
func (m AddressingMode) Bytes() int {
	switch m {
	case Immediate:
		return 2
	case ImmediateExtended, Direct:
		return 3
	}
	return 1
}

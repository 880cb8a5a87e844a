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

import (
	"fmt"
	"strings"
)

// Definition defines each instruction in the instruction set; one per opcode.
//
// Which of the operand fields are meaningful depends on the Operator. For
// example, Dst is meaningful for MOV, MVI, INR and DCR; Src for MOV and the
// register forms of the ALU group; Pair for LXI, INX, DCX, DAD, LDAX, STAX,
// PUSH and POP; Condition for Jcc, Ccc and Rcc; Vector for RST.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	Mnemonic       string
	Bytes          int
	AddressingMode AddressingMode
	Effect         Category

	Dst       Register
	Src       Register
	Pair      Pair
	Condition Condition
	Vector    uint8

	// undocumented opcodes duplicate the behaviour of a documented opcode
	Undocumented bool
}

// String returns a single instruction definition as a string.
func (defn Definition) String() string {
	if defn.Mnemonic == "" {
		return "undecoded instruction"
	}
	return fmt.Sprintf("%02x %s +%dbytes [mode=%s effect=%s undocumented=%t]",
		defn.OpCode, defn.Mnemonic, defn.Bytes, defn.AddressingMode, defn.Effect, defn.Undocumented)
}

// IsConditional returns true if the instruction is a conditional jump, call
// or return.
func (defn Definition) IsConditional() bool {
	return defn.Operator == Jcc || defn.Operator == Ccc || defn.Operator == Rcc
}

// UsesMemoryRegister returns true if either operand of the instruction is the
// M pseudo-register.
func (defn Definition) UsesMemoryRegister() bool {
	switch defn.Operator {
	case Mov:
		return defn.Dst == M || defn.Src == M
	case Mvi, Inr, Dcr:
		return defn.Dst == M
	case Add, Adc, Sub, Sbb, Ana, Xra, Ora, Cmp:
		return defn.Src == M
	}
	return false
}

// Operands returns the operands of the instruction in assembler syntax. The
// data argument is the 8 or 16 bit value that follows the opcode in memory
// and is ignored if the instruction has no such value.
func (defn Definition) Operands(data uint16) string {
	s := strings.Builder{}

	switch defn.Operator {
	case Mov:
		s.WriteString(fmt.Sprintf("%s,%s", defn.Dst, defn.Src))
	case Mvi:
		s.WriteString(fmt.Sprintf("%s,", defn.Dst))
	case Inr, Dcr:
		s.WriteString(defn.Dst.String())
	case Add, Adc, Sub, Sbb, Ana, Xra, Ora, Cmp:
		s.WriteString(defn.Src.String())
	case Lxi:
		s.WriteString(fmt.Sprintf("%s,", defn.Pair))
	case Inx, Dcx, Dad, Ldax, Stax, Push, Pop:
		s.WriteString(defn.Pair.String())
	case Rst:
		s.WriteString(fmt.Sprintf("%d", defn.Vector))
	}

	switch defn.AddressingMode.Bytes() {
	case 2:
		s.WriteString(fmt.Sprintf("$%02x", uint8(data)))
	case 3:
		s.WriteString(fmt.Sprintf("$%04x", data))
	}

	return s.String()
}

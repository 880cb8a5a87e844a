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

import "github.com/jetsetilly/gopher8080/hardware/cpu/registers"

// Register identifies one of the operands encoded in the three bit register
// fields of an opcode. The value is the encoding used by the 8080.
//
// M is not a register. It is the byte in memory addressed by the HL pair.
type Register uint8

// List of register operands in encoding order.
const (
	B Register = iota
	C
	D
	E
	H
	L
	M
	A
)

func (r Register) String() string {
	if r > A {
		return "?"
	}
	return string("BCDEHLMA"[r])
}

// Pair identifies a register pair. The first four values are the encoding
// used by the two bit register pair field in most instructions.
//
// PUSH and POP use encoding 3 for the PSW (the accumulator and the flags
// byte) rather than SP. The decoder translates this so that a PUSH or POP
// definition always refers to PSW for that encoding.
type Pair uint8

// List of register pairs.
const (
	BC Pair = iota
	DE
	HL
	SP
	PSW
)

func (p Pair) String() string {
	switch p {
	case BC:
		return "B"
	case DE:
		return "D"
	case HL:
		return "H"
	case SP:
		return "SP"
	case PSW:
		return "PSW"
	}
	return "?"
}

// Condition is the three bit condition field of the conditional jump, call
// and return instructions.
type Condition uint8

// List of conditions in encoding order.
const (
	CondNZ Condition = iota
	CondZ
	CondNC
	CondC
	CondPO
	CondPE
	CondP
	CondM
)

func (c Condition) String() string {
	switch c {
	case CondNZ:
		return "NZ"
	case CondZ:
		return "Z"
	case CondNC:
		return "NC"
	case CondC:
		return "C"
	case CondPO:
		return "PO"
	case CondPE:
		return "PE"
	case CondP:
		return "P"
	case CondM:
		return "M"
	}
	return "?"
}

// Test returns true if the condition holds for the status register.
func (c Condition) Test(sr registers.StatusRegister) bool {
	switch c {
	case CondNZ:
		return !sr.Zero
	case CondZ:
		return sr.Zero
	case CondNC:
		return !sr.Carry
	case CondC:
		return sr.Carry
	case CondPO:
		return !sr.Parity
	case CondPE:
		return sr.Parity
	case CondP:
		return !sr.Sign
	case CondM:
		return sr.Sign
	}
	return false
}

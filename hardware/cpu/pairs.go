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

package cpu

import (
	"github.com/jetsetilly/gopher8080/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8080/hardware/cpu/registers"
)

// register returns the storage for one of the seven real registers. M is not
// a real register and must be handled by the caller before calling this
// function.
func (mc *CPU) register(r instructions.Register) *registers.Register {
	switch r {
	case instructions.B:
		return &mc.B
	case instructions.C:
		return &mc.C
	case instructions.D:
		return &mc.D
	case instructions.E:
		return &mc.E
	case instructions.H:
		return &mc.H
	case instructions.L:
		return &mc.L
	case instructions.A:
		return &mc.A
	}
	panic("cpu: register() called for a register with no storage")
}

// readRegister returns the value of the register operand. The M operand is a
// read of memory at the address in HL.
func (mc *CPU) readRegister(r instructions.Register) (uint8, error) {
	if r == instructions.M {
		return mc.read8Bit(mc.HL())
	}
	return mc.register(r).Value(), nil
}

// writeRegister sets the value of the register operand. The M operand is a
// write to memory at the address in HL.
func (mc *CPU) writeRegister(r instructions.Register, v uint8) error {
	if r == instructions.M {
		return mc.write8Bit(mc.HL(), v)
	}
	mc.register(r).Load(v)
	return nil
}

func compose(hi registers.Register, lo registers.Register) uint16 {
	return uint16(hi.Value())<<8 | uint16(lo.Value())
}

// BC returns the value of the BC register pair.
func (mc *CPU) BC() uint16 {
	return compose(mc.B, mc.C)
}

// DE returns the value of the DE register pair.
func (mc *CPU) DE() uint16 {
	return compose(mc.D, mc.E)
}

// HL returns the value of the HL register pair.
func (mc *CPU) HL() uint16 {
	return compose(mc.H, mc.L)
}

// PSW returns the program status word. The accumulator is the high byte and
// the flags byte is the low byte.
func (mc *CPU) PSW() uint16 {
	return uint16(mc.A.Value())<<8 | uint16(mc.Status.Value())
}

func (mc *CPU) pair(p instructions.Pair) uint16 {
	switch p {
	case instructions.BC:
		return mc.BC()
	case instructions.DE:
		return mc.DE()
	case instructions.HL:
		return mc.HL()
	case instructions.SP:
		return mc.SP.Address()
	case instructions.PSW:
		return mc.PSW()
	}
	panic("cpu: unknown register pair")
}

func (mc *CPU) setPair(p instructions.Pair, v uint16) {
	hi := uint8(v >> 8)
	lo := uint8(v)

	switch p {
	case instructions.BC:
		mc.B.Load(hi)
		mc.C.Load(lo)
	case instructions.DE:
		mc.D.Load(hi)
		mc.E.Load(lo)
	case instructions.HL:
		mc.H.Load(hi)
		mc.L.Load(lo)
	case instructions.SP:
		mc.SP.Load(v)
	case instructions.PSW:
		mc.A.Load(hi)
		mc.Status.FromValue(lo)
	default:
		panic("cpu: unknown register pair")
	}
}

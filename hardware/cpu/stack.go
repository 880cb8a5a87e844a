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
	"github.com/jetsetilly/gopher8080/curated"
)

// push16 pushes a 16 bit value onto the stack. The high byte is pushed first
// so that the value is in memory low byte first. The SP is only updated if
// both bytes were written successfully.
//
// It is a stack overflow if the SP would wrap around past zero or if the
// memory below the SP is not writable.
func (mc *CPU) push16(v uint16) error {
	sp := mc.SP.Address()
	if sp < 2 {
		return curated.Errorf(StackOverflow, sp)
	}

	if err := mc.write8Bit(sp-1, uint8(v>>8)); err != nil {
		return curated.Errorf(StackOverflow, sp)
	}
	if err := mc.write8Bit(sp-2, uint8(v)); err != nil {
		return curated.Errorf(StackOverflow, sp)
	}

	mc.SP.Load(sp - 2)

	return nil
}

// pop16 pops a 16 bit value from the stack.
//
// It is a stack underflow if the SP would wrap around past 0xffff or if the
// memory at the SP is not readable.
func (mc *CPU) pop16() (uint16, error) {
	sp := mc.SP.Address()
	if sp > 0xfffd {
		return 0, curated.Errorf(StackUnderflow, sp)
	}

	v, err := mc.read16Bit(sp)
	if err != nil {
		return 0, curated.Errorf(StackUnderflow, sp)
	}

	mc.SP.Load(sp + 2)

	return v, nil
}

// peek16 returns the 16 bit value at the top of the stack without changing
// the SP.
func (mc *CPU) peek16() (uint16, error) {
	sp := mc.SP.Address()
	v, err := mc.read16Bit(sp)
	if err != nil {
		return 0, curated.Errorf(StackUnderflow, sp)
	}
	return v, nil
}

// poke16 replaces the 16 bit value at the top of the stack without changing
// the SP.
func (mc *CPU) poke16(v uint16) error {
	sp := mc.SP.Address()
	if err := mc.write16Bit(sp, v); err != nil {
		return curated.Errorf(StackOverflow, sp)
	}
	return nil
}

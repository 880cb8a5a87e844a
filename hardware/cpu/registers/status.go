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

package registers

import (
	"strings"
)

// StatusRegister holds the five condition codes of the 8080. The condition
// codes are stored in the flags byte when the PSW is pushed to the stack.
type StatusRegister struct {
	Sign     bool
	Zero     bool
	AuxCarry bool
	Parity   bool
	Carry    bool
}

// NewStatusRegister is the preferred method of initialisation for the status
// register.
func NewStatusRegister() StatusRegister {
	return StatusRegister{}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "F"
}

// String returns the status register as a string of eight characters, one
// for each bit of the flags byte. Set flags are upper case and clear flags are
// lower case. Bits that do not hold a condition code are shown with a dash.
func (sr StatusRegister) String() string {
	s := strings.Builder{}

	flag := func(f bool, set rune, clear rune) {
		if f {
			s.WriteRune(set)
		} else {
			s.WriteRune(clear)
		}
	}

	flag(sr.Sign, 'S', 's')
	flag(sr.Zero, 'Z', 'z')
	s.WriteRune('-')
	flag(sr.AuxCarry, 'A', 'a')
	s.WriteRune('-')
	flag(sr.Parity, 'P', 'p')
	s.WriteRune('-')
	flag(sr.Carry, 'C', 'c')

	return s.String()
}

// Reset status flags to initial state.
func (sr *StatusRegister) Reset() {
	sr.FromValue(0)
}

// SetResult sets the Zero, Sign and Parity flags according to the value. The
// AuxCarry and Carry flags are not touched.
func (sr *StatusRegister) SetResult(v uint8) {
	sr.Zero = v == 0
	sr.Sign = v&0x80 == 0x80
	sr.Parity = Parity(v)
}

// Value converts the StatusRegister into the flags byte, suitable for pushing
// onto the stack as the low byte of the PSW. The layout is:
//
//	bit 7 6 5 4  3 2 1 0
//	    S Z 0 AC 0 P 1 CY
func (sr StatusRegister) Value() uint8 {
	// bit 1 is always set
	v := uint8(0x02)

	if sr.Sign {
		v |= 0x80
	}
	if sr.Zero {
		v |= 0x40
	}
	if sr.AuxCarry {
		v |= 0x10
	}
	if sr.Parity {
		v |= 0x04
	}
	if sr.Carry {
		v |= 0x01
	}

	return v
}

// FromValue converts the flags byte (popped from the stack, for example) into
// the StatusRegister receiver. Bits that do not hold a condition code are
// ignored.
func (sr *StatusRegister) FromValue(v uint8) {
	sr.Sign = v&0x80 == 0x80
	sr.Zero = v&0x40 == 0x40
	sr.AuxCarry = v&0x10 == 0x10
	sr.Parity = v&0x04 == 0x04
	sr.Carry = v&0x01 == 0x01
}

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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopher8080/hardware/cpu/registers"
	rtest "github.com/jetsetilly/gopher8080/hardware/cpu/registers/test"
	"github.com/jetsetilly/gopher8080/test"
)

func TestRegister(t *testing.T) {
	// initialisation
	r8 := registers.NewRegister(0, "test")
	test.ExpectEquality(t, r8.IsZero(), true)
	test.ExpectEquality(t, r8.Label(), "test")
	rtest.EquateRegisters(t, r8, 0)

	// loading
	r8.Load(127)
	rtest.EquateRegisters(t, r8, 127)
	test.ExpectEquality(t, r8.IsNegative(), false)
	r8.Load(0x80)
	test.ExpectEquality(t, r8.IsNegative(), true)
	test.ExpectEquality(t, r8.IsZero(), false)

	r8.Load(0x05)
	test.ExpectEquality(t, r8.String(), "0x05")
}

func TestStatusRegister(t *testing.T) {
	sr := registers.NewStatusRegister()
	rtest.EquateStatus(t, sr, "sz-a-p-c")
	test.ExpectEquality(t, sr.Value(), uint8(0x02))

	sr.Sign = true
	sr.Carry = true
	rtest.EquateStatus(t, sr, "Sz-a-p-C")
	test.ExpectEquality(t, sr.Value(), uint8(0x83))

	// every flag
	sr.FromValue(0xff)
	rtest.EquateStatus(t, sr, "SZ-A-P-C")
	test.ExpectEquality(t, sr.Value(), uint8(0xd7))

	// unused bits are ignored when loading and fixed when saving
	sr.FromValue(0x28)
	rtest.EquateStatus(t, sr, "sz-a-p-c")
	test.ExpectEquality(t, sr.Value(), uint8(0x02))

	// every flags byte survives a round trip once normalised
	for v := 0; v <= 0xff; v++ {
		sr.FromValue(uint8(v))
		n := uint8(v)&0xd5 | 0x02
		test.ExpectEquality(t, sr.Value(), n, v)
	}

	sr.FromValue(0xff)
	sr.Reset()
	rtest.EquateStatus(t, sr, "sz-a-p-c")
}

func TestSetResult(t *testing.T) {
	var sr registers.StatusRegister

	sr.Carry = true
	sr.AuxCarry = true
	sr.SetResult(0x00)
	rtest.EquateStatus(t, sr, "sZ-A-P-C")

	sr.SetResult(0x80)
	rtest.EquateStatus(t, sr, "Sz-A-p-C")

	sr.SetResult(0x03)
	rtest.EquateStatus(t, sr, "sz-A-P-C")
}

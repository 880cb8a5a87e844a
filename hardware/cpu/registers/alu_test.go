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

func TestParity(t *testing.T) {
	test.ExpectEquality(t, registers.Parity(0x00), true)
	test.ExpectEquality(t, registers.Parity(0x01), false)
	test.ExpectEquality(t, registers.Parity(0x03), true)
	test.ExpectEquality(t, registers.Parity(0x07), false)
	test.ExpectEquality(t, registers.Parity(0xff), true)
	test.ExpectEquality(t, registers.Parity(0xfe), false)
}

func TestAdd(t *testing.T) {
	r, sr := registers.Add(0x05, 0x01, false)
	test.ExpectEquality(t, r, uint8(0x06))
	rtest.EquateStatus(t, sr, "sz-a-P-c")

	// carry in
	r, sr = registers.Add(0x05, 0x01, true)
	test.ExpectEquality(t, r, uint8(0x07))
	rtest.EquateStatus(t, sr, "sz-a-p-c")

	// auxiliary carry
	r, sr = registers.Add(0x0f, 0x01, false)
	test.ExpectEquality(t, r, uint8(0x10))
	rtest.EquateStatus(t, sr, "sz-A-p-c")

	// carry out and zero
	r, sr = registers.Add(0xff, 0x01, false)
	test.ExpectEquality(t, r, uint8(0x00))
	rtest.EquateStatus(t, sr, "sZ-A-P-C")

	// sign
	r, sr = registers.Add(0x7f, 0x01, false)
	test.ExpectEquality(t, r, uint8(0x80))
	rtest.EquateStatus(t, sr, "Sz-A-p-c")
}

// the zero flag and the carry flag after an addition must agree with the
// arithmetic for every pair of operands
func TestAddExhaustive(t *testing.T) {
	for a := 0; a <= 0xff; a++ {
		for b := 0; b <= 0xff; b++ {
			r, sr := registers.Add(uint8(a), uint8(b), false)
			if sr.Zero != ((a+b)&0xff == 0) {
				t.Fatalf("zero flag wrong for %#02x + %#02x", a, b)
			}
			if sr.Carry != (a+b > 0xff) {
				t.Fatalf("carry flag wrong for %#02x + %#02x", a, b)
			}
			if int(r) != (a+b)&0xff {
				t.Fatalf("result wrong for %#02x + %#02x", a, b)
			}
		}
	}
}

func TestSubtract(t *testing.T) {
	r, sr := registers.Subtract(0x05, 0x01, false)
	test.ExpectEquality(t, r, uint8(0x04))
	test.ExpectEquality(t, sr.Carry, false)
	test.ExpectEquality(t, sr.Zero, false)

	// borrow in
	r, sr = registers.Subtract(0x05, 0x01, true)
	test.ExpectEquality(t, r, uint8(0x03))
	test.ExpectEquality(t, sr.Carry, false)

	// equal operands
	r, sr = registers.Subtract(0x3e, 0x3e, false)
	test.ExpectEquality(t, r, uint8(0x00))
	rtest.EquateStatus(t, sr, "sZ-A-P-c")

	// borrow out
	r, sr = registers.Subtract(0x00, 0x01, false)
	test.ExpectEquality(t, r, uint8(0xff))
	rtest.EquateStatus(t, sr, "Sz-a-P-C")

	r, sr = registers.Subtract(0x01, 0x02, true)
	test.ExpectEquality(t, r, uint8(0xfe))
	test.ExpectEquality(t, sr.Carry, true)

	// carry flag is a borrow for every pair of operands
	for a := 0; a <= 0xff; a++ {
		for b := 0; b <= 0xff; b++ {
			r, sr := registers.Subtract(uint8(a), uint8(b), false)
			if sr.Carry != (b > a) {
				t.Fatalf("carry flag wrong for %#02x - %#02x", a, b)
			}
			if int(r) != (a-b)&0xff {
				t.Fatalf("result wrong for %#02x - %#02x", a, b)
			}
		}
	}
}

func TestLogical(t *testing.T) {
	r, sr := registers.And(0x21, 0x01)
	test.ExpectEquality(t, r, uint8(0x01))
	rtest.EquateStatus(t, sr, "sz-a-p-c")

	r, sr = registers.Xor(0x01, 0xff)
	test.ExpectEquality(t, r, uint8(0xfe))
	rtest.EquateStatus(t, sr, "Sz-a-p-c")

	r, sr = registers.Or(0xfe, 0x01)
	test.ExpectEquality(t, r, uint8(0xff))
	rtest.EquateStatus(t, sr, "Sz-a-P-c")

	// XRA A is the common idiom for clearing the accumulator
	r, sr = registers.Xor(0x5a, 0x5a)
	test.ExpectEquality(t, r, uint8(0x00))
	rtest.EquateStatus(t, sr, "sZ-a-P-c")
}

func TestIncrementDecrement(t *testing.T) {
	var sr registers.StatusRegister

	r, sr := registers.Increment(0x05, sr)
	test.ExpectEquality(t, r, uint8(0x06))
	rtest.EquateStatus(t, sr, "sz-a-P-c")

	r, sr = registers.Increment(0xff, sr)
	test.ExpectEquality(t, r, uint8(0x00))
	rtest.EquateStatus(t, sr, "sZ-A-P-c")

	r, sr = registers.Decrement(0x00, sr)
	test.ExpectEquality(t, r, uint8(0xff))
	rtest.EquateStatus(t, sr, "Sz-a-P-c")

	r, sr = registers.Decrement(0x10, sr)
	test.ExpectEquality(t, r, uint8(0x0f))
	rtest.EquateStatus(t, sr, "sz-a-P-c")

	r, sr = registers.Decrement(0x0f, sr)
	test.ExpectEquality(t, r, uint8(0x0e))
	rtest.EquateStatus(t, sr, "sz-A-p-c")

	// carry is never changed by increment or decrement
	for _, c := range []bool{false, true} {
		for v := 0; v <= 0xff; v++ {
			in := registers.StatusRegister{Carry: c}
			_, sr = registers.Increment(uint8(v), in)
			test.ExpectEquality(t, sr.Carry, c, "INR", v)
			_, sr = registers.Decrement(uint8(v), in)
			test.ExpectEquality(t, sr.Carry, c, "DCR", v)
		}
	}
}

func TestAdd16(t *testing.T) {
	r, carry := registers.Add16(0x1234, 0x1111)
	test.ExpectEquality(t, r, uint16(0x2345))
	test.ExpectEquality(t, carry, false)

	r, carry = registers.Add16(0xffff, 0x0001)
	test.ExpectEquality(t, r, uint16(0x0000))
	test.ExpectEquality(t, carry, true)

	r, carry = registers.Add16(0x8000, 0x8000)
	test.ExpectEquality(t, r, uint16(0x0000))
	test.ExpectEquality(t, carry, true)
}

func TestRotate(t *testing.T) {
	r, carry := registers.RotateLeft(0x81)
	test.ExpectEquality(t, r, uint8(0x03))
	test.ExpectEquality(t, carry, true)

	r, carry = registers.RotateRight(0x81)
	test.ExpectEquality(t, r, uint8(0xc0))
	test.ExpectEquality(t, carry, true)

	r, carry = registers.RotateRight(0x02)
	test.ExpectEquality(t, r, uint8(0x01))
	test.ExpectEquality(t, carry, false)

	r, carry = registers.RotateLeftCarry(0x80, false)
	test.ExpectEquality(t, r, uint8(0x00))
	test.ExpectEquality(t, carry, true)

	r, carry = registers.RotateLeftCarry(0x00, true)
	test.ExpectEquality(t, r, uint8(0x01))
	test.ExpectEquality(t, carry, false)

	r, carry = registers.RotateRightCarry(0x01, false)
	test.ExpectEquality(t, r, uint8(0x00))
	test.ExpectEquality(t, carry, true)

	r, carry = registers.RotateRightCarry(0x00, true)
	test.ExpectEquality(t, r, uint8(0x80))
	test.ExpectEquality(t, carry, false)
}

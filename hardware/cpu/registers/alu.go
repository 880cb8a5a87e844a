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

import "math/bits"

// Parity returns true if the number of set bits in the value is even.
func Parity(v uint8) bool {
	return bits.OnesCount8(v)&0x01 == 0
}

// Add returns the result of a+b, plus one if carry is true, along with the
// complete set of condition codes for the result.
func Add(a uint8, b uint8, carry bool) (uint8, StatusRegister) {
	var c uint16
	if carry {
		c = 1
	}

	sum := uint16(a) + uint16(b) + c

	var sr StatusRegister
	sr.Carry = sum > 0xff
	sr.AuxCarry = uint16(a&0x0f)+uint16(b&0x0f)+c > 0x0f

	r := uint8(sum)
	sr.SetResult(r)

	return r, sr
}

// Subtract returns the result of a-b, minus one if borrow is true, along with
// the complete set of condition codes for the result.
//
// Like the 8080 itself, subtraction is performed as the addition of the two's
// complement of b. The Carry flag is the inverse of the carry out of bit 7 of
// that addition, meaning that it is set when a borrow has occurred. The
// AuxCarry flag is the carry out of bit 3 of the same addition.
func Subtract(a uint8, b uint8, borrow bool) (uint8, StatusRegister) {
	c := uint16(1)
	if borrow {
		c = 0
	}

	nb := ^b
	sum := uint16(a) + uint16(nb) + c

	var sr StatusRegister
	sr.Carry = sum <= 0xff
	sr.AuxCarry = uint16(a&0x0f)+uint16(nb&0x0f)+c > 0x0f

	r := uint8(sum)
	sr.SetResult(r)

	return r, sr
}

// And returns the bitwise AND of a and b. AuxCarry and Carry are always clear.
func And(a uint8, b uint8) (uint8, StatusRegister) {
	return logical(a & b)
}

// Or returns the bitwise OR of a and b. AuxCarry and Carry are always clear.
func Or(a uint8, b uint8) (uint8, StatusRegister) {
	return logical(a | b)
}

// Xor returns the bitwise exclusive OR of a and b. AuxCarry and Carry are
// always clear.
func Xor(a uint8, b uint8) (uint8, StatusRegister) {
	return logical(a ^ b)
}

func logical(r uint8) (uint8, StatusRegister) {
	var sr StatusRegister
	sr.SetResult(r)
	return r, sr
}

// Increment adds one to v, wrapping at 0xff. The Carry flag in the returned
// status is always the Carry flag of the status argument.
func Increment(v uint8, status StatusRegister) (uint8, StatusRegister) {
	r := v + 1
	sr := status
	sr.AuxCarry = r&0x0f == 0x00
	sr.SetResult(r)
	return r, sr
}

// Decrement subtracts one from v, wrapping at 0x00. The Carry flag in the
// returned status is always the Carry flag of the status argument.
//
// AuxCarry is set when there is no borrow out of bit 4, which is the carry
// out of bit 3 when adding 0xff.
func Decrement(v uint8, status StatusRegister) (uint8, StatusRegister) {
	r := v - 1
	sr := status
	sr.AuxCarry = r&0x0f != 0x0f
	sr.SetResult(r)
	return r, sr
}

// Add16 returns a+b and whether the addition carried out of bit 15.
func Add16(a uint16, b uint16) (uint16, bool) {
	r := a + b
	return r, r < a
}

// RotateLeft rotates v one bit to the left. Bit 7 moves into bit 0 and is
// also returned as the new carry.
func RotateLeft(v uint8) (uint8, bool) {
	carry := v&0x80 == 0x80
	return bits.RotateLeft8(v, 1), carry
}

// RotateRight rotates v one bit to the right. Bit 0 moves into bit 7 and is
// also returned as the new carry.
func RotateRight(v uint8) (uint8, bool) {
	carry := v&0x01 == 0x01
	return bits.RotateLeft8(v, -1), carry
}

// RotateLeftCarry rotates v one bit to the left through the carry. The
// existing carry moves into bit 0 and bit 7 is returned as the new carry.
func RotateLeftCarry(v uint8, carry bool) (uint8, bool) {
	rcarry := v&0x80 == 0x80
	v <<= 1
	if carry {
		v |= 0x01
	}
	return v, rcarry
}

// RotateRightCarry rotates v one bit to the right through the carry. The
// existing carry moves into bit 7 and bit 0 is returned as the new carry.
func RotateRightCarry(v uint8, carry bool) (uint8, bool) {
	rcarry := v&0x01 == 0x01
	v >>= 1
	if carry {
		v |= 0x80
	}
	return v, rcarry
}

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

// DecimalAdjust corrects the value of the accumulator after the binary
// addition of two BCD numbers, so that it represents two decimal digits.
//
// The low nibble is adjusted first, if it is greater than nine or if AuxCarry
// is set. Six is added and the addition is allowed to propagate into the high
// nibble. The high nibble is then considered (after the low nibble adjustment)
// and if it is greater than nine or if Carry is set, six is added to it.
//
// AuxCarry in the returned status indicates whether the low nibble was
// adjusted. Carry is set if the high nibble was adjusted and is never cleared
// by this function, a carry going in is a carry coming out. Zero, Sign and
// Parity reflect the adjusted value.
func DecimalAdjust(a uint8, status StatusRegister) (uint8, StatusRegister) {
	sr := status

	// wider than eight bits so that a carry out of the low nibble adjustment
	// is visible to the high nibble test
	v := uint16(a)

	sr.AuxCarry = false
	if v&0x0f > 0x09 || status.AuxCarry {
		v += 0x06
		sr.AuxCarry = true
	}

	if v>>4 > 0x09 || status.Carry {
		v += 0x60
		sr.Carry = true
	}

	r := uint8(v)
	sr.SetResult(r)

	return r, sr
}

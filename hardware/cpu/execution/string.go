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

package execution

import (
	"fmt"
	"strings"
)

// String returns a human readable version of the Result. For example:
//
//	0x0000  3e 05     MVI A,$05
//
// Bytes of the instruction that have not yet been read are shown as question
// marks.
func (r Result) String() string {
	if r.Defn == nil {
		return fmt.Sprintf("%#04x  ??        ???", r.Address)
	}

	hex := strings.Builder{}
	hex.WriteString(fmt.Sprintf("%02x", r.Defn.OpCode))
	for i := 1; i < r.Defn.Bytes; i++ {
		if i < r.ByteCount {
			hex.WriteString(fmt.Sprintf(" %02x", uint8(r.InstructionData>>((i-1)*8))))
		} else {
			hex.WriteString(" ??")
		}
	}

	s := fmt.Sprintf("%#04x  %-9s %s", r.Address, hex.String(), r.Defn.Mnemonic)

	if operands := r.Defn.Operands(r.InstructionData); operands != "" {
		s = fmt.Sprintf("%s %s", s, operands)
	}

	return s
}

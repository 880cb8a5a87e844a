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
	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/hardware/cpu/instructions"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf("cpu: execution not finalised (bad opcode?)")
	}

	if r.Defn == nil {
		return curated.Errorf("cpu: execution finalised without a definition")
	}

	// byte count
	if r.ByteCount != r.Defn.Bytes {
		return curated.Errorf("cpu: unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, r.Defn.Bytes)
	}

	// branch success only makes sense for instructions that can change the
	// flow of execution
	if r.BranchSuccess {
		switch r.Defn.Effect {
		case instructions.Flow, instructions.Subroutine:
		default:
			return curated.Errorf("cpu: unexpected branch success for opcode %#02x [%s]", r.Defn.OpCode, r.Defn.Mnemonic)
		}
	} else if !r.Defn.IsConditional() {
		switch r.Defn.Effect {
		case instructions.Flow, instructions.Subroutine:
			return curated.Errorf("cpu: unconditional branch not taken for opcode %#02x [%s]", r.Defn.OpCode, r.Defn.Mnemonic)
		}
	}

	return nil
}

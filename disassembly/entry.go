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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8080/hardware/cpu/execution"
)

// EntryLevel describes the level of the Entry.
type EntryLevel int

// List of valid EntryLevel values in increasing reliability.
//
// Incomplete entries are instructions that run past the end of the
// disassembled range or past the end of memory. The bytes that could be read
// are recorded but the entry can not be decoded fully.
//
// Decoded entries have been decoded as though every byte position reached by
// linear decoding is the start of a valid instruction.
const (
	EntryLevelIncomplete EntryLevel = iota
	EntryLevelDecoded
)

func (l EntryLevel) String() string {
	switch l {
	case EntryLevelIncomplete:
		return "incomplete"
	case EntryLevelDecoded:
		return "decoded"
	}
	return ""
}

// Entry is a disassembled instruction.
type Entry struct {
	Level EntryLevel

	// the Final field of the Result is true only for EntryLevelDecoded. the
	// Result of an incomplete entry is not valid in the sense of the
	// execution.IsValid() function
	Result execution.Result

	// string representations of information in the Result
	Address  string
	Bytecode string
	Operator string
	Operand  string
}

func newEntry(level EntryLevel, result execution.Result) *Entry {
	e := &Entry{
		Level:   level,
		Result:  result,
		Address: fmt.Sprintf("%#04x", result.Address),
	}

	if result.Defn == nil {
		e.Bytecode = "??"
		e.Operator = "???"
		return e
	}

	b := strings.Builder{}
	b.WriteString(fmt.Sprintf("%02x", result.Defn.OpCode))
	for i := 1; i < result.ByteCount; i++ {
		b.WriteString(fmt.Sprintf(" %02x", uint8(result.InstructionData>>((i-1)*8))))
	}
	e.Bytecode = b.String()

	e.Operator = result.Defn.Mnemonic
	if level == EntryLevelDecoded {
		e.Operand = result.Defn.Operands(result.InstructionData)
	} else if result.Defn.Bytes > 1 {
		e.Operand = "??"
	}

	return e
}

func (e *Entry) String() string {
	return strings.TrimSpace(fmt.Sprintf("%s  %-8s  %-4s %s", e.Address, e.Bytecode, e.Operator, e.Operand))
}

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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8080/disassembly"
	"github.com/jetsetilly/gopher8080/hardware/memory"
	"github.com/jetsetilly/gopher8080/test"
)

func TestFromImage(t *testing.T) {
	dsm := disassembly.FromImage([]uint8{0x3e, 0x05, 0x3c, 0x76, 0xc3, 0x00, 0x01}, 0x0000)
	test.DemandEquality(t, len(dsm.Entries), 4)

	w := &strings.Builder{}
	test.ExpectSuccess(t, dsm.Write(w, disassembly.WriteAttr{ByteCode: true}))
	test.ExpectEquality(t, w.String(), ""+
		"0x0000  3e 05     MVI  A,$05\n"+
		"0x0002  3c        INR  A\n"+
		"0x0003  76        HLT\n"+
		"0x0004  c3 00 01  JMP  $0100\n")

	e, ok := dsm.Get(0x0004)
	test.DemandSuccess(t, ok)
	test.ExpectEquality(t, e.Level, disassembly.EntryLevelDecoded)
	test.ExpectSuccess(t, e.Result.Final)
	test.ExpectEquality(t, e.Result.InstructionData, uint16(0x0100))

	// no entry begins in the middle of an instruction
	_, ok = dsm.Get(0x0001)
	test.ExpectFailure(t, ok)
}

func TestIncomplete(t *testing.T) {
	dsm := disassembly.FromImage([]uint8{0x3e, 0x05, 0xc3, 0x00}, 0x0100)
	test.DemandEquality(t, len(dsm.Entries), 2)

	e := dsm.Entries[1]
	test.ExpectEquality(t, e.Level, disassembly.EntryLevelIncomplete)
	test.ExpectFailure(t, e.Result.Final)
	test.ExpectEquality(t, e.Result.ByteCount, 2)
	test.ExpectEquality(t, e.Bytecode, "c3 00")

	w := &strings.Builder{}
	test.ExpectSuccess(t, dsm.Write(w, disassembly.WriteAttr{}))
	test.ExpectEquality(t, w.String(), ""+
		"0x0100  MVI  A,$05\n"+
		"0x0102  JMP  ??  ; incomplete\n")
}

func TestFromMemory(t *testing.T) {
	mem, err := memory.NewRAM(0x0010)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, mem.LoadImage([]uint8{0x21, 0x34, 0x12, 0xf5, 0xd7}, 0x000b))

	dsm := disassembly.FromMemory(mem, 0x0000, 0xffff)

	// eleven NOPs followed by LXI, PUSH and the last instruction which is
	// one byte and fits exactly at the end of memory
	test.DemandEquality(t, len(dsm.Entries), 14)
	test.ExpectEquality(t, dsm.Entries[0].Operator, "NOP")
	test.ExpectEquality(t, dsm.Entries[11].Operator, "LXI")
	test.ExpectEquality(t, dsm.Entries[11].Operand, "H,$1234")
	test.ExpectEquality(t, dsm.Entries[12].Operand, "PSW")
	test.ExpectEquality(t, dsm.Entries[13].Operator, "RST")
	test.ExpectEquality(t, dsm.Entries[13].Operand, "2")

	// memory is unchanged
	v, err := mem.Read(0x000b)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8(0x21))

	// instruction running off the end of memory
	test.DemandSuccess(t, mem.LoadImage([]uint8{0xcd, 0x00}, 0x000e))
	dsm = disassembly.FromMemory(mem, 0x000e, 0xffff)
	test.DemandEquality(t, len(dsm.Entries), 1)
	test.ExpectEquality(t, dsm.Entries[0].Level, disassembly.EntryLevelIncomplete)
}

func TestGrep(t *testing.T) {
	dsm := disassembly.FromImage([]uint8{0x3e, 0x05, 0x3c, 0x76, 0xc3, 0x00, 0x01}, 0x0000)

	w := &strings.Builder{}
	test.ExpectSuccess(t, dsm.Grep(w, disassembly.GrepOperator, "inr", false))
	test.ExpectEquality(t, w.String(), "0x0002  3c        INR  A\n")

	w.Reset()
	test.ExpectSuccess(t, dsm.Grep(w, disassembly.GrepOperand, "$0100", true))
	test.ExpectEquality(t, w.String(), "0x0004  c3 00 01  JMP  $0100\n")

	w.Reset()
	test.ExpectSuccess(t, dsm.Grep(w, disassembly.GrepAll, "inr", true))
	test.ExpectEquality(t, w.String(), "")
}

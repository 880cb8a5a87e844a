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
	"github.com/jetsetilly/gopher8080/hardware/cpu/execution"
	"github.com/jetsetilly/gopher8080/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher8080/hardware/memory/cpubus"
)

// Disassembly represents the linear decoding of a range of memory.
type Disassembly struct {
	Entries []*Entry

	// the range of memory that has been disassembled
	Start uint16
	End   uint16
}

// FromMemory disassembles memory from the start address to the end address
// inclusive. Memory is only read and nothing else is affected.
//
// Decoding stops early if an address can not be read. An instruction whose
// operands lie beyond the end address or beyond the end of memory becomes an
// incomplete entry.
func FromMemory(mem cpubus.Memory, start uint16, end uint16) *Disassembly {
	dsm := &Disassembly{
		Start: start,
		End:   end,
	}

	defs := instructions.GetDefinitions()

	addr := int(start)
	for addr <= int(end) {
		opcode, err := mem.Read(uint16(addr))
		if err != nil {
			break
		}

		result := execution.Result{
			Address:   uint16(addr),
			Defn:      defs[opcode],
			ByteCount: 1,
		}

		level := EntryLevelDecoded

		for i := 1; i < result.Defn.Bytes; i++ {
			a := addr + i
			if a > int(end) {
				level = EntryLevelIncomplete
				break
			}

			v, err := mem.Read(uint16(a))
			if err != nil {
				level = EntryLevelIncomplete
				break
			}

			result.InstructionData |= uint16(v) << ((i - 1) * 8)
			result.ByteCount++
		}

		result.Final = level == EntryLevelDecoded
		dsm.Entries = append(dsm.Entries, newEntry(level, result))

		if level == EntryLevelIncomplete {
			break
		}

		addr += result.Defn.Bytes
	}

	return dsm
}

// FromImage disassembles a program image as it would be placed in memory at
// the origin address.
func FromImage(image []uint8, origin uint16) *Disassembly {
	if len(image) == 0 {
		return &Disassembly{Start: origin, End: origin}
	}

	end := int(origin) + len(image) - 1
	if end > 0xffff {
		end = 0xffff
	}

	return FromMemory(imageMemory{image: image, origin: origin}, origin, uint16(end))
}

// Get returns the entry that begins at the address. Returns false if there
// is no such entry.
func (dsm *Disassembly) Get(address uint16) (*Entry, bool) {
	for _, e := range dsm.Entries {
		if e.Result.Address == address {
			return e, true
		}
	}
	return nil, false
}

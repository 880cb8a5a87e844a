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

package memory_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/hardware/memory"
	"github.com/jetsetilly/gopher8080/hardware/memory/cpubus"
	"github.com/jetsetilly/gopher8080/test"
)

func TestReadWrite(t *testing.T) {
	ram, err := memory.NewRAM(memory.DefaultSize)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ram.Size(), 0x4000)

	var _ cpubus.Memory = ram

	// memory begins zero filled
	v, err := ram.Read(0x0000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0)

	test.ExpectSuccess(t, ram.Write(0x3fff, 0xaa))
	v, err = ram.Read(0x3fff)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0xaa)
}

func TestOutOfBounds(t *testing.T) {
	ram, err := memory.NewRAM(memory.DefaultSize)
	test.DemandSuccess(t, err)

	_, err = ram.Read(0x4000)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, memory.AddressError))
	test.ExpectEquality(t, err.Error(), "memory: inaccessible address (0x4000)")

	err = ram.Write(0xffff, 0x01)
	test.ExpectSuccess(t, curated.Is(err, memory.AddressError))

	// a full sized memory has no out of bounds address
	ram, err = memory.NewRAM(memory.MaxSize)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, ram.Write(0xffff, 0x01))
}

func TestSizes(t *testing.T) {
	_, err := memory.NewRAM(0)
	test.ExpectFailure(t, err)
	_, err = memory.NewRAM(memory.MaxSize + 1)
	test.ExpectFailure(t, err)
	_, err = memory.NewRAM(1)
	test.ExpectSuccess(t, err)
}

func TestLoadImage(t *testing.T) {
	ram, err := memory.NewRAM(0x100)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, ram.LoadImage([]uint8{0x3e, 0x05, 0x3c, 0x76}, 0x00))
	for i, b := range []uint8{0x3e, 0x05, 0x3c, 0x76} {
		v, _ := ram.Read(uint16(i))
		test.ExpectEquality(t, v, b, i)
	}

	// image loaded at an origin
	test.ExpectSuccess(t, ram.LoadImage([]uint8{0x01, 0x02}, 0xfe))
	v, _ := ram.Read(0xff)
	test.ExpectEquality(t, v, 0x02)

	// image too large for origin
	err = ram.LoadImage([]uint8{0x01, 0x02, 0x03}, 0xfe)
	test.ExpectSuccess(t, curated.Is(err, memory.ImageError))

	ram.Clear()
	v, _ = ram.Read(0x00)
	test.ExpectEquality(t, v, 0x00)
}

func TestDump(t *testing.T) {
	ram, err := memory.NewRAM(0x20)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, ram.LoadImage([]uint8{0x3e, 0x05, 0x3c, 0x76}, 0x00))
	test.ExpectEquality(t, ram.Dump(0x00, 0x03), "0000 | 3e 05 3c 76"+strings.Repeat("   ", 12)+"\n")
}

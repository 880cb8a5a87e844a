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

package memory

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8080/curated"
)

// Sentinal error returned by RAM.Read() and RAM.Write(). Note that the error
// expects a numberic address, which will be formatted as four digit hex.
const AddressError = "memory: inaccessible address (%#04x)"

// Sentinal error for a multi-byte access that starts at the address and would
// continue past the top of the 16 bit address space.
const WrapError = "memory: access at %#04x wraps around the address space"

// Sentinal error returned by RAM.LoadImage() when the image will not fit
// between the origin and the top of memory.
const ImageError = "memory: image of %d bytes does not fit at origin %#04x"

// The 8080 can address 64KiB. The default size is the 16KiB found in many
// systems of the era.
const (
	MaxSize     = 0x10000
	DefaultSize = 0x4000
)

// RAM is a linear array of bytes. Every address less than the size of the RAM
// can be read and written, every other address is an AddressError.
type RAM struct {
	memory []uint8
}

// NewRAM is the preferred method of initialisation for the RAM type. Memory
// is zero filled.
func NewRAM(size int) (*RAM, error) {
	if size <= 0 || size > MaxSize {
		return nil, curated.Errorf("memory: unsupported size (%d)", size)
	}
	return &RAM{
		memory: make([]uint8, size),
	}, nil
}

func (ram *RAM) String() string {
	return fmt.Sprintf("RAM %#04x bytes", len(ram.memory))
}

// Dump returns a hex dump of the address range. The range is clipped to the
// size of the RAM.
func (ram *RAM) Dump(from uint16, to uint16) string {
	s := strings.Builder{}

	end := int(to)
	if end >= len(ram.memory) {
		end = len(ram.memory) - 1
	}

	for row := int(from) &^ 0x0f; row <= end; row += 16 {
		s.WriteString(fmt.Sprintf("%04x |", row))
		for col := 0; col < 16; col++ {
			a := row + col
			if a < int(from) || a > end {
				s.WriteString("   ")
				continue
			}
			s.WriteString(fmt.Sprintf(" %02x", ram.memory[a]))
		}
		s.WriteString("\n")
	}

	return s.String()
}

// Size returns the number of addressable bytes.
func (ram *RAM) Size() int {
	return len(ram.memory)
}

// Read implements the cpubus.Memory interface.
func (ram *RAM) Read(address uint16) (uint8, error) {
	if int(address) >= len(ram.memory) {
		return 0, curated.Errorf(AddressError, address)
	}
	return ram.memory[address], nil
}

// Write implements the cpubus.Memory interface.
func (ram *RAM) Write(address uint16, data uint8) error {
	if int(address) >= len(ram.memory) {
		return curated.Errorf(AddressError, address)
	}
	ram.memory[address] = data
	return nil
}

// LoadImage copies the image into memory byte-for-byte starting at the origin
// address. Memory outside of the image is not touched.
func (ram *RAM) LoadImage(image []uint8, origin uint16) error {
	if int(origin)+len(image) > len(ram.memory) {
		return curated.Errorf(ImageError, len(image), origin)
	}
	copy(ram.memory[origin:], image)
	return nil
}

// Clear sets every byte of memory to zero.
func (ram *RAM) Clear() {
	for i := range ram.memory {
		ram.memory[i] = 0
	}
}

// Snapshot creates a copy of the RAM in its current state.
func (ram *RAM) Snapshot() *RAM {
	n := &RAM{
		memory: make([]uint8, len(ram.memory)),
	}
	copy(n.memory, ram.memory)
	return n
}

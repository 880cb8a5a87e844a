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

import "github.com/jetsetilly/gopher8080/curated"

// imageMemory implements cpubus.Memory for a program image that has not been
// loaded into the machine.
type imageMemory struct {
	image  []uint8
	origin uint16
}

func (mem imageMemory) Read(address uint16) (uint8, error) {
	idx := int(address) - int(mem.origin)
	if idx < 0 || idx >= len(mem.image) {
		return 0, curated.Errorf("disassembly: address (%#04x) outside of image", address)
	}
	return mem.image[idx], nil
}

func (mem imageMemory) Write(_ uint16, _ uint8) error {
	return curated.Errorf("disassembly: image memory is read only")
}

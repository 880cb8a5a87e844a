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

package cpu

// Sentinal error patterns returned by the CPU. All of these indicate that the
// program can not continue.
//
// Memory faults are reported with the memory.AddressError pattern.
const (
	UnimplementedOpcode = "cpu: unimplemented instruction (%#02x) at (%#04x)"
	StackOverflow       = "cpu: stack overflow (SP=%#04x)"
	StackUnderflow      = "cpu: stack underflow (SP=%#04x)"
	InterruptVector     = "cpu: interrupt vector out of range (%d)"
)

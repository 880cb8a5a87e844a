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

// Package disassembly decodes 8080 machine code into a human readable form.
// It uses the same instruction definitions as the CPU but never executes
// anything and never changes memory.
//
// Decoding is linear. Every instruction is assumed to follow on immediately
// from the previous one, so data embedded in a program will be disassembled
// as though it were code.
//
//	dsm := disassembly.FromImage(image, 0x0000)
//	dsm.Write(os.Stdout, disassembly.WriteAttr{ByteCode: true})
package disassembly

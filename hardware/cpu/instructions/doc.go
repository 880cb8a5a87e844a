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

// Package instructions defines the instruction set of the 8080. There is one
// Definition for each of the 256 opcode values. The table is built by
// extracting the bit fields of each opcode and is used by both the CPU and
// the disassembler.
//
// Opcodes that the 8080 does not officially define are decoded as the
// documented instruction that the silicon executes for that opcode. These
// definitions have the Undocumented field set.
package instructions

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

// Package hardware is the base package for the 8080 emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Machine type is the root of the emulation and contains external
// references to all the sub-systems. From here, the emulation can be stepped
// one instruction at a time or set running:
//
//	m, _ := hardware.NewMachine(nil)
//	m.AttachImage([]uint8{0x3e, 0x05, 0x3c, 0x76})
//	r, _ := m.Run(nil)
//
// The run ends when the CPU halts or when a fault occurs. Faults are reported
// in the StepResult and are never recovered from. The machine must be reset
// before it can continue.
package hardware

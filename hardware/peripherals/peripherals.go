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

// Package peripherals contains devices that can be attached to the port bus
// of the 8080 machine. The devices are in sub-packages of this package.
//
// Each device implements the ports.Bus interface and is attached with the
// Attach() function of the ports.Mux type, for one or more port numbers.
package peripherals

// Default port numbers for the peripherals in this package.
const (
	ConsoleStatusPort = 0x10
	ConsoleDataPort   = 0x11
	DACPort           = 0x20
)

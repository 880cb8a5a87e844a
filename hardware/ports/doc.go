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

// Package ports is the boundary between the CPU and the devices attached to
// its input/output ports. The CPU resolves the port number and the direction
// of the transfer. What happens to the data is up to the device.
//
// The Mux type routes each of the 256 ports to the device attached to it.
// Ports with nothing attached behave like the unconnected data bus of the
// 8080, reading as 0xff and ignoring writes.
package ports

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

// Package console implements a character device for the 8080 machine. Input
// comes from any io.Reader, usually the host terminal opened with
// OpenTerminal(), and output goes to any io.Writer.
//
// The device uses two ports. The status port indicates if there is input
// waiting to be read and the data port is used for reading and writing
// characters.
package console

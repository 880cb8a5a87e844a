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

// Package memory implements the flat memory of an 8080 system. There is no
// paging, no mirroring and no protection. An address is either inside the RAM
// and can be read and written, or it is outside and any access results in an
// AddressError.
//
//	    CPU ---- cpu bus ---- RAM
//
// The CPU only sees memory through the cpubus.Memory interface, which the RAM
// type implements. Test code is free to supply its own implementation of the
// interface.
//
// Program images are loaded with RAM.LoadImage(). The image is copied
// byte-for-byte, there is no header or relocation.
package memory

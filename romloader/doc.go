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

// Package romloader is used to specify the program image that is to be
// attached to the emulated machine.
//
// When the image is ready to be loaded into the emulator, the Load() function
// should be used. The Load() function handles loading of data from different
// sources. Currently local files and data over HTTP(S) are supported.
//
//	ld := romloader.NewLoader("roms/cpudiag.bin")
//	err := ld.Load()
//
// The SHA1 hash of the data is placed in the Hash field. If the Hash field is
// set before loading then the loaded data must match it.
package romloader

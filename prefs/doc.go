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

// Package prefs facilitates the storage of preferential values in the
// Gopher8080 system. It is a generic package and has no knowledge of the
// emulation.
//
// Preference values are represented by the Bool and Int types. Int values can
// be validated with SetHookPre(). Values are grouped by a Disk instance and
// saved to a single file:
//
//	dsk, _ := prefs.NewDisk(pth)
//
//	var size prefs.Int
//	dsk.Add("memory.size", &size)
//	dsk.Load()
//
// Values can be overridden for the duration of a single invocation with the
// command line stack. See PushCommandLineStack().
package prefs

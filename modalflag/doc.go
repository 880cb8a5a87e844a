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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles programs with modes of operation, each mode with its
// own set of flags.
//
// Unlike flag.FlagSet, arguments are given with NewArgs() and Parse() takes
// no arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DISASM")
//	verbose := md.AddBool("verbose", false, "echo log to terminal")
//	_, _ = md.Parse()
//
// After parsing, Mode() returns the selected mode. If the first argument
// after the flags is not a mode, the first mode in the list is selected. The
// next layer of flags is then set up with NewMode() and parsed in the same
// way:
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		trace := md.AddBool("trace", false, "print every instruction")
//		_, _ = md.Parse()
//		run(md.GetArg(0), *trace)
//	case "DISASM":
//		...
//	}
//
// Mode names are case insensitive.
package modalflag

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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The ExpectSuccess() and ExpectFailure() functions test for failure and
// success under generic conditions. The documentation for those functions
// describe the currently supported types.
//
// The nil type is considered a success. Consequently, ExpectFailure() will
// fail and ExpectSuccess() will succeed when given nil. This is because of
// how errors usually work (nil to indicate no error).
//
// ExpectEquality() and ExpectInequality() compare values of the same
// comparable type. Because the type parameter is shared, an untyped constant
// is converted to the type of the first argument:
//
//	test.ExpectEquality(t, mc.A.Value(), 6)
//
// The Demand*() variants end the test immediately on failure.
//
// The Writer type implements the io.Writer interface and should be used to
// capture output. The Writer.Compare() function can then be used to test for
// equality.
package test

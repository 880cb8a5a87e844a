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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error. The pattern is what identifies the
// error. For example, the memory package defines:
//
//	const AddressError = "memory: inaccessible address (%#04x)"
//
// and creates errors with:
//
//	curated.Errorf(AddressError, address)
//
// Code that needs to know whether an error was an address error asks:
//
//	if curated.Is(err, memory.AddressError) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	f := curated.Errorf("cpu: %v", curated.Errorf(memory.AddressError, 0x4000))
//
//	curated.Has(f, memory.AddressError) // true
//	curated.Is(f, memory.AddressError)  // false
//
// Curated errors also work with the errors.Is() function of the standard
// library. Two curated errors are considered equal if they share a pattern.
//
// The Error() function normalises the message chain by removing duplicate
// adjacent parts. Parts are separated by the sub-string ": " as suggested on
// p239 of "The Go Programming Language" (Donovan, Kernighan). This means we
// don't need to worry too much about when to wrap an error:
//
//	curated.Errorf("cpu: %v", curated.Errorf("cpu: stack overflow"))
//
// prints as "cpu: stack overflow" and not "cpu: cpu: stack overflow".
package curated

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

// Package test contains helper functions for testing the registers package
// and packages that make use of it.
package test

import (
	"testing"

	"github.com/jetsetilly/gopher8080/hardware/cpu/registers"
)

// EquateRegisters is used to test equality between the value of a register
// and an expected value. The register argument can be a registers.Register,
// a registers.ProgramCounter or a registers.StackPointer (pointer or value).
func EquateRegisters(t *testing.T, register any, value int) {
	t.Helper()

	var v int

	switch r := register.(type) {
	case registers.Register:
		v = int(r.Value())
	case *registers.Register:
		v = int(r.Value())
	case registers.ProgramCounter:
		v = int(r.Address())
	case *registers.ProgramCounter:
		v = int(r.Address())
	case registers.StackPointer:
		v = int(r.Address())
	case *registers.StackPointer:
		v = int(r.Address())
	default:
		t.Fatalf("not a register (%T)", register)
		return
	}

	if v != value {
		t.Errorf("register test failed: %#04x does not equal %#04x", v, value)
	}
}

// EquateStatus tests the status register against a string of eight
// characters, in the form returned by StatusRegister.String(). For example:
//
//	rtest.EquateStatus(t, sr, "sZ-a-P-c")
func EquateStatus(t *testing.T, sr registers.StatusRegister, flags string) {
	t.Helper()

	if len(flags) != 8 {
		t.Fatalf("status flags must be a string of 8 chars (%q)", flags)
	}

	if sr.String() != flags {
		t.Errorf("status register test failed: %s does not equal %s", sr.String(), flags)
	}
}

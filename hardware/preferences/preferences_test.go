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

package preferences_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/hardware/preferences"
	"github.com/jetsetilly/gopher8080/prefs"
	"github.com/jetsetilly/gopher8080/test"
)

func TestDefaults(t *testing.T) {
	p, err := preferences.NewPreferencesFromPath(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.Size(), 0x4000)
	test.ExpectEquality(t, p.OriginAddress(), uint16(0x0000))
	test.ExpectEquality(t, p.StackTopAddress(), uint16(0x2400))
	test.ExpectEquality(t, p.Undocumented.Get(), prefs.Value(true))
}

func TestSaveAndLoad(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	p, err := preferences.NewPreferencesFromPath(pth)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, p.MemorySize.Set(0x10000))
	test.ExpectSuccess(t, p.StackTop.Set("0xf000"))
	test.ExpectSuccess(t, p.Undocumented.Set(false))
	test.DemandSuccess(t, p.Save())

	data, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.Contains(string(data), "memory.size :: 0x10000\n"))
	test.ExpectSuccess(t, strings.Contains(string(data), "cpu.stacktop :: 0xf000\n"))

	q, err := preferences.NewPreferencesFromPath(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.Size(), 0x10000)
	test.ExpectEquality(t, q.StackTopAddress(), uint16(0xf000))
	test.ExpectEquality(t, q.Undocumented.Get(), prefs.Value(false))

	q.SetDefaults()
	test.ExpectEquality(t, q.Size(), 0x4000)
	test.ExpectSuccess(t, q.Load())
	test.ExpectEquality(t, q.Size(), 0x10000)
}

func TestCommandLine(t *testing.T) {
	prefs.PushCommandLineStack("memory.origin::0x0100")
	defer prefs.PopCommandLineStack()

	p, err := preferences.NewPreferencesFromPath(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.OriginAddress(), uint16(0x0100))
}

func TestValueRanges(t *testing.T) {
	p, err := preferences.NewPreferencesFromPath(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	err = p.MemorySize.Set(0)
	test.ExpectSuccess(t, curated.Is(err, preferences.ValueError))
	err = p.MemorySize.Set(0x10001)
	test.ExpectSuccess(t, curated.Is(err, preferences.ValueError))
	test.ExpectSuccess(t, p.MemorySize.Set(0x10000))

	err = p.Origin.Set("0x10005")
	test.ExpectSuccess(t, curated.Is(err, preferences.ValueError))
	err = p.Origin.Set(-1)
	test.ExpectSuccess(t, curated.Is(err, preferences.ValueError))

	err = p.StackTop.Set("-1")
	test.ExpectSuccess(t, curated.Is(err, preferences.ValueError))
	err = p.StackTop.Set(0x10000)
	test.ExpectSuccess(t, curated.Is(err, preferences.ValueError))

	// rejected values leave the previous value in place
	test.ExpectEquality(t, p.Size(), 0x10000)
	test.ExpectEquality(t, p.OriginAddress(), uint16(0x0000))
	test.ExpectEquality(t, p.StackTopAddress(), uint16(0x2400))
}

func TestValidate(t *testing.T) {
	p, err := preferences.NewPreferencesFromPath(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.Validate())

	// origin must be inside memory
	test.ExpectSuccess(t, p.Origin.Set(0x4000))
	test.ExpectSuccess(t, curated.Is(p.Validate(), preferences.LayoutError))
	test.ExpectSuccess(t, p.Origin.Set(0x3fff))
	test.ExpectSuccess(t, p.Validate())

	// stack top may be one past the end of memory
	test.ExpectSuccess(t, p.StackTop.Set(0x4000))
	test.ExpectSuccess(t, p.Validate())
	test.ExpectSuccess(t, p.StackTop.Set(0x4001))
	test.ExpectSuccess(t, curated.Is(p.Validate(), preferences.LayoutError))

	// a larger memory makes the same values valid
	test.ExpectSuccess(t, p.MemorySize.Set(0x8000))
	test.ExpectSuccess(t, p.Validate())
}

func TestInvalidValues(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "preferences")

	// out of range value on the command line
	prefs.PushCommandLineStack("memory.size::0x20000")
	_, err := preferences.NewPreferencesFromPath(pth)
	prefs.PopCommandLineStack()
	test.ExpectSuccess(t, curated.Has(err, preferences.ValueError))

	// out of range value in the file
	data := prefs.WarningBoilerPlate + "\nmemory.origin :: 0x10005\n"
	test.DemandSuccess(t, os.WriteFile(pth, []byte(data), 0o600))
	_, err = preferences.NewPreferencesFromPath(pth)
	test.ExpectSuccess(t, curated.Has(err, preferences.ValueError))

	// values that are valid on their own but not together
	data = prefs.WarningBoilerPlate + "\ncpu.stacktop :: 0xf000\n"
	test.DemandSuccess(t, os.WriteFile(pth, []byte(data), 0o600))
	_, err = preferences.NewPreferencesFromPath(pth)
	test.ExpectSuccess(t, curated.Is(err, preferences.LayoutError))
}

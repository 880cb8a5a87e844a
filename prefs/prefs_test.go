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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/prefs"
	"github.com/jetsetilly/gopher8080/test"
)

func tmpPrefFile(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "gopher8080_prefs_test")
}

func cmpPrefFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if !test.ExpectSuccess(t, err) {
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w, x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")

	test.ExpectFailure(t, v.Set(1))
}

func TestInt(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	w := prefs.NewHexInt()
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", w))

	test.ExpectSuccess(t, v.Set(10))

	// strings are parsed as Go integer literals
	test.ExpectSuccess(t, w.Set("0x2400"))
	test.ExpectEquality(t, w.Get(), prefs.Value(0x2400))

	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "number :: 10\nnumberB :: 0x2400\n")

	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
}

func TestIntHookPre(t *testing.T) {
	var v prefs.Int
	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(int) < 0 {
			return fmt.Errorf("negative")
		}
		return nil
	})

	test.ExpectSuccess(t, v.Set(10))
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectFailure(t, v.Set("-0x10"))

	// rejected values are not stored
	test.ExpectEquality(t, v.Get(), prefs.Value(10))
}

func TestLoad(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	// loading from a missing file is not an error
	var size prefs.Int
	var undoc prefs.Bool
	test.ExpectSuccess(t, dsk.Add("memory.size", &size))
	test.ExpectSuccess(t, dsk.Add("cpu.undocumented", &undoc))
	test.ExpectSuccess(t, dsk.Load())

	test.ExpectSuccess(t, size.Set(0x8000))
	test.ExpectSuccess(t, undoc.Set(true))
	test.DemandSuccess(t, dsk.Save())

	// a second disk instance sees the saved values
	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var size2 prefs.Int
	var undoc2 prefs.Bool
	test.ExpectSuccess(t, dsk.Add("memory.size", &size2))
	test.ExpectSuccess(t, dsk.Add("cpu.undocumented", &undoc2))
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, size2.Get(), prefs.Value(0x8000))
	test.ExpectEquality(t, undoc2.Get(), prefs.Value(true))

	// reset does not touch the file
	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, size2.Get(), prefs.Value(0))
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, size2.Get(), prefs.Value(0x8000))
}

func TestDuplicateKey(t *testing.T) {
	dsk, err := prefs.NewDisk(tmpPrefFile(t))
	test.DemandSuccess(t, err)

	var a, b prefs.Bool
	test.ExpectSuccess(t, dsk.Add("foo", &a))
	err = dsk.Add("foo", &b)
	test.ExpectSuccess(t, curated.Is(err, prefs.DuplicateKey))
}

func TestInvalidFile(t *testing.T) {
	fn := tmpPrefFile(t)
	test.DemandSuccess(t, os.WriteFile(fn, []byte("foo :: bar\n"), 0o600))

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectFailure(t, dsk.Load())

	// malformed line after a valid header
	test.DemandSuccess(t, os.WriteFile(fn, []byte(prefs.WarningBoilerPlate+"\nfoo bar\n"), 0o600))
	err = dsk.Load()
	test.ExpectSuccess(t, curated.Is(err, prefs.MalformedLine))
}

// write bool and then an int from a different prefs.Disk instance. tests
// that the second writing doesn't clobber the results of the first write.
func TestBoolAndInt(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, v.Set(true))
	test.DemandSuccess(t, dsk.Save())

	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var n prefs.Int
	test.ExpectSuccess(t, dsk.Add("foo", &n))
	test.ExpectSuccess(t, n.Set(99))
	test.DemandSuccess(t, dsk.Save())

	cmpPrefFile(t, fn, "foo :: 99\ntest :: true\n")
}

func TestCommandLineOverride(t *testing.T) {
	fn := tmpPrefFile(t)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var size prefs.Int
	test.ExpectSuccess(t, dsk.Add("memory.size", &size))
	test.ExpectSuccess(t, size.Set(0x4000))
	test.DemandSuccess(t, dsk.Save())

	prefs.PushCommandLineStack("memory.size::0x8000")
	defer prefs.PopCommandLineStack()

	dsk, err = prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var size2 prefs.Int
	test.ExpectSuccess(t, dsk.Add("memory.size", &size2))
	test.ExpectEquality(t, size2.Get(), prefs.Value(0x8000))

	// the overridden value survives a load and is not written to disk
	test.ExpectSuccess(t, dsk.Load())
	test.ExpectEquality(t, size2.Get(), prefs.Value(0x8000))
	test.DemandSuccess(t, dsk.Save())
	cmpPrefFile(t, fn, "memory.size :: 16384\n")
}

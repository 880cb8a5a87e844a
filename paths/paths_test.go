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

package paths

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jetsetilly/gopher8080/test"
)

func TestResourcePath(t *testing.T) {
	// run in a temporary directory containing a local resource directory
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	defer os.Chdir(wd)

	test.DemandSuccess(t, os.Chdir(t.TempDir()))
	test.DemandSuccess(t, os.Mkdir(baseResourcePath, 0o700))

	pth, err := ResourcePath("foo/bar", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".gopher8080", "foo", "bar", "baz"))

	// intermediate directories have been created but not the resource
	_, err = os.Stat(filepath.Join(".gopher8080", "foo", "bar"))
	test.ExpectSuccess(t, err)
	_, err = os.Stat(pth)
	test.ExpectFailure(t, err)

	pth, err = ResourcePath("", "baz")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".gopher8080", "baz"))

	pth, err = ResourcePath("", "")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".gopher8080")

	// base path is not prepended twice
	pth, err = ResourcePath(".gopher8080", "preferences")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".gopher8080", "preferences"))
}

func TestUniqueFilename(t *testing.T) {
	n := time.Date(2024, time.March, 7, 9, 5, 3, 0, time.UTC)
	test.ExpectEquality(t, uniqueFilename("dac", "cpudiag", n), "dac_cpudiag_20240307_090503")
	test.ExpectEquality(t, uniqueFilename("dac", "  ", n), "dac_20240307_090503")
}

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
	"strings"
)

// the base directory for all resources.
const baseResourcePath = ".gopher8080"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with the base resource directory. Empty path elements are
// ignored.
//
// Directories leading to the resource are created as required but the
// resource itself is not touched.
func ResourcePath(resource ...string) (string, error) {
	b := basePath()

	p := filepath.Join(resource...)

	// do not prepend base path if it is already present
	if !strings.HasPrefix(p, b) {
		p = filepath.Join(b, p)
	}

	if err := os.MkdirAll(filepath.Dir(p), 0o700); err != nil {
		return "", err
	}

	return p, nil
}

// basePath returns baseResourcePath unadorned if it exists in the current
// directory. otherwise the base path is in the user's configuration directory,
// if there is one.
func basePath() string {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return baseResourcePath
	}

	return filepath.Join(cnf, strings.TrimPrefix(baseResourcePath, "."))
}

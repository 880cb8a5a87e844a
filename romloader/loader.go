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

package romloader

import (
	"crypto/sha1"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/logger"
)

// Sentinal errors.
const (
	LoaderError       = "romloader: %v"
	UnexpectedHash    = "romloader: unexpected hash value (%s)"
	UnsupportedScheme = "romloader: unsupported URL scheme (%s)"
	EmptyImage        = "romloader: program image is empty (%s)"
)

// FileExtensions is the list of file extensions that are commonly used for
// 8080 program images. Files with other extensions can still be loaded.
var FileExtensions = [...]string{".BIN", ".ROM", ".COM", ".HEX8080", ".8080"}

// Loader is used to specify the program image to attach to the machine.
type Loader struct {
	// filename of the image to load. can be a URL with the http or https
	// scheme
	Filename string

	// expected hash of the loaded image. empty string indicates that the hash
	// is unknown and need not be validated. after a load operation the value
	// will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: strings.TrimSpace(filename),
	}
}

// ShortName returns the filename without the path and without the extension.
func (ld Loader) ShortName() string {
	s := path.Base(ld.Filename)
	return strings.TrimSuffix(s, path.Ext(s))
}

// HasCommonExtension returns true if the filename ends with one of the
// extensions in the FileExtensions list. The comparison is case insensitive.
func (ld Loader) HasCommonExtension() bool {
	ext := path.Ext(ld.Filename)
	for _, e := range FileExtensions {
		if strings.EqualFold(ext, e) {
			return true
		}
	}
	return false
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return len(ld.Data) > 0
}

// Load the program image. Loader filenames with a valid scheme will use that
// method to load the data. Currently supported schemes are HTTP(S) and local
// files.
//
// Calling Load() on a Loader that has already loaded is a no-op.
func (ld *Loader) Load() error {
	if ld.HasLoaded() {
		return nil
	}

	scheme := "file"

	u, err := url.Parse(ld.Filename)
	if err == nil && len(u.Scheme) > 1 {
		// single letter schemes are most likely windows drive letters
		scheme = strings.ToLower(u.Scheme)
	}

	var data []byte

	switch scheme {
	case "http", "https":
		resp, err := http.Get(ld.Filename)
		if err != nil {
			return curated.Errorf(LoaderError, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return curated.Errorf(LoaderError, fmt.Sprintf("http status %s", resp.Status))
		}

		data, err = io.ReadAll(resp.Body)
		if err != nil {
			return curated.Errorf(LoaderError, err)
		}

	case "file":
		fn := ld.Filename
		if u != nil && u.Scheme == "file" {
			fn = u.Path
		}

		data, err = os.ReadFile(fn)
		if err != nil {
			return curated.Errorf(LoaderError, err)
		}

	default:
		return curated.Errorf(UnsupportedScheme, scheme)
	}

	if len(data) == 0 {
		return curated.Errorf(EmptyImage, ld.Filename)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if ld.Hash != "" && !strings.EqualFold(ld.Hash, hash) {
		return curated.Errorf(UnexpectedHash, hash)
	}

	ld.Hash = hash
	ld.Data = data

	if !ld.HasCommonExtension() {
		logger.Logf(logger.Allow, "romloader", "%s does not have a common program image extension", ld.ShortName())
	}

	return nil
}

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

package prefs

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/gopher8080/curated"
)

// WarningBoilerPlate is the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// KeySep separates the key from the value in the preferences file.
const KeySep = " :: "

// Sentinal errors.
const (
	DiskError     = "prefs: %v"
	DuplicateKey  = "prefs: key %q already added"
	UnknownKey    = "prefs: no preference registered for key %q"
	MalformedLine = "prefs: malformed line in %s (%q)"
)

// Disk represents preference values as stored on disk. Preferences are added
// to the Disk with the Add() function and are then loaded and saved as a
// group.
type Disk struct {
	path    string
	entries map[string]pref

	// keys that have been set by the command line stack. these values are
	// not saved to disk because they are not choices made by the user for
	// the long term.
	overridden map[string]bool
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// file named by path need not exist.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:       path,
		entries:    make(map[string]pref),
		overridden: make(map[string]bool),
	}, nil
}

func (dsk *Disk) String() string {
	keys := dsk.sortedKeys()

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, KeySep, dsk.entries[k]))
	}
	return s.String()
}

func (dsk *Disk) sortedKeys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Add preference value to the disk. If the current command line group has a
// value for the key then it is applied immediately.
func (dsk *Disk) Add(key string, p pref) error {
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}

	dsk.entries[key] = p

	return dsk.applyCommandLine(key)
}

func (dsk *Disk) applyCommandLine(key string) error {
	if ok, v := GetCommandLinePref(key); ok {
		if err := dsk.entries[key].Set(v); err != nil {
			return curated.Errorf(DiskError, err)
		}
		dsk.overridden[key] = true
	}
	return nil
}

// Reset all preferences added to the disk to their zero value. Note that
// this does not affect the file on disk until Save() is called.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.sortedKeys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return curated.Errorf(DiskError, err)
		}
	}
	return nil
}

// readFile returns the contents of the preferences file as key/value
// strings. A missing file is not an error and results in an empty map.
func (dsk *Disk) readFile() (map[string]string, error) {
	data := make(map[string]string)

	f, err := os.Open(dsk.path)
	if err != nil {
		if os.IsNotExist(err) {
			return data, nil
		}
		return nil, curated.Errorf(DiskError, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)

	// the first line must be the warning boilerplate
	if !scanner.Scan() {
		return data, scanner.Err()
	}
	if scanner.Text() != WarningBoilerPlate {
		return nil, curated.Errorf(DiskError, fmt.Sprintf("not a valid prefs file (%s)", dsk.path))
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}

		k, v, ok := strings.Cut(line, KeySep)
		if !ok {
			return nil, curated.Errorf(MalformedLine, dsk.path, line)
		}
		data[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(DiskError, err)
	}

	return data, nil
}

// Load preferences from disk. Keys in the file that have not been added to
// the Disk are ignored. Values that were overridden by the command line are
// not replaced by the value on disk.
func (dsk *Disk) Load() error {
	data, err := dsk.readFile()
	if err != nil {
		return err
	}

	for k, v := range data {
		p, ok := dsk.entries[k]
		if !ok || dsk.overridden[k] {
			continue
		}
		if err := p.Set(v); err != nil {
			return curated.Errorf(DiskError, err)
		}
	}

	return nil
}

// Save preferences to disk. Entries in the existing file that do not belong
// to this Disk are preserved. Overridden values are not written and the
// existing value in the file, if any, is kept.
func (dsk *Disk) Save() error {
	data, err := dsk.readFile()
	if err != nil {
		return err
	}

	for k, p := range dsk.entries {
		if dsk.overridden[k] {
			continue
		}
		data[k] = p.String()
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f, err := os.Create(dsk.path)
	if err != nil {
		return curated.Errorf(DiskError, err)
	}

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, WarningBoilerPlate)
	for _, k := range keys {
		fmt.Fprintf(w, "%s%s%s\n", k, KeySep, data[k])
	}

	if err := w.Flush(); err != nil {
		f.Close()
		return curated.Errorf(DiskError, err)
	}

	if err := f.Close(); err != nil {
		return curated.Errorf(DiskError, err)
	}

	return nil
}

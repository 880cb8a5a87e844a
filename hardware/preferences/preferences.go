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

package preferences

import (
	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/paths"
	"github.com/jetsetilly/gopher8080/prefs"
)

// default values for the hardware preferences.
const (
	DefaultMemorySize   = 0x4000
	DefaultOrigin       = 0x0000
	DefaultStackTop     = 0x2400
	DefaultUndocumented = true
)

// the largest memory size. the full 16 bit address space
const maxMemorySize = 0x10000

// Sentinel error patterns.
const (
	// a single value outside of the range that makes sense for it
	ValueError = "preferences: %s of %#04x is out of range"

	// origin or stack top outside of the configured memory size
	LayoutError = "preferences: %s of %#04x is outside memory of %#04x bytes"
)

// the name of the file in the resource directory where the preferences are
// stored.
const prefsFile = "preferences"

// Preferences defines and collates all the preference values used by the
// hardware package.
type Preferences struct {
	dsk *prefs.Disk

	// number of bytes of RAM in the machine. counting from address zero
	MemorySize *prefs.Int

	// address at which program images are loaded and at which the CPU starts
	// execution after a reset
	Origin *prefs.Int

	// initial value of the stack pointer
	StackTop *prefs.Int

	// undocumented opcodes execute as the instruction they alias. if false
	// then they are treated as unimplemented instructions
	Undocumented prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. Values are loaded from the preferences file in the resource path.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath(prefsFile)
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromPath(pth)
}

// NewPreferencesFromPath is like NewPreferences() but with an explicit path to
// the preferences file.
func NewPreferencesFromPath(pth string) (*Preferences, error) {
	p := &Preferences{
		MemorySize: prefs.NewHexInt(),
		Origin:     prefs.NewHexInt(),
		StackTop:   prefs.NewHexInt(),
	}

	p.MemorySize.SetHookPre(func(v prefs.Value) error {
		if n := v.(int); n <= 0 || n > maxMemorySize {
			return curated.Errorf(ValueError, "memory size", n)
		}
		return nil
	})
	p.Origin.SetHookPre(func(v prefs.Value) error {
		if n := v.(int); n < 0 || n >= maxMemorySize {
			return curated.Errorf(ValueError, "origin", n)
		}
		return nil
	})

	// a stack top of zero would wrap on the first push and so is no more
	// useful than the top of the address space
	p.StackTop.SetHookPre(func(v prefs.Value) error {
		if n := v.(int); n < 0 || n >= maxMemorySize {
			return curated.Errorf(ValueError, "stack top", n)
		}
		return nil
	})

	p.SetDefaults()

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("memory.size", p.MemorySize)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("memory.origin", p.Origin)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("cpu.stacktop", p.StackTop)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("cpu.undocumented", &p.Undocumented)
	if err != nil {
		return nil, err
	}

	err = p.Load()
	if err != nil {
		return nil, err
	}

	return p, nil
}

// Validate checks that the origin and stack top lie within the configured
// memory size. Each value on its own is checked when it is set but the
// relationship between the values can only be checked once they are all
// known.
func (p *Preferences) Validate() error {
	size := p.Size()
	if origin := p.Origin.Get().(int); origin >= size {
		return curated.Errorf(LayoutError, "origin", origin, size)
	}
	if top := p.StackTop.Get().(int); top > size {
		return curated.Errorf(LayoutError, "stack top", top, size)
	}
	return nil
}

// SetDefaults reverts all preferences to the default values. Note that
// command line overrides applied by NewPreferences() are also reverted.
func (p *Preferences) SetDefaults() {
	// errors from Set() can't happen with these types of value
	_ = p.MemorySize.Set(DefaultMemorySize)
	_ = p.Origin.Set(DefaultOrigin)
	_ = p.StackTop.Set(DefaultStackTop)
	_ = p.Undocumented.Set(DefaultUndocumented)
}

// Load current hardware preferences from disk. The loaded values are
// validated.
func (p *Preferences) Load() error {
	if err := p.dsk.Load(); err != nil {
		return err
	}
	return p.Validate()
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Size returns the memory size preference as an int.
func (p *Preferences) Size() int {
	return p.MemorySize.Get().(int)
}

// OriginAddress returns the origin preference as an address.
func (p *Preferences) OriginAddress() uint16 {
	return uint16(p.Origin.Get().(int))
}

// StackTopAddress returns the stack top preference as an address.
func (p *Preferences) StackTopAddress() uint16 {
	return uint16(p.StackTop.Get().(int))
}

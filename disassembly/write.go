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

package disassembly

import (
	"fmt"
	"io"
	"strings"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	for _, e := range dsm.Entries {
		if err := dsm.WriteEntry(output, attr, e); err != nil {
			return err
		}
	}
	return nil
}

// WriteEntry writes a single Entry to io.Writer.
func (dsm *Disassembly) WriteEntry(output io.Writer, attr WriteAttr, e *Entry) error {
	s := strings.Builder{}

	s.WriteString(e.Address)
	s.WriteString("  ")

	if attr.ByteCode {
		s.WriteString(fmt.Sprintf("%-8s  ", e.Bytecode))
	}

	s.WriteString(fmt.Sprintf("%-4s %s", e.Operator, e.Operand))

	line := strings.TrimRight(s.String(), " ")
	if e.Level == EntryLevelIncomplete {
		line = fmt.Sprintf("%s  ; %s", line, e.Level)
	}

	_, err := io.WriteString(output, line+"\n")
	return err
}

// GrepScope limits the scope of the search.
type GrepScope int

// List of available scopes.
const (
	GrepOperator GrepScope = iota
	GrepOperand
	GrepAll
)

// Grep searches the disassembly for the specified search string and writes
// every matching entry to output.
func (dsm *Disassembly) Grep(output io.Writer, scope GrepScope, search string, caseSensitive bool) error {
	if !caseSensitive {
		search = strings.ToUpper(search)
	}

	for _, e := range dsm.Entries {
		var s string

		switch scope {
		case GrepOperator:
			s = e.Operator
		case GrepOperand:
			s = e.Operand
		case GrepAll:
			s = e.String()
		}

		if !caseSensitive {
			s = strings.ToUpper(s)
		}

		if strings.Contains(s, search) {
			if err := dsm.WriteEntry(output, WriteAttr{ByteCode: true}, e); err != nil {
				return err
			}
		}
	}

	return nil
}

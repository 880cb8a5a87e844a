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

package console

import (
	"github.com/jetsetilly/gopher8080/logger"
	"github.com/pkg/term"
)

// Terminal is the host terminal put into cbreak mode. Keys are delivered as
// they are pressed, without waiting for the return key.
//
// Terminal implements io.Reader and io.Writer and is suitable for use as
// the input and output of a Console.
type Terminal struct {
	t *term.Term
}

// OpenTerminal opens the controlling terminal of the process in cbreak mode.
func OpenTerminal() (*Terminal, error) {
	t, err := term.Open("/dev/tty", term.CBreakMode)
	if err != nil {
		return nil, err
	}
	logger.Log(logger.Allow, "console", "terminal opened in cbreak mode")
	return &Terminal{t: t}, nil
}

// Read implements the io.Reader interface.
func (trm *Terminal) Read(p []byte) (int, error) {
	return trm.t.Read(p)
}

// Write implements the io.Writer interface.
func (trm *Terminal) Write(p []byte) (int, error) {
	return trm.t.Write(p)
}

// Close restores the terminal to the mode it was in before OpenTerminal()
// was called and then closes it.
func (trm *Terminal) Close() error {
	if err := trm.t.Restore(); err != nil {
		return err
	}
	return trm.t.Close()
}

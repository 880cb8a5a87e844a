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
	"io"
	"sync"

	"github.com/jetsetilly/gopher8080/hardware/ports"
	"github.com/jetsetilly/gopher8080/logger"
)

// bits in the value returned from the status port
const (
	StatusInputReady  = 0x01
	StatusOutputReady = 0x02
)

// the maximum number of bytes buffered from the input before the reader
// goroutine blocks
const inputBufferLen = 256

// Console is a character device with a status port and a data port. Reading
// the data port returns the next byte from the input, or zero if there is no
// input. Writing to the data port sends the byte to the output.
//
// The input is read by a goroutine and buffered, so that the CPU is never
// blocked when reading from the data port.
type Console struct {
	statusPort uint8
	dataPort   uint8

	input  chan uint8
	output io.Writer

	// the error that ended the reading of input. io.EOF is not recorded
	crit    sync.Mutex
	readErr error
}

// NewConsole is the preferred method of initialisation for the Console type.
func NewConsole(statusPort uint8, dataPort uint8, input io.Reader, output io.Writer) *Console {
	con := &Console{
		statusPort: statusPort,
		dataPort:   dataPort,
		input:      make(chan uint8, inputBufferLen),
		output:     output,
	}

	go con.read(input)

	return con
}

func (con *Console) read(input io.Reader) {
	defer close(con.input)

	b := make([]byte, 1)
	for {
		n, err := input.Read(b)
		if n > 0 {
			con.input <- b[0]
		}
		if err != nil {
			if err != io.EOF {
				con.crit.Lock()
				con.readErr = err
				con.crit.Unlock()
				logger.Logf(logger.Allow, "console", "input ended: %v", err)
			}
			return
		}
	}
}

// Attach the console to the status and data ports of the mux.
func (con *Console) Attach(mx *ports.Mux) error {
	if err := mx.Attach(con.statusPort, con); err != nil {
		return err
	}
	if err := mx.Attach(con.dataPort, con); err != nil {
		mx.Detach(con.statusPort)
		return err
	}
	logger.Logf(logger.Allow, "console", "attached to ports %#02x (status) and %#02x (data)", con.statusPort, con.dataPort)
	return nil
}

// Err returns the error that stopped the input from being read, if any.
func (con *Console) Err() error {
	con.crit.Lock()
	defer con.crit.Unlock()
	return con.readErr
}

// In implements the ports.Bus interface.
func (con *Console) In(port uint8) uint8 {
	switch port {
	case con.statusPort:
		if len(con.input) > 0 {
			return StatusOutputReady | StatusInputReady
		}
		return StatusOutputReady
	case con.dataPort:
		select {
		case b, ok := <-con.input:
			if ok {
				return b
			}
		default:
		}
		return 0
	}
	return ports.Unconnected
}

// Out implements the ports.Bus interface.
func (con *Console) Out(port uint8, value uint8) {
	if port != con.dataPort {
		return
	}
	if _, err := con.output.Write([]byte{value}); err != nil {
		logger.Logf(logger.Allow, "console", "output: %v", err)
	}
}

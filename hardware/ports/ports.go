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

package ports

import (
	"sync"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/logger"
)

// Bus defines the operations for port input/output when accessed from the
// CPU. Both operations are synchronous. A device that produces data
// asynchronously must buffer it and answer when polled.
type Bus interface {
	In(port uint8) uint8
	Out(port uint8, value uint8)
}

// Unconnected is the value returned by an input operation on a port with no
// device attached.
const Unconnected = 0xff

// Null is a Bus with nothing attached to any port.
type Null struct{}

// In implements the Bus interface.
func (Null) In(_ uint8) uint8 {
	return Unconnected
}

// Out implements the Bus interface.
func (Null) Out(_ uint8, _ uint8) {
}

// PortError is returned by Attach() if a device is already attached to the
// port.
const PortError = "ports: port %#02x already has a device attached"

// Mux routes port operations to attached devices. The same device may be
// attached to more than one port.
type Mux struct {
	crit    sync.Mutex
	devices [256]Bus

	// ports with nothing attached are logged the first time they are used
	warned [256]bool
}

// NewMux is the preferred method of initialisation for the Mux type.
func NewMux() *Mux {
	return &Mux{}
}

// Attach a device to a port.
func (mx *Mux) Attach(port uint8, dev Bus) error {
	mx.crit.Lock()
	defer mx.crit.Unlock()

	if mx.devices[port] != nil {
		return curated.Errorf(PortError, port)
	}
	mx.devices[port] = dev
	mx.warned[port] = false

	return nil
}

// Detach whatever device is attached to the port. Does nothing if the port
// has nothing attached.
func (mx *Mux) Detach(port uint8) {
	mx.crit.Lock()
	defer mx.crit.Unlock()
	mx.devices[port] = nil
}

func (mx *Mux) device(port uint8, direction string) Bus {
	mx.crit.Lock()
	defer mx.crit.Unlock()

	if dev := mx.devices[port]; dev != nil {
		return dev
	}

	if !mx.warned[port] {
		mx.warned[port] = true
		logger.Logf(logger.Allow, "ports", "%s on unmapped port %#02x", direction, port)
	}

	return nil
}

// In implements the Bus interface.
func (mx *Mux) In(port uint8) uint8 {
	if dev := mx.device(port, "IN"); dev != nil {
		return dev.In(port)
	}
	return Unconnected
}

// Out implements the Bus interface.
func (mx *Mux) Out(port uint8, value uint8) {
	if dev := mx.device(port, "OUT"); dev != nil {
		dev.Out(port, value)
	}
}

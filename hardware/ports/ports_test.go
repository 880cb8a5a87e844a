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

package ports_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/hardware/ports"
	"github.com/jetsetilly/gopher8080/logger"
	"github.com/jetsetilly/gopher8080/test"
)

type latch struct {
	value uint8
	outs  int
}

func (l *latch) In(_ uint8) uint8 {
	return l.value
}

func (l *latch) Out(_ uint8, value uint8) {
	l.value = value
	l.outs++
}

func TestNull(t *testing.T) {
	var n ports.Null
	test.ExpectEquality(t, n.In(0x00), uint8(ports.Unconnected))
	n.Out(0x00, 0x10)
	test.ExpectEquality(t, n.In(0x00), uint8(ports.Unconnected))
}

func TestMux(t *testing.T) {
	mx := ports.NewMux()

	l := &latch{}
	test.ExpectSuccess(t, mx.Attach(0x10, l))
	test.ExpectSuccess(t, mx.Attach(0x11, l))

	// port already in use
	err := mx.Attach(0x10, &latch{})
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, ports.PortError))

	mx.Out(0x10, 0x42)
	test.ExpectEquality(t, mx.In(0x11), uint8(0x42))
	test.ExpectEquality(t, l.outs, 1)

	// unmapped ports
	mx.Out(0x20, 0x01)
	test.ExpectEquality(t, mx.In(0x20), uint8(ports.Unconnected))
	test.ExpectEquality(t, l.outs, 1)

	mx.Detach(0x10)
	test.ExpectEquality(t, mx.In(0x10), uint8(ports.Unconnected))
	test.ExpectSuccess(t, mx.Attach(0x10, l))
}

func TestUnmappedLoggedOnce(t *testing.T) {
	logger.Clear()

	mx := ports.NewMux()
	for i := 0; i < 10; i++ {
		mx.In(0x30)
	}

	var b bytes.Buffer
	logger.Write(&b)
	test.ExpectEquality(t, strings.Count(b.String(), "unmapped port 0x30"), 1)
	test.ExpectEquality(t, strings.Contains(b.String(), "repeat"), false)
}

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

package dac

import (
	"io"
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher8080/curated"
	"github.com/jetsetilly/gopher8080/hardware/ports"
	"github.com/jetsetilly/gopher8080/logger"
)

// DefaultSampleRate is the sample rate of the WAV file if no other rate is
// specified.
const DefaultSampleRate = 8000

// DAC is an 8 bit digital-to-analogue converter attached to a single port.
// Every value written to the port is recorded as one unsigned 8 bit sample.
// The samples are buffered in memory in their entirety and written to disk
// when Close() is called.
//
// Reading from the port returns the most recent value written to it.
type DAC struct {
	port       uint8
	filename   string
	sampleRate int

	last    uint8
	samples []int
}

// NewDAC is the preferred method of initialisation for the DAC type.
func NewDAC(port uint8, filename string, sampleRate int) *DAC {
	if sampleRate <= 0 {
		sampleRate = DefaultSampleRate
	}
	return &DAC{
		port:       port,
		filename:   filename,
		sampleRate: sampleRate,
		samples:    make([]int, 0, sampleRate),
	}
}

// Attach the DAC to the mux.
func (dac *DAC) Attach(mx *ports.Mux) error {
	if err := mx.Attach(dac.port, dac); err != nil {
		return err
	}
	logger.Logf(logger.Allow, "dac", "attached to port %#02x (recording to %s)", dac.port, dac.filename)
	return nil
}

// In implements the ports.Bus interface.
func (dac *DAC) In(_ uint8) uint8 {
	return dac.last
}

// Out implements the ports.Bus interface.
func (dac *DAC) Out(_ uint8, value uint8) {
	dac.last = value
	dac.samples = append(dac.samples, int(value))
}

// NumSamples returns the number of samples recorded so far.
func (dac *DAC) NumSamples() int {
	return len(dac.samples)
}

// Close writes the recorded samples to the WAV file. Nothing is written if no
// samples have been recorded.
func (dac *DAC) Close() (rerr error) {
	if len(dac.samples) == 0 {
		logger.Log(logger.Allow, "dac", "no samples recorded")
		return nil
	}

	f, err := os.Create(dac.filename)
	if err != nil {
		return curated.Errorf("dac: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("dac: %v", err)
		}
	}()

	if err := dac.encode(f); err != nil {
		return err
	}

	logger.Logf(logger.Allow, "dac", "wrote %d samples to %s", len(dac.samples), dac.filename)

	return nil
}

func (dac *DAC) encode(w io.WriteSeeker) error {
	// 8 bit, mono, PCM
	enc := wav.NewEncoder(w, dac.sampleRate, 8, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  dac.sampleRate,
		},
		Data:           dac.samples,
		SourceBitDepth: 8,
	}

	if err := enc.Write(buf); err != nil {
		return curated.Errorf("dac: %v", err)
	}

	if err := enc.Close(); err != nil {
		return curated.Errorf("dac: %v", err)
	}

	return nil
}

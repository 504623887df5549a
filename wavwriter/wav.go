// This file is part of Chipper.
//
// Chipper is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Chipper is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Chipper.  If not, see <https://www.gnu.org/licenses/>.

// Package wavwriter allows writing of the sound timer output to disk as a WAV
// file. Note that audio data is buffered in memory in its entirity, and
// written to disk when EndMixing() is called. It is therefore probably only
// suitable for testing purposes.
package wavwriter

import (
	"os"
	"sync"

	"github.com/chipper-emu/chipper/curated"
	"github.com/chipper-emu/chipper/hardware/timers"
	"github.com/chipper-emu/chipper/logger"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Parameters of the WAV file.
const (
	SampleRate = 22050
	BitDepth   = 16
	Frequency  = 441
	Amplitude  = 0x2000
)

// number of samples for every tick of the timers
const samplesPerTick = SampleRate / timers.Frequency

// number of samples for half a period of the tone
const halfPeriod = SampleRate / (Frequency * 2)

// WavWriter implements the gui.AudioSink interface.
type WavWriter struct {
	filename string

	crit   sync.Mutex
	buffer []int
	phase  int
}

// NewWavWriter is the preferred method of initialisation for the WavWriter
// type.
func NewWavWriter(filename string) (*WavWriter, error) {
	if filename == "" {
		return nil, curated.Errorf("wavwriter: %v", "no filename")
	}
	aw := &WavWriter{
		filename: filename,
		buffer:   make([]int, 0),
	}
	return aw, nil
}

// SetSound implements the gui.AudioSink interface. It adds one timer tick of
// audio to the buffer.
func (aw *WavWriter) SetSound(active bool) error {
	aw.crit.Lock()
	defer aw.crit.Unlock()

	// the tone always starts at the beginning of a period
	if !active {
		aw.phase = 0
		aw.buffer = append(aw.buffer, make([]int, samplesPerTick)...)
		return nil
	}

	for range samplesPerTick {
		v := Amplitude
		if aw.phase >= halfPeriod {
			v = -Amplitude
		}
		aw.buffer = append(aw.buffer, v)

		aw.phase++
		if aw.phase >= halfPeriod*2 {
			aw.phase = 0
		}
	}

	return nil
}

// Len returns the number of samples in the buffer.
func (aw *WavWriter) Len() int {
	aw.crit.Lock()
	defer aw.crit.Unlock()
	return len(aw.buffer)
}

// EndMixing writes the buffered audio to the file.
func (aw *WavWriter) EndMixing() (rerr error) {
	aw.crit.Lock()
	defer aw.crit.Unlock()

	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, SampleRate, BitDepth, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  SampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: BitDepth,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}

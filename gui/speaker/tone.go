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

// Package speaker plays a tone while the sound timer of the machine is
// active. The Tone type generates the square wave and can be used without an
// audio device.
package speaker

import (
	"encoding/binary"
	"sync/atomic"
)

// Default parameters of the tone.
const (
	SampleRate = 44100
	Frequency  = 440
	Volume     = 0x1800
)

// Tone is an io.Reader that produces signed 16 bit little endian mono
// samples. Samples are silent unless the tone is on.
type Tone struct {
	on atomic.Bool

	// samples per half period of the square wave
	half int

	// position in the current period. only accessed by Read()
	phase int
}

// NewTone is the preferred method of initialisation for the Tone type.
func NewTone(sampleRate int, frequency int) *Tone {
	return &Tone{
		half: max(sampleRate/(frequency*2), 1),
	}
}

// SetSound turns the tone on or off. Implements the gui.AudioSink interface.
func (t *Tone) SetSound(active bool) error {
	t.on.Store(active)
	return nil
}

// IsOn returns true if the tone is on.
func (t *Tone) IsOn() bool {
	return t.on.Load()
}

// Read implements the io.Reader interface. The reader never ends.
func (t *Tone) Read(p []byte) (int, error) {
	n := len(p) &^ 1
	on := t.on.Load()

	for i := 0; i < n; i += 2 {
		var v int16
		if on {
			v = Volume
			if t.phase >= t.half {
				v = -Volume
			}
		}
		binary.LittleEndian.PutUint16(p[i:], uint16(v))

		t.phase++
		if t.phase >= t.half*2 {
			t.phase = 0
		}
	}

	return n, nil
}

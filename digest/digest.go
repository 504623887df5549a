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

// Package digest creates fingerprints of the output of the machine. Each
// new value is chained with the previous fingerprint so that the final value
// represents the entire sequence of output. The fingerprints are useful for
// checking that a program produces the same output between versions of the
// emulator.
//
// Video implements the gui.Renderer interface and Audio implements the
// gui.AudioSink interface. Repeated values are not added to the chain, so the
// fingerprint does not depend on the number of times the display is refreshed.
package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/chipper-emu/chipper/hardware/display"
	"github.com/chipper-emu/chipper/hardware/input"
)

// Digest implementations create a fingerprint of the output.
type Digest interface {
	Hash() string
	ResetDigest()
}

// Video is a fingerprint of the sequence of distinct frames.
type Video struct {
	crit    sync.Mutex
	digest  [sha1.Size]byte
	prev    display.Frame
	started bool
	frames  int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{}
}

// Render implements the gui.Renderer interface. The state of the keypad is
// not part of the fingerprint.
func (dig *Video) Render(frame display.Frame, _ [input.NumKeys]bool) error {
	dig.crit.Lock()
	defer dig.crit.Unlock()

	if dig.started && frame == dig.prev {
		return nil
	}
	dig.started = true
	dig.prev = frame
	dig.frames++

	// the previous fingerprint is at the head of the data
	b := make([]byte, sha1.Size, sha1.Size+len(frame)*8)
	copy(b, dig.digest[:])
	for _, r := range frame {
		b = binary.BigEndian.AppendUint64(b, r)
	}
	dig.digest = sha1.Sum(b)

	return nil
}

// Frames returns the number of distinct frames in the fingerprint.
func (dig *Video) Frames() int {
	dig.crit.Lock()
	defer dig.crit.Unlock()
	return dig.frames
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	dig.crit.Lock()
	defer dig.crit.Unlock()
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	dig.crit.Lock()
	defer dig.crit.Unlock()
	dig.digest = [sha1.Size]byte{}
	dig.prev = display.Frame{}
	dig.started = false
	dig.frames = 0
}

// Audio is a fingerprint of the changes to the state of the sound timer. Each
// change is recorded with the number of ticks since the previous change.
type Audio struct {
	crit   sync.Mutex
	digest [sha1.Size]byte
	active bool
	ticks  uint64
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	return &Audio{}
}

// SetSound implements the gui.AudioSink interface.
func (dig *Audio) SetSound(active bool) error {
	dig.crit.Lock()
	defer dig.crit.Unlock()

	dig.ticks++
	if active == dig.active {
		return nil
	}
	dig.active = active

	b := make([]byte, sha1.Size, sha1.Size+9)
	copy(b, dig.digest[:])
	b = binary.BigEndian.AppendUint64(b, dig.ticks)
	if active {
		b = append(b, 1)
	} else {
		b = append(b, 0)
	}
	dig.digest = sha1.Sum(b)
	dig.ticks = 0

	return nil
}

// Hash implements the Digest interface.
func (dig *Audio) Hash() string {
	dig.crit.Lock()
	defer dig.crit.Unlock()
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Audio) ResetDigest() {
	dig.crit.Lock()
	defer dig.crit.Unlock()
	dig.digest = [sha1.Size]byte{}
	dig.active = false
	dig.ticks = 0
}

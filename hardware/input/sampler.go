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

package input

import (
	"sync"

	"github.com/chipper-emu/chipper/logger"
)

// Source is an observation of the key presented by the host. Sample() must
// not block. The ok value is false if no key is presented.
type Source interface {
	Sample() (raw byte, ok bool, err error)
}

// Sampler takes observations from a Source and applies them to a Keypad.
type Sampler struct {
	// the keypad is safe for concurrent use and is not protected by crit
	keypad *Keypad

	crit   sync.Mutex
	source Source
	prev   Code
	onExit func()
}

// NewSampler is the preferred method of initialisation for the Sampler type.
// The onExit function is called whenever the Exit code is observed and may
// be nil.
func NewSampler(keypad *Keypad, onExit func()) *Sampler {
	return &Sampler{
		keypad: keypad,
		prev:   NoKey,
		onExit: onExit,
	}
}

// SetSource changes the source of observations. A nil source means that no
// key is ever presented.
func (smp *Sampler) SetSource(source Source) {
	smp.crit.Lock()
	defer smp.crit.Unlock()
	smp.source = source
}

// SetExit changes the function called when the Exit code is observed.
func (smp *Sampler) SetExit(onExit func()) {
	smp.crit.Lock()
	defer smp.crit.Unlock()
	smp.onExit = onExit
}

// Sample takes a single observation from the source and updates the keypad.
// The exit function is called after the keypad has been updated.
func (smp *Sampler) Sample() error {
	onExit, err := smp.sample()
	if onExit != nil {
		onExit()
	}
	return err
}

// sample returns the exit function if the Exit code was observed
func (smp *Sampler) sample() (func(), error) {
	smp.crit.Lock()
	defer smp.crit.Unlock()

	if smp.source == nil {
		return nil, nil
	}

	raw, ok, err := smp.source.Sample()
	if err != nil {
		return nil, err
	}

	code := NoKey
	if ok {
		code = Lookup(raw)
	}

	if code == smp.prev {
		return nil, nil
	}

	if smp.prev.IsKey() {
		_ = smp.keypad.Release(uint8(smp.prev))
	}

	if code == Exit {
		smp.prev = NoKey
		logger.Log(logger.Allow, "input", "exit key observed")
		return smp.onExit, nil
	}

	if code.IsKey() {
		_ = smp.keypad.Press(uint8(code))
	}
	smp.prev = code

	return nil, nil
}

// Refresh takes a new observation from the source. Part of the interface
// required by the CPU.
func (smp *Sampler) Refresh() error {
	return smp.Sample()
}

// IsPressed returns the state of a key of the keypad.
func (smp *Sampler) IsPressed(key uint8) (bool, error) {
	return smp.keypad.IsPressed(key)
}

// LastKey returns the most recently pressed key of the keypad.
func (smp *Sampler) LastKey() (uint8, bool) {
	return smp.keypad.LastKey()
}

// ResetLastKey clears the last key latch of the keypad.
func (smp *Sampler) ResetLastKey() {
	smp.keypad.ResetLastKey()
}

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

	"github.com/chipper-emu/chipper/curated"
)

// NumKeys is the number of keys on the keypad.
const NumKeys = 16

// KeyRangeError is returned when a key index is outside the keypad.
const KeyRangeError = "input: key out of range: %d"

// Keypad is the pressed state of the keys of the machine.
type Keypad struct {
	crit sync.Mutex

	keys [NumKeys]bool

	lastKey   uint8
	lastValid bool
}

// NewKeypad is the preferred method of initialisation for the Keypad type.
func NewKeypad() *Keypad {
	return &Keypad{}
}

// Press marks the key as pressed and latches it as the last key.
func (kp *Keypad) Press(key uint8) error {
	if key >= NumKeys {
		return curated.Errorf(KeyRangeError, key)
	}
	kp.crit.Lock()
	defer kp.crit.Unlock()
	kp.keys[key] = true
	kp.lastKey = key
	kp.lastValid = true
	return nil
}

// Release marks the key as not pressed. The last key latch is not changed.
func (kp *Keypad) Release(key uint8) error {
	if key >= NumKeys {
		return curated.Errorf(KeyRangeError, key)
	}
	kp.crit.Lock()
	defer kp.crit.Unlock()
	kp.keys[key] = false
	return nil
}

// IsPressed returns the state of the key.
func (kp *Keypad) IsPressed(key uint8) (bool, error) {
	if key >= NumKeys {
		return false, curated.Errorf(KeyRangeError, key)
	}
	kp.crit.Lock()
	defer kp.crit.Unlock()
	return kp.keys[key], nil
}

// LastKey returns the most recently pressed key since the last call to
// ResetLastKey(). Returns false if no key has been pressed.
func (kp *Keypad) LastKey() (uint8, bool) {
	kp.crit.Lock()
	defer kp.crit.Unlock()
	return kp.lastKey, kp.lastValid
}

// ResetLastKey clears the last key latch.
func (kp *Keypad) ResetLastKey() {
	kp.crit.Lock()
	defer kp.crit.Unlock()
	kp.lastValid = false
}

// State returns a copy of the state of all keys.
func (kp *Keypad) State() [NumKeys]bool {
	kp.crit.Lock()
	defer kp.crit.Unlock()
	return kp.keys
}

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

package cpu

import (
	"context"
	"time"

	"github.com/chipper-emu/chipper/curated"
	"github.com/chipper-emu/chipper/logger"
)

// refresh takes a new observation of the keyboard. a failure of the input
// source is not a fault of the program so the error is logged and the
// current state of the keypad is used
func (mc *CPU) refresh() {
	if mc.keys == nil {
		return
	}
	if err := mc.keys.Refresh(); err != nil {
		logger.Logf(logger.Allow, "cpu", "keypad refresh: %v", err)
	}
}

func (mc *CPU) isPressed(key uint8) (bool, error) {
	if key >= NumRegisters {
		return false, curated.Errorf(KeyRangeError, key)
	}
	if mc.keys == nil {
		return false, nil
	}
	mc.refresh()
	return mc.keys.IsPressed(key)
}

// waitForKey polls the keypad until a key is pressed or the context is
// cancelled. no lock is held between polls
func (mc *CPU) waitForKey(ctx context.Context) (uint8, error) {
	if mc.keys != nil {
		mc.keys.ResetLastKey()
	}

	poll := time.NewTicker(max(mc.KeyPoll, time.Microsecond))
	defer poll.Stop()

	for {
		if mc.keys != nil {
			mc.refresh()
			if key, ok := mc.keys.LastKey(); ok {
				return key, nil
			}
		}

		select {
		case <-ctx.Done():
			return 0, curated.Errorf(Interrupted)
		case <-poll.C:
		}
	}
}

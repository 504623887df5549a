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

package timers_test

import (
	"testing"

	"github.com/chipper-emu/chipper/hardware/timers"
	"github.com/chipper-emu/chipper/test"
)

func TestTick(t *testing.T) {
	tmr := timers.NewTimers()
	test.ExpectFailure(t, tmr.Tick())

	tmr.SetDelay(3)
	tmr.SetSound(2)
	test.ExpectSuccess(t, tmr.SoundActive())
	test.ExpectEquality(t, tmr.String(), "DT=3 ST=2")

	test.ExpectSuccess(t, tmr.Tick())
	test.ExpectFailure(t, tmr.Tick())
	test.ExpectEquality(t, tmr.Delay(), uint8(1))
	test.ExpectEquality(t, tmr.Sound(), uint8(0))

	// counters stop at zero
	tmr.Tick()
	tmr.Tick()
	test.ExpectEquality(t, tmr.Delay(), uint8(0))
	test.ExpectEquality(t, tmr.Sound(), uint8(0))

	tmr.SetDelay(10)
	tmr.Reset()
	test.ExpectEquality(t, tmr.Delay(), uint8(0))
}

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

package govern_test

import (
	"testing"

	"github.com/chipper-emu/chipper/govern"
	"github.com/chipper-emu/chipper/test"
)

func TestStateString(t *testing.T) {
	test.ExpectEquality(t, govern.Initialising.String(), "Initialising")
	test.ExpectEquality(t, govern.Running.String(), "Running")
	test.ExpectEquality(t, govern.Halted.String(), "Halted")
	test.ExpectEquality(t, govern.Ending.String(), "Ending")
	test.ExpectEquality(t, govern.State(99).String(), "")
	test.ExpectEquality(t, govern.State(-1).String(), "")
}

func TestStateClasses(t *testing.T) {
	test.ExpectSuccess(t, govern.Running.Active())
	test.ExpectSuccess(t, govern.Paused.Active())
	test.ExpectFailure(t, govern.Initialising.Active())
	test.ExpectFailure(t, govern.Halted.Active())

	test.ExpectSuccess(t, govern.Halted.Final())
	test.ExpectSuccess(t, govern.Ending.Final())
	test.ExpectFailure(t, govern.Running.Final())
	test.ExpectFailure(t, govern.Initialising.Final())
}

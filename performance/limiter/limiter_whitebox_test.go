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

package limiter

import (
	"testing"
	"time"

	"github.com/chipper-emu/chipper/test"
)

// count the events allowed in the second following the limiter's epoch when
// the limiter is consulted every step of simulated time. the final
// consultation is on the second boundary
func eventsInSecond(lim *Limiter, step time.Duration) int {
	start := lim.epoch
	end := start.Add(time.Second)
	n := 0
	for now := start; !now.After(end); now = now.Add(step) {
		for {
			if _, ok := lim.take(now); !ok {
				break
			}
			n++
		}
	}
	return n
}

func TestExactRate(t *testing.T) {
	for _, rate := range []int{1, 60, 700, 1000, 1500, 1999, 2500, 100000} {
		lim := NewLimiter(rate)
		test.ExpectEquality(t, eventsInSecond(lim, time.Millisecond), rate, rate)

		// the epoch has moved on by a second and the count is the same
		test.ExpectEquality(t, eventsInSecond(lim, time.Millisecond), rate, rate)
	}
}

func TestCoarseConsultation(t *testing.T) {
	// a caller that can only sleep in 10ms steps still meets the rate
	lim := NewLimiter(1500)
	test.ExpectEquality(t, eventsInSecond(lim, 10*time.Millisecond), 1500)
	test.ExpectEquality(t, eventsInSecond(lim, 10*time.Millisecond), 1500)
}

func TestBacklog(t *testing.T) {
	lim := NewLimiter(1000)
	start := lim.epoch

	// a caller that returns after a long pause is allowed one event and not
	// the second's worth of events that were due
	now := start.Add(time.Second)
	_, ok := lim.take(now)
	test.ExpectSuccess(t, ok)
	_, ok = lim.take(now)
	test.ExpectFailure(t, ok)

	d, ok := lim.take(now)
	test.ExpectFailure(t, ok)
	test.ExpectEquality(t, d, time.Millisecond)

	// a short delay is caught up with
	now = now.Add(10 * time.Millisecond)
	n := 0
	for {
		if _, ok := lim.take(now); !ok {
			break
		}
		n++
	}
	test.ExpectEquality(t, n, 10)
}

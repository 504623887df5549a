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

package limiter_test

import (
	"context"
	"testing"
	"time"

	"github.com/chipper-emu/chipper/performance/limiter"
	"github.com/chipper-emu/chipper/test"
)

func TestUnlimited(t *testing.T) {
	lim := limiter.NewLimiter(0)
	defer lim.Stop()

	start := time.Now()
	for range 10000 {
		test.DemandSuccess(t, lim.Wait(context.Background()))
	}
	test.ExpectSuccess(t, time.Since(start) < time.Second)
	test.ExpectSuccess(t, lim.HasWaited())
}

func TestRate(t *testing.T) {
	lim := limiter.NewLimiter(200)
	defer lim.Stop()
	test.ExpectEquality(t, lim.Rate(), 200)

	start := time.Now()
	for range 20 {
		test.DemandSuccess(t, lim.Wait(context.Background()))
	}

	// 20 events at 200 per second is 100ms
	test.ExpectSuccess(t, time.Since(start) >= 90*time.Millisecond)
}

func TestHighRate(t *testing.T) {
	lim := limiter.NewLimiter(100000)
	defer lim.Stop()

	start := time.Now()
	for range 5000 {
		test.DemandSuccess(t, lim.Wait(context.Background()))
	}

	// 5000 events at 100000 per second is 50ms
	el := time.Since(start)
	test.ExpectSuccess(t, el >= 45*time.Millisecond, el)
}

// count the events allowed by Wait() during the window
func countEvents(t *testing.T, lim *limiter.Limiter, window time.Duration) int {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), window)
	defer cancel()

	n := 0
	for lim.Wait(ctx) == nil {
		n++
	}
	return n
}

func TestRateReached(t *testing.T) {
	for _, rate := range []int{700, 1500, 2500, 10000} {
		lim := limiter.NewLimiter(rate)
		n := countEvents(t, lim, 500*time.Millisecond)
		lim.Stop()

		// half a second at the rate. the limiter never runs ahead of the
		// clock so there is at most one event more than that
		want := rate / 2
		test.ExpectSuccess(t, n <= want+1, rate, n)
		test.ExpectApproximate(t, n, want, 0.1, rate)
	}
}

func TestCancel(t *testing.T) {
	lim := limiter.NewLimiter(1)
	defer lim.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := lim.Wait(ctx)
	test.ExpectEquality(t, err, context.Canceled)
}

func TestHasWaited(t *testing.T) {
	lim := limiter.NewLimiter(1)
	defer lim.Stop()
	test.ExpectFailure(t, lim.HasWaited())

	lim.SetLimit(0)
	test.ExpectSuccess(t, lim.HasWaited())
}

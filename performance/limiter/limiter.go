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

// Package limiter limits events to a fixed rate.
//
// A new Limiter can be created with:
//
//	lim := limiter.NewLimiter(60)
//	defer lim.Stop()
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		if err := lim.Wait(ctx); err != nil {
//			return err
//		}
//		renderImage()
//	}
//
// Events are scheduled against the wall clock. The Nth event after the limit
// was set is due N/rate seconds later, so a rate is met on average even when
// the host cannot sleep for as short a period as one event. A caller that
// falls behind is allowed to catch up but only for events that were due
// within MaxBacklog.
package limiter

import (
	"context"
	"sync"
	"time"
)

// MaxBacklog is the longest period that a late caller is allowed to catch up
// with. Events due earlier than that are forgotten.
const MaxBacklog = 50 * time.Millisecond

// Limiter will allow a fixed number of events per second. A rate of zero or
// less means that events are not limited.
type Limiter struct {
	crit sync.Mutex

	rate int

	// events are counted from the epoch. the epoch moves forward a second at
	// a time so that the count never exceeds the rate
	epoch time.Time
	count int64
}

// NewLimiter is the preferred method of initialisation for Limiter type.
func NewLimiter(rate int) *Limiter {
	lim := &Limiter{}
	lim.SetLimit(rate)
	return lim
}

// SetLimit changes the rate at which the Limiter allows events. The first
// event is allowed one period after the call.
func (lim *Limiter) SetLimit(rate int) {
	lim.crit.Lock()
	defer lim.crit.Unlock()
	lim.rate = max(rate, 0)
	lim.epoch = time.Now()
	lim.count = 0
}

// Rate returns the current limit.
func (lim *Limiter) Rate() int {
	lim.crit.Lock()
	defer lim.crit.Unlock()
	return lim.rate
}

// Stop the limiter. Subsequent calls to Wait() will not block.
func (lim *Limiter) Stop() {
	lim.crit.Lock()
	defer lim.crit.Unlock()
	lim.rate = 0
}

// due returns the time of the next event
func (lim *Limiter) due() time.Time {
	return lim.epoch.Add(time.Duration((lim.count + 1) * int64(time.Second) / int64(lim.rate)))
}

// take the next event if it is due. returns the time to wait if it is not
func (lim *Limiter) take(now time.Time) (time.Duration, bool) {
	lim.crit.Lock()
	defer lim.crit.Unlock()

	if lim.rate == 0 {
		return 0, true
	}

	due := lim.due()
	if now.Before(due) {
		return due.Sub(now), false
	}

	if now.Sub(due) > MaxBacklog {
		lim.epoch = now
		lim.count = 0
		return 0, true
	}

	lim.count++
	if lim.count >= int64(lim.rate) {
		lim.epoch = lim.epoch.Add(time.Second)
		lim.count -= int64(lim.rate)
	}
	return 0, true
}

// Wait will block until the next event is allowed or until the context is
// cancelled.
func (lim *Limiter) Wait(ctx context.Context) error {
	for {
		d, ok := lim.take(time.Now())
		if ok {
			return ctx.Err()
		}

		tmr := time.NewTimer(d)
		select {
		case <-tmr.C:
		case <-ctx.Done():
			tmr.Stop()
			return ctx.Err()
		}
	}
}

// HasWaited will return true if the next event is allowed and false if it is
// still yet to happen. The event is taken if the result is true.
func (lim *Limiter) HasWaited() bool {
	_, ok := lim.take(time.Now())
	return ok
}

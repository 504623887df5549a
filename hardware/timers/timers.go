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

// Package timers implements the delay and sound counters of the machine.
// Both counters decrease by one on every call to Tick() until they reach
// zero. The machine expects Tick() to be called at Frequency.
//
// The sound is active for as long as the sound counter is not zero.
package timers

import (
	"fmt"
	"sync"
	"time"
)

// Frequency is the rate at which the timers are expected to tick.
const Frequency = 60

// Period is the duration between ticks.
const Period = time.Second / Frequency

// Timers is the pair of counters. Safe for concurrent use.
type Timers struct {
	crit  sync.Mutex
	delay uint8
	sound uint8
}

// NewTimers is the preferred method of initialisation for the Timers type.
func NewTimers() *Timers {
	return &Timers{}
}

func (tmr *Timers) String() string {
	tmr.crit.Lock()
	defer tmr.crit.Unlock()
	return fmt.Sprintf("DT=%d ST=%d", tmr.delay, tmr.sound)
}

// Reset both counters to zero.
func (tmr *Timers) Reset() {
	tmr.crit.Lock()
	defer tmr.crit.Unlock()
	tmr.delay = 0
	tmr.sound = 0
}

// Tick decreases both counters. Returns true if the sound is active after
// the tick.
func (tmr *Timers) Tick() bool {
	tmr.crit.Lock()
	defer tmr.crit.Unlock()
	if tmr.delay > 0 {
		tmr.delay--
	}
	if tmr.sound > 0 {
		tmr.sound--
	}
	return tmr.sound > 0
}

// Delay returns the value of the delay counter.
func (tmr *Timers) Delay() uint8 {
	tmr.crit.Lock()
	defer tmr.crit.Unlock()
	return tmr.delay
}

// SetDelay sets the value of the delay counter.
func (tmr *Timers) SetDelay(v uint8) {
	tmr.crit.Lock()
	defer tmr.crit.Unlock()
	tmr.delay = v
}

// Sound returns the value of the sound counter.
func (tmr *Timers) Sound() uint8 {
	tmr.crit.Lock()
	defer tmr.crit.Unlock()
	return tmr.sound
}

// SetSound sets the value of the sound counter.
func (tmr *Timers) SetSound(v uint8) {
	tmr.crit.Lock()
	defer tmr.crit.Unlock()
	tmr.sound = v
}

// SoundActive returns true if the sound counter is not zero.
func (tmr *Timers) SoundActive() bool {
	return tmr.Sound() > 0
}

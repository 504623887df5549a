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

package performance

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/chipper-emu/chipper/curated"
	"github.com/chipper-emu/chipper/govern"
	"github.com/chipper-emu/chipper/hardware"
	"github.com/chipper-emu/chipper/hardware/timers"
)

// Check the performance of the emulator by running the machine for the
// specified duration after a leadtime. The machine should already have a
// program loaded. The result is written to output.
//
// The target is the instruction rate the result is compared against. It does
// not limit the speed of the machine. The timers are ticked against the wall
// clock at timers.Frequency and not after every instruction.
func Check(ctx context.Context, output io.Writer, m *hardware.Machine, profile Profile, leadtime time.Duration, duration time.Duration, target int) error {
	// signals false when the leadtime has elapsed and true when the
	// measurement period has elapsed
	timerChan := make(chan bool, 2)
	time.AfterFunc(leadtime, func() {
		timerChan <- false
		time.AfterFunc(duration, func() {
			timerChan <- true
		})
	})

	var startInstructions uint64
	var endInstructions uint64
	var completed bool

	runner := func() error {
		// checking the timerChan is relatively expensive so only check for
		// the end of the measurement every PerformanceBrake instructions
		performanceBrake := 0

		return m.Run(ctx, func() (govern.State, error) {
			performanceBrake++
			if performanceBrake < hardware.PerformanceBrake {
				return govern.Running, nil
			}
			performanceBrake = 0

			select {
			case v := <-timerChan:
				if v {
					endInstructions = m.CPU.Instructions
					completed = true
					return govern.Ending, nil
				}
				startInstructions = m.CPU.Instructions
			default:
			}

			return govern.Running, nil
		})
	}

	m.ClockTimers(false)
	defer m.ClockTimers(true)
	stopTimers := clockTimers(m)

	err := RunProfiler(profile, "performance", runner)
	stopTimers()
	if err != nil {
		return curated.Errorf("performance: %v", err)
	}

	// the context was cancelled before the measurement was complete
	if !completed {
		return curated.Errorf("performance: %v", "machine stopped before end of measurement")
	}

	num := endInstructions - startInstructions
	ips, accuracy := CalcIPS(num, duration.Seconds(), target)
	if target > 0 {
		fmt.Fprintf(output, "%.2f ips (%d instructions in %.2f seconds) %.1f%%\n", ips, num, duration.Seconds(), accuracy)
	} else {
		fmt.Fprintf(output, "%.2f ips (%d instructions in %.2f seconds)\n", ips, num, duration.Seconds())
	}

	return nil
}

// clockTimers ticks the machine's timers in real time until the returned
// function is called. The function returns after the final tick.
func clockTimers(m *hardware.Machine) func() {
	quit := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		tck := time.NewTicker(timers.Period)
		defer tck.Stop()
		for {
			select {
			case <-quit:
				return
			case <-tck.C:
				m.TickTimers()
			}
		}
	}()

	return func() {
		close(quit)
		<-done
	}
}

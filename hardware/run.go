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

package hardware

import (
	"context"

	"github.com/chipper-emu/chipper/curated"
	"github.com/chipper-emu/chipper/govern"
)

// PerformanceBrake is a standard value that can be used to filter out
// expensive code paths within a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition {
//			return govern.Ending, nil
//		}
//	}
//	return govern.Running, nil
const PerformanceBrake = 100

// Run executes instructions as quickly as possible. The continueCheck
// function is called after every instruction. A nil continueCheck runs the
// machine until an error occurs or the context is cancelled.
func (m *Machine) Run(ctx context.Context, continueCheck func() (govern.State, error)) error {
	if continueCheck == nil {
		continueCheck = func() (govern.State, error) { return govern.Running, nil }
	}

	var err error
	state := govern.Running

	for state != govern.Ending {
		if ctx.Err() != nil {
			return nil
		}

		switch state {
		case govern.Running:
			if err := m.Step(ctx); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				return err
			}
		case govern.Paused:
		default:
			return curated.Errorf("hardware: unsupported emulation state (%s) in Run() function", state)
		}

		state, err = continueCheck()
		if err != nil {
			return err
		}
	}

	return nil
}

// RunForInstructionCount executes the specified number of instructions.
// Useful for performance measurement and tests.
func (m *Machine) RunForInstructionCount(ctx context.Context, n int) error {
	for range n {
		if err := m.Step(ctx); err != nil {
			return err
		}
	}
	return nil
}

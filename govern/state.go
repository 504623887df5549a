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

// Package govern defines the states of a running machine. A continue check
// passed to hardware.Machine.Run() returns a State to steer the run, and
// playmode reports the State of the machine it drives.
package govern

// State of the machine as seen by whatever is running it.
type State int32

// Initialising is the state before a run has started and Ending the state
// after it has finished. A Halted machine stopped because of a fault and
// will not execute again until it is reset.
const (
	Initialising State = iota
	Running
	Paused
	Halted
	Ending
)

var stateNames = [...]string{
	Initialising: "Initialising",
	Running:      "Running",
	Paused:       "Paused",
	Halted:       "Halted",
	Ending:       "Ending",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return ""
	}
	return stateNames[s]
}

// Active is true for the states in which a run is still in progress.
func (s State) Active() bool {
	return s == Running || s == Paused
}

// Final is true for the states from which a run cannot continue.
func (s State) Final() bool {
	return s == Halted || s == Ending
}

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


package logger

import "sync/atomic"

// Permission implementations indicate whether the environment making a log
// request is allowed to create new log entries.
type Permission interface {
	AllowLogging() bool
}

type fixed bool

func (p fixed) AllowLogging() bool {
	return bool(p)
}

// Allow and Deny are the fixed permissions.
const (
	Allow = fixed(true)
	Deny  = fixed(false)
)

// Switch is a Permission that can be changed while the program is running.
// The zero value denies logging.
type Switch struct {
	on atomic.Bool
}

// AllowLogging implements the Permission interface.
func (s *Switch) AllowLogging() bool {
	return s.on.Load()
}

// Set the permission.
func (s *Switch) Set(on bool) {
	s.on.Store(on)
}

// Verbose is for entries that are made often. For example, each time an
// activity of the scheduler starts or stops. It is off until set.
var Verbose = &Switch{}

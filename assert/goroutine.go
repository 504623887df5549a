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

// Package assert contains checks of conditions that can not be expressed by
// the type system. They should only be used for debugging and testing.
package assert

import (
	"bytes"
	"runtime"
	"strconv"
)

// GoroutineID returns an identifier for the current goroutine. The result is
// different between goroutines and consistent for a given goroutine.
func GoroutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	if i := bytes.IndexByte(b, ' '); i >= 0 {
		b = b[:i]
	}
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Goroutine records the goroutine that created it. Used to check that
// functions are only called from one goroutine, for example the main thread.
type Goroutine uint64

// ThisGoroutine returns the Goroutine value for the current goroutine.
func ThisGoroutine() Goroutine {
	return Goroutine(GoroutineID())
}

// IsCurrent returns true if called from the recorded goroutine.
func (g Goroutine) IsCurrent() bool {
	return uint64(g) == GoroutineID()
}

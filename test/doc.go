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

// Package test bundles helper functions that remove common boilerplate from
// the tests of the other packages.
//
// The Expect functions report a failed expectation with t.Errorf() and the
// test continues. The Demand functions use t.Fatalf() and should be used when
// later parts of a test depend on the value being correct.
//
// Success and failure are defined by the type of the value under test:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// CompareWriter and RingWriter implement io.Writer and are used to capture
// output from other packages for comparison.
package test

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


package test

import "testing"

// DemandEquality is used to test equality between one value and another. If
// the test fails it is a testing fatality.
//
// Useful when the value is used in further tests and so must be correct. For
// example, testing that the lengths of two slices are equal before iterating
// over them in unison.
func DemandEquality[T comparable](t *testing.T, v T, expectedValue T, tags ...any) {
	t.Helper()
	if v != expectedValue {
		t.Fatalf("%sequality test of type %T failed: '%v' does not equal '%v'", id(tags...), v, v, expectedValue)
	}
}

// DemandSuccess is the fatal version of ExpectSuccess.
func DemandSuccess(t *testing.T, v any, tags ...any) {
	t.Helper()
	if !expect(t, v, tags...) {
		if err, ok := v.(error); ok {
			t.Fatalf("%sa success value is demanded: %v", id(tags...), err)
		}
		t.Fatalf("%sa success value is demanded for type %T", id(tags...), v)
	}
}

// DemandFailure is the fatal version of ExpectFailure.
func DemandFailure(t *testing.T, v any, tags ...any) {
	t.Helper()
	if expect(t, v, tags...) {
		t.Fatalf("%sa failure value is demanded for type %T", id(tags...), v)
	}
}

// sliceDifference returns the index of the first difference between two
// slices, or -1 if they are equal. Slices of different length differ at the
// length of the shorter slice.
func sliceDifference[T comparable](v []T, expected []T) int {
	for i := range min(len(v), len(expected)) {
		if v[i] != expected[i] {
			return i
		}
	}
	if len(v) != len(expected) {
		return min(len(v), len(expected))
	}
	return -1
}

// ExpectSlice tests that two slices are equal element by element. Only the
// first difference is reported. Useful for comparing frame rows and memory
// dumps where a report of every difference would be noise.
func ExpectSlice[T comparable](t *testing.T, v []T, expected []T, tags ...any) bool {
	t.Helper()
	i := sliceDifference(v, expected)
	if i == -1 {
		return true
	}
	if i >= len(v) || i >= len(expected) {
		t.Errorf("%sslice test of type %T failed: length %d does not equal %d", id(tags...), v, len(v), len(expected))
		return false
	}
	t.Errorf("%sslice test of type %T failed at index %d: '%v' does not equal '%v'", id(tags...), v, i, v[i], expected[i])
	return false
}

// DemandSlice is the fatal version of ExpectSlice.
func DemandSlice[T comparable](t *testing.T, v []T, expected []T, tags ...any) {
	t.Helper()
	if !ExpectSlice(t, v, expected, tags...) {
		t.FailNow()
	}
}

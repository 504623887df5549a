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

package test_test

import (
	"errors"
	"testing"

	"github.com/chipper-emu/chipper/test"
)

func TestExpectations(t *testing.T) {
	test.ExpectSuccess(t, true)
	test.ExpectSuccess(t, nil)
	var err error
	test.ExpectSuccess(t, err)

	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("failure"))

	test.ExpectEquality(t, 10, 10)
	test.ExpectInequality(t, "foo", "bar")
	test.ExpectApproximate(t, 103, 100, 0.05)
	test.ExpectApproximate(t, 0.98, 1.0, 0.05)
}

func TestRingWriter(t *testing.T) {
	r, err := test.NewRingWriter(8)
	test.DemandSuccess(t, err)

	r.Write([]byte("abc"))
	test.ExpectEquality(t, r.String(), "abc")

	r.Write([]byte("defgh"))
	test.ExpectEquality(t, r.String(), "abcdefgh")

	r.Write([]byte("ij"))
	test.ExpectEquality(t, r.String(), "cdefghij")

	r.Write([]byte("0123456789"))
	test.ExpectEquality(t, r.String(), "23456789")

	r.Reset()
	test.ExpectEquality(t, r.String(), "")

	_, err = test.NewRingWriter(0)
	test.ExpectFailure(t, err)
}

func TestRingWriterLines(t *testing.T) {
	r, err := test.NewRingWriter(10)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(r.Lines()), 0)

	r.Write([]byte("one\ntwo\n"))
	test.ExpectSlice(t, r.Lines(), []string{"one", "two"})

	// "one" is pushed out and the partial first line is dropped
	r.Write([]byte("three\n"))
	test.ExpectEquality(t, r.String(), "\ntwo\nthree\n")
	test.ExpectSlice(t, r.Lines(), []string{"two", "three"})
}

func TestCompareWriter(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectSuccess(t, tw.Compare(""))
	test.ExpectEquality(t, len(tw.Lines()), 0)

	tw.Write([]byte("foo\nbar\n"))
	test.ExpectSuccess(t, tw.Compare("foo\nbar\n"))
	test.ExpectEquality(t, len(tw.Lines()), 2)
	test.ExpectEquality(t, tw.Lines()[1], "bar")

	tw.Clear()
	test.ExpectSuccess(t, tw.Compare(""))
}

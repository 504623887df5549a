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

package logger_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/chipper-emu/chipper/curated"
	"github.com/chipper-emu/chipper/logger"
	"github.com/chipper-emu/chipper/test"
)

func TestTail(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	w.Reset()
	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeats(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "cpu", "halted")
	log.Log(logger.Allow, "cpu", "halted")
	log.Log(logger.Allow, "cpu", "halted")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "cpu: halted (repeat x3)\n")
	test.ExpectEquality(t, log.Len(), 1)

	log.Log(logger.Allow, "cpu", "running")
	test.ExpectEquality(t, log.Len(), 2)
}

func TestMaxEntries(t *testing.T) {
	log := logger.NewLogger(3)
	for _, s := range []string{"a", "b", "c", "d", "e"} {
		log.Log(logger.Allow, "tag", s)
	}
	test.ExpectEquality(t, log.Len(), 3)

	w := &strings.Builder{}
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: c\ntag: d\ntag: e\n")
}

type prohibit bool

func (p prohibit) AllowLogging() bool {
	return !bool(p)
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(prohibit(true), "tag", "detail")
	log.Log(logger.Deny, "tag", "detail")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(prohibit(false), "tag", "detail")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: detail\n")
}

func TestSwitch(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	var sw logger.Switch
	log.Log(&sw, "tag", "off")
	sw.Set(true)
	log.Log(&sw, "tag", "on")
	sw.Set(false)
	log.Log(&sw, "tag", "off again")

	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: on\n")
}

func TestErrorLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "tag", errors.New("test error"))
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: test error\n")

	log.Clear()
	w.Reset()
	log.Logf(logger.Allow, "tag", "wrapped: %v", curated.Errorf("cpu: halted"))
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: wrapped: cpu: halted\n")

	log.Clear()
	w.Reset()
	log.Log(logger.Allow, "tag", 100)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: 100\n")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(100)
	echo := &test.CompareWriter{}
	log.SetEcho(echo)

	log.Log(logger.Allow, "tag", "one")
	log.Log(logger.Allow, "tag", "one")
	test.ExpectSuccess(t, echo.Compare("tag: one\ntag: one (repeat x2)\n"))

	log.SetEcho(nil)
	log.Log(logger.Allow, "tag", "two")
	test.ExpectEquality(t, len(echo.Lines()), 2)
}

func TestPostmortem(t *testing.T) {
	logger.Clear()
	defer logger.Clear()

	w := &strings.Builder{}
	test.ExpectFailure(t, logger.Postmortem(w, 5))

	logger.Log(logger.Allow, "cpu", "halted")
	test.ExpectSuccess(t, logger.Postmortem(w, 5))
	test.ExpectEquality(t, w.String(), "cpu: halted\n")

	// nothing is written while the log is echoed
	logger.SetEcho(io.Discard, true)
	defer logger.SetEcho(nil, false)
	test.ExpectSuccess(t, logger.Verbose.AllowLogging())
	test.ExpectFailure(t, logger.Postmortem(w, 5))
}

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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chipper-emu/chipper/modalflag"
	"github.com/chipper-emu/chipper/test"
)

// parse the top level mode as launch() does
func parseMode(t *testing.T, output *test.CompareWriter, args ...string) *modalflag.Modes {
	t.Helper()
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "DISASM", "PERFORMANCE")
	p, err := md.Parse()
	test.DemandSuccess(t, err)
	test.DemandEquality(t, p, modalflag.ParseContinue)
	return md
}

func writeROM(t *testing.T, rom ...uint8) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "prog.ch8")
	test.DemandSuccess(t, os.WriteFile(fn, rom, 0o644))
	return fn
}

func TestDisasmMode(t *testing.T) {
	fn := writeROM(t, 0x60, 0x05, 0xa2, 0x10, 0x12, 0x00)

	w := &test.CompareWriter{}
	md := parseMode(t, w, "DISASM", "-bytecode", fn)
	test.DemandEquality(t, md.Mode(), "DISASM")
	test.DemandSuccess(t, disasm(md))

	lines := w.Lines()
	test.DemandEquality(t, len(lines), 3)
	test.ExpectEquality(t, lines[0], "0x200: 0x6005  LD V0, 0x05")
	test.ExpectEquality(t, lines[1], "0x202: 0xA210  LD I, 0x210")
	test.ExpectEquality(t, lines[2], "0x204: 0x1200  JP 0x200")
}

func TestModeArguments(t *testing.T) {
	w := &test.CompareWriter{}
	md := parseMode(t, w, "DISASM")
	test.ExpectFailure(t, disasm(md))

	md = parseMode(t, w, "PERFORMANCE", "a.ch8", "b.ch8")
	test.DemandEquality(t, md.Mode(), "PERFORMANCE")
	test.ExpectFailure(t, perform(md))

	md = parseMode(t, w, "PERFORMANCE", "-profile", "GPU", writeROM(t, 0x12, 0x00))
	test.ExpectFailure(t, perform(md))

	// flag values are checked before the program is loaded
	md = parseMode(t, w, "RUN", "-gui", "WEB", writeROM(t, 0x12, 0x00))
	test.ExpectFailure(t, run(md, testSync(t)))

	md = parseMode(t, w, "RUN", "-ips", "-10", writeROM(t, 0x12, 0x00))
	test.ExpectFailure(t, run(md, testSync(t)))
}

func TestDefaultMode(t *testing.T) {
	w := &test.CompareWriter{}
	md := parseMode(t, w, "prog.ch8")
	test.ExpectEquality(t, md.Mode(), "RUN")
}

// a mainSync that accepts every state request
func testSync(t *testing.T) *mainSync {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}
	done := make(chan bool)
	t.Cleanup(func() { close(done) })
	go func() {
		for {
			select {
			case <-sync.state:
			case <-done:
				return
			}
		}
	}()
	return sync
}

func TestRunDigest(t *testing.T) {
	fn := writeROM(t, 0x60, 0x00, 0xf0, 0x29, 0xd0, 0x05, 0x12, 0x06)
	trace := filepath.Join(t.TempDir(), "trace.txt")

	w := &test.CompareWriter{}
	md := parseMode(t, w, "RUN", "-gui", "DIGEST", "-beep=false", "-duration", "100ms",
		"-ips", "0", "-trace", trace, fn)
	test.DemandEquality(t, md.Mode(), "RUN")
	test.ExpectSuccess(t, run(md, testSync(t)))

	lines := w.Lines()
	test.DemandEquality(t, len(lines), 2)
	test.ExpectSuccess(t, strings.HasPrefix(lines[0], "video: "))
	test.ExpectSuccess(t, strings.HasPrefix(lines[1], "audio: "))

	b, err := os.ReadFile(trace)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, strings.HasPrefix(string(b), "0x200: 0x6000  LD V0, 0x00\n0x202: 0xF029  LD F, V0\n"))
}

func TestRunScript(t *testing.T) {
	fn := writeROM(t, 0x12, 0x00)

	w := &test.CompareWriter{}
	md := parseMode(t, w, "RUN", "-gui", "DIGEST", "-beep=false", "-keys", "12!", fn)
	test.ExpectSuccess(t, run(md, testSync(t)))

	md = parseMode(t, w, "RUN", "-gui", "DIGEST", "-beep=false", "-keys", "12p", fn)
	test.ExpectFailure(t, run(md, testSync(t)))
}

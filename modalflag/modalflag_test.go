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

package modalflag_test

import (
	"testing"

	"github.com/chipper-emu/chipper/modalflag"
	"github.com/chipper-emu/chipper/test"
)

func TestNoModesNoFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "")
	test.ExpectEquality(t, md.Path(), "")
}

func TestNoModes(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-test", "1", "2"})
	testFlag := md.AddBool("test", false, "test flag")
	test.ExpectFailure(t, *testFlag)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, *testFlag)
	test.DemandEquality(t, len(md.RemainingArgs()), 2)
	test.ExpectEquality(t, md.GetArg(0), "1")
}

func TestDefaultMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"pong.ch8"})
	md.AddSubModes("RUN", "DISASM")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")

	md.NewMode()
	ips := md.AddInt("ips", 700, "instructions per second")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *ips, 700)
	test.ExpectEquality(t, md.GetArg(0), "pong.ch8")
}

func TestSelectedModeWithFlags(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"disasm", "-bytecode", "pong.ch8"})
	md.AddSubModes("RUN", "DISASM")

	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "DISASM")

	md.NewMode()
	bytecode := md.AddBool("bytecode", false, "show bytecode")
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, *bytecode)
	test.ExpectEquality(t, md.GetArg(0), "pong.ch8")
	test.ExpectEquality(t, md.Path(), "DISASM")
}

func TestFlagsForDefaultMode(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-ips", "10", "pong.ch8"})
	md.AddSubModes("RUN", "DISASM")

	// the -ips flag is unknown at the top level so the default mode is chosen
	_, err := md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, md.Mode(), "RUN")

	md.NewMode()
	ips := md.AddInt("ips", 700, "instructions per second")
	_, err = md.Parse()
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *ips, 10)
}

func TestHelp(t *testing.T) {
	tw := &test.CompareWriter{}
	md := modalflag.Modes{Output: tw}
	md.NewArgs([]string{"-help"})

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, tw.Compare("No help available\n"))

	tw.Clear()
	md.NewArgs([]string{"-help"})
	md.AddSubModes("RUN", "DISASM")
	md.AddBool("log", false, "echo log")
	p, _ = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseHelp)
	test.ExpectSuccess(t, tw.Compare("Usage:\n  -log\n    \techo log\n\n  available sub-modes: RUN, DISASM\n    default: RUN\n"))
}

func TestUnknownFlag(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-unknown"})
	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestChoice(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-gui", "sdl"})
	gui := md.AddChoice("gui", "term", []string{"TERM", "SDL"}, "user interface")
	test.ExpectEquality(t, *gui, "TERM")

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *gui, "SDL")

	md.NewArgs([]string{"-gui", "web"})
	md.AddChoice("gui", "TERM", []string{"TERM", "SDL"}, "user interface")
	p, err = md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseError)
	test.ExpectFailure(t, err)
}

func TestCount(t *testing.T) {
	md := modalflag.Modes{}
	md.NewArgs([]string{"-ips", "1000"})
	ips := md.AddCount("ips", 700, "instructions per second")
	test.ExpectEquality(t, *ips, 700)

	p, err := md.Parse()
	test.ExpectEquality(t, p, modalflag.ParseContinue)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, *ips, 1000)

	for _, arg := range []string{"-1", "fast"} {
		md.NewArgs([]string{"-ips", arg})
		md.AddCount("ips", 700, "instructions per second")
		p, err = md.Parse()
		test.ExpectEquality(t, p, modalflag.ParseError, arg)
		test.ExpectFailure(t, err, arg)
	}
}

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

package input_test

import (
	"testing"

	"github.com/chipper-emu/chipper/curated"
	"github.com/chipper-emu/chipper/hardware/input"
	"github.com/chipper-emu/chipper/test"
)

func TestScript(t *testing.T) {
	q, err := input.NewScript("w.x!", 2)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.Len(), 4+4+4+2)

	type obs struct {
		raw byte
		ok  bool
	}
	expected := []obs{
		{'w', true}, {'w', true}, {0, false}, {0, false},
		{0, false}, {0, false}, {0, false}, {0, false},
		{'x', true}, {'x', true}, {0, false}, {0, false},
		{0x1b, true}, {0x1b, true},
		{0, false},
	}
	for i, e := range expected {
		raw, ok, err := q.Sample()
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, ok, e.ok, i)
		if e.ok {
			test.ExpectEquality(t, raw, e.raw, i)
		}
	}
}

func TestScriptSampler(t *testing.T) {
	q, err := input.NewScript("4!", 1)
	test.DemandSuccess(t, err)

	kp := input.NewKeypad()
	var exited bool
	smp := input.NewSampler(kp, func() { exited = true })
	smp.SetSource(q)

	test.ExpectSuccess(t, smp.Sample())
	p, _ := kp.IsPressed(0xc)
	test.ExpectSuccess(t, p)

	test.ExpectSuccess(t, smp.Sample())
	p, _ = kp.IsPressed(0xc)
	test.ExpectFailure(t, p)
	test.ExpectFailure(t, exited)

	test.ExpectSuccess(t, smp.Sample())
	test.ExpectSuccess(t, exited)
}

func TestScriptError(t *testing.T) {
	_, err := input.NewScript("wp", 1)
	test.ExpectSuccess(t, curated.Is(err, input.ScriptError))

	_, err = input.NewScript("wé", 1)
	test.ExpectSuccess(t, curated.Is(err, input.ScriptError))
}

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
	"errors"
	"testing"

	"github.com/chipper-emu/chipper/curated"
	"github.com/chipper-emu/chipper/hardware/input"
	"github.com/chipper-emu/chipper/test"
)

func TestKeymap(t *testing.T) {
	expected := map[byte]input.Code{
		'1': 0x1, '2': 0x2, '3': 0x3, '4': 0xc,
		'q': 0x4, 'w': 0x5, 'e': 0x6, 'r': 0xd,
		'a': 0x7, 's': 0x8, 'd': 0x9, 'f': 0xe,
		'z': 0xa, 'x': 0x0, 'c': 0xb, 'v': 0xf,
		'Q': 0x4, 'V': 0xf,
		0x1b: input.Exit,
		0x03: input.Exit,
	}

	for raw := range 256 {
		c, ok := expected[byte(raw)]
		if !ok {
			c = input.NoKey
		}
		test.ExpectEquality(t, input.Lookup(byte(raw)), c, raw)
	}

	// every key of the keypad is reachable
	for k := range input.NumKeys {
		b, ok := input.KeyFor(input.Code(k))
		test.DemandSuccess(t, ok)
		test.ExpectEquality(t, input.Lookup(b), input.Code(k))
	}
	_, ok := input.KeyFor(input.Exit)
	test.ExpectFailure(t, ok)
}

func TestKeypad(t *testing.T) {
	kp := input.NewKeypad()

	_, ok := kp.LastKey()
	test.ExpectFailure(t, ok)

	test.ExpectSuccess(t, kp.Press(0x5))
	p, err := kp.IsPressed(0x5)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, p)

	k, ok := kp.LastKey()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, k, uint8(0x5))

	// release does not change the latch
	test.ExpectSuccess(t, kp.Release(0x5))
	p, _ = kp.IsPressed(0x5)
	test.ExpectFailure(t, p)
	_, ok = kp.LastKey()
	test.ExpectSuccess(t, ok)

	kp.ResetLastKey()
	_, ok = kp.LastKey()
	test.ExpectFailure(t, ok)

	_, err = kp.IsPressed(16)
	test.ExpectSuccess(t, curated.Is(err, input.KeyRangeError))
	test.ExpectSuccess(t, curated.Is(kp.Press(200), input.KeyRangeError))
}

func TestSampler(t *testing.T) {
	kp := input.NewKeypad()

	var exits int
	smp := input.NewSampler(kp, func() { exits++ })

	// no source is not an error
	test.ExpectSuccess(t, smp.Sample())

	src := &input.QueueSource{}
	smp.SetSource(src)
	src.Push('w', 2)
	src.Push('a', 1)
	src.PushNone(1)
	src.Push(0x1b, 1)

	test.ExpectSuccess(t, smp.Sample())
	test.ExpectEquality(t, kp.State()[0x5], true)

	// same key observed again changes nothing
	kp.ResetLastKey()
	test.ExpectSuccess(t, smp.Sample())
	_, ok := kp.LastKey()
	test.ExpectFailure(t, ok)

	// a different key releases the previous key
	test.ExpectSuccess(t, smp.Sample())
	state := kp.State()
	test.ExpectEquality(t, state[0x5], false)
	test.ExpectEquality(t, state[0x7], true)
	k, _ := smp.LastKey()
	test.ExpectEquality(t, k, uint8(0x7))

	// no key releases everything
	test.ExpectSuccess(t, smp.Sample())
	test.ExpectEquality(t, kp.State(), [input.NumKeys]bool{})

	test.ExpectEquality(t, exits, 0)
	test.ExpectSuccess(t, smp.Sample())
	test.ExpectEquality(t, exits, 1)
	test.ExpectEquality(t, src.Len(), 0)
}

type failingSource struct{}

func (failingSource) Sample() (byte, bool, error) {
	return 0, false, errors.New("read failed")
}

func TestSamplerError(t *testing.T) {
	smp := input.NewSampler(input.NewKeypad(), nil)
	smp.SetSource(failingSource{})
	test.ExpectFailure(t, smp.Sample())
	test.ExpectFailure(t, smp.Refresh())
}

func TestHeldKey(t *testing.T) {
	kp := input.NewKeypad()
	smp := input.NewSampler(kp, nil)
	h := &input.HeldKey{}
	smp.SetSource(h)

	h.Hold('v')
	test.ExpectSuccess(t, smp.Sample())
	p, _ := smp.IsPressed(0xf)
	test.ExpectSuccess(t, p)

	// releasing a key that is not held has no effect
	h.Release('1')
	test.ExpectSuccess(t, smp.Sample())
	p, _ = smp.IsPressed(0xf)
	test.ExpectSuccess(t, p)

	h.Release('v')
	test.ExpectSuccess(t, smp.Sample())
	p, _ = smp.IsPressed(0xf)
	test.ExpectFailure(t, p)

	// the zero byte is a valid observation
	h.Hold(0)
	raw, ok, _ := h.Sample()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, raw, byte(0))
}

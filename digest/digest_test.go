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

package digest_test

import (
	"strings"
	"testing"

	"github.com/chipper-emu/chipper/digest"
	"github.com/chipper-emu/chipper/hardware/display"
	"github.com/chipper-emu/chipper/hardware/input"
	"github.com/chipper-emu/chipper/test"
)

var noKeys [input.NumKeys]bool

func TestVideo(t *testing.T) {
	var a, b display.Frame
	b[3] = 0xff

	v1 := digest.NewVideo()
	test.ExpectEquality(t, v1.Hash(), strings.Repeat("0", 40))

	test.ExpectSuccess(t, v1.Render(a, noKeys))
	test.ExpectSuccess(t, v1.Render(b, noKeys))

	// repeated frames and key changes are not part of the fingerprint
	v2 := digest.NewVideo()
	test.ExpectSuccess(t, v2.Render(a, noKeys))
	test.ExpectSuccess(t, v2.Render(a, noKeys))
	test.ExpectSuccess(t, v2.Render(b, [input.NumKeys]bool{true}))
	test.ExpectSuccess(t, v2.Render(b, noKeys))

	test.ExpectEquality(t, v1.Hash(), v2.Hash())
	test.ExpectEquality(t, v2.Frames(), 2)

	// order matters
	v3 := digest.NewVideo()
	test.ExpectSuccess(t, v3.Render(b, noKeys))
	test.ExpectSuccess(t, v3.Render(a, noKeys))
	test.ExpectInequality(t, v1.Hash(), v3.Hash())

	v3.ResetDigest()
	test.ExpectEquality(t, v3.Frames(), 0)
	test.ExpectEquality(t, v3.Hash(), strings.Repeat("0", 40))
}

func TestAudio(t *testing.T) {
	seq := func(s string) string {
		a := digest.NewAudio()
		for _, c := range s {
			test.ExpectSuccess(t, a.SetSound(c == '1'))
		}
		return a.Hash()
	}

	test.ExpectEquality(t, seq("0000"), strings.Repeat("0", 40))
	test.ExpectEquality(t, seq("0110"), seq("0110"))
	test.ExpectInequality(t, seq("0110"), seq("00110"))
	test.ExpectInequality(t, seq("0110"), seq("01110"))
}

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

package display_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/chipper-emu/chipper/hardware/display"
	"github.com/chipper-emu/chipper/test"
)

func TestDraw(t *testing.T) {
	dsp := display.NewDisplay()

	// glyph for zero
	sprite := []uint8{0xf0, 0x90, 0x90, 0x90, 0xf0}

	test.ExpectFailure(t, dsp.Draw(2, 3, sprite))
	f := dsp.Frame()
	test.ExpectEquality(t, f.Count(), 14)
	test.ExpectSuccess(t, f.Pixel(2, 3))
	test.ExpectSuccess(t, f.Pixel(2, 6))
	test.ExpectFailure(t, f.Pixel(2, 7))
	test.ExpectFailure(t, f.Pixel(3, 4))
	test.ExpectSuccess(t, f.Pixel(3, 6))
	test.ExpectSuccess(t, dsp.IsCollision(6, 3))
	test.ExpectFailure(t, dsp.IsCollision(7, 3))

	// drawing the same sprite in the same place erases it and is a collision
	test.ExpectSuccess(t, dsp.Draw(2, 3, sprite))
	test.ExpectEquality(t, dsp.Frame(), display.Frame{})
}

func TestNoCollisionOnOverlapOfClearPixels(t *testing.T) {
	dsp := display.NewDisplay()
	test.ExpectFailure(t, dsp.Draw(0, 0, []uint8{0xf0}))

	// sprite covers set pixels with clear bits only
	test.ExpectFailure(t, dsp.Draw(0, 0, []uint8{0x0f}))
	test.ExpectEquality(t, dsp.Frame()[0], uint64(0xff)<<56)
}

func TestWrapping(t *testing.T) {
	dsp := display.NewDisplay()

	// horizontal wrap splits the byte between the two ends of the row
	test.ExpectFailure(t, dsp.Draw(0, 60, []uint8{0xff}))
	f := dsp.Frame()
	for _, c := range []int{60, 61, 62, 63, 0, 1, 2, 3} {
		test.ExpectSuccess(t, f.Pixel(0, c), c)
	}
	test.ExpectFailure(t, f.Pixel(0, 4))
	test.ExpectFailure(t, f.Pixel(1, 0))
	test.ExpectEquality(t, f[0], uint64(0xf000_0000_0000_000f))

	// column is taken modulo the width
	dsp.Clear()
	test.ExpectFailure(t, dsp.Draw(0, 64+8, []uint8{0x80}))
	test.ExpectSuccess(t, dsp.IsCollision(0, 8))

	// vertical wrap
	dsp.Clear()
	test.ExpectFailure(t, dsp.Draw(30, 0, []uint8{0x80, 0x80, 0x80, 0x80}))
	f = dsp.Frame()
	for _, r := range []int{30, 31, 0, 1} {
		test.ExpectSuccess(t, f.Pixel(r, 0), r)
	}
	test.ExpectEquality(t, f.Count(), 4)
}

func TestClear(t *testing.T) {
	dsp := display.NewDisplay()
	dsp.Draw(0, 0, []uint8{0xff, 0xff})
	n := dsp.Draws()
	dsp.Clear()
	test.ExpectEquality(t, dsp.Frame().Count(), 0)
	test.ExpectEquality(t, dsp.Draws(), n+1)

	// a draw on a clear display is never a collision
	test.ExpectFailure(t, dsp.Draw(0, 0, []uint8{0xff}))
}

func TestFrameString(t *testing.T) {
	dsp := display.NewDisplay()
	dsp.Draw(0, 0, []uint8{0xa0})
	lines := strings.Split(dsp.Frame().String(), "\n")
	test.DemandEquality(t, len(lines), display.Height+1)
	test.ExpectEquality(t, lines[0], "# #"+strings.Repeat(" ", display.Width-3))
	test.ExpectEquality(t, lines[1], strings.Repeat(" ", display.Width))
}

// a frame taken while another goroutine is drawing always contains either
// all or none of each sprite
func TestConsistentFrame(t *testing.T) {
	dsp := display.NewDisplay()
	sprite := []uint8{0xff, 0xff, 0xff, 0xff}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for range 1000 {
			dsp.Draw(10, 20, sprite)
		}
	}()

	for range 1000 {
		n := dsp.Frame().Count()
		if n != 0 && n != 32 {
			t.Fatalf("partial sprite in frame: %d pixels", n)
		}
	}
	wg.Wait()
}

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

package random

import (
	"math/rand/v2"
	"time"
)

// Random is a random number generator for the machine.
type Random struct {
	rng *rand.Rand

	// the seed the generator was created or last reset with
	seed uint64
}

// NewRandom is the preferred method of initialisation for the Random type. A
// seed of zero means that the seed is taken from the current time.
func NewRandom(seed uint64) *Random {
	rnd := &Random{}
	rnd.Reset(seed)
	return rnd
}

// Reset the generator with a new seed. A seed of zero means that the seed is
// taken from the current time.
func (rnd *Random) Reset(seed uint64) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	rnd.seed = seed
	rnd.rng = rand.New(rand.NewPCG(seed, seed>>1|1))
}

// Seed returns the seed in use by the generator.
func (rnd *Random) Seed() uint64 {
	return rnd.seed
}

// Byte returns a random value in the range 0 to 255.
func (rnd *Random) Byte() uint8 {
	return uint8(rnd.rng.UintN(256))
}

// Intn returns a random value in the range 0 to n-1.
func (rnd *Random) Intn(n int) int {
	return rnd.rng.IntN(n)
}

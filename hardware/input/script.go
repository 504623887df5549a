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

package input

import (
	"github.com/chipper-emu/chipper/curated"
)

// ScriptError is returned by NewScript() for a character that is not a key.
const ScriptError = "input: script: unknown key %q at position %d"

// Characters with special meaning in a key script.
const (
	ScriptPause = '.'
	ScriptExit  = '!'
)

// NewScript creates a QueueSource from a key script. Each character of the
// script is a key that is presented for hold samples and then released for
// hold samples. The ScriptPause character presents no key for twice the hold
// and the ScriptExit character presents the Exit code.
func NewScript(script string, hold int) (*QueueSource, error) {
	hold = max(hold, 1)
	q := &QueueSource{}

	for i, r := range script {
		switch r {
		case ScriptPause:
			q.PushNone(hold * 2)
		case ScriptExit:
			q.Push(0x1b, hold)
		default:
			if r > 0x7f || !Lookup(byte(r)).IsKey() {
				return nil, curated.Errorf(ScriptError, r, i)
			}
			q.Push(byte(r), hold)
			q.PushNone(hold)
		}
	}

	return q, nil
}

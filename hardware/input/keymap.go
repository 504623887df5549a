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

// Code is the logical key produced by Lookup().
type Code int

// Special values of Code. Values 0 to 15 are the keys of the keypad.
const (
	NoKey Code = -1
	Exit  Code = 16
)

// IsKey returns true if the code is one of the keys of the keypad.
func (c Code) IsKey() bool {
	return c >= 0 && c < NumKeys
}

// the translation table is built once and never changed
var keymap = func() [256]Code {
	var m [256]Code
	for i := range m {
		m[i] = NoKey
	}

	layout := []struct {
		keys  string
		codes [4]Code
	}{
		{keys: "1234", codes: [4]Code{0x1, 0x2, 0x3, 0xc}},
		{keys: "qwer", codes: [4]Code{0x4, 0x5, 0x6, 0xd}},
		{keys: "asdf", codes: [4]Code{0x7, 0x8, 0x9, 0xe}},
		{keys: "zxcv", codes: [4]Code{0xa, 0x0, 0xb, 0xf}},
	}
	for _, l := range layout {
		for i := range l.keys {
			m[l.keys[i]] = l.codes[i]
			if l.keys[i] >= 'a' && l.keys[i] <= 'z' {
				m[l.keys[i]-'a'+'A'] = l.codes[i]
			}
		}
	}

	// escape and ctrl-c
	m[0x1b] = Exit
	m[0x03] = Exit

	return m
}()

// Lookup translates a byte from the host keyboard into a Code.
func Lookup(raw byte) Code {
	return keymap[raw]
}

// KeyFor returns the host keyboard byte for a key of the keypad. The inverse
// of Lookup() for lower-case keys. Returns false if c is not a key of the
// keypad.
func KeyFor(c Code) (byte, bool) {
	if !c.IsKey() {
		return 0, false
	}
	for _, b := range []byte("1234qwerasdfzxcv") {
		if keymap[b] == c {
			return b, true
		}
	}
	return 0, false
}

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

package version

import (
	"runtime/debug"
	"strings"
	"testing"

	"github.com/chipper-emu/chipper/test"
)

func TestRevision(t *testing.T) {
	v, r := revision(nil)
	test.ExpectEquality(t, v, "local")
	test.ExpectEquality(t, r, "")

	v, r = revision([]debug.BuildSetting{
		{Key: "vcs", Value: "git"},
		{Key: "vcs.revision", Value: "0123abc"},
		{Key: "vcs.modified", Value: "true"},
	})
	test.ExpectEquality(t, v, "unreleased")
	test.ExpectEquality(t, r, "0123abc+dirty")

	number = "v1.2.3"
	defer func() { number = "" }()
	v, _ = revision([]debug.BuildSetting{{Key: "vcs", Value: "git"}})
	test.ExpectEquality(t, v, "v1.2.3")
}

func TestString(t *testing.T) {
	test.ExpectSuccess(t, strings.HasPrefix(String(), ApplicationName+" "))
}

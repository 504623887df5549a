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

// Package version reports the version of the application. The version number
// is set at link time:
//
//	go build -ldflags "-X github.com/chipper-emu/chipper/version.number=v0.1.0"
//
// Without a version number the revision of the source is taken from the
// build information, if there is any.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "Chipper"

// set by the linker
var number string

// Version returns the version number and the vcs revision. The number is
// "unreleased" if the program was built from a vcs checkout without a version
// number and "local" if there is no vcs information. The revision is suffixed
// with "+dirty" if the source had been modified.
func Version() (string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return versionNumber(false), ""
	}
	return revision(info.Settings)
}

func versionNumber(vcs bool) string {
	switch {
	case number != "":
		return number
	case vcs:
		return "unreleased"
	}
	return "local"
}

func revision(settings []debug.BuildSetting) (string, string) {
	var vcs bool
	var rev string
	var modified bool

	for _, s := range settings {
		switch s.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if rev != "" && modified {
		rev = fmt.Sprintf("%s+dirty", rev)
	}

	return versionNumber(vcs), rev
}

// String returns the application name and version in a single line.
func String() string {
	v, r := Version()
	if r == "" {
		return fmt.Sprintf("%s %s", ApplicationName, v)
	}
	return fmt.Sprintf("%s %s (%s)", ApplicationName, v, r)
}

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

// Package modalflag handles command lines made of modes, each mode with its
// own set of flags. For example:
//
//	chipper RUN -gui SDL -ips 1000 roms/pong.ch8
//	chipper DISASM roms/pong.ch8
//
// The first mode in the list given to AddSubModes() is the default mode and
// is selected when the first argument is not a recognised mode. Mode names
// are not case sensitive.
//
// Typical usage:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "DISASM")
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		ips := md.AddInt("ips", 700, "instructions per second")
//		...
//	}
package modalflag

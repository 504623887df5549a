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

// Package romloader loads program images from local files or over HTTP. The
// loaded data is checked against the size limits of the machine and a SHA1
// hash of the data is recorded.
//
//	ld := romloader.NewLoader("roms/pong.ch8")
//	if err := ld.Load(); err != nil {
//		return err
//	}
//	machine.LoadROM(ld.Data)
package romloader

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

// Package curated wraps the plain Go error type with a pattern that can be
// tested for. Curated errors are created with Errorf(), which looks like the
// function of the same name in the fmt package, but the pattern and values
// are stored and only formatted when the error message is requested.
//
// Packages declare the patterns they raise as exported string constants. The
// constants are the sentinels of the system:
//
//	const AddressError = "memory: address out of range: %#04x"
//
//	err := curated.Errorf(memory.AddressError, addr)
//	if curated.Is(err, memory.AddressError) {
//		...
//	}
//
// Has() walks the values of the error looking for the pattern, so a wrapped
// error can still be identified:
//
//	f := curated.Errorf("cpu: %v", err)
//	curated.Has(f, memory.AddressError) == true
//	curated.Is(f, memory.AddressError) == false
//
// The Error() function removes duplicate adjacent parts of the message. An
// error of "cpu: cpu: stack overflow" is printed as "cpu: stack overflow". A
// part is a substring delimited by ": ".
package curated

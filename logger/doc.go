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

// Package logger is the central log for Chipper. Entries are made with a tag
// and a detail. The tag is conventionally the name of the package making the
// entry:
//
//	logger.Logf(logger.Allow, "romloader", "loaded %s (%d bytes)", name, len(data))
//
// Consecutive entries with the same tag and detail are collapsed into a
// single entry with a repeat count.
//
// Every logging call requires a Permission. Logging from a context where it
// is unwanted (a fast-running loop during a performance measurement, for
// example) is prevented by passing a Permission that returns false from
// AllowLogging().
//
// The package level functions use the central logger. Independent loggers
// can be created with NewLogger(). All loggers are safe for concurrent use.
package logger

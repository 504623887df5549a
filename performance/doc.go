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


// Package performance measures how quickly the machine executes
// instructions.
//
// Check() runs the machine headless for a lead time, to let the Go runtime
// settle, and then for a measured duration. The result is printed as
// instructions per second and as a percentage of a target rate. The run can
// be profiled with the pprof CPU and memory profilers.
//
// RunProfiler() wraps any function with the requested profilers and so can
// be used for runs that are not limited by time.
package performance

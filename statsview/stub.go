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


//go:build !statsview

package statsview

import (
	"context"
	"io"

	"github.com/chipper-emu/chipper/logger"
)

// Launch does nothing without the statsview build constraint.
func Launch(_ context.Context, _ io.Writer, cfg Config) {
	logger.Logf(logger.Allow, "statsview", "not available in this build (%s)", cfg.URL())
}

// Available is false without the statsview build constraint.
func Available() bool {
	return false
}

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


//go:build statsview

package statsview

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/chipper-emu/chipper/logger"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// only one server can be running because the viewer configuration is global
var running sync.Mutex

// Launch the statistics server in a new goroutine. The server is stopped when
// the context is cancelled. A second Launch() while a server is running is
// logged and ignored.
func Launch(ctx context.Context, output io.Writer, cfg Config) {
	if !running.TryLock() {
		logger.Log(logger.Allow, "statsview", "stats server already running")
		return
	}

	cfg = cfg.normalise()
	viewer.SetConfiguration(
		viewer.WithAddr(cfg.Addr),
		viewer.WithInterval(int(cfg.Interval.Milliseconds())),
		viewer.WithMaxPoints(cfg.MaxPoints),
	)
	mgr := statsview.New()

	go mgr.Start()
	go func() {
		defer running.Unlock()
		<-ctx.Done()
		mgr.Stop()
		logger.Log(logger.Allow, "statsview", "stats server stopped")
	}()

	logger.Logf(logger.Allow, "statsview", "sampling every %v", cfg.Interval)
	fmt.Fprintf(output, "stats server available at %s\n", cfg.URL())
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return true
}

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


package statsview

import (
	"fmt"
	"time"
)

// Address of the statistics server.
const Address = "localhost:12608"

const path = "/debug/statsview"

// Config of the statistics server.
type Config struct {
	Addr string

	// interval between samples of the runtime statistics
	Interval time.Duration

	// number of samples shown by each chart
	MaxPoints int
}

// DefaultConfig serves on Address and samples twice a second for a minute.
func DefaultConfig() Config {
	return Config{
		Addr:      Address,
		Interval:  500 * time.Millisecond,
		MaxPoints: 120,
	}
}

// fill in zero fields with the default values
func (cfg Config) normalise() Config {
	def := DefaultConfig()
	if cfg.Addr == "" {
		cfg.Addr = def.Addr
	}
	if cfg.Interval < time.Millisecond {
		cfg.Interval = def.Interval
	}
	if cfg.MaxPoints <= 0 {
		cfg.MaxPoints = def.MaxPoints
	}
	return cfg
}

// URL of the charts for the configuration.
func (cfg Config) URL() string {
	return fmt.Sprintf("http://%s%s", cfg.normalise().Addr, path)
}

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

package playmode

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/chipper-emu/chipper/curated"
	"github.com/chipper-emu/chipper/govern"
	"github.com/chipper-emu/chipper/gui"
	"github.com/chipper-emu/chipper/hardware"
	"github.com/chipper-emu/chipper/hardware/timers"
	"github.com/chipper-emu/chipper/logger"
	"github.com/chipper-emu/chipper/performance/limiter"
	"golang.org/x/sync/errgroup"
)

// Config for the rates of the activities.
type Config struct {
	// instructions per second. zero means unlimited
	IPS int

	// frames per second of the display refresh
	FPS int

	// input samples per second
	SampleRate int
}

// DefaultConfig returns the default rates.
func DefaultConfig() Config {
	return Config{
		IPS:        700,
		FPS:        60,
		SampleRate: 120,
	}
}

// Play runs the machine in real time.
type Play struct {
	m   *hardware.Machine
	cfg Config

	renderer gui.Renderer
	sinks    []gui.AudioSink

	quit  atomic.Bool
	state atomic.Int32

	crit   sync.Mutex
	cancel context.CancelFunc
	ioErr  error
}

// NewPlay is the preferred method of initialisation for the Play type. Rates
// of zero or less for the display refresh and input sampling are replaced by
// the default rate.
func NewPlay(m *hardware.Machine, cfg Config) *Play {
	def := DefaultConfig()
	if cfg.FPS <= 0 {
		cfg.FPS = def.FPS
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = def.SampleRate
	}
	return &Play{
		m:   m,
		cfg: cfg,
	}
}

// AttachRenderer sets the renderer for the display. Must be called before
// Run().
func (p *Play) AttachRenderer(r gui.Renderer) {
	p.renderer = r
}

// AttachAudio adds an audio sink for the sound timer. Must be called before
// Run().
func (p *Play) AttachAudio(s gui.AudioSink) {
	p.sinks = append(p.sinks, s)
}

// Quit ends the run. Safe to call from any goroutine and at any time.
func (p *Play) Quit() {
	p.quit.Store(true)

	p.crit.Lock()
	defer p.crit.Unlock()
	if p.cancel != nil {
		p.cancel()
	}
}

// State of the run. Initialising until Run() is called, Halted if the run
// ended with a fault in the machine and Ending once it has otherwise finished.
func (p *Play) State() govern.State {
	return govern.State(p.state.Load())
}

func (p *Play) setState(s govern.State) {
	p.state.Store(int32(s))
}

// record the first failure of a peripheral
func (p *Play) ioFailure(activity string, err error) {
	logger.Logf(logger.Allow, "playmode", "%s stopped: %v", activity, err)

	p.crit.Lock()
	defer p.crit.Unlock()
	if p.ioErr == nil {
		p.ioErr = curated.Errorf("playmode: %s: %v", activity, err)
	}
}

// Run the machine until the run ends. Returns the fault of the machine if
// there is one, otherwise the first peripheral failure.
func (p *Play) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p.crit.Lock()
	p.cancel = cancel
	p.ioErr = nil
	p.crit.Unlock()

	// a Quit() before the run started
	if p.quit.Load() {
		p.setState(govern.Ending)
		return nil
	}
	p.setState(govern.Running)

	p.m.ClockTimers(false)
	defer p.m.ClockTimers(true)
	p.m.OnExit(p.Quit)
	defer p.m.OnExit(nil)

	logger.Logf(logger.Allow, "playmode", "running at %d ips (%d fps, %d samples/sec)", p.cfg.IPS, p.cfg.FPS, p.cfg.SampleRate)

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		// the end of the execution ends every other activity
		defer cancel()
		defer logger.Log(logger.Verbose, "playmode", "execution ended")
		return p.execute(ctx)
	})
	g.Go(func() error {
		p.clockTimers(ctx)
		logger.Log(logger.Verbose, "playmode", "timers ended")
		return nil
	})
	g.Go(func() error {
		p.refresh(ctx)
		logger.Log(logger.Verbose, "playmode", "refresh ended")
		return nil
	})
	g.Go(func() error {
		p.sample(ctx)
		logger.Log(logger.Verbose, "playmode", "sampling ended")
		return nil
	})

	err := g.Wait()

	p.crit.Lock()
	defer p.crit.Unlock()
	p.cancel = nil

	if err != nil {
		p.setState(govern.Halted)
		return err
	}
	p.setState(govern.Ending)
	return p.ioErr
}

func (p *Play) execute(ctx context.Context) error {
	lim := limiter.NewLimiter(p.cfg.IPS)
	defer lim.Stop()

	for !p.quit.Load() {
		if err := lim.Wait(ctx); err != nil {
			return nil
		}

		if err := p.m.Step(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			p.quit.Store(true)
			logger.Log(logger.Allow, "playmode", err)
			return curated.Errorf("playmode: %v", err)
		}
	}

	return nil
}

func (p *Play) clockTimers(ctx context.Context) {
	tck := time.NewTicker(timers.Period)
	defer tck.Stop()

	sinks := append([]gui.AudioSink(nil), p.sinks...)

	for {
		select {
		case <-ctx.Done():
			return
		case <-tck.C:
		}

		active := p.m.TickTimers()

		// a failed sink is removed
		n := 0
		for _, s := range sinks {
			if err := s.SetSound(active); err != nil {
				p.ioFailure("audio", err)
				continue
			}
			sinks[n] = s
			n++
		}
		sinks = sinks[:n]
	}
}

func (p *Play) refresh(ctx context.Context) {
	if p.renderer == nil {
		return
	}

	lim := limiter.NewLimiter(p.cfg.FPS)
	defer lim.Stop()

	for !p.quit.Load() {
		if err := lim.Wait(ctx); err != nil {
			return
		}
		if err := p.renderer.Render(p.m.Frame(), p.m.Keys()); err != nil {
			p.ioFailure("display refresh", err)
			return
		}
	}
}

func (p *Play) sample(ctx context.Context) {
	lim := limiter.NewLimiter(p.cfg.SampleRate)
	defer lim.Stop()

	for !p.quit.Load() {
		if err := lim.Wait(ctx); err != nil {
			return
		}
		if err := p.m.Sample(); err != nil {
			p.ioFailure("input sampling", err)
			return
		}
	}
}

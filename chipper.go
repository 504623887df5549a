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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/chipper-emu/chipper/curated"
	"github.com/chipper-emu/chipper/digest"
	"github.com/chipper-emu/chipper/disassembly"
	"github.com/chipper-emu/chipper/gui/sdlplay"
	"github.com/chipper-emu/chipper/gui/speaker"
	"github.com/chipper-emu/chipper/gui/terminal"
	"github.com/chipper-emu/chipper/hardware"
	"github.com/chipper-emu/chipper/hardware/input"
	"github.com/chipper-emu/chipper/logger"
	"github.com/chipper-emu/chipper/modalflag"
	"github.com/chipper-emu/chipper/performance"
	"github.com/chipper-emu/chipper/playmode"
	"github.com/chipper-emu/chipper/romloader"
	"github.com/chipper-emu/chipper/statsview"
	"github.com/chipper-emu/chipper/version"
	"github.com/chipper-emu/chipper/wavwriter"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when the mode provides its own
	// handler.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args any
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy()

	// Service() should not pause or loop longer than necessary. It MUST ONLY
	// be called as part of a larger loop from the main thread. Returns false
	// if the gui has been closed.
	Service() bool
}

// communication between the main() function and the launch() function. this is
// required because SDL requires window event handling (including creation) to
// occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc default handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync, os.Args[1:])

	// the gui is only serviced while it is open. when there is no gui to
	// service the loop blocks on the channels
	done := false
	var gui GuiCreator
	open := false

	for !done {
		var service <-chan time.Time
		if open {
			service = closedChan
		}

		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			if gui != nil {
				gui.Destroy()
				gui = nil
			}

			g, err := creator()
			if err != nil {
				sync.creationError <- err
			} else {
				gui = g
				open = true
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy()
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		case <-service:
			open = gui.Service()
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// a channel that is always ready. used to service the gui in the main loop
var closedChan = func() chan time.Time {
	c := make(chan time.Time)
	close(c)
	return c
}()

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync, args []string) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "DISASM", "PERFORMANCE")
	ver := md.AddBool("version", false, "print version and exit")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	if *ver {
		fmt.Println(version.String())
		sync.state <- stateRequest{req: reqQuit}
		return
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, sync)

	case "DISASM":
		err = disasm(md)

	case "PERFORMANCE":
		err = perform(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		logger.Postmortem(os.Stdout, 5)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// load the single ROM argument of the mode
func loadROM(md *modalflag.Modes) (romloader.Loader, error) {
	switch len(md.RemainingArgs()) {
	case 0:
		return romloader.Loader{}, curated.Errorf("program file required for %s mode", md)
	case 1:
		ld := romloader.NewLoader(md.GetArg(0))
		err := ld.Load()
		return ld, err
	default:
		return romloader.Loader{}, curated.Errorf("too many arguments for %s mode", md)
	}
}

func run(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	def := playmode.DefaultConfig()

	guiType := md.AddChoice("gui", "TERM", []string{"TERM", "SDL", "DIGEST"}, "user interface")
	ips := md.AddCount("ips", def.IPS, "instructions per second (0 for unlimited)")
	fps := md.AddCount("fps", def.FPS, "display refresh rate")
	sampleRate := md.AddCount("samplerate", def.SampleRate, "input samples per second")
	scale := md.AddCount("scale", 10, "window scaling (SDL only)")
	trace := md.AddString("trace", "", "write executed instructions to file")
	wav := md.AddString("wav", "", "record sound timer to wav file")
	beep := md.AddBool("beep", true, "play tone while the sound timer is active")
	keys := md.AddString("keys", "", "scripted key presses ('.' pause, '!' exit). keyboard is not read")
	log := md.AddBool("log", false, "echo log to stderr")
	verbose := md.AddBool("verbose", false, "include frequent entries in the log echo")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	memviz := md.AddString("memviz", "", "write graphviz of machine state to file on exit")
	seed := md.AddInt64("seed", 0, "random number seed (0 for current time)")
	duration := md.AddDuration("duration", 0, "end after duration (0 for no limit)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr, *verbose)
	} else {
		logger.SetEcho(nil, false)
	}

	ld, err := loadROM(md)
	if err != nil {
		return err
	}

	m := hardware.NewMachine(uint64(*seed))
	if err := m.LoadROM(ld.Data); err != nil {
		return err
	}

	if *trace != "" {
		f, err := os.Create(*trace)
		if err != nil {
			return err
		}
		defer f.Close()
		m.SetTrace(f)
	}

	// scripted input replaces the keyboard
	var script input.Source
	if *keys != "" {
		q, err := input.NewScript(*keys, max(*sampleRate/20, 1))
		if err != nil {
			return err
		}
		script = q
	}

	ply := playmode.NewPlay(m, playmode.Config{
		IPS:        *ips,
		FPS:        *fps,
		SampleRate: *sampleRate,
	})

	// playmode handles the interrupt signal
	sync.state <- stateRequest{req: reqNoIntSig}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}

	if *stats {
		statsview.Launch(ctx, md.Output, statsview.DefaultConfig())
	}

	if *wav != "" {
		aw, err := wavwriter.NewWavWriter(*wav)
		if err != nil {
			return err
		}
		ply.AttachAudio(aw)
		defer func() {
			if err := aw.EndMixing(); err != nil {
				logger.Log(logger.Allow, "chipper", err)
			}
		}()
	}

	if *beep {
		spk, err := speaker.NewSpeaker()
		if err != nil {
			// no audio device is not fatal
			logger.Log(logger.Allow, "chipper", err)
		} else {
			ply.AttachAudio(spk)
			defer spk.Close()
		}
	}

	switch *guiType {
	case "TERM":
		ply.AttachRenderer(terminal.NewRenderer(os.Stdout))
		if script != nil {
			m.AttachInput(script)
			break
		}

		term, err := terminal.NewTerminal(os.Stdin)
		if err != nil {
			return err
		}
		if err := term.RawMode(); err != nil {
			return err
		}
		defer term.CanonicalMode()
		m.AttachInput(terminal.NewKeyReader(term.Input(), terminal.DefaultHold))

	case "SDL":
		title := fmt.Sprintf("%s - %s", version.ApplicationName, ld.ShortName())
		sync.creator <- func() (GuiCreator, error) {
			scr, err := sdlplay.NewSdlPlay(int32(max(*scale, 1)), *fps)
			if err != nil {
				return nil, err
			}
			scr.SetTitle(title)
			return scr, nil
		}

		var scr *sdlplay.SdlPlay
		select {
		case g := <-sync.creation:
			scr = g.(*sdlplay.SdlPlay)
		case err := <-sync.creationError:
			return err
		}

		ply.AttachRenderer(scr)
		scr.SetExit(ply.Quit)
		if script != nil {
			m.AttachInput(script)
		} else {
			m.AttachInput(scr.Source())
		}

	case "DIGEST":
		vid := digest.NewVideo()
		aud := digest.NewAudio()
		ply.AttachRenderer(vid)
		ply.AttachAudio(aud)
		if script != nil {
			m.AttachInput(script)
		}
		defer func() {
			fmt.Fprintf(md.Output, "video: %s (%d frames)\n", vid.Hash(), vid.Frames())
			fmt.Fprintf(md.Output, "audio: %s\n", aud.Hash())
		}()

	default:
		return curated.Errorf("unknown gui type (%s)", *guiType)
	}

	logger.Logf(logger.Allow, "chipper", "running %s (sha1 %s)", ld.ShortName(), ld.Hash)

	err = ply.Run(ctx)
	logger.Logf(logger.Allow, "chipper", "run ended: %s", ply.State())

	if *memviz != "" {
		f, ferr := os.Create(*memviz)
		if ferr != nil {
			logger.Log(logger.Allow, "chipper", ferr)
		} else {
			m.Visualise(f)
			f.Close()
		}
	}

	if terr := m.TraceError(); terr != nil {
		logger.Log(logger.Allow, "chipper", terr)
	}

	return err
}

func disasm(md *modalflag.Modes) error {
	md.NewMode()

	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")
	blessed := md.AddBool("blessed", false, "only show instructions reachable from the start of the program")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ld, err := loadROM(md)
	if err != nil {
		return err
	}

	attr := disassembly.WriteAttr{
		ByteCode:    *bytecode,
		BlessedOnly: *blessed,
	}

	dsm := disassembly.FromROM(ld.Data)
	return dsm.Write(md.Output, attr)
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	duration := md.AddDuration("duration", 5*time.Second, "run duration (note: there is a 2s overhead)")
	target := md.AddCount("ips", playmode.DefaultConfig().IPS, "instruction rate to compare against")
	profile := md.AddString("profile", "NONE", "run through profiler: NONE, CPU, MEM, ALL")
	seed := md.AddInt64("seed", 1, "random number seed (0 for current time)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	ld, err := loadROM(md)
	if err != nil {
		return err
	}

	m := hardware.NewMachine(uint64(*seed))
	if err := m.LoadROM(ld.Data); err != nil {
		return err
	}

	return performance.Check(context.Background(), md.Output, m, prf, 2*time.Second, *duration, *target)
}

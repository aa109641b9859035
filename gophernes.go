// This file is part of GopherNES.
//
// GopherNES is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherNES is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherNES.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"

	"github.com/jetsetilly/gophernes/cartridgeloader"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/driver"
	"github.com/jetsetilly/gophernes/gui/sdlplay"
	"github.com/jetsetilly/gophernes/gui/termui"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/hardware/cartridge"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/mailbox"
	"github.com/jetsetilly/gophernes/modalflag"
	"github.com/jetsetilly/gophernes/paths"
	"github.com/jetsetilly/gophernes/performance"
	"github.com/jetsetilly/gophernes/preferences"
	"github.com/jetsetilly/gophernes/statsview"
	"github.com/jetsetilly/gophernes/userinput"
	"github.com/jetsetilly/gophernes/version"
	"github.com/jetsetilly/gophernes/wavwriter"
)

// exit values
const (
	exitOK    = 0
	exitParse = 10
	exitFatal = 20
)

// frontEnd is a presentation layer that must be created and serviced on the
// main thread.
type frontEnd interface {
	// the value returned by Presentation() must implement driver.Presentation
	Presentation() any

	// run the event loop until the driver stops
	Service(ctl *userinput.Controllers, mb userinput.Mailbox, interrupt <-chan os.Signal) error

	// cleanup resources used by the front-end
	Destroy()
}

// request for the main thread to run the event loop of the current front-end
type serviceRequest struct {
	ctl    *userinput.Controllers
	mb     userinput.Mailbox
	result chan error
}

// communication between the main() function and the launch() function. this is
// required because SDL requires window creation and event handling to occur
// on the main thread.
type mainSync struct {
	creator chan func() (frontEnd, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan frontEnd
	creationError chan error

	service chan serviceRequest

	// main thread should end as soon as possible with the exit value
	quit chan int
}

// make sure main() runs on the main thread
func init() {
	runtime.LockOSThread()
}

// #mainthread
func main() {
	sync := &mainSync{
		creator:       make(chan func() (frontEnd, error)),
		creation:      make(chan frontEnd),
		creationError: make(chan error),
		service:       make(chan serviceRequest),
		quit:          make(chan int),
	}

	// the value to use with os.Exit()
	exitVal := exitOK

	// #ctrlc handler. the event loops of the front-ends take over the handling
	// while they are running
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through the
	// mainSync instance
	go launch(sync)

	var fe frontEnd

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			if fe != nil {
				fe.Destroy()
				fe = nil
			}

			f, err := creator()
			if err != nil {
				sync.creationError <- err
			} else {
				fe = f
				sync.creation <- fe
			}

		case req := <-sync.service:
			if fe == nil {
				req.result <- curated.Errorf("no front-end to service")
			} else {
				req.result <- fe.Service(req.ctl, req.mb, intChan)
			}

		case exitVal = <-sync.quit:
			done = true
		}
	}

	if fe != nil {
		fe.Destroy()
	}

	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("PLAY", "TERM", "VERSION")
	md.AdditionalHelp("usage: gophernes [PLAY|TERM] [flags] rom.nes\n       gophernes VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.quit <- exitOK
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.quit <- exitParse
		return
	}

	switch md.Mode() {
	case "VERSION":
		fmt.Println(version.String())
	default:
		err = play(md, sync)
	}
	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md, err)
		sync.quit <- exitFatal
		return
	}

	sync.quit <- exitOK
}

func play(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	prf, err := preferences.NewPreferences()
	if err != nil {
		return err
	}

	palette := md.AddString("palette", "", "palette file (.pal)")
	state := md.AddString("state", "", "save state file (default: cartridge filename with .data extension)")
	load := md.AddBool("load", false, "load the save state on startup")
	debug := md.AddInt("debug", int(logger.Info), "log verbosity: 0 error, 1 warn, 2 info, 3 debug, 4 trace")
	log := md.AddBool("log", false, "echo log to stdout")
	cpulog := md.AddBool("cpulog", false, "log machine activity")
	audio := md.AddString("audio", prf.Audio.String(), "audio output: SDL, OTO, NONE")
	wav := md.AddString("wav", "", "record audio to wav file")
	speed := md.AddFloat64("speed", prf.Speed.Get().(float64), "emulation speed")
	overlay := md.AddBool("overlay", prf.Debug.Get().(bool), "show debug overlay on startup")
	scale := md.AddInt("scale", 2, "window scaling (PLAY mode only)")
	profile := md.AddString("profile", "none", "run profiler: CPU, MEM, TRACE, ALL (comma separated)")
	prefsOverride := md.AddString("prefs", "", "override preferences (eg. \"play.speed::2; play.audio::OTO\")")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set log level and echo
	lvl, ok := logger.ParseLevel(strconv.Itoa(*debug))
	logger.SetLevel(lvl)
	if !ok {
		logger.Logf(logger.Warn, "gophernes", "invalid debug level (%d). using %s", *debug, lvl)
	}
	if *log {
		logger.SetEcho(os.Stdout, true)
	} else {
		logger.SetEcho(nil, false)
	}

	logger.Log(logger.Info, "gophernes", version.String())

	// preferences given on the command line replace the defaults of flags
	// that have not been set explicitly
	if *prefsOverride != "" {
		if err := prf.Override(*prefsOverride); err != nil {
			return err
		}

		set := make(map[string]bool)
		md.Visit(func(flag string) {
			set[flag] = true
		})
		if !set["audio"] {
			*audio = prf.Audio.String()
		}
		if !set["speed"] {
			*speed = prf.Speed.Get().(float64)
		}
		if !set["overlay"] {
			*overlay = prf.Debug.Get().(bool)
		}
	}

	prof, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	if stats != nil && *stats {
		statsview.Launch(os.Stdout)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf("NES cartridge required for %s mode", md)
	case 1:
	default:
		return curated.Errorf("too many arguments for %s mode", md)
	}

	// failure to load the cartridge ends the program before any other
	// goroutine is started
	cart, err := cartridge.NewCartridge(cartridgeloader.NewLoader(md.GetArg(0)))
	if err != nil {
		return err
	}

	nes, err := hardware.NewNES(cart, hardware.Config{
		PalettePath: *palette,
		CPULog:      *cpulog,
		SampleRate:  driver.DefaultSampleRate,
	})
	if err != nil {
		return err
	}

	statePath := *state
	if statePath == "" {
		statePath = paths.StatePath(cart.Filename)
	}

	ctl := userinput.NewControllers(statePath, cart.BatteryPath(), *speed, uint8(prf.PaletteID.Get().(int)))
	if err := nes.SetDebugPaletteID(ctl.PaletteID()); err != nil {
		logger.Log(logger.Warn, "gophernes", err)
	}

	// create front-end
	mode := md.Mode()
	sync.creator <- func() (frontEnd, error) {
		if mode == "TERM" {
			return termui.NewTermUI(os.Stdout)
		}
		return sdlplay.NewSdlPlay(*scale)
	}

	// wait for creator result
	var fe frontEnd
	select {
	case fe = <-sync.creation:
	case err := <-sync.creationError:
		return err
	}

	pres, ok := fe.Presentation().(driver.Presentation)
	if !ok {
		return curated.Errorf("front-end does not implement the presentation interface")
	}

	aud, closeAudio, err := openAudio(*audio, driver.DefaultSampleRate)
	if err != nil {
		return curated.Errorf(driver.FatalAudio, err)
	}
	defer closeAudio()

	cfg := driver.Config{
		SampleRate: driver.DefaultSampleRate,
		Speed:      ctl.Speed(),
		Debug:      *overlay,
		LoadSave:   cart.Battery,
	}
	if *load {
		cfg.StartState = statePath
	}

	if *wav != "" {
		aw, err := wavwriter.New(*wav, driver.DefaultSampleRate)
		if err != nil {
			return err
		}
		defer func() {
			if err := aw.Close(); err != nil {
				logger.Log(logger.Warn, "gophernes", err)
			}
		}()
		cfg.Recorder = aw
	}

	mb := mailbox.NewMailbox(mailbox.DefaultCapacity)

	drv, err := driver.NewDriver(nes, pres, aud, mb, cfg)
	if err != nil {
		return err
	}

	err = performance.RunProfiler(prof, "gophernes", func() error {
		return run(drv, ctl, mb, sync)
	})
	if err != nil {
		return err
	}

	logger.Logf(logger.Info, "gophernes", "%d frames", drv.Frames())

	// save preferences before finishing successfully
	return savePreferences(prf, ctl.Speed(), ctl.PaletteID(), *audio, drv.Debug())
}

// savePreferences stores the values in the preferences and saves them to
// disk. A value that cannot be stored is logged and the remaining values are
// still saved.
func savePreferences(prf *preferences.Preferences, speed float64, paletteID uint8, audio string, debug bool) error {
	for _, err := range []error{
		prf.Speed.Set(speed),
		prf.PaletteID.Set(int(paletteID)),
		prf.Audio.Set(strings.ToUpper(audio)),
		prf.Debug.Set(debug),
	} {
		if err != nil {
			logger.Log(logger.Warn, "gophernes", err)
		}
	}

	return prf.Save()
}

// run the driver in its own goroutine while the main thread services the
// front-end. returns when both have finished
func run(drv *driver.Driver, ctl *userinput.Controllers, mb *mailbox.Mailbox, sync *mainSync) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	drvErr := make(chan error, 1)
	go func() {
		drvErr <- drv.Run(ctx)
	}()

	// the main thread services the front-end until the driver stops
	result := make(chan error, 1)
	sync.service <- serviceRequest{ctl: ctl, mb: mb, result: result}
	uiErr := <-result

	// the producer end of the mailbox is finished with. if the driver is still
	// running then it will see the disconnection
	mb.Close()

	if err := <-drvErr; err != nil {
		return err
	}
	return uiErr
}

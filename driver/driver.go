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

package driver

import (
	"context"
	"math"
	"runtime"
	"time"

	"github.com/jetsetilly/gophernes/backpressure"
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/overlay"
	"github.com/jetsetilly/gophernes/performance/limiter"
	"github.com/jetsetilly/gophernes/video"
)

// Limits of the emulation speed. Requested speeds outside of this range are
// clamped.
const (
	MinSpeed = 0.25
	MaxSpeed = 8.0
)

// DefaultSampleRate is the sample rate assumed when Config.SampleRate is
// zero.
const DefaultSampleRate = 44100

// ClampSpeed limits the speed factor to the range MinSpeed to MaxSpeed. A
// value that is not a number is treated as normal speed.
func ClampSpeed(speed float64) float64 {
	if math.IsNaN(speed) {
		return 1.0
	}
	return math.Max(MinSpeed, math.Min(MaxSpeed, speed))
}

// Config for a new Driver. The zero value is a usable configuration.
type Config struct {
	// sample rate of the audio queue. used to calculate the default audio
	// floor
	SampleRate int

	// target occupancy of the audio queue. zero means the default floor for
	// the sample rate
	AudioFloor int

	// initial speed of the emulation. zero means normal speed
	Speed float64

	// show the debug overlay from the start
	Debug bool

	// load the cartridge battery before the first clock
	LoadSave bool

	// load a save state before the first clock
	StartState string

	// receives a copy of every batch of audio samples
	Recorder backpressure.Recorder

	// clock and sleep functions for the pacer. nil means the time package
	Now   func() time.Time
	Sleep func(time.Duration)
}

// Driver runs the emulation loop.
type Driver struct {
	machine Machine
	pres    Presentation
	mail    Mailbox
	audio   *backpressure.Controller
	pacer   *limiter.Pacer
	fps     FPSDisplay
	cfg     Config

	debug       bool
	debugBuffer video.DebugBuffer

	// number of frames completed
	frameNum int

	// measured frame rate most recently given to the FPSDisplay
	lastFPS float32
}

// NewDriver is the preferred method of initialisation for the Driver type. A
// nil AudioQueue means that audio is discarded.
func NewDriver(machine Machine, pres Presentation, audio AudioQueue, mail Mailbox, cfg Config) (*Driver, error) {
	if machine == nil {
		return nil, curated.Errorf("driver: no machine")
	}
	if pres == nil {
		return nil, curated.Errorf("driver: no presentation")
	}
	if mail == nil {
		return nil, curated.Errorf("driver: no mailbox")
	}
	if audio == nil {
		audio = nullQueue{}
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultSampleRate
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Sleep == nil {
		cfg.Sleep = time.Sleep
	}

	drv := &Driver{
		machine: machine,
		pres:    pres,
		mail:    mail,
		cfg:     cfg,
		audio:   backpressure.NewController(audio, cfg.SampleRate, cfg.AudioFloor),
		pacer:   limiter.NewPacerWithClock(machine.OneFrameDuration(), cfg.Now, cfg.Sleep),
	}

	if cfg.Recorder != nil {
		drv.audio.SetRecorder(cfg.Recorder)
	}

	if fps, ok := pres.(FPSDisplay); ok {
		drv.fps = fps
	}

	if cfg.Speed != 0 {
		drv.setSpeed(cfg.Speed)
	}

	return drv, nil
}

// Speed returns the current emulation speed.
func (drv *Driver) Speed() float64 {
	return drv.pacer.Speed()
}

// Target returns the target duration of one frame at the current speed.
func (drv *Driver) Target() time.Duration {
	return drv.pacer.Target()
}

// Debug returns true if the debug overlay is being drawn.
func (drv *Driver) Debug() bool {
	return drv.debug
}

// Frames returns the number of completed frames.
func (drv *Driver) Frames() int {
	return drv.frameNum
}

// Run the emulation until a CloseApp command is received or until a fatal
// error occurs. The context is checked once per frame. Cancellation is a
// fatal error.
func (drv *Driver) Run(ctx context.Context) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	defer drv.mail.Done()

	drv.start()

	for {
		drv.machine.Clock()

		cmd, err := drv.mail.Poll()
		if err != nil {
			return curated.Errorf(Disconnected, err)
		}

		if cmd != nil {
			end, err := drv.dispatch(cmd)
			if err != nil {
				return err
			}
			if end {
				return nil
			}
		}

		if fb, ok := drv.machine.FrameBuffer(); ok {
			drv.frame(fb)

			select {
			case <-ctx.Done():
				return curated.Errorf(Cancelled, ctx.Err())
			default:
			}
		}
	}
}

// preparation before the first clock
func (drv *Driver) start() {
	drv.pres.SetDebug(drv.cfg.Debug)
	drv.debug = drv.cfg.Debug

	if drv.cfg.LoadSave {
		if err := drv.machine.LoadSave(); err != nil {
			logger.Log(logger.Info, "driver", err)
		} else {
			logger.Log(logger.Info, "driver", "battery save loaded")
		}
	}

	if drv.cfg.StartState != "" {
		drv.loadState(drv.cfg.StartState)
	}

	drv.pacer.Reset()
}

// handle a completed frame
func (drv *Driver) frame(fb *video.FrameBuffer) {
	drv.frameNum++

	drv.pres.UpdatePrimaryBuffer(fb)

	if drv.debug {
		drv.composeDebug()
	}

	if err := drv.pres.Render(); err != nil {
		logger.Log(logger.Warn, "driver", err)
	}
	drv.pres.RequestRedraw()

	if err := drv.audio.Step(drv.machine); err != nil {
		logger.Log(logger.Warn, "driver", err)
	}

	drv.pacer.Pace()

	if drv.fps != nil {
		if m := drv.pacer.Measured(); m != drv.lastFPS {
			drv.lastFPS = m
			drv.fps.SetFPS(m)
		}
	}
}

func (drv *Driver) composeDebug() {
	pt0, ok := drv.machine.PatternTable(0)
	if !ok {
		return
	}
	pt1, ok := drv.machine.PatternTable(1)
	if !ok {
		return
	}
	pal, ok := drv.machine.Palette()
	if !ok {
		return
	}
	overlay.Compose(&drv.debugBuffer, pt0, pt1, pal)
	drv.pres.UpdateDebugBuffer(&drv.debugBuffer)
}

func (drv *Driver) setSpeed(speed float64) {
	c := ClampSpeed(speed)
	if c != speed {
		logger.Logf(logger.Warn, "driver", "speed %.2f clamped to %.2f", speed, c)
	}
	drv.pacer.SetSpeed(c)
}

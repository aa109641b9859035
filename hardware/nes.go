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

package hardware

import (
	"math"
	"math/bits"
	"time"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/hardware/cartridge"
	"github.com/jetsetilly/gophernes/hardware/palette"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/video"
)

// Timing of the machine.
const (
	DotsPerScanline = 341
	Scanlines       = 262
	DotsPerFrame    = DotsPerScanline * Scanlines

	// NTSC dot clock in dots per second
	DotClock = 5369318
)

// NumControllers is the number of controller ports.
const NumControllers = 2

// NumPaletteIDs is the number of palette groups that can be used to draw the
// pattern tables in the debug overlay.
const NumPaletteIDs = 8

// palette RAM values at power on
var powerOnPalette = [video.PaletteSize]uint8{
	0x09, 0x01, 0x00, 0x01, 0x00, 0x02, 0x02, 0x0d,
	0x08, 0x10, 0x08, 0x24, 0x00, 0x00, 0x04, 0x2c,
	0x09, 0x01, 0x34, 0x03, 0x00, 0x04, 0x00, 0x14,
	0x08, 0x3a, 0x00, 0x02, 0x00, 0x20, 0x2c, 0x08,
}

// Config for a new NES.
type Config struct {
	// .pal file to use for the system palette. empty string means the
	// default palette
	PalettePath string

	// log every frame and every controller change
	CPULog bool

	// sample rate of the audio output. zero means 44100
	SampleRate int
}

// NES is the reference machine.
type NES struct {
	cart *cartridge.Cartridge
	cfg  Config

	system palette.System

	// everything in the state type is included in save states
	state state

	frame      video.FrameBuffer
	frameReady bool

	debugPaletteID uint8
	patterns       [2]video.PatternTable
	patternsDirty  bool
	palette        video.Palette

	producing bool
	samples   []float32
	sampleAcc int
}

// NewNES is the preferred method of initialisation for the NES type.
func NewNES(cart *cartridge.Cartridge, cfg Config) (*NES, error) {
	if cart == nil {
		return nil, curated.Errorf("nes: no cartridge")
	}

	if cfg.SampleRate <= 0 {
		cfg.SampleRate = 44100
	}

	nes := &NES{
		cart:          cart,
		cfg:           cfg,
		system:        palette.Default(),
		patternsDirty: true,
	}

	if cfg.PalettePath != "" {
		sys, err := palette.Load(cfg.PalettePath)
		if err != nil {
			return nil, curated.Errorf("nes: %v", err)
		}
		nes.system = sys
		logger.Logf(logger.Info, "nes", "palette loaded from %s", cfg.PalettePath)
	}

	nes.state.PaletteRAM = powerOnPalette
	nes.state.reset()

	return nes, nil
}

// Cartridge returns the cartridge inserted into the machine.
func (nes *NES) Cartridge() *cartridge.Cartridge {
	return nes.cart
}

// FrameNum returns the number of frames completed since the machine was
// created or reset.
func (nes *NES) FrameNum() int {
	return nes.state.Frame
}

// Cursor returns the position of the cursor.
func (nes *NES) Cursor() (int, int) {
	return nes.state.CursorX, nes.state.CursorY
}

// Clock advances the machine by one dot.
func (nes *NES) Clock() {
	nes.frameReady = false

	nes.sampleAcc += nes.cfg.SampleRate
	if nes.sampleAcc >= DotClock {
		nes.sampleAcc -= DotClock
		if nes.producing {
			nes.samples = append(nes.samples, nes.sample())
		}
	}

	nes.state.Dot++
	if nes.state.Dot >= DotsPerFrame {
		nes.state.Dot = 0
		nes.endFrame()
	}
}

func (nes *NES) endFrame() {
	nes.state.Frame++
	nes.moveCursor()
	nes.render()
	nes.frameReady = true

	if nes.cfg.CPULog {
		logger.Logf(logger.Allow, "nes", "frame %d: cursor %d,%d", nes.state.Frame, nes.state.CursorX, nes.state.CursorY)
	}
}

// the cursor is moved one pixel per frame in the direction held on the first
// controller. the position is kept in battery RAM
func (nes *NES) moveCursor() {
	b := nes.state.Controllers[0]
	if b&buttonLeft == buttonLeft {
		nes.state.CursorX--
	}
	if b&buttonRight == buttonRight {
		nes.state.CursorX++
	}
	if b&buttonUp == buttonUp {
		nes.state.CursorY--
	}
	if b&buttonDown == buttonDown {
		nes.state.CursorY++
	}

	nes.state.CursorX = (nes.state.CursorX + video.Width) % video.Width
	nes.state.CursorY = (nes.state.CursorY + video.Height) % video.Height

	nes.cart.SRAM[0] = uint8(nes.state.CursorX)
	nes.cart.SRAM[1] = uint8(nes.state.CursorY)
}

// controller bits. the same values as the mailbox button constants
const (
	buttonA uint8 = 1 << iota
	buttonB
	buttonSelect
	buttonStart
	buttonUp
	buttonDown
	buttonLeft
	buttonRight
)

// the audio tone amplitude
const amplitude = 0.1

// the next audio sample. a square wave with a frequency chosen by the lowest
// button held on the first controller. silence if no button is held
func (nes *NES) sample() float32 {
	b := nes.state.Controllers[0]
	if b == 0 {
		nes.state.Phase = 0
		return 0
	}

	freq := 220.0 * math.Pow(2, float64(bits.TrailingZeros8(b))/4)
	nes.state.Phase += freq / float64(nes.cfg.SampleRate)
	if nes.state.Phase >= 1.0 {
		nes.state.Phase -= 1.0
	}

	if nes.state.Phase < 0.5 {
		return amplitude
	}
	return -amplitude
}

// FrameBuffer implements the driver.Machine interface.
func (nes *NES) FrameBuffer() (*video.FrameBuffer, bool) {
	return &nes.frame, nes.frameReady
}

// PatternTable implements the driver.Machine interface.
func (nes *NES) PatternTable(idx int) (*video.PatternTable, bool) {
	if idx < 0 || idx > 1 {
		return nil, false
	}
	if nes.patternsDirty {
		nes.decodePatterns(nes.debugPaletteID, &nes.patterns)
		nes.patternsDirty = false
	}
	return &nes.patterns[idx], true
}

// Palette implements the driver.Machine interface.
func (nes *NES) Palette() (*video.Palette, bool) {
	for i, v := range nes.state.PaletteRAM {
		nes.palette[i] = nes.system.Lookup(v)
	}
	return &nes.palette, true
}

// ProduceSamples implements the driver.Machine interface.
func (nes *NES) ProduceSamples(v bool) {
	nes.producing = v
}

// IsProducingSamples implements the driver.Machine interface.
func (nes *NES) IsProducingSamples() bool {
	return nes.producing
}

// Samples implements the driver.Machine interface. The returned slice
// belongs to the caller.
func (nes *NES) Samples() []float32 {
	s := nes.samples
	nes.samples = nil
	return s
}

// Input implements the driver.Machine interface.
func (nes *NES) Input(controller int, buttons uint8) error {
	if controller < 0 || controller >= NumControllers {
		return curated.Errorf("nes: no controller port %d", controller)
	}
	if nes.cfg.CPULog && nes.state.Controllers[controller] != buttons {
		logger.Logf(logger.Allow, "nes", "controller %d: %08b", controller, buttons)
	}
	nes.state.Controllers[controller] = buttons
	return nil
}

// Reset implements the driver.Machine interface. The cartridge and palette
// RAM are not affected.
func (nes *NES) Reset() {
	nes.state.reset()
	nes.frameReady = false
	nes.samples = nil
	nes.sampleAcc = 0
}

// SetDebugPaletteID implements the driver.Machine interface.
func (nes *NES) SetDebugPaletteID(id uint8) error {
	if id >= NumPaletteIDs {
		return curated.Errorf("nes: palette id out of range (%d)", id)
	}
	if id != nes.debugPaletteID {
		nes.debugPaletteID = id
		nes.patternsDirty = true
	}
	return nil
}

// DebugPaletteID returns the palette group used to draw the pattern tables.
func (nes *NES) DebugPaletteID() uint8 {
	return nes.debugPaletteID
}

// OneFrameDuration implements the driver.Machine interface.
func (nes *NES) OneFrameDuration() time.Duration {
	return time.Duration(DotsPerFrame) * time.Second / DotClock
}

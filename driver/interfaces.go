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
	"time"

	"github.com/jetsetilly/gophernes/mailbox"
	"github.com/jetsetilly/gophernes/video"
)

// Machine is a cycle stepped emulated machine. Only the driver calls these
// functions.
type Machine interface {
	// advance the machine by one step
	Clock()

	// returns the completed frame and true if a frame was completed by the
	// most recent call to Clock()
	FrameBuffer() (*video.FrameBuffer, bool)

	// pattern tables and palette of the machine, as used by the debug
	// overlay. the second return value is false if the data is not
	// available
	PatternTable(idx int) (*video.PatternTable, bool)
	Palette() (*video.Palette, bool)

	// audio sample production. Samples() returns the samples generated
	// since the previous call
	ProduceSamples(bool)
	IsProducingSamples() bool
	Samples() []float32

	Input(controller int, buttons uint8) error
	Reset()
	SetDebugPaletteID(id uint8) error

	// battery save and save states
	Save() error
	SaveState(path string) error
	LoadSave() error
	LoadState(path string) error

	// the duration of one frame at normal speed
	OneFrameDuration() time.Duration
}

// Presentation receives completed frames from the driver. Implementations
// are called from the driver goroutine and must not block.
type Presentation interface {
	UpdatePrimaryBuffer(*video.FrameBuffer)
	UpdateDebugBuffer(*video.DebugBuffer)
	SetDebug(bool)
	Resize(width int, height int)
	RequestRedraw()
	Render() error
}

// AudioQueue is the audio device queue. Size() is measured in sample frames.
type AudioQueue interface {
	Size() int
	Queue(samples []float32) error
}

// Mailbox is the consumer end of the command mailbox.
type Mailbox interface {
	Poll() (mailbox.Command, error)
	Done()
}

// FPSDisplay is an optional interface for a Presentation. If the
// presentation implements it then it is told the measured frame rate about
// once a second.
type FPSDisplay interface {
	SetFPS(fps float32)
}

// the audio queue used when no audio queue is given to the driver
type nullQueue struct{}

func (nullQueue) Size() int {
	return 0
}

func (nullQueue) Queue(_ []float32) error {
	return nil
}

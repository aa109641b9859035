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

package gui

import (
	"sync"
	"sync/atomic"

	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/video"
)

// Snapshot is a rendered frame. Pixels are four bytes per pixel in RGBA
// order.
type Snapshot struct {
	Width  int
	Height int
	Pixels []byte

	// the number of frames rendered by the surface when the snapshot was
	// taken
	Frame int
}

// Size of the presentation window.
type Size struct {
	Width  int
	Height int
}

// Surface implements the driver.Presentation interface.
type Surface struct {
	// fields below are only accessed by the driver goroutine
	primary  video.FrameBuffer
	overlay  video.DebugBuffer
	hasFrame bool
	rendered int

	// whether the debug overlay is shown. written by the driver goroutine and
	// read by the UI thread
	debug atomic.Bool

	// the most recent snapshot. the channel has a capacity of one
	frames chan *Snapshot

	// the most recent window size reported by the UI thread. the window is
	// never resized to this value, the renderer scales to the window
	size atomic.Pointer[Size]

	// called by RequestRedraw()
	redraw func()

	pool sync.Pool
}

// NewSurface is the preferred method of initialisation for the Surface type.
// The redraw function is called by RequestRedraw() and should wake the UI
// thread. It may be nil.
func NewSurface(redraw func()) *Surface {
	srf := &Surface{
		frames: make(chan *Snapshot, 1),
		redraw: redraw,
	}
	srf.pool.New = func() any {
		return &Snapshot{
			Pixels: make([]byte, video.Width*video.CombinedHeight*4),
		}
	}
	return srf
}

// Frames returns the channel on which snapshots are sent to the UI thread.
func (srf *Surface) Frames() <-chan *Snapshot {
	return srf.frames
}

// WindowSize returns the most recent size given to Resize(). The bool is
// false if there has been no resize.
func (srf *Surface) WindowSize() (Size, bool) {
	sz := srf.size.Load()
	if sz == nil {
		return Size{}, false
	}
	return *sz, true
}

// Recycle returns a snapshot to the surface once it has been drawn by the UI
// thread.
func (srf *Surface) Recycle(s *Snapshot) {
	if s != nil {
		srf.pool.Put(s)
	}
}

// Debug returns true if the debug overlay is shown.
func (srf *Surface) Debug() bool {
	return srf.debug.Load()
}

// Height returns the height of the surface. This depends on whether the
// debug overlay is shown.
func (srf *Surface) Height() int {
	if srf.debug.Load() {
		return video.CombinedHeight
	}
	return video.Height
}

// Rendered returns the number of snapshots created by Render().
func (srf *Surface) Rendered() int {
	return srf.rendered
}

// UpdatePrimaryBuffer implements the driver.Presentation interface.
func (srf *Surface) UpdatePrimaryBuffer(fb *video.FrameBuffer) {
	srf.primary = *fb
	srf.hasFrame = true
}

// UpdateDebugBuffer implements the driver.Presentation interface.
func (srf *Surface) UpdateDebugBuffer(db *video.DebugBuffer) {
	srf.overlay = *db
}

// SetDebug implements the driver.Presentation interface. The height of the
// surface changes and the UI thread should resize the window when it sees a
// snapshot with the new height.
func (srf *Surface) SetDebug(debug bool) {
	if srf.debug.Swap(debug) == debug {
		return
	}
	if !debug {
		// the overlay is composed again when it is next shown
		srf.overlay = video.DebugBuffer{}
	}
}

// Resize implements the driver.Presentation interface. The size is the size
// of the window in screen pixels.
func (srf *Surface) Resize(width int, height int) {
	if width <= 0 || height <= 0 {
		logger.Logf(logger.Debug, "gui", "ignoring resize to %dx%d", width, height)
		return
	}
	srf.size.Store(&Size{Width: width, Height: height})
	logger.Logf(logger.Debug, "gui", "window is %dx%d", width, height)
}

// RequestRedraw implements the driver.Presentation interface.
func (srf *Surface) RequestRedraw() {
	if srf.redraw != nil {
		srf.redraw()
	}
}

// Render implements the driver.Presentation interface. Nothing happens if no
// frame has been given to the surface.
func (srf *Surface) Render() error {
	if !srf.hasFrame {
		return nil
	}

	s := srf.pool.Get().(*Snapshot)
	s.Width = video.Width
	s.Height = srf.Height()
	s.Pixels = s.Pixels[:s.Width*s.Height*4]

	video.CopyRGBA(s.Pixels, srf.primary[:])
	if s.Height == video.CombinedHeight {
		video.CopyRGBA(s.Pixels[len(srf.primary)*4:], srf.overlay[:])
	}

	srf.rendered++
	s.Frame = srf.rendered

	if old := offer(srf.frames, s); old != nil {
		srf.pool.Put(old)
	}

	return nil
}

// offer a value to a channel with a capacity of one. any value already in the
// channel is replaced and returned.
func offer[T any](ch chan T, v T) T {
	var old T
	for {
		select {
		case ch <- v:
			return old
		default:
		}
		select {
		case old = <-ch:
		default:
		}
	}
}

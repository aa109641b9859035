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

package gui_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/driver"
	"github.com/jetsetilly/gophernes/gui"
	"github.com/jetsetilly/gophernes/test"
	"github.com/jetsetilly/gophernes/video"
)

func receive(t *testing.T, srf *gui.Surface) *gui.Snapshot {
	t.Helper()
	select {
	case s := <-srf.Frames():
		return s
	default:
		t.Fatalf("expected a snapshot")
	}
	return nil
}

func TestSurfaceImplementsPresentation(t *testing.T) {
	test.DemandImplements[driver.Presentation](t, gui.NewSurface(nil))
	test.DemandImplements[driver.FPSDisplay](t, &struct {
		*gui.Surface
		gui.TitleFPS
	}{})
}

func TestNoFrame(t *testing.T) {
	srf := gui.NewSurface(nil)
	test.ExpectSuccess(t, srf.Render())
	test.ExpectEquality(t, len(srf.Frames()), 0)
	test.ExpectEquality(t, srf.Rendered(), 0)
}

func TestRender(t *testing.T) {
	var redraws int
	srf := gui.NewSurface(func() { redraws++ })

	var fb video.FrameBuffer
	fb[0] = video.Color{R: 1, G: 2, B: 3, A: 255}
	fb[len(fb)-1] = video.Color{R: 4, G: 5, B: 6, A: 255}
	srf.UpdatePrimaryBuffer(&fb)

	// changes to the frame buffer after the update are not seen by the surface
	fb[0] = video.Black

	test.ExpectSuccess(t, srf.Render())
	srf.RequestRedraw()
	test.ExpectEquality(t, redraws, 1)

	s := receive(t, srf)
	test.ExpectEquality(t, s.Width, video.Width)
	test.ExpectEquality(t, s.Height, video.Height)
	test.ExpectEquality(t, len(s.Pixels), video.Width*video.Height*4)
	test.ExpectEquality(t, s.Pixels[0], uint8(1))
	test.ExpectEquality(t, s.Pixels[1], uint8(2))
	test.ExpectEquality(t, s.Pixels[2], uint8(3))
	test.ExpectEquality(t, s.Pixels[len(s.Pixels)-4], uint8(4))
	test.ExpectEquality(t, s.Pixels[len(s.Pixels)-1], uint8(255))
	srf.Recycle(s)
}

func TestMostRecentSnapshot(t *testing.T) {
	srf := gui.NewSurface(nil)

	var fb video.FrameBuffer
	srf.UpdatePrimaryBuffer(&fb)
	test.ExpectSuccess(t, srf.Render())
	test.ExpectSuccess(t, srf.Render())
	test.ExpectSuccess(t, srf.Render())

	s := receive(t, srf)
	test.ExpectEquality(t, s.Frame, 3)
	test.ExpectEquality(t, len(srf.Frames()), 0)
}

func TestDebugOverlay(t *testing.T) {
	srf := gui.NewSurface(nil)

	srf.SetDebug(true)
	test.ExpectSuccess(t, srf.Debug())
	test.ExpectEquality(t, srf.Height(), video.CombinedHeight)

	// a change in debug state does not change the window size
	_, ok := srf.WindowSize()
	test.ExpectFailure(t, ok)

	var fb video.FrameBuffer
	var db video.DebugBuffer
	db[0] = video.Color{R: 10, G: 20, B: 30, A: 255}
	srf.UpdatePrimaryBuffer(&fb)
	srf.UpdateDebugBuffer(&db)
	test.ExpectSuccess(t, srf.Render())

	s := receive(t, srf)
	test.ExpectEquality(t, s.Height, video.CombinedHeight)
	test.ExpectEquality(t, len(s.Pixels), video.Width*video.CombinedHeight*4)
	o := video.Width * video.Height * 4
	test.ExpectEquality(t, s.Pixels[o], uint8(10))
	test.ExpectEquality(t, s.Pixels[o+1], uint8(20))
	test.ExpectEquality(t, s.Pixels[o+2], uint8(30))
	srf.Recycle(s)

	srf.SetDebug(false)
	test.ExpectFailure(t, srf.Debug())
	test.ExpectSuccess(t, srf.Render())
	s = receive(t, srf)
	test.ExpectEquality(t, s.Height, video.Height)
	test.ExpectEquality(t, len(s.Pixels), video.Width*video.Height*4)
}

func TestResize(t *testing.T) {
	srf := gui.NewSurface(nil)

	srf.Resize(0, 100)
	_, ok := srf.WindowSize()
	test.ExpectFailure(t, ok)

	// only the most recent size is kept. nothing is queued for the UI thread
	// to apply to the window
	srf.Resize(100, 100)
	srf.Resize(512, 480)
	sz, ok := srf.WindowSize()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, sz, gui.Size{Width: 512, Height: 480})

	// a resize does not produce a snapshot
	test.ExpectEquality(t, len(srf.Frames()), 0)
}

func TestTitleFPS(t *testing.T) {
	var f gui.TitleFPS
	test.ExpectEquality(t, f.Title("GopherNES"), "GopherNES")
	f.SetFPS(59.94)
	test.ExpectEquality(t, f.Title("GopherNES"), "GopherNES (59.9 fps)")
}

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

package sdlplay

import (
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/gui"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/video"
	"github.com/veandco/go-sdl2/sdl"
)

const pixelDepth = 4

// WindowTitle is the title of the window when no frame rate has been measured.
const WindowTitle = "GopherNES"

// SdlPlay is a simple SDL implementation of the presentation layer.
type SdlPlay struct {
	// the surface is the driver.Presentation. fps is set by the driver too
	srf *gui.Surface
	fps gui.TitleFPS

	// the type of the user event pushed by RequestRedraw()
	redrawEvent uint32

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// the height of the texture. this changes when the debug overlay is shown
	// or hidden
	texHeight int32

	// the integer scaling applied to the window
	scale int32

	title string
}

// presentation joins the surface with the FPS display so that the driver
// sees both interfaces
type presentation struct {
	*gui.Surface
	*gui.TitleFPS
}

// NewSdlPlay is the preferred method of initialisation for SdlPlay. It must
// be called from the main thread. SDL is initialised with the video and audio
// subsystems.
func NewSdlPlay(scale int) (*SdlPlay, error) {
	if scale < 1 {
		scale = 1
	}

	scr := &SdlPlay{
		scale: int32(scale),
		title: WindowTitle,
	}

	var err error

	err = sdl.Init(sdl.INIT_VIDEO | sdl.INIT_AUDIO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.redrawEvent = sdl.RegisterEvents(1)
	if scr.redrawEvent == ^uint32(0) {
		return nil, curated.Errorf("sdlplay: %v", "cannot register redraw event")
	}

	scr.srf = gui.NewSurface(scr.pushRedraw)

	scr.window, err = sdl.CreateWindow(WindowTitle,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		video.Width*scr.scale, video.Height*scr.scale,
		uint32(sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	scr.renderer, err = sdl.CreateRenderer(scr.window, -1, uint32(sdl.RENDERER_ACCELERATED))
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	err = scr.resizeTexture(video.Height)
	if err != nil {
		return nil, curated.Errorf("sdlplay: %v", err)
	}

	// mouse events are not used
	sdl.EventState(sdl.MOUSEMOTION, sdl.IGNORE)

	return scr, nil
}

// Presentation returns the value to be given to the driver. It implements
// driver.Presentation and driver.FPSDisplay.
func (scr *SdlPlay) Presentation() any {
	return presentation{Surface: scr.srf, TitleFPS: &scr.fps}
}

// Surface returns the surface drawn by the window.
func (scr *SdlPlay) Surface() *gui.Surface {
	return scr.srf
}

// Destroy the window and quit SDL. Must be called from the main thread.
func (scr *SdlPlay) Destroy() {
	if scr.texture != nil {
		if err := scr.texture.Destroy(); err != nil {
			logger.Log(logger.Warn, "sdlplay", err)
		}
	}
	if scr.renderer != nil {
		if err := scr.renderer.Destroy(); err != nil {
			logger.Log(logger.Warn, "sdlplay", err)
		}
	}
	if scr.window != nil {
		if err := scr.window.Destroy(); err != nil {
			logger.Log(logger.Warn, "sdlplay", err)
		}
	}
	sdl.Quit()
}

// called by the driver goroutine. PushEvent() is safe to call from any thread
func (scr *SdlPlay) pushRedraw() {
	_, err := sdl.PushEvent(&sdl.UserEvent{Type: scr.redrawEvent})
	if err != nil {
		logger.Log(logger.Debug, "sdlplay", err)
	}
}

// recreate the texture with a new height and resize the window to keep the
// current scaling
func (scr *SdlPlay) resizeTexture(height int32) error {
	if scr.texture != nil {
		if err := scr.texture.Destroy(); err != nil {
			return err
		}
	}

	var err error

	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		video.Width, height)
	if err != nil {
		return err
	}
	scr.texHeight = height

	scr.window.SetSize(video.Width*scr.scale, height*scr.scale)

	logger.Logf(logger.Debug, "sdlplay", "texture size %dx%d", video.Width, height)

	return nil
}

// draw the snapshot to the window
func (scr *SdlPlay) draw(s *gui.Snapshot) error {
	if int32(s.Height) != scr.texHeight {
		if err := scr.resizeTexture(int32(s.Height)); err != nil {
			return err
		}
	}

	pixels, pitch, err := scr.texture.Lock(nil)
	if err != nil {
		return err
	}
	w := s.Width * pixelDepth
	for y := range s.Height {
		copy(pixels[y*pitch:y*pitch+w], s.Pixels[y*w:(y+1)*w])
	}
	scr.texture.Unlock()

	if err := scr.renderer.Clear(); err != nil {
		return err
	}

	if err := scr.renderer.Copy(scr.texture, nil, nil); err != nil {
		return err
	}

	scr.renderer.Present()

	return nil
}

// update the window title if the frame rate has changed
func (scr *SdlPlay) updateTitle() {
	title := scr.fps.Title(WindowTitle)
	if title != scr.title {
		scr.title = title
		scr.window.SetTitle(title)
	}
}

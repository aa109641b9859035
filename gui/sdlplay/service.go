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
	"os"

	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// the maximum time in milliseconds to wait for an SDL event. the driver
// pushes a redraw event for every frame so the timeout is only reached when
// the driver is slow or stopped
const serviceTimeout = 20

// Service runs the event loop until the driver stops. Must be called from
// the main thread. A value on the interrupt channel is treated as the window
// closing. The returned error is the error from HandleUserInput(), which is
// always fatal.
func (scr *SdlPlay) Service(ctl *userinput.Controllers, mb userinput.Mailbox, interrupt <-chan os.Signal) error {
	for {
		select {
		case <-mb.Stopped():
			return nil
		case <-interrupt:
			if err := ctl.HandleUserInput(userinput.EventQuit{}, mb); err != nil {
				return err
			}
		default:
		}

		if ev := translate(sdl.WaitEventTimeout(serviceTimeout)); ev != nil {
			if err := ctl.HandleUserInput(ev, mb); err != nil {
				return err
			}
		}

		select {
		case s := <-scr.srf.Frames():
			if err := scr.draw(s); err != nil {
				logger.Log(logger.Warn, "sdlplay", err)
			}
			scr.srf.Recycle(s)
		default:
		}

		scr.updateTitle()
	}
}

// translate an SDL event into a userinput event. returns nil if the event is
// not used
func translate(ev sdl.Event) userinput.Event {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return userinput.EventQuit{}

	case *sdl.KeyboardEvent:
		return userinput.EventKeyboard{
			Key:    sdl.GetKeyName(ev.Keysym.Sym),
			Down:   ev.Type == sdl.KEYDOWN,
			Repeat: ev.Repeat != 0,
			Mod:    keyMod(),
		}

	case *sdl.WindowEvent:
		if ev.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return userinput.EventWindowResized{
				Width:  int(ev.Data1),
				Height: int(ev.Data2),
			}
		}
	}

	// user events pushed by the driver only wake the loop
	return nil
}

func keyMod() userinput.KeyMod {
	mod := sdl.GetModState()
	if mod&sdl.KMOD_LALT == sdl.KMOD_LALT || mod&sdl.KMOD_RALT == sdl.KMOD_RALT {
		return userinput.KeyModAlt
	}
	if mod&sdl.KMOD_LSHIFT == sdl.KMOD_LSHIFT || mod&sdl.KMOD_RSHIFT == sdl.KMOD_RSHIFT {
		return userinput.KeyModShift
	}
	if mod&sdl.KMOD_LCTRL == sdl.KMOD_LCTRL || mod&sdl.KMOD_RCTRL == sdl.KMOD_RCTRL {
		return userinput.KeyModCtrl
	}
	return userinput.KeyModNone
}

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
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/mailbox"
	"github.com/jetsetilly/gophernes/video"
)

// dispatch applies a single command. The bool return value is true if the
// driver should stop. A non-nil error is always fatal.
func (drv *Driver) dispatch(cmd mailbox.Command) (bool, error) {
	switch c := cmd.(type) {
	case mailbox.Input:
		logger.Log(logger.Trace, "driver", c)
		if err := drv.machine.Input(c.Controller, c.Buttons); err != nil {
			return false, curated.Errorf(FatalInput, err)
		}

	case mailbox.Reset:
		drv.machine.Reset()
		logger.Log(logger.Info, "driver", "machine reset")

	case mailbox.DrawFrame:
		drv.pres.RequestRedraw()

	case mailbox.ChangePaletteID:
		if err := drv.machine.SetDebugPaletteID(c.ID); err != nil {
			logger.Log(logger.Warn, "driver", err)
		} else {
			logger.Log(logger.Debug, "driver", c)
		}

	case mailbox.ChangeEmulationSpeed:
		drv.setSpeed(c.Factor)
		logger.Logf(logger.Info, "driver", "speed %.2f", drv.pacer.Speed())

	case mailbox.SaveState:
		if err := drv.machine.SaveState(c.Path); err != nil {
			logger.Log(logger.Warn, "driver", curated.Errorf("save state: %v", err))
		} else {
			logger.Logf(logger.Info, "driver", "state saved to %s", c.Path)
		}

	case mailbox.LoadState:
		drv.loadState(c.Path)

	case mailbox.Save:
		drv.save()

	case mailbox.ResizeWindow:
		drv.pres.Resize(c.Width, c.Height)

	case mailbox.ToggleDebugWindow:
		drv.debug = !drv.debug
		drv.pres.SetDebug(drv.debug)
		if drv.debug {
			logger.Logf(logger.Debug, "driver", "debug overlay on (%dx%d)", video.Width, video.CombinedHeight)
		} else {
			logger.Logf(logger.Debug, "driver", "debug overlay off (%dx%d)", video.Width, video.Height)
		}

	case mailbox.CloseApp:
		drv.save()
		logger.Log(logger.Info, "driver", "closing")
		return true, nil

	default:
		logger.Logf(logger.Warn, "driver", "unhandled command (%T)", c)
	}

	return false, nil
}

func (drv *Driver) save() {
	if err := drv.machine.Save(); err != nil {
		logger.Log(logger.Warn, "driver", curated.Errorf("save: %v", err))
		return
	}
	logger.Log(logger.Info, "driver", "battery saved")
}

func (drv *Driver) loadState(path string) {
	if err := drv.machine.LoadState(path); err != nil {
		logger.Log(logger.Warn, "driver", curated.Errorf("load state: %v", err))
		return
	}
	logger.Logf(logger.Info, "driver", "state loaded from %s", path)
}

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

package userinput

import (
	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/driver"
	"github.com/jetsetilly/gophernes/hardware"
	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/mailbox"
)

// Sender is the producer end of the command mailbox.
type Sender interface {
	Send(mailbox.Command) error
}

// Mailbox is the producer end of the command mailbox as seen by an event
// loop. The Stopped() channel is closed when the driver stops.
type Mailbox interface {
	Sender
	Stopped() <-chan bool
}

// SpeedStep is the amount the emulation speed changes for each key press.
const SpeedStep = 0.5

// Controllers keeps track of the state of the user input.
type Controllers struct {
	// the button state of the first controller
	buttons uint8

	// the debug palette currently selected
	paletteID uint8

	// current emulation speed
	speed float64

	// paths for the save state and battery commands
	StatePath string
	SavePath  string

	// is true if last event was a quit emulation event
	Quit bool
}

// NewControllers is the preferred method of initialisation for the
// Controllers type.
func NewControllers(statePath string, savePath string, speed float64, paletteID uint8) *Controllers {
	if speed == 0 {
		speed = 1.0
	}
	return &Controllers{
		StatePath: statePath,
		SavePath:  savePath,
		speed:     driver.ClampSpeed(speed),
		paletteID: paletteID % hardware.NumPaletteIDs,
	}
}

// Speed returns the speed most recently requested.
func (c *Controllers) Speed() float64 {
	return c.speed
}

// PaletteID returns the debug palette id most recently requested.
func (c *Controllers) PaletteID() uint8 {
	return c.paletteID
}

// Buttons returns the current button state of the first controller.
func (c *Controllers) Buttons() uint8 {
	return c.buttons
}

// HandleUserInput translates the event into zero or more commands and sends
// them. A command that cannot be sent because the mailbox is full is logged
// and dropped. Any other send error is returned.
func (c *Controllers) HandleUserInput(ev Event, send Sender) error {
	var cmds []mailbox.Command

	switch ev := ev.(type) {
	case EventQuit:
		c.Quit = true
		cmds = append(cmds, mailbox.CloseApp{})
	case EventWindowResized:
		cmds = append(cmds, mailbox.ResizeWindow{Width: ev.Width, Height: ev.Height})
	case EventKeyboard:
		cmds = c.keyboard(ev)
	}

	for _, cmd := range cmds {
		if err := send.Send(cmd); err != nil {
			if curated.Is(err, mailbox.Full) {
				logger.Logf(logger.Warn, "userinput", "%v: %T dropped", err, cmd)
				continue
			}
			return curated.Errorf("userinput: %v", err)
		}
	}

	return nil
}

// the controller button assigned to each key
var buttonKeys = map[string]uint8{
	"Z": mailbox.ButtonUp,
	"S": mailbox.ButtonDown,
	"Q": mailbox.ButtonLeft,
	"D": mailbox.ButtonRight,
	"X": mailbox.ButtonStart,
	"C": mailbox.ButtonSelect,
	"I": mailbox.ButtonA,
	"O": mailbox.ButtonB,
}

func (c *Controllers) keyboard(ev EventKeyboard) []mailbox.Command {
	if b, ok := buttonKeys[ev.Key]; ok {
		prev := c.buttons
		if ev.Down {
			c.buttons |= b
		} else {
			c.buttons &^= b
		}
		if prev == c.buttons {
			return nil
		}
		return []mailbox.Command{mailbox.Input{Controller: 0, Buttons: c.buttons}}
	}

	// all other keys act on the key press and ignore key repeats
	if !ev.Down || ev.Repeat || ev.Mod != KeyModNone {
		return nil
	}

	switch ev.Key {
	case "Escape":
		c.Quit = true
		return []mailbox.Command{mailbox.CloseApp{}}
	case "E":
		return []mailbox.Command{mailbox.ToggleDebugWindow{}}
	case "R":
		return []mailbox.Command{mailbox.Reset{}}
	case "Left":
		c.paletteID = (c.paletteID + hardware.NumPaletteIDs - 1) % hardware.NumPaletteIDs
		return []mailbox.Command{mailbox.ChangePaletteID{ID: c.paletteID}}
	case "Right":
		c.paletteID = (c.paletteID + 1) % hardware.NumPaletteIDs
		return []mailbox.Command{mailbox.ChangePaletteID{ID: c.paletteID}}
	case "Up":
		c.speed = driver.ClampSpeed(c.speed + SpeedStep)
		return []mailbox.Command{mailbox.ChangeEmulationSpeed{Factor: c.speed}}
	case "Down":
		c.speed = driver.ClampSpeed(c.speed - SpeedStep)
		return []mailbox.Command{mailbox.ChangeEmulationSpeed{Factor: c.speed}}
	case "M":
		return []mailbox.Command{mailbox.SaveState{Path: c.StatePath}}
	case "L":
		return []mailbox.Command{mailbox.LoadState{Path: c.StatePath}}
	case "P":
		return []mailbox.Command{mailbox.Save{Path: c.SavePath}}
	}

	return nil
}

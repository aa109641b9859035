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

package mailbox

import "fmt"

// Command is a request from the UI thread to the driver. The list of commands
// is closed: only the types in this package implement Command.
type Command interface {
	command()
}

// Input sets the button state of a controller. Each bit of Buttons is one
// button, see the Button constants.
type Input struct {
	Controller int
	Buttons    uint8
}

// Reset the machine. The cartridge is kept.
type Reset struct{}

// DrawFrame asks the presentation to redraw.
type DrawFrame struct{}

// ChangePaletteID selects the palette group used to render the pattern tables
// in the debug overlay. Valid values are 0 to 7.
type ChangePaletteID struct {
	ID uint8
}

// ChangeEmulationSpeed sets the speed of the emulation as a factor of normal
// speed.
type ChangeEmulationSpeed struct {
	Factor float64
}

// SaveState writes a snapshot of the machine to Path.
type SaveState struct {
	Path string
}

// LoadState restores a snapshot of the machine from Path.
type LoadState struct {
	Path string
}

// Save writes the battery backed RAM of the cartridge. Path is informational.
// The machine decides where the battery file is stored.
type Save struct {
	Path string
}

// ResizeWindow tells the presentation that the surface has changed size.
type ResizeWindow struct {
	Width  int
	Height int
}

// ToggleDebugWindow switches the debug overlay on or off.
type ToggleDebugWindow struct{}

// CloseApp ends the emulation. The cartridge battery is saved before the
// driver stops.
type CloseApp struct{}

func (Input) command()                {}
func (Reset) command()                {}
func (DrawFrame) command()            {}
func (ChangePaletteID) command()      {}
func (ChangeEmulationSpeed) command() {}
func (SaveState) command()            {}
func (LoadState) command()            {}
func (Save) command()                 {}
func (ResizeWindow) command()         {}
func (ToggleDebugWindow) command()    {}
func (CloseApp) command()             {}

func (c Input) String() string {
	return fmt.Sprintf("input: controller %d: %08b", c.Controller, c.Buttons)
}

func (c ChangePaletteID) String() string {
	return fmt.Sprintf("palette id: %d", c.ID)
}

func (c ChangeEmulationSpeed) String() string {
	return fmt.Sprintf("speed: %.2f", c.Factor)
}

// Controller buttons. The bit positions match the order in which the
// machine reads the controller shift register.
const (
	ButtonA uint8 = 1 << iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
)

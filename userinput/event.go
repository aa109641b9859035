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

// Event is the base type for all user input events.
type Event interface{}

// KeyMod identifies the modifier keys held during a keyboard event.
type KeyMod int

// List of valid KeyMod values.
const (
	KeyModNone KeyMod = iota
	KeyModShift
	KeyModCtrl
	KeyModAlt
)

// EventKeyboard is a key being pressed or released.
type EventKeyboard struct {
	Key    string
	Down   bool
	Repeat bool
	Mod    KeyMod
}

// EventQuit is the window being closed.
type EventQuit struct{}

// EventWindowResized is the window changing size.
type EventWindowResized struct {
	Width  int
	Height int
}

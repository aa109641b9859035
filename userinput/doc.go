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

// Package userinput translates events from the user interface into commands
// for the driver. The GUI is responsible for creating the events. The
// Controllers type decides what the events mean.
//
// Key names are the names given by SDL's GetKeyName() function. Front ends
// that do not use SDL should use the same names.
//
// The default key bindings are:
//
//	Escape        quit
//	E             toggle debug overlay
//	R             reset
//	Left/Right    previous/next debug palette
//	Up/Down       faster/slower emulation
//	M / L         save state / load state
//	P             save cartridge battery
//
//	Z Q S D       controller up, left, down, right
//	X / C         controller start / select
//	I / O         controller A / B
package userinput

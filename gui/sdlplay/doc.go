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

// Package sdlplay is the SDL front-end of the emulator. It owns the window
// and runs the event loop on the main thread.
//
// SDL events are translated into userinput events and handed to a
// userinput.Controllers. Snapshots from the gui.Surface are drawn as they
// arrive. The driver wakes the event loop with RequestRedraw(), which pushes
// a user event onto the SDL event queue.
package sdlplay

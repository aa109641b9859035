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

// Package termui is a terminal front-end for the emulator. It is useful on
// machines without a display. Key presses are read from the terminal in raw
// mode and frames are discarded after being counted. A status line with the
// frame count and the measured frame rate is printed periodically.
//
// Terminals do not report key releases so every key press is followed by a
// release after a short time.
package termui

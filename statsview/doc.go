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

// Package statsview is an optional package. The viewer is only included when
// the emulator is built with the statsview build tag.
//
// The viewer is a local HTTP server showing runtime statistics of the
// emulator process. It is useful when checking the behaviour of the driver
// thread under different emulation speeds. After launch the statistics are
// viewable at:
//
//	localhost:16502/debug/statsview
//
// The standard Go pprof statistics are served at:
//
//	localhost:16502/debug/pprof/
package statsview

// Address of the statistics server.
const Address = "localhost:16502"

// the path of the viewer page
const url = "/debug/statsview"

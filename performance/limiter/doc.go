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

// Package limiter paces the emulation so that frames are produced at the
// rate of the emulated machine.
//
// The Pacer is called once for every completed frame:
//
//	pacer := limiter.NewPacer(machine.OneFrameDuration())
//	for {
//		if frameComplete() {
//			pacer.Pace()
//		}
//	}
//
// If the frame took less time than the target duration then Pace() sleeps
// for the remainder. A frame that takes longer than the target is not made
// up by the following frames.
//
// The speed of the emulation is changed with SetSpeed(). The target duration
// is the base duration divided by the speed.
package limiter

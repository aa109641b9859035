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

// Package gui contains the parts of the presentation layer that are common to
// all front-ends.
//
// The Surface type implements driver.Presentation. The driver goroutine
// copies each completed frame into the surface and the surface hands a
// snapshot of the frame to the UI thread. The UI thread receives snapshots
// from the Frames() channel and returns them with Recycle() when they have
// been drawn.
//
// Only the most recent snapshot is kept. A snapshot that has not been taken
// by the UI thread when the next frame is rendered is replaced.
package gui

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

// Package video defines the pixel buffers that pass between the machine, the
// driver and the presentation layer. All buffers are fixed size arrays so the
// shape of a buffer is part of its type.
package video

import (
	"image/color"
)

// Color is a single pixel. Four 8-bit channels.
type Color = color.RGBA

// Dimensions of the primary display.
const (
	Width  = 256
	Height = 240
)

// Dimensions of a pattern table.
const (
	PatternWidth  = 128
	PatternHeight = 128
)

// PaletteSize is the number of entries in the machine palette.
const PaletteSize = 32

// DebugHeight is the number of rows in the debug overlay. The overlay is the
// same width as the primary display.
const DebugHeight = 2 + PatternHeight + 2 + 6

// CombinedHeight is the height of the presentation surface when the debug
// overlay is visible.
const CombinedHeight = Height + DebugHeight

// FrameBuffer is a row-major image of the primary display.
type FrameBuffer [Width * Height]Color

// PatternTable is a row-major image of one pattern table.
type PatternTable [PatternWidth * PatternHeight]Color

// Palette is the current machine palette.
type Palette [PaletteSize]Color

// DebugBuffer is a row-major image of the debug overlay.
type DebugBuffer [Width * DebugHeight]Color

// Black is the color used for unset pixels.
var Black = Color{A: 255}

// CopyRGBA copies a slice of pixels into a byte slice with four bytes per
// pixel in RGBA order. The destination must be at least four times the
// length of the source.
func CopyRGBA(dst []byte, src []Color) {
	for i, c := range src {
		o := i * 4
		dst[o] = c.R
		dst[o+1] = c.G
		dst[o+2] = c.B
		dst[o+3] = c.A
	}
}

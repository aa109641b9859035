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

// Package overlay composes the debug overlay from the two pattern tables and
// the palette of the machine. The overlay is drawn below the primary display
// when debug mode is enabled.
//
// The layout of the overlay, from top to bottom:
//
//	rows   0-1    separator
//	rows   2-129  pattern table 0 (left half) and pattern table 1 (right half)
//	rows 130-131  separator
//	rows 132-137  palette, 32 swatches of 6x6 pixels
//
// Swatches are arranged in groups of four with a two pixel gap before each
// group. All other pixels are black.
package overlay

import (
	"golang.org/x/image/colornames"

	"github.com/jetsetilly/gophernes/video"
)

// Separator is the color of the separator rows.
var Separator = video.Color(colornames.Lightgray)

// Offsets into the debug buffer of each region.
const (
	TopSeparator    = 0
	Patterns        = 2 * video.Width
	BottomSeparator = Patterns + video.PatternHeight*video.Width
	Swatches        = BottomSeparator + 2*video.Width
)

// SwatchSize is the width and height in pixels of a single palette swatch.
const SwatchSize = 6

// SwatchColumn returns the leftmost column of palette entry n.
func SwatchColumn(n int) int {
	g := n / 4
	k := n % 4
	return (g+1)*2 + g*SwatchSize*4 + k*SwatchSize
}

// Compose draws the overlay into dst. Every cell of dst is written.
func Compose(dst *video.DebugBuffer, pt0 *video.PatternTable, pt1 *video.PatternTable, pal *video.Palette) {
	for i := range dst {
		dst[i] = video.Black
	}

	for i := 0; i < 2*video.Width; i++ {
		dst[TopSeparator+i] = Separator
		dst[BottomSeparator+i] = Separator
	}

	for i := range pt0 {
		o := Patterns + (i/video.PatternWidth)*video.Width + i%video.PatternWidth
		dst[o] = pt0[i]
		dst[o+video.PatternWidth] = pt1[i]
	}

	for n, c := range pal {
		x := SwatchColumn(n)
		for j := 0; j < SwatchSize; j++ {
			o := Swatches + j*video.Width + x
			for i := 0; i < SwatchSize; i++ {
				dst[o+i] = c
			}
		}
	}
}

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

package hardware

import (
	"github.com/jetsetilly/gophernes/video"
)

// layout of the frame. the two pattern tables are drawn side by side in the
// middle of the screen
const (
	patternsTop = (video.Height - video.PatternHeight) / 2
	cursorSize  = 8
)

// number of bytes of CHR data in one pattern table
const patternTableSize = 4096

// decode both pattern tables using the palette group
func (nes *NES) decodePatterns(group uint8, dst *[2]video.PatternTable) {
	for t := range dst {
		nes.decodePatternTable(t, group, &dst[t])
	}
}

// decodePatternTable draws the 256 tiles of a pattern table in a 16x16 grid.
// each tile is sixteen bytes of CHR data: eight bytes of the low bit plane
// followed by eight bytes of the high bit plane
func (nes *NES) decodePatternTable(table int, group uint8, dst *video.PatternTable) {
	chr := nes.cart.CHR
	base := table * patternTableSize

	for tile := 0; tile < 256; tile++ {
		tx := (tile % 16) * 8
		ty := (tile / 16) * 8
		o := base + tile*16

		for y := 0; y < 8; y++ {
			var lo, hi uint8
			if o+y+8 < len(chr) {
				lo = chr[o+y]
				hi = chr[o+y+8]
			}

			for x := 0; x < 8; x++ {
				bit := 7 - x
				v := (lo>>bit)&0x01 | ((hi>>bit)&0x01)<<1
				dst[(ty+y)*video.PatternWidth+tx+x] = nes.color(group, v)
			}
		}
	}
}

// color of a two bit pixel value in a palette group. value zero is always the
// universal background color
func (nes *NES) color(group uint8, v uint8) video.Color {
	if v == 0 {
		return nes.system.Lookup(nes.state.PaletteRAM[0])
	}
	return nes.system.Lookup(nes.state.PaletteRAM[int(group)*4+int(v)])
}

// render the frame buffer
func (nes *NES) render() {
	bg := nes.system.Lookup(nes.state.PaletteRAM[0])
	for i := range nes.frame {
		nes.frame[i] = bg
	}

	var pt video.PatternTable
	for t := 0; t < 2; t++ {
		nes.decodePatternTable(t, 0, &pt)
		for y := 0; y < video.PatternHeight; y++ {
			o := (patternsTop+y)*video.Width + t*video.PatternWidth
			copy(nes.frame[o:o+video.PatternWidth], pt[y*video.PatternWidth:(y+1)*video.PatternWidth])
		}
	}

	// the cursor is an outline so the tiles underneath remain visible
	c := nes.system.Lookup(nes.state.PaletteRAM[16+1])
	for i := 0; i < cursorSize; i++ {
		nes.plot(nes.state.CursorX+i, nes.state.CursorY, c)
		nes.plot(nes.state.CursorX+i, nes.state.CursorY+cursorSize-1, c)
		nes.plot(nes.state.CursorX, nes.state.CursorY+i, c)
		nes.plot(nes.state.CursorX+cursorSize-1, nes.state.CursorY+i, c)
	}
}

// plot a single pixel. coordinates wrap at the edges of the screen
func (nes *NES) plot(x int, y int, c video.Color) {
	x %= video.Width
	y %= video.Height
	nes.frame[y*video.Width+x] = c
}

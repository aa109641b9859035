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

// Package palette contains the system palette of the machine. The system
// palette is the list of 64 colors that the machine can display. Palette RAM
// entries are indexes into the system palette.
//
// The default system palette is the one used by FCEUX. Other palettes can be
// loaded from .pal files, which are 64 RGB triplets.
package palette

import (
	"fmt"
	"os"

	"github.com/jetsetilly/gophernes/curated"
	"github.com/jetsetilly/gophernes/video"
)

// NumColors is the number of entries in a system palette.
const NumColors = 64

// FileSize is the minimum size of a .pal file. Files that also contain the
// color emphasis variants are larger but only the first 64 entries are used.
const FileSize = NumColors * 3

// System is a system palette.
type System [NumColors]video.Color

// Lookup returns the color for a palette RAM value. Only the bottom six bits
// of the value are used.
func (sys *System) Lookup(v uint8) video.Color {
	return sys[v&0x3f]
}

var fceux = [NumColors]uint32{
	0x747474, 0x24188c, 0x0000a8, 0x44009c, 0x8c0074, 0xa80010, 0xa40000, 0x7c0800,
	0x402c00, 0x004400, 0x005000, 0x003c14, 0x183c5c, 0x000000, 0x000000, 0x000000,
	0xbcbcbc, 0x0070ec, 0x2038ec, 0x8000f0, 0xbc00bc, 0xe40058, 0xd82800, 0xc84c0c,
	0x887000, 0x009400, 0x00a800, 0x009038, 0x008088, 0x000000, 0x000000, 0x000000,
	0xfcfcfc, 0x3cbcfc, 0x5c94fc, 0xcc88fc, 0xf478fc, 0xfc74b4, 0xfc7460, 0xfc9838,
	0xf0bc3c, 0x80d010, 0x4cdc48, 0x58f898, 0x00e8d8, 0x787878, 0x000000, 0x000000,
	0xfcfcfc, 0xa8e4fc, 0xc4d4fc, 0xd4c8fc, 0xfcc4fc, 0xfcc4d8, 0xfcbcb0, 0xfcd8a8,
	0xfce4a0, 0xe0fca0, 0xa8f0bc, 0xb0fccc, 0x9cfcf0, 0xc4c4c4, 0x000000, 0x000000,
}

// Default returns the default system palette.
func Default() System {
	var sys System
	for i, c := range fceux {
		sys[i] = video.Color{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 0xff}
	}
	return sys
}

// Load a system palette from a .pal file.
func Load(filename string) (System, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return System{}, curated.Errorf("palette: %v", err)
	}
	return Parse(data)
}

// Parse .pal file data.
func Parse(data []byte) (System, error) {
	var sys System

	if len(data) < FileSize {
		return sys, curated.Errorf("palette: %v", fmt.Sprintf("palette data too short (%d bytes)", len(data)))
	}

	for i := range sys {
		o := i * 3
		sys[i] = video.Color{R: data[o], G: data[o+1], B: data[o+2], A: 0xff}
	}

	return sys, nil
}

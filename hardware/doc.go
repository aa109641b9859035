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

// Package hardware is the reference machine driven by the driver package. It
// implements driver.Machine.
//
// The machine is clocked one PPU dot at a time. A frame is completed every
// 341x262 dots, which at the NTSC dot clock is a little over sixty frames per
// second. At the end of every frame the CHR data of the cartridge is drawn
// into the frame buffer together with a cursor that is moved by the first
// controller. While a button is held a tone is generated for the audio
// output.
//
// The pattern tables and palette used by the debug overlay are decoded from
// the cartridge CHR data and the palette RAM.
//
// The processor and the picture and audio processing units of the real
// machine are not emulated.
package hardware
